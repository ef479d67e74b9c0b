package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries a human-readable summary of failed fields. The
// error middleware maps it to a 400.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// ValidateRequest runs struct-tag validation over a request DTO.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		fields := make([]string, 0)
		if errors.As(err, &invalid) {
			for _, f := range invalid {
				fields = append(fields, fmt.Sprintf("%s (%s)", f.Field(), f.Tag()))
			}
		} else {
			fields = append(fields, err.Error())
		}
		return &ValidationError{Fields: fields}
	}
	return nil
}
