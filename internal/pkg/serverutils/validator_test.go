package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title  string `validate:"required"`
	Status string `validate:"omitempty,oneof=Draft Sent"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Title: "Backend Engineer"}))
	assert.NoError(t, ValidateRequest(sampleRequest{Title: "x", Status: "Sent"}))

	err := ValidateRequest(sampleRequest{})
	require.Error(t, err)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Error(), "Title")

	err = ValidateRequest(sampleRequest{Title: "x", Status: "Bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Status")
}
