package serverutils

import (
	"errors"

	"talentflow-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates engine and validation errors into HTTP
// statuses. Services return plain errors; the user-facing messaging is
// decided here, never inside the engines.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validation *ValidationError
		switch {
		case errors.As(err, &validation):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validation.Error()))
		case errors.Is(err, apperror.ErrPermissionDenied):
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, apperror.ErrApprovalIdentityMismatch):
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, apperror.ErrInvalidTransition):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, apperror.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
