package serverutils

import (
	"errors"

	"sports-academy-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service-layer errors into JSON responses.
// Controllers can simply `return err` and the taxonomy decides the status.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status, message := mapError(err)
		return ctx.Status(status).JSON(ErrorResponse(status, message))
	}
}

func mapError(err error) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fiber.StatusBadRequest, validationErrs.Error()
	}

	switch {
	case apperror.IsValidation(err):
		return fiber.StatusBadRequest, err.Error()
	case apperror.IsNotFound(err):
		return fiber.StatusNotFound, err.Error()
	case apperror.IsInvalidState(err):
		return fiber.StatusUnprocessableEntity, err.Error()
	case apperror.IsConflict(err):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, apperror.ErrEntitlementExhausted):
		return fiber.StatusPaymentRequired, err.Error()
	}

	return fiber.StatusInternalServerError, err.Error()
}
