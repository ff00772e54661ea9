package serverutils

import (
	"net/http/httptest"
	"testing"

	"sports-academy-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandlerMiddlewareStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation maps to 400", err: apperror.Validationf("amount must be positive"), wantStatus: fiber.StatusBadRequest},
		{name: "not found maps to 404", err: apperror.NotFound("plan"), wantStatus: fiber.StatusNotFound},
		{name: "invalid state maps to 422", err: apperror.InvalidStatef("subscription is cancelled"), wantStatus: fiber.StatusUnprocessableEntity},
		{name: "conflict maps to 409", err: apperror.Conflictf("plan has 3 active subscriptions"), wantStatus: fiber.StatusConflict},
		{name: "exhausted entitlement maps to 402", err: apperror.ErrEntitlementExhausted, wantStatus: fiber.StatusPaymentRequired},
		{name: "fiber error keeps its code", err: fiber.NewError(fiber.StatusUnauthorized, "missing token"), wantStatus: fiber.StatusUnauthorized},
		{name: "unknown error maps to 500", err: assert.AnError, wantStatus: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/boom", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestErrorHandlerMiddlewarePassesSuccessThrough(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("ok", nil))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
