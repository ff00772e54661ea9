package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation. The error middleware maps
// validator.ValidationErrors to a 400 response.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
