package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Validation failures surface as domain errors so the central error handler
// renders the field-level codes the API contract promises.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fieldError(ve[0])
	}
	return err
}

// fieldError converts one ValidationError into its wire-level domain error.
func fieldError(fe validator.FieldError) error {
	switch {
	case fe.Tag() == "required":
		return domain.ErrMissingFields
	case fe.Field() == "Role" && fe.Tag() == "oneof":
		return domain.ErrInvalidRole
	case fe.Field() == "Password" && fe.Tag() == "min":
		return domain.ErrInvalidPassword
	case fe.Field() == "Gender" && fe.Tag() == "oneof":
		// An unrecognized lane is treated like an absent one.
		return domain.ErrMissingFields
	}
	return domain.ErrMissingFields
}
