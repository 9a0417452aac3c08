package validator

import (
	"github.com/go-playground/validator/v10"

	ierr "github.com/skelectricals/backend/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Read the same tags gin binding does, so a struct validates identically
	// whether it arrives through a handler or is built in code.
	v.SetTagName("binding")
	return v
}

// GetValidator returns the shared validator instance
func GetValidator() *validator.Validate {
	return validate
}

// ValidateRequest runs struct validation and translates failures into a
// validation-marked error with per-field details.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, fieldErr := range validateErrs {
				details[fieldErr.Field()] = fieldErr.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
