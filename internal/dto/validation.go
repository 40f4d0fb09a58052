package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/finoraid/finora_backend/internal/core/domain"
)

// isISODate validates the YYYY-MM-DD wire format used for all calendar
// dates. Empty values pass here; pair with "required" when the field is
// mandatory.
func isISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(domain.DateLayout, value)
	return err == nil
}

// RegisterValidations attaches the custom validators to gin's binding
// engine. Call once during startup.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("isodate", isISODate)
}
