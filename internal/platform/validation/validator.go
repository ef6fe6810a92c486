package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

// New returns a validator with the project's custom tags registered:
//
//	season  a "YY/YY" label of consecutive years
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("season", func(fl validator.FieldLevel) bool {
		_, err := season.Parse(fl.Field().String())
		return err == nil
	})
	return v
}
