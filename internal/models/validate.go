package models

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Validator returns the shared model validator with the custom "slug" rule
// registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Validate runs struct validation and converts failures to a descriptive
// validation error.
func Validate(obj any) error {
	if err := Validator().Struct(obj); err != nil {
		return appErr.Wrap(err, appErr.CodeInvalid, "validation failed")
	}
	return nil
}
