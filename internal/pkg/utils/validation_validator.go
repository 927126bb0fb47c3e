package utils

import (
	"prontuario-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var brazilPhoneRegex = regexp.MustCompile(constvars.RegexBrazilPhoneNumber)

func init() {
	validate = validator.New()
	validate.RegisterValidation("br_phone", validateBrazilPhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateBrazilPhoneNumber(fl validator.FieldLevel) bool {
	return brazilPhoneRegex.MatchString(fl.Field().String())
}
