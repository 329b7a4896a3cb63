// Package validation provides custom validators for the application
package validation

import (
	"strings"
	"strompris/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Initialize registers all custom validators
func Initialize() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v, "nospaces", validateNoSpaces)
		register(v, "pricearea", validatePriceArea)
		register(v, "customertype", validateCustomerType)
	}
}

func register(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// validateNoSpaces checks if a string contains non-space characters
func validateNoSpaces(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.TrimSpace(value) != ""
}

// validatePriceArea checks that a string is one of the fixed Norwegian
// price area codes
func validatePriceArea(fl validator.FieldLevel) bool {
	_, ok := models.PriceAreaByCode(fl.Field().String())
	return ok
}

// validateCustomerType checks that a string is a known customer type
func validateCustomerType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.CustomerTypePrivate, models.CustomerTypeBusiness:
		return true
	}
	return false
}
