package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeFormat = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// RegisterCustomValidators registers custom validation functions with the
// Gin validator. Request DTOs reference these by tag name.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("eventstatus", eventStatusFL)
		v.RegisterValidation("eventdate", eventDateFL)
		v.RegisterValidation("eventtime", eventTimeFL)
	}
}

// eventStatusFL accepts the four explicit event statuses.
func eventStatusFL(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "upcoming", "ongoing", "completed", "cancelled":
		return true
	}
	return false
}

// eventDateFL accepts calendar dates in YYYY-MM-DD form.
func eventDateFL(fl validator.FieldLevel) bool {
	return dateFormat.MatchString(fl.Field().String())
}

// eventTimeFL accepts local times of day in HH:MM form.
func eventTimeFL(fl validator.FieldLevel) bool {
	return timeFormat.MatchString(fl.Field().String())
}
