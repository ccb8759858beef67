package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationFieldError รายละเอียด validation error ของ 1 field
type ValidationFieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}

// ValidateStruct ตรวจสอบ struct ตาม validate tags
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// GetValidationErrors แปลง validator error เป็น field errors
func GetValidationErrors(err error) []ValidationFieldError {
	var errors []ValidationFieldError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrors {
			errors = append(errors, ValidationFieldError{
				Field: fieldErr.Field(),
				Tag:   fieldErr.Tag(),
				Value: fieldErr.Param(),
			})
		}
	}

	return errors
}
