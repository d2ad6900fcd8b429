package utils

import (
	"github.com/go-playground/validator/v10"
)

// Validator plugs go-playground/validator into echo's c.Validate.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// ValidationDetails flattens validator errors into a field -> reason map for
// 422 responses. Non-validator errors get a single generic entry.
func ValidationDetails(err error) map[string]string {
	details := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		details["body"] = "invalid request body"
		return details
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "field is required"
		case "email":
			details[fe.Field()] = "must be a valid email address"
		case "gte":
			details[fe.Field()] = "must not be negative"
		default:
			details[fe.Field()] = "invalid value"
		}
	}
	return details
}
