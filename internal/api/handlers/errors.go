package handlers

import (
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// fieldErrors flattens validator violations into a field -> message map for
// 400 responses. Non-validator errors yield a single "detail" entry.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				out[fe.Field()] = "this field is required"
			case "min":
				out[fe.Field()] = "value is below the allowed minimum (" + fe.Param() + ")"
			case "max":
				out[fe.Field()] = "value is above the allowed maximum (" + fe.Param() + ")"
			default:
				out[fe.Field()] = "failed validation: " + fe.Tag()
			}
		}
		return out
	}

	out["detail"] = err.Error()
	return out
}
