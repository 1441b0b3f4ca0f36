package controllers

import (
	"errors"
	"fmt"
	"strings"

	"campuseats/pkg/resp"
	"campuseats/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingErrors flattens validator failures into a field->message map for
// the 422 envelope.
func bindingErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				out[field] = fmt.Sprintf("The %s field is required", field)
			case "min":
				out[field] = fmt.Sprintf("The %s field must be at least %s", field, fe.Param())
			case "max":
				out[field] = fmt.Sprintf("The %s field may not be greater than %s", field, fe.Param())
			case "oneof":
				out[field] = fmt.Sprintf("The %s field must be one of: %s", field, fe.Param())
			case "email":
				out[field] = fmt.Sprintf("The %s field must be a valid email address", field)
			default:
				out[field] = fmt.Sprintf("The %s field is invalid", field)
			}
		}
		return out
	}

	out["body"] = err.Error()
	return out
}

// serviceError maps the services taxonomy onto the response envelope.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, services.Message(err))
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, services.Message(err))
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, services.Message(err))
	default:
		resp.ServerError(c, err)
	}
}
