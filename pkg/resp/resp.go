package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every response is {success, message, ...payload}. Errors follow the same
// envelope; validation failures additionally carry a field->message map.

func envelope(success bool, message string, payload gin.H) gin.H {
	out := gin.H{"success": success, "message": message}
	for k, v := range payload {
		out[k] = v
	}
	return out
}

func OK(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusOK, envelope(true, message, payload))
}

func Created(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusCreated, envelope(true, message, payload))
}

// Conflict covers domain conflicts (unavailable product, duplicate store)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope(false, message, nil))
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, envelope(false, message, nil))
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, envelope(false, message, nil))
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, envelope(false, message, nil))
}

func ValidationFailed(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, envelope(false, "Validation failed", gin.H{"errors": errs}))
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, envelope(false, err.Error(), nil))
}
