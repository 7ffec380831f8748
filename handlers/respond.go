package handlers

import (
	"net/http"

	"food-order-api/config"

	"github.com/gin-gonic/gin"
)

// internalError reports a store or runtime failure with a generic message.
// The underlying error is included only outside production.
func internalError(c *gin.Context, msg string, err error) {
	body := gin.H{"message": msg}
	if config.IsDevelopment() && err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
