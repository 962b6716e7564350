// Package api is the REST surface: authentication, chat history, media
// upload and statuses. Realtime delivery goes through the Deliverer.
package api

import (
	"log/slog"
	"net/http"
	"zenchat/errors"

	"github.com/gin-gonic/gin"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{Status: statusSuccess, Message: message, Data: data})
}

// fail maps err to its HTTP status. Internal errors are logged and never
// leak their details.
func fail(c *gin.Context, log *slog.Logger, err error) {
	code := errors.HTTPStatus(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		log.Error("Request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		message = "Internal server error"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, Response{Status: statusError, Message: message})
}
