package api

import (
	"log/slog"
	"net/http"
	"time"
	"zenchat/auth"
	"zenchat/domain"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// Logger writes one structured line per request.
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if last := c.Errors.Last(); last != nil {
			attrs = append(attrs, "error", last.Error())
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Warn("HTTP request", attrs...)
			return
		}
		log.Debug("HTTP request", attrs...)
	}
}

// Authenticate requires a valid token cookie or bearer header.
func Authenticate(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.FromRequest(c.Request, tokens)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
				Status:  statusError,
				Message: "Authorization token missing or invalid. Please login.",
			})
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Request = c.Request.WithContext(auth.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// currentUser is only valid behind Authenticate.
func currentUser(c *gin.Context) domain.UserID {
	userID, _ := auth.UserIDFrom(c.Request.Context())
	return userID
}
