//go:generate go run go.uber.org/mock/mockgen -destination=mock_services_test.go -package=api zenchat/services IAuthService,IUserService,IChatService,IStatusService
package api

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"
	"zenchat/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type RouterConfig struct {
	AllowedOrigins []string
	MediaDir       string
	// MaxUploadSize bounds multipart forms kept in memory, bigger parts
	// spill to temporary files.
	MaxUploadSize int64
}

type Handlers struct {
	Auth   *AuthHandler
	Chat   *ChatHandler
	Status *StatusHandler
	Socket http.Handler
	Stats  StatsSource
}

// NewRouter mounts the REST API, the socket endpoint and the uploaded files.
func NewRouter(log *slog.Logger, tokens *auth.TokenIssuer, cfg RouterConfig, h Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), Logger(log))
	if cfg.MaxUploadSize > 0 {
		r.MaxMultipartMemory = cfg.MaxUploadSize
	}
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	r.GET("/health", healthHandler)
	if h.Stats != nil {
		r.GET("/debug/stats", statsHandler(h.Stats))
	}
	if cfg.MediaDir != "" {
		r.Static("/media", cfg.MediaDir)
	}
	if h.Socket != nil {
		r.GET("/socket", gin.WrapH(h.Socket))
	}

	authenticated := Authenticate(tokens)

	authGroup := r.Group("/api/auth")
	authGroup.POST("/send-otp", h.Auth.SendOTP)
	authGroup.POST("/verify-otp", h.Auth.VerifyOTP)
	authGroup.GET("/logout", h.Auth.Logout)
	authGroup.GET("/check-auth", authenticated, h.Auth.CheckAuth)
	authGroup.PUT("/update-profile", authenticated, h.Auth.UpdateProfile)
	authGroup.GET("/users", authenticated, h.Auth.ListUsers)

	chat := r.Group("/api/chat", authenticated)
	chat.POST("/send-message", h.Chat.SendMessage)
	chat.GET("/conversations", h.Chat.Conversations)
	chat.GET("/conversations/:conversationId/messages", h.Chat.Messages)
	chat.GET("/conversations/:conversationId/search", h.Chat.Search)
	chat.PUT("/messages/read", h.Chat.MarkAsRead)
	chat.DELETE("/messages/:messageId", h.Chat.DeleteMessage)

	status := r.Group("/api/status", authenticated)
	status.POST("", h.Status.Create)
	status.GET("", h.Status.List)
	status.PUT("/:statusId/view", h.Status.View)
	status.DELETE("/:statusId", h.Status.Delete)

	return r
}

// corsConfig echoes any origin for "*", cookies forbid a literal wildcard.
func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	allowed := lo.FilterMap(origins, func(origin string, _ int) (string, bool) {
		origin = strings.TrimSpace(origin)
		return origin, origin != ""
	})
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		config.AllowOriginFunc = func(string) bool { return true }
		return config
	}
	config.AllowOrigins = allowed
	return config
}
