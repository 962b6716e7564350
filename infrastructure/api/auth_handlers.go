package api

import (
	"log/slog"
	"net/http"
	"zenchat/auth"
	"zenchat/errors"
	"zenchat/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	log    *slog.Logger
	auth   services.IAuthService
	users  services.IUserService
	tokens *auth.TokenIssuer
}

func NewAuthHandler(log *slog.Logger, authService services.IAuthService, users services.IUserService, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{log: log, auth: authService, users: users, tokens: tokens}
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req auth.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.log, errors.ErrInvalidRequest)
		return
	}
	if err := h.auth.SendOTP(c.Request.Context(), req.Email); err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "OTP sent to your email", nil)
}

// VerifyOTP sets the http-only token cookie on success.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req auth.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.log, errors.ErrInvalidRequest)
		return
	}
	user, token, err := h.auth.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	h.setToken(c, token.String(), int(h.tokens.Duration().Seconds()))
	respond(c, http.StatusOK, "OTP verified successfully", gin.H{"user": user, "token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setToken(c, "", -1)
	respond(c, http.StatusOK, "User logged out successfully", nil)
}

func (h *AuthHandler) setToken(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, maxAge, "/", "", c.Request.TLS != nil, true)
}

func (h *AuthHandler) CheckAuth(c *gin.Context) {
	user, err := h.auth.CheckAuth(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "User retrieved successfully", user)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Users retrieved successfully", users)
}

// UpdateProfile reads a multipart form: userName, about, agreed and an
// optional media file used as avatar.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req auth.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, h.log, errors.ErrInvalidRequest)
		return
	}
	media, err := uploadedMedia(c)
	if err != nil {
		fail(c, h.log, errors.ErrInvalidRequest)
		return
	}
	if media != nil {
		defer media.Close()
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), currentUser(c), req, media)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "User profile updated successfully", user)
}
