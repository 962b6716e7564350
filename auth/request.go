package auth

import (
	"context"
	"net/http"
	"strings"
	"zenchat/domain"
	"zenchat/errors"
)

// CookieName is the http-only cookie carrying the session token.
const CookieName = "token"

type contextKey string

const userIDKey contextKey = "user_id"

// FromRequest authenticates a request by its token cookie, or by a
// "Bearer <token>" Authorization header for non-browser clients.
func FromRequest(r *http.Request, tokens *TokenIssuer) (*CustomClaims, error) {
	token := ""
	if cookie, err := r.Cookie(CookieName); err == nil {
		token = cookie.Value
	}
	if token == "" {
		token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}
	if token == "" {
		return nil, errors.ErrUnauthorized
	}
	return tokens.Validate(token)
}

// WithUserID injects the authenticated user into ctx.
func WithUserID(ctx context.Context, userID domain.UserID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFrom returns the authenticated user of ctx, if any.
func UserIDFrom(ctx context.Context) (domain.UserID, bool) {
	userID, ok := ctx.Value(userIDKey).(domain.UserID)
	return userID, ok && userID != ""
}
