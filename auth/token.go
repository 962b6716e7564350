package auth

import (
	"fmt"
	"time"
	"zenchat/domain"
	"zenchat/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "zenchat"

// CustomClaims defines the data stored inside the JWT.
type CustomClaims struct {
	UserID domain.UserID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 tokens with a server secret.
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

func NewTokenIssuer(secret string, duration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), duration: duration, now: time.Now}
}

// Duration is the lifetime of issued tokens, also used for the cookie max age.
func (t *TokenIssuer) Duration() time.Duration {
	return t.duration
}

// Generate creates a signed token for userID.
func (t *TokenIssuer) Generate(userID domain.UserID) (string, error) {
	now := t.now()
	claims := &CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return signed, nil
}

// Validate checks the signature, the algorithm and the expiration of a token.
func (t *TokenIssuer) Validate(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, errors.ErrUnauthorized
	}
	return claims, nil
}
