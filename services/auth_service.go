package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"zenchat/auth"
	"zenchat/domain"
	"zenchat/errors"
	"zenchat/repositories"

	"github.com/google/uuid"
)

type IAuthService interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) (domain.User, Token, error)
	CheckAuth(ctx context.Context, userID domain.UserID) (domain.User, error)
}

type Token string

func (t Token) String() string {
	return string(t)
}

// AuthService implements a passwordless login: a one time password is
// sent by email and traded for a session token.
type AuthService struct {
	log         *slog.Logger
	users       repositories.IUserRepository
	tokens      *auth.TokenIssuer
	sender      OTPSender
	otpDuration time.Duration
	now         func() time.Time
}

func NewAuthService(log *slog.Logger, users repositories.IUserRepository, tokens *auth.TokenIssuer,
	sender OTPSender, otpDuration time.Duration) *AuthService {
	return &AuthService{
		log:         log,
		users:       users,
		tokens:      tokens,
		sender:      sender,
		otpDuration: otpDuration,
		now:         time.Now,
	}
}

// SendOTP creates the account on first use, then stores a hashed code
// valid for otpDuration and sends the clear one.
func (s *AuthService) SendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if err := auth.Validate(auth.SendOTPRequest{Email: email}); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(email)
	switch {
	case errors.Is(err, errors.ErrUserNotFound):
		user = domain.User{
			ID:        domain.UserID(uuid.NewString()),
			Email:     email,
			About:     domain.DefaultAbout,
			CreatedAt: s.now(),
		}
		s.log.Debug("Creating account", "user_id", user.ID)
	case err != nil:
		return err
	}

	otp, err := auth.GenerateOTP()
	if err != nil {
		return fmt.Errorf("generating otp: %w", err)
	}
	hash, err := auth.HashSecret(otp)
	if err != nil {
		return fmt.Errorf("hashing otp: %w", err)
	}
	expiry := s.now().Add(s.otpDuration)
	user.OTPHash = hash
	user.OTPExpiry = &expiry
	if err := s.users.Save(user); err != nil {
		return err
	}
	return s.sender.SendOTP(ctx, email, otp)
}

// VerifyOTP checks the code, marks the account verified and issues a token.
// A code can only be used once.
func (s *AuthService) VerifyOTP(_ context.Context, email, otp string) (domain.User, Token, error) {
	email = normalizeEmail(email)
	if err := auth.Validate(auth.VerifyOTPRequest{Email: email, OTP: otp}); err != nil {
		return domain.User{}, "", err
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return domain.User{}, "", err
	}
	if user.OTPHash == "" || user.OTPExpiry == nil {
		return domain.User{}, "", errors.ErrInvalidOTP
	}
	if s.now().After(*user.OTPExpiry) {
		return domain.User{}, "", errors.ErrOTPExpired
	}
	match, err := auth.CompareSecret(otp, user.OTPHash)
	if err != nil {
		return domain.User{}, "", err
	}
	if !match {
		return domain.User{}, "", errors.ErrInvalidOTP
	}

	user.IsVerified = true
	user.OTPHash = ""
	user.OTPExpiry = nil
	if err := s.users.Save(user); err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user.Public(), Token(token), nil
}

func (s *AuthService) CheckAuth(_ context.Context, userID domain.UserID) (domain.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return domain.User{}, err
	}
	return user.Public(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
