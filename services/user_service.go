package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"zenchat/auth"
	"zenchat/domain"
	"zenchat/errors"
	"zenchat/repositories"
	"zenchat/storage"

	"github.com/samber/lo"
)

type IUserService interface {
	MarkUserOnline(ctx context.Context, userID domain.UserID) error
	MarkUserOffline(ctx context.Context, userID domain.UserID, lastSeen time.Time) error
	FindLastSeen(ctx context.Context, userID domain.UserID) (*time.Time, error)
	ListUsers(ctx context.Context, me domain.UserID) ([]domain.User, error)
	UpdateProfile(ctx context.Context, userID domain.UserID, req auth.UpdateProfileRequest, avatar io.Reader) (domain.User, error)
}

// UserService owns profiles and the persisted side of presence.
type UserService struct {
	log   *slog.Logger
	users repositories.IUserRepository
	media storage.IMediaStore
}

func NewUserService(log *slog.Logger, users repositories.IUserRepository, media storage.IMediaStore) *UserService {
	return &UserService{log: log, users: users, media: media}
}

// MarkUserOnline is called by the realtime layer. Sessions announcing an
// identity that has no account are tolerated.
func (s *UserService) MarkUserOnline(_ context.Context, userID domain.UserID) error {
	return s.presence(userID, true, nil)
}

func (s *UserService) MarkUserOffline(_ context.Context, userID domain.UserID, lastSeen time.Time) error {
	return s.presence(userID, false, &lastSeen)
}

func (s *UserService) presence(userID domain.UserID, online bool, lastSeen *time.Time) error {
	err := s.users.UpdatePresence(userID, online, lastSeen)
	if errors.Is(err, errors.ErrUserNotFound) {
		s.log.Debug("Presence of unknown user ignored", "user_id", userID, "online", online)
		return nil
	}
	return err
}

// ResetPresence clears the online flags left by a previous run. No session
// survives a restart, so nobody is online before the first one opens.
func (s *UserService) ResetPresence(_ context.Context, at time.Time) error {
	reset, err := s.users.ResetPresence(at)
	if err != nil {
		return fmt.Errorf("resetting presence: %w", err)
	}
	s.log.Info("Stale presence reset", "users", reset)
	return nil
}

// FindLastSeen returns nil for a user that never went offline.
func (s *UserService) FindLastSeen(_ context.Context, userID domain.UserID) (*time.Time, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return user.LastSeen, nil
}

// ListUsers returns every other user with its presence fields.
func (s *UserService) ListUsers(_ context.Context, me domain.UserID) ([]domain.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	others := lo.Filter(users, func(u domain.User, _ int) bool {
		return u.ID != me
	})
	return lo.Map(others, func(u domain.User, _ int) domain.User {
		return u.Public()
	}), nil
}

// UpdateProfile applies the non empty fields of req. The avatar, when given,
// must be an image and replaces the previous one.
func (s *UserService) UpdateProfile(_ context.Context, userID domain.UserID, req auth.UpdateProfileRequest, avatar io.Reader) (domain.User, error) {
	if err := auth.Validate(req); err != nil {
		return domain.User{}, err
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return domain.User{}, err
	}

	previous := user.ProfilePicture
	if avatar != nil {
		media, err := s.media.Save(avatar)
		if err != nil {
			return domain.User{}, err
		}
		if media.ContentType != domain.ImageContent {
			s.deleteMedia(media.URL)
			return domain.User{}, errors.ErrUnsupportedMedia
		}
		user.ProfilePicture = media.URL
	}
	if name := strings.TrimSpace(req.UserName); name != "" {
		user.UserName = name
	}
	if req.About != "" {
		user.About = req.About
	}
	if req.Agreed != nil {
		user.Agreed = *req.Agreed
	}

	if err := s.users.Save(user); err != nil {
		return domain.User{}, err
	}
	if previous != "" && previous != user.ProfilePicture {
		s.deleteMedia(previous)
	}
	return user.Public(), nil
}

func (s *UserService) deleteMedia(url string) {
	if err := s.media.Delete(url); err != nil {
		s.log.Warn("Failed to delete media", "url", url, "error", err)
	}
}
