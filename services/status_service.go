package services

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"
	"zenchat/domain"
	"zenchat/errors"
	"zenchat/repositories"
	"zenchat/storage"

	"github.com/oklog/ulid/v2"
)

type IStatusService interface {
	Create(ctx context.Context, req CreateStatusRequest) (StatusView, error)
	List(ctx context.Context) ([]StatusView, error)
	View(ctx context.Context, statusID domain.StatusID, viewerID domain.UserID) (StatusView, error)
	Delete(ctx context.Context, statusID domain.StatusID, userID domain.UserID) error
}

// CreateStatusRequest holds either a text or a media status.
type CreateStatusRequest struct {
	UserID      domain.UserID
	Content     string
	ContentType domain.ContentType
	Media       io.Reader
}

// StatusView is a status with its owner resolved.
type StatusView struct {
	domain.Status
	Owner domain.User `json:"owner"`
}

type StatusService struct {
	log      *slog.Logger
	statuses repositories.IStatusRepository
	users    repositories.IUserRepository
	media    storage.IMediaStore
	ttl      time.Duration
	now      func() time.Time
}

func NewStatusService(log *slog.Logger, statuses repositories.IStatusRepository, users repositories.IUserRepository,
	media storage.IMediaStore, ttl time.Duration) *StatusService {
	return &StatusService{
		log:      log,
		statuses: statuses,
		users:    users,
		media:    media,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create publishes a status visible for ttl. With a file, the content is
// the media url and the content type comes from the file itself.
func (s *StatusService) Create(_ context.Context, req CreateStatusRequest) (StatusView, error) {
	now := s.now()
	status := domain.Status{
		ID:          domain.StatusID(ulid.Make().String()),
		UserID:      req.UserID,
		Content:     strings.TrimSpace(req.Content),
		ContentType: req.ContentType,
		Viewers:     []domain.UserID{},
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}
	if status.ContentType == "" {
		status.ContentType = domain.TextContent
	}

	if req.Media != nil {
		media, err := s.media.Save(req.Media)
		if err != nil {
			return StatusView{}, err
		}
		status.Content = media.URL
		status.ContentType = media.ContentType
	} else {
		switch {
		case status.Content == "":
			return StatusView{}, errors.ErrEmptyMessage
		case !status.ContentType.IsValid():
			return StatusView{}, errors.ErrInvalidContentType
		}
	}

	if err := s.statuses.Save(status); err != nil {
		return StatusView{}, err
	}
	return s.view(status)
}

// List returns the statuses that have not expired yet, newest first.
func (s *StatusService) List(_ context.Context) ([]StatusView, error) {
	statuses, err := s.statuses.List()
	if err != nil {
		return nil, err
	}
	views := make([]StatusView, 0, len(statuses))
	for _, status := range statuses {
		view, err := s.view(status)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// View records viewerID once among the viewers.
func (s *StatusService) View(_ context.Context, statusID domain.StatusID, viewerID domain.UserID) (StatusView, error) {
	status, err := s.statuses.Update(statusID, func(status *domain.Status) error {
		status.AddViewer(viewerID)
		return nil
	})
	if err != nil {
		return StatusView{}, err
	}
	return s.view(status)
}

// Delete removes a status, only its owner may do so.
func (s *StatusService) Delete(_ context.Context, statusID domain.StatusID, userID domain.UserID) error {
	status, err := s.statuses.GetByID(statusID)
	if err != nil {
		return err
	}
	if status.UserID != userID {
		return errors.ErrForbidden
	}
	if err := s.statuses.Delete(statusID); err != nil {
		return err
	}
	if status.ContentType.IsMedia() {
		if err := s.media.Delete(status.Content); err != nil {
			s.log.Warn("Failed to delete media", "url", status.Content, "error", err)
		}
	}
	return nil
}

func (s *StatusService) view(status domain.Status) (StatusView, error) {
	owner, err := s.users.GetByID(status.UserID)
	if errors.Is(err, errors.ErrUserNotFound) {
		owner = domain.User{ID: status.UserID}
	} else if err != nil {
		return StatusView{}, err
	}
	return StatusView{Status: status, Owner: owner.Public()}, nil
}
