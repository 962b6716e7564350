package domain

import (
	"slices"
	"time"
)

type StatusID string

// Status is a story visible for a limited time, 24 hours by default.
type Status struct {
	ID          StatusID    `json:"id"`
	UserID      UserID      `json:"user"`
	Content     string      `json:"content"`
	ContentType ContentType `json:"contentType"`
	Viewers     []UserID    `json:"viewers"`
	CreatedAt   time.Time   `json:"createdAt"`
	ExpiresAt   time.Time   `json:"expiresAt"`
}

func (s Status) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AddViewer records a viewer once. It returns false if already present
// or if the viewer is the owner.
func (s *Status) AddViewer(viewer UserID) bool {
	if viewer == s.UserID || slices.Contains(s.Viewers, viewer) {
		return false
	}
	s.Viewers = append(s.Viewers, viewer)
	return true
}
