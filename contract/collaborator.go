//go:generate go run go.uber.org/mock/mockgen -source=collaborator.go -destination=../mocks/mock_collaborator.go -package=mocks
package contract

import (
	"context"
	"time"
	"zenchat/domain"
	"zenchat/domain/event"
)

// EventSink is the outbound side of one session.
// Consume must never block the caller.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// PresenceStore persists online flags and last seen timestamps.
type PresenceStore interface {
	MarkUserOnline(ctx context.Context, userID domain.UserID) error
	MarkUserOffline(ctx context.Context, userID domain.UserID, lastSeen time.Time) error
	FindLastSeen(ctx context.Context, userID domain.UserID) (*time.Time, error)
}

// MessageStore persists messages, reactions and read receipts.
// PersistMessage returns the canonical stored copy.
type MessageStore interface {
	PersistMessage(ctx context.Context, msg domain.Message) (domain.Message, error)
	PersistReaction(ctx context.Context, messageID domain.MessageID, reactorID domain.UserID, emoji string) (domain.Message, error)
	MarkMessagesRead(ctx context.Context, messageIDs []domain.MessageID, receiverID domain.UserID) error
}
