package sink

import (
	"context"
	"log/slog"
	"sync"
	"zenchat/domain"
	"zenchat/domain/event"
	"zenchat/errors"
)

// SessionSink is the outbound queue of one socket session.
// Consume never blocks: a full queue drops the event, delivery is best effort.
// Events are drained in order by the single writer reading Events.
type SessionSink struct {
	mu        sync.Mutex
	log       *slog.Logger
	sessionID domain.SessionID
	out       chan event.Event
	closed    bool
}

func NewSessionSink(log *slog.Logger, sessionID domain.SessionID, size int) *SessionSink {
	if size <= 0 {
		size = 1
	}
	return &SessionSink{log: log, sessionID: sessionID, out: make(chan event.Event, size)}
}

func (s *SessionSink) Consume(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.ErrSinkClosed
	}
	select {
	case s.out <- e:
		return nil
	default:
		s.log.Warn("Session queue full, event dropped",
			"session_id", s.sessionID, "event", e.Name, "capacity", cap(s.out))
		return errors.ErrSinkOverflow
	}
}

// Events is closed once the sink is closed and drained.
func (s *SessionSink) Events() <-chan event.Event {
	return s.out
}

// Close is idempotent.
func (s *SessionSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.out)
}
