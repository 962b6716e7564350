package runtime

import (
	"context"
	"log/slog"
	"time"
	"zenchat/contract"
	"zenchat/domain"
	"zenchat/errors"
)

// SessionLifecycleManager drives a session through
// Connecting -> Identified -> Closed and keeps the registry, presence and
// typing state consistent with it.
type SessionLifecycleManager struct {
	log      *slog.Logger
	sessions *SessionTable
	registry contract.IRegistry
	presence *PresenceTracker
	typing   *TypingCoordinator
	now      func() time.Time
}

func NewSessionLifecycleManager(log *slog.Logger, sessions *SessionTable, registry contract.IRegistry,
	presence *PresenceTracker, typing *TypingCoordinator, now func() time.Time) *SessionLifecycleManager {
	if now == nil {
		now = time.Now
	}
	return &SessionLifecycleManager{
		log:      log,
		sessions: sessions,
		registry: registry,
		presence: presence,
		typing:   typing,
		now:      now,
	}
}

// Open records a freshly connected session. authUserID is empty when the
// transport did not authenticate the connection.
func (m *SessionLifecycleManager) Open(sessionID domain.SessionID, authUserID domain.UserID, sink contract.EventSink) {
	m.sessions.Add(domain.NewSession(sessionID, authUserID, m.now().UTC()), sink)
	m.log.Debug("Session opened", "session_id", sessionID)
}

// Identify binds the session to userID. The first session of a user
// brings it online.
func (m *SessionLifecycleManager) Identify(ctx context.Context, sessionID domain.SessionID, userID domain.UserID) error {
	conn, ok := m.sessions.Get(sessionID)
	if !ok {
		return errors.ErrSessionClosed
	}
	changed, err := conn.Session.Identify(userID)
	if err != nil || !changed {
		return err
	}
	if first := m.registry.Register(userID, sessionID, conn.Sink); first {
		m.presence.Online(ctx, userID)
	}
	m.log.Debug("Session identified", "session_id", sessionID, "user_id", userID)
	return nil
}

// Close is valid from any state and idempotent. A session closed before
// identifying leaves the registry untouched.
func (m *SessionLifecycleManager) Close(ctx context.Context, sessionID domain.SessionID) {
	conn, ok := m.sessions.Remove(sessionID)
	if !ok {
		return
	}
	if wasIdentified := conn.Session.Close(); !wasIdentified {
		m.log.Debug("Anonymous session closed", "session_id", sessionID)
		return
	}

	userID := conn.Session.UserID
	if offline := m.registry.Deregister(userID, sessionID); offline {
		m.typing.ClearUser(userID)
		m.presence.Offline(ctx, userID, m.now().UTC())
	}
	m.log.Debug("Session closed", "session_id", sessionID, "user_id", userID)
}

func (m *SessionLifecycleManager) Lookup(sessionID domain.SessionID) (*Connection, bool) {
	return m.sessions.Get(sessionID)
}
