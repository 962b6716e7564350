package domain

import (
	"time"
	"zenchat/errors"
)

type SessionID string

type SessionState int

const (
	Connecting SessionState = iota
	Identified
	Closed
)

func (s SessionState) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Identified:
		return "identified"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session is one live transport connection. It is never persisted.
// AuthUserID is set when the transport authenticated the connection,
// UserID once the client announced its identity.
type Session struct {
	ID          SessionID
	UserID      UserID
	AuthUserID  UserID
	State       SessionState
	ConnectedAt time.Time
}

func NewSession(id SessionID, authUserID UserID, at time.Time) *Session {
	return &Session{ID: id, AuthUserID: authUserID, State: Connecting, ConnectedAt: at}
}

// Identify moves the session from Connecting to Identified.
// It returns false without error when the same identity is announced twice.
func (s *Session) Identify(userID UserID) (bool, error) {
	switch s.State {
	case Closed:
		return false, errors.ErrSessionClosed
	case Identified:
		if s.UserID == userID {
			return false, nil
		}
		return false, errors.ErrSessionAlreadyIdentified
	}
	if s.AuthUserID != "" && s.AuthUserID != userID {
		return false, errors.ErrIdentityMismatch
	}
	s.UserID = userID
	s.State = Identified
	return true, nil
}

// Close marks the session closed and reports whether it was identified.
func (s *Session) Close() (wasIdentified bool) {
	wasIdentified = s.State == Identified
	s.State = Closed
	return wasIdentified
}

func (s *Session) IsIdentified() bool {
	return s.State == Identified
}

// Principal is the identity the session acts as: the announced user once
// identified, else the authenticated one. Empty for an anonymous session.
func (s *Session) Principal() UserID {
	if s.IsIdentified() {
		return s.UserID
	}
	return s.AuthUserID
}
