package runtime

import (
	"slices"
	"zenchat/contract"
	"zenchat/domain"
	"zenchat/observability"
)

type Set map[domain.SessionID]struct{}

// Registry is the ConnectionRegistry: user -> open sessions.
// A user is present iff it holds at least one session.
// It is only touched from the dispatcher, hence no mutex.
type Registry struct {
	rooms   map[domain.UserID]Set                   // map user -> sessions
	sinks   map[domain.SessionID]contract.EventSink // map session -> sink
	metrics *observability.Metrics
}

func NewRegistry(metrics *observability.Metrics) *Registry {
	return &Registry{
		rooms:   make(map[domain.UserID]Set),
		sinks:   make(map[domain.SessionID]contract.EventSink),
		metrics: metrics,
	}
}

// Register adds a session to the user's room, creating it on the fly.
// Registering the same session twice is a no-op.
// It reports whether this call brought the user online.
func (r *Registry) Register(userID domain.UserID, sessionID domain.SessionID, sink contract.EventSink) bool {
	room, ok := r.rooms[userID]
	if !ok {
		room = make(Set)
		r.rooms[userID] = room
	}
	room[sessionID] = struct{}{}
	r.sinks[sessionID] = sink
	r.report()
	return !ok
}

// Deregister removes a session and reports whether the user has no
// session left. Unknown users or sessions are ignored.
func (r *Registry) Deregister(userID domain.UserID, sessionID domain.SessionID) bool {
	room, ok := r.rooms[userID]
	if !ok {
		return false
	}
	if _, exists := room[sessionID]; !exists {
		return false
	}
	delete(room, sessionID)
	delete(r.sinks, sessionID)
	defer r.report()

	// No empty set is kept for an offline user
	if len(room) == 0 {
		delete(r.rooms, userID)
		return true
	}
	return false
}

// SessionsFor returns the user's sessions in a stable order, empty when unknown.
func (r *Registry) SessionsFor(userID domain.UserID) []domain.SessionID {
	room := r.rooms[userID]
	sessions := make([]domain.SessionID, 0, len(room))
	for sessionID := range room {
		sessions = append(sessions, sessionID)
	}
	slices.Sort(sessions)
	return sessions
}

func (r *Registry) Sink(sessionID domain.SessionID) (contract.EventSink, bool) {
	sink, ok := r.sinks[sessionID]
	return sink, ok
}

func (r *Registry) IsOnline(userID domain.UserID) bool {
	_, ok := r.rooms[userID]
	return ok
}

func (r *Registry) OnlineUsers() int {
	return len(r.rooms)
}

func (r *Registry) Sessions() int {
	return len(r.sinks)
}

func (r *Registry) report() {
	r.metrics.SetPresence(len(r.sinks), len(r.rooms))
}
