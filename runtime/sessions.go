package runtime

import (
	"slices"
	"zenchat/contract"
	"zenchat/domain"
)

// Connection pairs a live session with the sink feeding its transport.
type Connection struct {
	Session *domain.Session
	Sink    contract.EventSink
}

// SessionTable tracks every open session, identified or not.
// Presence broadcasts are addressed to all of them.
type SessionTable struct {
	connections map[domain.SessionID]*Connection
}

func NewSessionTable() *SessionTable {
	return &SessionTable{connections: make(map[domain.SessionID]*Connection)}
}

func (t *SessionTable) Add(session *domain.Session, sink contract.EventSink) {
	t.connections[session.ID] = &Connection{Session: session, Sink: sink}
}

func (t *SessionTable) Get(sessionID domain.SessionID) (*Connection, bool) {
	c, ok := t.connections[sessionID]
	return c, ok
}

func (t *SessionTable) Remove(sessionID domain.SessionID) (*Connection, bool) {
	c, ok := t.connections[sessionID]
	if ok {
		delete(t.connections, sessionID)
	}
	return c, ok
}

// All returns every sink ordered by session id.
func (t *SessionTable) All() []contract.EventSink {
	ids := make([]domain.SessionID, 0, len(t.connections))
	for id := range t.connections {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	sinks := make([]contract.EventSink, 0, len(ids))
	for _, id := range ids {
		sinks = append(sinks, t.connections[id].Sink)
	}
	return sinks
}

func (t *SessionTable) Len() int {
	return len(t.connections)
}
