package runtime

import (
	"context"
	"log/slog"
	"time"
	"zenchat/contract"
	"zenchat/domain"
	"zenchat/domain/event"
	"zenchat/errors"
	"zenchat/observability"
)

const statusFetchFailure = "Failed to fetch status"

// PresenceTracker broadcasts online/offline transitions to every open
// session and keeps the persisted presence in line, fire-and-forget.
// The registry is the source of truth for "online", the store only for
// last seen.
type PresenceTracker struct {
	log      *slog.Logger
	loop     contract.Loop
	registry contract.IRegistry
	sessions *SessionTable
	store    contract.PresenceStore
	metrics  *observability.Metrics
	// one write in flight per user, later transitions wait in writes
	writes map[domain.UserID]*presenceWrites
}

// presenceWrites holds the transition waiting behind the running write.
// Only the latest one matters, intermediate transitions are dropped.
type presenceWrites struct {
	next *presenceWrite
}

type presenceWrite struct {
	online   bool
	lastSeen time.Time
}

func NewPresenceTracker(log *slog.Logger, loop contract.Loop, registry contract.IRegistry,
	sessions *SessionTable, store contract.PresenceStore, metrics *observability.Metrics) *PresenceTracker {
	return &PresenceTracker{
		log:      log,
		loop:     loop,
		registry: registry,
		sessions: sessions,
		store:    store,
		metrics:  metrics,
		writes:   make(map[domain.UserID]*presenceWrites),
	}
}

// Online is called once per offline -> online transition.
func (p *PresenceTracker) Online(ctx context.Context, userID domain.UserID) {
	p.broadcast(ctx, event.New(event.UserStatus, event.UserStatusPayload{
		UserID:   userID,
		IsOnline: true,
	}))
	p.persist(ctx, userID, presenceWrite{online: true})
}

// Offline is called once the user's last session closed.
func (p *PresenceTracker) Offline(ctx context.Context, userID domain.UserID, lastSeen time.Time) {
	p.broadcast(ctx, event.New(event.UserStatus, event.UserStatusPayload{
		UserID:   userID,
		IsOnline: false,
		LastSeen: &lastSeen,
	}))
	p.persist(ctx, userID, presenceWrite{online: false, lastSeen: lastSeen})
}

// persist writes presence transitions of a user in the order they happened.
// A transition arriving while a write is running is queued behind it.
func (p *PresenceTracker) persist(ctx context.Context, userID domain.UserID, w presenceWrite) {
	if pending, ok := p.writes[userID]; ok {
		pending.next = &w
		return
	}
	p.writes[userID] = &presenceWrites{}
	p.write(ctx, userID, w)
}

func (p *PresenceTracker) write(ctx context.Context, userID domain.UserID, w presenceWrite) {
	p.loop.Await(ctx, func(ctx context.Context) error {
		if w.online {
			return p.store.MarkUserOnline(ctx, userID)
		}
		return p.store.MarkUserOffline(ctx, userID, w.lastSeen)
	}, func(ctx context.Context, err error) {
		if err != nil {
			p.metrics.IncrPersistFailures()
			p.log.Error("Failed to persist presence", "user_id", userID, "online", w.online, "error", err)
		}
		pending := p.writes[userID]
		if pending == nil || pending.next == nil {
			delete(p.writes, userID)
			return
		}
		next := *pending.next
		pending.next = nil
		p.write(ctx, userID, next)
	})
}

// GetStatus answers a presence query through reply.
// An online user is answered immediately, otherwise last seen is read from
// the store and the registry is checked again once it returns.
func (p *PresenceTracker) GetStatus(ctx context.Context, userID domain.UserID, reply func(ctx context.Context, status event.StatusReply)) {
	if p.registry.IsOnline(userID) {
		reply(ctx, event.StatusReply{UserID: userID, IsOnline: true})
		return
	}

	var lastSeen *time.Time
	p.loop.Await(ctx, func(ctx context.Context) error {
		var err error
		lastSeen, err = p.store.FindLastSeen(ctx, userID)
		return err
	}, func(ctx context.Context, err error) {
		if err != nil && !errors.Is(err, errors.ErrUserNotFound) {
			p.log.Error("Failed to fetch last seen", "user_id", userID, "error", err)
			reply(ctx, event.StatusReply{UserID: userID, Error: statusFetchFailure})
			return
		}
		if p.registry.IsOnline(userID) {
			reply(ctx, event.StatusReply{UserID: userID, IsOnline: true})
			return
		}
		reply(ctx, event.StatusReply{UserID: userID, LastSeen: lastSeen})
	})
}

// broadcast reaches every open session, identified or not.
func (p *PresenceTracker) broadcast(ctx context.Context, e event.Event) {
	for _, sink := range p.sessions.All() {
		if err := sink.Consume(ctx, e); err != nil {
			p.metrics.IncrDropped()
			continue
		}
		p.metrics.IncrDelivered()
	}
}
