package runtime

import (
	"context"
	"log/slog"
	"time"
	"zenchat/contract"
	"zenchat/domain"
	"zenchat/domain/event"
)

const DefaultTypingTimeout = 3 * time.Second

type typingEntry struct {
	active     bool
	peer       domain.UserID
	timer      contract.Timer
	generation uint64 // bumped on every refresh, stale expiries are ignored
}

// TypingCoordinator tracks who types in which conversation.
// Each (user, conversation) pair owns one quiet-period timer: a refresh
// re-arms it, its expiry emits isTyping false. Every start is re-emitted
// to the peer so a client that missed the first one catches up.
type TypingCoordinator struct {
	log      *slog.Logger
	loop     contract.Loop
	registry contract.IRegistry
	router   *MessageFanoutRouter
	timeout  time.Duration
	states   map[domain.UserID]map[domain.ConversationID]*typingEntry
}

func NewTypingCoordinator(log *slog.Logger, loop contract.Loop, registry contract.IRegistry,
	router *MessageFanoutRouter, timeout time.Duration) *TypingCoordinator {
	if timeout <= 0 {
		timeout = DefaultTypingTimeout
	}
	return &TypingCoordinator{
		log:      log,
		loop:     loop,
		registry: registry,
		router:   router,
		timeout:  timeout,
		states:   make(map[domain.UserID]map[domain.ConversationID]*typingEntry),
	}
}

// Start marks userID as typing to peerID. Nothing happens while the peer
// has no open session.
func (t *TypingCoordinator) Start(ctx context.Context, userID domain.UserID, conversationID domain.ConversationID, peerID domain.UserID) {
	if userID == "" || conversationID == "" || peerID == "" {
		return
	}
	if !t.registry.IsOnline(peerID) {
		return
	}

	conversations, ok := t.states[userID]
	if !ok {
		conversations = make(map[domain.ConversationID]*typingEntry)
		t.states[userID] = conversations
	}
	entry, ok := conversations[conversationID]
	if !ok {
		entry = &typingEntry{}
		conversations[conversationID] = entry
	}

	entry.active = true
	entry.peer = peerID
	t.emit(ctx, userID, conversationID, peerID, true)
	t.arm(userID, conversationID, entry)
}

// Stop ends typing explicitly. Users that never typed are ignored.
func (t *TypingCoordinator) Stop(ctx context.Context, userID domain.UserID, conversationID domain.ConversationID, peerID domain.UserID) {
	if userID == "" || conversationID == "" || peerID == "" {
		return
	}
	conversations, ok := t.states[userID]
	if !ok {
		return
	}
	if entry, ok := conversations[conversationID]; ok {
		entry.active = false
		entry.generation++
		if entry.timer != nil {
			entry.timer.Stop()
			entry.timer = nil
		}
	}
	if t.registry.IsOnline(peerID) {
		t.emit(ctx, userID, conversationID, peerID, false)
	}
}

// ClearUser drops every typing state of a user and cancels its timers.
// Called when its last session closed.
func (t *TypingCoordinator) ClearUser(userID domain.UserID) {
	for _, entry := range t.states[userID] {
		if entry.timer != nil {
			entry.timer.Stop()
		}
	}
	delete(t.states, userID)
}

// IsTyping reports the current state of a (user, conversation) pair.
func (t *TypingCoordinator) IsTyping(userID domain.UserID, conversationID domain.ConversationID) bool {
	entry, ok := t.states[userID][conversationID]
	return ok && entry.active
}

func (t *TypingCoordinator) arm(userID domain.UserID, conversationID domain.ConversationID, entry *typingEntry) {
	if entry.timer != nil {
		entry.timer.Stop()
	}
	entry.generation++
	generation := entry.generation
	entry.timer = t.loop.AfterFunc(t.timeout, func(ctx context.Context) {
		t.expire(ctx, userID, conversationID, generation)
	})
}

// expire runs on the loop once the quiet period elapsed.
// A timer stopped too late still posts its task, the generation check
// discards it.
func (t *TypingCoordinator) expire(ctx context.Context, userID domain.UserID, conversationID domain.ConversationID, generation uint64) {
	entry, ok := t.states[userID][conversationID]
	if !ok || !entry.active || entry.generation != generation {
		return
	}
	entry.active = false
	entry.timer = nil
	if t.registry.IsOnline(entry.peer) {
		t.emit(ctx, userID, conversationID, entry.peer, false)
	}
}

func (t *TypingCoordinator) emit(ctx context.Context, userID domain.UserID, conversationID domain.ConversationID, peerID domain.UserID, typing bool) {
	t.router.Route(ctx, event.New(event.UserTyping, event.UserTypingPayload{
		ConversationID: conversationID,
		UserID:         userID,
		IsTyping:       typing,
	}), Recipients{Primary: []domain.UserID{peerID}})
}
