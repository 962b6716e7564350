package runtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
	"zenchat/contract"
	"zenchat/domain"
	"zenchat/domain/event"
	"zenchat/errors"
	"zenchat/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// manualLoop runs tasks inline and fires timers only when the test
// advances its clock.
type manualLoop struct {
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	due     time.Time
	task    contract.Task
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func newManualLoop() *manualLoop {
	return &manualLoop{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (l *manualLoop) Post(task contract.Task) bool {
	task(context.Background())
	return true
}

func (l *manualLoop) Await(ctx context.Context, io func(ctx context.Context) error, then func(ctx context.Context, err error)) {
	then(ctx, io(ctx))
}

func (l *manualLoop) AfterFunc(d time.Duration, task contract.Task) contract.Timer {
	timer := &manualTimer{due: l.now.Add(d), task: task}
	l.timers = append(l.timers, timer)
	return timer
}

// Advance moves the clock forward, firing due timers in deadline order.
func (l *manualLoop) Advance(d time.Duration) {
	target := l.now.Add(d)
	for {
		var next *manualTimer
		for _, timer := range l.timers {
			if timer.stopped || timer.fired || timer.due.After(target) {
				continue
			}
			if next == nil || timer.due.Before(next.due) {
				next = timer
			}
		}
		if next == nil {
			break
		}
		l.now = next.due
		next.fired = true
		next.task(context.Background())
	}
	l.now = target
}

func (l *manualLoop) Now() time.Time {
	return l.now
}

func (l *manualLoop) PendingTimers() int {
	count := 0
	for _, timer := range l.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

// recordingSink keeps every consumed event, until closed.
type recordingSink struct {
	events []event.Event
	closed bool
}

func (s *recordingSink) Consume(_ context.Context, e event.Event) error {
	if s.closed {
		return errors.ErrSinkClosed
	}
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Named(name event.Name) []event.Event {
	var res []event.Event
	for _, e := range s.events {
		if e.Name == name {
			res = append(res, e)
		}
	}
	return res
}

func (s *recordingSink) Replies() []event.Event {
	var res []event.Event
	for _, e := range s.events {
		if e.IsReply() {
			res = append(res, e)
		}
	}
	return res
}

func (s *recordingSink) Reset() {
	s.events = nil
}

// harness wires the realtime layer on a manual loop with mocked stores.
type harness struct {
	loop          *manualLoop
	registry      *Registry
	sessions      *SessionTable
	router        *MessageFanoutRouter
	presence      *PresenceTracker
	typing        *TypingCoordinator
	lifecycle     *SessionLifecycleManager
	gateway       *Gateway
	presenceStore *mocks.MockPresenceStore
	messageStore  *mocks.MockMessageStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	loop := newManualLoop()
	presenceStore := mocks.NewMockPresenceStore(ctrl)
	messageStore := mocks.NewMockMessageStore(ctrl)

	registry := NewRegistry(nil)
	sessions := NewSessionTable()
	router := NewMessageFanoutRouter(log, registry, nil)
	presence := NewPresenceTracker(log, loop, registry, sessions, presenceStore, nil)
	typing := NewTypingCoordinator(log, loop, registry, router, DefaultTypingTimeout)
	lifecycle := NewSessionLifecycleManager(log, sessions, registry, presence, typing, loop.Now)

	return &harness{
		loop:          loop,
		registry:      registry,
		sessions:      sessions,
		router:        router,
		presence:      presence,
		typing:        typing,
		lifecycle:     lifecycle,
		gateway:       NewGateway(log, loop, lifecycle, presence, typing, router, messageStore, nil),
		presenceStore: presenceStore,
		messageStore:  messageStore,
	}
}

// allowPresenceWrites accepts any presence persistence.
func (h *harness) allowPresenceWrites() {
	h.presenceStore.EXPECT().MarkUserOnline(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.presenceStore.EXPECT().MarkUserOffline(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// open connects an anonymous session.
func (h *harness) open(sessionID domain.SessionID) *recordingSink {
	sink := &recordingSink{}
	h.gateway.Connect(sessionID, "", sink)
	return sink
}

// openAuthenticated connects a session the transport authenticated as
// authUserID, without announcing any identity on it.
func (h *harness) openAuthenticated(sessionID domain.SessionID, authUserID domain.UserID) *recordingSink {
	sink := &recordingSink{}
	h.gateway.Connect(sessionID, authUserID, sink)
	return sink
}

// connect opens a session and announces userID on it.
func (h *harness) connect(t *testing.T, sessionID domain.SessionID, userID domain.UserID) *recordingSink {
	t.Helper()
	sink := h.open(sessionID)
	h.gateway.Handle(sessionID, event.UserConnected, jsonOf(t, userID), nil)
	return sink
}

func (h *harness) close(sessionID domain.SessionID) {
	h.gateway.Disconnect(sessionID)
}

func jsonOf(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
