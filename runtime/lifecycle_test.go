package runtime

import (
	"context"
	"testing"
	"zenchat/domain"
	"zenchat/domain/event"
	"zenchat/errors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func onlineFlags(sink *recordingSink, userID domain.UserID) []bool {
	var res []bool
	for _, e := range sink.Named(event.UserStatus) {
		payload := e.Payload.(event.UserStatusPayload)
		if payload.UserID == userID {
			res = append(res, payload.IsOnline)
		}
	}
	return res
}

func TestSessionLifecycleManager_Multi_Device_Presence(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	watcher := h.open("watcher")

	// Only one transition is persisted each way
	h.presenceStore.EXPECT().MarkUserOnline(gomock.Any(), domain.UserID("alice")).Return(nil).Times(1)
	h.presenceStore.EXPECT().MarkUserOffline(gomock.Any(), domain.UserID("alice"), gomock.Any()).Return(nil).Times(1)

	// When alice opens two devices
	h.connect(t, "alice-1", "alice")
	h.connect(t, "alice-2", "alice")

	// Then a single online broadcast is emitted
	req.Equal([]bool{true}, onlineFlags(watcher, "alice"))
	req.Len(h.registry.SessionsFor("alice"), 2)

	// When one device closes, alice stays online
	h.close("alice-1")
	req.Equal([]bool{true}, onlineFlags(watcher, "alice"))
	req.True(h.registry.IsOnline("alice"))

	// When the last device closes, alice goes offline once
	h.close("alice-2")
	req.Equal([]bool{true, false}, onlineFlags(watcher, "alice"))
	req.False(h.registry.IsOnline("alice"))

	// Closing again changes nothing
	h.close("alice-2")
	req.Equal([]bool{true, false}, onlineFlags(watcher, "alice"))
}

func TestSessionLifecycleManager_Close_Before_Identify(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	watcher := h.open("watcher")
	h.open("anonymous")
	req.Equal(2, h.sessions.Len())

	h.close("anonymous")

	req.Equal(1, h.sessions.Len())
	req.Zero(h.registry.Sessions())
	req.Empty(watcher.events)
}

func TestSessionLifecycleManager_Identify(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	t.Run("should accept the same identity twice", func(t *testing.T) {
		h := newHarness(t)
		h.presenceStore.EXPECT().MarkUserOnline(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		watcher := h.connect(t, "alice-1", "alice")

		req.NoError(h.lifecycle.Identify(ctx, "alice-1", "alice"))
		req.Equal([]bool{true}, onlineFlags(watcher, "alice"))
	})

	t.Run("should reject another identity on an identified session", func(t *testing.T) {
		h := newHarness(t)
		h.allowPresenceWrites()
		h.connect(t, "alice-1", "alice")

		err := h.lifecycle.Identify(ctx, "alice-1", "mallory")

		req.ErrorIs(err, errors.ErrSessionAlreadyIdentified)
		req.False(h.registry.IsOnline("mallory"))
	})

	t.Run("should reject an identity other than the authenticated one", func(t *testing.T) {
		h := newHarness(t)
		h.gateway.Connect("s1", "alice", &recordingSink{})

		err := h.lifecycle.Identify(ctx, "s1", "mallory")

		req.ErrorIs(err, errors.ErrIdentityMismatch)
		req.Zero(h.registry.Sessions())
	})

	t.Run("should reject unknown sessions", func(t *testing.T) {
		h := newHarness(t)
		req.ErrorIs(h.lifecycle.Identify(ctx, "ghost", "alice"), errors.ErrSessionClosed)
	})
}
