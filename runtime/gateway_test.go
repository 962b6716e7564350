package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"
	"zenchat/domain"
	"zenchat/domain/event"
	"zenchat/errors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func storedCopy(msg domain.Message) domain.Message {
	msg.ID = "m1"
	msg.ConversationID = "c1"
	msg.CreatedAt = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	msg.UpdatedAt = msg.CreatedAt
	return msg
}

// Alice sends to Bob who has a phone and a laptop open: both devices and
// Alice's own session receive the message.
func TestGateway_SendMessage_Reaches_Every_Device(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.allowPresenceWrites()
	alice := h.connect(t, "alice-1", "alice")
	bobPhone := h.connect(t, "bob-1", "bob")
	bobLaptop := h.connect(t, "bob-2", "bob")
	carol := h.connect(t, "carol-1", "carol")

	var stored domain.Message
	h.messageStore.EXPECT().PersistMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.Message) (domain.Message, error) {
			req.Equal(domain.StatusSent, msg.Status)
			req.Equal(domain.TextContent, msg.ContentType)
			stored = storedCopy(msg)
			return stored, nil
		}).Times(1)

	h.gateway.Handle("alice-1", event.SendMessage, jsonOf(t, event.OutgoingMessage{
		SenderID:   "alice",
		ReceiverID: "bob",
		Content:    "hello",
	}), nil)

	expected := event.New(event.ReceiveMessage, stored)
	req.Equal([]event.Event{expected}, bobPhone.Named(event.ReceiveMessage))
	req.Equal([]event.Event{expected}, bobLaptop.Named(event.ReceiveMessage))
	req.Equal([]event.Event{expected}, alice.Named(event.ReceiveMessage))
	req.Empty(carol.Named(event.ReceiveMessage))
}

func TestGateway_SendMessage_Failures(t *testing.T) {
	req := require.New(t)

	t.Run("should report a persistence failure to the sender only", func(t *testing.T) {
		h := newHarness(t)
		h.allowPresenceWrites()
		alice := h.connect(t, "alice-1", "alice")
		aliceLaptop := h.connect(t, "alice-2", "alice")
		bob := h.connect(t, "bob-1", "bob")

		h.messageStore.EXPECT().PersistMessage(gomock.Any(), gomock.Any()).
			Return(domain.Message{}, fmt.Errorf("disk full")).Times(1)

		h.gateway.Handle("alice-1", event.SendMessage, jsonOf(t, event.OutgoingMessage{
			SenderID: "alice", ReceiverID: "bob", Content: "hello",
		}), nil)

		errs := alice.Named(event.ErrorSendingMessage)
		req.Len(errs, 1)
		req.Equal(event.SendErrorPayload{Error: sendFailure, Details: "disk full"}, errs[0].Payload)
		req.Empty(aliceLaptop.Named(event.ErrorSendingMessage))
		req.Empty(bob.Named(event.ErrorSendingMessage))
		req.Empty(bob.Named(event.ReceiveMessage))
	})

	t.Run("should refuse to send on behalf of someone else", func(t *testing.T) {
		h := newHarness(t)
		h.allowPresenceWrites()
		mallory := h.connect(t, "mallory-1", "mallory")
		h.messageStore.EXPECT().PersistMessage(gomock.Any(), gomock.Any()).Times(0)

		h.gateway.Handle("mallory-1", event.SendMessage, jsonOf(t, event.OutgoingMessage{
			SenderID: "alice", ReceiverID: "bob", Content: "hello",
		}), nil)

		errs := mallory.Named(event.ErrorSendingMessage)
		req.Len(errs, 1)
		req.Equal(errors.ErrSenderMismatch.Error(), errs[0].Payload.(event.SendErrorPayload).Details)
	})

	t.Run("should refuse a spoofed sender on an authenticated socket that never identified", func(t *testing.T) {
		h := newHarness(t)
		mallory := h.openAuthenticated("mallory-1", "mallory")
		h.messageStore.EXPECT().PersistMessage(gomock.Any(), gomock.Any()).Times(0)

		h.gateway.Handle("mallory-1", event.SendMessage, jsonOf(t, event.OutgoingMessage{
			SenderID: "alice", ReceiverID: "bob", Content: "hello",
		}), nil)

		errs := mallory.Named(event.ErrorSendingMessage)
		req.Len(errs, 1)
		req.Equal(errors.ErrSenderMismatch.Error(), errs[0].Payload.(event.SendErrorPayload).Details)
	})

	t.Run("should accept the authenticated sender before identification", func(t *testing.T) {
		h := newHarness(t)
		h.openAuthenticated("alice-1", "alice")
		h.messageStore.EXPECT().PersistMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg domain.Message) (domain.Message, error) {
				req.Equal(domain.UserID("alice"), msg.SenderID)
				return storedCopy(msg), nil
			}).Times(1)

		h.gateway.Handle("alice-1", event.SendMessage, jsonOf(t, event.OutgoingMessage{
			SenderID: "alice", ReceiverID: "bob", Content: "hello",
		}), nil)
	})

	t.Run("should silently drop malformed payloads", func(t *testing.T) {
		h := newHarness(t)
		h.allowPresenceWrites()
		alice := h.connect(t, "alice-1", "alice")
		alice.Reset()
		h.messageStore.EXPECT().PersistMessage(gomock.Any(), gomock.Any()).Times(0)

		h.gateway.Handle("alice-1", event.SendMessage, json.RawMessage(`{"sender":`), nil)
		h.gateway.Handle("alice-1", event.SendMessage, jsonOf(t, map[string]string{"sender": "alice"}), nil)
		h.gateway.Handle("alice-1", "unknown-event", json.RawMessage(`{}`), nil)

		req.Empty(alice.events)
	})
}

func TestGateway_AddReaction(t *testing.T) {
	req := require.New(t)

	t.Run("should route the reaction to both participants", func(t *testing.T) {
		h := newHarness(t)
		h.allowPresenceWrites()
		alice := h.connect(t, "alice-1", "alice")
		bob := h.connect(t, "bob-1", "bob")

		msg := domain.Message{ID: "m1", SenderID: "alice", ReceiverID: "bob"}
		h.messageStore.EXPECT().PersistReaction(gomock.Any(), domain.MessageID("m1"), domain.UserID("bob"), "👍").
			DoAndReturn(func(_ context.Context, _ domain.MessageID, reactor domain.UserID, emoji string) (domain.Message, error) {
				msg.ToggleReaction(reactor, emoji)
				return msg, nil
			}).Times(1)

		h.gateway.Handle("bob-1", event.AddReaction, jsonOf(t, event.Reaction{MessageID: "m1", Emoji: "👍"}), nil)

		expected := event.ReactionUpdatePayload{MessageID: "m1", Reactions: []domain.Reaction{{UserID: "bob", Emoji: "👍"}}}
		for _, sink := range []*recordingSink{alice, bob} {
			updates := sink.Named(event.ReactionUpdate)
			req.Len(updates, 1)
			req.Equal(expected, updates[0].Payload)
		}
	})

	t.Run("should react as the authenticated user on a socket that never identified", func(t *testing.T) {
		h := newHarness(t)
		mallory := h.openAuthenticated("mallory-1", "mallory")

		// Given a payload claiming alice as the reactor
		h.messageStore.EXPECT().PersistReaction(gomock.Any(), domain.MessageID("m1"), domain.UserID("mallory"), "👍").
			Return(domain.Message{}, errors.ErrForbidden).Times(1)

		// When mallory's authenticated socket sends it
		h.gateway.Handle("mallory-1", event.AddReaction, jsonOf(t, event.Reaction{
			MessageID: "m1", ReactionUserID: "alice", Emoji: "👍",
		}), nil)

		// Then the reaction is attempted as mallory, never as alice
		req.Equal([]event.Event{event.New(event.Error, event.ErrorPayload{Message: reactionFailure})},
			mallory.Named(event.Error))
	})

	t.Run("should answer the requester only when the message is missing", func(t *testing.T) {
		h := newHarness(t)
		h.allowPresenceWrites()
		alice := h.connect(t, "alice-1", "alice")
		bob := h.connect(t, "bob-1", "bob")

		h.messageStore.EXPECT().PersistReaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.Message{}, fmt.Errorf("lookup: %w", errors.ErrMessageNotFound)).Times(1)

		h.gateway.Handle("bob-1", event.AddReaction, jsonOf(t, event.Reaction{MessageID: "gone", Emoji: "👍"}), nil)

		req.Equal([]event.Event{event.New(event.Error, event.ErrorPayload{Message: messageNotFound})},
			bob.Named(event.Error))
		req.Empty(alice.Named(event.Error))
		req.Empty(alice.Named(event.ReactionUpdate))
	})
}

func TestGateway_MessageRead(t *testing.T) {
	req := require.New(t)

	t.Run("should notify the sender and the reader devices", func(t *testing.T) {
		h := newHarness(t)
		h.allowPresenceWrites()
		alice := h.connect(t, "alice-1", "alice")
		bobLaptop := h.connect(t, "bob-2", "bob")
		h.connect(t, "bob-1", "bob")

		ids := []domain.MessageID{"m1", "m2"}
		h.messageStore.EXPECT().MarkMessagesRead(gomock.Any(), ids, domain.UserID("bob")).Return(nil).Times(1)

		h.gateway.Handle("bob-1", event.MessageRead, jsonOf(t, event.ReadReceipt{MessageIDs: ids, SenderID: "alice"}), nil)

		expected := event.New(event.MessagesRead, event.MessagesReadPayload{MessageIDs: ids, MessageStatus: domain.StatusRead})
		req.Equal([]event.Event{expected}, alice.Named(event.MessagesRead))
		req.Equal([]event.Event{expected}, bobLaptop.Named(event.MessagesRead))
	})

	t.Run("should ignore anonymous sessions and empty receipts", func(t *testing.T) {
		h := newHarness(t)
		h.allowPresenceWrites()
		h.open("anon")
		h.connect(t, "bob-1", "bob")
		h.messageStore.EXPECT().MarkMessagesRead(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		h.gateway.Handle("anon", event.MessageRead, jsonOf(t, event.ReadReceipt{MessageIDs: []domain.MessageID{"m1"}, SenderID: "alice"}), nil)
		h.gateway.Handle("bob-1", event.MessageRead, jsonOf(t, event.ReadReceipt{SenderID: "alice"}), nil)
		req.True(h.registry.IsOnline("bob"))
	})

	t.Run("should report a persistence failure to the reader", func(t *testing.T) {
		h := newHarness(t)
		h.allowPresenceWrites()
		alice := h.connect(t, "alice-1", "alice")
		bob := h.connect(t, "bob-1", "bob")
		h.messageStore.EXPECT().MarkMessagesRead(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("io")).Times(1)

		h.gateway.Handle("bob-1", event.MessageRead, jsonOf(t, event.ReadReceipt{MessageIDs: []domain.MessageID{"m1"}, SenderID: "alice"}), nil)

		req.Len(bob.Named(event.Error), 1)
		req.Empty(alice.Named(event.MessagesRead))
	})
}

func TestGateway_GetUserStatus_Replies_With_Ack(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.allowPresenceWrites()
	h.connect(t, "alice-1", "alice")
	bob := h.connect(t, "bob-1", "bob")

	ack := int64(7)
	h.gateway.Handle("bob-1", event.GetUserStatus, jsonOf(t, "alice"), &ack)

	replies := bob.Replies()
	req.Len(replies, 1)
	req.Equal(ack, *replies[0].Ack)
	req.Equal(event.StatusReply{UserID: "alice", IsOnline: true}, replies[0].Payload)

	// Without acknowledgement there is nobody to answer
	h.gateway.Handle("bob-1", event.GetUserStatus, jsonOf(t, "alice"), nil)
	req.Len(bob.Replies(), 1)
}

// Typing to a receiver with no session emits nothing anywhere.
func TestGateway_Typing_To_Offline_Receiver(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.allowPresenceWrites()
	alice := h.connect(t, "alice-1", "alice")
	carol := h.connect(t, "carol-1", "carol")

	h.gateway.Handle("alice-1", event.TypingStart, jsonOf(t, event.Typing{ConversationID: "c1", ReceiverID: "bob"}), nil)

	req.Empty(alice.Named(event.UserTyping))
	req.Empty(carol.Named(event.UserTyping))
	req.False(h.typing.IsTyping("alice", "c1"))
}

func TestGateway_Typing_Start_And_Stop(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.allowPresenceWrites()
	h.connect(t, "alice-1", "alice")
	bob := h.connect(t, "bob-1", "bob")

	h.gateway.Handle("alice-1", event.TypingStart, jsonOf(t, event.Typing{ConversationID: "c1", ReceiverID: "bob"}), nil)
	h.gateway.Handle("alice-1", event.TypingStop, jsonOf(t, event.Typing{ConversationID: "c1", ReceiverID: "bob"}), nil)

	req.Equal([]bool{true, false}, typingPayloads(bob))
}

func TestGateway_DeliverMessage_From_Rest(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.allowPresenceWrites()
	alice := h.connect(t, "alice-1", "alice")
	bob := h.connect(t, "bob-1", "bob")

	msg := domain.Message{ID: "m1", SenderID: "alice", ReceiverID: "bob", Content: "from rest"}
	req.True(h.gateway.DeliverMessage(msg))

	req.Len(bob.Named(event.ReceiveMessage), 1)
	req.Len(alice.Named(event.ReceiveMessage), 1)

	h.gateway.DeliverReadReceipts("bob", map[domain.UserID][]domain.MessageID{"alice": {"m1"}})
	req.Len(alice.Named(event.MessagesRead), 1)
}
