package runtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"zenchat/contract"
	"zenchat/domain"
	"zenchat/domain/event"
	"zenchat/errors"
	"zenchat/observability"

	"github.com/go-playground/validator/v10"
)

const (
	sendFailure     = "Failed to send message"
	readFailure     = "Failed to mark messages as read"
	reactionFailure = "Failed to add reaction"
	messageNotFound = "Message not found"
)

var validate = validator.New()

// Gateway is the entry point of the transport into the realtime layer.
// Every call is turned into a task on the loop: the transport goroutines
// never touch realtime state themselves.
type Gateway struct {
	log       *slog.Logger
	loop      contract.Loop
	lifecycle *SessionLifecycleManager
	presence  *PresenceTracker
	typing    *TypingCoordinator
	router    *MessageFanoutRouter
	messages  contract.MessageStore
	metrics   *observability.Metrics
}

func NewGateway(log *slog.Logger, loop contract.Loop, lifecycle *SessionLifecycleManager,
	presence *PresenceTracker, typing *TypingCoordinator, router *MessageFanoutRouter,
	messages contract.MessageStore, metrics *observability.Metrics) *Gateway {
	return &Gateway{
		log:       log,
		loop:      loop,
		lifecycle: lifecycle,
		presence:  presence,
		typing:    typing,
		router:    router,
		messages:  messages,
		metrics:   metrics,
	}
}

func (g *Gateway) Connect(sessionID domain.SessionID, authUserID domain.UserID, sink contract.EventSink) bool {
	return g.loop.Post(func(ctx context.Context) {
		g.lifecycle.Open(sessionID, authUserID, sink)
	})
}

func (g *Gateway) Disconnect(sessionID domain.SessionID) bool {
	return g.loop.Post(func(ctx context.Context) {
		g.lifecycle.Close(ctx, sessionID)
	})
}

// Handle dispatches one inbound event. ack is the client acknowledgement
// id, nil when the client expects no reply.
func (g *Gateway) Handle(sessionID domain.SessionID, name event.Name, data json.RawMessage, ack *int64) bool {
	g.metrics.IncrInbound()
	return g.loop.Post(func(ctx context.Context) {
		conn, ok := g.lifecycle.Lookup(sessionID)
		if !ok {
			return
		}
		switch name {
		case event.UserConnected:
			g.onUserConnected(ctx, conn, data)
		case event.GetUserStatus:
			g.onGetUserStatus(ctx, conn, data, ack)
		case event.SendMessage:
			g.onSendMessage(ctx, conn, data)
		case event.MessageRead:
			g.onMessageRead(ctx, conn, data)
		case event.TypingStart:
			g.onTyping(ctx, conn, data, true)
		case event.TypingStop:
			g.onTyping(ctx, conn, data, false)
		case event.AddReaction:
			g.onAddReaction(ctx, conn, data)
		default:
			g.metrics.IncrMalformed()
			g.log.Debug("Unknown event ignored", "event", name, "session_id", sessionID)
		}
	})
}

// DeliverMessage routes a message stored outside the socket path,
// typically through the REST API.
func (g *Gateway) DeliverMessage(msg domain.Message) bool {
	return g.loop.Post(func(ctx context.Context) {
		g.router.RouteMessage(ctx, msg)
	})
}

// DeliverReadReceipts notifies each sender that the reader read their messages.
func (g *Gateway) DeliverReadReceipts(readerID domain.UserID, bySender map[domain.UserID][]domain.MessageID) bool {
	return g.loop.Post(func(ctx context.Context) {
		for senderID, ids := range bySender {
			g.router.RouteReadReceipt(ctx, senderID, readerID, ids)
		}
	})
}

func (g *Gateway) onUserConnected(ctx context.Context, conn *Connection, data json.RawMessage) {
	var userID domain.UserID
	if !g.decode(conn, data, &userID) || userID == "" {
		return
	}
	if err := g.lifecycle.Identify(ctx, conn.Session.ID, userID); err != nil {
		g.log.Warn("Identity announcement rejected",
			"session_id", conn.Session.ID, "user_id", userID, "error", err)
	}
}

func (g *Gateway) onGetUserStatus(ctx context.Context, conn *Connection, data json.RawMessage, ack *int64) {
	var userID domain.UserID
	if ack == nil || !g.decode(conn, data, &userID) || userID == "" {
		return
	}
	sessionID, ackID := conn.Session.ID, *ack
	g.presence.GetStatus(ctx, userID, func(ctx context.Context, status event.StatusReply) {
		g.reply(ctx, sessionID, event.Reply(ackID, status))
	})
}

func (g *Gateway) onSendMessage(ctx context.Context, conn *Connection, data json.RawMessage) {
	var in event.OutgoingMessage
	if !g.decode(conn, data, &in) {
		return
	}
	sessionID := conn.Session.ID
	if principal := conn.Session.Principal(); principal != "" && in.SenderID != principal {
		g.reply(ctx, sessionID, event.New(event.ErrorSendingMessage, event.SendErrorPayload{
			Error:   sendFailure,
			Details: errors.ErrSenderMismatch.Error(),
		}))
		return
	}

	msg := in.ToMessage()
	var stored domain.Message
	g.loop.Await(ctx, func(ctx context.Context) error {
		var err error
		stored, err = g.messages.PersistMessage(ctx, msg)
		return err
	}, func(ctx context.Context, err error) {
		if err != nil {
			g.metrics.IncrPersistFailures()
			g.log.Error("Failed to persist message", "session_id", sessionID, "error", err)
			g.reply(ctx, sessionID, event.New(event.ErrorSendingMessage, event.SendErrorPayload{
				Error:   sendFailure,
				Details: err.Error(),
			}))
			return
		}
		g.router.RouteMessage(ctx, stored)
	})
}

func (g *Gateway) onMessageRead(ctx context.Context, conn *Connection, data json.RawMessage) {
	var in event.ReadReceipt
	if !conn.Session.IsIdentified() || !g.decode(conn, data, &in) {
		return
	}
	sessionID, readerID := conn.Session.ID, conn.Session.UserID
	g.loop.Await(ctx, func(ctx context.Context) error {
		return g.messages.MarkMessagesRead(ctx, in.MessageIDs, readerID)
	}, func(ctx context.Context, err error) {
		if err != nil {
			g.metrics.IncrPersistFailures()
			g.log.Error("Failed to mark messages read", "session_id", sessionID, "error", err)
			g.reply(ctx, sessionID, event.New(event.Error, event.ErrorPayload{Message: readFailure}))
			return
		}
		g.router.RouteReadReceipt(ctx, in.SenderID, readerID, in.MessageIDs)
	})
}

func (g *Gateway) onTyping(ctx context.Context, conn *Connection, data json.RawMessage, typing bool) {
	var in event.Typing
	if !conn.Session.IsIdentified() || !g.decode(conn, data, &in) {
		return
	}
	if typing {
		g.typing.Start(ctx, conn.Session.UserID, in.ConversationID, in.ReceiverID)
		return
	}
	g.typing.Stop(ctx, conn.Session.UserID, in.ConversationID, in.ReceiverID)
}

func (g *Gateway) onAddReaction(ctx context.Context, conn *Connection, data json.RawMessage) {
	var in event.Reaction
	if !g.decode(conn, data, &in) {
		return
	}
	// A known session can only react as itself
	reactor := in.ReactionUserID
	if principal := conn.Session.Principal(); principal != "" {
		reactor = principal
	}
	if reactor == "" {
		return
	}

	sessionID := conn.Session.ID
	var updated domain.Message
	g.loop.Await(ctx, func(ctx context.Context) error {
		var err error
		updated, err = g.messages.PersistReaction(ctx, in.MessageID, reactor, in.Emoji)
		return err
	}, func(ctx context.Context, err error) {
		switch {
		case errors.Is(err, errors.ErrMessageNotFound):
			g.reply(ctx, sessionID, event.New(event.Error, event.ErrorPayload{Message: messageNotFound}))
		case errors.Is(err, errors.ErrForbidden):
			g.log.Warn("Reaction refused", "session_id", sessionID, "user_id", reactor, "message_id", in.MessageID)
			g.reply(ctx, sessionID, event.New(event.Error, event.ErrorPayload{Message: reactionFailure}))
		case err != nil:
			g.metrics.IncrPersistFailures()
			g.log.Error("Failed to persist reaction", "session_id", sessionID, "error", err)
			g.reply(ctx, sessionID, event.New(event.Error, event.ErrorPayload{Message: reactionFailure}))
		default:
			g.router.RouteReaction(ctx, updated)
		}
	})
}

// reply targets the originating session only, if it is still open.
func (g *Gateway) reply(ctx context.Context, sessionID domain.SessionID, e event.Event) {
	conn, ok := g.lifecycle.Lookup(sessionID)
	if !ok {
		return
	}
	if err := conn.Sink.Consume(ctx, e); err != nil {
		g.metrics.IncrDropped()
		g.log.Debug("Reply dropped", "session_id", sessionID, "error", err)
	}
}

// decode unmarshals and validates a payload. Malformed payloads are
// dropped without notifying the client.
func (g *Gateway) decode(conn *Connection, data json.RawMessage, v any) bool {
	if err := json.Unmarshal(data, v); err != nil {
		g.metrics.IncrMalformed()
		g.log.Debug("Malformed payload ignored", "session_id", conn.Session.ID, "error", err)
		return false
	}
	if err := validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// Not a struct, nothing to validate
			return true
		}
		g.metrics.IncrMalformed()
		g.log.Debug("Invalid payload ignored", "session_id", conn.Session.ID, "error", err)
		return false
	}
	return true
}
