package runtime

import (
	"context"
	"log/slog"
	"zenchat/contract"
	"zenchat/domain"
	"zenchat/domain/event"
	"zenchat/observability"

	"github.com/samber/lo"
)

// Recipients selects who receives a routed event.
// Primary are the addressees, EchoTo the users whose other devices must
// stay in sync (the sender of a chat message).
type Recipients struct {
	Primary []domain.UserID
	EchoTo  []domain.UserID
}

// MessageFanoutRouter is not a message broker.
// It resolves users to their open sessions and pushes events best-effort:
// no retry, no acknowledgement, a closed session simply misses the event.
type MessageFanoutRouter struct {
	log      *slog.Logger
	registry contract.IRegistry
	metrics  *observability.Metrics
}

func NewMessageFanoutRouter(log *slog.Logger, registry contract.IRegistry, metrics *observability.Metrics) *MessageFanoutRouter {
	return &MessageFanoutRouter{log: log, registry: registry, metrics: metrics}
}

// Route delivers e at most once to every session of every recipient and
// returns the number of successful deliveries. Unknown users are skipped.
func (r *MessageFanoutRouter) Route(ctx context.Context, e event.Event, to Recipients) int {
	seen := make(map[domain.SessionID]struct{})
	delivered := 0
	users := append(append([]domain.UserID{}, to.Primary...), to.EchoTo...)

	for _, userID := range users {
		if userID == "" {
			continue
		}
		for _, sessionID := range r.registry.SessionsFor(userID) {
			if _, ok := seen[sessionID]; ok {
				continue
			}
			seen[sessionID] = struct{}{}

			sink, ok := r.registry.Sink(sessionID)
			if !ok {
				continue
			}
			if err := sink.Consume(ctx, e); err != nil {
				r.metrics.IncrDropped()
				r.log.Debug("Delivery dropped", "event", e.Name, "session_id", sessionID, "error", err)
				continue
			}
			r.metrics.IncrDelivered()
			delivered++
		}
	}
	return delivered
}

// RouteMessage sends a chat message to its receiver and echoes it to the sender.
func (r *MessageFanoutRouter) RouteMessage(ctx context.Context, msg domain.Message) int {
	return r.Route(ctx, event.New(event.ReceiveMessage, msg), Recipients{
		Primary: []domain.UserID{msg.ReceiverID},
		EchoTo:  []domain.UserID{msg.SenderID},
	})
}

// RouteReaction notifies both participants of the new reaction set.
func (r *MessageFanoutRouter) RouteReaction(ctx context.Context, msg domain.Message) int {
	return r.Route(ctx, event.New(event.ReactionUpdate, event.ReactionUpdatePayload{
		MessageID: msg.ID,
		Reactions: lo.Ternary(msg.Reactions == nil, []domain.Reaction{}, msg.Reactions),
	}), Recipients{Primary: msg.Participants()})
}

// RouteReadReceipt notifies the sender, and the reader's other devices,
// that messages were read.
func (r *MessageFanoutRouter) RouteReadReceipt(ctx context.Context, senderID, readerID domain.UserID, ids []domain.MessageID) int {
	return r.Route(ctx, event.New(event.MessagesRead, event.MessagesReadPayload{
		MessageIDs:    ids,
		MessageStatus: domain.StatusRead,
	}), Recipients{Primary: []domain.UserID{senderID, readerID}})
}
