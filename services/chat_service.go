package services

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"
	"zenchat/domain"
	"zenchat/errors"
	"zenchat/moderation"
	"zenchat/repositories"
	"zenchat/storage"

	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
)

type IChatService interface {
	PersistMessage(ctx context.Context, msg domain.Message) (domain.Message, error)
	PersistReaction(ctx context.Context, messageID domain.MessageID, reactorID domain.UserID, emoji string) (domain.Message, error)
	MarkMessagesRead(ctx context.Context, messageIDs []domain.MessageID, receiverID domain.UserID) error
	ReadMessages(ctx context.Context, messageIDs []domain.MessageID, receiverID domain.UserID) (ReadReceipts, error)
	SendMessage(ctx context.Context, req SendMessageRequest) (domain.Message, error)
	Conversations(ctx context.Context, userID domain.UserID) ([]ConversationView, error)
	Messages(ctx context.Context, userID domain.UserID, conversationID domain.ConversationID, cursor *string) (MessagePage, error)
	Search(ctx context.Context, userID domain.UserID, conversationID domain.ConversationID, query string) (SearchResult, error)
	DeleteMessage(ctx context.Context, userID domain.UserID, messageID domain.MessageID) error
}

// SendMessageRequest is a message posted through the REST API, Media
// is nil for text messages.
type SendMessageRequest struct {
	SenderID   domain.UserID
	ReceiverID domain.UserID
	Content    string
	Media      io.Reader
}

// ReadReceipts groups the messages that switched to read by their sender.
type ReadReceipts map[domain.UserID][]domain.MessageID

type ConversationView struct {
	ID           domain.ConversationID `json:"id"`
	Participants []domain.User         `json:"participants"`
	LastMessage  *domain.Message       `json:"lastMessage,omitempty"`
	UnreadCount  int                   `json:"unreadCount"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type MessagePage struct {
	Messages   []domain.Message `json:"messages"`
	NextCursor *string          `json:"nextCursor,omitempty"`
	Read       ReadReceipts     `json:"-"`
}

type SearchResult struct {
	Messages []domain.Message `json:"messages"`
	Total    uint64           `json:"total"`
}

// ChatService persists conversations and messages. The realtime layer
// uses it as its message store, the REST API for everything else.
type ChatService struct {
	log           *slog.Logger
	conversations repositories.IConversationRepository
	messages      repositories.IMessageRepository
	users         repositories.IUserRepository
	index         repositories.IMessageIndex
	media         storage.IMediaStore
	moderator     *moderation.Moderator
	now           func() time.Time
}

func NewChatService(log *slog.Logger,
	conversations repositories.IConversationRepository,
	messages repositories.IMessageRepository,
	users repositories.IUserRepository,
	index repositories.IMessageIndex,
	media storage.IMediaStore,
	moderator *moderation.Moderator) *ChatService {
	return &ChatService{
		log:           log,
		conversations: conversations,
		messages:      messages,
		users:         users,
		index:         index,
		media:         media,
		moderator:     moderator,
		now:           time.Now,
	}
}

// PersistMessage stores a message received on a socket and returns the
// canonical copy to fan out. A message already stored through the REST API
// is returned as is.
func (s *ChatService) PersistMessage(_ context.Context, msg domain.Message) (domain.Message, error) {
	if msg.ID != "" {
		stored, err := s.messages.GetByID(msg.ID)
		switch {
		case err == nil && stored.SenderID != msg.SenderID:
			return domain.Message{}, errors.ErrForbidden
		case err == nil:
			return stored, nil
		case !errors.Is(err, errors.ErrMessageNotFound):
			return domain.Message{}, err
		}
	}
	msg.Content = strings.TrimSpace(msg.Content)
	if msg.ContentType == "" {
		msg.ContentType = domain.TextContent
	}
	switch {
	case !msg.ContentType.IsValid():
		return domain.Message{}, errors.ErrInvalidContentType
	case msg.ContentType.IsMedia() && msg.MediaURL == "":
		return domain.Message{}, errors.ErrEmptyMessage
	case msg.ContentType == domain.TextContent && msg.Content == "":
		return domain.Message{}, errors.ErrEmptyMessage
	}
	return s.store(msg)
}

// SendMessage stores a message posted over HTTP. An attached file must be
// an image or a video and takes precedence over the text content type.
func (s *ChatService) SendMessage(_ context.Context, req SendMessageRequest) (domain.Message, error) {
	if req.SenderID == "" || req.ReceiverID == "" {
		return domain.Message{}, errors.ErrInvalidRequest
	}
	msg := domain.Message{
		SenderID:    req.SenderID,
		ReceiverID:  req.ReceiverID,
		Content:     strings.TrimSpace(req.Content),
		ContentType: domain.TextContent,
	}
	if req.Media != nil {
		media, err := s.media.Save(req.Media)
		if err != nil {
			return domain.Message{}, err
		}
		msg.MediaURL = media.URL
		msg.ContentType = media.ContentType
	} else if msg.Content == "" {
		return domain.Message{}, errors.ErrEmptyMessage
	}
	return s.store(msg)
}

func (s *ChatService) store(msg domain.Message) (domain.Message, error) {
	now := s.now()
	conv, err := s.conversations.FindOrCreate(msg.SenderID, msg.ReceiverID, now)
	if err != nil {
		return domain.Message{}, err
	}

	if msg.Content != "" && s.moderator != nil {
		review := s.moderator.Review(msg.Content)
		msg.Content = review.Content
		msg.Language = review.Language
	}
	msg.ID = domain.MessageID(ulid.Make().String())
	msg.ConversationID = conv.ID
	msg.Status = domain.StatusSent
	msg.Reactions = []domain.Reaction{}
	msg.CreatedAt = now
	msg.UpdatedAt = now

	if err := s.messages.Save(msg); err != nil {
		return domain.Message{}, err
	}
	if _, err := s.conversations.Update(conv.ID, func(c *domain.Conversation) error {
		c.LastMessage = &msg.ID
		c.UnreadCount++
		c.UpdatedAt = now
		return nil
	}); err != nil {
		return domain.Message{}, err
	}
	if err := s.index.Index(msg); err != nil {
		s.log.Warn("Failed to index message", "message_id", msg.ID, "error", err)
	}
	return msg, nil
}

// PersistReaction toggles the reaction of reactorID on the message.
// Only the sender and the receiver may react.
func (s *ChatService) PersistReaction(_ context.Context, messageID domain.MessageID, reactorID domain.UserID, emoji string) (domain.Message, error) {
	if strings.TrimSpace(emoji) == "" || reactorID == "" {
		return domain.Message{}, errors.ErrInvalidRequest
	}
	return s.messages.Update(messageID, func(m *domain.Message) error {
		if !lo.Contains(m.Participants(), reactorID) {
			return errors.ErrForbidden
		}
		m.ToggleReaction(reactorID, emoji)
		m.UpdatedAt = s.now()
		return nil
	})
}

func (s *ChatService) MarkMessagesRead(ctx context.Context, messageIDs []domain.MessageID, receiverID domain.UserID) error {
	_, err := s.ReadMessages(ctx, messageIDs, receiverID)
	return err
}

// ReadMessages marks as read the messages addressed to receiverID. Unknown
// ids and messages sent to someone else are skipped.
func (s *ChatService) ReadMessages(_ context.Context, messageIDs []domain.MessageID, receiverID domain.UserID) (ReadReceipts, error) {
	receipts := ReadReceipts{}
	for _, id := range lo.Uniq(messageIDs) {
		var changed bool
		msg, err := s.messages.Update(id, func(m *domain.Message) error {
			if m.ReceiverID != receiverID || m.Status == domain.StatusRead {
				return nil
			}
			m.Status = domain.StatusRead
			m.UpdatedAt = s.now()
			changed = true
			return nil
		})
		if errors.Is(err, errors.ErrMessageNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if changed {
			receipts[msg.SenderID] = append(receipts[msg.SenderID], msg.ID)
		}
	}
	return receipts, nil
}

// Conversations lists the conversations of userID, most recent first, with
// participants and last message resolved.
func (s *ChatService) Conversations(_ context.Context, userID domain.UserID) ([]ConversationView, error) {
	conversations, err := s.conversations.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	views := make([]ConversationView, 0, len(conversations))
	for _, conv := range conversations {
		view := ConversationView{
			ID:          conv.ID,
			UnreadCount: conv.UnreadCount,
			CreatedAt:   conv.CreatedAt,
			UpdatedAt:   conv.UpdatedAt,
		}
		for _, id := range conv.Participants {
			user, err := s.users.GetByID(id)
			if errors.Is(err, errors.ErrUserNotFound) {
				user = domain.User{ID: id}
			} else if err != nil {
				return nil, err
			}
			view.Participants = append(view.Participants, user.Public())
		}
		if conv.LastMessage != nil {
			last, err := s.messages.GetByID(*conv.LastMessage)
			switch {
			case err == nil:
				view.LastMessage = &last
			case !errors.Is(err, errors.ErrMessageNotFound):
				return nil, err
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Messages returns a page of history. Opening a conversation reads every
// message of the page addressed to userID and resets the unread counter.
func (s *ChatService) Messages(ctx context.Context, userID domain.UserID, conversationID domain.ConversationID, cursor *string) (MessagePage, error) {
	if _, err := s.participant(userID, conversationID); err != nil {
		return MessagePage{}, err
	}
	messages, next, err := s.messages.GetMessages(conversationID, cursor)
	if err != nil {
		return MessagePage{}, err
	}

	unread := lo.FilterMap(messages, func(m domain.Message, _ int) (domain.MessageID, bool) {
		return m.ID, m.ReceiverID == userID && m.Status != domain.StatusRead
	})
	receipts, err := s.ReadMessages(ctx, unread, userID)
	if err != nil {
		return MessagePage{}, err
	}
	read := lo.Flatten(lo.Values(receipts))
	for i := range messages {
		if lo.Contains(read, messages[i].ID) {
			messages[i].Status = domain.StatusRead
		}
	}
	if _, err := s.conversations.Update(conversationID, func(c *domain.Conversation) error {
		c.UnreadCount = 0
		return nil
	}); err != nil {
		return MessagePage{}, err
	}

	page := MessagePage{Messages: messages, Read: receipts}
	if len(messages) > 0 && next != nil && *next != "" {
		page.NextCursor = next
	}
	return page, nil
}

// Search looks up text messages of a conversation the caller belongs to.
func (s *ChatService) Search(ctx context.Context, userID domain.UserID, conversationID domain.ConversationID, query string) (SearchResult, error) {
	if _, err := s.participant(userID, conversationID); err != nil {
		return SearchResult{}, err
	}
	ids, total, err := s.index.Search(ctx, conversationID, query)
	if err != nil {
		return SearchResult{}, err
	}
	result := SearchResult{Messages: []domain.Message{}, Total: total}
	for _, id := range ids {
		msg, err := s.messages.GetByID(id)
		if errors.Is(err, errors.ErrMessageNotFound) {
			continue
		}
		if err != nil {
			return SearchResult{}, err
		}
		result.Messages = append(result.Messages, msg)
	}
	return result, nil
}

// DeleteMessage removes a message, only its sender may do so.
func (s *ChatService) DeleteMessage(_ context.Context, userID domain.UserID, messageID domain.MessageID) error {
	msg, err := s.messages.GetByID(messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != userID {
		return errors.ErrForbidden
	}
	if err := s.messages.Delete(messageID); err != nil {
		return err
	}
	if err := s.index.Remove(messageID); err != nil {
		s.log.Warn("Failed to remove message from index", "message_id", messageID, "error", err)
	}
	if msg.MediaURL != "" {
		if err := s.media.Delete(msg.MediaURL); err != nil {
			s.log.Warn("Failed to delete media", "url", msg.MediaURL, "error", err)
		}
	}
	return nil
}

func (s *ChatService) participant(userID domain.UserID, conversationID domain.ConversationID) (domain.Conversation, error) {
	conv, err := s.conversations.GetByID(conversationID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if !conv.Has(userID) {
		return domain.Conversation{}, errors.ErrForbidden
	}
	return conv, nil
}
