package event

import "zenchat/domain"

// OutgoingMessage is the send-message payload. ID is set when the message
// was already stored through the REST API.
type OutgoingMessage struct {
	ID             domain.MessageID      `json:"id"`
	ConversationID domain.ConversationID `json:"conversationId"`
	SenderID       domain.UserID         `json:"sender" validate:"required"`
	ReceiverID     domain.UserID         `json:"receiver" validate:"required"`
	Content        string                `json:"content"`
	MediaURL       string                `json:"imageOrVideoUrl"`
	ContentType    domain.ContentType    `json:"contentType"`
}

func (m OutgoingMessage) ToMessage() domain.Message {
	contentType := m.ContentType
	if contentType == "" {
		contentType = domain.TextContent
	}
	return domain.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		ReceiverID:     m.ReceiverID,
		Content:        m.Content,
		MediaURL:       m.MediaURL,
		ContentType:    contentType,
		Status:         domain.StatusSent,
	}
}

type ReadReceipt struct {
	MessageIDs []domain.MessageID `json:"messageIds" validate:"required,min=1,dive,required"`
	SenderID   domain.UserID      `json:"senderId" validate:"required"`
}

type Typing struct {
	ConversationID domain.ConversationID `json:"conversationId" validate:"required"`
	ReceiverID     domain.UserID         `json:"receiverId" validate:"required"`
}

type Reaction struct {
	MessageID      domain.MessageID `json:"messageId" validate:"required"`
	Emoji          string           `json:"emoji" validate:"required"`
	ReactionUserID domain.UserID    `json:"reactionUserId"`
}
