// Package event defines the socket wire vocabulary: event names and the
// payloads carried in both directions.
package event

import (
	"time"
	"zenchat/domain"
)

type Name string

// Inbound events, sent by clients.
const (
	UserConnected Name = "user-connected"
	GetUserStatus Name = "get-user-status"
	SendMessage   Name = "send-message"
	MessageRead   Name = "message-read"
	TypingStart   Name = "typing-start"
	TypingStop    Name = "typing-stop"
	AddReaction   Name = "add-reaction"
)

// Outbound events, pushed to sessions.
const (
	UserStatus          Name = "user-status"
	ReceiveMessage      Name = "receive-message"
	MessagesRead        Name = "messages-read"
	UserTyping          Name = "user-typing"
	ReactionUpdate      Name = "reaction-update"
	ErrorSendingMessage Name = "error-sending-message"
	Error               Name = "error"
)

// Event is one outbound frame. A non nil Ack turns it into the reply of
// the inbound request carrying that acknowledgement id.
type Event struct {
	Name    Name
	Payload any
	Ack     *int64
}

func New(name Name, payload any) Event {
	return Event{Name: name, Payload: payload}
}

func Reply(ack int64, payload any) Event {
	return Event{Payload: payload, Ack: &ack}
}

func (e Event) IsReply() bool {
	return e.Ack != nil
}

type UserStatusPayload struct {
	UserID   domain.UserID `json:"userId"`
	IsOnline bool          `json:"isOnline"`
	LastSeen *time.Time    `json:"lastSeen,omitempty"`
}

// StatusReply answers get-user-status. LastSeen is always serialized,
// null while the user is online or unknown.
type StatusReply struct {
	UserID   domain.UserID `json:"userId"`
	IsOnline bool          `json:"isOnline"`
	LastSeen *time.Time    `json:"lastSeen"`
	Error    string        `json:"error,omitempty"`
}

type MessagesReadPayload struct {
	MessageIDs    []domain.MessageID   `json:"messageIds"`
	MessageStatus domain.MessageStatus `json:"messageStatus"`
}

type UserTypingPayload struct {
	ConversationID domain.ConversationID `json:"conversationId"`
	UserID         domain.UserID         `json:"userId"`
	IsTyping       bool                  `json:"isTyping"`
}

type ReactionUpdatePayload struct {
	MessageID domain.MessageID  `json:"messageId"`
	Reactions []domain.Reaction `json:"reactions"`
}

type SendErrorPayload struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
