// Package domain contains core concepts of the chat system.
// This file defines Message entities and the reaction toggle rule.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"slices"
	"time"
)

type UserID string

type MessageID string

type ConversationID string

type ContentType string

const (
	TextContent  ContentType = "text"
	ImageContent ContentType = "image"
	VideoContent ContentType = "video"
)

func (c ContentType) IsValid() bool {
	switch c {
	case TextContent, ImageContent, VideoContent:
		return true
	default:
		return false
	}
}

func (c ContentType) IsMedia() bool {
	return c == ImageContent || c == VideoContent
}

type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

// Reaction is a single (user, emoji) pair attached to a message.
type Reaction struct {
	UserID UserID `json:"user"`
	Emoji  string `json:"emoji"`
}

// Message is the canonical, persisted copy of a chat message.
type Message struct {
	ID             MessageID      `json:"id"`
	ConversationID ConversationID `json:"conversationId"`
	SenderID       UserID         `json:"sender"`
	ReceiverID     UserID         `json:"receiver"`
	Content        string         `json:"content,omitempty"`
	MediaURL       string         `json:"imageOrVideoUrl,omitempty"`
	ContentType    ContentType    `json:"contentType"`
	Status         MessageStatus  `json:"messageStatus"`
	Language       string         `json:"language,omitempty"`
	Reactions      []Reaction     `json:"reactions"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Participants returns the two users a message concerns.
func (m Message) Participants() []UserID {
	return []UserID{m.SenderID, m.ReceiverID}
}

func (m Message) IsEmpty() bool {
	return m.Content == "" && m.MediaURL == ""
}

// ToggleReaction applies a reaction from reactor:
//   - same emoji already set by reactor: removed
//   - other emoji set by reactor: replaced in place
//   - no reaction from reactor: appended
//
// A reactor never holds more than one reaction on a message.
func (m *Message) ToggleReaction(reactor UserID, emoji string) {
	idx := slices.IndexFunc(m.Reactions, func(r Reaction) bool {
		return r.UserID == reactor
	})
	switch {
	case idx < 0:
		m.Reactions = append(m.Reactions, Reaction{UserID: reactor, Emoji: emoji})
	case m.Reactions[idx].Emoji == emoji:
		m.Reactions = slices.Delete(m.Reactions, idx, idx+1)
	default:
		m.Reactions[idx].Emoji = emoji
	}
}
