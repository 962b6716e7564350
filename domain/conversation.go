package domain

import (
	"slices"
	"time"
)

// Conversation links exactly two users. Participants are kept sorted so a
// pair of users always maps to the same conversation.
type Conversation struct {
	ID           ConversationID `json:"id"`
	Participants []UserID       `json:"participants"`
	LastMessage  *MessageID     `json:"lastMessage,omitempty"`
	UnreadCount  int            `json:"unreadCount"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Pair returns both users in canonical order.
func Pair(a, b UserID) []UserID {
	pair := []UserID{a, b}
	slices.Sort(pair)
	return pair
}

func (c Conversation) Has(userID UserID) bool {
	return slices.Contains(c.Participants, userID)
}

// Peer returns the other participant.
func (c Conversation) Peer(userID UserID) UserID {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return userID
}
