//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"fmt"
	"slices"
	"time"
	"zenchat/domain"
	"zenchat/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/oklog/ulid/v2"
)

// Keys:
//
//	conv:id:{id}              -> conversation document
//	conv:pair:{a}:{b}         -> id, a < b
//	conv:user:{userID}:{id}   -> empty, one per participant
const (
	conversationPrefix     = "conv:id:"
	conversationPairPrefix = "conv:pair:"
	conversationUserPrefix = "conv:user:"
)

type IConversationRepository interface {
	FindOrCreate(a, b domain.UserID, now time.Time) (domain.Conversation, error)
	GetByID(id domain.ConversationID) (domain.Conversation, error)
	Update(id domain.ConversationID, fn func(conv *domain.Conversation) error) (domain.Conversation, error)
	ListByUser(userID domain.UserID) ([]domain.Conversation, error)
}

type ConversationRepository struct {
	db *badger.DB
}

func NewConversationRepository(db *badger.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func conversationKey(id domain.ConversationID) []byte {
	return []byte(conversationPrefix + string(id))
}

func pairKey(a, b domain.UserID) []byte {
	pair := domain.Pair(a, b)
	return []byte(fmt.Sprintf("%s%s:%s", conversationPairPrefix, pair[0], pair[1]))
}

func userConversationKey(userID domain.UserID, id domain.ConversationID) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", conversationUserPrefix, userID, id))
}

// FindOrCreate returns the conversation of the pair, creating it on first use.
// The pair index is read and written in the same transaction so concurrent
// first messages end up in a single conversation.
func (r *ConversationRepository) FindOrCreate(a, b domain.UserID, now time.Time) (domain.Conversation, error) {
	var conv domain.Conversation
	err := update(r.db, func(txn *badger.Txn) error {
		item, err := txn.Get(pairKey(a, b))
		switch {
		case err == nil:
			id, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			return readJSON(txn, conversationKey(domain.ConversationID(id)), &conv, errors.ErrConversationNotFound)
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		conv = domain.Conversation{
			ID:           domain.ConversationID(ulid.Make().String()),
			Participants: domain.Pair(a, b),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := writeJSON(txn, conversationKey(conv.ID), conv); err != nil {
			return err
		}
		if err := txn.Set(pairKey(a, b), []byte(conv.ID)); err != nil {
			return err
		}
		for _, p := range conv.Participants {
			if err := txn.Set(userConversationKey(p, conv.ID), nil); err != nil {
				return err
			}
		}
		return nil
	})
	return conv, err
}

func (r *ConversationRepository) GetByID(id domain.ConversationID) (domain.Conversation, error) {
	var conv domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, conversationKey(id), &conv, errors.ErrConversationNotFound)
	})
	return conv, err
}

// Update applies fn to the stored conversation in a single transaction.
func (r *ConversationRepository) Update(id domain.ConversationID, fn func(conv *domain.Conversation) error) (domain.Conversation, error) {
	var conv domain.Conversation
	err := update(r.db, func(txn *badger.Txn) error {
		if err := readJSON(txn, conversationKey(id), &conv, errors.ErrConversationNotFound); err != nil {
			return err
		}
		if err := fn(&conv); err != nil {
			return err
		}
		return writeJSON(txn, conversationKey(id), conv)
	})
	return conv, err
}

// ListByUser returns the conversations of a user, most recently updated first.
func (r *ConversationRepository) ListByUser(userID domain.UserID) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("%s%s:", conversationUserPrefix, userID))
		for _, id := range scanKeys(txn, prefix) {
			var conv domain.Conversation
			if err := readJSON(txn, conversationKey(domain.ConversationID(id)), &conv, errors.ErrConversationNotFound); err != nil {
				return fmt.Errorf("reading conversation %s: %w", id, err)
			}
			conversations = append(conversations, conv)
		}
		return nil
	})
	slices.SortStableFunc(conversations, func(a, b domain.Conversation) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return conversations, err
}
