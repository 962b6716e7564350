//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"slices"
	"zenchat/domain"
	"zenchat/errors"

	"github.com/dgraph-io/badger/v4"
)

// Keys:
//
//	msg:id:{id}                  -> message document
//	msg:conv:{conversationID}:{id} -> empty
//
// Message ids are ULIDs, so the conversation index is chronological.
const (
	messagePrefix     = "msg:id:"
	messageConvPrefix = "msg:conv:"
)

type IMessageRepository interface {
	Save(message domain.Message) error
	GetByID(id domain.MessageID) (domain.Message, error)
	Update(id domain.MessageID, fn func(message *domain.Message) error) (domain.Message, error)
	Delete(id domain.MessageID) error
	GetMessages(conversationID domain.ConversationID, cursor *string) ([]domain.Message, *string, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) *MessageRepository {
	return &MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

func messageKey(id domain.MessageID) []byte {
	return []byte(messagePrefix + string(id))
}

func conversationMessagesPrefix(conversationID domain.ConversationID) string {
	return fmt.Sprintf("%s%s:", messageConvPrefix, conversationID)
}

func (m *MessageRepository) Save(message domain.Message) error {
	return update(m.db, func(txn *badger.Txn) error {
		if err := writeJSON(txn, messageKey(message.ID), message); err != nil {
			return err
		}
		return txn.Set([]byte(conversationMessagesPrefix(message.ConversationID)+string(message.ID)), nil)
	})
}

func (m *MessageRepository) GetByID(id domain.MessageID) (domain.Message, error) {
	var message domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, messageKey(id), &message, errors.ErrMessageNotFound)
	})
	return message, err
}

// Update applies fn to the stored message in a single transaction.
func (m *MessageRepository) Update(id domain.MessageID, fn func(message *domain.Message) error) (domain.Message, error) {
	var message domain.Message
	err := update(m.db, func(txn *badger.Txn) error {
		if err := readJSON(txn, messageKey(id), &message, errors.ErrMessageNotFound); err != nil {
			return err
		}
		if err := fn(&message); err != nil {
			return err
		}
		return writeJSON(txn, messageKey(id), message)
	})
	return message, err
}

func (m *MessageRepository) Delete(id domain.MessageID) error {
	return update(m.db, func(txn *badger.Txn) error {
		var message domain.Message
		if err := readJSON(txn, messageKey(id), &message, errors.ErrMessageNotFound); err != nil {
			return err
		}
		if err := txn.Delete(messageKey(id)); err != nil {
			return err
		}
		return txn.Delete([]byte(conversationMessagesPrefix(message.ConversationID) + string(id)))
	})
}

// GetMessages returns a page of the conversation in chronological order.
// The scan starts from the newest message, or right before cursor, and
// stops once limitMessages is reached. The returned cursor points to the
// oldest message of the page.
func (m *MessageRepository) GetMessages(conversationID domain.ConversationID, cursor *string) ([]domain.Message, *string, error) {
	var messages []domain.Message
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := conversationMessagesPrefix(conversationID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		// '~' sorts after every ULID character
		seekKey := append([]byte(prefixStr), '~')
		if cursor != nil {
			seekKey = []byte(prefixStr + *cursor)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[len(prefix):]) == *cursor {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			id := string(it.Item().Key()[len(prefix):])
			var message domain.Message
			if err := readJSON(txn, messageKey(domain.MessageID(id)), &message, errors.ErrMessageNotFound); err != nil {
				return fmt.Errorf("reading message %s: %w", id, err)
			}
			lastKey = id
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	slices.Reverse(messages)
	return messages, &lastKey, nil
}
