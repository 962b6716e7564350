//go:generate go run go.uber.org/mock/mockgen -source=message_index.go -destination=../mocks/mock_message_index.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"zenchat/domain"

	"github.com/blugelabs/bluge"
)

const (
	fieldID           = "_id"
	fieldContent      = "content"
	fieldConversation = "conversation"
	fieldSender       = "sender"
)

type IMessageIndex interface {
	Index(message domain.Message) error
	Remove(id domain.MessageID) error
	Search(ctx context.Context, conversationID domain.ConversationID, query string) ([]domain.MessageID, uint64, error)
}

// MessageIndex is the full-text index of text messages, scoped by conversation.
type MessageIndex struct {
	writer   *bluge.Writer
	log      *slog.Logger
	pageSize int
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger, pageSize int) *MessageIndex {
	return &MessageIndex{writer: writer, log: log, pageSize: pageSize}
}

// Index adds or replaces the message document. Messages without text are skipped.
func (i *MessageIndex) Index(message domain.Message) error {
	if strings.TrimSpace(message.Content) == "" {
		return nil
	}
	doc := bluge.NewDocument(string(message.ID)).
		AddField(bluge.NewTextField(fieldContent, message.Content)).
		AddField(bluge.NewKeywordField(fieldConversation, string(message.ConversationID)).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSender, string(message.SenderID)).StoreValue())
	return i.writer.Update(doc.ID(), doc)
}

func (i *MessageIndex) Remove(id domain.MessageID) error {
	return i.writer.Delete(bluge.Identifier(id))
}

// Search returns the ids of the best matching messages of the conversation
// with the total number of matches. An empty query matches nothing.
func (i *MessageIndex) Search(ctx context.Context, conversationID domain.ConversationID, query string) ([]domain.MessageID, uint64, error) {
	if strings.TrimSpace(query) == "" {
		return nil, 0, nil
	}

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, 0, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query).SetField(fieldContent)).
		AddMust(bluge.NewTermQuery(string(conversationID)).SetField(fieldConversation))
	request := bluge.NewTopNSearch(i.pageSize, q).WithStandardAggregations()

	dmi, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, fmt.Errorf("searching messages: %w", err)
	}

	var ids []domain.MessageID
	match, err := dmi.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == fieldID {
				ids = append(ids, domain.MessageID(value))
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = dmi.Next()
	}
	if err != nil {
		return nil, 0, fmt.Errorf("reading search results: %w", err)
	}
	return ids, dmi.Aggregations().Count(), nil
}
