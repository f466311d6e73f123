//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// MessagePrefix is the key namespace of chat message records. The change
// feed subscribes to it to learn about created records.
const MessagePrefix = "msg:"

type IMessageRepository interface {
	StoreMessage(message DiskMessage) error
	GetMessages(chatKey string) ([]DiskMessage, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// DiskMessage is the stored representation of a chat message.
type DiskMessage struct {
	ID       uuid.UUID `json:"id"`
	ChatKey  string    `json:"chatKey"`
	SenderID string    `json:"senderId"`
	Content  string    `json:"content,omitempty"`
	Type     string    `json:"type"`
	At       time.Time `json:"at"`
}

// MessageKey formats the badger key of a message record:
// "msg:{chat_key}:{timestamp_padded}:{uuid}".
//  1. The 19-digit zero padding keeps records chronologically sorted
//     (lexicographical order).
//  2. The UUID acts as a collision disconnector if two messages arrive
//     at the same nanosecond.
func MessageKey(message DiskMessage) string {
	return fmt.Sprintf("%s%s:%019d:%s",
		MessagePrefix,
		message.ChatKey,
		message.At.UnixNano(),
		message.ID,
	)
}

// StoreMessage persists a message in BadgerDB. Every successful store
// fires the record-created subscription.
func (m MessageRepository) StoreMessage(message DiskMessage) error {
	bytes, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(MessageKey(message)), bytes)
	})
}

// GetMessages retrieves the messages of a conversation using a prefix
// scan. Thanks to the padded timestamp in the key, messages come back
// naturally sorted by time.
func (m MessageRepository) GetMessages(chatKey string) ([]DiskMessage, error) {
	var messages []DiskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(MessagePrefix + chatKey + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var message DiskMessage
				if err := json.Unmarshal(value, &message); err != nil {
					return err
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
