// Package runtime hosts the long-running workers of the notifier: the
// record-created change feed and the supervisor that keeps it alive.
package runtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"chat-notify/domain"
	"chat-notify/repositories"
	"chat-notify/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"
	"github.com/go-playground/validator/v10"
)

// messageRecord is the decoded subset of a created record that the
// pipeline needs. Anything missing here is a malformed input: logged,
// skipped, never reported back to the writer.
type messageRecord struct {
	ID       string `json:"id"`
	SenderID string `json:"senderId" validate:"required"`
	Content  string `json:"content"`
	Type     string `json:"type"`
}

// ChangeFeed adapts the store's record-created subscription into typed
// message events and hands each one to the notifier. Every event runs as
// its own pipeline execution.
type ChangeFeed struct {
	db       *badger.DB
	notifier services.INotifierService
	log      *slog.Logger
	validate *validator.Validate
}

func NewChangeFeed(db *badger.DB, notifier services.INotifierService, log *slog.Logger) *ChangeFeed {
	return &ChangeFeed{
		db:       db,
		notifier: notifier,
		log:      log,
		validate: validator.New(),
	}
}

// Run blocks on the subscription until ctx is canceled.
func (f *ChangeFeed) Run(ctx context.Context) error {
	matches := []pb.Match{{Prefix: []byte(repositories.MessagePrefix)}}
	err := f.db.Subscribe(ctx, func(kvs *badger.KVList) error {
		for _, kv := range kvs.Kv {
			if len(kv.Value) == 0 {
				// Tombstone: record deletions never notify.
				continue
			}
			f.handle(ctx, string(kv.Key), kv.Value)
		}
		// The subscription contract is fire-and-forget: a bad record
		// must not tear down the feed.
		return nil
	}, matches)

	if err == context.Canceled {
		return nil
	}
	return err
}

// handle decodes one created record and launches its pipeline.
func (f *ChangeFeed) handle(ctx context.Context, key string, value []byte) {
	chatKey, messageID, ok := splitMessageKey(key)
	if !ok {
		f.log.Error("Malformed message key, skipping", "key", key)
		return
	}
	log := f.log.With("chatKey", chatKey, "messageId", messageID)

	var record messageRecord
	if err := json.Unmarshal(value, &record); err != nil {
		log.Error("Message record is not decodable, skipping", "error", err)
		return
	}
	if err := f.validate.Struct(record); err != nil {
		log.Error("Message record is missing required fields, skipping", "error", err)
		return
	}

	e := domain.ChatMessageEvent{
		ChatKey:   chatKey,
		MessageID: messageID,
		SenderID:  record.SenderID,
		Content:   record.Content,
		Type:      domain.ParseMessageType(record.Type),
	}

	log.Info("New message detected")

	// One goroutine per event: pipeline executions are independent and
	// never block each other.
	go func() {
		if err := f.notifier.Notify(ctx, e); err != nil {
			log.Warn("Notification pipeline aborted", "error", err)
		}
	}()
}

// splitMessageKey extracts chat key and message id from
// "msg:{chat_key}:{timestamp_padded}:{uuid}".
func splitMessageKey(key string) (chatKey, messageID string, ok bool) {
	parts := strings.SplitN(key, ":", 4)
	if len(parts) != 4 || parts[1] == "" || parts[3] == "" {
		return "", "", false
	}
	return parts[1], parts[3], true
}
