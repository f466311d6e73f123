package event

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

func TestDispatchHandler_CountsDispatchesAndFailures(t *testing.T) {
	req := require.New(t)
	counter := NewCounter()
	handler := NewDispatchHandler(slog.Default(), counter)

	handler.Handle(at(NotificationDispatchedType, NotificationDispatched{ChatKey: "alice_bob", Tokens: 2}))
	handler.Handle(at(NotificationDispatchedType, NotificationDispatched{ChatKey: "alice_bob", Tokens: 1}))
	handler.Handle(at(DeliveryFailedType, DeliveryFailed{ChatKey: "alice_bob"}))
	// Wrong payload type: logged, never counted.
	handler.Handle(at(NotificationDispatchedType, "not a payload"))
	// Foreign event type: ignored.
	handler.Handle(at(TokensPrunedType, TokensPruned{Recipient: "bob"}))

	req.Equal(uint64(2), counter.Get(NotificationDispatchedType))
	req.Equal(uint64(1), counter.Get(DeliveryFailedType))
	req.Equal(uint64(0), counter.Get(TokensPrunedType))
}

func TestPrunedHandler_TracksRemovalsPerRecipient(t *testing.T) {
	req := require.New(t)
	counter := NewCounter()
	handler := NewPrunedHandler(slog.Default(), counter)

	handler.Handle(at(TokensPrunedType, TokensPruned{Recipient: "bob", Tokens: []string{"t1", "t2"}}))
	handler.Handle(at(TokensPrunedType, TokensPruned{Recipient: "bob", Tokens: []string{"t3"}}))
	handler.Handle(at(TokensPrunedType, TokensPruned{Recipient: "carol", Tokens: []string{"t9"}}))

	req.Equal(uint64(3), counter.Get(TokensPrunedType))
	req.Equal(uint64(3), handler.RemovedFor("bob"))
	req.Equal(uint64(1), handler.RemovedFor("carol"))
	req.Equal(uint64(0), handler.RemovedFor("ghost"))
}

func TestCounter_Snapshot(t *testing.T) {
	req := require.New(t)
	counter := NewCounter()
	counter.Increment(NotificationDispatchedType)
	counter.Increment(NotificationDispatchedType)

	snapshot := counter.Snapshot()
	req.Equal(uint64(2), snapshot[NotificationDispatchedType])

	// Mutating the snapshot must not touch the counter.
	snapshot[NotificationDispatchedType] = 99
	req.Equal(uint64(2), counter.Get(NotificationDispatchedType))
}
