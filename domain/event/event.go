package event

import "time"

type Type string

const (
	NotificationDispatchedType Type = "NOTIFICATION_DISPATCHED"
	DeliveryFailedType         Type = "DELIVERY_FAILED"
	TokensPrunedType           Type = "TOKENS_PRUNED"
	RestartedAfterPanicType    Type = "WORKER_RESTARTED_AFTER_PANIC"
)

type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

// NotificationDispatched is emitted after a batch send returned, whatever
// the per-token results were.
type NotificationDispatched struct {
	ChatKey   string
	Recipient string
	Tokens    int
	Failures  int
}

// DeliveryFailed is emitted when the batch call itself errored.
type DeliveryFailed struct {
	ChatKey   string
	Recipient string
}

// TokensPruned is emitted after permanently-invalid tokens were removed
// from a recipient profile.
type TokensPruned struct {
	Recipient string
	Tokens    []string
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}
