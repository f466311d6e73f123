package event

import (
	"chat-notify/errors"
	"log/slog"
	"sync"
)

// DispatchHandler handles events emitted by the notification pipeline.
// It keeps the dispatch/failure counters up to date for observability.
type DispatchHandler struct {
	log     *slog.Logger
	mu      sync.Mutex
	counter *Counter
}

func NewDispatchHandler(log *slog.Logger, counter *Counter) *DispatchHandler {
	return &DispatchHandler{log: log, counter: counter}
}

func (h *DispatchHandler) Handle(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Type {
	case NotificationDispatchedType:
		if _, ok := event.Payload.(NotificationDispatched); !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(NotificationDispatchedType)
	case DeliveryFailedType:
		if _, ok := event.Payload.(DeliveryFailed); !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(DeliveryFailedType)
	}
}
