package event

import (
	"chat-notify/errors"
	"log/slog"
	"sync"
)

// PrunedHandler tracks token removals per recipient. The per-recipient
// breakdown helps spot clients that keep registering dead tokens.
type PrunedHandler struct {
	mu      sync.Mutex
	log     *slog.Logger
	counter *Counter
	removed map[string]uint64
}

func NewPrunedHandler(log *slog.Logger, counter *Counter) *PrunedHandler {
	return &PrunedHandler{
		log:     log,
		counter: counter,
		removed: make(map[string]uint64),
	}
}

func (h *PrunedHandler) Handle(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Type {
	case TokensPrunedType:
		payload, ok := event.Payload.(TokensPruned)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(TokensPrunedType)
		h.removed[payload.Recipient] += uint64(len(payload.Tokens))
	}
}

// RemovedFor returns how many tokens have been pruned for a recipient.
func (h *PrunedHandler) RemovedFor(recipient string) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.removed[recipient]
}
