// Package push talks to the push gateway. The gateway itself is external
// infrastructure; everything here goes through the Pusher interface.
//
//go:generate go run go.uber.org/mock/mockgen -source=pusher.go -destination=../../mocks/mock_pusher.go -package=mocks
package push

import (
	"context"

	"chat-notify/domain"
)

// Pusher sends one payload to a batch of delivery tokens. Outcomes are
// index-aligned with the token list. A non-nil error means the batch call
// itself failed and no outcome can be trusted.
type Pusher interface {
	SendBatch(ctx context.Context, tokens []string, payload domain.NotificationPayload) ([]domain.DeliveryOutcome, error)
}
