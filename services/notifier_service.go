//go:generate go run go.uber.org/mock/mockgen -source=notifier_service.go -destination=../mocks/mock_notifier_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chat-notify/domain"
	"chat-notify/domain/event"
	"chat-notify/errors"
	"chat-notify/infrastructure/push"
	"chat-notify/repositories"

	"github.com/samber/lo"
)

type INotifierService interface {
	Notify(ctx context.Context, e domain.ChatMessageEvent) error
}

// NotifierService runs one notification pipeline per message event:
// participant resolution, sender/recipient lookups, payload construction,
// batch dispatch, then pruning of permanently-invalid tokens.
//
// The service holds no state across invocations. Errors returned here are
// for logging and tests only; the ingress never surfaces them to whoever
// created the message record (best-effort notify, never notify-or-fail).
type NotifierService struct {
	log      *slog.Logger
	profiles repositories.IProfileRepository
	pusher   push.Pusher
	policy   domain.DisplayNamePolicy
	handlers []event.Handler
}

func NewNotifierService(
	log *slog.Logger,
	profiles repositories.IProfileRepository,
	pusher push.Pusher,
	policy domain.DisplayNamePolicy,
	handlers ...event.Handler,
) *NotifierService {
	return &NotifierService{
		log:      log,
		profiles: profiles,
		pusher:   pusher,
		policy:   policy,
		handlers: handlers,
	}
}

func (s *NotifierService) Notify(ctx context.Context, e domain.ChatMessageEvent) error {
	log := s.log.With("chatKey", e.ChatKey, "messageId", e.MessageID)

	recipientID, err := domain.ResolveParticipants(e.ChatKey, e.SenderID)
	if err != nil {
		log.Warn("Cannot resolve participants", "sender", e.SenderID, "error", err)
		return err
	}

	// The sender lookup is cosmetic, the recipient lookup is load-bearing.
	// Neither depends on the other, so both run concurrently and join
	// before the payload is built.
	var (
		senderName   string
		recipient    repositories.Profile
		recipientErr error
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		senderName = s.resolveSenderName(log, e.SenderID)
	}()
	go func() {
		defer wg.Done()
		recipient, recipientErr = s.profiles.GetProfile(recipientID)
	}()
	wg.Wait()

	if recipientErr != nil {
		log.Error("Recipient lookup failed, no delivery target", "recipient", recipientID, "error", recipientErr)
		return fmt.Errorf("recipient %s: %w", recipientID, recipientErr)
	}

	tokens := lo.Filter(recipient.Tokens, func(token string, _ int) bool {
		return token != ""
	})
	if len(tokens) == 0 {
		log.Info("Recipient has no valid tokens, nothing to dispatch", "recipient", recipientID)
		return errors.ErrNoDeliveryTokens
	}

	payload := domain.BuildPayload(e, senderName)

	outcomes, err := s.pusher.SendBatch(ctx, tokens, payload)
	if err != nil {
		log.Error("Batch send failed", "recipient", recipientID, "tokens", len(tokens), "error", err)
		s.emit(event.DeliveryFailedType, event.DeliveryFailed{ChatKey: e.ChatKey, Recipient: recipientID})
		return fmt.Errorf("dispatch to %s: %w", recipientID, err)
	}

	failures := lo.CountBy(outcomes, func(o domain.DeliveryOutcome) bool { return !o.Success })
	log.Info("Notification dispatched",
		"recipient", recipientID,
		"tokens", len(tokens),
		"failures", failures)
	s.emit(event.NotificationDispatchedType, event.NotificationDispatched{
		ChatKey:   e.ChatKey,
		Recipient: recipientID,
		Tokens:    len(tokens),
		Failures:  failures,
	})

	s.pruneInvalidTokens(log, recipientID, outcomes)
	return nil
}

// resolveSenderName fetches the sender profile and applies the display
// policy. Every failure path degrades to the policy default; the sender
// name never aborts the pipeline.
func (s *NotifierService) resolveSenderName(log *slog.Logger, senderID string) string {
	profile, err := s.profiles.GetProfile(senderID)
	if err != nil {
		log.Warn("Sender lookup failed, using default name", "sender", senderID, "error", err)
		return s.policy.DisplayName("", false)
	}
	return s.policy.DisplayName(profile.FullName, profile.Privileged)
}

// pruneInvalidTokens removes tokens that will never succeed again in one
// subtractive update. Best-effort: a prune failure is logged, not retried.
func (s *NotifierService) pruneInvalidTokens(log *slog.Logger, recipientID string, outcomes []domain.DeliveryOutcome) {
	invalid := domain.PermanentFailures(outcomes)
	if len(invalid) == 0 {
		return
	}

	if err := s.profiles.RemoveTokens(recipientID, invalid); err != nil {
		log.Warn("Token prune failed", "recipient", recipientID, "tokens", len(invalid), "error", err)
		return
	}

	log.Info("Pruned invalid tokens", "recipient", recipientID, "tokens", len(invalid))
	s.emit(event.TokensPrunedType, event.TokensPruned{Recipient: recipientID, Tokens: invalid})
}

func (s *NotifierService) emit(t event.Type, payload any) {
	e := event.Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
	for _, handler := range s.handlers {
		handler.Handle(e)
	}
}
