package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"chat-notify/domain"
	"chat-notify/domain/event"
	"chat-notify/errors"
	"chat-notify/mocks"
	"chat-notify/repositories"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPolicy = domain.DisplayNamePolicy{
	PrivilegedName: "Dr. Ali Kamal",
	DefaultName:    "Someone",
}

func textEvent() domain.ChatMessageEvent {
	return domain.ChatMessageEvent{
		ChatKey:   "alice_bob",
		MessageID: "m1",
		SenderID:  "alice",
		Content:   "hello",
		Type:      domain.TypeText,
	}
}

func success(tokens ...string) []domain.DeliveryOutcome {
	outcomes := make([]domain.DeliveryOutcome, 0, len(tokens))
	for _, token := range tokens {
		outcomes = append(outcomes, domain.DeliveryOutcome{Token: token, Success: true})
	}
	return outcomes
}

func TestNotifierService_Notify(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockIProfileRepository(ctrl)
	pusher := mocks.NewMockPusher(ctrl)
	service := NewNotifierService(log, profiles, pusher, testPolicy)

	profiles.EXPECT().GetProfile("alice").
		Return(repositories.Profile{ID: "alice", FullName: "Alice A"}, nil)
	profiles.EXPECT().GetProfile("bob").
		Return(repositories.Profile{ID: "bob", Tokens: []string{"t1", "t2"}}, nil)

	var sent domain.NotificationPayload
	pusher.EXPECT().SendBatch(ctx, []string{"t1", "t2"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, tokens []string, payload domain.NotificationPayload) ([]domain.DeliveryOutcome, error) {
			sent = payload
			return success(tokens...), nil
		})

	req.NoError(service.Notify(ctx, textEvent()))

	req.Equal("New message from Alice A", sent.Title)
	req.Equal("hello", sent.Body)
	req.Equal(map[string]string{
		"type":       "chat_message",
		"chatId":     "alice_bob",
		"senderId":   "alice",
		"senderName": "Alice A",
	}, sent.Data)
}

func TestNotifierService_PrivilegedSenderIsMasked(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockIProfileRepository(ctrl)
	pusher := mocks.NewMockPusher(ctrl)
	service := NewNotifierService(slog.Default(), profiles, pusher, testPolicy)

	profiles.EXPECT().GetProfile("alice").
		Return(repositories.Profile{ID: "alice", FullName: "Alice A", Privileged: true}, nil)
	profiles.EXPECT().GetProfile("bob").
		Return(repositories.Profile{ID: "bob", Tokens: []string{"t1"}}, nil)

	var sent domain.NotificationPayload
	pusher.EXPECT().SendBatch(ctx, []string{"t1"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, tokens []string, payload domain.NotificationPayload) ([]domain.DeliveryOutcome, error) {
			sent = payload
			return success(tokens...), nil
		})

	req.NoError(service.Notify(ctx, textEvent()))

	req.Equal("New message from Dr. Ali Kamal", sent.Title)
	req.Equal("Dr. Ali Kamal", sent.Data["senderName"])
}

func TestNotifierService_SenderLookupFailureDegrades(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockIProfileRepository(ctrl)
	pusher := mocks.NewMockPusher(ctrl)
	service := NewNotifierService(slog.Default(), profiles, pusher, testPolicy)

	profiles.EXPECT().GetProfile("alice").
		Return(repositories.Profile{}, fmt.Errorf("store unavailable"))
	profiles.EXPECT().GetProfile("bob").
		Return(repositories.Profile{ID: "bob", Tokens: []string{"t1"}}, nil)

	var sent domain.NotificationPayload
	pusher.EXPECT().SendBatch(ctx, []string{"t1"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, tokens []string, payload domain.NotificationPayload) ([]domain.DeliveryOutcome, error) {
			sent = payload
			return success(tokens...), nil
		})

	req.NoError(service.Notify(ctx, textEvent()))
	req.Equal("New message from Someone", sent.Title)
}

func TestNotifierService_RecipientLookupFailureIsFatal(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockIProfileRepository(ctrl)
	pusher := mocks.NewMockPusher(ctrl)
	service := NewNotifierService(slog.Default(), profiles, pusher, testPolicy)

	profiles.EXPECT().GetProfile("alice").
		Return(repositories.Profile{ID: "alice", FullName: "Alice A"}, nil)
	profiles.EXPECT().GetProfile("bob").
		Return(repositories.Profile{}, errors.ErrProfileNotFound)

	err := service.Notify(ctx, textEvent())
	req.ErrorIs(err, errors.ErrProfileNotFound)
}

func TestNotifierService_NoValidTokensNeverDispatches(t *testing.T) {
	tests := []struct {
		description string
		tokens      []string
	}{
		{"Should not dispatch when the token set is empty", nil},
		{"Should not dispatch when all tokens are malformed", []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			profiles := mocks.NewMockIProfileRepository(ctrl)
			pusher := mocks.NewMockPusher(ctrl)
			service := NewNotifierService(slog.Default(), profiles, pusher, testPolicy)

			profiles.EXPECT().GetProfile("alice").
				Return(repositories.Profile{ID: "alice", FullName: "Alice A"}, nil)
			profiles.EXPECT().GetProfile("bob").
				Return(repositories.Profile{ID: "bob", Tokens: tt.tokens}, nil)

			err := service.Notify(context.Background(), textEvent())
			req.ErrorIs(err, errors.ErrNoDeliveryTokens)
		})
	}
}

func TestNotifierService_MalformedChatKeyAborts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockIProfileRepository(ctrl)
	pusher := mocks.NewMockPusher(ctrl)
	service := NewNotifierService(slog.Default(), profiles, pusher, testPolicy)

	e := textEvent()
	e.ChatKey = "alice_bob_carol"

	err := service.Notify(context.Background(), e)
	req.ErrorIs(err, errors.ErrInvalidChatKey)
}

func TestNotifierService_PrunesPermanentlyInvalidTokens(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockIProfileRepository(ctrl)
	pusher := mocks.NewMockPusher(ctrl)
	counter := event.NewCounter()
	service := NewNotifierService(slog.Default(), profiles, pusher, testPolicy,
		event.NewDispatchHandler(slog.Default(), counter),
		event.NewPrunedHandler(slog.Default(), counter),
	)

	profiles.EXPECT().GetProfile("alice").
		Return(repositories.Profile{ID: "alice", FullName: "Alice A"}, nil)
	profiles.EXPECT().GetProfile("bob").
		Return(repositories.Profile{ID: "bob", Tokens: []string{"t1", "t2", "t3"}}, nil)

	pusher.EXPECT().SendBatch(ctx, []string{"t1", "t2", "t3"}, gomock.Any()).
		Return([]domain.DeliveryOutcome{
			{Token: "t1", Code: domain.CodeNotRegistered},
			{Token: "t2", Success: true},
			{Token: "t3", Code: domain.CodeUnavailable},
		}, nil)

	// Only t1 qualifies: t3 failed transiently and must stay registered.
	profiles.EXPECT().RemoveTokens("bob", []string{"t1"}).Return(nil)

	req.NoError(service.Notify(ctx, textEvent()))
	req.Equal(uint64(1), counter.Get(event.NotificationDispatchedType))
	req.Equal(uint64(1), counter.Get(event.TokensPrunedType))
}

func TestNotifierService_BatchFailureSkipsPruning(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockIProfileRepository(ctrl)
	pusher := mocks.NewMockPusher(ctrl)
	counter := event.NewCounter()
	service := NewNotifierService(slog.Default(), profiles, pusher, testPolicy,
		event.NewDispatchHandler(slog.Default(), counter),
	)

	profiles.EXPECT().GetProfile("alice").
		Return(repositories.Profile{ID: "alice", FullName: "Alice A"}, nil)
	profiles.EXPECT().GetProfile("bob").
		Return(repositories.Profile{ID: "bob", Tokens: []string{"t1"}}, nil)

	pusher.EXPECT().SendBatch(ctx, []string{"t1"}, gomock.Any()).
		Return(nil, fmt.Errorf("gateway returned 503 Service Unavailable"))

	err := service.Notify(ctx, textEvent())
	req.Error(err)
	req.Equal(uint64(1), counter.Get(event.DeliveryFailedType))
	req.Equal(uint64(0), counter.Get(event.NotificationDispatchedType))
}

func TestNotifierService_PruneFailureIsBestEffort(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockIProfileRepository(ctrl)
	pusher := mocks.NewMockPusher(ctrl)
	service := NewNotifierService(slog.Default(), profiles, pusher, testPolicy)

	profiles.EXPECT().GetProfile("alice").
		Return(repositories.Profile{ID: "alice", FullName: "Alice A"}, nil)
	profiles.EXPECT().GetProfile("bob").
		Return(repositories.Profile{ID: "bob", Tokens: []string{"t1"}}, nil)

	pusher.EXPECT().SendBatch(ctx, []string{"t1"}, gomock.Any()).
		Return([]domain.DeliveryOutcome{{Token: "t1", Code: domain.CodeInvalidToken}}, nil)
	profiles.EXPECT().RemoveTokens("bob", []string{"t1"}).
		Return(fmt.Errorf("store unavailable"))

	// The prune is best-effort: its failure never fails the pipeline.
	req.NoError(service.Notify(ctx, textEvent()))
}
