package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"chat-notify/domain"

	"github.com/samber/lo"
)

// Wire error strings of the gateway's fixed vocabulary.
const (
	wireErrInvalidRegistration = "InvalidRegistration"
	wireErrNotRegistered       = "NotRegistered"
	wireErrUnavailable         = "Unavailable"
)

// sendRequest is the gateway batch request. Every send is high priority
// with the background-wake flag set, so the client can process the data
// payload even when it is not foregrounded.
type sendRequest struct {
	RegistrationIDs  []string          `json:"registration_ids"`
	Notification     notification      `json:"notification"`
	Data             map[string]string `json:"data"`
	ContentAvailable bool              `json:"content_available"`
	Priority         string            `json:"priority"`
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type sendResponse struct {
	Results []sendResult `json:"results"`
}

type sendResult struct {
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// GatewayClient is the HTTP implementation of Pusher.
type GatewayClient struct {
	url         string
	http        *http.Client
	credentials *Credentials
	log         *slog.Logger
}

func NewGatewayClient(url string, httpClient *http.Client, credentials *Credentials, log *slog.Logger) *GatewayClient {
	return &GatewayClient{url: url, http: httpClient, credentials: credentials, log: log}
}

func (c *GatewayClient) SendBatch(ctx context.Context, tokens []string, payload domain.NotificationPayload) ([]domain.DeliveryOutcome, error) {
	body, err := json.Marshal(sendRequest{
		RegistrationIDs:  tokens,
		Notification:     notification{Title: payload.Title, Body: payload.Body},
		Data:             payload.Data,
		ContentAvailable: true,
		Priority:         "high",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal batch request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")

	bearer, err := c.credentials.Bearer()
	if err != nil {
		return nil, fmt.Errorf("gateway credentials: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+bearer)

	response, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("batch send: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("batch send: gateway returned %s", response.Status)
	}

	var decoded sendResponse
	if err = json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode batch response: %w", err)
	}
	if len(decoded.Results) != len(tokens) {
		return nil, fmt.Errorf("batch send: %d results for %d tokens", len(decoded.Results), len(tokens))
	}

	outcomes := lo.Map(decoded.Results, func(result sendResult, i int) domain.DeliveryOutcome {
		return toOutcome(tokens[i], result)
	})

	successes := lo.CountBy(outcomes, func(o domain.DeliveryOutcome) bool { return o.Success })
	c.log.Debug("Batch send completed",
		"tokens", len(tokens),
		"successes", successes,
		"failures", len(tokens)-successes)

	return outcomes, nil
}

func toOutcome(token string, result sendResult) domain.DeliveryOutcome {
	if result.Error == "" {
		return domain.DeliveryOutcome{Token: token, Success: true}
	}
	return domain.DeliveryOutcome{Token: token, Code: classify(result.Error)}
}

func classify(wireError string) domain.ErrorCode {
	switch wireError {
	case wireErrInvalidRegistration:
		return domain.CodeInvalidToken
	case wireErrNotRegistered:
		return domain.CodeNotRegistered
	case wireErrUnavailable:
		return domain.CodeUnavailable
	default:
		return domain.CodeInternal
	}
}
