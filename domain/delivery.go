package domain

import "github.com/samber/lo"

// ErrorCode classifies a per-token delivery failure. The vocabulary is
// fixed by the push gateway contract; anything the gateway reports that
// does not map cleanly lands on CodeInternal.
type ErrorCode string

const (
	CodeInvalidToken  ErrorCode = "invalid-token"
	CodeNotRegistered ErrorCode = "not-registered"
	CodeUnavailable   ErrorCode = "unavailable"
	CodeInternal      ErrorCode = "internal"
)

// Permanent reports whether a token failing with this code will never
// succeed again and should be removed from the recipient's profile.
// Transient codes are left alone; this pipeline never retries.
func (c ErrorCode) Permanent() bool {
	return c == CodeInvalidToken || c == CodeNotRegistered
}

// DeliveryOutcome is the per-token result of a batch send. Outcomes are
// index-aligned with the token list handed to the dispatcher.
type DeliveryOutcome struct {
	Token   string
	Success bool
	Code    ErrorCode // zero value when Success
}

// PermanentFailures extracts the tokens whose outcome is permanently
// invalid. The result feeds a single subtractive profile update.
func PermanentFailures(outcomes []DeliveryOutcome) []string {
	return lo.FilterMap(outcomes, func(o DeliveryOutcome, _ int) (string, bool) {
		return o.Token, !o.Success && o.Code.Permanent()
	})
}
