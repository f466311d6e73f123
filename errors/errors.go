package errors

import "fmt"

var (
	ErrInvalidChatKey   = fmt.Errorf("chat key does not encode two participants")
	ErrUnknownRecipient = fmt.Errorf("recipient cannot be derived from chat key")
	ErrProfileNotFound  = fmt.Errorf("profile not found")
	ErrNoDeliveryTokens = fmt.Errorf("recipient has no valid delivery tokens")
	ErrMissingSender    = fmt.Errorf("message record has no sender id")
	ErrInvalidPayload   = fmt.Errorf("invalid event payload")
	ErrWorkerPanic      = fmt.Errorf("worker panic")
)
