// Package domain contains core concepts of the notification pipeline.
// This file defines the message event that triggers a notification.
// Events are immutable and carry everything the pipeline needs downstream.
package domain

// MessageType classifies a chat message for notification rendering.
type MessageType string

const (
	TypeText     MessageType = "text"
	TypeImage    MessageType = "image"
	TypeAudio    MessageType = "audio"
	TypeDocument MessageType = "document"
	TypeOther    MessageType = "other"
)

// ParseMessageType normalizes a raw record type. Unknown values fall back
// to TypeOther so a new client-side type never breaks delivery.
func ParseMessageType(raw string) MessageType {
	switch MessageType(raw) {
	case TypeText, TypeImage, TypeAudio, TypeDocument:
		return MessageType(raw)
	default:
		return TypeOther
	}
}

// ChatMessageEvent is the typed form of a "message record created"
// notification coming from the change feed.
type ChatMessageEvent struct {
	ChatKey   string // two participant ids joined by "_"
	MessageID string
	SenderID  string
	Content   string // empty for non-text messages
	Type      MessageType
}
