package domain

import "fmt"

const (
	// maxBodyLength is the number of characters kept before truncation.
	maxBodyLength = 150
	bodyEllipsis  = "..."

	defaultBody = "New message"

	// DataTypeChatMessage tags the data payload so the receiving client
	// can route the notification without a further lookup.
	DataTypeChatMessage = "chat_message"
)

// NotificationPayload is built fresh per event and never persisted.
type NotificationPayload struct {
	Title string
	Body  string
	Data  map[string]string
}

// BuildPayload renders the notification for a message event. The body
// depends on the message type; text content is carried verbatim, media
// types get a short sentence naming the sender.
func BuildPayload(e ChatMessageEvent, senderName string) NotificationPayload {
	body := defaultBody
	switch {
	case e.Type == TypeText && e.Content != "":
		body = e.Content
	case e.Type == TypeImage:
		body = fmt.Sprintf("%s sent an image.", senderName)
	case e.Type == TypeAudio:
		body = fmt.Sprintf("%s sent a voice message.", senderName)
	case e.Type == TypeDocument:
		body = fmt.Sprintf("%s sent a document.", senderName)
	}

	return NotificationPayload{
		Title: fmt.Sprintf("New message from %s", senderName),
		Body:  truncateBody(body),
		Data: map[string]string{
			"type":       DataTypeChatMessage,
			"chatId":     e.ChatKey,
			"senderId":   e.SenderID,
			"senderName": senderName,
		},
	}
}

// truncateBody keeps the first 150 characters and marks the cut with an
// ellipsis, yielding exactly 153 characters for oversized bodies.
func truncateBody(body string) string {
	runes := []rune(body)
	if len(runes) <= maxBodyLength {
		return body
	}
	return string(runes[:maxBodyLength]) + bodyEllipsis
}
