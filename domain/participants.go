package domain

import (
	"chat-notify/errors"
	"strings"
)

// chatKeySeparator joins the two participant ids of a conversation.
const chatKeySeparator = "_"

// ResolveParticipants derives the recipient from a chat key and the sender.
// The key must split into exactly two non-empty ids, one of which is the
// sender; the recipient is the other one. Anything else aborts the pipeline.
func ResolveParticipants(chatKey, senderID string) (string, error) {
	participants := strings.Split(chatKey, chatKeySeparator)
	if len(participants) != 2 || participants[0] == "" || participants[1] == "" {
		return "", errors.ErrInvalidChatKey
	}

	first, second := participants[0], participants[1]
	switch {
	case first == senderID && second == senderID:
		// Self-chat key: there is nobody to notify.
		return "", errors.ErrUnknownRecipient
	case first == senderID:
		return second, nil
	case second == senderID:
		return first, nil
	default:
		return "", errors.ErrUnknownRecipient
	}
}
