package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPayload_BodySelection(t *testing.T) {
	base := ChatMessageEvent{
		ChatKey:   "alice_bob",
		MessageID: "m1",
		SenderID:  "alice",
	}

	tests := []struct {
		description string
		msgType     MessageType
		content     string
		wantBody    string
	}{
		{
			"Should carry text content verbatim",
			TypeText, "hello", "hello",
		},
		{
			"Should describe an image",
			TypeImage, "", "Alice A sent an image.",
		},
		{
			"Should describe a voice message",
			TypeAudio, "", "Alice A sent a voice message.",
		},
		{
			"Should describe a document",
			TypeDocument, "", "Alice A sent a document.",
		},
		{
			"Should use the generic body for unknown types",
			TypeOther, "whatever", "New message",
		},
		{
			"Should use the generic body for text without content",
			TypeText, "", "New message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			e := base
			e.Type = tt.msgType
			e.Content = tt.content

			payload := BuildPayload(e, "Alice A")
			req.Equal(tt.wantBody, payload.Body)
			req.Equal("New message from Alice A", payload.Title)
		})
	}
}

func TestBuildPayload_Data(t *testing.T) {
	req := require.New(t)
	e := ChatMessageEvent{
		ChatKey:   "alice_bob",
		MessageID: "m1",
		SenderID:  "alice",
		Content:   "hello",
		Type:      TypeText,
	}

	payload := BuildPayload(e, "Alice A")

	req.Equal(map[string]string{
		"type":       "chat_message",
		"chatId":     "alice_bob",
		"senderId":   "alice",
		"senderName": "Alice A",
	}, payload.Data)
}

func TestBuildPayload_Truncation(t *testing.T) {
	req := require.New(t)
	content := strings.Repeat("a", 149) + "bcd"
	e := ChatMessageEvent{
		ChatKey:  "alice_bob",
		SenderID: "alice",
		Content:  content,
		Type:     TypeText,
	}

	payload := BuildPayload(e, "Alice A")

	req.Len(payload.Body, 153)
	req.Equal(content[:150], payload.Body[:150])
	req.True(strings.HasSuffix(payload.Body, "..."))
}

func TestBuildPayload_NoTruncationAtLimit(t *testing.T) {
	req := require.New(t)
	content := strings.Repeat("a", 150)
	e := ChatMessageEvent{
		ChatKey:  "alice_bob",
		SenderID: "alice",
		Content:  content,
		Type:     TypeText,
	}

	payload := BuildPayload(e, "Alice A")
	req.Equal(content, payload.Body)
}

func TestParseMessageType(t *testing.T) {
	req := require.New(t)
	req.Equal(TypeText, ParseMessageType("text"))
	req.Equal(TypeImage, ParseMessageType("image"))
	req.Equal(TypeOther, ParseMessageType("sticker"))
	req.Equal(TypeOther, ParseMessageType(""))
}
