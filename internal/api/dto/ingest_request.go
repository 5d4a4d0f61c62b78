package dto

import (
	"encoding/json"
	"time"

	"github.com/aliskhannn/channel-gateway/internal/model"
)

// IngestRequest is the normalized record an event source posts.
type IngestRequest struct {
	ChannelID    model.ID          `json:"channelId" validate:"required"`
	MessageID    model.ID          `json:"messageId" validate:"required"`
	ChatID       *model.ID         `json:"chatId,omitempty"`
	ThreadID     *model.ID         `json:"threadId,omitempty"`
	Source       model.Source      `json:"source" validate:"omitempty,oneof=bot user-session sync unknown"`
	MessageType  string            `json:"messageType"`
	Text         *string           `json:"text,omitempty"`
	Caption      *string           `json:"caption,omitempty"`
	MediaType    string            `json:"mediaType"`
	MediaRefs    []json.RawMessage `json:"mediaRefs"`
	TelegramDate *time.Time        `json:"telegramDate,omitempty"`
	ReceivedAt   *time.Time        `json:"receivedAt,omitempty"`
	Metadata     map[string]any    `json:"metadata"`
}

// ToModel converts the request into a message record.
func (r IngestRequest) ToModel() model.Message {
	msg := model.Message{
		ChannelID:    r.ChannelID,
		MessageID:    r.MessageID,
		ChatID:       r.ChatID,
		ThreadID:     r.ThreadID,
		Source:       r.Source,
		MessageType:  r.MessageType,
		Text:         r.Text,
		Caption:      r.Caption,
		MediaType:    r.MediaType,
		MediaRefs:    r.MediaRefs,
		TelegramDate: r.TelegramDate,
		Metadata:     r.Metadata,
	}

	if r.ReceivedAt != nil {
		msg.ReceivedAt = *r.ReceivedAt
	}

	return msg
}

// KeyResponse echoes the identity of an accepted message.
type KeyResponse struct {
	ChannelID model.ID `json:"channelId"`
	MessageID model.ID `json:"messageId"`
}
