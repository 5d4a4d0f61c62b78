package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Source identifies which kind of event source produced a message.
type Source string

const (
	SourceBot         Source = "bot"
	SourceUserSession Source = "user-session"
	SourceSync        Source = "sync"
	SourceUnknown     Source = "unknown"
)

// Key identifies a message by its platform-assigned pair.
type Key struct {
	ChannelID ID
	MessageID ID
}

// Message is a normalized channel post and its delivery lifecycle.
type Message struct {
	ID          uuid.UUID         `json:"-"`
	ChannelID   ID                `json:"channelId" validate:"required"`
	MessageID   ID                `json:"messageId" validate:"required"`
	ChatID      *ID               `json:"chatId,omitempty"`
	ThreadID    *ID               `json:"threadId,omitempty"`
	Source      Source            `json:"source" validate:"omitempty,oneof=bot user-session sync unknown"`
	MessageType string            `json:"messageType"`
	Text        *string           `json:"text,omitempty"`
	Caption     *string           `json:"caption,omitempty"`
	MediaType   string            `json:"mediaType"`
	MediaRefs   []json.RawMessage `json:"mediaRefs"`
	Status      Status            `json:"status,omitempty"`
	Metadata    map[string]any    `json:"metadata"`

	ReceivedAt           time.Time  `json:"receivedAt"`
	TelegramDate         *time.Time `json:"telegramDate,omitempty"`
	PublishedAt          *time.Time `json:"publishedAt,omitempty"`
	FailedAt             *time.Time `json:"failedAt,omitempty"`
	QueuedAt             *time.Time `json:"queuedAt,omitempty"`
	ReprocessRequestedAt *time.Time `json:"reprocessRequestedAt,omitempty"`
	ReprocessedAt        *time.Time `json:"reprocessedAt,omitempty"`
	DeletedAt            *time.Time `json:"deletedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Key returns the identity pair of the message.
func (m Message) Key() Key {
	return Key{ChannelID: m.ChannelID, MessageID: m.MessageID}
}

// Normalize fills the defaults an event source may leave out.
func (m *Message) Normalize(now time.Time) {
	if m.Source == "" {
		m.Source = SourceUnknown
	}

	if m.ReceivedAt.IsZero() {
		m.ReceivedAt = now
	}

	if m.MediaRefs == nil {
		m.MediaRefs = []json.RawMessage{}
	}

	if m.Metadata == nil {
		m.Metadata = map[string]any{}
	}
}
