package model

import "time"

// Channel is a monitored source channel. The core only reads it.
type Channel struct {
	ChannelID  int64      `json:"channelId"`
	IsActive   bool       `json:"isActive"`
	Title      string     `json:"title"`
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`
}
