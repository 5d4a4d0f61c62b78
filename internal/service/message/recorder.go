package message

import (
	"context"
	"fmt"

	"github.com/aliskhannn/channel-gateway/internal/model"
)

// Recorder applies delivery transitions to the store and mirrors the new
// status into the cache body. The store write decides the outcome.
type Recorder struct {
	store messageStore
	cache hotCache
}

func NewRecorder(store messageStore, cache hotCache) *Recorder {
	return &Recorder{store: store, cache: cache}
}

// Record moves msg to status and merges fields into metadata[section].
func (r *Recorder) Record(ctx context.Context, msg model.Message, status model.Status, section string, fields map[string]any) error {
	if err := r.store.UpdateStatus(ctx, msg, status, section, fields); err != nil {
		return fmt.Errorf("record %s: %w", status, err)
	}

	if status == model.StatusPublished {
		r.cache.MarkAsProcessed(ctx, msg.ChannelID, msg.MessageID)
	} else {
		r.cache.SetStatus(ctx, msg.ChannelID, msg.MessageID, status)
	}

	return nil
}
