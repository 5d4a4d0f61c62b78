// Package cache is the hot, TTL-bounded view of recently seen messages.
//
// It is an accelerator only: every method is total and reports failure
// through its return value, never through an error, so callers can always
// fall back to the durable store.
//
// Key families, each with its own expiry:
//
//	msg:{channel}:{id}       message body        hot TTL
//	dedup:{channel}:{id}     duplicate marker    dedup TTL
//	channel:{channel}:recent id -> receive time  hot TTL, trimmed by CleanupExpired
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/channel-gateway/internal/model"
)

const (
	DefaultHotTTL   = time.Hour
	DefaultDedupTTL = 2 * time.Hour
)

// Entry is the cached projection of a message body.
type Entry struct {
	MessageID    model.ID       `json:"messageId"`
	Text         *string        `json:"text,omitempty"`
	Status       model.Status   `json:"status"`
	ReceivedAt   time.Time      `json:"receivedAt"`
	TelegramDate *time.Time     `json:"telegramDate,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// Cache stores message projections in Redis.
type Cache struct {
	rdb      redis.Cmdable
	hotTTL   time.Duration
	dedupTTL time.Duration
	now      func() time.Time
}

// New creates a cache with the given windows. Non-positive windows fall back to defaults.
func New(rdb redis.Cmdable, hotTTL, dedupTTL time.Duration) *Cache {
	if hotTTL <= 0 {
		hotTTL = DefaultHotTTL
	}

	if dedupTTL <= 0 {
		dedupTTL = DefaultDedupTTL
	}

	return &Cache{rdb: rdb, hotTTL: hotTTL, dedupTTL: dedupTTL, now: time.Now}
}

func messageKey(channelID, messageID model.ID) string {
	return fmt.Sprintf("msg:%s:%s", channelID, messageID)
}

func dedupKey(channelID, messageID model.ID) string {
	return fmt.Sprintf("dedup:%s:%s", channelID, messageID)
}

func recentKey(channelID model.ID) string {
	return fmt.Sprintf("channel:%s:recent", channelID)
}

// CacheMessage writes body, dedup marker and recency index in one transaction.
func (c *Cache) CacheMessage(ctx context.Context, msg model.Message) bool {
	status := msg.Status
	if status == "" {
		status = model.StatusReceived
	}

	body, err := json.Marshal(Entry{
		MessageID:    msg.MessageID,
		Text:         msg.Text,
		Status:       status,
		ReceivedAt:   msg.ReceivedAt,
		TelegramDate: msg.TelegramDate,
		Metadata:     msg.Metadata,
	})
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("message_id", msg.MessageID.String()).Msg("failed to encode cache entry")
		return false
	}

	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, messageKey(msg.ChannelID, msg.MessageID), body, c.hotTTL)
		pipe.Set(ctx, dedupKey(msg.ChannelID, msg.MessageID), "1", c.dedupTTL)
		pipe.ZAdd(ctx, recentKey(msg.ChannelID), &redis.Z{
			Score:  float64(msg.ReceivedAt.UnixMilli()),
			Member: msg.MessageID.String(),
		})
		pipe.Expire(ctx, recentKey(msg.ChannelID), c.hotTTL)
		return nil
	})
	if err != nil {
		zlog.Logger.Warn().Err(err).
			Str("channel_id", msg.ChannelID.String()).
			Str("message_id", msg.MessageID.String()).
			Msg("failed to cache message")
		return false
	}

	return true
}

// IsDuplicate checks the dedup marker. Any error reports "not a duplicate".
func (c *Cache) IsDuplicate(ctx context.Context, channelID, messageID model.ID) bool {
	n, err := c.rdb.Exists(ctx, dedupKey(channelID, messageID)).Result()
	if err != nil {
		zlog.Logger.Warn().Err(err).
			Str("channel_id", channelID.String()).
			Str("message_id", messageID.String()).
			Msg("dedup check failed, treating as new")
		return false
	}

	return n > 0
}

// GetUnprocessedMessages returns up to limit cached entries in status received,
// oldest first. Expired or unreadable bodies are skipped; any fetch error yields
// an empty result.
func (c *Cache) GetUnprocessedMessages(ctx context.Context, channelID model.ID, limit int) []Entry {
	if limit <= 0 {
		return []Entry{}
	}

	ids, err := c.rdb.ZRange(ctx, recentKey(channelID), 0, int64(limit-1)).Result()
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("channel_id", channelID.String()).Msg("failed to read recency index")
		return []Entry{}
	}

	if len(ids) == 0 {
		return []Entry{}
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = messageKey(channelID, model.ID(id))
	}

	values, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("channel_id", channelID.String()).Msg("failed to fetch cached bodies")
		return []Entry{}
	}

	entries := make([]Entry, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var e Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			zlog.Logger.Debug().Err(err).Str("key", keys[i]).Msg("skipping unreadable cache entry")
			continue
		}

		if e.Status != model.StatusReceived {
			continue
		}

		if e.MessageID == "" {
			e.MessageID = model.ID(ids[i])
		}

		entries = append(entries, e)
	}

	return entries
}

// SetStatus rewrites the status of a cached body and refreshes its TTL.
// A missing body is not recreated.
func (c *Cache) SetStatus(ctx context.Context, channelID, messageID model.ID, status model.Status) bool {
	key := messageKey(channelID, messageID)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zlog.Logger.Warn().Err(err).Str("key", key).Msg("failed to read cached body")
		}
		return false
	}

	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		zlog.Logger.Warn().Err(err).Str("key", key).Msg("failed to decode cached body")
		return false
	}

	e.Status = status

	body, err := json.Marshal(e)
	if err != nil {
		return false
	}

	if err := c.rdb.Set(ctx, key, body, c.hotTTL).Err(); err != nil {
		zlog.Logger.Warn().Err(err).Str("key", key).Msg("failed to update cached body")
		return false
	}

	return true
}

// MarkAsProcessed flags a cached body as published.
func (c *Cache) MarkAsProcessed(ctx context.Context, channelID, messageID model.ID) bool {
	return c.SetStatus(ctx, channelID, messageID, model.StatusPublished)
}

// CleanupExpired drops recency entries older than the hot window and
// returns how many were removed.
func (c *Cache) CleanupExpired(ctx context.Context, channelID model.ID) int64 {
	cutoff := c.now().Add(-c.hotTTL).UnixMilli()

	n, err := c.rdb.ZRemRangeByScore(ctx, recentKey(channelID), "-inf", "("+strconv.FormatInt(cutoff, 10)).Result()
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("channel_id", channelID.String()).Msg("failed to clean recency index")
		return 0
	}

	return n
}
