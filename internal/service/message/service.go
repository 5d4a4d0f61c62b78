package message

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/channel-gateway/internal/model"
	"github.com/aliskhannn/channel-gateway/internal/publisher"
	"github.com/aliskhannn/channel-gateway/internal/rabbitmq/queue"
	messagerepo "github.com/aliskhannn/channel-gateway/internal/repository/message"
)

// ErrDuplicate reports a message already seen by the cache or the store.
var ErrDuplicate = errors.New("duplicate message")

//go:generate mockgen -source=service.go -destination=../../mocks/service/message/mock_service.go -package=mocks

type hotCache interface {
	IsDuplicate(ctx context.Context, channelID, messageID model.ID) bool
	CacheMessage(ctx context.Context, msg model.Message) bool
	SetStatus(ctx context.Context, channelID, messageID model.ID, status model.Status) bool
	MarkAsProcessed(ctx context.Context, channelID, messageID model.ID) bool
	CleanupExpired(ctx context.Context, channelID model.ID) int64
}

type messageStore interface {
	Insert(ctx context.Context, msg model.Message) (model.Message, bool, error)
	UpdateStatus(ctx context.Context, msg model.Message, status model.Status, section string, fields map[string]any) error
	Get(ctx context.Context, channelID, messageID model.ID) (model.Message, error)
	LastN(ctx context.Context, channelID model.ID, limit int) ([]model.Message, error)
	CountByStatus(ctx context.Context) (map[model.Status]int64, error)
}

type channelRegistry interface {
	ListActive(ctx context.Context) ([]model.Channel, error)
}

type deliverer interface {
	Publish(ctx context.Context, msg model.Message) (publisher.Result, error)
}

type failureQueue interface {
	Size() int
}

type envelopeQueue interface {
	Publish(env queue.Envelope, strategy retry.Strategy) error
}

// Stats is the read-only health surface of the pipeline.
type Stats struct {
	Counts     map[model.Status]int64 `json:"counts"`
	QueueDepth int                    `json:"queueDepth"`
}

// Service runs the ingestion pipeline and the operator operations around it.
type Service struct {
	store     messageStore
	cache     hotCache
	channels  channelRegistry
	publisher deliverer
	failures  failureQueue
	queue     envelopeQueue
	strategy  retry.Strategy
	now       func() time.Time
}

// NewService creates a message service.
func NewService(
	store messageStore,
	cache hotCache,
	channels channelRegistry,
	pub deliverer,
	failures failureQueue,
	q envelopeQueue,
	strategy retry.Strategy,
) *Service {
	return &Service{
		store:     store,
		cache:     cache,
		channels:  channels,
		publisher: pub,
		failures:  failures,
		queue:     q,
		strategy:  strategy,
		now:       time.Now,
	}
}

// Enqueue hands a normalized record to the workers.
func (s *Service) Enqueue(ctx context.Context, msg model.Message) error {
	msg.Normalize(s.now())

	if err := s.queue.Publish(queue.Envelope{Kind: queue.KindIngest, Message: msg}, s.strategy); err != nil {
		return fmt.Errorf("enqueue message: %w", err)
	}

	return nil
}

// Process runs one message through the pipeline: dedup check, store insert,
// cache write, delivery. Duplicates return ErrDuplicate and disallowed
// channels return the store's ErrChannelNotAllowed; neither is published.
func (s *Service) Process(ctx context.Context, msg model.Message) (publisher.Result, error) {
	msg.Normalize(s.now())

	if s.cache.IsDuplicate(ctx, msg.ChannelID, msg.MessageID) {
		zlog.Logger.Debug().
			Str("channel_id", msg.ChannelID.String()).
			Str("message_id", msg.MessageID.String()).
			Msg("duplicate in cache, dropping")
		return publisher.Result{}, ErrDuplicate
	}

	stored, inserted, err := s.store.Insert(ctx, msg)
	if err != nil {
		return publisher.Result{}, fmt.Errorf("store message: %w", err)
	}

	if !inserted {
		zlog.Logger.Debug().
			Str("channel_id", msg.ChannelID.String()).
			Str("message_id", msg.MessageID.String()).
			Str("status", string(stored.Status)).
			Msg("duplicate in store, dropping")
		return publisher.Result{}, ErrDuplicate
	}

	s.cache.CacheMessage(ctx, stored)

	res, err := s.publisher.Publish(ctx, stored)
	if err != nil {
		return res, fmt.Errorf("publish message: %w", err)
	}

	return res, nil
}

// Reprocess moves a failed or queued message to reprocess_pending and
// schedules a new delivery.
func (s *Service) Reprocess(ctx context.Context, channelID, messageID model.ID) error {
	msg, err := s.store.Get(ctx, channelID, messageID)
	if err != nil {
		return fmt.Errorf("get message: %w", err)
	}

	err = s.store.UpdateStatus(ctx, msg, model.StatusReprocessPending, "reprocess", map[string]any{
		"previousStatus": string(msg.Status),
		"requestedAt":    s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("request reprocess: %w", err)
	}

	s.cache.SetStatus(ctx, channelID, messageID, model.StatusReprocessPending)

	msg.Status = model.StatusReprocessPending
	if err := s.queue.Publish(queue.Envelope{Kind: queue.KindReprocess, Message: msg}, s.strategy); err != nil {
		return fmt.Errorf("enqueue reprocess: %w", err)
	}

	return nil
}

// Redeliver publishes a message previously moved to reprocess_pending.
// Messages that left that state in the meantime are skipped.
func (s *Service) Redeliver(ctx context.Context, channelID, messageID model.ID) (publisher.Result, error) {
	msg, err := s.store.Get(ctx, channelID, messageID)
	if err != nil {
		return publisher.Result{}, fmt.Errorf("get message: %w", err)
	}

	if msg.Status != model.StatusReprocessPending {
		zlog.Logger.Info().
			Str("channel_id", channelID.String()).
			Str("message_id", messageID.String()).
			Str("status", string(msg.Status)).
			Msg("message no longer pending reprocess, skipping")
		return publisher.Result{}, nil
	}

	res, err := s.publisher.Publish(ctx, msg)
	if err != nil {
		return res, fmt.Errorf("publish message: %w", err)
	}

	return res, nil
}

// Delete marks a message deleted. Deleted rows are kept.
func (s *Service) Delete(ctx context.Context, channelID, messageID model.ID) error {
	msg, err := s.store.Get(ctx, channelID, messageID)
	if err != nil {
		return fmt.Errorf("get message: %w", err)
	}

	err = s.store.UpdateStatus(ctx, msg, model.StatusDeleted, "delete", map[string]any{
		"previousStatus": string(msg.Status),
	})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	s.cache.SetStatus(ctx, channelID, messageID, model.StatusDeleted)

	return nil
}

func (s *Service) Get(ctx context.Context, channelID, messageID model.ID) (model.Message, error) {
	msg, err := s.store.Get(ctx, channelID, messageID)
	if err != nil {
		return model.Message{}, fmt.Errorf("get message: %w", err)
	}

	return msg, nil
}

func (s *Service) LastN(ctx context.Context, channelID model.ID, limit int) ([]model.Message, error) {
	messages, err := s.store.LastN(ctx, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("get last messages: %w", err)
	}

	return messages, nil
}

func (s *Service) ActiveChannels(ctx context.Context) ([]model.Channel, error) {
	channels, err := s.channels.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active channels: %w", err)
	}

	return channels, nil
}

// Stats returns per-status counts and the failure queue depth.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	counts, err := s.store.CountByStatus(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count messages: %w", err)
	}

	return Stats{Counts: counts, QueueDepth: s.failures.Size()}, nil
}

// QueueDepth returns the number of records in the failure queue.
func (s *Service) QueueDepth() int {
	return s.failures.Size()
}

// CleanupCache trims the recency index of every active channel and returns
// the number of removed entries.
func (s *Service) CleanupCache(ctx context.Context) (int64, error) {
	channels, err := s.channels.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active channels: %w", err)
	}

	var removed int64
	for _, ch := range channels {
		removed += s.cache.CleanupExpired(ctx, model.ID(fmt.Sprint(ch.ChannelID)))
	}

	return removed, nil
}

// IsRejected reports whether err is a silent-drop outcome of Process.
func IsRejected(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, messagerepo.ErrChannelNotAllowed)
}
