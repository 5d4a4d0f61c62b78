// Package publisher delivers messages to the downstream HTTP consumers.
//
// A delivery round tries every configured endpoint in order. When the whole
// list fails, the publisher sleeps BaseDelay*Backoff^attempt and starts a new
// round, up to MaxRetries extra rounds. Exhausted messages are marked failed,
// appended to the failure queue and marked queued.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/channel-gateway/internal/model"
)

// TokenHeader carries the shared secret on every delivery.
const TokenHeader = "X-Gateway-Token"

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultBaseDelay      = 5 * time.Second
	DefaultMaxRetries     = 3
	DefaultBackoff        = 2.0
)

// ErrNoEndpoints is returned when the publisher has nowhere to deliver.
var ErrNoEndpoints = errors.New("no publish endpoints configured")

//go:generate mockgen -source=publisher.go -destination=../mocks/publisher/mock_publisher.go -package=mocks

type recorder interface {
	Record(ctx context.Context, msg model.Message, status model.Status, section string, fields map[string]any) error
}

type overflowQueue interface {
	Append(msg model.Message)
	Path() string
}

// Alerter notifies operators when a message lands in the failure queue.
type Alerter interface {
	Alert(ctx context.Context, text string) error
}

// Config holds delivery settings.
type Config struct {
	Endpoints      []string
	Token          string
	RequestTimeout time.Duration
	BaseDelay      time.Duration
	MaxRetries     int
	Backoff        float64
}

// Result reports how a publish call ended.
type Result struct {
	Success  bool
	Queued   bool
	Endpoint string
	Attempts int
}

// Publisher posts messages to downstream endpoints with failover and backoff.
type Publisher struct {
	cfg      Config
	client   *http.Client
	recorder recorder
	queue    overflowQueue
	alert    Alerter
	sleep    func(ctx context.Context, d time.Duration) error
}

// New creates a publisher. alert may be nil.
func New(cfg Config, rec recorder, queue overflowQueue, alert Alerter) *Publisher {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}

	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	if cfg.Backoff < 1 {
		cfg.Backoff = DefaultBackoff
	}

	return &Publisher{
		cfg:      cfg,
		client:   &http.Client{},
		recorder: rec,
		queue:    queue,
		alert:    alert,
		sleep:    sleepContext,
	}
}

// BackoffDelay returns the pause before retry round attempt+1.
func BackoffDelay(base time.Duration, factor float64, attempt int) time.Duration {
	return time.Duration(float64(base) * math.Pow(factor, float64(attempt)))
}

// Publish delivers msg. Exhausting every round is not an error: the result
// reports Queued. An error is returned only when there are no endpoints.
//
// Requests and status writes run detached from ctx so a started sequence
// always ends in a recorded state. ctx is only watched between rounds: once
// it is done the remaining rounds are skipped and the message is queued.
//
// A message that starts in reprocess_pending ends in reprocessed instead of
// published.
func (p *Publisher) Publish(ctx context.Context, msg model.Message) (Result, error) {
	if len(p.cfg.Endpoints) == 0 {
		return Result{}, ErrNoEndpoints
	}

	parent := ctx
	ctx = context.WithoutCancel(parent)

	success := model.StatusPublished
	if msg.Status == model.StatusReprocessPending {
		success = model.StatusReprocessed
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return Result{}, fmt.Errorf("marshal message: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		for _, endpoint := range p.cfg.Endpoints {
			start := time.Now()

			err := p.post(ctx, endpoint, body)
			if err == nil {
				p.record(ctx, msg, success, "publish", map[string]any{
					"endpoint":  endpoint,
					"attempt":   attempt,
					"latencyMs": time.Since(start).Milliseconds(),
				})

				zlog.Logger.Info().
					Str("channel_id", msg.ChannelID.String()).
					Str("message_id", msg.MessageID.String()).
					Str("endpoint", endpoint).
					Int("attempt", attempt).
					Msg("message published")

				return Result{Success: true, Endpoint: endpoint, Attempts: attempt + 1}, nil
			}

			lastErr = err
			zlog.Logger.Warn().Err(err).
				Str("channel_id", msg.ChannelID.String()).
				Str("message_id", msg.MessageID.String()).
				Str("endpoint", endpoint).
				Int("attempt", attempt).
				Msg("publish attempt failed")

			p.record(ctx, msg, model.StatusRetrying, "publish", map[string]any{
				"endpoint":  endpoint,
				"attempt":   attempt,
				"lastError": err.Error(),
			})
		}

		if attempt == p.cfg.MaxRetries {
			break
		}

		if err := p.sleep(parent, BackoffDelay(p.cfg.BaseDelay, p.cfg.Backoff, attempt)); err != nil {
			zlog.Logger.Warn().Err(err).
				Str("channel_id", msg.ChannelID.String()).
				Str("message_id", msg.MessageID.String()).
				Int("attempt", attempt).
				Msg("backoff interrupted, skipping remaining rounds")

			p.exhausted(ctx, msg, lastErr, attempt+1)
			return Result{Queued: true, Attempts: attempt + 1}, nil
		}
	}

	p.exhausted(ctx, msg, lastErr, p.cfg.MaxRetries+1)

	return Result{Queued: true, Attempts: p.cfg.MaxRetries + 1}, nil
}

func (p *Publisher) exhausted(ctx context.Context, msg model.Message, lastErr error, attempts int) {
	reason := "unknown"
	if lastErr != nil {
		reason = lastErr.Error()
	}

	zlog.Logger.Error().
		Str("channel_id", msg.ChannelID.String()).
		Str("message_id", msg.MessageID.String()).
		Int("attempts", attempts).
		Str("last_error", reason).
		Msg("delivery exhausted, queueing message")

	p.record(ctx, msg, model.StatusFailed, "publish", map[string]any{
		"lastError": reason,
		"attempts":  attempts,
	})

	msg.Status = model.StatusFailed
	p.queue.Append(msg)

	p.record(ctx, msg, model.StatusQueued, "queue", map[string]any{
		"lastError": reason,
		"path":      p.queue.Path(),
	})

	if p.alert == nil {
		return
	}

	text := fmt.Sprintf("channel %s message %s queued after %d attempts: %s",
		msg.ChannelID, msg.MessageID, attempts, reason)
	if err := p.alert.Alert(ctx, text); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to send operator alert")
	}
}

// record logs transition failures; delivery already happened or failed and
// must not be repeated because the store is unavailable.
func (p *Publisher) record(ctx context.Context, msg model.Message, status model.Status, section string, fields map[string]any) {
	if err := p.recorder.Record(ctx, msg, status, section, fields); err != nil {
		zlog.Logger.Error().Err(err).
			Str("channel_id", msg.ChannelID.String()).
			Str("message_id", msg.MessageID.String()).
			Str("status", string(status)).
			Msg("failed to record status transition")
	}
}

func (p *Publisher) post(ctx context.Context, endpoint string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TokenHeader, p.cfg.Token)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("endpoint responded %s", resp.Status)
	}

	if !json.Valid(respBody) {
		return fmt.Errorf("endpoint responded %s without a JSON body", resp.Status)
	}

	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
