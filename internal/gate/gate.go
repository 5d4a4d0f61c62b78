// Package gate decides whether messages from a channel may be persisted
// and forwarded.
//
// With no active channel registered the gate is permissive: every
// syntactically valid channel is allowed. Once at least one channel is
// active it becomes a strict allow-list. Both the "any active" answer and
// per-channel verdicts are cached for a TTL; a cache hit never touches the
// registry.
package gate

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/channel-gateway/internal/model"
)

// DefaultTTL is used when New receives a non-positive ttl.
const DefaultTTL = 60 * time.Second

const anyActiveKey = "any"

//go:generate mockgen -source=gate.go -destination=../mocks/gate/mock_gate.go -package=mocks

type channelRegistry interface {
	HasActive(ctx context.Context) (bool, error)
	IsActive(ctx context.Context, channelID int64) (bool, error)
}

// Gate is a read-through cache in front of the channels registry.
type Gate struct {
	registry  channelRegistry
	verdicts  *ttlcache.Cache[int64, bool]
	anyActive *ttlcache.Cache[string, bool]

	mu       sync.Mutex
	lastSeen *bool
}

// New creates a gate over the given registry.
func New(registry channelRegistry, ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Gate{
		registry: registry,
		verdicts: ttlcache.New[int64, bool](
			ttlcache.WithTTL[int64, bool](ttl),
			ttlcache.WithDisableTouchOnHit[int64, bool](),
		),
		anyActive: ttlcache.New[string, bool](
			ttlcache.WithTTL[string, bool](ttl),
			ttlcache.WithDisableTouchOnHit[string, bool](),
		),
	}
}

// IsAllowed reports whether messages from channelID may be persisted.
// Unparseable ids and registry failures yield false.
func (g *Gate) IsAllowed(ctx context.Context, channelID model.ID) bool {
	id, err := channelID.Int64()
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("channel_id", channelID.String()).Msg("invalid channel id")
		return false
	}

	if item := g.verdicts.Get(id); item != nil {
		return item.Value()
	}

	hasActive, err := g.hasActive(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("channel_id", id).Msg("failed to check active channels")
		return false
	}

	if !hasActive {
		g.verdicts.Set(id, true, ttlcache.DefaultTTL)
		return true
	}

	active, err := g.registry.IsActive(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("channel_id", id).Msg("failed to check channel permission")
		return false
	}

	g.verdicts.Set(id, active, ttlcache.DefaultTTL)

	return active
}

// Reset drops every cached answer.
func (g *Gate) Reset() {
	g.verdicts.DeleteAll()
	g.anyActive.DeleteAll()
}

// hasActive returns the cached "any active channel" answer, refreshing it
// on expiry. A flip to empty clears all per-channel verdicts.
func (g *Gate) hasActive(ctx context.Context) (bool, error) {
	if item := g.anyActive.Get(anyActiveKey); item != nil {
		return item.Value(), nil
	}

	hasActive, err := g.registry.HasActive(ctx)
	if err != nil {
		return false, err
	}

	g.mu.Lock()
	if !hasActive && (g.lastSeen == nil || *g.lastSeen) {
		g.verdicts.DeleteAll()
	}
	g.lastSeen = &hasActive
	g.mu.Unlock()

	g.anyActive.Set(anyActiveKey, hasActive, ttlcache.DefaultTTL)

	return hasActive, nil
}
