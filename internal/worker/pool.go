package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/channel-gateway/internal/rabbitmq/queue"
)

//go:generate mockgen -source=pool.go -destination=../mocks/worker/mock_pool.go -package=mocks

type envelopeSource interface {
	Consume(out chan<- queue.Envelope, strategy retry.Strategy) error
}

type envelopeHandler interface {
	HandleMessage(ctx context.Context, env queue.Envelope)
}

// Pool consumes envelopes and fans them out to a fixed number of workers.
// Distinct messages are handled concurrently in no particular order.
type Pool struct {
	source  envelopeSource
	handler envelopeHandler
}

func NewPool(s envelopeSource, h envelopeHandler) *Pool {
	return &Pool{source: s, handler: h}
}

// Run blocks until ctx is cancelled and every worker has finished its
// current envelope. Envelopes delivered after that are drained and logged.
func (p *Pool) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount <= 0 {
		workerCount = 1
	}

	envelopes := make(chan queue.Envelope)

	go func() {
		if err := p.source.Consume(envelopes, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case env := <-envelopes:
					p.handler.HandleMessage(ctx, env)
				}
			}
		}(i)
	}

	wg.Wait()
	go drain(envelopes)
	zlog.Logger.Print("worker pool stopped")
}

// drain keeps the decoder from blocking after the workers are gone. The
// broker acks before handing a delivery over, so anything arriving here is
// lost and logged with its key for re-ingestion.
func drain(envelopes <-chan queue.Envelope) {
	for env := range envelopes {
		zlog.Logger.Warn().
			Str("kind", string(env.Kind)).
			Str("channel_id", env.Message.ChannelID.String()).
			Str("message_id", env.Message.MessageID.String()).
			Msg("envelope dropped after shutdown")
	}
}
