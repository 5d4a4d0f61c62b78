package message

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/channel-gateway/internal/model"
	"github.com/aliskhannn/channel-gateway/internal/publisher"
	"github.com/aliskhannn/channel-gateway/internal/rabbitmq/queue"
	msgsvc "github.com/aliskhannn/channel-gateway/internal/service/message"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/message/mock_handler.go -package=mocks

type messageService interface {
	Process(ctx context.Context, msg model.Message) (publisher.Result, error)
	Redeliver(ctx context.Context, channelID, messageID model.ID) (publisher.Result, error)
}

// Handler runs consumed envelopes through the pipeline.
type Handler struct {
	service  messageService
	validate *validator.Validate
}

func NewHandler(svc messageService, v *validator.Validate) *Handler {
	return &Handler{service: svc, validate: v}
}

// HandleMessage processes one envelope. Every outcome is logged; nothing is
// returned because the delivery has already been taken off the queue.
func (h *Handler) HandleMessage(ctx context.Context, env queue.Envelope) {
	msg := env.Message
	log := zlog.Logger.With().
		Str("kind", string(env.Kind)).
		Str("channel_id", msg.ChannelID.String()).
		Str("message_id", msg.MessageID.String()).
		Logger()

	if err := h.validate.Struct(msg); err != nil {
		log.Warn().Err(err).Msg("invalid message record, dropping")
		return
	}

	var (
		res publisher.Result
		err error
	)

	switch env.Kind {
	case queue.KindReprocess:
		res, err = h.service.Redeliver(ctx, msg.ChannelID, msg.MessageID)
	default:
		res, err = h.service.Process(ctx, msg)
	}

	switch {
	case err == nil && res.Queued:
		log.Warn().Int("attempts", res.Attempts).Msg("message queued after exhausting retries")
	case err == nil:
		log.Debug().Bool("success", res.Success).Str("endpoint", res.Endpoint).Msg("message handled")
	case msgsvc.IsRejected(err):
		log.Debug().Err(err).Msg("message dropped")
	default:
		log.Error().Err(err).Msg("failed to handle message")
	}
}
