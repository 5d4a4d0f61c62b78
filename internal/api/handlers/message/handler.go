package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/channel-gateway/internal/api/dto"
	"github.com/aliskhannn/channel-gateway/internal/api/respond"
	"github.com/aliskhannn/channel-gateway/internal/model"
	messagerepo "github.com/aliskhannn/channel-gateway/internal/repository/message"
	msgsvc "github.com/aliskhannn/channel-gateway/internal/service/message"
)

const (
	defaultLimit = 20
	maxLimit     = 500
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/message/mock_handler.go -package=mocks

type messageService interface {
	Enqueue(ctx context.Context, msg model.Message) error
	Reprocess(ctx context.Context, channelID, messageID model.ID) error
	Delete(ctx context.Context, channelID, messageID model.ID) error
	Get(ctx context.Context, channelID, messageID model.ID) (model.Message, error)
	LastN(ctx context.Context, channelID model.ID, limit int) ([]model.Message, error)
	ActiveChannels(ctx context.Context) ([]model.Channel, error)
	Stats(ctx context.Context) (msgsvc.Stats, error)
}

type Handler struct {
	service   messageService
	validator *validator.Validate
}

func NewHandler(s messageService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Ingest validates a normalized record and queues it for the workers.
func (h *Handler) Ingest(c *ginext.Context) {
	var req dto.IngestRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if _, err := req.ChannelID.Int64(); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid channel id"))
		return
	}

	if err := h.service.Enqueue(c.Request.Context(), req.ToModel()); err != nil {
		zlog.Logger.Error().Err(err).
			Str("channel_id", req.ChannelID.String()).
			Str("message_id", req.MessageID.String()).
			Msg("failed to enqueue message")
		respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("failed to enqueue message"))
		return
	}

	respond.Accepted(c.Writer, dto.KeyResponse{ChannelID: req.ChannelID, MessageID: req.MessageID})
}

func (h *Handler) Get(c *ginext.Context) {
	channelID, messageID, ok := parseKey(c)
	if !ok {
		return
	}

	msg, err := h.service.Get(c.Request.Context(), channelID, messageID)
	if err != nil {
		h.fail(c, err, "failed to get message")
		return
	}

	respond.OK(c.Writer, msg)
}

// Recent lists the newest messages of a channel.
func (h *Handler) Recent(c *ginext.Context) {
	channelID, ok := parseChannel(c)
	if !ok {
		return
	}

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = min(n, maxLimit)
	}

	messages, err := h.service.LastN(c.Request.Context(), channelID, limit)
	if err != nil {
		if errors.Is(err, messagerepo.ErrNoMessagesFound) {
			respond.OK(c.Writer, []model.Message{})
			return
		}

		h.fail(c, err, "failed to get recent messages")
		return
	}

	respond.OK(c.Writer, messages)
}

func (h *Handler) Reprocess(c *ginext.Context) {
	channelID, messageID, ok := parseKey(c)
	if !ok {
		return
	}

	if err := h.service.Reprocess(c.Request.Context(), channelID, messageID); err != nil {
		h.fail(c, err, "failed to reprocess message")
		return
	}

	respond.Accepted(c.Writer, dto.KeyResponse{ChannelID: channelID, MessageID: messageID})
}

func (h *Handler) Delete(c *ginext.Context) {
	channelID, messageID, ok := parseKey(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), channelID, messageID); err != nil {
		h.fail(c, err, "failed to delete message")
		return
	}

	respond.OK(c.Writer, "message deleted")
}

func (h *Handler) Channels(c *ginext.Context) {
	channels, err := h.service.ActiveChannels(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to list channels")
		return
	}

	if channels == nil {
		channels = []model.Channel{}
	}

	respond.OK(c.Writer, channels)
}

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to get stats")
		return
	}

	respond.OK(c.Writer, stats)
}

func (h *Handler) Health(c *ginext.Context) {
	respond.OK(c.Writer, "ok")
}

// fail maps service errors to HTTP statuses.
func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, messagerepo.ErrMessageNotFound):
		zlog.Logger.Warn().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("message not found"))
	case errors.Is(err, messagerepo.ErrInvalidTransition):
		zlog.Logger.Warn().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("invalid status transition"))
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func parseChannel(c *ginext.Context) (model.ID, bool) {
	channelID := model.ID(c.Param("channel"))
	if _, err := channelID.Int64(); err != nil {
		zlog.Logger.Warn().Str("channel", c.Param("channel")).Msg("invalid channel id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid channel id"))
		return "", false
	}

	return channelID, true
}

func parseKey(c *ginext.Context) (model.ID, model.ID, bool) {
	channelID, ok := parseChannel(c)
	if !ok {
		return "", "", false
	}

	messageID := model.ID(c.Param("id"))
	if messageID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing message id"))
		return "", "", false
	}

	return channelID, messageID, true
}
