package message

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/channel-gateway/internal/model"
)

// DefaultDuplicateWindow bounds the insert-time duplicate check.
const DefaultDuplicateWindow = time.Hour

var (
	ErrMessageNotFound    = errors.New("message not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrChannelNotAllowed  = errors.New("channel not allowed")
	ErrNoMessagesFound    = errors.New("no messages found")
	errUnknownStatusValue = errors.New("unknown status")
)

//go:generate mockgen -source=repo.go -destination=../../mocks/repository/message/mock_repo.go -package=mocks

type permissionGate interface {
	IsAllowed(ctx context.Context, channelID model.ID) bool
}

// Repository is the durable, status-tagged record of every permitted message.
type Repository struct {
	db     *dbpg.DB
	gate   permissionGate
	window time.Duration
	now    func() time.Time
}

// NewRepository creates a new message repository. Every insert consults gate.
func NewRepository(db *dbpg.DB, gate permissionGate, window time.Duration) *Repository {
	if window <= 0 {
		window = DefaultDuplicateWindow
	}

	return &Repository{db: db, gate: gate, window: window, now: time.Now}
}

const selectColumns = `
		id, channel_id, message_id, chat_id, thread_id, source, message_type, text, caption,
		media_type, media_refs, status, metadata, received_at, telegram_date,
		published_at, failed_at, queued_at, reprocess_requested_at, reprocessed_at, deleted_at,
		created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(s scanner) (model.Message, error) {
	var (
		m                  model.Message
		chatID, threadID   sql.NullString
		text, caption      sql.NullString
		mediaRefs, metaRaw []byte
		channelID, msgID   string
		source, status     string
	)

	err := s.Scan(
		&m.ID, &channelID, &msgID, &chatID, &threadID, &source, &m.MessageType, &text, &caption,
		&m.MediaType, &mediaRefs, &status, &metaRaw, &m.ReceivedAt, &m.TelegramDate,
		&m.PublishedAt, &m.FailedAt, &m.QueuedAt, &m.ReprocessRequestedAt, &m.ReprocessedAt, &m.DeletedAt,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return model.Message{}, err
	}

	m.ChannelID = model.ID(channelID)
	m.MessageID = model.ID(msgID)
	m.Source = model.Source(source)
	m.Status = model.Status(status)
	if !m.Status.Valid() {
		return model.Message{}, fmt.Errorf("%w: %q", errUnknownStatusValue, status)
	}

	if chatID.Valid {
		id := model.ID(chatID.String)
		m.ChatID = &id
	}

	if threadID.Valid {
		id := model.ID(threadID.String)
		m.ThreadID = &id
	}

	if text.Valid {
		m.Text = &text.String
	}

	if caption.Valid {
		m.Caption = &caption.String
	}

	m.MediaRefs = []json.RawMessage{}
	if len(mediaRefs) > 0 {
		if err := json.Unmarshal(mediaRefs, &m.MediaRefs); err != nil {
			return model.Message{}, fmt.Errorf("unmarshal media refs: %w", err)
		}
	}

	m.Metadata = map[string]any{}
	if len(metaRaw) > 0 {
		if err := json.Unmarshal(metaRaw, &m.Metadata); err != nil {
			return model.Message{}, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}

	return m, nil
}

// Insert stores msg with status received unless a row with the same key was
// created within the duplicate window, in which case that row is returned and
// inserted is false. Messages from disallowed channels are not stored.
func (r *Repository) Insert(ctx context.Context, msg model.Message) (model.Message, bool, error) {
	if r.gate != nil && !r.gate.IsAllowed(ctx, msg.ChannelID) {
		zlog.Logger.Debug().
			Str("channel_id", msg.ChannelID.String()).
			Str("message_id", msg.MessageID.String()).
			Msg("channel not allowed, dropping message")
		return model.Message{}, false, ErrChannelNotAllowed
	}

	existing, err := r.findSince(ctx, msg.ChannelID, msg.MessageID, r.now().Add(-r.window))
	if err == nil {
		return existing, false, nil
	}

	if !errors.Is(err, ErrMessageNotFound) {
		return model.Message{}, false, err
	}

	msg.Status = model.StatusReceived

	stored, err := r.insert(ctx, msg)
	if err != nil {
		return model.Message{}, false, err
	}

	return stored, true, nil
}

func (r *Repository) findSince(ctx context.Context, channelID, messageID model.ID, since time.Time) (model.Message, error) {
	query := `
		SELECT` + selectColumns + `
		FROM messages
		WHERE channel_id = $1 AND message_id = $2 AND created_at >= $3
		ORDER BY created_at DESC
		LIMIT 1;
    `

	m, err := scanMessage(r.db.QueryRowContext(ctx, query, channelID.String(), messageID.String(), since))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Message{}, ErrMessageNotFound
		}

		return model.Message{}, fmt.Errorf("failed to look up recent message: %w", err)
	}

	return m, nil
}

func (r *Repository) insert(ctx context.Context, msg model.Message) (model.Message, error) {
	query := `
		INSERT INTO messages (
		    channel_id, message_id, chat_id, thread_id, source, message_type, text, caption,
		    media_type, media_refs, status, metadata, received_at, telegram_date,
		    published_at, failed_at, queued_at, reprocess_requested_at, reprocessed_at, deleted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11, $12::jsonb, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, created_at, updated_at;
    `

	if msg.MediaRefs == nil {
		msg.MediaRefs = []json.RawMessage{}
	}

	if msg.Metadata == nil {
		msg.Metadata = map[string]any{}
	}

	mediaRefs, err := json.Marshal(msg.MediaRefs)
	if err != nil {
		return model.Message{}, fmt.Errorf("marshal media refs: %w", err)
	}

	metadata, err := json.Marshal(msg.Metadata)
	if err != nil {
		return model.Message{}, fmt.Errorf("marshal metadata: %w", err)
	}

	err = r.db.QueryRowContext(
		ctx, query,
		msg.ChannelID.String(), msg.MessageID.String(), nullableID(msg.ChatID), nullableID(msg.ThreadID),
		string(msg.Source), msg.MessageType, msg.Text, msg.Caption,
		msg.MediaType, string(mediaRefs), string(msg.Status), string(metadata), msg.ReceivedAt, msg.TelegramDate,
		msg.PublishedAt, msg.FailedAt, msg.QueuedAt, msg.ReprocessRequestedAt, msg.ReprocessedAt, msg.DeletedAt,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}

	return msg, nil
}

// UpdateStatus moves the message identified by msg's key to status and merges
// fields under metadata[section]. When no row exists at all the message is
// re-inserted with status as its initial state. A row in a state from which
// status cannot be entered yields ErrInvalidTransition.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	msg model.Message,
	status model.Status,
	section string,
	fields map[string]any,
) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", errUnknownStatusValue, status)
	}

	now := r.now()

	fragment := []byte("{}")
	if len(fields) > 0 {
		var err error
		if fragment, err = json.Marshal(fields); err != nil {
			return fmt.Errorf("marshal metadata fragment: %w", err)
		}
	}

	from := make([]string, 0, len(model.AllowedFrom(status)))
	for _, s := range model.AllowedFrom(status) {
		from = append(from, string(s))
	}

	res, err := r.db.ExecContext(
		ctx, updateStatusQuery(status),
		string(status), section, string(fragment), now,
		msg.ChannelID.String(), msg.MessageID.String(), pq.Array(from),
	)
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows > 0 {
		return nil
	}

	current, err := r.currentStatus(ctx, msg.ChannelID, msg.MessageID)
	if errors.Is(err, ErrMessageNotFound) {
		zlog.Logger.Info().
			Str("channel_id", msg.ChannelID.String()).
			Str("message_id", msg.MessageID.String()).
			Str("status", string(status)).
			Msg("message missing from store, re-inserting")

		return r.reinsert(ctx, msg, status, section, fields, now)
	}

	if err != nil {
		return err
	}

	if current == status {
		return nil
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, status)
}

func updateStatusQuery(status model.Status) string {
	stamp := ""
	if col := status.TimestampColumn(); col != "" {
		stamp = col + " = $4,\n\t\t    "
	}

	return `
		UPDATE messages
		SET status = $1,
		    metadata = CASE WHEN $2 = '' THEN metadata
		        ELSE jsonb_set(metadata, ARRAY[$2::text], COALESCE(metadata -> $2::text, '{}'::jsonb) || $3::jsonb, true)
		    END,
		    ` + stamp + `updated_at = $4
		WHERE channel_id = $5 AND message_id = $6 AND status = ANY($7);
    `
}

func (r *Repository) currentStatus(ctx context.Context, channelID, messageID model.ID) (model.Status, error) {
	query := `
		SELECT status
		FROM messages
		WHERE channel_id = $1 AND message_id = $2
		ORDER BY created_at DESC
		LIMIT 1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, channelID.String(), messageID.String()).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrMessageNotFound
		}

		return "", fmt.Errorf("failed to get message status: %w", err)
	}

	return model.Status(status), nil
}

func (r *Repository) reinsert(
	ctx context.Context,
	msg model.Message,
	status model.Status,
	section string,
	fields map[string]any,
	now time.Time,
) error {
	if r.gate != nil && !r.gate.IsAllowed(ctx, msg.ChannelID) {
		zlog.Logger.Debug().
			Str("channel_id", msg.ChannelID.String()).
			Str("message_id", msg.MessageID.String()).
			Msg("channel not allowed, skipping re-insert")
		return ErrChannelNotAllowed
	}

	msg.Status = status
	msg.Metadata = mergeSection(msg.Metadata, section, fields)

	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = now
	}

	switch status {
	case model.StatusPublished:
		msg.PublishedAt = &now
	case model.StatusFailed:
		msg.FailedAt = &now
	case model.StatusQueued:
		msg.QueuedAt = &now
	case model.StatusReprocessPending:
		msg.ReprocessRequestedAt = &now
	case model.StatusReprocessed:
		msg.ReprocessedAt = &now
	case model.StatusDeleted:
		msg.DeletedAt = &now
	}

	_, err := r.insert(ctx, msg)
	return err
}

// Get returns the most recent row for the key.
func (r *Repository) Get(ctx context.Context, channelID, messageID model.ID) (model.Message, error) {
	query := `
		SELECT` + selectColumns + `
		FROM messages
		WHERE channel_id = $1 AND message_id = $2
		ORDER BY created_at DESC
		LIMIT 1;
    `

	m, err := scanMessage(r.db.QueryRowContext(ctx, query, channelID.String(), messageID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Message{}, ErrMessageNotFound
		}

		return model.Message{}, fmt.Errorf("failed to get message: %w", err)
	}

	return m, nil
}

// LastN returns the newest limit messages of a channel by platform date.
func (r *Repository) LastN(ctx context.Context, channelID model.ID, limit int) ([]model.Message, error) {
	query := `
		SELECT` + selectColumns + `
		FROM messages
		WHERE channel_id = $1
		ORDER BY telegram_date DESC NULLS LAST, created_at DESC
		LIMIT $2;
    `

	rows, err := r.db.QueryContext(ctx, query, channelID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get last messages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}

		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	if len(messages) == 0 {
		return nil, ErrNoMessagesFound
	}

	return messages, nil
}

// CountByStatus returns the number of rows per status.
func (r *Repository) CountByStatus(ctx context.Context) (map[model.Status]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM messages
		GROUP BY status;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.Status]int64, len(model.Statuses))
	for _, s := range model.Statuses {
		counts[s] = 0
	}

	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}

		counts[model.Status(status)] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate counts: %w", err)
	}

	return counts, nil
}

func nullableID(id *model.ID) any {
	if id == nil {
		return nil
	}

	return id.String()
}

// mergeSection returns a copy of meta with fields merged into meta[section].
func mergeSection(meta map[string]any, section string, fields map[string]any) map[string]any {
	out := make(map[string]any, len(meta)+1)
	for k, v := range meta {
		out[k] = v
	}

	if section == "" || len(fields) == 0 {
		return out
	}

	merged := map[string]any{}
	if existing, ok := out[section].(map[string]any); ok {
		for k, v := range existing {
			merged[k] = v
		}
	}

	for k, v := range fields {
		merged[k] = v
	}

	out[section] = merged

	return out
}
