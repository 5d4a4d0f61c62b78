package channel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/channel-gateway/internal/model"
)

// Repository provides read access to the channels registry.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new channel repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// HasActive reports whether at least one channel is active.
func (r *Repository) HasActive(ctx context.Context) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM channels WHERE is_active = TRUE);
    `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check active channels: %w", err)
	}

	return exists, nil
}

// IsActive reports whether the channel exists and is active.
func (r *Repository) IsActive(ctx context.Context, channelID int64) (bool, error) {
	query := `
		SELECT is_active
		FROM channels
		WHERE channel_id = $1;
    `

	var active bool
	err := r.db.QueryRowContext(ctx, query, channelID).Scan(&active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get channel %d: %w", channelID, err)
	}

	return active, nil
}

// ListActive returns all active channels ordered by id.
func (r *Repository) ListActive(ctx context.Context) ([]model.Channel, error) {
	query := `
		SELECT channel_id, is_active, title, last_sync_at
		FROM channels
		WHERE is_active = TRUE
		ORDER BY channel_id;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active channels: %w", err)
	}
	defer rows.Close()

	var channels []model.Channel
	for rows.Next() {
		var c model.Channel
		if err := rows.Scan(&c.ChannelID, &c.IsActive, &c.Title, &c.LastSyncAt); err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}

		channels = append(channels, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate channels: %w", err)
	}

	return channels, nil
}
