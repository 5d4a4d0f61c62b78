package message

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	mocks "github.com/aliskhannn/channel-gateway/internal/mocks/repository/message"
	"github.com/aliskhannn/channel-gateway/internal/model"
)

var messageColumns = []string{
	"id", "channel_id", "message_id", "chat_id", "thread_id", "source", "message_type", "text", "caption",
	"media_type", "media_refs", "status", "metadata", "received_at", "telegram_date",
	"published_at", "failed_at", "queued_at", "reprocess_requested_at", "reprocessed_at", "deleted_at",
	"created_at", "updated_at",
}

var fixedNow = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock, *mocks.MockpermissionGate) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctrl := gomock.NewController(t)
	gate := mocks.NewMockpermissionGate(ctrl)

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB, gate, time.Hour)
	repo.now = func() time.Time { return fixedNow }

	return repo, mock, gate
}

func messageRow(id uuid.UUID, status model.Status, metadata string) []driver.Value {
	return []driver.Value{
		id.String(), int64(-100123), "555", nil, nil, "bot", "text", "BUY X", nil,
		"", []byte(`[]`), string(status), []byte(metadata), fixedNow.Add(-time.Minute), nil,
		nil, nil, nil, nil, nil, nil,
		fixedNow.Add(-time.Minute), fixedNow.Add(-time.Minute),
	}
}

func newMessage() model.Message {
	text := "BUY X"
	return model.Message{
		ChannelID:  "-100123",
		MessageID:  "555",
		Source:     model.SourceBot,
		Text:       &text,
		ReceivedAt: fixedNow,
		Metadata:   map[string]any{},
	}
}

func TestInsert_NewMessage(t *testing.T) {
	repo, mock, gate := setupMockDB(t)
	msg := newMessage()
	id := uuid.New()

	gate.EXPECT().IsAllowed(gomock.Any(), msg.ChannelID).Return(true)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE channel_id = $1 AND message_id = $2 AND created_at >= $3`)).
		WithArgs("-100123", "555", fixedNow.Add(-time.Hour)).
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO messages (`)).
		WithArgs(
			"-100123", "555", nil, nil, "bot", "", sqlmock.AnyArg(), nil,
			"", "[]", "received", "{}", fixedNow, nil,
			nil, nil, nil, nil, nil, nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), fixedNow, fixedNow))

	stored, inserted, err := repo.Insert(context.Background(), msg)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, model.StatusReceived, stored.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_DuplicateWithinWindow(t *testing.T) {
	repo, mock, gate := setupMockDB(t)
	msg := newMessage()
	id := uuid.New()

	gate.EXPECT().IsAllowed(gomock.Any(), msg.ChannelID).Return(true)

	mock.ExpectQuery(regexp.QuoteMeta(`AND created_at >= $3`)).
		WithArgs("-100123", "555", fixedNow.Add(-time.Hour)).
		WillReturnRows(sqlmock.NewRows(messageColumns).AddRow(messageRow(id, model.StatusPublished, `{}`)...))

	stored, inserted, err := repo.Insert(context.Background(), msg)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, model.StatusPublished, stored.Status)
	assert.Equal(t, model.ID("-100123"), stored.ChannelID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_ChannelNotAllowed(t *testing.T) {
	repo, mock, gate := setupMockDB(t)
	msg := newMessage()

	gate.EXPECT().IsAllowed(gomock.Any(), msg.ChannelID).Return(false)

	_, inserted, err := repo.Insert(context.Background(), msg)
	assert.ErrorIs(t, err, ErrChannelNotAllowed)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_StoreErrorPropagates(t *testing.T) {
	repo, mock, gate := setupMockDB(t)
	msg := newMessage()

	gate.EXPECT().IsAllowed(gomock.Any(), msg.ChannelID).Return(true)

	mock.ExpectQuery(regexp.QuoteMeta(`AND created_at >= $3`)).
		WillReturnError(errors.New("connection reset"))

	_, _, err := repo.Insert(context.Background(), msg)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMessageNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Published(t *testing.T) {
	repo, mock, _ := setupMockDB(t)
	msg := newMessage()

	mock.ExpectExec(regexp.QuoteMeta(`published_at = $4,`)).
		WithArgs("published", "publish", sqlmock.AnyArg(), fixedNow, "-100123", "555", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), msg, model.StatusPublished, "publish",
		map[string]any{"endpoint": "http://a", "attempt": 0})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_RetryingHasNoTimestamp(t *testing.T) {
	repo, mock, _ := setupMockDB(t)
	msg := newMessage()

	mock.ExpectExec(`SET status = \$1,\s+metadata = CASE[\s\S]+END,\s+updated_at = \$4`).
		WithArgs("retrying", "publish", `{"lastError":"boom"}`, fixedNow, "-100123", "555", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), msg, model.StatusRetrying, "publish",
		map[string]any{"lastError": "boom"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ReinsertsWhenMissing(t *testing.T) {
	repo, mock, gate := setupMockDB(t)
	msg := newMessage()

	gate.EXPECT().IsAllowed(gomock.Any(), model.ID("-100123")).Return(true)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE messages`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status`)).
		WithArgs("-100123", "555").
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO messages (`)).
		WithArgs(
			"-100123", "555", nil, nil, "bot", "", sqlmock.AnyArg(), nil,
			"", "[]", "published", `{"publish":{"endpoint":"http://a"}}`, fixedNow, nil,
			fixedNow, nil, nil, nil, nil, nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(uuid.New().String(), fixedNow, fixedNow))

	err := repo.UpdateStatus(context.Background(), msg, model.StatusPublished, "publish",
		map[string]any{"endpoint": "http://a"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ReinsertChecksGate(t *testing.T) {
	repo, mock, gate := setupMockDB(t)
	msg := newMessage()

	gate.EXPECT().IsAllowed(gomock.Any(), model.ID("-100123")).Return(false)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE messages`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status`)).
		WithArgs("-100123", "555").
		WillReturnError(sql.ErrNoRows)

	err := repo.UpdateStatus(context.Background(), msg, model.StatusPublished, "publish",
		map[string]any{"endpoint": "http://a"})
	assert.ErrorIs(t, err, ErrChannelNotAllowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_RejectsRegression(t *testing.T) {
	repo, mock, _ := setupMockDB(t)
	msg := newMessage()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE messages`)).
		WithArgs("retrying", "publish", sqlmock.AnyArg(), fixedNow, "-100123", "555", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status`)).
		WithArgs("-100123", "555").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("published"))

	err := repo.UpdateStatus(context.Background(), msg, model.StatusRetrying, "publish",
		map[string]any{"lastError": "late failure"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_SameStatusIsIdempotent(t *testing.T) {
	repo, mock, _ := setupMockDB(t)
	msg := newMessage()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE messages`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status`)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("published"))

	err := repo.UpdateStatus(context.Background(), msg, model.StatusPublished, "", nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock, _ := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE channel_id = $1 AND message_id = $2 ORDER BY created_at DESC`)).
		WithArgs("-100123", "555").
		WillReturnRows(sqlmock.NewRows(messageColumns).
			AddRow(messageRow(id, model.StatusQueued, `{"queue":{"lastError":"boom"}}`)...))

	m, err := repo.Get(context.Background(), "-100123", "555")
	require.NoError(t, err)
	assert.Equal(t, model.StatusQueued, m.Status)
	assert.Equal(t, "BUY X", *m.Text)
	assert.Nil(t, m.Caption)
	assert.Equal(t, map[string]any{"lastError": "boom"}, m.Metadata["queue"])

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
		WithArgs("-100123", "556").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.Get(context.Background(), "-100123", "556")
	assert.ErrorIs(t, err, ErrMessageNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLastN(t *testing.T) {
	repo, mock, _ := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY telegram_date DESC NULLS LAST, created_at DESC`)).
		WithArgs("-100123", 2).
		WillReturnRows(sqlmock.NewRows(messageColumns).
			AddRow(messageRow(uuid.New(), model.StatusPublished, `{}`)...).
			AddRow(messageRow(uuid.New(), model.StatusReceived, `{}`)...))

	list, err := repo.LastN(context.Background(), "-100123", 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY telegram_date DESC NULLS LAST`)).
		WithArgs("-100999", 2).
		WillReturnRows(sqlmock.NewRows(messageColumns))

	_, err = repo.LastN(context.Background(), "-100999", 2)
	assert.ErrorIs(t, err, ErrNoMessagesFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	repo, mock, _ := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY status`)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("received", int64(3)).
			AddRow("published", int64(10)))

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[model.StatusReceived])
	assert.Equal(t, int64(10), counts[model.StatusPublished])
	assert.Equal(t, int64(0), counts[model.StatusFailed])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMergeSection(t *testing.T) {
	meta := map[string]any{
		"origin":  "bot",
		"publish": map[string]any{"lastError": "timeout", "attempt": 1},
	}

	out := mergeSection(meta, "publish", map[string]any{"endpoint": "http://a", "attempt": 2})

	assert.Equal(t, "bot", out["origin"])
	assert.Equal(t, map[string]any{"lastError": "timeout", "attempt": 2, "endpoint": "http://a"}, out["publish"])
	assert.Equal(t, map[string]any{"lastError": "timeout", "attempt": 1}, meta["publish"])
}
