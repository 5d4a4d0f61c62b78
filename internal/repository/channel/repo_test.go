package channel

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestHasActive(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM channels WHERE is_active = TRUE);`)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HasActive(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WillReturnError(errors.New("connection refused"))

	_, err = repo.HasActive(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsActive(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT is_active`)).
		WithArgs(int64(-100123)).
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))

	ok, err := repo.IsActive(context.Background(), -100123)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT is_active`)).
		WithArgs(int64(-100999)).
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}))

	ok, err = repo.IsActive(context.Background(), -100999)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActive(t *testing.T) {
	repo, mock := setupMockDB(t)

	synced := time.Now()
	rows := sqlmock.NewRows([]string{"channel_id", "is_active", "title", "last_sync_at"}).
		AddRow(int64(-100123), true, "signals", synced).
		AddRow(int64(-100456), true, "news", nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT channel_id, is_active, title, last_sync_at`)).
		WillReturnRows(rows)

	list, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(-100123), list[0].ChannelID)
	assert.NotNil(t, list[0].LastSyncAt)
	assert.Nil(t, list[1].LastSyncAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
