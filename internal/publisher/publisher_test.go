package publisher

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/channel-gateway/internal/failqueue"
	mocks "github.com/aliskhannn/channel-gateway/internal/mocks/publisher"
	"github.com/aliskhannn/channel-gateway/internal/model"
)

func okServer(t *testing.T, hits *int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "secret", r.Header.Get(TokenHeader))
		assert.Equal(t, http.MethodPost, r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"channelId":"-100123"`)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func failingServer(t *testing.T, hits *int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testMessage() model.Message {
	text := "BUY X"
	return model.Message{
		ChannelID: "-100123",
		MessageID: "555",
		Text:      &text,
		Status:    model.StatusReceived,
		Metadata:  map[string]any{},
	}
}

func noSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestBackoffDelay(t *testing.T) {
	for k, want := range []time.Duration{5 * time.Second, 10 * time.Second, 20 * time.Second, 40 * time.Second} {
		assert.Equal(t, want, BackoffDelay(5*time.Second, 2, k))
	}
}

func TestPublish_FirstEndpointSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockrecorder(ctrl)
	queue := mocks.NewMockoverflowQueue(ctrl)

	var hits int32
	srv := okServer(t, &hits)

	rec.EXPECT().
		Record(gomock.Any(), gomock.Any(), model.StatusPublished, "publish", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Message, _ model.Status, _ string, fields map[string]any) error {
			assert.Equal(t, srv.URL, fields["endpoint"])
			assert.Equal(t, 0, fields["attempt"])
			assert.Contains(t, fields, "latencyMs")
			return nil
		})

	p := New(Config{Endpoints: []string{srv.URL}, Token: "secret"}, rec, queue, nil)

	res, err := p.Publish(context.Background(), testMessage())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.Queued)
	assert.Equal(t, srv.URL, res.Endpoint)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestPublish_FailsOverToSecondEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockrecorder(ctrl)
	queue := mocks.NewMockoverflowQueue(ctrl)

	var badHits, goodHits int32
	bad := failingServer(t, &badHits)
	good := okServer(t, &goodHits)

	gomock.InOrder(
		rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusRetrying, "publish", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ model.Message, _ model.Status, _ string, fields map[string]any) error {
				assert.Equal(t, bad.URL, fields["endpoint"])
				assert.Contains(t, fields["lastError"], "502")
				return nil
			}),
		rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusPublished, "publish", gomock.Any()).Return(nil),
	)

	var delays []time.Duration
	p := New(Config{Endpoints: []string{bad.URL, good.URL}, Token: "secret"}, rec, queue, nil)
	p.sleep = noSleep(&delays)

	res, err := p.Publish(context.Background(), testMessage())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, good.URL, res.Endpoint)
	assert.Empty(t, delays)
}

func TestPublish_ExhaustionQueuesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockrecorder(ctrl)
	alert := mocks.NewMockAlerter(ctrl)

	var hitsA, hitsB int32
	a := failingServer(t, &hitsA)
	b := failingServer(t, &hitsB)

	queue := failqueue.New(filepath.Join(t.TempDir(), "failed.ndjson"))

	rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusRetrying, "publish", gomock.Any()).Return(nil).Times(8)
	gomock.InOrder(
		rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusFailed, "publish", gomock.Any()).Return(nil),
		rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusQueued, "queue", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ model.Message, _ model.Status, _ string, fields map[string]any) error {
				assert.Contains(t, fields["lastError"], "502")
				return nil
			}),
	)
	alert.EXPECT().Alert(gomock.Any(), gomock.Any()).Return(nil)

	var delays []time.Duration
	p := New(Config{
		Endpoints:  []string{a.URL, b.URL},
		Token:      "secret",
		BaseDelay:  5 * time.Second,
		MaxRetries: 3,
		Backoff:    2,
	}, rec, queue, alert)
	p.sleep = noSleep(&delays)

	res, err := p.Publish(context.Background(), testMessage())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.True(t, res.Queued)
	assert.Equal(t, 4, res.Attempts)

	assert.Equal(t, int32(4), atomic.LoadInt32(&hitsA))
	assert.Equal(t, int32(4), atomic.LoadInt32(&hitsB))
	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second, 20 * time.Second}, delays)
	assert.Equal(t, 1, queue.Size())
}

func TestPublish_NonJSONBodyIsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockrecorder(ctrl)
	queue := mocks.NewMockoverflowQueue(ctrl)

	plain := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer plain.Close()

	rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusRetrying, "publish", gomock.Any()).Return(nil)
	rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusFailed, "publish", gomock.Any()).Return(nil)
	rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusQueued, "queue", gomock.Any()).Return(nil)
	queue.EXPECT().Append(gomock.Any()).Do(func(msg model.Message) {
		assert.Equal(t, model.StatusFailed, msg.Status)
	})
	queue.EXPECT().Path().Return("failed.ndjson")

	p := New(Config{Endpoints: []string{plain.URL}, MaxRetries: 0}, rec, queue, nil)

	res, err := p.Publish(context.Background(), testMessage())
	require.NoError(t, err)
	assert.True(t, res.Queued)
	assert.Equal(t, 1, res.Attempts)
}

func TestPublish_RequestTimeoutCountsAsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockrecorder(ctrl)
	queue := mocks.NewMockoverflowQueue(ctrl)

	var slowHits, okHits int32
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&slowHits, 1)
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer slow.Close()
	good := okServer(t, &okHits)

	rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusRetrying, "publish", gomock.Any()).Return(nil)
	rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusPublished, "publish", gomock.Any()).Return(nil)

	p := New(Config{Endpoints: []string{slow.URL, good.URL}, Token: "secret", RequestTimeout: 50 * time.Millisecond}, rec, queue, nil)

	res, err := p.Publish(context.Background(), testMessage())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, good.URL, res.Endpoint)
}

func TestPublish_ReprocessEndsInReprocessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockrecorder(ctrl)
	queue := mocks.NewMockoverflowQueue(ctrl)

	var hits int32
	srv := okServer(t, &hits)

	rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusReprocessed, "publish", gomock.Any()).Return(nil)

	msg := testMessage()
	msg.Status = model.StatusReprocessPending

	p := New(Config{Endpoints: []string{srv.URL}, Token: "secret"}, rec, queue, nil)

	res, err := p.Publish(context.Background(), msg)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestPublish_RecorderErrorDoesNotFailDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockrecorder(ctrl)
	queue := mocks.NewMockoverflowQueue(ctrl)

	var hits int32
	srv := okServer(t, &hits)

	rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusPublished, "publish", gomock.Any()).
		Return(errors.New("db down"))

	p := New(Config{Endpoints: []string{srv.URL}, Token: "secret"}, rec, queue, nil)

	res, err := p.Publish(context.Background(), testMessage())
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestPublish_CancelledDuringBackoffQueuesMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockrecorder(ctrl)

	var hits int32
	srv := failingServer(t, &hits)

	queue := failqueue.New(filepath.Join(t.TempDir(), "failed.ndjson"))

	var recorded []model.Status
	rec.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ model.Message, status model.Status, _ string, _ map[string]any) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recorded = append(recorded, status)
			return nil
		}).
		Times(3)

	ctx, cancel := context.WithCancel(context.Background())
	p := New(Config{Endpoints: []string{srv.URL}, MaxRetries: 3}, rec, queue, nil)
	p.sleep = func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	res, err := p.Publish(ctx, testMessage())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.True(t, res.Queued)
	assert.Equal(t, 1, res.Attempts)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, []model.Status{model.StatusRetrying, model.StatusFailed, model.StatusQueued}, recorded)
	assert.Equal(t, 1, queue.Size())
	assert.True(t, model.CanTransition(model.StatusQueued, model.StatusReprocessPending))
}

func TestPublish_CancelledBeforeStartStillDelivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockrecorder(ctrl)
	queue := mocks.NewMockoverflowQueue(ctrl)

	var hits int32
	srv := okServer(t, &hits)

	rec.EXPECT().Record(gomock.Any(), gomock.Any(), model.StatusPublished, "publish", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ model.Message, _ model.Status, _ string, _ map[string]any) error {
			return ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(Config{Endpoints: []string{srv.URL}, Token: "secret"}, rec, queue, nil)

	res, err := p.Publish(ctx, testMessage())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestPublish_NoEndpoints(t *testing.T) {
	p := New(Config{}, nil, nil, nil)

	_, err := p.Publish(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrNoEndpoints)
}
