// Package failqueue is the append-only overflow file for messages that
// exhausted every delivery attempt.
//
// Each line is the message record plus a failedAt timestamp. Writes are
// best-effort: the durable store already carries the terminal status, so a
// failed append is logged and dropped.
package failqueue

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/channel-gateway/internal/model"
)

// DefaultPath is used when no path is configured.
const DefaultPath = "data/failed-messages.ndjson"

// Record is a single queue line.
type Record struct {
	model.Message
	FailedAt time.Time `json:"failedAt"`
}

// Queue appends failed messages to a newline-delimited JSON file.
type Queue struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// New creates a queue writing to path.
func New(path string) *Queue {
	if path == "" {
		path = DefaultPath
	}

	return &Queue{path: path, now: time.Now}
}

// Path returns the file the queue writes to.
func (q *Queue) Path() string {
	return q.path
}

// Append writes msg as one line. Errors are logged, never returned.
func (q *Queue) Append(msg model.Message) {
	if err := q.append(msg); err != nil {
		zlog.Logger.Error().Err(err).
			Str("channel_id", msg.ChannelID.String()).
			Str("message_id", msg.MessageID.String()).
			Str("path", q.path).
			Msg("failed to append to failure queue")
	}
}

func (q *Queue) append(msg model.Message) error {
	line, err := json.Marshal(Record{Message: msg, FailedAt: q.now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	line = append(line, '\n')

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(q.path), 0o755); err != nil {
		return fmt.Errorf("create queue directory: %w", err)
	}

	f, err := os.OpenFile(q.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open queue file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("write queue record: %w", err)
	}

	return nil
}

// Size returns the number of records in the queue. A missing file counts as
// empty; any other read error is logged and also reported as zero.
func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	f, err := os.Open(q.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			zlog.Logger.Warn().Err(err).Str("path", q.path).Msg("failed to read failure queue")
		}
		return 0
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if len(bytes.TrimSpace(sc.Bytes())) > 0 {
			n++
		}
	}

	if err := sc.Err(); err != nil {
		zlog.Logger.Warn().Err(err).Str("path", q.path).Msg("failed to read failure queue")
		return 0
	}

	return n
}
