package scheduler

import (
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/zlog"
)

// logger routes gocron's key/value logging into zerolog.
type logger struct{}

func newLogger() gocron.Logger {
	return logger{}
}

func (logger) Debug(msg string, args ...any) { emit(zlog.Logger.Debug(), msg, args) }
func (logger) Info(msg string, args ...any)  { emit(zlog.Logger.Info(), msg, args) }
func (logger) Warn(msg string, args ...any)  { emit(zlog.Logger.Warn(), msg, args) }
func (logger) Error(msg string, args ...any) { emit(zlog.Logger.Error(), msg, args) }

func emit(e *zerolog.Event, msg string, args []any) {
	e = e.Str("component", "scheduler")

	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			e = e.Interface("extra", args[i])
			break
		}

		key := fmt.Sprint(args[i])
		if err, ok := args[i+1].(error); ok {
			e = e.AnErr(key, err)
			continue
		}

		e = e.Interface(key, args[i+1])
	}

	e.Msg(msg)
}
