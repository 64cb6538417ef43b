package logsvc

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/trezcool/edcentre/core"
	"github.com/trezcool/edcentre/core/person"
)

// ZeroLogger writes one structured line per event.
type ZeroLogger struct {
	zl zerolog.Logger
}

var _ core.Logger = (*ZeroLogger)(nil)

// NewZeroLogger logs to `w` from `level` up; an unknown level falls back to warn.
func NewZeroLogger(w io.Writer, level string) *ZeroLogger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	return &ZeroLogger{zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

// NewNopLogger discards everything.
func NewNopLogger() *ZeroLogger {
	return &ZeroLogger{zl: zerolog.Nop()}
}

// expected fmt: msg | error, map[string]interface{}, person.Record
func (l ZeroLogger) write(evt *zerolog.Event, msg string, args []interface{}) {
	for i, arg := range args {
		switch a := arg.(type) {
		case error:
			evt = evt.Err(a)
		case map[string]interface{}:
			evt = evt.Fields(a)
		case person.Record:
			evt = evt.Str("record_id", a.Base().ID.String()).
				Str("role", a.Role().String()).
				Str("name", a.Base().Name)
		default:
			evt = evt.Interface(fmt.Sprintf("arg%d", i), a)
		}
	}
	evt.Msg(msg)
}

func (l ZeroLogger) Debug(msg string, args ...interface{}) { l.write(l.zl.Debug(), msg, args) }

func (l ZeroLogger) Info(msg string, args ...interface{}) { l.write(l.zl.Info(), msg, args) }

func (l ZeroLogger) Warn(msg string, args ...interface{}) { l.write(l.zl.Warn(), msg, args) }

func (l ZeroLogger) Error(msg string, args ...interface{}) { l.write(l.zl.Error(), msg, args) }

func (l ZeroLogger) Fatal(msg string, args ...interface{}) { l.write(l.zl.Fatal(), msg, args) }
