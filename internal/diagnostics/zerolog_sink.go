package diagnostics

import (
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/go-strftime"
	"github.com/rs/zerolog"
)

// ZerologSink reports events through a structured rs/zerolog logger. A
// ConsoleWriter with colorized output is used when stderr is a
// terminal; otherwise events are written as plain JSON lines for log
// aggregators. Events below minLevel are dropped before they reach the
// logger.
type ZerologSink struct {
	logger   zerolog.Logger
	minLevel Level
}

// NewZerologSink builds a ZerologSink tagged with app, mirroring how
// danmuck-edgectl's InitLogger wires a named zerolog.Logger for the
// whole process. Events below minLevel are not reported.
func NewZerologSink(app string, minLevel Level) *ZerologSink {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: colorable.NewColorableStderr(), TimeFormat: time.RFC3339}).
			With().Timestamp().Str("app", app).Logger()
		return &ZerologSink{logger: logger, minLevel: minLevel}
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("app", app).Logger()
	return &ZerologSink{logger: logger, minLevel: minLevel}
}

// Report implements Sink.
func (z *ZerologSink) Report(event Event) {
	if event.Level < z.minLevel {
		return
	}

	var ev *zerolog.Event
	switch event.Level {
	case LevelError:
		ev = z.logger.Error()
	case LevelWarn:
		ev = z.logger.Warn()
	default:
		ev = z.logger.Info()
	}

	// zerolog's own Timestamp() field is machine-sortable; this extra
	// string field is for tooling that only greps plain text.
	ev = ev.Str("human_time", strftime.Format("%Y-%m-%d %H:%M:%S", time.Now()))
	for k, v := range event.Fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(event.Message)
}
