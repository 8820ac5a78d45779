package diag

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.DurationFieldInteger = false
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.MessageFieldName = "msg"
	zerolog.LevelFieldName = "lvl"
	zerolog.TimestampFieldName = "tm"
}

func ChildLoggerForSource(logger zerolog.Logger, src string) zerolog.Logger {
	return logger.With().Str(SOURCE_LOG_FIELD_NAME, src).Logger()
}

// NewLogger creates a logger writing to w, the output is human readable if console is true.
func NewLogger(w io.Writer, level zerolog.Level, console bool, color bool) zerolog.Logger {
	if console {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !color,
			TimeFormat: time.TimeOnly,
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
