package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Zerolog adapts a zerolog.Logger to the Logger interface.
type Zerolog struct {
	logger zerolog.Logger
}

// New builds a JSON logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) *Zerolog {
	l := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Zerolog{logger: l}
}

// NewConsole builds a human-readable logger on stderr at the given level.
func NewConsole(level zerolog.Level) *Zerolog {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// ParseLevel maps a level name to a zerolog level, defaulting to info for
// unknown or empty names.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (z *Zerolog) Debug(component, message string, fields map[string]interface{}) {
	event := z.logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *Zerolog) Info(component, message string, fields map[string]interface{}) {
	event := z.logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *Zerolog) Warning(component, message string, fields map[string]interface{}) {
	event := z.logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *Zerolog) Error(component, message string, err error, fields map[string]interface{}) {
	event := z.logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}
