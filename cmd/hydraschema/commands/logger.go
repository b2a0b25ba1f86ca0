package commands

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/erraggy/hydraschema/builder"
)

// ZerologAdapter implements builder.Logger on top of a zerolog.Logger.
// Attributes are passed as alternating key/value pairs.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a builder.Logger that writes through logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger returns a human-readable logger writing to w. Only warnings and
// errors are written unless verbose is set.
func NewLogger(w io.Writer, verbose bool) *ZerologAdapter {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return NewZerologAdapter(zerolog.New(output).Level(level).With().Timestamp().Logger())
}

func (l *ZerologAdapter) Debug(msg string, attrs ...any) {
	l.logger.Debug().Fields(attrs).Msg(msg)
}

func (l *ZerologAdapter) Info(msg string, attrs ...any) {
	l.logger.Info().Fields(attrs).Msg(msg)
}

func (l *ZerologAdapter) Warn(msg string, attrs ...any) {
	l.logger.Warn().Fields(attrs).Msg(msg)
}

func (l *ZerologAdapter) Error(msg string, attrs ...any) {
	l.logger.Error().Fields(attrs).Msg(msg)
}

func (l *ZerologAdapter) With(attrs ...any) builder.Logger {
	return &ZerologAdapter{logger: l.logger.With().Fields(attrs).Logger()}
}
