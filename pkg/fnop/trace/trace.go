// Package trace writes the human-readable "key = value" lines the example
// programs print. Lines go through zerolog; the console form prints the
// message only so the output reads like plain text.
package trace

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const separatorWidth = 50

type Tracer struct {
	log zerolog.Logger
}

type config struct {
	out  io.Writer
	json bool
}

type Option func(*config)

// WithWriter sends lines to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithJSON emits structured JSON events with a timestamp.
func WithJSON() Option {
	return func(c *config) { c.json = true }
}

func New(opts ...Option) *Tracer {
	c := config{out: os.Stdout}
	for _, opt := range opts {
		opt(&c)
	}

	if c.json {
		return &Tracer{log: zerolog.New(c.out).With().Timestamp().Logger()}
	}

	console := zerolog.ConsoleWriter{
		Out:        c.out,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
	}
	return &Tracer{log: zerolog.New(console)}
}

// Line writes "key = value".
func (t *Tracer) Line(key string, value any) {
	t.log.Log().Msgf("%s = %v", key, value)
}

func (t *Tracer) Text(msg string) {
	t.log.Log().Msg(msg)
}

func (t *Tracer) Separator() {
	t.Text(strings.Repeat("-", separatorWidth))
}

// Logger exposes the underlying logger for diagnostics.
func (t *Tracer) Logger() *zerolog.Logger {
	return &t.log
}

// Each writes one line per value, all under key.
func Each[T any](t *Tracer, key string, values []T) {
	for _, v := range values {
		t.Line(key, v)
	}
}
