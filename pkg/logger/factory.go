package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
	// FormatText writes logfmt-style lines for local runs.
	FormatText Format = "text"
)

// Environment names recognised by WithEnvironment.
const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
)

// Option configures logger creation.
type Option func(*config)

// WithLevel sets a fixed minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) {
		c.level = nil
		c.fixed = l
	}
}

// WithLevelVar makes the minimum level follow v, so it can be raised or
// lowered after the logger is built (for example by a debug toggle).
func WithLevelVar(v *slog.LevelVar) Option {
	return func(c *config) {
		if v != nil {
			c.level = v
		}
	}
}

// WithFormat sets output format. Unknown formats panic: a misconfigured logger
// must stop startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) { c.format = FormatText }
}

func WithJSONFormatter() Option {
	return func(c *config) { c.format = FormatJSON }
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors registers functions that add attributes taken from
// the record's context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue logs ctx.Value(key) under name whenever it is set.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithEnvironment applies per-environment defaults: debug level and text
// output for development, info level and JSON elsewhere. The service and
// environment names are attached to every record.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		switch strings.ToLower(env) {
		case Production, "prod":
			env = Production
			c.format = FormatJSON
			c.setLevel(slog.LevelInfo)
		case Staging, "stage":
			env = Staging
			c.format = FormatJSON
			c.setLevel(slog.LevelInfo)
		default:
			env = Development
			c.format = FormatText
			c.setLevel(slog.LevelDebug)
		}
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
		c.attrs = append(c.attrs, slog.String("env", env))
	}
}

// ParseLevel accepts debug, info, warn and error in any case; anything else
// yields info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// SetAsDefault installs l as the process-wide slog logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	// level, when set, wins over fixed.
	level      *slog.LevelVar
	fixed      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// setLevel updates whichever level source is active.
func (c *config) setLevel(l slog.Level) {
	if c.level != nil {
		c.level.Set(l)
		return
	}
	c.fixed = l
}

func (c *config) leveler() slog.Leveler {
	if c.level != nil {
		return c.level
	}
	return c.fixed
}

// New creates a logger. Defaults: JSON to stdout at info level.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		fixed:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.leveler()}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	return slog.New(newContextHandler(handler, cfg.extractors))
}

// Discard returns a logger that drops every record. Handy as a default for
// optional logger dependencies.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
