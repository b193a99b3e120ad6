// Package logger provides structured logging using zerolog.
// Request-scoped loggers travel in context.Context so that use cases and the
// provider client can log through zerolog.Ctx with the request's correlation id.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName is attached to every entry as the service field
	ServiceName string `env:"SERVICE_NAME" envDefault:"flight-webhook-adapter"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Level:        "info",
		Format:       "json",
		EnableCaller: false,
		ServiceName:  "flight-webhook-adapter",
	}
}

// Logger wraps zerolog.Logger with the service's field helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a new Logger with custom output writer.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{
		Logger: ctx.Logger(),
	}
}

// WithField returns a child logger carrying one extra string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{
		Logger: l.With().Str(key, value).Logger(),
	}
}

// WithRequestID returns a logger with request ID context.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithField("request_id", requestID)
}

// WithUserRef returns a logger tagged with the chat user reference.
func (l *Logger) WithUserRef(userRef string) *Logger {
	return l.WithField("user_ref", userRef)
}

// WithFlight returns a logger tagged with the requested flight and date.
func (l *Logger) WithFlight(ident, date string) *Logger {
	return &Logger{
		Logger: l.With().Str("flight_ident", ident).Str("departure_date", date).Logger(),
	}
}

// IntoContext stores the logger in ctx for retrieval with zerolog.Ctx or FromContext.
func (l *Logger) IntoContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx. Without one it falls back to
// zerolog.DefaultContextLogger, which Init points at the global logger.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *zerolog.Ctx(ctx)}
}

// Nop returns a disabled logger that produces no output.
func Nop() *Logger {
	return &Logger{
		Logger: zerolog.Nop(),
	}
}

// Global is the process-wide logger, set by Init at startup.
var Global *Logger

// Init initializes the global logger with the given configuration.
func Init(cfg Config) {
	SetGlobal(New(cfg))
}

// SetGlobal sets a custom logger as the global logger and as the fallback
// for contexts that carry no logger.
func SetGlobal(l *Logger) {
	Global = l
	zerolog.DefaultContextLogger = &l.Logger
}

// Info returns an info level event from the global logger.
func Info() *zerolog.Event {
	if Global == nil {
		Init(DefaultConfig())
	}
	return Global.Info()
}

// Error returns an error level event from the global logger.
func Error() *zerolog.Event {
	if Global == nil {
		Init(DefaultConfig())
	}
	return Global.Error()
}

// Debug returns a debug level event from the global logger.
func Debug() *zerolog.Event {
	if Global == nil {
		Init(DefaultConfig())
	}
	return Global.Debug()
}

// Warn returns a warn level event from the global logger.
func Warn() *zerolog.Event {
	if Global == nil {
		Init(DefaultConfig())
	}
	return Global.Warn()
}

// Fatal returns a fatal level event from the global logger.
func Fatal() *zerolog.Event {
	if Global == nil {
		Init(DefaultConfig())
	}
	return Global.Fatal()
}
