package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer, level string) *Logger {
	return NewWithOutput(Config{
		Level:       level,
		Format:      "json",
		ServiceName: "test-service",
	}, buf)
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newJSONLogger(&buf, "info")
	log.Info().Msg("test message")

	result := decodeEntry(t, &buf)
	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "test-service"}, &buf)
	log.Info().Msg("test message")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "INF")
}

func TestNewLogger_LogLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", "debug", true},
		{"debug NOT logged at info level", "info", "debug", false},
		{"warn logged at info level", "info", "warn", true},
		{"info NOT logged at warn level", "warn", "info", false},
		{"error logged at error level", "error", "error", true},
		{"warn NOT logged at error level", "error", "warn", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newJSONLogger(&buf, tt.configLevel)

			switch tt.logLevel {
			case "debug":
				log.Debug().Msg("test")
			case "info":
				log.Info().Msg("test")
			case "warn":
				log.Warn().Msg("test")
			case "error":
				log.Error().Msg("test")
			}

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String(), "expected log output")
			} else {
				assert.Empty(t, buf.String(), "expected no log output")
			}
		})
	}
}

func TestNewLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	for _, level := range []string{"invalid", ""} {
		var buf bytes.Buffer
		log := newJSONLogger(&buf, level)

		log.Debug().Msg("hidden")
		assert.Empty(t, buf.String())

		log.Info().Msg("shown")
		assert.NotEmpty(t, buf.String())
	}
}

func TestNewLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test", EnableCaller: true}, &buf)
	log.Info().Msg("test")

	result := decodeEntry(t, &buf)
	require.Contains(t, result, "caller")
	assert.Contains(t, result["caller"].(string), "logger_test.go")
}

func TestLogger_FieldHelpers(t *testing.T) {
	tests := []struct {
		name   string
		derive func(*Logger) *Logger
		want   map[string]string
	}{
		{
			name:   "custom field",
			derive: func(l *Logger) *Logger { return l.WithField("custom_field", "custom_value") },
			want:   map[string]string{"custom_field": "custom_value"},
		},
		{
			name:   "request id",
			derive: func(l *Logger) *Logger { return l.WithRequestID("req-123") },
			want:   map[string]string{"request_id": "req-123"},
		},
		{
			name:   "user reference",
			derive: func(l *Logger) *Logger { return l.WithUserRef("user-42") },
			want:   map[string]string{"user_ref": "user-42"},
		},
		{
			name:   "flight",
			derive: func(l *Logger) *Logger { return l.WithFlight("AK6322", "2025-10-22") },
			want:   map[string]string{"flight_ident": "AK6322", "departure_date": "2025-10-22"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.derive(newJSONLogger(&buf, "info")).Info().Msg("test")

			result := decodeEntry(t, &buf)
			for k, v := range tt.want {
				assert.Equal(t, v, result[k], k)
			}
		})
	}
}

func TestLogger_IntoContext(t *testing.T) {
	var buf bytes.Buffer
	log := newJSONLogger(&buf, "info").WithRequestID("req-ctx")

	ctx := log.IntoContext(context.Background())
	zerolog.Ctx(ctx).Info().Msg("through zerolog")

	result := decodeEntry(t, &buf)
	assert.Equal(t, "req-ctx", result["request_id"])
	assert.Equal(t, "through zerolog", result["message"])

	buf.Reset()
	FromContext(ctx).Warn().Msg("through helper")

	result = decodeEntry(t, &buf)
	assert.Equal(t, "req-ctx", result["request_id"])
	assert.Equal(t, "warn", result["level"])
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.EnableCaller)
	assert.Equal(t, "flight-webhook-adapter", cfg.ServiceName)
}

func TestGlobalLogger(t *testing.T) {
	prevDefault := zerolog.DefaultContextLogger
	t.Cleanup(func() {
		Global = nil
		zerolog.DefaultContextLogger = prevDefault
	})

	var buf bytes.Buffer
	SetGlobal(NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "global-test"}, &buf))

	Info().Msg("global info")
	assert.Contains(t, buf.String(), "global info")
	assert.Contains(t, buf.String(), "global-test")

	// contexts without a logger fall back to the global one
	buf.Reset()
	FromContext(context.Background()).Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")
}

func TestGlobalLoggerAutoInit(t *testing.T) {
	prevDefault := zerolog.DefaultContextLogger
	t.Cleanup(func() {
		Global = nil
		zerolog.DefaultContextLogger = prevDefault
	})
	Global = nil

	Debug().Msg("auto-init test")

	assert.NotNil(t, Global)
}
