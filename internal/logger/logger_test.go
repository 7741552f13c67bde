package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_CustomWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: "json",
		Writer: &buf,
	})
	logger.Info("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantJSON    bool
	}{
		{"production uses json", "production", true},
		{"development uses pretty", "development", false},
		{"staging uses pretty", "staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:       slog.LevelInfo,
				Environment: tt.environment,
				Writer:      &buf,
			})
			logger.Info("test")

			if tt.wantJSON {
				assert.Contains(t, buf.String(), `"msg":"test"`)
			} else {
				assert.Contains(t, buf.String(), colorBold+"test"+colorReset)
			}
		})
	}
}

func TestNew_Service(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "json", Writer: &buf, Service: "askyourcrush-api"})
	logger.Info("started")

	assert.Contains(t, buf.String(), `"service":"askyourcrush-api"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // defaults to info
		{"", slog.LevelInfo},        // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		checkLevel   slog.Level
		wantEnabled  bool
	}{
		{"debug handler allows debug", slog.LevelDebug, slog.LevelDebug, true},
		{"info handler blocks debug", slog.LevelInfo, slog.LevelDebug, false},
		{"info handler allows error", slog.LevelInfo, slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: tt.handlerLevel})
			assert.Equal(t, tt.wantEnabled, handler.Enabled(context.Background(), tt.checkLevel))
		})
	}
}

func newPlainLogger(buf *bytes.Buffer) *slog.Logger {
	h := NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	h.noColor = true
	return slog.New(h)
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	newPlainLogger(&buf).Info("invite created", "slug", "aB3dE5gH7j", "attempts", 1)

	output := buf.String()
	assert.Contains(t, output, "INF invite created slug=aB3dE5gH7j attempts=1\n")
	assert.NotContains(t, output, "\033[")
}

func TestPrettyHandler_LevelFormatting(t *testing.T) {
	tests := []struct {
		level      slog.Level
		wantString string
	}{
		{slog.LevelDebug, "DBG"},
		{slog.LevelInfo, "INF"},
		{slog.LevelWarn, "WRN"},
		{slog.LevelError, "ERR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantString, func(t *testing.T) {
			var buf bytes.Buffer
			newPlainLogger(&buf).Log(context.Background(), tt.level, "test")
			assert.Contains(t, buf.String(), " "+tt.wantString+" test")
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := newPlainLogger(&buf).With("component", "notify", "version", 1)
	logger.Info("sent")

	assert.Contains(t, buf.String(), "sent component=notify version=1")
}

func TestPrettyHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	base := newPlainLogger(&buf)

	base.WithGroup("request").With("method", "POST").Info("handled", "status", 200)
	assert.Contains(t, buf.String(), "handled request.method=POST request.status=200")

	buf.Reset()
	base.Info("handled", slog.Group("http", slog.String("path", "/health"), slog.Int("status", 200)))
	assert.Contains(t, buf.String(), "http.path=/health http.status=200")

	// Empty group returns the same handler.
	h := NewPrettyHandler(&buf, nil)
	assert.Same(t, h, h.WithGroup(""))
}

func TestPrettyHandler_ErrorHighlighted(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.New(h).Warn("notification failed", "error", "boom")

	assert.Contains(t, buf.String(), colorRed+"error=boom"+colorReset)
}

func TestPrettyHandler_WithSource(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	})
	slog.New(handler).Info("test message")

	assert.Contains(t, buf.String(), "logger_test.go:")
}

func TestFormatValue(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		value slog.Value
		want  string
	}{
		{"string", slog.StringValue("test"), "test"},
		{"string with spaces", slog.StringValue("They said yes"), `"They said yes"`},
		{"empty string", slog.StringValue(""), `""`},
		{"time", slog.TimeValue(now), now.Format(time.RFC3339)},
		{"duration", slog.DurationValue(5 * time.Second), "5s"},
		{"int", slog.IntValue(42), "42"},
		{"bool", slog.BoolValue(true), "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.value))
		})
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	logger.WithError(errors.New("test error")).Info("something happened")

	assert.Contains(t, buf.String(), `"error":"test error"`)
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	logger.WithField("slug", "aB3dE5gH7j").Info("invite viewed")

	assert.Contains(t, buf.String(), `"slug":"aB3dE5gH7j"`)
	assert.Contains(t, buf.String(), "invite viewed")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotNil(t, logger.Logger)
	logger.Error("dropped")
}
