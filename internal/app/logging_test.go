package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"INFO", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"ERROR", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func fixedLogger(buf *bytes.Buffer, level LogLevel) *Logger {
	logger := NewLogger(LoggerConfig{Level: level, Output: buf, Prefix: "test"})
	logger.now = func() time.Time {
		return time.Date(2026, time.October, 19, 12, 30, 0, 0, time.UTC)
	}
	return logger
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := fixedLogger(&buf, LogLevelDebug)

	logger.Info("frame %d", 3)

	want := "2026-10-19T12:30:00.000 [INFO] test: frame 3\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := fixedLogger(&buf, LogLevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	out := buf.String()
	if strings.Contains(out, "debug") || strings.Contains(out, "info") {
		t.Errorf("messages below warn should be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] test: warn") || !strings.Contains(out, "[ERROR] test: error") {
		t.Errorf("expected warn and error lines, got:\n%s", out)
	}

	if logger.Enabled(LogLevelInfo) {
		t.Error("info should not be enabled at warn level")
	}
	if !logger.Enabled(LogLevelWarn) || !logger.Enabled(LogLevelError) {
		t.Error("warn and error should be enabled at warn level")
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	base := fixedLogger(&buf, LogLevelInfo)
	logger := base.WithComponent("app").WithField("frame", 7)

	logger.Info("drawn")

	if !strings.HasSuffix(buf.String(), "drawn {component=app, frame=7}\n") {
		t.Errorf("expected sorted fields, got %q", buf.String())
	}

	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "{") {
		t.Errorf("fields should not leak to the parent logger, got %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	if NullLogger.Enabled(LogLevelError) {
		t.Error("null logger should not be enabled")
	}
	// Must not panic.
	NullLogger.WithComponent("x").Error("ignored")
}

func TestLoggerFromEnv_Disabled(t *testing.T) {
	logger, closer, err := LoggerFromEnv(func(string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger != NullLogger {
		t.Error("expected the null logger without a log file")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}

func TestLoggerFromEnv_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock.log")
	env := map[string]string{
		EnvLogFile:  path,
		EnvLogLevel: "debug",
	}

	logger, closer, err := LoggerFromEnv(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hello %s", "file")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "[DEBUG] asciiclock: hello file") {
		t.Errorf("unexpected log content %q", data)
	}
}

func TestLoggerFromEnv_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "clock.log")

	_, _, err := LoggerFromEnv(func(k string) string {
		if k == EnvLogFile {
			return path
		}
		return ""
	})

	var opErr *OperationError
	if err == nil || !strings.Contains(err.Error(), "log file") {
		t.Fatalf("expected log file error, got %v", err)
	}
	if !errors.As(err, &opErr) || opErr.Target != path {
		t.Errorf("expected OperationError for %s, got %v", path, err)
	}
}
