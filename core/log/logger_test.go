// File: logger_test.go
// Title: Logger Tests
// Description: Tests for leveled filtering, clone-on-With derivation,
//              failure-aware logging and per-call write atomicity.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial test coverage for the logger

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/msto63/fault/core/failure"
)

// syncBuffer guards a bytes.Buffer so tests can write from multiple goroutines
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger(buf *bytes.Buffer) *Logger {
	return NewWithConfig(Config{
		Level:  LevelTrace,
		Format: FormatJSON,
		Output: buf,
	})
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatJSON, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("messages below warn were written: %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("warn message was not written")
	}
}

func TestWithFieldDerivation(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf)
	derived := base.WithField("service", "fetcher")

	// The derived logger carries the field; the base does not
	derived.Info("derived message")
	base.Info("base message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"service":"fetcher"`) {
		t.Errorf("derived entry missing field: %s", lines[0])
	}
	if strings.Contains(lines[1], "fetcher") {
		t.Errorf("base entry leaked the derived field: %s", lines[1])
	}
}

func TestLogFailureKnownKind(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.LogFailure(failure.NewValidation("email is required",
		failure.WithFieldErrors(map[string]string{"email": "required"})))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if data["level"] != "warn" {
		t.Errorf("level = %v, want warn for a recognized kind", data["level"])
	}
	if data["failure_kind"] != "Validation" {
		t.Errorf("failure_kind = %v, want Validation", data["failure_kind"])
	}
	if data["failure_code"] != "VALIDATION_ERROR" {
		t.Errorf("failure_code = %v, want VALIDATION_ERROR", data["failure_code"])
	}
	if !strings.Contains(data["message"].(string), "email is required") {
		t.Errorf("message = %v, want the failure rendering", data["message"])
	}
	if _, ok := data["stack_trace"]; !ok {
		t.Error("stack_trace missing for a failure with a captured trace")
	}
}

func TestLogFailureUnknownError(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.LogFailure(errUnknown{})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if data["level"] != "error" {
		t.Errorf("level = %v, want error for a non-taxonomy value", data["level"])
	}
}

type errUnknown struct{}

func (errUnknown) Error() string { return "something weird" }

func TestLogFailureNil(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)
	logger.LogFailure(nil)
	if buf.Len() != 0 {
		t.Errorf("LogFailure(nil) wrote output: %q", buf.String())
	}
}

func TestConcurrentWritesAreAtomic(t *testing.T) {
	buf := &syncBuffer{}
	logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatText, Output: buf})

	const goroutines = 16
	const perGoroutine = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			derived := logger.WithField("goroutine", id)
			for i := 0; i < perGoroutine; i++ {
				derived.Info("concurrent entry")
			}
		}(g)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != goroutines*perGoroutine {
		t.Fatalf("got %d lines, want %d", len(lines), goroutines*perGoroutine)
	}
	for _, line := range lines {
		if !strings.Contains(line, "concurrent entry") {
			t.Fatalf("interleaved or corrupted line: %q", line)
		}
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatText, Output: &buf}).
		WithName("test")

	logger.Info("hello", Field("count", 3))

	out := buf.String()
	if !strings.Contains(out, "[INF]") {
		t.Errorf("text output missing level marker: %q", out)
	}
	if !strings.Contains(out, "test: hello") {
		t.Errorf("text output missing logger name and message: %q", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Errorf("text output missing field: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("text output does not end with newline")
	}
}
