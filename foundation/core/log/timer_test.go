// File: timer_test.go
// Title: Timer Tests
// Description: Tests for operation timing and the log entries it produces.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with timer tests
// - 2026-10-16 v0.2.0: Shared stop path

package log

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestTimerStop(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithLevel(LevelDebug)

	timer := logger.StartTimer("batch").WithField("inputs", 3)
	time.Sleep(2 * time.Millisecond)

	elapsed := timer.Stop()
	if elapsed < 2*time.Millisecond {
		t.Errorf("Stop() = %v, want >= 2ms", elapsed)
	}
	if timer.IsRunning() {
		t.Error("timer still running after Stop()")
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["message"] != "batch completed" || e["level"] != "debug" || e["operation"] != "batch" ||
		e["inputs"] != float64(3) {
		t.Errorf("entry = %v", e)
	}
	if ms, ok := e["duration_ms"].(float64); !ok || ms <= 0 {
		t.Errorf("duration_ms = %v", e["duration_ms"])
	}
}

func TestTimerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf)

	logger.StartTimer("load").StopWithError(errors.New("missing"))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["message"] != "load failed" || entries[0]["level"] != "error" ||
		entries[0]["error"] != "missing" || entries[0]["success"] != false {
		t.Errorf("entry = %v", entries[0])
	}
}

func TestTimerStopWithResult(t *testing.T) {
	tests := []struct {
		name        string
		success     bool
		wantMessage string
		wantLevel   string
	}{
		{"success", true, "run completed successfully", "info"},
		{"failure raises level", false, "run completed with errors", "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New().WithOutput(&buf)

			logger.StartTimer("run").WithLevel(LevelInfo).StopWithResult(tt.success, 7)

			entries := decodeLines(t, &buf)
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			e := entries[0]
			if e["message"] != tt.wantMessage || e["level"] != tt.wantLevel || e["result"] != float64(7) {
				t.Errorf("entry = %v", e)
			}
		})
	}
}

func TestTimerCancel(t *testing.T) {
	var buf bytes.Buffer
	timer := New().WithOutput(&buf).WithLevel(LevelTrace).StartTimer("noop")

	timer.Cancel()
	if timer.Stop() != 0 {
		t.Error("Stop() after Cancel() should return 0")
	}
	if buf.Len() != 0 {
		t.Errorf("cancelled timer logged: %s", buf.String())
	}
}

func TestTimerWithoutLogger(t *testing.T) {
	timer := NewTimer(nil, "bare")
	if timer.Stop() < 0 {
		t.Error("Stop() without logger returned negative duration")
	}
}
