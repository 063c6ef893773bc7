// File: timer.go
// Title: Operation Timer
// Description: Measures the duration of an operation and logs it on stop,
//              used by the CLI for batch runs and config loading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-16 v0.2.0: Stop variants share one logging path

package log

import (
	"time"
)

// Timer measures an operation and logs its duration when stopped.
// A Timer is not safe for concurrent use.
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer starts a timer that logs to logger at debug level
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level used when the timer stops successfully
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the final log entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs "<operation> completed" with the duration and returns it.
// Stopping twice logs once and returns 0 the second time.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil, nil)
}

// StopWithError logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelError, t.operation+" failed", err, Fields{"success": false})
}

// StopWithResult logs the outcome with a result value. Failures are logged
// at warn level or above.
func (t *Timer) StopWithResult(success bool, result interface{}) time.Duration {
	level := t.level
	message := t.operation + " completed successfully"
	if !success {
		message = t.operation + " completed with errors"
		if level < LevelWarn {
			level = LevelWarn
		}
	}

	extra := Fields{"success": success}
	if result != nil {
		extra["result"] = result
	}
	return t.finish(level, message, nil, extra)
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning reports whether the timer has not been stopped or cancelled
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(level Level, message string, err error, extra Fields) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(extra)
	fields["operation"] = t.operation
	fields["duration_ms"] = durationMillis(elapsed)
	t.logger.log(level, message, err, fields)
	return elapsed
}
