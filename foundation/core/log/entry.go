// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry produced for every message and the
//              Fields helpers used to attach structured context.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured log entries
// - 2026-10-16 v0.2.0: Request and user metadata removed

package log

import (
	"time"
)

// Entry represents a single log entry
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
	Duration  time.Duration
	Caller    *CallerInfo
}

// CallerInfo contains information about the code location that logged
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields represents structured key-value pairs attached to an entry
type Fields map[string]interface{}

// Field creates a Fields value with a single pair
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates a Fields value holding an error under "error"
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration creates a Fields value holding a duration
func Duration(key string, duration time.Duration) Fields {
	return Fields{key: duration}
}

// Int creates a Fields value holding an int
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a Fields value holding a string
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Bool creates a Fields value holding a bool
func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

// Merge returns a new Fields with the pairs of f and other; other wins on
// conflicts.
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Clone returns a copy of f, or nil for nil
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}

// NewEntry creates a new log entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithField adds a field to the entry
func (e *Entry) WithField(key string, value interface{}) *Entry {
	if e.Fields == nil {
		e.Fields = make(Fields)
	}
	e.Fields[key] = value
	return e
}

// WithFields adds several fields to the entry
func (e *Entry) WithFields(fields Fields) *Entry {
	if e.Fields == nil {
		e.Fields = make(Fields)
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// WithError attaches an error to the entry
func (e *Entry) WithError(err error) *Entry {
	e.Error = err
	return e
}

// WithDuration attaches a duration to the entry
func (e *Entry) WithDuration(duration time.Duration) *Entry {
	e.Duration = duration
	return e
}

// WithCaller attaches caller information to the entry
func (e *Entry) WithCaller(function, file string, line int) *Entry {
	e.Caller = &CallerInfo{
		Function: function,
		File:     file,
		Line:     line,
	}
	return e
}
