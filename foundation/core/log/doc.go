// Package log provides structured logging for textkit commands.
//
// Package: log
// Title: textkit Structured Logging
// Description: Leveled structured logging with contextual fields, JSON,
//              text, console and logfmt output, and integration with the
//              textkit error type so that errors log at a level matching
//              their severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Trimmed to what the textkit binary needs
//
// Loggers write to stderr by default. Commands print their results on
// stdout, so log output never mixes with data that may be piped on.
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatText,
//		Name:   "batch",
//	})
//	logger.Info("job loaded", log.Int("inputs", 12))
//
//	timer := logger.StartTimer("batch")
//	// ...
//	timer.Stop()
//
//	if err != nil {
//		logger.LogError(err) // invalid arguments log at info, config errors at error
//	}
//
// The library packages under foundation/utils never log; only commands and
// the pipeline do.
package log
