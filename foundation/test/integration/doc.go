// File: doc.go
// Title: Foundation Integration Tests
// Description: Integration tests across the foundation packages: errors
//              raised by stringx, inspected through the errors helpers and
//              logged by the structured logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial integration test suite
// - 2026-10-16 v0.2.0: Reduced to the stringx, error and log packages

// Package integration tests the foundation packages together.
//
// Unit tests live next to each package. The tests here cover what only shows
// up at package boundaries:
//
//   - errors returned by stringx carry module, operation, code and details
//     that the errors helpers and the logger read back
//   - wrapping keeps the code visible to HasCode, GetCode and LogError
//   - the stringx functions hold no shared state and can be called from
//     many goroutines
//
// Running:
//
//	go test ./foundation/test/integration/
//	go test -race ./foundation/test/integration/
package integration
