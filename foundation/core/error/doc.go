// Package error provides the structured error type used across textkit.
//
// Package: error
// Title: textkit Error Handling
// Description: An Error carries a message, an optional cause, a Code, a
//              Severity, free-form details and the stack of the call site
//              that created it. Codes are stable so callers can branch on
//              them; severities let loggers choose a level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Code set reduced for the text utilities
//
// Usage:
//
//	import mdwerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := mdwerror.New("maxWidth below minimum").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithDetail("max_width", 2)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// reject the request
//	}
package error
