// Package errors provides the module-level error constructors used by
// textkit packages.
//
// Package: errors
// Title: Standard Module Errors for textkit
// Description: Builds *mdwerror.Error values tagged with the module and
//              operation that produced them, so that callers and loggers can
//              tell an abbreviation failure from a config failure without
//              parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-16 v0.2.0: Reduced to the stringx, pipeline and config modules
//
// Usage:
//
//	err := errors.InvalidArgument(errors.ModuleStringx, "abbreviate",
//		"maxWidth 2 is below the minimum 4")
//
//	if errors.IsInvalidArgument(err) {
//		fmt.Println(errors.ExtractOperation(err)) // abbreviate
//	}
package errors
