// ============================================================================
// textkit - Code point safe string tooling
// ============================================================================
//
// Package:     version
// Description: Central version management for all textkit components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for all textkit components
const (
	// Release version of the module
	Platform = "0.3.0"

	// Component versions
	Stringx  = "0.3.0"
	CLI      = "0.2.0"
	Pipeline = "0.1.0"
)

// Commit is set at build time with -ldflags "-X .../version.Commit=<sha>"
var Commit = "dev"

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "stringx":
		return Stringx
	case "cli", "textkit":
		return CLI
	case "pipeline":
		return Pipeline
	default:
		return Platform
	}
}

// Components lists the component names known to ComponentVersion
func Components() []string {
	return []string{"stringx", "cli", "pipeline"}
}

// String returns the one-line version banner printed by the CLI
func String() string {
	return fmt.Sprintf("textkit %s (stringx %s, pipeline %s, commit %s)", CLI, Stringx, Pipeline, Commit)
}
