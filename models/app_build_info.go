// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package models

// BuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags during CI/CD, shown in version output
// and returned by the server's version endpoint so clients can check
// compatibility before logging in.
type BuildInfo struct {
	// Version is the semantic version string of the build.
	Version string `json:"version"`

	// Date is the build timestamp string.
	Date string `json:"date"`

	// Commit is the source-control commit hash used for the build.
	Commit string `json:"commit"`
}

// NewBuildInfo constructs [BuildInfo], substituting "N/A" for any value
// the build did not inject.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
