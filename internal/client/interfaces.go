// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package client

// Client is the lifecycle contract of the veilpost client runtime.
type Client interface {
	// Run starts workers, probes the server, restores any persisted
	// session and hands the terminal to the UI. Blocks until exit.
	Run() error
}
