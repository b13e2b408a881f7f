// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

// Package tui implements the interactive terminal client.
//
// The package is a set of Bubble Tea models, one per screen, routed by
// [RootModel]: a welcome menu, the registration and login forms, the
// authenticated account screen, and one-time-password enrollment. Screens
// talk to the service layer only; no crypto and no transport details live
// here.
//
// Long-running flows (registration, login) execute on their own goroutine
// and stream step updates back into the program as messages, so the UI can
// show which stage a memory-hard derivation is sitting on.
package tui
