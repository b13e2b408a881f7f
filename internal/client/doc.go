// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

// Package client implements the interactive client application runtime.
//
// It wires configuration, local storage, the account server adapter, the
// key-derivation worker, and the terminal UI into a single process
// lifecycle: probe the server, restore any persisted session, run the UI
// until the user leaves.
package client
