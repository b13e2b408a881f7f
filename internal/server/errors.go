// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package server

import "errors"

// errNoAddressConfigured is returned by NewServer when the configuration
// carries no HTTP listen address, leaving nothing to serve on. This is a
// fatal misconfiguration and fails startup.
var errNoAddressConfigured = errors.New("no HTTP address configured")
