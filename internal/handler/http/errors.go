// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package http

import "errors"

var (
	// errNoAuthHeader is returned when a protected route is called without
	// an Authorization header.
	errNoAuthHeader = errors.New("authorization header is not specified")

	// errBadAuthHeader is returned when the Authorization header is present
	// but not in "Bearer <token>" form.
	errBadAuthHeader = errors.New("authorization header has wrong format")
)
