// Package server runs the dev server's HTTP transport.
//
// It owns the process lifecycle: startup, POSIX signal handling, and
// graceful shutdown of in-flight requests.
package server
