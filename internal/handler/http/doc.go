// Package http contains the HTTP transport layer of the Veilpost dev server.
//
// The package exposes a single [Handler] type that binds the service layer to
// a chi router. Handlers stay thin: they decode request payloads, delegate to
// services and translate service errors into JSON error bodies with the
// status codes the Veilpost client expects. All cryptographic verification
// happens below the transport, in the service layer.
package http
