// Package http implements the REST transport of the expense tracker.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as panic recovery, request tracing, access logging, metrics,
// CORS, response compression and session-token authentication are handled in
// this package before requests are delegated to the service layer.
package http
