// Package http implements the HTTP transport layer of the flight board.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as bearer authentication, request tracing,
// access logging, CORS and response compression are handled in this package
// before requests are delegated to the service layer. Every error response
// has the shape {"message": "..."}.
package http
