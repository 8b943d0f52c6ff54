// Package server runs the flight board transports: the chi HTTP API and,
// when SERVER_GRPC_ADDRESS is set, the gRPC health endpoint.
//
// Both transports stop together on SIGINT, SIGTERM or SIGQUIT, or as soon as
// one of them exits on its own.
package server
