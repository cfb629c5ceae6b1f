// Package server runs the HTTP API and the gRPC health endpoint side by side.
//
// Each configured address becomes a transport. All transports are served in
// one errgroup; the first failure or a SIGTERM, SIGINT or SIGQUIT stops every
// transport within the configured shutdown timeout.
package server
