// Package server wires and runs the cipher HTTP server.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown on SIGINT, SIGTERM or SIGQUIT.
package server
