// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the API and metrics HTTP listeners, including
// startup, signal handling, and graceful shutdown of all enabled listeners.
package server
