// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes account identifier derivation, path-segment checks, HTTP JSON
// response writing, HTTP client initialization and trace-id generation.
package utils
