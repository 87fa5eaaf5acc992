// Package workers provides abstractions for managing and running
// background workers of the vaultctl client.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way, plus the [WipeWatcher] that
// polls an account's remote wipe flag.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Cancellation is a
// normal stop and must return nil.
type Worker interface {
	Run(ctx context.Context) error
}
