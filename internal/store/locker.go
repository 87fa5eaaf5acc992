package store

import "github.com/im7mortal/kmutex"

// accountLocker serializes work on a single account.
type accountLocker interface {
	Lock(key interface{})
	Unlock(key interface{})
}

// newAccountLocker returns a per-key mutex when enabled, and a locker that
// never blocks otherwise.
func newAccountLocker(enabled bool) accountLocker {
	if enabled {
		return kmutex.New()
	}

	return noopLocker{}
}

type noopLocker struct{}

func (noopLocker) Lock(interface{})   {}
func (noopLocker) Unlock(interface{}) {}
