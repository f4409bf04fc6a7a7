// Package orderlock provides per-order mutual exclusion for the orchestration
// pipeline. Operations on different orders may run in parallel, but a
// poll-triggered reconciliation and a user-triggered send on the same order
// must never interleave.
package orderlock

import "sync"

// KeyedMutex serializes operations per key while allowing different keys to
// proceed concurrently. Locks are created lazily on first use and kept for the
// lifetime of the process; order cardinality is bounded by the active order
// set, so no eviction is needed.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu     sync.Mutex
	inUse  bool
	parent *KeyedMutex
	key    string
}

// NewKeyedMutex creates an empty keyed mutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: map[string]*entry{}}
}

func (k *KeyedMutex) get(key string) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.locks[key]
	if !ok {
		e = &entry{parent: k, key: key}
		k.locks[key] = e
	}
	return e
}

// Acquire blocks until the lock for key is held and returns the release
// function. The caller must invoke the release exactly once.
func (k *KeyedMutex) Acquire(key string) func() {
	e := k.get(key)
	e.mu.Lock()
	e.markInUse(true)
	return func() {
		e.markInUse(false)
		e.mu.Unlock()
	}
}

// TryAcquire attempts to take the lock for key without blocking. It returns
// the release function and true on success, or nil and false when the order is
// already mid-operation. Used by the reminder scanner as a short-lived
// in-flight marker so it never double-fires against an order whose
// notification flow is already open.
func (k *KeyedMutex) TryAcquire(key string) (func(), bool) {
	e := k.get(key)
	if !e.mu.TryLock() {
		return nil, false
	}
	e.markInUse(true)
	return func() {
		e.markInUse(false)
		e.mu.Unlock()
	}, true
}

// InFlight reports whether an operation currently holds the lock for key.
func (k *KeyedMutex) InFlight(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.locks[key]
	return ok && e.inUse
}

func (e *entry) markInUse(v bool) {
	e.parent.mu.Lock()
	e.inUse = v
	e.parent.mu.Unlock()
}
