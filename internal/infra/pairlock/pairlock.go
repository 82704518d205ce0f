// Package pairlock serializes mutations over pairs of keyed resources.
//
// Both locks of a pair are always acquired in byte order of the keys,
// never in caller (sender/receiver) order, so two transfers A→B and B→A
// issued concurrently cannot deadlock.
package pairlock

import "sync"

type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *Locker {
	return &Locker{locks: make(map[string]*sync.Mutex)}
}

// lockFor returns the mutex for key, creating it on first use. Entries
// are never evicted; the table is bounded by the live key population.
func (l *Locker) lockFor(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}

	return m
}

// WithPair runs fn while holding exclusive locks on both keys. No other
// WithPair call sharing either key runs concurrently with fn. Both locks
// are released on every exit path, including a panic inside fn.
// Equal keys are locked once.
func (l *Locker) WithPair(a, b string, fn func() error) error {
	first, second := a, b
	if second < first {
		first, second = second, first
	}

	fm := l.lockFor(first)
	fm.Lock()
	defer fm.Unlock()

	if second != first {
		sm := l.lockFor(second)
		sm.Lock()
		defer sm.Unlock()
	}

	return fn()
}
