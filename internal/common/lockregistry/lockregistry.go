package lockregistry

import (
	"sync"
	"time"
)

// Registry hands out one mutex per key (card IDm) so structural ledger edits on
// the same card are serialized while different cards proceed in parallel.
// Entries are reference counted; unreferenced entries older than idleEvictAfter
// are removed by a background sweeper to bound memory.
type Registry struct {
	mu    sync.Mutex
	locks map[string]*entry

	idleEvictAfter time.Duration
	stop           chan struct{}
	stopOnce       sync.Once
}

type entry struct {
	mu       sync.Mutex
	refs     int
	lastUsed time.Time
}

const (
	defaultIdleEvictAfter = 10 * time.Minute
	defaultSweepInterval  = time.Minute
)

func New(idleEvictAfter, sweepInterval time.Duration) *Registry {
	if idleEvictAfter <= 0 {
		idleEvictAfter = defaultIdleEvictAfter
	}
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}

	r := &Registry{
		locks:          make(map[string]*entry),
		idleEvictAfter: idleEvictAfter,
		stop:           make(chan struct{}),
	}

	go r.sweep(sweepInterval)

	return r
}

// Lock blocks until the key's mutex is held.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	e, ok := r.locks[key]
	if !ok {
		e = &entry{}
		r.locks[key] = e
	}
	e.refs++
	r.mu.Unlock()

	e.mu.Lock()
}

func (r *Registry) Unlock(key string) {
	r.mu.Lock()
	e, ok := r.locks[key]
	if ok {
		e.refs--
		e.lastUsed = time.Now()
	}
	r.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}

// Len reports how many keys are currently registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locks)
}

func (r *Registry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Registry) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.evictIdle(time.Now())
		}
	}
}

// evictIdle removes stale unreferenced entries. The registry lock is held for
// the whole scan so a concurrent Lock cannot grab an entry mid-removal.
func (r *Registry) evictIdle(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, e := range r.locks {
		if e.refs == 0 && now.Sub(e.lastUsed) >= r.idleEvictAfter {
			delete(r.locks, key)
		}
	}
}
