package match

import "sync"

// pairLocks serializes the check-acceptance-then-allocate sequence per user
// pair so two concurrent requests cannot allocate two rooms for the same two
// users. Entries are reference counted and freed on the last unlock, so the
// map never accumulates one mutex per pair ever seen.
type pairLocks struct {
	mu    sync.Mutex
	locks map[[2]uint]*pairLock
}

type pairLock struct {
	mu   sync.Mutex
	refs int
}

func (p *pairLocks) lock(a, b uint) func() {
	if a > b {
		a, b = b, a
	}
	key := [2]uint{a, b}

	p.mu.Lock()
	if p.locks == nil {
		p.locks = map[[2]uint]*pairLock{}
	}
	l, ok := p.locks[key]
	if !ok {
		l = &pairLock{}
		p.locks[key] = l
	}
	l.refs++
	p.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, key)
		}
		p.mu.Unlock()
	}
}
