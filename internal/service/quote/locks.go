package quote

import "sync"

type sessionLock struct {
	sync.Mutex
	refs int
}

// sessionLocks hands out one mutex per session id and forgets it once
// nobody holds or waits on it.
type sessionLocks struct {
	mx    sync.Mutex
	locks map[string]*sessionLock
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

func (l *sessionLocks) lock(id string) (unlock func()) {
	l.mx.Lock()
	sl, ok := l.locks[id]
	if !ok {
		sl = &sessionLock{}
		l.locks[id] = sl
	}
	sl.refs++
	l.mx.Unlock()

	sl.Lock()

	return func() {
		sl.Unlock()

		l.mx.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mx.Unlock()
	}
}

func (l *sessionLocks) len() int {
	l.mx.Lock()
	defer l.mx.Unlock()
	return len(l.locks)
}
