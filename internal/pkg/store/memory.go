package store

import (
	"context"
	"sync"
	"time"

	"github.com/ougirez/motorquote/internal/pkg/constants"
	"github.com/ougirez/motorquote/internal/wizard"
)

type memoryEntry struct {
	state     wizard.State
	expiresAt time.Time
}

type memoryStore struct {
	mx      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryStore keeps sessions in process memory. Each Save pushes the
// session's expiry ttl into the future and drops entries that already expired.
func NewMemoryStore(ttl time.Duration) SessionStore {
	return newMemoryStore(ttl, time.Now)
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	return &memoryStore{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *memoryStore) Load(_ context.Context, id string) (wizard.State, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.load(id)
}

func (s *memoryStore) load(id string) (wizard.State, error) {
	e, ok := s.entries[id]
	if !ok {
		return wizard.State{}, constants.ErrSessionNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return wizard.State{}, constants.ErrSessionNotFound
	}

	return e.state, nil
}

func (s *memoryStore) Update(_ context.Context, id string, fn Transition) (wizard.State, bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	current, err := s.load(id)
	if err != nil {
		return wizard.State{}, false, err
	}

	next, ok := fn(current)
	if !ok {
		return current, false, nil
	}

	s.entries[id] = memoryEntry{state: next, expiresAt: s.now().Add(s.ttl)}
	return next, true, nil
}

func (s *memoryStore) Save(_ context.Context, id string, state wizard.State) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}

	s.entries[id] = memoryEntry{state: state, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return constants.ErrSessionNotFound
	}
	delete(s.entries, id)
	if !s.now().Before(e.expiresAt) {
		return constants.ErrSessionNotFound
	}

	return nil
}

func (s *memoryStore) len() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return len(s.entries)
}
