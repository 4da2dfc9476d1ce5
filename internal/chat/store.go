package chat

import (
	"context"
	"sync"
	"time"
)

// ContextStore holds per-user conversational state between turns.
//
// Lock returns an unlock func after acquiring a per-user mutex; callers hold
// it across their whole read-modify-write of the session so concurrent turns
// from the same user cannot interleave.
type ContextStore interface {
	Context(ctx context.Context, userID string) (*SessionContext, error)
	SetContext(ctx context.Context, userID string, sc *SessionContext) error
	PendingBooking(ctx context.Context, userID string) (*PendingBooking, error)
	SetPendingBooking(ctx context.Context, userID string, pb *PendingBooking) error
	ClearPendingBooking(ctx context.Context, userID string) error
	Lock(userID string) func()
}

// lockTable hands out one mutex per user id. Entries are never removed; the
// user population of a single process is small enough that this is fine.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

func (t *lockTable) Lock(userID string) func() {
	t.mu.Lock()
	l, ok := t.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[userID] = l
	}
	t.mu.Unlock()

	l.Lock()
	return l.Unlock
}

type memoryEntry struct {
	context   *SessionContext
	pending   *PendingBooking
	expiresAt time.Time
}

// MemoryStore is the in-process ContextStore. Sessions expire after ttl of
// inactivity; a janitor goroutine sweeps expired entries.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	locks   *lockTable
	done    chan struct{}
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		locks:   newLockTable(),
		done:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() {
	close(s.done)
}

// entry returns the live entry for a user, creating a fresh one when missing
// or expired, and bumps the expiry.
func (s *MemoryStore) entry(userID string) *memoryEntry {
	e, ok := s.entries[userID]
	if !ok || time.Now().After(e.expiresAt) {
		e = &memoryEntry{context: NewSessionContext()}
		s.entries[userID] = e
	}
	e.expiresAt = time.Now().Add(s.ttl)
	return e
}

func (s *MemoryStore) Context(_ context.Context, userID string) (*SessionContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc := *s.entry(userID).context
	return &sc, nil
}

func (s *MemoryStore) SetContext(_ context.Context, userID string, sc *SessionContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sc
	s.entry(userID).context = &cp
	return nil
}

func (s *MemoryStore) PendingBooking(_ context.Context, userID string) (*PendingBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pb := s.entry(userID).pending
	if pb == nil {
		return nil, nil
	}
	cp := *pb
	return &cp, nil
}

func (s *MemoryStore) SetPendingBooking(_ context.Context, userID string, pb *PendingBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *pb
	s.entry(userID).pending = &cp
	return nil
}

func (s *MemoryStore) ClearPendingBooking(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(userID).pending = nil
	return nil
}

func (s *MemoryStore) Lock(userID string) func() {
	return s.locks.Lock(userID)
}
