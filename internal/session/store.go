// Package session owns per-user conversation history. Each session starts
// with exactly one system message; user/assistant messages are only ever
// appended in pairs so a failed turn can never leave half a turn behind.
package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/binguliki/IntelliLearn/internal/model"
)

const (
	// DefaultTTL evicts a session this long after it was created or last
	// rebuilt. The underlying cache does not renew on access.
	DefaultTTL = 30 * time.Minute

	// DefaultMaxSessions caps the number of live sessions.
	DefaultMaxSessions = 1000
)

type state struct {
	mu   sync.Mutex
	msgs []model.Message
}

// turnLock is a per-session mutex with a waiter count so the entry can be
// dropped from the map once nobody holds or wants it.
type turnLock struct {
	mu   sync.Mutex
	refs int
}

// Store is a concurrent session registry with create-on-miss semantics and
// TTL eviction.
type Store struct {
	systemPrompt string

	mu       sync.Mutex
	sessions *expirable.LRU[string, *state]
	locks    map[string]*turnLock
}

// New creates a session store seeding every session with systemPrompt.
// Zero values for ttl and maxSessions select the defaults.
func New(systemPrompt string, ttl time.Duration, maxSessions int) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Store{
		systemPrompt: systemPrompt,
		sessions:     expirable.NewLRU[string, *state](maxSessions, nil, ttl),
		locks:        make(map[string]*turnLock),
	}
}

// Lock acquires the per-session turn lock and returns its release func.
// A turn holds this across snapshot, completion, dispatch and commit so
// concurrent requests on one session cannot interleave. The lock entry is
// removed once the last holder or waiter releases, so the map only grows
// with in-flight turns, not with distinct keys seen.
func (s *Store) Lock(key string) func() {
	s.mu.Lock()
	lk, ok := s.locks[key]
	if !ok {
		lk = &turnLock{}
		s.locks[key] = lk
	}
	lk.refs++
	s.mu.Unlock()

	lk.mu.Lock()
	return func() {
		lk.mu.Unlock()

		s.mu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}

// get returns the session state for key, creating and seeding it on miss.
func (s *Store) get(key string) *state {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.sessions.Get(key); ok {
		return st
	}
	st := &state{msgs: []model.Message{model.SystemMessage(s.systemPrompt)}}
	s.sessions.Add(key, st)
	return st
}

// Snapshot returns an independent copy of the session's messages,
// creating the session on first access.
func (s *Store) Snapshot(key string) []model.Message {
	st := s.get(key)
	st.mu.Lock()
	defer st.mu.Unlock()

	out := make([]model.Message, len(st.msgs))
	copy(out, st.msgs)
	return out
}

// Commit atomically appends the user and assistant messages of a completed
// turn. The session is recreated on miss: the cache may evict a session
// between snapshot and commit (TTL or capacity), and the caller must still
// get its turn recorded rather than a failure. A reseeded session keeps
// the system-message invariant, it just loses the evicted history.
func (s *Store) Commit(key string, userMsg, assistantMsg model.Message) {
	st := s.get(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.msgs = append(st.msgs, userMsg, assistantMsg)
}

// Append adds extra messages outside the paired commit, e.g. a synthetic
// continuity turn after a tool confirmation. Creates the session on miss.
func (s *Store) Append(key string, msgs ...model.Message) {
	st := s.get(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.msgs = append(st.msgs, msgs...)
}

// Reset discards the session and recreates it with only the seeded system
// message. The old state is replaced wholesale, never mutated in place.
func (s *Store) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Add(key, &state{msgs: []model.Message{model.SystemMessage(s.systemPrompt)}})
}

// Replay rebuilds the session from a client-supplied history: a fresh
// system message followed by the given turns.
func (s *Store) Replay(key string, history []model.Message) {
	msgs := make([]model.Message, 0, len(history)+1)
	msgs = append(msgs, model.SystemMessage(s.systemPrompt))
	msgs = append(msgs, history...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Add(key, &state{msgs: msgs})
}
