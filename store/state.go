// Package store holds the client-side state containers. Each container
// caches one backend resource with uniform {data, loading, error}
// semantics: a pending fetch sets loading and clears the error, a
// fulfilled fetch replaces or merges data, and a rejected fetch keeps
// the stale data and records the most recent server message.
package store

import (
	"sync"

	"github.com/leavedesk/leavedesk-client-go/api"
)

// state is the shared container plumbing. Responses carry a monotonic
// sequence number; a response older than the last applied one is
// discarded, so a slow early fetch can never clobber a later result.
type state struct {
	mu      sync.Mutex
	loading bool
	err     string
	seq     uint64
	applied uint64
}

// begin marks a request pending and issues its sequence number
func (s *state) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = true
	s.err = ""
	return s.seq
}

// fulfill applies fn under the lock if the response is not stale.
// Returns false when the response was discarded.
func (s *state) fulfill(seq uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.loading = false
	s.err = ""
	if fn != nil {
		fn()
	}
	return true
}

// reject records the failure message, leaving cached data untouched
func (s *state) reject(seq uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.loading = false
	s.err = api.ErrorMessage(err)
	return true
}

// read runs fn under the container lock, for data accessors
func (s *state) read(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Snapshot is the observable container state
type Snapshot struct {
	Loading bool
	Err     string
}

func (s *state) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Loading: s.loading, Err: s.err}
}
