package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatePendingClearsError(t *testing.T) {
	var s state
	s.reject(s.begin(), errors.New("boom"))
	assert.Equal(t, "boom", s.snapshot().Err)

	s.begin()
	snap := s.snapshot()
	assert.True(t, snap.Loading)
	assert.Empty(t, snap.Err)
}

func TestStateDiscardsStaleResponse(t *testing.T) {
	var s state

	slow := s.begin()
	fast := s.begin()

	applied := 0
	assert.True(t, s.fulfill(fast, func() { applied = 2 }))

	// The slow first request resolves after the fast second one; its
	// response must not clobber the newer state
	assert.False(t, s.fulfill(slow, func() { applied = 1 }))
	assert.Equal(t, 2, applied)

	snap := s.snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
}

func TestStateStaleRejectionDiscarded(t *testing.T) {
	var s state

	slow := s.begin()
	fast := s.begin()

	assert.True(t, s.fulfill(fast, nil))
	assert.False(t, s.reject(slow, errors.New("late failure")))
	assert.Empty(t, s.snapshot().Err)
}
