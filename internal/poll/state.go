package poll

import (
	"slices"
	"sync"
	"time"

	"github.com/bornholm/burnin/internal/record"
)

type Collection string

const (
	CollectionRuns       Collection = "runs"
	CollectionManualRuns Collection = "manual"
)

// State holds the last applied content of each collection. Every fetch is
// tagged with a sequence number when issued and its result is applied only
// if no fetch issued later has already been applied. Results of a failed
// read are applied but leave UpdatedAt untouched.
type State struct {
	mu sync.RWMutex

	runs       []record.Entry[record.Run]
	manualRuns []record.Entry[record.ManualRun]

	issued  map[Collection]uint64
	applied map[Collection]uint64

	updatedAt time.Time
}

// Issue returns the sequence number of a new fetch of the collection.
func (s *State) Issue(c Collection) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued[c]++

	return s.issued[c]
}

func (s *State) ApplyRuns(seq uint64, entries []record.Entry[record.Run], readErr error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.accept(CollectionRuns, seq, readErr == nil) {
		return false
	}

	s.runs = entries

	return true
}

func (s *State) ApplyManualRuns(seq uint64, entries []record.Entry[record.ManualRun], readErr error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.accept(CollectionManualRuns, seq, readErr == nil) {
		return false
	}

	s.manualRuns = entries

	return true
}

// accept must be called with the write lock held.
func (s *State) accept(c Collection, seq uint64, fresh bool) bool {
	if seq <= s.applied[c] {
		return false
	}

	s.applied[c] = seq

	if fresh {
		s.updatedAt = time.Now()
	}

	return true
}

func (s *State) Runs() []record.Entry[record.Run] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.runs)
}

func (s *State) ManualRuns() []record.Entry[record.ManualRun] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.manualRuns)
}

// UpdatedAt returns the time of the last applied result read without error,
// zero if there is none yet.
func (s *State) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.updatedAt
}

func NewState() *State {
	return &State{
		runs:       []record.Entry[record.Run]{},
		manualRuns: []record.Entry[record.ManualRun]{},
		issued:     map[Collection]uint64{},
		applied:    map[Collection]uint64{},
	}
}
