package services

import (
	"context"
	"errors"
	"sync"

	"tunescout/internal/interfaces"
	"tunescout/internal/shared"
)

// ResultSnapshot is a point-in-time copy of the search result state
type ResultSnapshot struct {
	Items   []shared.Track `json:"items"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error,omitempty"`
}

// ResultState tracks the last search: pending, fulfilled or rejected.
// A rejected search keeps the previous items.
type ResultState struct {
	mu      sync.RWMutex
	items   []shared.Track
	loading bool
	err     string
}

func NewResultState() *ResultState {
	return &ResultState{items: []shared.Track{}}
}

// Begin marks a search as pending and clears the last error
func (rs *ResultState) Begin() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.loading = true
	rs.err = ""
}

// Fulfill replaces the items with a finished result
func (rs *ResultState) Fulfill(items []shared.Track) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if items == nil {
		items = []shared.Track{}
	}
	rs.items = items
	rs.loading = false
}

// Reject records a failed search without touching the items
func (rs *ResultState) Reject(err error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.loading = false
	if errors.Is(err, shared.ErrSearchFailed) {
		rs.err = shared.ErrSearchFailed.Error()
		return
	}
	rs.err = err.Error()
}

func (rs *ResultState) Snapshot() ResultSnapshot {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	items := make([]shared.Track, len(rs.items))
	copy(items, rs.items)
	return ResultSnapshot{Items: items, Loading: rs.loading, Error: rs.err}
}

// Run executes a search through the state machine
func (rs *ResultState) Run(ctx context.Context, svc interfaces.SearchService, query shared.Query) ([]shared.Track, error) {
	rs.Begin()
	tracks, err := svc.SearchTracks(ctx, query)
	if err != nil {
		rs.Reject(err)
		return nil, err
	}
	rs.Fulfill(tracks)
	return tracks, nil
}
