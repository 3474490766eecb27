package console

import (
	"sync"

	"github.com/dmperov/shopadmin/internal/services"
)

// ListState holds one list view's rows plus fetch bookkeeping. Every fetch
// claims a sequence number via Begin; only the reply matching the latest
// sequence may land, so a slow earlier response can never overwrite a newer
// one.
type ListState[T any] struct {
	mu      sync.Mutex
	seq     uint64
	loading bool
	items   []T
	total   int
	page    int
	search  string
}

// Begin marks the state loading and returns the sequence number the caller
// must present to Apply or Fail.
func (s *ListState[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = true
	return s.seq
}

// Apply installs a fetched page if seq is still current. Stale replies are
// discarded and reported as false.
func (s *ListState[T]) Apply(seq uint64, page services.Page[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.items = page.Items
	s.total = page.Total
	s.page = page.Page
	s.loading = false
	return true
}

// Fail clears the loading flag for a fetch that errored, leaving the
// previous rows in place. Stale failures are ignored.
func (s *ListState[T]) Fail(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.loading = false
	return true
}

func (s *ListState[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Items returns a copy of the current rows.
func (s *ListState[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ListState[T]) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *ListState[T]) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *ListState[T]) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

func (s *ListState[T]) SetSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = q
}
