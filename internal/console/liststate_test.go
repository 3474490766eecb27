package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmperov/shopadmin/internal/services"
)

func TestListState_LoadingLifecycle(t *testing.T) {
	s := &ListState[string]{}
	assert.False(t, s.Loading())

	seq := s.Begin()
	assert.True(t, s.Loading())

	ok := s.Apply(seq, services.Page[string]{Items: []string{"a"}, Total: 1, Page: 1})
	assert.True(t, ok)
	assert.False(t, s.Loading())
	assert.Equal(t, []string{"a"}, s.Items())
	assert.Equal(t, 1, s.Total())
}

func TestListState_StaleApplyDiscarded(t *testing.T) {
	s := &ListState[string]{}

	first := s.Begin()
	second := s.Begin()

	ok := s.Apply(second, services.Page[string]{Items: []string{"new"}, Total: 1, Page: 2})
	assert.True(t, ok)

	// The slow first response arrives after the second already landed.
	ok = s.Apply(first, services.Page[string]{Items: []string{"old"}, Total: 1, Page: 1})
	assert.False(t, ok)
	assert.Equal(t, []string{"new"}, s.Items())
	assert.Equal(t, 2, s.Page())
}

func TestListState_FailKeepsPreviousRows(t *testing.T) {
	s := &ListState[string]{}
	seq := s.Begin()
	s.Apply(seq, services.Page[string]{Items: []string{"a", "b"}, Total: 2, Page: 1})

	seq = s.Begin()
	assert.True(t, s.Loading())
	assert.True(t, s.Fail(seq))
	assert.False(t, s.Loading())
	assert.Equal(t, []string{"a", "b"}, s.Items())
}

func TestListState_StaleFailIgnored(t *testing.T) {
	s := &ListState[string]{}
	first := s.Begin()
	s.Begin()

	assert.False(t, s.Fail(first))
	assert.True(t, s.Loading())
}

func TestListState_ItemsReturnsCopy(t *testing.T) {
	s := &ListState[string]{}
	seq := s.Begin()
	s.Apply(seq, services.Page[string]{Items: []string{"a"}, Total: 1, Page: 1})

	items := s.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"a"}, s.Items())
}
