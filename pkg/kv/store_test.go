package kv

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	s := New[int, string](0)

	s.Set(80, "eighty")
	val, ok := s.Get(80)
	assert.True(t, ok)
	assert.Equal(t, "eighty", val)

	_, ok = s.Get(100)
	assert.False(t, ok)
}

func TestStore_evictsOldest(t *testing.T) {
	s := New[int, int](2)

	s.Set(1, 1)
	s.Set(2, 2)
	s.Set(1, 10) // overwrite keeps insertion order
	s.Set(3, 3)

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(1)
	assert.False(t, ok)
	v, ok := s.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestStore_GetOrSet(t *testing.T) {
	s := New[string, int](0)
	calls := 0
	build := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := s.GetOrSet("k", build)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, _ = s.GetOrSet("k", build)
	assert.Equal(t, 1, calls)

	_, err = s.GetOrSet("bad", func() (int, error) { return 0, errors.New("boom") })
	assert.EqualError(t, err, "boom")
	_, ok := s.Get("bad")
	assert.False(t, ok)
}

func TestStore_Concurrent(t *testing.T) {
	s := New[int, int](8)
	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = s.GetOrSet(n%16, func() (int, error) { return n, nil })
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 8)
}
