package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{total: 0, size: 10, want: 0},
		{total: 1, size: 10, want: 1},
		{total: 10, size: 10, want: 1},
		{total: 11, size: 10, want: 2},
		{total: 100, size: 1, want: 100},
		{total: 5, size: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.total, tt.size), "PageCount(%d, %d)", tt.total, tt.size)
	}
}

func TestPaginator_Bounds(t *testing.T) {
	p := Paginator{Total: 25, Size: 10}

	start, end := p.Bounds(1)
	assert.Equal(t, [2]int{0, 10}, [2]int{start, end})

	start, end = p.Bounds(3)
	assert.Equal(t, [2]int{20, 25}, [2]int{start, end})

	start, end = p.Bounds(4)
	assert.Equal(t, [2]int{25, 25}, [2]int{start, end}, "past the end yields an empty range")
}

func TestPaginator_Navigation(t *testing.T) {
	p := Paginator{Total: 30, Size: 10}

	assert.False(t, p.HasPrev(1))
	assert.True(t, p.HasNext(1))
	assert.True(t, p.HasPrev(3))
	assert.False(t, p.HasNext(3))

	assert.True(t, p.Valid(2))
	assert.False(t, p.Valid(0))
	assert.False(t, p.Valid(4))
}

func TestPaginator_Clamp(t *testing.T) {
	p := Paginator{Total: 30, Size: 10}

	assert.Equal(t, 1, p.Clamp(-3))
	assert.Equal(t, 2, p.Clamp(2))
	assert.Equal(t, 3, p.Clamp(9))
	assert.Equal(t, 1, Paginator{Total: 0, Size: 10}.Clamp(5))
}

func TestPaginator_Window(t *testing.T) {
	p := Paginator{Total: 100, Size: 10}

	assert.Equal(t, []int{1, 2}, p.Window(1))
	assert.Equal(t, []int{4, 5, 6}, p.Window(5))
	assert.Equal(t, []int{9, 10}, p.Window(10))
	assert.Equal(t, []int{1}, Paginator{Total: 3, Size: 10}.Window(1))
	assert.Nil(t, Paginator{Total: 0, Size: 10}.Window(1))
}
