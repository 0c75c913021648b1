package jring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_cursor(t *testing.T) {
	assert := assert.New(t)

	c := newCursor(5, 0, 8)
	assert.Equal(5, c.pos)

	// Virtual offsets wrap into the physical index space.
	assert.Equal(1, newCursor(5, 4, 8).pos)
	assert.Equal(5, newCursor(5, 8, 8).pos)

	assert.Equal(7, c.advance(2).pos)
	assert.Equal(0, c.advance(3).pos)
	assert.Equal(5, c.advance(8).pos)

	assert.Equal(3, c.retreat(2).pos)
	assert.Equal(7, c.retreat(6).pos)
	assert.Equal(5, c.retreat(8).pos)
	assert.Equal(7, c.retreat(14).pos)

	assert.Equal(3, c.distanceToEnd())
	assert.Equal(6, c.distanceToStart())

	last := newCursor(0, 7, 8)
	assert.Equal(1, last.distanceToEnd())
	assert.Equal(0, last.advance(1).pos)

	first := newCursor(0, 0, 8)
	assert.Equal(1, first.distanceToStart())
	assert.Equal(7, first.retreat(1).pos)
}

func Test_move(t *testing.T) {
	// Exercise both copy directions over layouts whose source or
	// destination range crosses the physical end of the storage.
	for _, tc := range []struct {
		name     string
		start    int
		vals     []int
		dst, src int
		n        int
		want     []int // virtual content of the moved range after the move
	}{
		{
			name:  "forward contiguous",
			start: 0, vals: []int{0, 1, 2, 3, 4, 5},
			dst: 1, src: 3, n: 3,
			want: []int{3, 4, 5},
		},
		{
			name:  "backward contiguous",
			start: 0, vals: []int{0, 1, 2, 3, 4, 5},
			dst: 3, src: 1, n: 3,
			want: []int{1, 2, 3},
		},
		{
			name:  "forward across wrap",
			start: 5, vals: []int{0, 1, 2, 3, 4, 5, 6},
			dst: 0, src: 2, n: 5,
			want: []int{2, 3, 4, 5, 6},
		},
		{
			name:  "backward across wrap",
			start: 5, vals: []int{0, 1, 2, 3, 4, 5, 6},
			dst: 2, src: 0, n: 5,
			want: []int{0, 1, 2, 3, 4},
		},
		{
			name:  "overlap by one forward",
			start: 6, vals: []int{0, 1, 2, 3, 4, 5, 6, 7},
			dst: 0, src: 1, n: 7,
			want: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:  "overlap by one backward",
			start: 6, vals: []int{0, 1, 2, 3, 4, 5, 6},
			dst: 1, src: 0, n: 6,
			want: []int{0, 1, 2, 3, 4, 5},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			rb := buildRotated(t, tc.start, tc.vals)
			assert.Equal(tc.start, rb.start)

			rb.move(tc.dst, tc.src, tc.n)

			got := make([]int, tc.n)
			for i := range tc.n {
				got[i] = rb.slots[rb.slot(tc.dst+i)]
			}
			assert.Equal(tc.want, got)
		})
	}
}
