package jring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HeapAllocator(t *testing.T) {
	assert := assert.New(t)

	var alloc HeapAllocator[int]

	slots, err := alloc.Alloc(8)
	assert.NoError(err)
	assert.Len(slots, 8)

	for i := range slots {
		slots[i] = i
	}

	grown, err := alloc.Realloc(slots, 16)
	assert.NoError(err)
	assert.Len(grown, 16)

	// Realloc preserves the prefix.
	for i := range 8 {
		assert.Equal(i, grown[i])
	}

	shrunk, err := alloc.Realloc(grown, 8)
	assert.NoError(err)
	assert.Len(shrunk, 8)
	for i := range 8 {
		assert.Equal(i, shrunk[i])
	}

	alloc.Free(shrunk)
}
