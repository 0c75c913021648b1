package jring

// cursor is a physical slot position inside a circular storage of a given
// capacity. All modulo arithmetic on physical positions goes through it, so
// wraparound handling lives in one place.
type cursor struct {
	pos      int
	capacity int
}

// newCursor returns the cursor for virtual index i of a live range starting
// at the physical slot start.
func newCursor(start, i, capacity int) cursor {
	return cursor{
		pos:      (start + i) % capacity,
		capacity: capacity,
	}
}

// advance moves the cursor n slots forward, wrapping from the physical end
// back to slot 0.
func (c cursor) advance(n int) cursor {
	c.pos = (c.pos + n) % c.capacity
	return c
}

// retreat moves the cursor n slots backward, wrapping from slot 0 back to
// the last physical slot.
func (c cursor) retreat(n int) cursor {
	c.pos = (c.pos + c.capacity - n%c.capacity) % c.capacity
	return c
}

// distanceToEnd returns the number of slots from the cursor up to the
// physical end of the storage.
func (c cursor) distanceToEnd() int {
	return c.capacity - c.pos
}

// distanceToStart returns the number of slots from the physical start of the
// storage up to and including the cursor.
func (c cursor) distanceToStart() int {
	return c.pos + 1
}
