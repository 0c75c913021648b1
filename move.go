package jring

// move relocates n elements from virtual offset src to virtual offset dst,
// taking care of overlap between the two ranges and of ranges crossing the
// physical end of the storage. Only the reference handles are copied, never
// the element contents.
//
// The copy direction is chosen so that no source slot is overwritten before
// it has been read: moving toward the front goes low-to-high, moving toward
// the back goes high-to-low. Each step copies the largest contiguous run
// that keeps both positions inside the physical storage.
func (rb *RingBuffer[T]) move(dst, src, n int) {
	if n == 0 || dst == src {
		return
	}

	capacity := len(rb.slots)

	if dst < src {
		rd := newCursor(rb.start, src, capacity)
		wr := newCursor(rb.start, dst, capacity)

		for n > 0 {
			run := min(rd.distanceToEnd(), wr.distanceToEnd(), n)

			copy(rb.slots[wr.pos:wr.pos+run], rb.slots[rd.pos:rd.pos+run])

			rd = rd.advance(run)
			wr = wr.advance(run)
			n -= run
		}

		return
	}

	// Start from the last element of both ranges and walk down.
	rd := newCursor(rb.start, src+n-1, capacity)
	wr := newCursor(rb.start, dst+n-1, capacity)

	for n > 0 {
		run := min(rd.distanceToStart(), wr.distanceToStart(), n)

		copy(rb.slots[wr.pos-run+1:wr.pos+1], rb.slots[rd.pos-run+1:rd.pos+1])

		rd = rd.retreat(run)
		wr = wr.retreat(run)
		n -= run
	}
}
