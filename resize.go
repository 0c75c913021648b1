package jring

// blockCopy is one physical block move to perform after the storage has
// grown: n slots are copied from physical offset src to physical offset dst.
type blockCopy struct {
	dst, src, n int
}

// planGrow computes the relocation needed to keep the logical order of a
// live range intact after the storage grows from oldCap to newCap slots.
//
// When the live range does not wrap, growth opens space past it and nothing
// moves. When it wraps, the gap opens at the physical end of the old storage
// and either the upper block (from start to the old physical end) or the
// lower block (from slot 0 up to the wrapped end) has to be relocated. The
// smaller of the two is chosen.
//
// It returns the new start slot and the block copies to perform, in order.
// Being a pure function of the layout, it is testable without a buffer.
func planGrow(start, count, oldCap, newCap int) (int, []blockCopy) {
	if start <= oldCap-count {
		return start, nil
	}

	upper := oldCap - start
	lower := start + count - oldCap

	if upper < lower {
		// Move the upper block against the new physical end.
		return newCap - upper, []blockCopy{
			{dst: newCap - upper, src: start, n: upper},
		}
	}

	growth := newCap - oldCap
	if lower > growth {
		// The lower block does not fit entirely in the grown region:
		// the part that fits goes there, the rest slides down to slot 0.
		return start, []blockCopy{
			{dst: oldCap, src: 0, n: growth},
			{dst: 0, src: growth, n: lower - growth},
		}
	}

	return start, []blockCopy{
		{dst: oldCap, src: 0, n: lower},
	}
}

// resize changes the storage capacity to newCap slots, clamped up to
// [MinCapacity]. It fails with errCapacityTooSmall if newCap cannot hold the
// live elements, or with the allocator's error if storage cannot be
// obtained. On failure the buffer is left fully intact.
func (rb *RingBuffer[T]) resize(newCap int) error {
	if newCap < MinCapacity {
		newCap = MinCapacity
	}

	// Keep the zero value of RingBuffer usable.
	if rb.alloc == nil {
		rb.alloc = HeapAllocator[T]{}
	}

	// Initial allocation: nothing to preserve.
	if rb.slots == nil {
		slots, err := rb.alloc.Alloc(newCap)
		if err != nil {
			return err
		}

		rb.slots = slots
		return nil
	}

	if newCap < rb.count {
		return errCapacityTooSmall
	}

	oldCap := len(rb.slots)
	if newCap == oldCap {
		return nil
	}

	if newCap > oldCap {
		newStart, copies := planGrow(rb.start, rb.count, oldCap, newCap)

		slots, err := rb.alloc.Realloc(rb.slots, newCap)
		if err != nil {
			return err
		}

		for _, bc := range copies {
			copy(slots[bc.dst:bc.dst+bc.n], slots[bc.src:bc.src+bc.n])
		}

		rb.slots = slots
		rb.start = newStart

		return nil
	}

	// Shrink compacts the live range into fresh storage instead of
	// reallocating in place: a wrapped or high-sitting range would be
	// truncated by the reallocation before it could be moved, and a failed
	// allocation must not damage the buffer.
	slots, err := rb.alloc.Alloc(newCap)
	if err != nil {
		return err
	}

	if rb.count > 0 {
		first := min(rb.count, oldCap-rb.start)
		copy(slots, rb.slots[rb.start:rb.start+first])
		copy(slots[first:rb.count], rb.slots[:rb.count-first])
	}

	rb.alloc.Free(rb.slots)
	rb.slots = slots
	rb.start = 0

	return nil
}
