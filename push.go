// push.go: producer-side reservation and publish protocol
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gyre

// Push reserves up to len(src) slots, copies src into them, and publishes
// the reservation so consumers can observe it. It returns the number of
// elements actually enqueued.
//
// Without FlagSomeData, Push either enqueues all of src or nothing: if fewer
// than len(src) slots are free it returns 0, ErrAgain, and a free-slot
// estimate. With FlagSomeData, Push enqueues as many of
// the leading elements of src as fit, short of failing only when zero slots
// are free.
//
// With FlagSingle, Push assumes it is the only goroutine pushing to this
// ring and skips the CAS reservation loop in favor of a plain store; the
// ring does not verify this assumption.
//
// Push never blocks on a consumer. It may briefly spin (see Relaxer) behind
// another producer that reserved an earlier range and has not yet finished
// copying its payload.
func (r *Ring[T]) Push(src []T, flags Flags) (n uint32, freeRemain uint32, err error) {
	length := uint32(len(src))
	if length == 0 {
		return 0, 0, &OpError{Op: "push", Err: ErrInvalid}
	}

	mask := r.prod.mask
	oldHead := r.prod.head.Load()
	var (
		count   uint32
		free    uint32
		newHead uint32
	)

	for {
		count = length

		// Acquire-load pairs with the release-store of cons.tail at the
		// end of Pop: it ensures a consumer's reads of the slots it is
		// releasing happen-before this producer overwrites them.
		consTail := r.cons.tail.Load()
		free = r.prod.mask + consTail - oldHead

		if flags.has(FlagSomeData) && free < length {
			count = free
		}
		if count == 0 || free < count {
			return 0, free, &OpError{Op: "push", Err: ErrAgain}
		}

		newHead = oldHead + count

		if flags.has(FlagSingle) {
			r.prod.head.Store(newHead)
			break
		}
		if r.prod.head.CompareAndSwap(oldHead, newHead) {
			break
		}
		oldHead = r.prod.head.Load()
	}

	for i := uint32(0); i < count; i++ {
		r.slots[(oldHead+i)&mask] = src[i]
	}

	// No producer may advance prod.tail past its own reservation until
	// every earlier reservation has published; this linearizes the
	// release below with respect to concurrent producers.
	spinWait(r.relax, func() bool {
		return r.prod.tail.Load() == oldHead
	})

	// Release pairs with a consumer's acquire-load of prod.tail,
	// publishing the payload bytes written above.
	r.prod.tail.Store(newHead)

	r.markPush()
	return count, free - count, nil
}
