// errors.go: error taxonomy for the ring buffer
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gyre

import "errors"

// Pre-allocated sentinel errors to avoid allocations on the hot path.
// Compare with errors.Is, never by string.
var (
	// ErrInvalid is returned for programmer errors: a capacity that is
	// zero or not a power of two, a zero-sized element type, or a zero
	// len passed to Push/Pop.
	ErrInvalid = errors.New("gyre: invalid argument")

	// ErrNoMem is returned when the slot allocation fails during New.
	ErrNoMem = errors.New("gyre: out of memory")

	// ErrAgain is returned when Push finds fewer free slots, or Pop fewer
	// ready elements, than the call needs: fewer than len without
	// FlagSomeData, or none at all with it. It is not a bug; backpressure
	// is the caller's responsibility.
	ErrAgain = errors.New("gyre: would block")
)

// OpError annotates a sentinel error with the operation that produced it,
// mirroring the operation/err pairing a caller-supplied error callback would
// receive. Err is always one of the sentinels above and is preserved under
// errors.Is / errors.Unwrap.
type OpError struct {
	Op  string // "push", "pop", or "new"
	Err error
}

func (e *OpError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}
