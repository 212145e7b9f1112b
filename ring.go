// ring.go: Ring data structure, lifecycle, and accessors
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gyre

import (
	"sync/atomic"
	"unsafe"

	"github.com/agilira/go-timecache"
)

// cacheLine is the assumed L1/L2 line size used to separate the producer and
// consumer cursor groups. The original C structure pads with two 13-element
// uint32 arrays under the same assumption (loki/queue.h).
const cacheLine = 64

// prodState holds everything touched only by producers: the reservation
// frontier (head), the publish frontier (tail), and this role's copy of the
// capacity mask. Padded to its own cache line so a consumer's writes to
// consState never evict it.
type prodState struct {
	head atomic.Uint32
	tail atomic.Uint32
	mask uint32
	_    [cacheLine - 3*4]byte
}

// consState is the symmetric counterpart for consumers.
type consState struct {
	head atomic.Uint32
	tail atomic.Uint32
	mask uint32
	_    [cacheLine - 3*4]byte
}

// Ring is a bounded, lock-free MPMC queue of fixed-size elements of type T.
// A Ring must be created with New and released with Close. Zero value Rings
// are not usable.
//
// All exported methods are safe to call concurrently from any number of
// goroutines, with the caveat documented on FlagSingle.
type Ring[T any] struct {
	prod prodState
	cons consState

	slots []T

	// elemSize mirrors the C struct's elem_sz field. Go's slice element
	// assignment does not need it to move data; it is kept purely so the
	// data model matches spec.md's field-for-field description and so
	// Stats() can report it.
	elemSize uintptr

	relax Relaxer

	closed atomic.Bool

	tc       *timecache.TimeCache
	lastPush atomic.Int64
	lastPop  atomic.Int64
}

func isPowerOfTwo(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}

// New creates a Ring with room for capacity-1 usable elements of type T.
// capacity must be a power of two and at least 2; one slot is always left
// empty to disambiguate a full ring from an empty one. T must not be a
// zero-sized type.
//
// New reports ErrInvalid for a bad capacity or element type, and ErrNoMem if
// the backing slot allocation fails.
func New[T any](capacity uint32) (*Ring[T], error) {
	return NewWithRelax[T](capacity, defaultRelax)
}

// NewWithRelax is New with an explicit Relaxer, letting callers substitute
// their own spin-wait hint (for example a platform-specific PAUSE wrapper
// reached through cgo) in place of the scheduler-backed default.
func NewWithRelax[T any](capacity uint32, relax Relaxer) (*Ring[T], error) {
	var zero T
	elemSize := unsafe.Sizeof(zero)

	if !isPowerOfTwo(capacity) || capacity < 2 {
		return nil, &OpError{Op: "new", Err: ErrInvalid}
	}
	if elemSize == 0 {
		return nil, &OpError{Op: "new", Err: ErrInvalid}
	}
	if relax == nil {
		relax = defaultRelax
	}

	slots, err := allocSlots[T](capacity)
	if err != nil {
		return nil, err
	}

	r := &Ring[T]{
		slots:    slots,
		elemSize: elemSize,
		relax:    relax,
		tc:       timecache.NewWithResolution(timeCacheResolution),
	}
	r.prod.mask = capacity - 1
	r.cons.mask = capacity - 1
	return r, nil
}

// allocSlots isolates the allocation so a runtime out-of-memory panic (the
// only way Go reports allocation failure for a plain make) can be recovered
// and turned into ErrNoMem instead of crashing the process, the Go analogue
// of the C malloc failure path in loki_queue__init.
func allocSlots[T any](capacity uint32) (slots []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			slots = nil
			err = &OpError{Op: "new", Err: ErrNoMem}
		}
	}()
	return make([]T, capacity), nil
}

// Close releases the ring's slot buffer. The caller must ensure no goroutine
// is mid-Push/Pop; Close itself is idempotent and safe to call more than
// once or concurrently with itself.
func (r *Ring[T]) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	r.slots = nil
	r.tc.Stop()
	return nil
}

// Ready returns an instantaneous lower bound on the number of published,
// unconsumed elements. The value may be stale by the time the caller
// observes it; it is advisory only.
func (r *Ring[T]) Ready() uint32 {
	return r.prod.tail.Load() - r.cons.head.Load()
}

// Free returns an instantaneous count of slots available for a producer to
// reserve. Like Ready, this is advisory only.
func (r *Ring[T]) Free() uint32 {
	return r.prod.mask + r.cons.tail.Load() - r.prod.head.Load()
}

// Capacity returns N, the slot count passed to New. Usable capacity is
// Capacity()-1.
func (r *Ring[T]) Capacity() uint32 {
	return r.prod.mask + 1
}
