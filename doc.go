// Package gyre provides a bounded, lock-free, multi-producer/multi-consumer
// ring buffer for transporting fixed-size elements between goroutines in
// FIFO order.
//
// Gyre targets shared-memory parallelism: producers and consumers reserve
// contiguous ranges of slots with a CAS loop, write or read the slots
// in-place, and publish the range with a single release-store. No per-slot
// atomics are needed; acquire/release ordering on two monotonic cursors per
// role is enough to make the in-place writes safe to observe.
//
// # Quick start
//
//	ring, err := gyre.New[int](1024)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ring.Close()
//
//	n, _, err := ring.Push([]int{1, 2, 3}, 0)
//	dst := make([]int, 3)
//	n, _, err = ring.Pop(dst, 0)
//
// # Flags
//
//	ring.Push(batch, gyre.FlagSomeData) // accept a partial enqueue
//	ring.Push(batch, gyre.FlagSingle)   // caller asserts sole producer
//
// # What Gyre is not
//
// Gyre never blocks on a kernel primitive and never resizes. Callers poll or
// back off externally on ErrAgain. See the package README-equivalent in
// SPEC_FULL.md at the root of this repository for the full design.
package gyre
