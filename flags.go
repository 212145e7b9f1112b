// flags.go: Push/Pop flag bits
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gyre

// Flags is a bitwise-combinable set of options for Push and Pop.
type Flags uint32

const (
	// FlagSomeData requests partial fulfillment: if the ring has f < len
	// slots available (free for Push, ready for Pop) but f > 0, the call
	// completes with exactly f elements instead of failing with ErrAgain.
	FlagSomeData Flags = 1 << iota

	// FlagSingle asserts that the caller is the only participant in its
	// role for this ring (the only producer for Push, the only consumer
	// for Pop). It skips the compare-and-swap reservation loop in favor
	// of a plain store. The ring does not verify the assertion; violating
	// it silently corrupts the cursor invariants.
	FlagSingle
)

func (f Flags) has(bit Flags) bool {
	return f&bit != 0
}
