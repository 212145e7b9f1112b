// stats.go: instantaneous instrumentation snapshot
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gyre

import "time"

// timeCacheResolution bounds how stale Stats' timestamps may be. Sub-
// millisecond precision is not useful for sampled telemetry and this keeps
// the cache refresh off the hot Push/Pop path, exactly as lethe.go uses
// go-timecache to avoid a time.Now() syscall per write.
const timeCacheResolution = time.Millisecond

// Stats is a best-effort, sampled snapshot of a Ring's state. Every field is
// informational only: none of them are synchronized with each other, so a
// concurrent Push or Pop may make the snapshot stale before it is returned.
type Stats struct {
	Ready      uint32
	Free       uint32
	Capacity   uint32
	ElemSize   uintptr
	LastPushAt time.Time
	LastPopAt  time.Time
}

// Stats returns a snapshot of the ring's current occupancy and the cached
// time of the most recent successful Push/Pop. Safe to call concurrently
// with Push/Pop.
func (r *Ring[T]) Stats() Stats {
	var lastPush, lastPop time.Time
	if ns := r.lastPush.Load(); ns != 0 {
		lastPush = time.Unix(0, ns)
	}
	if ns := r.lastPop.Load(); ns != 0 {
		lastPop = time.Unix(0, ns)
	}
	return Stats{
		Ready:      r.Ready(),
		Free:       r.Free(),
		Capacity:   r.Capacity(),
		ElemSize:   r.elemSize,
		LastPushAt: lastPush,
		LastPopAt:  lastPop,
	}
}

// markPush records the cached time of a successful Push for Stats.
func (r *Ring[T]) markPush() {
	r.lastPush.Store(r.tc.CachedTime().UnixNano())
}

// markPop records the cached time of a successful Pop for Stats.
func (r *Ring[T]) markPop() {
	r.lastPop.Store(r.tc.CachedTime().UnixNano())
}
