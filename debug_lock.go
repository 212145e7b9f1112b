//go:build gyre_verify

// debug_lock.go: serializing verification wrapper, compiled only with the
// gyre_verify build tag (`go test -tags gyre_verify ./...`).
//
// Grounded on original_source/loki/debug.c and loki/lock.h: the C original
// gates a pthread_mutex around every push/pop behind LOKI_ENABLE_DEBUG_LOCK,
// degrading the lock-free queue to a coarse-grained locked one so property
// tests can diff its behavior against the real algorithm. Never link this
// file into a production build.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gyre

import "sync"

// Verified wraps a Ring and serializes every Push and Pop behind a single
// mutex. It exists only to give property tests a trivially-correct oracle
// to diff the lock-free Ring against under the same interleavings; it is
// not part of the production contract described in doc.go.
type Verified[T any] struct {
	mu   sync.Mutex
	ring *Ring[T]
}

// NewVerified wraps an existing Ring for serialized access.
func NewVerified[T any](r *Ring[T]) *Verified[T] {
	return &Verified[T]{ring: r}
}

func (v *Verified[T]) Push(src []T, flags Flags) (n uint32, freeRemain uint32, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ring.Push(src, flags)
}

func (v *Verified[T]) Pop(dst []T, flags Flags) (n uint32, readyRemain uint32, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ring.Pop(dst, flags)
}

func (v *Verified[T]) Ready() uint32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ring.Ready()
}

func (v *Verified[T]) Free() uint32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ring.Free()
}
