// ring_test.go: single-threaded scenarios from spec.md section 8
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gyre

import (
	"errors"
	"testing"
)

func TestNewRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name     string
		capacity uint32
	}{
		{"zero capacity", 0},
		{"not power of two", 3},
		{"not power of two larger", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New[int32](tt.capacity); !errors.Is(err, ErrInvalid) {
				t.Fatalf("New(%d) = %v, want ErrInvalid", tt.capacity, err)
			}
		})
	}

	t.Run("zero-sized element type", func(t *testing.T) {
		if _, err := New[struct{}](4); !errors.Is(err, ErrInvalid) {
			t.Fatalf("New[struct{}](4) = %v, want ErrInvalid", err)
		}
	})

	t.Run("accepts valid capacity and element", func(t *testing.T) {
		r, err := New[int32](4)
		if err != nil {
			t.Fatalf("New(4) = %v, want nil error", err)
		}
		defer r.Close()
		if got := r.Capacity(); got != 4 {
			t.Fatalf("Capacity() = %d, want 4", got)
		}
	})
}

func TestSingleThreadRoundTrip(t *testing.T) {
	r, err := New[int32](8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	n, _, err := r.Push([]int32{10, 20, 30}, 0)
	if err != nil || n != 3 {
		t.Fatalf("Push = (%d, %v), want (3, nil)", n, err)
	}

	dst := make([]int32, 3)
	n, _, err = r.Pop(dst, 0)
	if err != nil || n != 3 {
		t.Fatalf("Pop = (%d, %v), want (3, nil)", n, err)
	}
	want := []int32{10, 20, 30}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
	if got := r.Ready(); got != 0 {
		t.Fatalf("Ready() = %d, want 0", got)
	}
}

func TestFillAndOverflow(t *testing.T) {
	r, err := New[int32](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	n, _, err := r.Push([]int32{1, 2, 3}, 0)
	if err != nil || n != 3 {
		t.Fatalf("Push([1,2,3]) = (%d, %v), want (3, nil)", n, err)
	}

	if n, _, err := r.Push([]int32{4}, 0); n != 0 || !errors.Is(err, ErrAgain) {
		t.Fatalf("Push([4]) without FlagSomeData = (%d, %v), want (0, ErrAgain)", n, err)
	}
	if got := r.Ready(); got != 3 {
		t.Fatalf("Ready() = %d, want 3 (ring must be unchanged after a failed push)", got)
	}

	if n, _, err := r.Push([]int32{4}, FlagSomeData); n != 0 || !errors.Is(err, ErrAgain) {
		t.Fatalf("Push([4], FlagSomeData) with free=0 = (%d, %v), want (0, ErrAgain)", n, err)
	}

	dst := make([]int32, 2)
	n, _, err = r.Pop(dst, 0)
	if err != nil || n != 2 {
		t.Fatalf("Pop(2) = (%d, %v), want (2, nil)", n, err)
	}
	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("Pop(2) = %v, want [1 2]", dst)
	}

	n, _, err = r.Push([]int32{4}, 0)
	if err != nil || n != 1 {
		t.Fatalf("Push([4]) after freeing space = (%d, %v), want (1, nil)", n, err)
	}
}

func TestPartialAccept(t *testing.T) {
	r, err := New[int32](8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	n, _, err := r.Push([]int32{1, 2, 3, 4, 5}, 0)
	if err != nil || n != 5 {
		t.Fatalf("Push(5 items) = (%d, %v), want (5, nil)", n, err)
	}

	n, freeRemain, err := r.Push([]int32{10, 20, 30, 40}, FlagSomeData)
	if err != nil {
		t.Fatalf("Push(4 items, FlagSomeData) error = %v, want nil", err)
	}
	if n != 2 {
		t.Fatalf("Push(4 items, FlagSomeData) = %d, want 2 (only 2 slots free)", n)
	}
	if freeRemain != 0 {
		t.Fatalf("freeRemain = %d, want 0", freeRemain)
	}

	if n, _, err := r.Push([]int32{1}, 0); n != 0 || !errors.Is(err, ErrAgain) {
		t.Fatalf("Push without FlagSomeData on a full ring = (%d, %v), want (0, ErrAgain)", n, err)
	}
}

func TestPopFromEmptyRing(t *testing.T) {
	r, err := New[int32](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	dst := make([]int32, 1)
	if n, _, err := r.Pop(dst, 0); n != 0 || !errors.Is(err, ErrAgain) {
		t.Fatalf("Pop from empty ring = (%d, %v), want (0, ErrAgain)", n, err)
	}
}

func TestPushPopZeroLenIsInvalid(t *testing.T) {
	r, err := New[int32](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	if _, _, err := r.Push(nil, 0); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Push(nil) err = %v, want ErrInvalid", err)
	}
	if _, _, err := r.Pop(nil, 0); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Pop(nil) err = %v, want ErrInvalid", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	r, err := New[int32](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("first Close() = %v, want nil", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close() = %v, want nil", err)
	}
}

func TestOpErrorUnwraps(t *testing.T) {
	r, _ := New[int32](4)
	defer r.Close()

	_, _, err := r.Pop(make([]int32, 1), 0)
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("errors.As(%v, *OpError) = false, want true", err)
	}
	if opErr.Op != "pop" {
		t.Fatalf("OpError.Op = %q, want %q", opErr.Op, "pop")
	}
}

func TestStats(t *testing.T) {
	r, err := New[int32](8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	if _, _, err := r.Push([]int32{1, 2}, 0); err != nil {
		t.Fatalf("Push: %v", err)
	}
	stats := r.Stats()
	if stats.Ready != 2 {
		t.Fatalf("Stats().Ready = %d, want 2", stats.Ready)
	}
	if stats.Capacity != 8 {
		t.Fatalf("Stats().Capacity = %d, want 8", stats.Capacity)
	}
	if stats.LastPushAt.IsZero() {
		t.Fatalf("Stats().LastPushAt is zero, want a recorded push time")
	}
	if !stats.LastPopAt.IsZero() {
		t.Fatalf("Stats().LastPopAt = %v, want zero before any Pop", stats.LastPopAt)
	}
}

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"1024", 1024, false},
		{"1Ki", 1024, false},
		{"64Ki", 65536, false},
		{"4Mi", 4 * 1024 * 1024, false},
		{"", 0, true},
		{"7Xi", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCapacity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCapacity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseCapacity(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
