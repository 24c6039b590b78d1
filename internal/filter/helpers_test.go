package filter

import (
	"testing"

	"github.com/gogpu/fillborders/plane"
)

// Test helper functions shared across filter tests.

// rowPlane creates a single-row plane holding vals.
func rowPlane[T plane.Sample](t *testing.T, vals []T) *plane.Plane[T] {
	t.Helper()
	p, err := plane.New[T](len(vals), 1)
	if err != nil {
		t.Fatalf("plane.New() error = %v", err)
	}
	copy(p.Row(0), vals)
	return p
}

func mustTransient(t *testing.T, size int, s Smoothing) Transient {
	t.Helper()
	tr, err := NewTransient(size, s)
	if err != nil {
		t.Fatalf("NewTransient(%d, %v) error = %v", size, s, err)
	}
	return tr
}
