package fillborders

import (
	"testing"

	"github.com/gogpu/fillborders/plane"
)

// Test helper functions shared across package tests.

// newFrame allocates a frame of format and fills plane i with fn(i, x, y).
func newFrame[T plane.Sample](t *testing.T, format plane.Format, fn func(i, x, y int) T) *plane.Frame[T] {
	t.Helper()
	f, err := plane.NewFrame[T](format)
	if err != nil {
		t.Fatalf("NewFrame(%s) error = %v", format, err)
	}
	for i, p := range f.Planes {
		for y := range p.Height {
			row := p.Row(y)
			for x := range row {
				row[x] = fn(i, x, y)
			}
		}
	}
	return f
}

// interior returns fn restricted to the interior of b, with zero margins.
func interior[T plane.Sample](w, h int, b Borders, v func(x, y int) T) func(x, y int) T {
	return func(x, y int) T {
		if x < b.Left || x >= w-b.Right || y < b.Top || y >= h-b.Bottom {
			var zero T
			return zero
		}
		return v(x, y)
	}
}

func mustNew[T plane.Sample](t *testing.T, format plane.Format, opts ...Option) *Filter[T] {
	t.Helper()
	f, err := New[T](format, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}
