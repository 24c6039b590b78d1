package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/fillborders/internal/border"
	"github.com/gogpu/fillborders/internal/kernel"
	"github.com/gogpu/fillborders/plane"
)

// MaxTaps bounds the smoothing window, which spans 2*Size samples.
const MaxTaps = 64

// Sigma is the standard deviation of the seam kernel.
const Sigma = 1.0

// Transient errors.
var (
	// ErrTooBig is returned when the transient does not fit the tap
	// budget, a border or the interior.
	ErrTooBig = errors.New("filter: transient too big")

	// ErrSmoothing is returned for an unknown smoothing variant.
	ErrSmoothing = errors.New("filter: unknown smoothing")
)

// Smoothing selects how the seam band is recomputed.
type Smoothing uint8

const (
	// Linear blends the wrapped samples toward the first interior sample.
	Linear Smoothing = iota

	// Gauss convolves across the seam and writes the margin half.
	Gauss

	// GaussDestructive convolves across the seam and writes both halves.
	GaussDestructive

	smoothingCount
)

// String returns the smoothing name.
func (s Smoothing) String() string {
	switch s {
	case Linear:
		return "linear"
	case Gauss:
		return "gauss"
	case GaussDestructive:
		return "gauss-destructive"
	default:
		return fmt.Sprintf("Smoothing(%d)", uint8(s))
	}
}

// Transient is an immutable smoothing configuration.
type Transient struct {
	// Size is the band width on each side of the seam; 0 disables.
	Size int

	Smoothing Smoothing

	// Kernel is the normalized seam kernel.
	Kernel [kernel.Taps]float64
}

// NewTransient validates size and smoothing and builds the kernel.
func NewTransient(size int, s Smoothing) (Transient, error) {
	if s >= smoothingCount {
		return Transient{}, fmt.Errorf("%w: %d", ErrSmoothing, s)
	}
	if size < 0 || 2*size > MaxTaps {
		return Transient{}, fmt.Errorf("%w: size %d, window limit %d", ErrTooBig, size, MaxTaps)
	}
	return Transient{
		Size:      size,
		Smoothing: s,
		Kernel:    kernel.Gaussian5(Sigma),
	}, nil
}

// Enabled reports whether the transient does anything.
func (t Transient) Enabled() bool { return t.Size > 0 }

// Check verifies that the transient fits every non-zero border of b and
// the interior of a width x height plane on that axis.
func (t Transient) Check(b border.Set, width, height int) error {
	if !t.Enabled() {
		return nil
	}
	sides := [4]struct {
		name   string
		size   int
		extent int
	}{
		{"left", b.Left, width - b.Left - b.Right},
		{"top", b.Top, height - b.Top - b.Bottom},
		{"right", b.Right, width - b.Left - b.Right},
		{"bottom", b.Bottom, height - b.Top - b.Bottom},
	}
	for _, s := range sides {
		if s.size == 0 {
			continue
		}
		if t.Size > s.size {
			return fmt.Errorf("%w: size %d exceeds %s border %d", ErrTooBig, t.Size, s.name, s.size)
		}
		if t.Size > s.extent {
			return fmt.Errorf("%w: size %d exceeds interior %d next to %s border", ErrTooBig, t.Size, s.extent, s.name)
		}
	}
	return nil
}

// Smooth applies t to the seams of p left by borders b.
// Sides whose border is zero or narrower than t.Size are left alone.
func Smooth[T plane.Sample](p *plane.Plane[T], b border.Set, t Transient, a kernel.Arith[T]) {
	if !t.Enabled() || p.Width == 0 || p.Height == 0 {
		return
	}
	for y := range p.Height {
		l := line[T]{data: p.Data, off: y * p.Stride, step: 1, n: p.Width}
		smoothLine(l, b.Left, b.Right, t, a)
	}
	for x := range p.Width {
		l := line[T]{data: p.Data, off: x, step: p.Stride, n: p.Height}
		smoothLine(l, b.Top, b.Bottom, t, a)
	}
}

// line is a strided run of n samples: a row (step 1) or a column.
type line[T plane.Sample] struct {
	data []T
	off  int
	step int
	n    int
}

// at reads sample i, clamped to the line.
func (l line[T]) at(i int) T {
	i = min(max(i, 0), l.n-1)
	return l.data[l.off+i*l.step]
}

func (l line[T]) set(i int, v T) {
	if i >= 0 && i < l.n {
		l.data[l.off+i*l.step] = v
	}
}

// smoothLine handles the low seam at index lo and the high seam at n-hi.
func smoothLine[T plane.Sample](l line[T], lo, hi int, t Transient, a kernel.Arith[T]) {
	ts := t.Size
	if lo > 0 && lo >= ts {
		if t.Smoothing == Linear {
			linear(l, lo, -1, ts, a)
		} else {
			gauss(l, lo, true, t, a)
		}
	}
	if hi > 0 && hi >= ts {
		if t.Smoothing == Linear {
			linear(l, l.n-hi-1, 1, ts, a)
		} else {
			gauss(l, l.n-hi, false, t, a)
		}
	}
}

// linear rewrites the ts margin samples stepping outward from anchor.
func linear[T plane.Sample](l line[T], anchor, dir, ts int, a kernel.Arith[T]) {
	ref := l.at(anchor)
	for i := 1; i <= ts; i++ {
		pos := anchor + dir*i
		l.set(pos, a.Lerp(l.at(pos), ref, i, ts+1))
	}
}

// gauss convolves the 2*ts window [seam-ts, seam+ts). low marks the
// margin as lying below the seam.
func gauss[T plane.Sample](l line[T], seam int, low bool, t Transient, a kernel.Arith[T]) {
	const half = kernel.Taps / 2
	var buf [MaxTaps + kernel.Taps - 1]float64

	ts := t.Size
	start := seam - ts
	for k := range 2*ts + 2*half {
		buf[k] = a.ToFloat(l.at(start - half + k))
	}

	from, to := 0, 2*ts
	if t.Smoothing == Gauss {
		if low {
			to = ts
		} else {
			from = ts
		}
	}
	for j := from; j < to; j++ {
		sum := 0.0
		for m, w := range t.Kernel {
			sum += w * buf[j+m]
		}
		l.set(start+j, a.FromFloat(sum))
	}
}
