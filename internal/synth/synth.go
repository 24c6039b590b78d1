// Package synth implements the border synthesizers.
//
// Every synthesizer works in place on one plane whose interior has already
// been copied from the source. Synthesizers read samples they or an
// earlier pass have written; each one documents the order it relies on.
// Indices are clamped into the plane, so a synthesizer never reads or
// writes outside it even for borders that leave no interior.
package synth

import (
	"errors"
	"fmt"

	"github.com/gogpu/fillborders/internal/border"
	"github.com/gogpu/fillborders/internal/kernel"
	"github.com/gogpu/fillborders/plane"
)

// ErrUnknownMode is returned by Fill for a mode outside the table.
var ErrUnknownMode = errors.New("synth: unknown mode")

// Mode selects a synthesizer.
type Mode uint8

const (
	// Margins replicates edge samples sideways and fills top and bottom
	// margins with a 3-2-3 weighted average of the adjacent row.
	Margins Mode = iota

	// Repeat replicates the nearest interior sample or row.
	Repeat

	// Mirror reflects the interior about the boundary, excluding the
	// boundary sample.
	Mirror

	// Reflect reflects the interior about the boundary sample.
	Reflect

	// Wrap copies from the opposite side of the interior.
	Wrap

	// Fade blends from the interior edge toward a target.
	Fade

	// FixBorders picks one of three directional blends per sample.
	FixBorders

	// Count is the number of modes.
	Count
)

var modeNames = [Count]string{
	Margins:    "margins",
	Repeat:     "repeat",
	Mirror:     "mirror",
	Reflect:    "reflect",
	Wrap:       "wrap",
	Fade:       "fade",
	FixBorders: "fixborders",
}

func (m Mode) String() string {
	if m < Count {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Fit returns the border fit rule of m.
func (m Mode) Fit() border.Fit {
	switch m {
	case Mirror:
		return border.FitSymmetric
	case Reflect:
		return border.FitSymmetricStrict
	default:
		return border.FitAdditive
	}
}

// Params carries the per-plane inputs of a synthesizer.
type Params[T plane.Sample] struct {
	Borders border.Set
	Arith   kernel.Arith[T]

	// Target is the Fade constant, used when HasTarget is set.
	Target    T
	HasTarget bool
}

// Func is the signature shared by all synthesizers.
type Func[T plane.Sample] func(p *plane.Plane[T], prm Params[T])

// Table returns the synthesizers indexed by Mode.
func Table[T plane.Sample]() [Count]Func[T] {
	return [Count]Func[T]{
		Margins:    fillMargins[T],
		Repeat:     repeat[T],
		Mirror:     mirror[T],
		Reflect:    reflect[T],
		Wrap:       wrap[T],
		Fade:       fade[T],
		FixBorders: fixBorders[T],
	}
}

// Fill runs the synthesizer for m on p.
func Fill[T plane.Sample](m Mode, p *plane.Plane[T], prm Params[T]) error {
	if m >= Count {
		return fmt.Errorf("%w: %d", ErrUnknownMode, m)
	}
	if p.Width == 0 || p.Height == 0 || prm.Borders.IsZero() {
		return nil
	}
	Table[T]()[m](p, prm)
	return nil
}

// clampIndex clamps i into [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// clampInterior clamps i into [lo, hi], falling back to [0, n) when the
// interior is empty.
func clampInterior(i, lo, hi, n int) int {
	if hi < lo {
		return clampIndex(i, n)
	}
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

// flatSides fills the left and right margins of the interior rows with the
// nearest interior sample.
func flatSides[T plane.Sample](p *plane.Plane[T], b border.Set) {
	w := p.Width
	for y := b.Top; y < p.Height-b.Bottom; y++ {
		row := p.Row(y)
		if b.Left > 0 {
			v := row[clampIndex(b.Left, w)]
			for x := range b.Left {
				row[x] = v
			}
		}
		if b.Right > 0 {
			v := row[clampIndex(w-b.Right-1, w)]
			for x := w - b.Right; x < w; x++ {
				row[x] = v
			}
		}
	}
}

// copyRow copies row src over row dst unless they are the same row.
func copyRow[T plane.Sample](p *plane.Plane[T], dst, src int) {
	if dst != src {
		copy(p.Row(dst), p.Row(src))
	}
}
