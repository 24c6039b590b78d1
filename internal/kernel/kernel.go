// Package kernel provides the sample arithmetic shared by every border
// synthesizer: clamped linear interpolation, rounded weighted sums and the
// small Gaussian used for seam smoothing.
//
// Arithmetic is selected once per plane through Arith, so the inner loops
// of the synthesizers carry no per-sample branching on representation.
package kernel

import (
	"math"

	"github.com/gogpu/fillborders/plane"
)

// Arith is the per-representation arithmetic for samples of type T.
type Arith[T plane.Sample] interface {
	// Lerp blends fill and src at fractional position pos/span:
	// pos <= 0 yields src, pos >= span yields fill.
	Lerp(fill, src T, pos, span int) T

	// Blend3 is the weighted mean (wp*p + wc*c + wn*n) / (wp+wc+wn),
	// rounded half up for integer samples.
	Blend3(p, c, n T, wp, wc, wn int) T

	// ToFloat widens a sample for convolution.
	ToFloat(v T) float64

	// FromFloat narrows a convolution result, rounding half up for
	// integer samples and clamping to the plane range.
	FromFloat(v float64) T
}

// For returns the arithmetic for T at the given bit depth and plane
// category. bits is ignored for float32.
func For[T plane.Sample](bits int, cat plane.Category) Arith[T] {
	var zero T
	var a any
	switch any(zero).(type) {
	case uint8:
		a = NewInt[uint8](8)
	case uint16:
		a = NewInt[uint16](bits)
	default:
		a = NewFloat(cat)
	}
	return a.(Arith[T])
}

// Int is the arithmetic for unsigned integer samples of a given bit depth.
// Intermediate values use an int64 accumulator.
type Int[T plane.Integer] struct {
	bits uint
	max  int64
}

// NewInt returns integer arithmetic for samples of the given bit depth.
func NewInt[T plane.Integer](bits int) Int[T] {
	return Int[T]{bits: uint(bits), max: 1<<bits - 1}
}

// Max returns the largest representable sample value.
func (a Int[T]) Max() int64 { return a.max }

// Lerp computes ((fill<<b)*pos + (src<<b)*(span-pos)) / span, then drops
// the b extra fraction bits.
func (a Int[T]) Lerp(fill, src T, pos, span int) T {
	if pos <= 0 || span <= 0 {
		return src
	}
	if pos >= span {
		return fill
	}
	acc := (int64(fill)<<a.bits)*int64(pos) + (int64(src)<<a.bits)*int64(span-pos)
	v := (acc / int64(span)) >> a.bits
	return T(clamp64(v, 0, a.max))
}

// Blend3 implements Arith.
func (a Int[T]) Blend3(p, c, n T, wp, wc, wn int) T {
	div := int64(wp + wc + wn)
	sum := int64(wp)*int64(p) + int64(wc)*int64(c) + int64(wn)*int64(n)
	return T(clamp64((sum+div/2)/div, 0, a.max))
}

// ToFloat implements Arith.
func (a Int[T]) ToFloat(v T) float64 { return float64(v) }

// FromFloat implements Arith.
func (a Int[T]) FromFloat(v float64) T {
	r := math.Floor(v + 0.5)
	if r <= 0 {
		return 0
	}
	if r >= float64(a.max) {
		return T(a.max)
	}
	return T(r)
}

// Float is the arithmetic for float32 samples bounded to [Lo, Hi].
type Float struct {
	Lo float32
	Hi float32
}

// NewFloat returns float arithmetic for a plane category: [-0.5, 0.5]
// for chroma, [0, 1] otherwise.
func NewFloat(cat plane.Category) Float {
	if cat == plane.CategoryChroma {
		return Float{Lo: -0.5, Hi: 0.5}
	}
	return Float{Lo: 0, Hi: 1}
}

// Lerp implements Arith.
func (a Float) Lerp(fill, src float32, pos, span int) float32 {
	if pos <= 0 || span <= 0 {
		return src
	}
	if pos >= span {
		return fill
	}
	v := (float64(fill)*float64(pos) + float64(src)*float64(span-pos)) / float64(span)
	return a.clamp(float32(v))
}

// Blend3 implements Arith.
func (a Float) Blend3(p, c, n float32, wp, wc, wn int) float32 {
	div := float64(wp + wc + wn)
	return float32((float64(wp)*float64(p) + float64(wc)*float64(c) + float64(wn)*float64(n)) / div)
}

// ToFloat implements Arith.
func (a Float) ToFloat(v float32) float64 { return float64(v) }

// FromFloat implements Arith.
func (a Float) FromFloat(v float64) float32 { return a.clamp(float32(v)) }

func (a Float) clamp(v float32) float32 {
	return min(max(v, a.Lo), a.Hi)
}

func clamp64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
