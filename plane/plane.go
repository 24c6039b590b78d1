// Package plane provides strided single-component sample buffers and the
// frame and format descriptions that group them.
//
// A Plane is a view: it never owns more than the slice it was given, and
// field views of an interlaced plane share the parent's storage.
package plane

import "errors"

// Common errors for plane operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("plane: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than width.
	ErrInvalidStride = errors.New("plane: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("plane: data buffer too small")

	// ErrSizeMismatch is returned when two planes do not share dimensions.
	ErrSizeMismatch = errors.New("plane: size mismatch")
)

// DefaultAlign is the row alignment, in samples, used by New.
const DefaultAlign = 16

// Plane is a 2-D grid of samples with a row stride.
//
// Thread safety: Plane is safe for concurrent reads. Writers need external
// synchronization.
type Plane[T Sample] struct {
	// Data holds the samples; row y starts at Data[y*Stride].
	Data []T

	// Width and Height are the visible dimensions in samples.
	Width  int
	Height int

	// Stride is the distance between rows in samples (>= Width).
	Stride int
}

// New allocates a zeroed plane whose stride is Width rounded up to
// DefaultAlign samples.
func New[T Sample](width, height int) (*Plane[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	stride := (width + DefaultAlign - 1) / DefaultAlign * DefaultAlign
	return &Plane[T]{
		Data:   make([]T, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
	}, nil
}

// FromData wraps existing samples without copying.
// The caller must keep data valid for the lifetime of the plane.
func FromData[T Sample](data []T, width, height, stride int) (*Plane[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	if height > 0 && len(data) < (height-1)*stride+width {
		return nil, ErrDataTooSmall
	}
	return &Plane[T]{
		Data:   data,
		Width:  width,
		Height: height,
		Stride: stride,
	}, nil
}

// Row returns the visible samples of row y, or nil if y is out of range.
func (p *Plane[T]) Row(y int) []T {
	if y < 0 || y >= p.Height {
		return nil
	}
	start := y * p.Stride
	return p.Data[start : start+p.Width : start+p.Width]
}

// At returns the sample at (x, y). Out-of-range coordinates return zero.
func (p *Plane[T]) At(x, y int) T {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		var zero T
		return zero
	}
	return p.Data[y*p.Stride+x]
}

// Set stores v at (x, y). Out-of-range coordinates are ignored.
func (p *Plane[T]) Set(x, y int, v T) {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return
	}
	p.Data[y*p.Stride+x] = v
}

// Fill sets every visible sample to v.
func (p *Plane[T]) Fill(v T) {
	for y := range p.Height {
		row := p.Row(y)
		for x := range row {
			row[x] = v
		}
	}
}

// CopyFrom copies the visible samples of src row by row.
// Strides may differ; dimensions must match.
func (p *Plane[T]) CopyFrom(src *Plane[T]) error {
	if src.Width != p.Width || src.Height != p.Height {
		return ErrSizeMismatch
	}
	for y := range p.Height {
		copy(p.Row(y), src.Row(y))
	}
	return nil
}

// Clone returns a deep copy with the same stride.
func (p *Plane[T]) Clone() *Plane[T] {
	data := make([]T, len(p.Data))
	copy(data, p.Data)
	return &Plane[T]{
		Data:   data,
		Width:  p.Width,
		Height: p.Height,
		Stride: p.Stride,
	}
}

// Equal reports whether both planes hold identical visible samples.
func (p *Plane[T]) Equal(o *Plane[T]) bool {
	if p.Width != o.Width || p.Height != o.Height {
		return false
	}
	for y := range p.Height {
		a, b := p.Row(y), o.Row(y)
		for x := range a {
			if a[x] != b[x] {
				return false
			}
		}
	}
	return true
}

// Field returns a view of every other row starting at row parity (0 or 1).
// The view shares storage with p.
func (p *Plane[T]) Field(parity int) *Plane[T] {
	h := FieldLines(p.Height, parity)
	if h == 0 {
		return &Plane[T]{Width: p.Width, Stride: p.Stride * 2}
	}
	return &Plane[T]{
		Data:   p.Data[parity*p.Stride:],
		Width:  p.Width,
		Height: h,
		Stride: p.Stride * 2,
	}
}

// FieldLines returns how many of the rows [0, n) have the given parity.
func FieldLines(n, parity int) int {
	if n <= parity {
		return 0
	}
	return (n - parity + 1) / 2
}
