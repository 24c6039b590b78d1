package plane

import (
	"errors"
	"fmt"
)

// ErrFrameLayout is returned when a frame's planes disagree with its format.
var ErrFrameLayout = errors.New("plane: frame does not match format")

// Frame is an ordered set of planes sharing one Format.
//
// Plane order is Y, U, V, A for YUV and R, G, B, A for RGB.
type Frame[T Sample] struct {
	Format Format
	Planes []*Plane[T]

	// FieldBased marks a frame that holds two interleaved fields.
	FieldBased bool

	// TraceID correlates log records for this frame. Optional.
	TraceID string
}

// NewFrame allocates a zeroed frame for format.
func NewFrame[T Sample](format Format) (*Frame[T], error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if SampleTypeOf[T]() != format.Sample {
		return nil, fmt.Errorf("%w: %s storage for %s format", ErrInvalidFormat, SampleTypeOf[T](), format.Sample)
	}
	f := &Frame[T]{Format: format, Planes: make([]*Plane[T], format.NumPlanes())}
	for i := range f.Planes {
		w, h := format.PlaneSize(i)
		p, err := New[T](w, h)
		if err != nil {
			return nil, err
		}
		f.Planes[i] = p
	}
	return f, nil
}

// Check verifies plane count and per-plane dimensions against the format.
func (f *Frame[T]) Check() error {
	if len(f.Planes) != f.Format.NumPlanes() {
		return fmt.Errorf("%w: %d planes, want %d", ErrFrameLayout, len(f.Planes), f.Format.NumPlanes())
	}
	for i, p := range f.Planes {
		if p == nil {
			return fmt.Errorf("%w: plane %d is nil", ErrFrameLayout, i)
		}
		w, h := f.Format.PlaneSize(i)
		if p.Width != w || p.Height != h {
			return fmt.Errorf("%w: plane %d is %dx%d, want %dx%d", ErrFrameLayout, i, p.Width, p.Height, w, h)
		}
	}
	return nil
}

// Clone returns a deep copy of the frame.
func (f *Frame[T]) Clone() *Frame[T] {
	c := &Frame[T]{
		Format:     f.Format,
		Planes:     make([]*Plane[T], len(f.Planes)),
		FieldBased: f.FieldBased,
		TraceID:    f.TraceID,
	}
	for i, p := range f.Planes {
		c.Planes[i] = p.Clone()
	}
	return c
}
