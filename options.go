package fillborders

import (
	"github.com/gogpu/fillborders/internal/border"
	"github.com/gogpu/fillborders/internal/filter"
)

// Smoothing selects how ModeWrap softens the seam.
type Smoothing = filter.Smoothing

// Smoothing variants.
const (
	SmoothLinear           = filter.Linear
	SmoothGauss            = filter.Gauss
	SmoothGaussDestructive = filter.GaussDestructive
)

// MaxTransient is the largest transient size WithTransient accepts.
const MaxTransient = filter.MaxTaps / 2

// Option configures a Filter during creation.
// Use functional options to customize Filter behavior.
//
// Example:
//
//	// Repeat mode, no borders (identity)
//	f, err := fillborders.New[uint8](format)
//
//	// Wrap with a 4-sample Gaussian seam
//	f, err := fillborders.New[uint16](format,
//	    fillborders.WithMode(fillborders.ModeWrap),
//	    fillborders.WithBorders([]int{8}, nil, []int{8}, nil),
//	    fillborders.WithTransient(4, fillborders.SmoothGauss))
type Option func(*options)

// options holds optional configuration for Filter creation.
type options struct {
	mode       Mode
	sides      border.Sides
	handling   []Handling
	transient  int
	smoothing  Smoothing
	fadeInts   []int
	fadeFloats []float64
	interlaced bool
}

// defaultOptions returns the default filter options.
func defaultOptions() options {
	return options{
		mode:      ModeRepeat,
		smoothing: SmoothLinear,
	}
}

// WithMode sets the synthesis mode. The default is ModeRepeat.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithBorders sets the margin sizes per side. Each side takes zero to four
// values; see the package documentation for how they map to planes.
func WithBorders(left, top, right, bottom []int) Option {
	return func(o *options) {
		o.sides = border.Sides{Left: left, Top: top, Right: right, Bottom: bottom}
	}
}

// WithUniformBorders sets one value per side for every plane, shifted on
// subsampled chroma.
func WithUniformBorders(left, top, right, bottom int) Option {
	return func(o *options) {
		o.sides = border.Uniform(left, top, right, bottom)
	}
}

// WithHandling sets the handling of planes 0 to 3 in order. Planes without
// a value are processed.
func WithHandling(h ...Handling) Option {
	return func(o *options) {
		o.handling = append([]Handling(nil), h...)
	}
}

// WithTransient enables seam smoothing for ModeWrap. size is the band
// width on each side of the seam, at most MaxTransient. It is ignored,
// with a warning, in other modes.
func WithTransient(size int, s Smoothing) Option {
	return func(o *options) {
		o.transient = size
		o.smoothing = s
	}
}

// WithFadeTargetInt sets the ModeFade target for integer formats, one
// value for every plane or one per plane. Values are pre-scaled to the
// plane's bit depth: they are clamped to [0, 2^bits-1] and never
// rescaled, so mid-grey is 512 for a 10-bit format.
func WithFadeTargetInt(v ...int) Option {
	return func(o *options) {
		o.fadeInts = append([]int(nil), v...)
	}
}

// WithFadeTargetFloat sets the ModeFade target for float formats, one
// value for every plane or one per plane. Chroma is centred on zero.
func WithFadeTargetFloat(v ...float64) Option {
	return func(o *options) {
		o.fadeFloats = append([]float64(nil), v...)
	}
}

// WithInterlaced makes the filter accept field-based frames, processing
// each field separately.
func WithInterlaced(on bool) Option {
	return func(o *options) {
		o.interlaced = on
	}
}
