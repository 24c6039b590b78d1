package fillborders

import (
	"fmt"

	"github.com/gogpu/fillborders/internal/border"
	"github.com/gogpu/fillborders/internal/filter"
	"github.com/gogpu/fillborders/internal/kernel"
	"github.com/gogpu/fillborders/internal/synth"
	"github.com/gogpu/fillborders/plane"
)

// Filter fills the borders of frames of one format.
//
// A Filter is immutable after New and safe for concurrent use, as long as
// concurrent calls write to distinct destination frames.
type Filter[T plane.Sample] struct {
	format     plane.Format
	mode       Mode
	interlaced bool
	transient  filter.Transient
	planes     []planeConfig[T]
}

// planeConfig is the resolved configuration of one plane.
type planeConfig[T plane.Sample] struct {
	handling Handling
	borders  border.Set
	params   synth.Params[T]
}

// New validates the configuration against format and returns a Filter.
// T must match format.Sample.
func New[T plane.Sample](format plane.Format, opts ...Option) (*Filter[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("fillborders: %w", err)
	}
	if got := plane.SampleTypeOf[T](); got != format.Sample {
		return nil, fmt.Errorf("%w: %s storage for %s", ErrSampleType, got, format)
	}
	if !o.mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(o.mode))
	}

	n := format.NumPlanes()
	if len(o.handling) > n {
		return nil, fmt.Errorf("%w: %d values for %d planes", ErrInvalidHandling, len(o.handling), n)
	}
	for i, h := range o.handling {
		if !h.Valid() {
			return nil, fmt.Errorf("%w: plane %d: %d", ErrInvalidHandling, i, int(h))
		}
	}

	tr, err := filter.NewTransient(o.transient, o.smoothing)
	if err != nil {
		return nil, fmt.Errorf("fillborders: %w", err)
	}
	if tr.Enabled() && o.mode != ModeWrap {
		Logger().Warn("fillborders: transient ignored outside wrap mode",
			"mode", o.mode, "size", tr.Size)
		tr = filter.Transient{}
	}

	arith := make([]kernel.Arith[T], n)
	for i := range arith {
		arith[i] = kernel.For[T](format.Bits, format.Category(i))
	}
	targets, err := fadeTargets(format, &o, arith)
	if err != nil {
		return nil, err
	}
	if targets != nil && o.mode != ModeFade {
		Logger().Warn("fillborders: fade target ignored outside fade mode", "mode", o.mode)
	}

	f := &Filter[T]{
		format:     format,
		mode:       o.mode,
		interlaced: o.interlaced,
		transient:  tr,
		planes:     make([]planeConfig[T], n),
	}

	layout := border.Layout{
		NumPlanes:  n,
		Subsampled: format.Family == plane.FamilyYUV,
		SubW:       format.SubW,
		SubH:       format.SubH,
	}
	for i := range f.planes {
		cfg, err := f.resolvePlane(i, &o, layout, arith[i])
		if err != nil {
			return nil, err
		}
		if targets != nil {
			cfg.params.Target = targets[i]
			cfg.params.HasTarget = true
		}
		f.planes[i] = cfg
	}
	return f, nil
}

// resolvePlane resolves and checks the borders of plane i.
func (f *Filter[T]) resolvePlane(i int, o *options, layout border.Layout, a kernel.Arith[T]) (planeConfig[T], error) {
	h := HandlingDefault
	if i < len(o.handling) {
		h = o.handling[i]
	}
	h = h.resolve()

	b, err := border.Resolve(o.sides, i, layout)
	if err != nil {
		return planeConfig[T]{}, fmt.Errorf("fillborders: plane %d: %w", i, err)
	}

	cfg := planeConfig[T]{
		handling: h,
		borders:  b,
		params:   synth.Params[T]{Borders: b, Arith: a},
	}
	if h != HandlingProcess {
		Logger().Debug("fillborders: plane configured", "plane", i, "handling", h)
		return cfg, nil
	}

	w, ht := f.format.PlaneSize(i)
	if err := b.Check(w, ht, f.mode.Fit()); err != nil {
		return planeConfig[T]{}, fmt.Errorf("fillborders: plane %d: %w", i, err)
	}
	if err := f.transient.Check(b, w, ht); err != nil {
		return planeConfig[T]{}, fmt.Errorf("fillborders: plane %d: %w", i, err)
	}
	if f.interlaced {
		for parity := range 2 {
			fb := b.Field(ht, parity)
			fh := plane.FieldLines(ht, parity)
			if err := fb.Check(w, fh, f.mode.Fit()); err != nil {
				return planeConfig[T]{}, fmt.Errorf("fillborders: plane %d field %d: %w", i, parity, err)
			}
			if err := f.transient.Check(fb, w, fh); err != nil {
				return planeConfig[T]{}, fmt.Errorf("fillborders: plane %d field %d: %w", i, parity, err)
			}
		}
	}

	Logger().Debug("fillborders: plane configured",
		"plane", i,
		"handling", h,
		"category", f.format.Category(i),
		"size", fmt.Sprintf("%dx%d", w, ht),
		"borders", b.String(),
		"mode", f.mode)
	return cfg, nil
}

// Format returns the format the filter was built for.
func (f *Filter[T]) Format() plane.Format { return f.format }

// Mode returns the synthesis mode.
func (f *Filter[T]) Mode() Mode { return f.mode }

// Borders returns the resolved borders of plane i.
func (f *Filter[T]) Borders(i int) Borders { return f.planes[i].borders }

// Handling returns the resolved handling of plane i.
func (f *Filter[T]) Handling(i int) Handling { return f.planes[i].handling }

// Borders holds the margin sizes of one plane.
type Borders = border.Set

// Process fills the borders of src into dst. Planes set to HandlingCopy
// or HandlingProcess are copied from src first; src and dst may be the same
// frame. Planes set to HandlingSkip are left untouched in dst.
func (f *Filter[T]) Process(src, dst *plane.Frame[T]) error {
	if err := f.checkFrame(src); err != nil {
		return fmt.Errorf("fillborders: source: %w", err)
	}
	if err := f.checkFrame(dst); err != nil {
		return fmt.Errorf("fillborders: destination: %w", err)
	}
	if src.FieldBased && !f.interlaced {
		return ErrInterlacedFrame
	}

	logger := Logger()
	for i, cfg := range f.planes {
		sp, dp := src.Planes[i], dst.Planes[i]
		switch cfg.handling {
		case HandlingSkip:
			continue
		case HandlingCopy:
			if err := copyPlane(dp, sp); err != nil {
				return fmt.Errorf("fillborders: plane %d: %w", i, err)
			}
			continue
		}

		if err := copyPlane(dp, sp); err != nil {
			return fmt.Errorf("fillborders: plane %d: %w", i, err)
		}
		logger.Debug("fillborders: processing plane",
			"trace_id", src.TraceID, "plane", i, "mode", f.mode, "fields", src.FieldBased)
		if !src.FieldBased {
			f.fill(dp, cfg.params)
			continue
		}
		for parity := range 2 {
			prm := cfg.params
			prm.Borders = cfg.borders.Field(dp.Height, parity)
			f.fill(dp.Field(parity), prm)
		}
	}

	dst.FieldBased = src.FieldBased
	dst.TraceID = src.TraceID
	return nil
}

// fill runs the synthesizer and, for wrap, the seam smoother on one plane
// or field.
func (f *Filter[T]) fill(p *plane.Plane[T], prm synth.Params[T]) {
	// The mode is validated in New.
	_ = synth.Fill(f.mode.synth(), p, prm)
	if f.mode == ModeWrap {
		filter.Smooth(p, prm.Borders, f.transient, prm.Arith)
	}
}

// copyPlane copies src into dst unless both are the same plane.
func copyPlane[T plane.Sample](dst, src *plane.Plane[T]) error {
	if dst == src {
		return nil
	}
	if err := dst.CopyFrom(src); err != nil {
		return fmt.Errorf("%w: %w", ErrFrameMismatch, err)
	}
	return nil
}

func (f *Filter[T]) checkFrame(fr *plane.Frame[T]) error {
	if fr == nil {
		return fmt.Errorf("%w: nil frame", ErrFrameMismatch)
	}
	if fr.Format != f.format {
		return fmt.Errorf("%w: %s, want %s", ErrFrameMismatch, fr.Format, f.format)
	}
	if err := fr.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrFrameMismatch, err)
	}
	return nil
}
