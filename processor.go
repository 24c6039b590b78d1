package fillborders

import (
	"github.com/gogpu/fillborders/internal/cache"
	"github.com/gogpu/fillborders/plane"
)

// DefaultProcessorFormats is the number of formats a Processor keeps
// configured filters for.
const DefaultProcessorFormats = 16

// Processor fills frames whose format is only known per frame, such as
// images of varying size. It builds one Filter per format with the same
// options and keeps the most recently used ones.
//
// Processor is safe for concurrent use.
type Processor[T plane.Sample] struct {
	opts    []Option
	filters *cache.Cache[plane.Format, *Filter[T]]
}

// NewProcessor returns a Processor that configures filters with opts.
// Configuration errors surface on the first frame of a format.
func NewProcessor[T plane.Sample](opts ...Option) *Processor[T] {
	return &Processor[T]{
		opts:    append([]Option(nil), opts...),
		filters: cache.New[plane.Format, *Filter[T]](DefaultProcessorFormats),
	}
}

// Filter returns the filter for format, building it on first use.
func (p *Processor[T]) Filter(format plane.Format) (*Filter[T], error) {
	return p.filters.GetOrCreate(format, func() (*Filter[T], error) {
		Logger().Debug("fillborders: configuring format", "format", format)
		return New[T](format, p.opts...)
	})
}

// Process fills src into dst with the filter for src's format.
func (p *Processor[T]) Process(src, dst *plane.Frame[T]) error {
	if src == nil {
		return ErrFrameMismatch
	}
	f, err := p.Filter(src.Format)
	if err != nil {
		return err
	}
	return f.Process(src, dst)
}

// Formats returns how many configured filters are cached.
func (p *Processor[T]) Formats() int {
	return p.filters.Len()
}

// ProcessorStats reports how well a Processor reuses its filters.
type ProcessorStats struct {
	// Formats is the number of cached filters.
	Formats int

	// Hits and Misses count frames whose filter was found or had to be
	// built. A failed configuration counts as a miss every time.
	Hits   uint64
	Misses uint64

	// Evictions counts filters dropped to stay within
	// DefaultProcessorFormats.
	Evictions uint64
}

// Stats returns the filter cache statistics.
func (p *Processor[T]) Stats() ProcessorStats {
	s := p.filters.Stats()
	return ProcessorStats{
		Formats:   s.Len,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}
