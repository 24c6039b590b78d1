package fillborders

import (
	"errors"

	"github.com/gogpu/fillborders/internal/border"
	"github.com/gogpu/fillborders/internal/filter"
)

// Configuration errors, returned by New before any frame is touched.
var (
	// ErrInvalidMode is returned for a mode outside the seven defined.
	ErrInvalidMode = errors.New("fillborders: invalid mode")

	// ErrInvalidHandling is returned for a plane handling value out of
	// range or for more handling values than planes.
	ErrInvalidHandling = errors.New("fillborders: invalid plane handling")

	// ErrFadeTarget is returned when fade targets do not match the plane
	// count or the sample representation.
	ErrFadeTarget = errors.New("fillborders: invalid fade target")

	// ErrSampleType is returned when T does not match the format's
	// sample type.
	ErrSampleType = errors.New("fillborders: storage type does not match format")

	// ErrNegativeBorder is returned when a border resolves negative.
	ErrNegativeBorder = border.ErrNegative

	// ErrTooManyBorderValues is returned when a side lists more values
	// than the format has planes.
	ErrTooManyBorderValues = border.ErrTooManyValues

	// ErrBordersTooBig is returned when borders do not fit a plane under
	// the mode's fit rule.
	ErrBordersTooBig = border.ErrTooBig

	// ErrTransientTooBig is returned when the transient exceeds the tap
	// budget, a border or the interior.
	ErrTransientTooBig = filter.ErrTooBig

	// ErrInvalidSmoothing is returned for an unknown smoothing variant.
	ErrInvalidSmoothing = filter.ErrSmoothing
)

// Per-frame errors, returned by Process.
var (
	// ErrInterlacedFrame is returned when a field-based frame reaches a
	// filter built without WithInterlaced(true).
	ErrInterlacedFrame = errors.New("fillborders: field-based frame on progressive filter")

	// ErrFrameMismatch is returned when a frame does not match the
	// filter's format.
	ErrFrameMismatch = errors.New("fillborders: frame does not match filter format")
)
