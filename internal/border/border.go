// Package border resolves per-side border configuration into per-plane
// border sets and checks that they fit the planes they will be applied to.
package border

import (
	"errors"
	"fmt"
)

// Resolver errors.
var (
	// ErrNegative is returned when a resolved border is negative.
	ErrNegative = errors.New("border: negative border size")

	// ErrTooManyValues is returned when a side lists more values than
	// the frame has planes.
	ErrTooManyValues = errors.New("border: more values than planes")

	// ErrTooBig is returned when borders do not fit the plane.
	ErrTooBig = errors.New("border: borders too big for plane")
)

// Set holds the margin sizes of one plane, in samples.
type Set struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// IsZero reports whether every side is zero.
func (s Set) IsZero() bool {
	return s == Set{}
}

// String returns "l/t/r/b".
func (s Set) String() string {
	return fmt.Sprintf("%d/%d/%d/%d", s.Left, s.Top, s.Right, s.Bottom)
}

// Fit is the rule a mode imposes on border sizes.
type Fit uint8

const (
	// FitAdditive requires left+right <= width and top+bottom <= height.
	FitAdditive Fit = iota

	// FitSymmetric requires every side to be at most half the extent,
	// so a mirrored margin stays inside the plane.
	FitSymmetric

	// FitSymmetricStrict is FitSymmetric where a non-zero side must be
	// strictly less than half the extent, because the boundary sample
	// itself is the mirror axis.
	FitSymmetricStrict
)

// String returns the rule name.
func (f Fit) String() string {
	switch f {
	case FitAdditive:
		return "additive"
	case FitSymmetric:
		return "symmetric"
	case FitSymmetricStrict:
		return "symmetric-strict"
	default:
		return "unknown"
	}
}

// Check verifies that s fits a width x height plane under rule.
func (s Set) Check(width, height int, rule Fit) error {
	if s.Left < 0 || s.Top < 0 || s.Right < 0 || s.Bottom < 0 {
		return fmt.Errorf("%w: %s", ErrNegative, s)
	}
	ok := true
	switch rule {
	case FitAdditive:
		ok = s.Left+s.Right <= width && s.Top+s.Bottom <= height
	case FitSymmetric:
		ok = 2*s.Left <= width && 2*s.Right <= width &&
			2*s.Top <= height && 2*s.Bottom <= height
	case FitSymmetricStrict:
		ok = strictHalf(s.Left, width) && strictHalf(s.Right, width) &&
			strictHalf(s.Top, height) && strictHalf(s.Bottom, height)
	}
	if !ok {
		return fmt.Errorf("%w: %s on %dx%d (%s)", ErrTooBig, s, width, height, rule)
	}
	return nil
}

func strictHalf(side, extent int) bool {
	return side == 0 || 2*side < extent
}
