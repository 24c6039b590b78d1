package fillborders

import (
	"fmt"

	"github.com/gogpu/fillborders/internal/kernel"
	"github.com/gogpu/fillborders/plane"
)

// fadeTargets resolves the configured fade target of every plane.
// It returns nil when no target is configured, in which case each margin
// fades toward the opposite interior edge.
func fadeTargets[T plane.Sample](format plane.Format, o *options, arith []kernel.Arith[T]) ([]T, error) {
	ints, floats := o.fadeInts, o.fadeFloats
	if ints == nil && floats == nil {
		return nil, nil
	}
	if ints != nil && floats != nil {
		return nil, fmt.Errorf("%w: both integer and float targets given", ErrFadeTarget)
	}

	isFloat := format.Sample.IsFloat()
	n := len(ints)
	if floats != nil {
		n = len(floats)
	}
	switch {
	case ints != nil && isFloat:
		return nil, fmt.Errorf("%w: integer targets for %s samples", ErrFadeTarget, format.Sample)
	case floats != nil && !isFloat:
		return nil, fmt.Errorf("%w: float targets for %s samples", ErrFadeTarget, format.Sample)
	case n != 1 && n != format.NumPlanes():
		return nil, fmt.Errorf("%w: %d values for %d planes", ErrFadeTarget, n, format.NumPlanes())
	}

	out := make([]T, format.NumPlanes())
	for i := range out {
		j := min(i, n-1)
		var v float64
		if ints != nil {
			v = float64(ints[j])
		} else {
			v = floats[j]
		}
		out[i] = arith[i].FromFloat(v)
	}
	return out, nil
}
