package border

import "fmt"

// Layout describes the planes a side configuration is resolved against.
type Layout struct {
	// NumPlanes is 1 for gray, 3 for YUV/RGB, 4 with alpha.
	NumPlanes int

	// Subsampled marks planes 1 and 2 as chroma planes whose single
	// broadcast value is shifted by the subsampling factor.
	Subsampled bool

	// SubW and SubH are the log2 chroma subsampling factors.
	SubW int
	SubH int
}

// Sides holds the configured values for each side. Each slice has 0 to 4
// entries.
type Sides struct {
	Left   []int
	Top    []int
	Right  []int
	Bottom []int
}

// Uniform returns Sides with one value per side.
func Uniform(left, top, right, bottom int) Sides {
	return Sides{
		Left:   []int{left},
		Top:    []int{top},
		Right:  []int{right},
		Bottom: []int{bottom},
	}
}

// Value resolves one side's configured values for plane i.
//
//   - no values: 0
//   - one value: used for luma and alpha, shifted right by shift for
//     subsampled chroma
//   - two values: luma, chroma; alpha takes the luma value
//   - three values: per Y/U/V plane; alpha takes the luma value
//   - four values: one per plane
func Value(values []int, i int, l Layout, shift int) (int, error) {
	if len(values) > l.NumPlanes {
		return 0, fmt.Errorf("%w: %d values for %d planes", ErrTooManyValues, len(values), l.NumPlanes)
	}

	var v int
	switch len(values) {
	case 0:
		return 0, nil
	case 1:
		v = values[0]
		if l.Subsampled && (i == 1 || i == 2) {
			v >>= shift
		}
	case 2:
		v = values[0]
		if i == 1 || i == 2 {
			v = values[1]
		}
	case 3:
		v = values[0]
		if i < 3 {
			v = values[i]
		}
	default:
		v = values[i]
	}

	if v < 0 {
		return 0, fmt.Errorf("%w: plane %d resolved to %d", ErrNegative, i, v)
	}
	return v, nil
}

// Resolve returns the border set of plane i.
func Resolve(s Sides, i int, l Layout) (Set, error) {
	var out Set
	var err error
	if out.Left, err = Value(s.Left, i, l, l.SubW); err != nil {
		return Set{}, fmt.Errorf("left: %w", err)
	}
	if out.Top, err = Value(s.Top, i, l, l.SubH); err != nil {
		return Set{}, fmt.Errorf("top: %w", err)
	}
	if out.Right, err = Value(s.Right, i, l, l.SubW); err != nil {
		return Set{}, fmt.Errorf("right: %w", err)
	}
	if out.Bottom, err = Value(s.Bottom, i, l, l.SubH); err != nil {
		return Set{}, fmt.Errorf("bottom: %w", err)
	}
	return out, nil
}

// Field converts a frame border set to one field of an interlaced plane
// of the given height: vertical borders count only the rows of that
// parity.
func (s Set) Field(height, parity int) Set {
	lines := func(n int) int {
		if n <= parity {
			return 0
		}
		return (n - parity + 1) / 2
	}
	return Set{
		Left:   s.Left,
		Top:    lines(s.Top),
		Right:  s.Right,
		Bottom: lines(height) - lines(height-s.Bottom),
	}
}
