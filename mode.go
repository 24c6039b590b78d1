package fillborders

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"

	"github.com/gogpu/fillborders/internal/border"
	"github.com/gogpu/fillborders/internal/synth"
)

// Mode selects how margins are synthesized.
type Mode int

const (
	// ModeMargins replicates edge samples into the side margins and fills
	// top and bottom margins with a 3-2-3 weighted average of the row
	// next to them, working outward.
	ModeMargins Mode = iota

	// ModeRepeat replicates the nearest interior sample or row.
	ModeRepeat

	// ModeMirror reflects the interior about the boundary without
	// repeating the boundary sample: offset k takes 2*border-1-k.
	ModeMirror

	// ModeReflect reflects the interior about the boundary sample:
	// offset k takes 2*border-k.
	ModeReflect

	// ModeWrap copies the interior from the opposite side.
	ModeWrap

	// ModeFade fades from the interior edge toward a target value.
	ModeFade

	// ModeFixBorders blends the adjacent lines directionally.
	ModeFixBorders

	modeCount
)

var modeNames = [modeCount]string{
	ModeMargins:    "fillmargins",
	ModeRepeat:     "repeat",
	ModeMirror:     "mirror",
	ModeReflect:    "reflect",
	ModeWrap:       "wrap",
	ModeFade:       "fade",
	ModeFixBorders: "fixborders",
}

// Modes returns every mode in numeric order.
func Modes() []Mode {
	out := make([]Mode, modeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// String returns the mode name.
func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < modeCount
}

// Fit returns the rule borders must satisfy under m.
func (m Mode) Fit() border.Fit {
	return m.synth().Fit()
}

func (m Mode) synth() synth.Mode {
	return synth.Mode(m)
}

// ParseMode accepts a mode name (case-insensitive, "margins" is accepted
// for ModeMargins) or its number.
func ParseMode(s string) (Mode, error) {
	if n, err := strconv.Atoi(s); err == nil {
		m := Mode(n)
		if !m.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrInvalidMode, n)
		}
		return m, nil
	}
	name := cases.Fold().String(s)
	if name == "margins" {
		return ModeMargins, nil
	}
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}
