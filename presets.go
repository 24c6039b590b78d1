package fillborders

import (
	"fmt"
	"slices"

	"github.com/gogpu/fillborders/plane"
)

// Preset is a named entry point restricted to a set of modes.
type Preset struct {
	Name    string
	Default Mode
	Modes   []Mode
}

// Allows reports whether m may be used with the preset.
func (p Preset) Allows(m Mode) bool {
	return slices.Contains(p.Modes, m)
}

var presets = []Preset{
	{Name: "fillborders", Default: ModeRepeat, Modes: Modes()},
	{Name: "fillmargins", Default: ModeMargins, Modes: []Mode{ModeMargins}},
}

// Presets returns the registered presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		p.Modes = slices.Clone(p.Modes)
		out[i] = p
	}
	return out
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// NewPreset builds a Filter through the named preset. The preset's default
// mode applies unless opts set another one the preset allows.
func NewPreset[T plane.Sample](name string, format plane.Format, opts ...Option) (*Filter[T], error) {
	p, ok := LookupPreset(name)
	if !ok {
		return nil, fmt.Errorf("fillborders: unknown preset %q", name)
	}
	o := defaultOptions()
	o.mode = p.Default
	for _, opt := range opts {
		opt(&o)
	}
	if !p.Allows(o.mode) {
		return nil, fmt.Errorf("%w: %s is not available in %s", ErrInvalidMode, o.mode, p.Name)
	}
	return New[T](format, append([]Option{WithMode(p.Default)}, opts...)...)
}
