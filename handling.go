package fillborders

import "fmt"

// Handling selects what happens to one plane.
type Handling int

const (
	// HandlingDefault is HandlingProcess.
	HandlingDefault Handling = iota

	// HandlingSkip leaves the destination plane untouched.
	HandlingSkip

	// HandlingCopy copies the source plane without filling borders.
	HandlingCopy

	// HandlingProcess copies the source plane and fills its borders.
	HandlingProcess

	handlingCount
)

// String returns the handling name.
func (h Handling) String() string {
	switch h {
	case HandlingDefault:
		return "default"
	case HandlingSkip:
		return "skip"
	case HandlingCopy:
		return "copy"
	case HandlingProcess:
		return "process"
	default:
		return fmt.Sprintf("Handling(%d)", int(h))
	}
}

// Valid reports whether h is a defined handling value.
func (h Handling) Valid() bool {
	return h >= 0 && h < handlingCount
}

// resolve maps HandlingDefault to HandlingProcess.
func (h Handling) resolve() Handling {
	if h == HandlingDefault {
		return HandlingProcess
	}
	return h
}
