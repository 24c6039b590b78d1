package plane

import (
	"errors"
	"fmt"
)

// Sample is the set of sample representations a plane can hold.
type Sample interface {
	uint8 | uint16 | float32
}

// Integer is the subset of Sample stored as unsigned integers.
type Integer interface {
	uint8 | uint16
}

// SampleType identifies the numeric representation of plane samples.
type SampleType uint8

const (
	// SampleUint8 is an 8-bit unsigned integer sample.
	SampleUint8 SampleType = iota

	// SampleUint16 is a 9..16-bit unsigned integer sample stored in 16 bits.
	SampleUint16

	// SampleFloat32 is a 32-bit floating-point sample.
	// Luma, alpha and RGB planes use [0, 1]; chroma planes use [-0.5, 0.5].
	SampleFloat32

	sampleTypeCount
)

// SampleInfo contains metadata about a sample representation.
type SampleInfo struct {
	// BytesPerSample is the storage size of one sample.
	BytesPerSample int

	// MinBits and MaxBits bound the significant bit depth.
	MinBits int
	MaxBits int

	// IsFloat indicates a floating-point representation.
	IsFloat bool
}

var sampleInfoTable = [sampleTypeCount]SampleInfo{
	SampleUint8: {
		BytesPerSample: 1,
		MinBits:        8,
		MaxBits:        8,
	},
	SampleUint16: {
		BytesPerSample: 2,
		MinBits:        9,
		MaxBits:        16,
	},
	SampleFloat32: {
		BytesPerSample: 4,
		MinBits:        32,
		MaxBits:        32,
		IsFloat:        true,
	},
}

// Info returns the SampleInfo for this sample type.
func (s SampleType) Info() SampleInfo {
	if s >= sampleTypeCount {
		return SampleInfo{}
	}
	return sampleInfoTable[s]
}

// BytesPerSample returns the storage size of one sample.
func (s SampleType) BytesPerSample() int {
	return s.Info().BytesPerSample
}

// IsFloat reports whether samples are floating point.
func (s SampleType) IsFloat() bool {
	return s.Info().IsFloat
}

// IsValid returns true if the sample type is known.
func (s SampleType) IsValid() bool {
	return s < sampleTypeCount
}

// String returns a string representation of the sample type.
func (s SampleType) String() string {
	switch s {
	case SampleUint8:
		return "uint8"
	case SampleUint16:
		return "uint16"
	case SampleFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

// SampleTypeOf returns the SampleType matching T.
func SampleTypeOf[T Sample]() SampleType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return SampleUint8
	case uint16:
		return SampleUint16
	default:
		return SampleFloat32
	}
}

// Family is the colour layout of a frame.
type Family uint8

const (
	// FamilyGray has a single luma plane.
	FamilyGray Family = iota

	// FamilyYUV has luma and two chroma planes, optionally alpha.
	// Chroma planes may be subsampled.
	FamilyYUV

	// FamilyRGB has three full-size colour planes, optionally alpha.
	FamilyRGB

	familyCount
)

// String returns a string representation of the family.
func (f Family) String() string {
	switch f {
	case FamilyGray:
		return "Gray"
	case FamilyYUV:
		return "YUV"
	case FamilyRGB:
		return "RGB"
	default:
		return "Unknown"
	}
}

// Category selects the numeric range of a plane.
type Category uint8

const (
	// CategoryLuma is a luma (or gray) plane.
	CategoryLuma Category = iota

	// CategoryChroma is a colour-difference plane. Float chroma is
	// centred on zero.
	CategoryChroma

	// CategoryRGB is a red, green or blue plane.
	CategoryRGB

	// CategoryAlpha is an alpha plane.
	CategoryAlpha
)

// String returns a string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryLuma:
		return "luma"
	case CategoryChroma:
		return "chroma"
	case CategoryRGB:
		return "rgb"
	case CategoryAlpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// MaxPlanes is the largest number of planes a frame can carry.
const MaxPlanes = 4

// Format errors.
var (
	// ErrInvalidFormat is returned when a Format is inconsistent.
	ErrInvalidFormat = errors.New("plane: invalid format")
)

// Format describes the geometry and sample representation of a frame.
type Format struct {
	Family Family
	Sample SampleType

	// Bits is the significant bit depth: 8 for SampleUint8, 9..16 for
	// SampleUint16, 32 for SampleFloat32.
	Bits int

	// SubW and SubH are the log2 chroma subsampling factors (YUV only).
	SubW int
	SubH int

	// Alpha adds a full-size alpha plane (YUV and RGB only).
	Alpha bool

	// Width and Height are the luma plane dimensions.
	Width  int
	Height int
}

// Gray returns a single-plane format.
func Gray(sample SampleType, bits, width, height int) Format {
	return Format{Family: FamilyGray, Sample: sample, Bits: bits, Width: width, Height: height}
}

// YUV returns a luma/chroma format with the given subsampling shifts.
func YUV(sample SampleType, bits, subW, subH int, alpha bool, width, height int) Format {
	return Format{
		Family: FamilyYUV,
		Sample: sample,
		Bits:   bits,
		SubW:   subW,
		SubH:   subH,
		Alpha:  alpha,
		Width:  width,
		Height: height,
	}
}

// RGB returns a planar RGB format.
func RGB(sample SampleType, bits int, alpha bool, width, height int) Format {
	return Format{Family: FamilyRGB, Sample: sample, Bits: bits, Alpha: alpha, Width: width, Height: height}
}

// Validate checks that the format is internally consistent.
func (f Format) Validate() error {
	if f.Family >= familyCount {
		return fmt.Errorf("%w: family %d", ErrInvalidFormat, f.Family)
	}
	if !f.Sample.IsValid() {
		return fmt.Errorf("%w: sample type %d", ErrInvalidFormat, f.Sample)
	}
	info := f.Sample.Info()
	if f.Bits < info.MinBits || f.Bits > info.MaxBits {
		return fmt.Errorf("%w: %d bits for %s samples", ErrInvalidFormat, f.Bits, f.Sample)
	}
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFormat, f.Width, f.Height)
	}
	if f.Family != FamilyYUV && (f.SubW != 0 || f.SubH != 0) {
		return fmt.Errorf("%w: subsampling on %s", ErrInvalidFormat, f.Family)
	}
	if f.SubW < 0 || f.SubW > 2 || f.SubH < 0 || f.SubH > 2 {
		return fmt.Errorf("%w: subsampling %d/%d", ErrInvalidFormat, f.SubW, f.SubH)
	}
	if f.Family == FamilyGray && f.Alpha {
		return fmt.Errorf("%w: alpha on gray", ErrInvalidFormat)
	}
	return nil
}

// NumPlanes returns the number of planes in a frame of this format.
func (f Format) NumPlanes() int {
	if f.Family == FamilyGray {
		return 1
	}
	if f.Alpha {
		return 4
	}
	return 3
}

// IsChroma reports whether plane i is a subsampled chroma plane.
func (f Format) IsChroma(i int) bool {
	return f.Family == FamilyYUV && (i == 1 || i == 2)
}

// PlaneSize returns the dimensions of plane i.
// Chroma dimensions round up, matching image.YCbCr.
func (f Format) PlaneSize(i int) (width, height int) {
	if !f.IsChroma(i) {
		return f.Width, f.Height
	}
	return shiftUp(f.Width, f.SubW), shiftUp(f.Height, f.SubH)
}

// Category returns the numeric category of plane i.
func (f Format) Category(i int) Category {
	switch {
	case i == 3:
		return CategoryAlpha
	case f.Family == FamilyRGB:
		return CategoryRGB
	case f.IsChroma(i):
		return CategoryChroma
	default:
		return CategoryLuma
	}
}

// MaxValue returns the largest integer sample value, or 1 for float.
func (f Format) MaxValue() int {
	if f.Sample.IsFloat() {
		return 1
	}
	return 1<<f.Bits - 1
}

// String returns a compact description such as "YUV420P8 1920x1080".
func (f Format) String() string {
	var layout string
	switch f.Family {
	case FamilyYUV:
		layout = fmt.Sprintf("YUV%s", subsamplingName(f.SubW, f.SubH))
	default:
		layout = f.Family.String()
	}
	if f.Alpha {
		layout += "A"
	}
	suffix := fmt.Sprintf("P%d", f.Bits)
	if f.Sample.IsFloat() {
		suffix = "PS"
	}
	return fmt.Sprintf("%s%s %dx%d", layout, suffix, f.Width, f.Height)
}

func subsamplingName(subW, subH int) string {
	switch {
	case subW == 0 && subH == 0:
		return "444"
	case subW == 1 && subH == 0:
		return "422"
	case subW == 1 && subH == 1:
		return "420"
	case subW == 0 && subH == 1:
		return "440"
	case subW == 2 && subH == 0:
		return "411"
	case subW == 2 && subH == 1:
		return "410"
	default:
		return fmt.Sprintf("%d%d", subW, subH)
	}
}

func shiftUp(v, shift int) int {
	return (v + (1 << shift) - 1) >> shift
}
