package plane

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ErrUnsupportedLayout is returned when a frame has no std image equivalent.
var ErrUnsupportedLayout = errors.New("plane: layout has no image equivalent")

// ratioShifts maps std YCbCr subsampling ratios to log2 shifts.
var ratioShifts = map[image.YCbCrSubsampleRatio][2]int{
	image.YCbCrSubsampleRatio444: {0, 0},
	image.YCbCrSubsampleRatio422: {1, 0},
	image.YCbCrSubsampleRatio420: {1, 1},
	image.YCbCrSubsampleRatio440: {0, 1},
	image.YCbCrSubsampleRatio411: {2, 0},
	image.YCbCrSubsampleRatio410: {2, 1},
}

func ratioFor(subW, subH int) (image.YCbCrSubsampleRatio, bool) {
	for r, s := range ratioShifts {
		if s[0] == subW && s[1] == subH {
			return r, true
		}
	}
	return 0, false
}

// Is16Bit reports whether img carries more than 8 bits per channel.
func Is16Bit(img image.Image) bool {
	switch img.(type) {
	case *image.Gray16, *image.RGBA64, *image.NRGBA64:
		return true
	}
	return false
}

// FromImage converts img to an 8-bit frame.
//
// *image.YCbCr and *image.NYCbCrA keep their planes and subsampling,
// *image.Gray becomes a gray frame, anything else is normalised to NRGBA
// and split into planar RGB, with an alpha plane when img is not opaque.
func FromImage(img image.Image) (*Frame[uint8], error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch m := img.(type) {
	case *image.NYCbCrA:
		if f, ok := fromYCbCr(&m.YCbCr, true); ok {
			a := f.Planes[3]
			for y := range h {
				off := m.AOffset(b.Min.X, b.Min.Y+y)
				copy(a.Row(y), m.A[off:off+w])
			}
			return f, nil
		}
	case *image.YCbCr:
		if f, ok := fromYCbCr(m, false); ok {
			return f, nil
		}
	case *image.Gray:
		f, err := NewFrame[uint8](Gray(SampleUint8, 8, w, h))
		if err != nil {
			return nil, err
		}
		for y := range h {
			off := m.PixOffset(b.Min.X, b.Min.Y+y)
			copy(f.Planes[0].Row(y), m.Pix[off:off+w])
		}
		return f, nil
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	alpha := !nrgba.Opaque()
	f, err := NewFrame[uint8](RGB(SampleUint8, 8, alpha, w, h))
	if err != nil {
		return nil, err
	}
	for y := range h {
		src := nrgba.Pix[y*nrgba.Stride:]
		for x := range w {
			px := src[x*4 : x*4+4 : x*4+4]
			for i := range f.Planes {
				f.Planes[i].Row(y)[x] = px[i]
			}
		}
	}
	return f, nil
}

func fromYCbCr(m *image.YCbCr, alpha bool) (*Frame[uint8], bool) {
	s, ok := ratioShifts[m.SubsampleRatio]
	if !ok {
		return nil, false
	}
	b := m.Bounds()
	f, err := NewFrame[uint8](YUV(SampleUint8, 8, s[0], s[1], alpha, b.Dx(), b.Dy()))
	if err != nil {
		return nil, false
	}
	for y := range f.Planes[0].Height {
		off := m.YOffset(b.Min.X, b.Min.Y+y)
		copy(f.Planes[0].Row(y), m.Y[off:])
	}
	for cy := range f.Planes[1].Height {
		off := m.COffset(b.Min.X, b.Min.Y+cy<<s[1])
		copy(f.Planes[1].Row(cy), m.Cb[off:])
		copy(f.Planes[2].Row(cy), m.Cr[off:])
	}
	return f, true
}

// FromImage16 converts img to a 16-bit frame: gray for *image.Gray16,
// planar RGB(A) otherwise.
func FromImage16(img image.Image) (*Frame[uint16], error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if g, ok := img.(*image.Gray16); ok {
		f, err := NewFrame[uint16](Gray(SampleUint16, 16, w, h))
		if err != nil {
			return nil, err
		}
		for y := range h {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			row := f.Planes[0].Row(y)
			for x := range row {
				row[x] = uint16(g.Pix[off+2*x])<<8 | uint16(g.Pix[off+2*x+1])
			}
		}
		return f, nil
	}

	n := image.NewNRGBA64(image.Rect(0, 0, w, h))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)

	f, err := NewFrame[uint16](RGB(SampleUint16, 16, !n.Opaque(), w, h))
	if err != nil {
		return nil, err
	}
	for y := range h {
		src := n.Pix[y*n.Stride:]
		for x := range w {
			for i := range f.Planes {
				o := x*8 + i*2
				f.Planes[i].Row(y)[x] = uint16(src[o])<<8 | uint16(src[o+1])
			}
		}
	}
	return f, nil
}

// ToImage converts an 8-bit frame to the matching std image type.
func ToImage(f *Frame[uint8]) (image.Image, error) {
	if err := f.Check(); err != nil {
		return nil, err
	}
	fm := f.Format
	rect := image.Rect(0, 0, fm.Width, fm.Height)

	switch fm.Family {
	case FamilyGray:
		g := image.NewGray(rect)
		for y := range fm.Height {
			copy(g.Pix[y*g.Stride:], f.Planes[0].Row(y))
		}
		return g, nil

	case FamilyYUV:
		ratio, ok := ratioFor(fm.SubW, fm.SubH)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedLayout, fm)
		}
		var m *image.YCbCr
		var out image.Image
		if fm.Alpha {
			a := image.NewNYCbCrA(rect, ratio)
			for y := range fm.Height {
				copy(a.A[y*a.AStride:], f.Planes[3].Row(y))
			}
			m, out = &a.YCbCr, a
		} else {
			m = image.NewYCbCr(rect, ratio)
			out = m
		}
		for y := range fm.Height {
			copy(m.Y[y*m.YStride:], f.Planes[0].Row(y))
		}
		for cy := range f.Planes[1].Height {
			copy(m.Cb[cy*m.CStride:], f.Planes[1].Row(cy))
			copy(m.Cr[cy*m.CStride:], f.Planes[2].Row(cy))
		}
		return out, nil

	default:
		n := image.NewNRGBA(rect)
		for y := range fm.Height {
			dst := n.Pix[y*n.Stride:]
			for x := range fm.Width {
				dst[x*4+3] = 0xff
				for i := range f.Planes {
					dst[x*4+i] = f.Planes[i].Row(y)[x]
				}
			}
		}
		return n, nil
	}
}

// ToImage16 converts a 16-bit gray or RGB frame to *image.Gray16 or
// *image.NRGBA64. Samples are scaled to the full 16-bit range.
func ToImage16(f *Frame[uint16]) (image.Image, error) {
	if err := f.Check(); err != nil {
		return nil, err
	}
	fm := f.Format
	rect := image.Rect(0, 0, fm.Width, fm.Height)
	shift := 16 - fm.Bits

	switch fm.Family {
	case FamilyGray:
		g := image.NewGray16(rect)
		for y := range fm.Height {
			dst := g.Pix[y*g.Stride:]
			for x, v := range f.Planes[0].Row(y) {
				v <<= shift
				dst[2*x], dst[2*x+1] = uint8(v>>8), uint8(v)
			}
		}
		return g, nil

	case FamilyRGB:
		n := image.NewNRGBA64(rect)
		for y := range fm.Height {
			dst := n.Pix[y*n.Stride:]
			for x := range fm.Width {
				dst[x*8+6], dst[x*8+7] = 0xff, 0xff
				for i := range f.Planes {
					v := f.Planes[i].Row(y)[x] << shift
					dst[x*8+2*i], dst[x*8+2*i+1] = uint8(v>>8), uint8(v)
				}
			}
		}
		return n, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLayout, fm)
	}
}

// ToFloat converts an integer frame to float32 samples.
// Chroma planes are centred on zero.
func ToFloat[T Integer](f *Frame[T]) (*Frame[float32], error) {
	fm := f.Format
	fm.Sample, fm.Bits = SampleFloat32, 32
	out, err := NewFrame[float32](fm)
	if err != nil {
		return nil, err
	}
	out.FieldBased, out.TraceID = f.FieldBased, f.TraceID

	scale := float32(f.Format.MaxValue())
	half := float32(int(1) << (f.Format.Bits - 1))
	for i, src := range f.Planes {
		var offset float32
		if fm.Category(i) == CategoryChroma {
			offset = half
		}
		dst := out.Planes[i]
		for y := range src.Height {
			d := dst.Row(y)
			for x, v := range src.Row(y) {
				d[x] = (float32(v) - offset) / scale
			}
		}
	}
	return out, nil
}

// FromFloat converts a float32 frame back to integer samples of the given
// bit depth, rounding half up and clamping to the representable range.
func FromFloat[T Integer](f *Frame[float32], bits int) (*Frame[T], error) {
	fm := f.Format
	fm.Sample, fm.Bits = SampleTypeOf[T](), bits
	out, err := NewFrame[T](fm)
	if err != nil {
		return nil, err
	}
	out.FieldBased, out.TraceID = f.FieldBased, f.TraceID

	maxv := float64(fm.MaxValue())
	half := float64(int(1) << (bits - 1))
	for i, src := range f.Planes {
		var offset float64
		if fm.Category(i) == CategoryChroma {
			offset = half
		}
		dst := out.Planes[i]
		for y := range src.Height {
			d := dst.Row(y)
			for x, v := range src.Row(y) {
				s := math.Floor(float64(v)*maxv + offset + 0.5)
				d[x] = T(min(max(s, 0), maxv))
			}
		}
	}
	return out, nil
}
