package synth

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/fillborders/internal/border"
	"github.com/gogpu/fillborders/internal/kernel"
	"github.com/gogpu/fillborders/plane"
)

var allModes = []Mode{Margins, Repeat, Mirror, Reflect, Wrap, Fade, FixBorders}

func newPlane[T plane.Sample](t *testing.T, w, h int, fn func(x, y int) T) *plane.Plane[T] {
	t.Helper()
	p, err := plane.New[T](w, h)
	if err != nil {
		t.Fatalf("plane.New(%d, %d) error = %v", w, h, err)
	}
	for y := range h {
		row := p.Row(y)
		for x := range row {
			row[x] = fn(x, y)
		}
	}
	return p
}

func randomPlane(t *testing.T, w, h int, seed uint64) *plane.Plane[uint8] {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return newPlane(t, w, h, func(int, int) uint8 { return uint8(r.IntN(256)) })
}

func params8(b border.Set) Params[uint8] {
	return Params[uint8]{Borders: b, Arith: kernel.NewInt[uint8](8)}
}

func TestInteriorUnchanged(t *testing.T) {
	b := border.Set{Left: 3, Top: 2, Right: 2, Bottom: 3}
	for _, m := range allModes {
		t.Run(m.String(), func(t *testing.T) {
			orig := randomPlane(t, 17, 13, uint64(m)+1)
			p := orig.Clone()
			if err := Fill(m, p, params8(b)); err != nil {
				t.Fatalf("Fill() error = %v", err)
			}
			for y := b.Top; y < p.Height-b.Bottom; y++ {
				for x := b.Left; x < p.Width-b.Right; x++ {
					if got, want := p.At(x, y), orig.At(x, y); got != want {
						t.Fatalf("interior (%d,%d) = %d, want %d", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestZeroBordersIdentity(t *testing.T) {
	for _, m := range allModes {
		t.Run(m.String(), func(t *testing.T) {
			orig := randomPlane(t, 9, 7, 42)
			p := orig.Clone()
			if err := Fill(m, p, params8(border.Set{})); err != nil {
				t.Fatalf("Fill() error = %v", err)
			}
			if !p.Equal(orig) {
				t.Error("plane changed with zero borders")
			}
		})
	}
}

func TestEmptyPlane(t *testing.T) {
	for _, m := range allModes {
		p, err := plane.New[uint8](0, 0)
		if err != nil {
			t.Fatal(err)
		}
		if err := Fill(m, p, params8(border.Set{Left: 2, Top: 2})); err != nil {
			t.Errorf("%s: Fill() error = %v", m, err)
		}
	}
}

func TestOversizedBordersStayInPlane(t *testing.T) {
	sets := []border.Set{
		{Left: 2, Top: 2, Right: 2, Bottom: 2},
		{Left: 4, Top: 0, Right: 0, Bottom: 4},
		{Left: 3, Top: 3, Right: 3, Bottom: 3},
	}
	for _, m := range allModes {
		for _, b := range sets {
			p := randomPlane(t, 4, 4, 7)
			if err := Fill(m, p, params8(b)); err != nil {
				t.Errorf("%s %s: Fill() error = %v", m, b, err)
			}
		}
	}
}

func TestUnknownMode(t *testing.T) {
	p := randomPlane(t, 4, 4, 1)
	if err := Fill(Count, p, params8(border.Set{Left: 1})); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Fill(Count) error = %v, want ErrUnknownMode", err)
	}
}

func TestUniformPlaneStaysUniform(t *testing.T) {
	b := border.Set{Left: 2, Top: 2, Right: 2, Bottom: 2}
	for _, m := range allModes {
		t.Run(m.String(), func(t *testing.T) {
			p := newPlane(t, 16, 8, func(x, y int) uint8 {
				if x < 2 || x >= 14 || y < 2 || y >= 6 {
					return 0
				}
				return 100
			})
			prm := params8(b)
			if err := Fill(m, p, prm); err != nil {
				t.Fatalf("Fill() error = %v", err)
			}
			for y := range p.Height {
				for x := range p.Width {
					if got := p.At(x, y); got != 100 {
						t.Fatalf("(%d,%d) = %d, want 100", x, y, got)
					}
				}
			}
		})
	}
}

func TestMirror16BitRamp(t *testing.T) {
	p := newPlane(t, 10, 10, func(x, _ int) uint16 { return uint16(x) })
	prm := Params[uint16]{Borders: border.Set{Left: 2}, Arith: kernel.NewInt[uint16](16)}
	if err := Fill(Mirror, p, prm); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	for y := range p.Height {
		if got := p.At(0, y); got != 3 {
			t.Errorf("row %d col 0 = %d, want 3", y, got)
		}
		if got := p.At(1, y); got != 2 {
			t.Errorf("row %d col 1 = %d, want 2", y, got)
		}
	}
}

func TestMirrorAndReflectIndices(t *testing.T) {
	tests := []struct {
		mode Mode
		// source column for margin columns 0, 1 and w-2, w-1
		want [4]int
	}{
		{Mirror, [4]int{3, 2, 9, 8}},
		{Reflect, [4]int{4, 3, 8, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			p := newPlane(t, 12, 3, func(x, _ int) uint8 { return uint8(x * 10) })
			if err := Fill(tt.mode, p, params8(border.Set{Left: 2, Right: 2})); err != nil {
				t.Fatalf("Fill() error = %v", err)
			}
			cols := [4]int{0, 1, 10, 11}
			for i, x := range cols {
				if got, want := p.At(x, 1), uint8(tt.want[i]*10); got != want {
					t.Errorf("col %d = %d, want %d", x, got, want)
				}
			}
		})
	}
}

func TestMirrorRows(t *testing.T) {
	p := newPlane(t, 4, 10, func(_, y int) uint8 { return uint8(y) })
	if err := Fill(Mirror, p, params8(border.Set{Top: 3, Bottom: 2})); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	want := []uint8{5, 4, 3, 3, 4, 5, 6, 7, 7, 6}
	for y, w := range want {
		if got := p.At(2, y); got != w {
			t.Errorf("row %d = %d, want %d", y, got, w)
		}
	}
}

func TestRepeatCorners(t *testing.T) {
	p := newPlane(t, 6, 6, func(x, y int) uint8 { return uint8(10*y + x) })
	if err := Fill(Repeat, p, params8(border.Set{Left: 1, Top: 1, Right: 1, Bottom: 1})); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	corners := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 11},
		{5, 0, 14},
		{0, 5, 41},
		{5, 5, 44},
	}
	for _, c := range corners {
		if got := p.At(c.x, c.y); got != c.want {
			t.Errorf("(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestMarginsAverage(t *testing.T) {
	w := 20
	p := newPlane(t, w, 4, func(x, y int) uint8 {
		if y == 0 {
			return 0
		}
		return uint8(x * 8)
	})
	if err := Fill(Margins, p, params8(border.Set{Top: 1})); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	src := p.Row(1)
	dst := p.Row(0)
	if dst[0] != src[0] {
		t.Errorf("col 0 = %d, want %d", dst[0], src[0])
	}
	for x := w - marginsTail; x < w; x++ {
		if dst[x] != src[x] {
			t.Errorf("tail col %d = %d, want %d", x, dst[x], src[x])
		}
	}
	for x := 1; x < w-marginsTail; x++ {
		want := uint8((3*int(src[x-1]) + 2*int(src[x]) + 3*int(src[x+1]) + 4) / 8)
		if dst[x] != want {
			t.Errorf("col %d = %d, want %d", x, dst[x], want)
		}
	}
}

func TestMarginsPropagatesOutward(t *testing.T) {
	p := newPlane(t, 12, 6, func(x, y int) uint8 {
		if y >= 4 {
			return 0
		}
		return uint8(x * 20)
	})
	if err := Fill(Margins, p, params8(border.Set{Bottom: 2})); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	// Row 5 is averaged from row 4, itself already averaged from row 3.
	if got := p.At(2, 4); got != 40 {
		t.Errorf("row 4 col 2 = %d, want 40", got)
	}
	if got := p.At(2, 5); got != 40 {
		t.Errorf("row 5 col 2 = %d, want 40", got)
	}
}

func TestWrapCircular(t *testing.T) {
	b := border.Set{Left: 2, Top: 1, Right: 3, Bottom: 2}
	orig := randomPlane(t, 12, 9, 99)
	p := orig.Clone()
	if err := Fill(Wrap, p, params8(b)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	w, h := p.Width, p.Height
	for y := b.Top; y < h-b.Bottom; y++ {
		for x := range b.Left {
			if got, want := p.At(x, y), orig.At(w-b.Right-b.Left+x, y); got != want {
				t.Fatalf("left (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
		for x := range b.Right {
			if got, want := p.At(w-b.Right+x, y), orig.At(b.Left+x, y); got != want {
				t.Fatalf("right (%d,%d) = %d, want %d", w-b.Right+x, y, got, want)
			}
		}
	}
	for x := range w {
		if got, want := p.At(x, 0), p.At(x, h-b.Bottom-1); got != want {
			t.Errorf("top col %d = %d, want %d", x, got, want)
		}
		for y := range b.Bottom {
			if got, want := p.At(x, h-b.Bottom+y), p.At(x, b.Top+y); got != want {
				t.Errorf("bottom (%d,%d) = %d, want %d", x, h-b.Bottom+y, got, want)
			}
		}
	}
}

func TestWrapWiderThanInterior(t *testing.T) {
	p := newPlane(t, 6, 1, func(x, _ int) uint8 {
		if x == 4 {
			return 50
		}
		return 0
	})
	if err := Fill(Wrap, p, params8(border.Set{Left: 4, Right: 1})); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	for x := range 4 {
		if got := p.At(x, 0); got != 50 {
			t.Errorf("col %d = %d, want 50", x, got)
		}
	}
	if got := p.At(5, 0); got != 50 {
		t.Errorf("col 5 = %d, want 50", got)
	}
}

func TestFadeFloatChroma(t *testing.T) {
	const n = 12
	p := newPlane(t, n, n, func(int, int) float32 { return 0.25 })
	prm := Params[float32]{
		Borders:   border.Set{Left: 4, Top: 4, Right: 4, Bottom: 4},
		Arith:     kernel.NewFloat(plane.CategoryChroma),
		Target:    0,
		HasTarget: true,
	}
	if err := Fill(Fade, p, prm); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	checks := []struct {
		name string
		x, y int
		want float32
	}{
		{"left outer", 0, 5, 0},
		{"left inner", 3, 5, 0.1875},
		{"right inner", 8, 5, 0.1875},
		{"right outer", 11, 5, 0},
		{"top outer", 5, 0, 0},
		{"top inner", 5, 3, 0.1875},
		{"bottom inner", 5, 8, 0.1875},
		{"bottom outer", 5, 11, 0},
	}
	for _, c := range checks {
		if got := p.At(c.x, c.y); got != c.want {
			t.Errorf("%s = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFadeMonotonic(t *testing.T) {
	const w, h = 24, 16
	b := border.Set{Left: 5, Top: 4, Right: 6, Bottom: 3}
	p := newPlane(t, w, h, func(x, _ int) uint16 { return uint16(600 + 10*x) })
	prm := Params[uint16]{
		Borders:   b,
		Arith:     kernel.NewInt[uint16](10),
		Target:    1023,
		HasTarget: true,
	}
	if err := Fill(Fade, p, prm); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	y := h / 2
	prev := p.At(b.Left, y)
	for x := b.Left - 1; x >= 0; x-- {
		v := p.At(x, y)
		if v < prev {
			t.Errorf("left col %d = %d, below inner neighbour %d", x, v, prev)
		}
		prev = v
	}
	if prev != 1023 {
		t.Errorf("left outer = %d, want 1023", prev)
	}

	prev = p.At(w-b.Right-1, y)
	for x := w - b.Right; x < w; x++ {
		v := p.At(x, y)
		if v < prev {
			t.Errorf("right col %d = %d, below inner neighbour %d", x, v, prev)
		}
		prev = v
	}
	if prev != 1023 {
		t.Errorf("right outer = %d, want 1023", prev)
	}
}

func TestFadeOppositeEdgeTarget(t *testing.T) {
	p := newPlane(t, 8, 1, func(x, _ int) uint8 { return uint8(x * 10) })
	if err := Fill(Fade, p, params8(border.Set{Left: 2, Right: 2})); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	// Left fades from col 2 (20) toward col 5 (50), right from 50 toward 20.
	want := []uint8{50, 35, 20, 30, 40, 50, 35, 20}
	for x, w := range want {
		if got := p.At(x, 0); got != w {
			t.Errorf("col %d = %d, want %d", x, got, w)
		}
	}
}

func TestFixBordersKeepsRamp(t *testing.T) {
	p := newPlane(t, 16, 16, func(x, y int) uint8 {
		if x < 2 {
			return 0
		}
		return uint8(10 * y)
	})
	if err := Fill(FixBorders, p, params8(border.Set{Left: 2})); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	for y := range p.Height {
		for x := range 2 {
			if got, want := p.At(x, y), uint8(10*y); got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestFixBordersCornerBandCopies(t *testing.T) {
	orig := randomPlane(t, 16, 16, 5)
	p := orig.Clone()
	b := border.Set{Top: 2, Left: 1}
	if err := Fill(FixBorders, p, params8(b)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	// Left pass copies rows within cornerBand of the top margin.
	for y := range b.Top + cornerBand {
		if got, want := p.At(0, y), orig.At(1, y); y >= b.Top && got != want {
			t.Errorf("row %d col 0 = %d, want %d", y, got, want)
		}
	}
	// Top pass copies columns within cornerBand of the left margin.
	for x := range b.Left + cornerBand {
		if got, want := p.At(x, 1), p.At(x, 2); got != want {
			t.Errorf("col %d row 1 = %d, want %d", x, got, want)
		}
	}
}

func TestDirectional(t *testing.T) {
	a := kernel.NewInt[uint8](8)
	tests := []struct {
		name                string
		p, c, n, rp, rc, rn uint8
		want                uint8
	}{
		{"flat", 50, 50, 50, 50, 50, 50, 50},
		{"leans previous", 10, 50, 90, 50, 200, 200, 32},
		{"leans next", 10, 50, 90, 200, 200, 50, 68},
		{"linear", 10, 50, 90, 50, 90, 130, 50},
		// Both ring neighbours continue c; the next side is checked first.
		{"both continue", 10, 50, 90, 48, 100, 52, 68},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := directional[uint8](a, tt.p, tt.c, tt.n, tt.rp, tt.rc, tt.rn)
			if got != tt.want {
				t.Errorf("directional() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFieldView(t *testing.T) {
	frame := newPlane(t, 6, 8, func(x, y int) uint8 { return uint8(10*y + x) })
	field := frame.Field(1)
	if err := Fill(Repeat, field, params8(border.Set{Top: 1})); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	// Field row 0 is frame row 1, filled from field row 1 (frame row 3).
	if got := frame.At(2, 1); got != 32 {
		t.Errorf("frame (2,1) = %d, want 32", got)
	}
	if got := frame.At(2, 0); got != 2 {
		t.Errorf("frame (2,0) = %d, want 2 (other field untouched)", got)
	}
}

func TestModeFit(t *testing.T) {
	if Mirror.Fit() != border.FitSymmetric {
		t.Errorf("Mirror.Fit() = %v", Mirror.Fit())
	}
	if Reflect.Fit() != border.FitSymmetricStrict {
		t.Errorf("Reflect.Fit() = %v", Reflect.Fit())
	}
	for _, m := range []Mode{Margins, Repeat, Wrap, Fade, FixBorders} {
		if m.Fit() != border.FitAdditive {
			t.Errorf("%s.Fit() = %v, want additive", m, m.Fit())
		}
	}
}
