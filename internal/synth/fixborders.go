package synth

import (
	"github.com/gogpu/fillborders/internal/kernel"
	"github.com/gogpu/fillborders/plane"
)

// cornerBand is the number of samples next to each perpendicular margin
// that fixBorders fills by plain copy.
const cornerBand = 3

// edge addresses one side of a plane as lines parallel to that side.
// Line i, position j maps to a sample index; step points from a margin
// line toward the interior.
type edge struct {
	vertical bool
	stride   int
	lines    int // extent across the side
	length   int // extent along the side
	step     int
}

func (e edge) index(line, pos int) int {
	if e.vertical {
		return pos*e.stride + line
	}
	return line*e.stride + pos
}

// fixBorders synthesizes mode FixBorders. Sides run left, right, top,
// bottom; each margin is filled one line at a time moving outward, so the
// line next to the one being filled is always final.
//
// For a margin sample c is the sample of the adjacent inner line at the
// same position, p and n its neighbours along the line, and rp, rc, rn the
// same three samples one line further in. The result is one of
//
//	(p + 3c + 5n) / 9   when rn is closer to c than the ring's local detail
//	(5p + 3c + n) / 9   when rp is
//	(p + 3c + n) / 5    otherwise
//
// where the local detail is |rc - (rp + 2rc + rn)/4|. Positions within
// cornerBand of a perpendicular margin copy c instead.
func fixBorders[T plane.Sample](p *plane.Plane[T], prm Params[T]) {
	b := prm.Borders
	w, h := p.Width, p.Height

	vert := edge{vertical: true, stride: p.Stride, lines: w, length: h}
	horz := edge{stride: p.Stride, lines: h, length: w}
	rows := band{lo: b.Top + cornerBand, hi: h - b.Bottom - cornerBand}
	cols := band{lo: b.Left + cornerBand, hi: w - b.Right - cornerBand}

	left, right := vert, vert
	left.step, right.step = 1, -1
	for x := b.Left - 1; x >= 0; x-- {
		fixLine(p, prm, left, x, rows)
	}
	for x := w - b.Right; x < w; x++ {
		fixLine(p, prm, right, x, rows)
	}

	top, bottom := horz, horz
	top.step, bottom.step = 1, -1
	for y := b.Top - 1; y >= 0; y-- {
		fixLine(p, prm, top, y, cols)
	}
	for y := h - b.Bottom; y < h; y++ {
		fixLine(p, prm, bottom, y, cols)
	}
}

// band is the half-open range of positions that get the directional blend.
type band struct{ lo, hi int }

func (b band) blends(pos int) bool { return pos >= b.lo && pos < b.hi }

// fixLine fills margin line of e from the two lines inward of it.
func fixLine[T plane.Sample](p *plane.Plane[T], prm Params[T], e edge, line int, blend band) {
	a := prm.Arith
	d := p.Data
	inner := clampIndex(line+e.step, e.lines)
	ring := clampIndex(line+2*e.step, e.lines)
	if inner == line {
		return
	}

	for pos := range e.length {
		prev, next := clampIndex(pos-1, e.length), clampIndex(pos+1, e.length)
		c := d[e.index(inner, pos)]
		if !blend.blends(pos) {
			d[e.index(line, pos)] = c
			continue
		}
		d[e.index(line, pos)] = directional(a,
			d[e.index(inner, prev)], c, d[e.index(inner, next)],
			d[e.index(ring, prev)], d[e.index(ring, pos)], d[e.index(ring, next)],
		)
	}
}

// directional picks the blend of p, c, n leaning toward the neighbour
// whose ring sample continues c.
func directional[T plane.Sample](a kernel.Arith[T], p, c, n, rp, rc, rn T) T {
	blur := a.ToFloat(a.Blend3(rp, rc, rn, 1, 2, 1))
	fc := a.ToFloat(c)
	thr := absf(a.ToFloat(rc) - blur)

	switch {
	case absf(a.ToFloat(rn)-fc) < thr:
		return a.Blend3(p, c, n, 1, 3, 5)
	case absf(a.ToFloat(rp)-fc) < thr:
		return a.Blend3(p, c, n, 5, 3, 1)
	default:
		return a.Blend3(p, c, n, 1, 3, 1)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
