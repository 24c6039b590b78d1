package synth

import "github.com/gogpu/fillborders/plane"

// marginsTail is the number of trailing columns a margins row copies
// verbatim from its neighbour instead of averaging.
const marginsTail = 8

// fillMargins synthesizes mode Margins.
//
// Order: side margins of the interior rows first, then top rows from
// top-1 up to 0 and bottom rows from h-bottom down to h-1. Each top or
// bottom row reads only the row next to it on the interior side, which is
// final by the time it is read.
func fillMargins[T plane.Sample](p *plane.Plane[T], prm Params[T]) {
	b, a := prm.Borders, prm.Arith
	h := p.Height
	flatSides(p, b)

	average := func(dst, src []T) {
		w := len(dst)
		dst[0] = src[0]
		tail := max(w-marginsTail, 0)
		copy(dst[tail:], src[tail:])
		for x := 1; x < w-marginsTail; x++ {
			dst[x] = a.Blend3(src[x-1], src[x], src[x+1], 3, 2, 3)
		}
	}

	for y := b.Top - 1; y >= 0; y-- {
		if src := clampIndex(y+1, h); src != y {
			average(p.Row(y), p.Row(src))
		}
	}
	for y := h - b.Bottom; y < h; y++ {
		if src := clampIndex(y-1, h); src != y {
			average(p.Row(y), p.Row(src))
		}
	}
}

// repeat synthesizes mode Repeat: side margins replicate the nearest
// interior sample, then top and bottom rows copy the nearest interior
// row, corners included.
func repeat[T plane.Sample](p *plane.Plane[T], prm Params[T]) {
	b := prm.Borders
	h := p.Height
	flatSides(p, b)

	top := clampIndex(b.Top, h)
	for y := range b.Top {
		copyRow(p, y, top)
	}
	bottom := clampIndex(h-b.Bottom-1, h)
	for y := h - b.Bottom; y < h; y++ {
		copyRow(p, y, bottom)
	}
}

// mirror synthesizes mode Mirror: margin offset k from the edge takes the
// interior sample at 2*border-1-k. Side margins of the interior rows are
// filled first so mirrored top and bottom rows carry their corners.
func mirror[T plane.Sample](p *plane.Plane[T], prm Params[T]) {
	symmetric(p, prm, 1)
}

// reflect synthesizes mode Reflect: like mirror with the boundary sample
// as the axis, so offset k takes the sample at 2*border-k.
func reflect[T plane.Sample](p *plane.Plane[T], prm Params[T]) {
	symmetric(p, prm, 0)
}

// symmetric implements mirror (skip = 1) and reflect (skip = 0).
func symmetric[T plane.Sample](p *plane.Plane[T], prm Params[T], skip int) {
	b := prm.Borders
	w, h := p.Width, p.Height

	for y := b.Top; y < h-b.Bottom; y++ {
		row := p.Row(y)
		for x := range b.Left {
			row[x] = row[clampIndex(2*b.Left-skip-x, w)]
		}
		edge := w - b.Right
		for x := range b.Right {
			row[edge+x] = row[clampIndex(edge-2+skip-x, w)]
		}
	}

	for y := range b.Top {
		copyRow(p, y, clampIndex(2*b.Top-skip-y, h))
	}
	edge := h - b.Bottom
	for y := range b.Bottom {
		copyRow(p, edge+y, clampIndex(edge-2+skip-y, h))
	}
}
