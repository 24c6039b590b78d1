package synth

import "github.com/gogpu/fillborders/plane"

// wrap synthesizes mode Wrap: each margin copies the interior samples at
// the opposite side, as if the interior tiled the plane. Source indices
// are clamped into the interior, so a margin wider than the interior
// repeats the edge-most interior sample instead of reading margin data.
//
// Side margins of the interior rows are filled first; top and bottom rows
// then copy whole interior rows, corners included.
func wrap[T plane.Sample](p *plane.Plane[T], prm Params[T]) {
	b := prm.Borders
	w, h := p.Width, p.Height
	lo, hi := b.Left, w-b.Right-1

	for y := b.Top; y < h-b.Bottom; y++ {
		row := p.Row(y)
		for x := range b.Left {
			row[x] = row[clampInterior(w-b.Right-b.Left+x, lo, hi, w)]
		}
		edge := w - b.Right
		for x := range b.Right {
			row[edge+x] = row[clampInterior(b.Left+x, lo, hi, w)]
		}
	}

	top, bottom := b.Top, h-b.Bottom-1
	for y := range b.Top {
		copyRow(p, y, clampInterior(h-b.Bottom-b.Top+y, top, bottom, h))
	}
	edge := h - b.Bottom
	for y := range b.Bottom {
		copyRow(p, edge+y, clampInterior(b.Top+y, top, bottom, h))
	}
}
