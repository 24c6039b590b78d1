package synth

import "github.com/gogpu/fillborders/plane"

// fade synthesizes mode Fade. A margin sample at distance d from the
// interior edge, in a margin of size n, is Lerp(target, anchor, d, n):
// the sample next to the interior is already pulled 1/n toward the target
// and the outermost sample equals it.
//
// The anchor is the interior sample adjacent to the margin. The target is
// the configured constant, or else the interior sample at the opposite
// edge of the same row or column.
//
// Left and right margins are filled per row over the interior rows; top
// and bottom margins are then filled per column over full rows, so their
// corners fade from the horizontally filled edge rows.
func fade[T plane.Sample](p *plane.Plane[T], prm Params[T]) {
	b, a := prm.Borders, prm.Arith
	w, h := p.Width, p.Height
	first, last := clampIndex(b.Left, w), clampIndex(w-b.Right-1, w)

	target := func(opposite T) T {
		if prm.HasTarget {
			return prm.Target
		}
		return opposite
	}

	for y := b.Top; y < h-b.Bottom; y++ {
		row := p.Row(y)
		src, dst := row[first], row[last]
		if b.Left > 0 {
			tgt := target(dst)
			for x := range b.Left {
				row[x] = a.Lerp(tgt, src, b.Left-x, b.Left)
			}
		}
		if b.Right > 0 {
			tgt := target(src)
			edge := w - b.Right
			for x := range b.Right {
				row[edge+x] = a.Lerp(tgt, dst, x+1, b.Right)
			}
		}
	}

	top, bottom := clampIndex(b.Top, h), clampIndex(h-b.Bottom-1, h)
	topRow, bottomRow := p.Row(top), p.Row(bottom)
	for x := range w {
		src, dst := topRow[x], bottomRow[x]
		if b.Top > 0 {
			tgt := target(dst)
			for y := range b.Top {
				p.Row(y)[x] = a.Lerp(tgt, src, b.Top-y, b.Top)
			}
		}
		if b.Bottom > 0 {
			tgt := target(src)
			edge := h - b.Bottom
			for y := range b.Bottom {
				p.Row(edge + y)[x] = a.Lerp(tgt, dst, y+1, b.Bottom)
			}
		}
	}
}
