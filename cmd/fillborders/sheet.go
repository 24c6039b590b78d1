package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/fillborders"
	"github.com/gogpu/fillborders/plane"
)

// Contact sheet layout, in pixels.
const (
	sheetColumns = 4
	cellWidth    = 256
	labelHeight  = 22
	cellGap      = 8
	labelSize    = 14
)

var (
	sheetBackground = color.NRGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff}
	labelColor      = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	errorColor      = color.NRGBA{R: 0xff, G: 0x60, B: 0x60, A: 0xff}
)

// contactSheet renders img through every mode of the configured preset
// and lays the results out in a labelled grid. Modes whose configuration
// is rejected get an empty cell with the error as label.
func contactSheet(img image.Image, c *config) (image.Image, error) {
	p, ok := fillborders.LookupPreset(c.preset)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", c.preset)
	}

	face, err := labelFace()
	if err != nil {
		return nil, err
	}
	defer func() { _ = face.Close() }()

	b := img.Bounds()
	cellHeight := max(1, b.Dy()*cellWidth/max(1, b.Dx()))
	cols := min(sheetColumns, len(p.Modes))
	rows := (len(p.Modes) + cols - 1) / cols
	pitchX := cellWidth + cellGap
	pitchY := cellHeight + labelHeight + cellGap

	sheet := image.NewNRGBA(image.Rect(0, 0, cols*pitchX+cellGap, rows*pitchY+cellGap))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	title := cases.Title(language.English)
	for i, m := range p.Modes {
		x0 := cellGap + (i%cols)*pitchX
		y0 := cellGap + (i/cols)*pitchY
		cell := image.Rect(x0, y0+labelHeight, x0+cellWidth, y0+labelHeight+cellHeight)

		label, fg := title.String(m.String()), labelColor
		out, err := renderMode(img, c, m)
		if err != nil {
			log.Printf("%s: %v", m, err)
			label, fg = title.String(m.String())+": n/a", errorColor
		} else {
			draw.NearestNeighbor.Scale(sheet, cell, out, out.Bounds(), draw.Src, nil)
		}

		d := &font.Drawer{
			Dst:  sheet,
			Src:  image.NewUniform(fg),
			Face: face,
			Dot:  fixed.P(x0+2, y0+labelHeight-6),
		}
		d.DrawString(label)
	}
	return sheet, nil
}

func labelFace() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// renderMode processes an 8-bit copy of img with mode m.
func renderMode(img image.Image, c *config, m fillborders.Mode) (image.Image, error) {
	fr, err := plane.FromImage(img)
	if err != nil {
		return nil, err
	}
	if err := processFrame(fr, c, fillborders.WithMode(m)); err != nil {
		return nil, err
	}
	return plane.ToImage(fr)
}
