// Command fillborders fills the margins of an image with one of the
// border synthesis modes.
//
// Usage:
//
//	fillborders -in photo.png -out filled.png -mode mirror -left 16 -right 16
//	fillborders -in photo.jpg -out padded.png -pad 32 -mode wrap -ts 4 -ts-mode gauss
//	fillborders -in photo.png -sheet modes.png -pad 24
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/draw"

	"github.com/gogpu/fillborders"
	"github.com/gogpu/fillborders/plane"
)

// intList is a comma separated list of integers.
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	*l = (*l)[:0]
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

// config holds the parsed command line.
type config struct {
	in, out, sheet string
	preset, mode   string

	left, top, right, bottom intList
	pad                      int

	handling  string
	transient int
	smoothing string
	fade      string
	float     bool
	quality   int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "input image (png, jpeg, tiff, bmp)")
	flag.StringVar(&cfg.out, "out", "", "output image, format chosen by extension")
	flag.StringVar(&cfg.sheet, "sheet", "", "write a labelled contact sheet of every mode to this file")
	flag.StringVar(&cfg.preset, "preset", "fillborders", "preset: fillborders or fillmargins")
	flag.StringVar(&cfg.mode, "mode", "", "mode name or number (default: the preset's)")
	flag.Var(&cfg.left, "left", "left border, comma separated per plane")
	flag.Var(&cfg.top, "top", "top border, comma separated per plane")
	flag.Var(&cfg.right, "right", "right border, comma separated per plane")
	flag.Var(&cfg.bottom, "bottom", "bottom border, comma separated per plane")
	flag.IntVar(&cfg.pad, "pad", 0, "enlarge the canvas by this many pixels per side and fill them")
	flag.StringVar(&cfg.handling, "planes", "", "per-plane handling, e.g. process,copy,skip")
	flag.IntVar(&cfg.transient, "ts", 0, "wrap seam smoothing size")
	flag.StringVar(&cfg.smoothing, "ts-mode", "linear", "seam smoothing: linear, gauss or gauss-destructive")
	flag.StringVar(&cfg.fade, "fade", "", "fade target, comma separated per plane")
	flag.BoolVar(&cfg.float, "float", false, "process in float32")
	flag.IntVar(&cfg.quality, "quality", 90, "JPEG quality")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose {
		fillborders.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if cfg.in == "" || (cfg.out == "" && cfg.sheet == "") {
		flag.Usage()
		os.Exit(2)
	}

	src, err := plane.Load(cfg.in)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	if cfg.pad > 0 {
		src = padCanvas(src, cfg.pad)
		if len(cfg.left)+len(cfg.top)+len(cfg.right)+len(cfg.bottom) == 0 {
			cfg.left, cfg.top, cfg.right, cfg.bottom = intList{cfg.pad}, intList{cfg.pad}, intList{cfg.pad}, intList{cfg.pad}
		}
	}

	if cfg.out != "" {
		out, err := process(src, &cfg)
		if err != nil {
			log.Fatalf("Failed to process: %v", err)
		}
		if err := plane.Save(cfg.out, out, cfg.quality); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Saved %s (%dx%d)\n", cfg.out, out.Bounds().Dx(), out.Bounds().Dy())
	}

	if cfg.sheet != "" {
		sheet, err := contactSheet(src, &cfg)
		if err != nil {
			log.Fatalf("Failed to build sheet: %v", err)
		}
		if err := plane.Save(cfg.sheet, sheet, cfg.quality); err != nil {
			log.Fatalf("Failed to save sheet: %v", err)
		}
		log.Printf("Contact sheet saved to %s\n", cfg.sheet)
	}
}

// padCanvas places img in the middle of a canvas pad pixels larger on
// every side. 16-bit images keep their depth.
func padCanvas(img image.Image, pad int) image.Image {
	b := img.Bounds()
	r := image.Rect(0, 0, b.Dx()+2*pad, b.Dy()+2*pad)

	var dst draw.Image
	if plane.Is16Bit(img) {
		dst = image.NewNRGBA64(r)
	} else {
		dst = image.NewNRGBA(r)
	}
	draw.Copy(dst, image.Pt(pad, pad), img, b, draw.Src, nil)
	return dst
}

// options translates the command line into filter options. float selects
// which kind of fade target is produced.
func (c *config) options(float bool) ([]fillborders.Option, error) {
	opts := []fillborders.Option{
		fillborders.WithBorders(c.left, c.top, c.right, c.bottom),
	}

	if c.mode != "" {
		m, err := fillborders.ParseMode(c.mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fillborders.WithMode(m))
	}

	if c.handling != "" {
		var hs []fillborders.Handling
		for _, name := range strings.Split(c.handling, ",") {
			h, err := parseHandling(strings.TrimSpace(name))
			if err != nil {
				return nil, err
			}
			hs = append(hs, h)
		}
		opts = append(opts, fillborders.WithHandling(hs...))
	}

	if c.transient > 0 {
		s, err := parseSmoothing(c.smoothing)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fillborders.WithTransient(c.transient, s))
	}

	if c.fade != "" {
		var vals []float64
		for _, f := range strings.Split(c.fade, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("fade target %q: %w", f, err)
			}
			vals = append(vals, v)
		}
		if float {
			opts = append(opts, fillborders.WithFadeTargetFloat(vals...))
		} else {
			ints := make([]int, len(vals))
			for i, v := range vals {
				ints[i] = int(math.Round(v))
			}
			opts = append(opts, fillborders.WithFadeTargetInt(ints...))
		}
	}
	return opts, nil
}

func parseHandling(s string) (fillborders.Handling, error) {
	for _, h := range []fillborders.Handling{
		fillborders.HandlingDefault,
		fillborders.HandlingSkip,
		fillborders.HandlingCopy,
		fillborders.HandlingProcess,
	} {
		if strings.EqualFold(s, h.String()) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", fillborders.ErrInvalidHandling, s)
}

func parseSmoothing(s string) (fillborders.Smoothing, error) {
	for _, sm := range []fillborders.Smoothing{
		fillborders.SmoothLinear,
		fillborders.SmoothGauss,
		fillborders.SmoothGaussDestructive,
	} {
		if strings.EqualFold(s, sm.String()) {
			return sm, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", fillborders.ErrInvalidSmoothing, s)
}

// process fills the borders of img and returns the result as an image of
// the same depth.
func process(img image.Image, c *config) (image.Image, error) {
	if plane.Is16Bit(img) {
		fr, err := plane.FromImage16(img)
		if err != nil {
			return nil, err
		}
		if err := processFrame(fr, c); err != nil {
			return nil, err
		}
		return plane.ToImage16(fr)
	}

	fr, err := plane.FromImage(img)
	if err != nil {
		return nil, err
	}
	if err := processFrame(fr, c); err != nil {
		return nil, err
	}
	return plane.ToImage(fr)
}

// processFrame fills fr in place, going through float32 when requested.
func processFrame[T plane.Integer](fr *plane.Frame[T], c *config, extra ...fillborders.Option) error {
	if !c.float {
		return run(fr, c, extra...)
	}

	ff, err := plane.ToFloat(fr)
	if err != nil {
		return err
	}
	if err := run(ff, c, extra...); err != nil {
		return err
	}
	back, err := plane.FromFloat[T](ff, fr.Format.Bits)
	if err != nil {
		return err
	}
	for i, p := range back.Planes {
		if err := fr.Planes[i].CopyFrom(p); err != nil {
			return err
		}
	}
	return nil
}

func run[T plane.Sample](fr *plane.Frame[T], c *config, extra ...fillborders.Option) error {
	opts, err := c.options(fr.Format.Sample.IsFloat())
	if err != nil {
		return err
	}
	f, err := fillborders.NewPreset[T](c.preset, fr.Format, append(opts, extra...)...)
	if err != nil {
		return err
	}
	return f.Process(fr, fr)
}
