//go:build !tinygo

// Command mkpixmap converts a PNG, JPEG or BMP image into a pixmap blob.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"glint/gui/color"
	"glint/gui/pixmap"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input image (.png, .jpg, .bmp).")
		outPath = flag.String("out", "", "Output blob path.")
		format  = flag.String("format", "rle-rgb565", "rgb332|rgb565|rgb888|rle-rgb332|rle-rgb565|rle-rgb888.")
		width   = flag.Int("w", 0, "Scale to this width (0 = keep aspect or source size).")
		height  = flag.Int("h", 0, "Scale to this height (0 = keep aspect or source size).")
		interp  = flag.String("interp", "bilinear", "nearest|bilinear scaling.")
		bg      = flag.String("bg", "000000", "Background (RRGGBB) behind transparent pixels.")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fatalf("usage: mkpixmap -in image.png -out image.pxm [-format rle-rgb565] [-w 64] [-h 64] [-interp bilinear] [-bg 000000]")
	}
	f, err := pixmap.ParseFormat(strings.ToLower(*format))
	if err != nil {
		fatalf("format: %v", err)
	}
	ip, err := pixmap.ParseInterp(*interp)
	if err != nil {
		fatalf("interp: %v", err)
	}
	back, err := parseHex(*bg)
	if err != nil {
		fatalf("bg: %v", err)
	}

	b, err := convertFile(*inPath, options{format: f, width: *width, height: *height, interp: ip, bg: back})
	if err != nil {
		fatalf("convert: %v", err)
	}
	if err := os.WriteFile(*outPath, b, 0o644); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

type options struct {
	format        pixmap.Format
	width, height int
	interp        pixmap.Interp
	bg            color.Color
}

func convertFile(path string, opt options) ([]byte, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	img, kind, err := image.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	b, err := convert(img, opt)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, path, err)
	}
	return b, nil
}

// convert scales img, flattens it over opt.bg and returns the encoded blob.
func convert(img image.Image, opt options) ([]byte, error) {
	w, h := targetSize(img.Bounds().Dx(), img.Bounds().Dy(), opt.width, opt.height)
	if w <= 0 || h <= 0 || w > 0xFFFF || h > 0xFFFF {
		return nil, fmt.Errorf("invalid target size %dx%d", w, h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	var scaler xdraw.Scaler = xdraw.BiLinear
	if opt.interp == pixmap.InterpNearest {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	px := make([]color.Color, w*h)
	for i := range px {
		p := dst.Pix[4*i : 4*i+4]
		px[i] = color.Mix(color.RGB(p[0], p[1], p[2]), opt.bg, p[3])
	}
	payload, err := pixmap.Encode(opt.format, w, h, px)
	if err != nil {
		return nil, err
	}
	return pixmap.MarshalBlob(&pixmap.Pixmap{Width: w, Height: h, Format: opt.format, Bitmap: payload})
}

// targetSize fills in a zero dimension from the source aspect ratio.
func targetSize(sw, sh, w, h int) (int, int) {
	switch {
	case w == 0 && h == 0:
		return sw, sh
	case w == 0:
		return max(1, (sw*h+sh/2)/sh), h
	case h == 0:
		return w, max(1, (sh*w+sw/2)/sw)
	}
	return w, h
}

func parseHex(s string) (color.Color, error) {
	var r, g, b uint8
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.Color{}, fmt.Errorf("color %q: want RRGGBB", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGB(r, g, b), nil
}
