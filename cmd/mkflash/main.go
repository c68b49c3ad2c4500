//go:build !tinygo

// Command mkflash packs pixmap blobs into a flash image behind a name index.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"glint/gui/pixmap"
	"glint/hal"
)

const (
	defaultFlashPath = "glint.flash"
	defaultFlashSize = 2 * 1024 * 1024
)

func main() {
	var srcDir string
	var outPath string
	var flashSize uint
	flag.StringVar(&srcDir, "src", "", "Directory of .pxm blobs produced by mkpixmap.")
	flag.StringVar(&outPath, "out", defaultFlashPath, "Output flash image path.")
	flag.UintVar(&flashSize, "size", defaultFlashSize, "Flash image size (bytes).")
	flag.Parse()

	if srcDir == "" {
		fmt.Fprintln(os.Stderr, "error: -src is required")
		os.Exit(2)
	}
	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	n, err := run(srcDir, outPath, uint32(flashSize))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d pixmaps\n", outPath, n)
}

func run(srcDir, outPath string, flashSize uint32) (int, error) {
	names, blobs, err := readBlobs(srcDir)
	if err != nil {
		return 0, err
	}
	img, err := pixmap.BuildIndex(names, blobs)
	if err != nil {
		return 0, err
	}
	if uint64(len(img)) > uint64(flashSize) {
		return 0, fmt.Errorf("%d bytes of pixmaps do not fit in %d bytes of flash", len(img), flashSize)
	}

	if err := os.Remove(outPath); err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("remove %q: %w", outPath, err)
	}
	fl, err := hal.OpenFlashFile(outPath, flashSize)
	if err != nil {
		return 0, err
	}
	if c, ok := fl.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}
	if err := fl.Erase(0, fl.SizeBytes()); err != nil {
		return 0, fmt.Errorf("erase %q: %w", outPath, err)
	}
	if _, err := fl.WriteAt(img, 0); err != nil {
		return 0, fmt.Errorf("write %q: %w", outPath, err)
	}
	return len(names), nil
}

// readBlobs loads every *.pxm file in dir, sorted by name. The index name
// is the file name without its extension.
func readBlobs(dir string) ([]string, [][]byte, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pxm"))
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no .pxm files in %q", dir)
	}
	sort.Strings(paths)

	names := make([]string, 0, len(paths))
	blobs := make([][]byte, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, nil, err
		}
		if _, err := pixmap.ParseBlob(b); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", p, err)
		}
		names = append(names, strings.TrimSuffix(filepath.Base(p), ".pxm"))
		blobs = append(blobs, b)
	}
	return names, blobs, nil
}
