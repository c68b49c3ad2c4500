package hal

import (
	"fmt"
	"io"
	"math"
	"os"
)

// FlashReader exposes a flash region starting at Base as an io.ReaderAt so
// pixmaps can stream straight from flash.
type FlashReader struct {
	Flash Flash
	Base  uint32
}

func (r FlashReader) ReadAt(p []byte, off int64) (int, error) {
	size := int64(r.Flash.SizeBytes())
	pos := int64(r.Base) + off
	if off < 0 || pos >= size {
		return 0, io.EOF
	}
	short := false
	if rem := size - pos; int64(len(p)) > rem {
		p = p[:rem]
		short = true
	}
	n, err := r.Flash.ReadAt(p, uint32(pos))
	if err != nil {
		return n, fmt.Errorf("flash reader at %d: %w", pos, err)
	}
	if short || n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// checkErase validates erasing size bytes at off on a device of total bytes
// with erase blocks of block bytes.
func checkErase(off, size, total, block uint32) error {
	switch {
	case block == 0:
		return ErrNotImplemented
	case off%block != 0, size%block != 0, off >= total, size > total-off:
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}
	return nil
}

// clampU32 narrows a device-reported size, mapping negatives to zero.
func clampU32(v int64) uint32 {
	return uint32(min(max(v, 0), math.MaxUint32))
}
