//go:build tinygo && baremetal && (rp2040 || rp2350)

package hal

import (
	"fmt"
	"machine"
	"os"
)

// rp2Flash is the flash area TinyGo leaves after the program image. A
// mkflash image is written at its start, so pixmap index offsets are
// relative to it. NOR rules are enforced by the chip.
type rp2Flash struct {
	size  uint32
	block uint32
}

func newRP2Flash() Flash {
	return &rp2Flash{
		size:  clampU32(machine.Flash.Size()),
		block: clampU32(machine.Flash.EraseBlockSize()),
	}
}

func (f *rp2Flash) SizeBytes() uint32       { return f.size }
func (f *rp2Flash) EraseBlockBytes() uint32 { return f.block }

func (f *rp2Flash) ReadAt(p []byte, off uint32) (int, error) {
	if off >= f.size {
		return 0, fmt.Errorf("flash read at %d: %w", off, os.ErrInvalid)
	}
	p = p[:min(len(p), int(f.size-off))]
	n, err := machine.Flash.ReadAt(p, int64(off))
	if err != nil {
		return n, fmt.Errorf("flash read at %d: %w", off, err)
	}
	return n, nil
}

func (f *rp2Flash) WriteAt(p []byte, off uint32) (int, error) {
	if off >= f.size {
		return 0, fmt.Errorf("flash write at %d: %w", off, os.ErrInvalid)
	}
	p = p[:min(len(p), int(f.size-off))]
	n, err := machine.Flash.WriteAt(p, int64(off))
	if err != nil {
		return n, fmt.Errorf("flash write at %d: %w", off, err)
	}
	return n, nil
}

func (f *rp2Flash) Erase(off, size uint32) error {
	if size == 0 {
		return nil
	}
	if err := checkErase(off, size, f.size, f.block); err != nil {
		return err
	}
	if err := machine.Flash.EraseBlocks(int64(off/f.block), int64(size/f.block)); err != nil {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, err)
	}
	return nil
}
