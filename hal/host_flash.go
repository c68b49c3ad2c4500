//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostFlashDefaultPath      = "glint.flash"
	hostFlashDefaultSizeBytes = 2 * 1024 * 1024
	hostFlashEraseBlockBytes  = 4096

	// FlashPathEnv overrides the file backing the host flash.
	FlashPathEnv = "GLINT_FLASH_PATH"
)

var ErrFlashWriteRequiresErase = errors.New("flash write requires erase")

// hostFlash emulates NOR flash in a file: erased bytes read 0xFF and writes
// can only clear bits.
type hostFlash struct {
	mu    sync.Mutex
	f     *os.File
	size  uint32
	erase [hostFlashEraseBlockBytes]byte
}

func newHostFlash() *hostFlash {
	path := os.Getenv(FlashPathEnv)
	if path == "" {
		path = hostFlashDefaultPath
	}
	hf, err := OpenFlashFile(path, hostFlashDefaultSizeBytes)
	if err != nil {
		return &hostFlash{}
	}
	return hf.(*hostFlash)
}

// OpenFlashFile opens or creates a flash image at path. A new or empty file
// is grown to size bytes; an existing image keeps its size.
func OpenFlashFile(path string, size uint32) (Flash, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open flash image: %w", err)
	}
	st, err := f.Stat()
	switch {
	case err != nil:
		_ = f.Close()
		return nil, fmt.Errorf("stat flash image: %w", err)
	case st.Size() > int64(^uint32(0)):
		_ = f.Close()
		return nil, fmt.Errorf("flash image %s is %d bytes: %w", path, st.Size(), os.ErrInvalid)
	case st.Size() > 0:
		size = uint32(st.Size())
	default:
		if err := f.Truncate(int64(size)); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("size flash image: %w", err)
		}
	}

	hf := &hostFlash{f: f, size: size}
	for i := range hf.erase {
		hf.erase[i] = 0xFF
	}
	return hf, nil
}

func (f *hostFlash) SizeBytes() uint32 { return f.size }
func (f *hostFlash) EraseBlockBytes() uint32 {
	return hostFlashEraseBlockBytes
}

func (f *hostFlash) ReadAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return 0, ErrNotImplemented
	}
	if off >= f.size {
		return 0, fmt.Errorf("flash read at %d: %w", off, os.ErrInvalid)
	}
	p = p[:min(len(p), int(f.size-off))]
	return f.f.ReadAt(p, int64(off))
}

func (f *hostFlash) WriteAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return 0, ErrNotImplemented
	}
	if off >= f.size {
		return 0, fmt.Errorf("flash write at %d: %w", off, os.ErrInvalid)
	}
	p = p[:min(len(p), int(f.size-off))]

	cur := make([]byte, len(p))
	if _, err := f.f.ReadAt(cur, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("flash read before write at %d: %w", off, err)
	}
	for i := range p {
		if cur[i]&p[i] != p[i] {
			return 0, ErrFlashWriteRequiresErase
		}
	}
	return f.f.WriteAt(p, int64(off))
}

func (f *hostFlash) Erase(off, size uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return ErrNotImplemented
	}
	if size == 0 {
		return nil
	}
	if err := checkErase(off, size, f.size, hostFlashEraseBlockBytes); err != nil {
		return err
	}

	for ; size > 0; off, size = off+hostFlashEraseBlockBytes, size-hostFlashEraseBlockBytes {
		if _, err := f.f.WriteAt(f.erase[:], int64(off)); err != nil {
			return fmt.Errorf("flash erase block at %d: %w", off, err)
		}
	}
	return nil
}

// Close releases the backing file.
func (f *hostFlash) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}
