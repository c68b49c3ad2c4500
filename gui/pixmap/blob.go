package pixmap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Blob layout, little endian:
//
//	magic   [4]byte "PXM1"
//	width   uint16
//	height  uint16
//	format  uint8
//	_       uint8
//	length  uint32  payload bytes
//	payload [length]byte
const BlobHeaderSize = 14

var blobMagic = [4]byte{'P', 'X', 'M', '1'}

var ErrBlob = errors.New("pixmap: bad blob")

type blobHeader struct {
	Magic  [4]byte
	Width  uint16
	Height uint16
	Format Format
	_      uint8
	Length uint32
}

// MarshalBlob wraps an encoded payload with its header.
func MarshalBlob(pm *Pixmap) ([]byte, error) {
	if err := pm.Validate(); err != nil {
		return nil, err
	}
	if pm.Source != nil {
		return nil, fmt.Errorf("%w: streamed pixmaps cannot be marshaled", ErrBlob)
	}
	if pm.Width > 0xFFFF || pm.Height > 0xFFFF {
		return nil, fmt.Errorf("%w: %dx%d too large", ErrBlob, pm.Width, pm.Height)
	}
	h := blobHeader{
		Magic:  blobMagic,
		Width:  uint16(pm.Width),
		Height: uint16(pm.Height),
		Format: pm.Format,
		Length: uint32(len(pm.Bitmap)),
	}
	var buf bytes.Buffer
	buf.Grow(BlobHeaderSize + len(pm.Bitmap))
	if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	buf.Write(pm.Bitmap)
	return buf.Bytes(), nil
}

func parseHeader(b []byte) (blobHeader, error) {
	var h blobHeader
	if len(b) < BlobHeaderSize {
		return h, fmt.Errorf("%w: short header", ErrBlob)
	}
	if err := binary.Read(bytes.NewReader(b[:BlobHeaderSize]), binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("%w: %v", ErrBlob, err)
	}
	if h.Magic != blobMagic {
		return h, fmt.Errorf("%w: magic %q", ErrBlob, h.Magic[:])
	}
	if !h.Format.Valid() {
		return h, fmt.Errorf("%w: %w %d", ErrBlob, ErrFormat, uint8(h.Format))
	}
	return h, nil
}

// ParseBlob returns a pixmap whose Bitmap aliases b.
func ParseBlob(b []byte) (Pixmap, error) {
	h, err := parseHeader(b)
	if err != nil {
		return Pixmap{}, err
	}
	end := BlobHeaderSize + int(h.Length)
	if end > len(b) {
		return Pixmap{}, fmt.Errorf("%w: payload %d bytes, have %d", ErrBlob, h.Length, len(b)-BlobHeaderSize)
	}
	pm := Pixmap{
		Width:  int(h.Width),
		Height: int(h.Height),
		Format: h.Format,
		Bitmap: b[BlobHeaderSize:end],
	}
	return pm, pm.Validate()
}

// OpenBlob reads the header at off and returns a pixmap that streams its
// payload from r on every draw.
func OpenBlob(r io.ReaderAt, off int64) (Pixmap, int64, error) {
	var hdr [BlobHeaderSize]byte
	if _, err := r.ReadAt(hdr[:], off); err != nil {
		return Pixmap{}, 0, fmt.Errorf("%w: read header at %d: %w", ErrBlob, off, err)
	}
	h, err := parseHeader(hdr[:])
	if err != nil {
		return Pixmap{}, 0, err
	}
	pm := Pixmap{
		Width:  int(h.Width),
		Height: int(h.Height),
		Format: h.Format,
		Source: io.NewSectionReader(r, off+BlobHeaderSize, int64(h.Length)),
	}
	return pm, BlobHeaderSize + int64(h.Length), pm.Validate()
}
