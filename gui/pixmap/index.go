package pixmap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Index layout, little endian, followed by the blobs it points at:
//
//	magic   [4]byte "PXI1"
//	count   uint16
//	_       uint16
//	entries [count]{name [12]byte; off uint32; size uint32}
//
// Entry offsets are relative to the start of the index.
const (
	IndexHeaderSize = 8
	IndexEntrySize  = 20
	IndexNameLen    = 12
)

var indexMagic = [4]byte{'P', 'X', 'I', '1'}

var (
	ErrIndex    = errors.New("pixmap: bad index")
	ErrNotFound = errors.New("pixmap: not found")
)

type IndexEntry struct {
	Name string
	Off  uint32
	Size uint32
}

type indexHeader struct {
	Magic [4]byte
	Count uint16
	_     uint16
}

type indexRecord struct {
	Name [IndexNameLen]byte
	Off  uint32
	Size uint32
}

// BuildIndex lays out blobs after the index in the given order and returns
// the index bytes followed by the blob bytes.
func BuildIndex(names []string, blobs [][]byte) ([]byte, error) {
	if len(names) != len(blobs) {
		return nil, fmt.Errorf("%w: %d names for %d blobs", ErrIndex, len(names), len(blobs))
	}
	if len(names) > 0xFFFF {
		return nil, fmt.Errorf("%w: %d entries", ErrIndex, len(names))
	}
	var buf bytes.Buffer
	h := indexHeader{Magic: indexMagic, Count: uint16(len(names))}
	if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	off := uint32(IndexHeaderSize + IndexEntrySize*len(names))
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" || len(name) > IndexNameLen {
			return nil, fmt.Errorf("%w: name %q", ErrIndex, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrIndex, name)
		}
		seen[name] = true
		rec := indexRecord{Off: off, Size: uint32(len(blobs[i]))}
		copy(rec.Name[:], name)
		if err := binary.Write(&buf, binary.LittleEndian, &rec); err != nil {
			return nil, err
		}
		off += rec.Size
	}
	for _, b := range blobs {
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

// ReadIndex reads the index stored at off.
func ReadIndex(r io.ReaderAt, off int64) ([]IndexEntry, error) {
	var hb [IndexHeaderSize]byte
	if _, err := r.ReadAt(hb[:], off); err != nil {
		return nil, fmt.Errorf("%w: read header at %d: %w", ErrIndex, off, err)
	}
	var h indexHeader
	if err := binary.Read(bytes.NewReader(hb[:]), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndex, err)
	}
	if h.Magic != indexMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrIndex, h.Magic[:])
	}

	raw := make([]byte, IndexEntrySize*int(h.Count))
	if _, err := r.ReadAt(raw, off+IndexHeaderSize); err != nil {
		return nil, fmt.Errorf("%w: read %d entries: %w", ErrIndex, h.Count, err)
	}
	recs := make([]indexRecord, h.Count)
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndex, err)
	}
	entries := make([]IndexEntry, len(recs))
	for i, rec := range recs {
		entries[i] = IndexEntry{
			Name: string(bytes.TrimRight(rec.Name[:], "\x00")),
			Off:  rec.Off,
			Size: rec.Size,
		}
	}
	return entries, nil
}

// Lookup finds name in the index at off and opens its blob for streaming.
func Lookup(r io.ReaderAt, off int64, name string) (Pixmap, error) {
	entries, err := ReadIndex(r, off)
	if err != nil {
		return Pixmap{}, err
	}
	for _, e := range entries {
		if e.Name != name {
			continue
		}
		pm, n, err := OpenBlob(r, off+int64(e.Off))
		if err != nil {
			return Pixmap{}, fmt.Errorf("open %q: %w", name, err)
		}
		if n != int64(e.Size) {
			return Pixmap{}, fmt.Errorf("%w: %q is %d bytes, index says %d", ErrIndex, name, n, e.Size)
		}
		return pm, nil
	}
	return Pixmap{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}
