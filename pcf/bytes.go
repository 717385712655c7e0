package pcf

import (
	"bytes"
	"errors"
	"io"
)

// Reading bytes from a font's binary representation.
//
// PCF mixes byte orders: the table directory at the head of the file is
// little-endian, while table bodies are big-endian (the byte-order format
// bit is checked where the format requires it). All readers below take
// explicit offsets; callers keep their own cursors as plain values.

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

func u32le(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])<<0
}

// binarySegm is a segment of byte data. We use it throughout this module
// to view slices of the font's binary data.
type binarySegm []byte

func (b binarySegm) Size() int {
	return len(b)
}

func (b binarySegm) Bytes() []byte {
	return b
}

func (b binarySegm) Reader() io.Reader {
	return bytes.NewReader(b)
}

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n <= 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// u8 returns the byte in b at offset i.
func (b binarySegm) u8(i int) (byte, error) {
	if i < 0 || i >= len(b) {
		return 0, errBufferBounds
	}
	return b[i], nil
}

// u16 returns the big-endian uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// i16 returns the big-endian int16 in b at the relative offset i.
func (b binarySegm) i16(i int) (int16, error) {
	n, err := b.u16(i)
	return int16(n), err
}

// u32 returns the big-endian uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// i32 returns the big-endian int32 in b at the relative offset i.
func (b binarySegm) i32(i int) (int32, error) {
	n, err := b.u32(i)
	return int32(n), err
}

// u32LE returns the little-endian uint32 in b at the relative offset i.
// The table directory and the per-table format words are the only
// little-endian values in a PCF file.
func (b binarySegm) u32LE(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32le(buf), nil
}

// cstring returns the NUL-terminated string in b starting at offset i.
// Used for the string pools of the properties and glyph-names tables.
func (b binarySegm) cstring(i int) (string, error) {
	if i < 0 || i >= len(b) {
		return "", errBufferBounds
	}
	end := bytes.IndexByte(b[i:], 0)
	if end < 0 {
		return "", errBufferBounds
	}
	return string(b[i : i+end]), nil
}
