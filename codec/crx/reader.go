/*
DESCRIPTION
  reader.go provides a little-endian byte reader abstraction over an
  in-memory byte slice, the common case for CRX decoding since CRX files
  are read whole into memory before any parsing begins.

LICENSE
  Copyright (C) 2026 the crx-go contributors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the crx-go project.
*/

package crx

import (
	"io"

	"github.com/pkg/errors"
)

// reader is the byte-source abstraction the core decoding pipeline reads
// from: fixed-width little-endian integers and exact-length byte slices.
type reader struct {
	buf []byte
	off int
}

// newReader returns a reader over the whole of buf.
func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

// newReaderFrom drains src into memory and returns a reader over it.
func newReaderFrom(src io.Reader) (*reader, error) {
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, &ShortReadError{Want: -1, Err: err}
	}
	return newReader(buf), nil
}

// remaining returns the bytes not yet consumed.
func (r *reader) remaining() []byte { return r.buf[r.off:] }

// len returns the number of unconsumed bytes.
func (r *reader) len() int { return len(r.buf) - r.off }

// bytes reads exactly n bytes and advances the cursor.
func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.buf) {
		return nil, &ShortReadError{Want: n, Err: io.ErrUnexpectedEOF}
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// u8 reads a single byte.
func (r *reader) u8() (byte, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, errors.Wrap(err, "read u8")
	}
	return b[0], nil
}

// u16 reads an unsigned 16-bit little-endian integer.
func (r *reader) u16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, errors.Wrap(err, "read u16")
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// i16 reads a signed 16-bit little-endian integer.
func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// i32 reads a signed 32-bit little-endian integer.
func (r *reader) i32() (int32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, errors.Wrap(err, "read i32")
	}
	return int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24), nil
}
