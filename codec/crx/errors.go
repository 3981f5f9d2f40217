/*
DESCRIPTION
  errors.go defines the categorized error kinds surfaced by the CRX decoder.

LICENSE
  Copyright (C) 2026 the crx-go contributors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the crx-go project.
*/

package crx

import "fmt"

// SignatureInvalidError indicates that the first four bytes of the input
// were not the CRX signature "CRXG".
type SignatureInvalidError struct {
	Got [4]byte
}

func (e *SignatureInvalidError) Error() string {
	return fmt.Sprintf("crx: invalid signature %q", e.Got[:])
}

// VersionUnsupportedError indicates a container version outside {1, 2, 3}.
type VersionUnsupportedError struct {
	Version uint16
}

func (e *VersionUnsupportedError) Error() string {
	return fmt.Sprintf("crx: unsupported version %d", e.Version)
}

// RowModeInvalidError indicates a version-2/3 row filter mode byte outside
// {0, 1, 2, 3, 4}.
type RowModeInvalidError struct {
	Mode byte
	Row  int
}

func (e *RowModeInvalidError) Error() string {
	return fmt.Sprintf("crx: invalid row filter mode %d at row %d", e.Mode, e.Row)
}

// NoPreviousRowError indicates filter mode 1, 2, or 3 was used on row 0,
// which has no previous row to reference.
type NoPreviousRowError struct {
	Row int
}

func (e *NoPreviousRowError) Error() string {
	return fmt.Sprintf("crx: row %d has no previous row to reference", e.Row)
}

// PaletteIndexOutOfRangeError indicates an 8-bpp palette expansion
// encountered an index beyond the palette's length.
type PaletteIndexOutOfRangeError struct {
	Size  int
	Index int
}

func (e *PaletteIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("crx: palette index %d out of range for palette of size %d", e.Index, e.Size)
}

// RowOverflowError indicates a mode-4 run-length count drove the
// remaining-pixels counter negative.
type RowOverflowError struct {
	Row int
}

func (e *RowOverflowError) Error() string {
	return fmt.Sprintf("crx: row %d run-length overflow", e.Row)
}

// ShortReadError wraps an underlying read failure from the byte source.
type ShortReadError struct {
	Want int
	Err  error
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("crx: short read (wanted %d bytes): %v", e.Want, e.Err)
}

func (e *ShortReadError) Unwrap() error { return e.Err }

// MalformedDeflateError wraps a failure from the zlib/deflate inflater.
type MalformedDeflateError struct {
	Err error
}

func (e *MalformedDeflateError) Error() string {
	return fmt.Sprintf("crx: malformed deflate stream: %v", e.Err)
}

func (e *MalformedDeflateError) Unwrap() error { return e.Err }
