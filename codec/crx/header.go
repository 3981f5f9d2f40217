/*
DESCRIPTION
  header.go parses the CRX signature and the fixed 16-byte header block, and
  derives the bytes-per-pixel of the container from the header's depth
  field.

LICENSE
  Copyright (C) 2026 the crx-go contributors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the crx-go project.
*/

package crx

import "github.com/pkg/errors"

// signature is the four leading bytes every CRX file must start with.
var signature = [4]byte{'C', 'R', 'X', 'G'}

// flagHasLength is the header.flag bit that indicates the compressed
// payload is prefixed by an explicit i32 length, rather than running to
// end-of-stream.
const flagHasLength = 0x10

// header is the fixed 16-byte block that follows the signature.
type header struct {
	innerX  int16
	innerY  int16
	width   uint16
	height  uint16
	version uint16
	flag    uint16
	depth   int16
	mode    uint16
}

// bpp returns the bits-per-pixel implied by depth, and whether a palette
// is present (true iff bpp == 8).
func (h *header) bpp() (bpp int, hasPalette bool) {
	switch h.depth {
	case 0:
		return 24, false
	case 1:
		return 32, false
	default:
		return 8, true
	}
}

// readSignature consumes and validates the four-byte CRX signature.
func readSignature(r *reader) error {
	b, err := r.bytes(4)
	if err != nil {
		return errors.Wrap(err, "read signature")
	}
	if b[0] != signature[0] || b[1] != signature[1] || b[2] != signature[2] || b[3] != signature[3] {
		var got [4]byte
		copy(got[:], b)
		return &SignatureInvalidError{Got: got}
	}
	return nil
}

// readHeader parses the 16-byte header and validates the version field.
// Per the invariants, version must be validated before any further bytes
// are consumed (palette, clips, or payload).
func readHeader(r *reader) (*header, error) {
	var h header
	var err error

	if h.innerX, err = r.i16(); err != nil {
		return nil, errors.Wrap(err, "read inner_x")
	}
	if h.innerY, err = r.i16(); err != nil {
		return nil, errors.Wrap(err, "read inner_y")
	}
	if h.width, err = r.u16(); err != nil {
		return nil, errors.Wrap(err, "read width")
	}
	if h.height, err = r.u16(); err != nil {
		return nil, errors.Wrap(err, "read height")
	}
	if h.version, err = r.u16(); err != nil {
		return nil, errors.Wrap(err, "read version")
	}
	if h.flag, err = r.u16(); err != nil {
		return nil, errors.Wrap(err, "read flag")
	}
	if h.depth, err = r.i16(); err != nil {
		return nil, errors.Wrap(err, "read depth")
	}
	if h.mode, err = r.u16(); err != nil {
		return nil, errors.Wrap(err, "read mode")
	}

	if h.version < 1 || h.version > 3 {
		return nil, &VersionUnsupportedError{Version: h.version}
	}

	return &h, nil
}
