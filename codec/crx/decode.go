/*
DESCRIPTION
  decode.go provides the top-level CRX decoder: it orchestrates signature
  and header parsing, optional palette and clip parsing, variant selection
  between the version-1 and version-2/3 decompressors, and the final
  post-processing pass, producing a CrxFile.

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

// CrxFile is the result of decoding a CRX image: its header metadata, any
// clip rectangles, and the fully decoded pixel buffer in canonical
// top-to-bottom, left-to-right RGB or RGBA order.
type CrxFile struct {
	innerX, innerY int16
	width, height  uint16
	bpp            int // 24 or 32
	clips          []Clip
	pixels         []byte
}

// InnerX returns the x-offset of the image within a larger canvas. This
// value is opaque to the decoder; it is passed through unchanged.
func (f *CrxFile) InnerX() int16 { return f.innerX }

// InnerY returns the y-offset of the image within a larger canvas.
func (f *CrxFile) InnerY() int16 { return f.innerY }

// Width returns the image width in pixels.
func (f *CrxFile) Width() uint16 { return f.width }

// Height returns the image height in pixels.
func (f *CrxFile) Height() uint16 { return f.height }

// BPP returns the final bits-per-pixel of Pixels: 24 for RGB, 32 for RGBA.
func (f *CrxFile) BPP() int { return f.bpp }

// Clips returns the opaque clip-rectangle records carried by version-3
// files. It is nil for version 1 and 2 files.
func (f *CrxFile) Clips() []Clip { return f.clips }

// Pixels returns the decoded pixel buffer: width*height*(BPP()/8) bytes,
// row-major, top-down, in RGB or RGBA component order.
func (f *CrxFile) Pixels() []byte { return f.pixels }

// Decode decodes a complete CRX file from buf.
func Decode(buf []byte) (*CrxFile, error) {
	return decode(newReader(buf))
}

// DecodeReader decodes a complete CRX file read in full from src.
func DecodeReader(src io.Reader) (*CrxFile, error) {
	r, err := newReaderFrom(src)
	if err != nil {
		return nil, err
	}
	return decode(r)
}

func decode(r *reader) (*CrxFile, error) {
	if err := readSignature(r); err != nil {
		return nil, err
	}

	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	bpp, hasPalette := h.bpp()

	var palette []rgb
	if hasPalette {
		palette, err = readPalette(r, h.depth)
		if err != nil {
			return nil, errors.Wrap(err, "crx: read palette")
		}
	}

	var clips []Clip
	if h.version >= 3 {
		clips, err = readClips(r)
		if err != nil {
			return nil, errors.Wrap(err, "crx: read clips")
		}
	}

	payload, err := readPayload(r, h.flag)
	if err != nil {
		return nil, errors.Wrap(err, "crx: read payload")
	}

	width, height := int(h.width), int(h.height)

	// decompressPixelSize is the per-pixel byte count produced by the
	// decompression stage itself, before post-processing: 1 byte per
	// pixel for palette indices, otherwise the container's native bpp/8.
	decompressPixelSize := bpp / 8

	var decompressed []byte
	switch h.version {
	case 1:
		outLen := width * height * decompressPixelSize
		decompressed, err = unpackV1(payload, outLen)
		if err != nil {
			return nil, errors.Wrap(err, "crx: unpack version 1")
		}
	default: // 2, 3
		decompressed, err = unpackV2(payload, width, height, decompressPixelSize, hasPalette)
		if err != nil {
			return nil, errors.Wrap(err, "crx: unpack version 2/3")
		}
	}

	pixels, err := postprocess(decompressed, width, height, bpp, h.mode, palette)
	if err != nil {
		return nil, errors.Wrap(err, "crx: postprocess")
	}

	finalBPP := bpp
	if bpp == 8 {
		finalBPP = 24
	}

	return &CrxFile{
		innerX: h.innerX,
		innerY: h.innerY,
		width:  h.width,
		height: h.height,
		bpp:    finalBPP,
		clips:  clips,
		pixels: pixels,
	}, nil
}

// readPayload reads the compressed blob handed to the decompressor: either
// an explicit i32-length-prefixed run, or everything to end-of-stream.
func readPayload(r *reader, flag uint16) ([]byte, error) {
	if flag&flagHasLength != 0 {
		length, err := r.i32()
		if err != nil {
			return nil, errors.Wrap(err, "read payload length")
		}
		return r.bytes(int(length))
	}
	return r.remaining(), nil
}
