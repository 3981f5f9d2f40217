/*
DESCRIPTION
  postprocess.go performs the final channel-reordering, alpha-handling and
  palette-expansion pass that turns decompressed, in-memory-order bytes
  into the canonical RGB/RGBA pixel buffer a CrxFile exposes.

LICENSE
  Copyright (C) 2026 the crx-go contributors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the crx-go project.
*/

package crx

// postprocess converts decompressed bytes to the final canonical pixel
// buffer. bpp is the container's native bits-per-pixel (24, 32, or 8);
// for bpp==8, data holds one palette index per pixel and is expanded
// through palette into 24-bpp RGB. mode is the header's post-processing
// selector, only consulted for 32-bpp data.
func postprocess(data []byte, width, height, bpp int, mode uint16, palette []rgb) ([]byte, error) {
	if bpp == 8 {
		return expandPalette(data, width*height, palette)
	}

	pixelSize := bpp / 8
	n := width * height

	if bpp == 32 && mode != 1 {
		// Rotate alpha from the lead byte to the tail, inverting it unless
		// mode selects the non-inverted variant.
		alphaFlip := byte(0xFF)
		if mode == 2 {
			alphaFlip = 0
		}
		for p := 0; p < n; p++ {
			off := p * 4
			a := data[off]
			b := data[off+1]
			g := data[off+2]
			r := data[off+3]
			data[off] = b
			data[off+1] = g
			data[off+2] = r
			data[off+3] = a ^ alphaFlip
		}
	}

	// BGR(A) -> RGB(A): swap bytes at offsets 0 and 2 of every pixel. This
	// unconditionally applies even when mode == 1 left the 32-bpp layout
	// un-rotated above: the resulting byte order [G,B,A,R] is a known,
	// deliberately preserved quirk of the reference decoder, not a bug to
	// silently fix here.
	for p := 0; p < n; p++ {
		off := p * pixelSize
		data[off], data[off+2] = data[off+2], data[off]
	}

	return data, nil
}

// expandPalette maps n palette-index bytes in data to n RGB triples.
func expandPalette(indices []byte, n int, palette []rgb) ([]byte, error) {
	out := make([]byte, n*3)
	for p := 0; p < n; p++ {
		idx := int(indices[p])
		if idx >= len(palette) {
			return nil, &PaletteIndexOutOfRangeError{Size: len(palette), Index: idx}
		}
		c := palette[idx]
		out[p*3] = c.r
		out[p*3+1] = c.g
		out[p*3+2] = c.b
	}
	return out, nil
}
