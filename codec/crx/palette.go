/*
DESCRIPTION
  palette.go parses the optional indexed palette present on 8-bpp CRX
  images, including the undocumented magenta-to-white fix-up that real
  CIRCUS files rely on.

LICENSE
  Copyright (C) 2026 the crx-go contributors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the crx-go project.
*/

package crx

import "github.com/pkg/errors"

// rgb is a single palette entry.
type rgb struct {
	r, g, b byte
}

// paletteEntrySize4 is the exact depth value that selects 4-byte palette
// entries (3 color bytes plus one discarded byte) instead of 3-byte entries.
const paletteEntrySize4 = 0x102

// readPalette reads min(depth, 256) palette entries, applying the mandatory
// magenta (0xFF,0x00,0xFF) -> white (0xFF,0xFF,0xFF) fix-up to each entry
// before returning. depth <= 0 yields an empty palette.
func readPalette(r *reader, depth int16) ([]rgb, error) {
	n := int(depth)
	switch {
	case n <= 0:
		return nil, nil
	case n > 256:
		n = 256
	}

	entrySize := 3
	if depth == paletteEntrySize4 {
		entrySize = 4
	}

	palette := make([]rgb, 0, n)
	for i := 0; i < n; i++ {
		rr, err := r.u8()
		if err != nil {
			return nil, errors.Wrapf(err, "read palette entry %d red", i)
		}
		gg, err := r.u8()
		if err != nil {
			return nil, errors.Wrapf(err, "read palette entry %d green", i)
		}
		bb, err := r.u8()
		if err != nil {
			return nil, errors.Wrapf(err, "read palette entry %d blue", i)
		}
		if entrySize == 4 {
			if _, err := r.u8(); err != nil {
				return nil, errors.Wrapf(err, "read palette entry %d padding", i)
			}
		}

		if rr == 0xFF && gg == 0x00 && bb == 0xFF {
			gg = 0xFF
		}

		palette = append(palette, rgb{r: rr, g: gg, b: bb})
	}

	return palette, nil
}
