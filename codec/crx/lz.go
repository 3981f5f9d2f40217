/*
DESCRIPTION
  lz.go implements the version-1 CRX decompressor: a custom LZSS-style
  scheme built around a 64 KiB sliding window, a 9-bit flag register that
  gates literal bytes against back-references, and four distinct
  control-byte encodings for (count, back-distance) pairs.

LICENSE
  Copyright (C) 2026 the crx-go contributors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the crx-go project.
*/

package crx

import "github.com/pkg/errors"

// windowSize is the size of the version-1 sliding window. Both the write
// cursor and back-references wrap modulo this value.
const windowSize = 0x10000

// unpackV1 decompresses buf using the version-1 sliding-window scheme into
// an output buffer of exactly outLen bytes.
func unpackV1(buf []byte, outLen int) ([]byte, error) {
	r := newReader(buf)

	var window [windowSize]byte
	var winPos uint32
	var flag uint32 // 9-bit flag register; bit 0x100 is the reload sentinel.

	output := make([]byte, outLen)
	dst := 0

	for dst < outLen {
		flag >>= 1
		if flag&0x100 == 0 {
			b, err := r.u8()
			if err != nil {
				return nil, errors.Wrap(err, "unpack v1: read flag byte")
			}
			flag = uint32(b) | 0xFF00
		}

		if flag&1 != 0 {
			b, err := r.u8()
			if err != nil {
				return nil, errors.Wrap(err, "unpack v1: read literal")
			}
			window[winPos] = b
			winPos = (winPos + 1) & (windowSize - 1)
			output[dst] = b
			dst++
			continue
		}

		c, err := r.u8()
		if err != nil {
			return nil, errors.Wrap(err, "unpack v1: read control byte")
		}

		var back, count uint32
		switch {
		case c >= 0xC0:
			e, err := r.u8()
			if err != nil {
				return nil, errors.Wrap(err, "unpack v1: read extension byte")
			}
			back = (uint32(c&3) << 8) | uint32(e)
			count = 4 + (uint32(c>>2) & 0xF)
		case c >= 0x80:
			back = uint32(c & 0x1F)
			count = 2 + (uint32(c>>5) & 3)
			if back == 0 {
				b, err := r.u8()
				if err != nil {
					return nil, errors.Wrap(err, "unpack v1: read back byte")
				}
				back = uint32(b)
			}
		case c == 0x7F:
			n, err := r.u16()
			if err != nil {
				return nil, errors.Wrap(err, "unpack v1: read count")
			}
			count = 2 + uint32(n)
			b, err := r.u16()
			if err != nil {
				return nil, errors.Wrap(err, "unpack v1: read back")
			}
			back = uint32(b)
		default:
			b, err := r.u16()
			if err != nil {
				return nil, errors.Wrap(err, "unpack v1: read back")
			}
			back = uint32(b)
			count = uint32(c) + 4
		}

		src := (winPos - back) & (windowSize - 1)
		for i := uint32(0); i < count; i++ {
			if dst >= outLen {
				break
			}
			b := window[src]
			src = (src + 1) & (windowSize - 1)
			window[winPos] = b
			winPos = (winPos + 1) & (windowSize - 1)
			output[dst] = b
			dst++
		}
	}

	return output, nil
}
