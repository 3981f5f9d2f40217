/*
DESCRIPTION
  clip.go parses the opaque clip-rectangle table present on version-3 CRX
  images. The core does not interpret clip records; it parses and retains
  them so they can pass through to the decoded CrxFile unchanged.

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

// Clip is an opaque clip-rectangle record carried through from version-3
// CRX files. It stores two points, each an (i32, i16, i16) triple, whose
// interpretation is left to the caller.
type Clip struct {
	Point1X int32
	Point1Y int16
	Point1Z int16
	Point2X int32
	Point2Y int16
	Point2Z int16
}

const clipRecordSize = 16

// readClips reads the version-3 clip count followed by that many 16-byte
// clip records.
func readClips(r *reader) ([]Clip, error) {
	count, err := r.i32()
	if err != nil {
		return nil, errors.Wrap(err, "read clip count")
	}
	if count <= 0 {
		return nil, nil
	}
	if need := int64(count) * clipRecordSize; need > int64(r.len()) {
		return nil, &ShortReadError{Want: int(need), Err: io.ErrUnexpectedEOF}
	}

	clips := make([]Clip, 0, count)
	for i := int32(0); i < count; i++ {
		var c Clip
		if c.Point1X, err = r.i32(); err != nil {
			return nil, errors.Wrapf(err, "read clip %d field 1", i)
		}
		if c.Point1Y, err = r.i16(); err != nil {
			return nil, errors.Wrapf(err, "read clip %d field 2", i)
		}
		if c.Point1Z, err = r.i16(); err != nil {
			return nil, errors.Wrapf(err, "read clip %d field 3", i)
		}
		if c.Point2X, err = r.i32(); err != nil {
			return nil, errors.Wrapf(err, "read clip %d field 4", i)
		}
		if c.Point2Y, err = r.i16(); err != nil {
			return nil, errors.Wrapf(err, "read clip %d field 5", i)
		}
		if c.Point2Z, err = r.i16(); err != nil {
			return nil, errors.Wrapf(err, "read clip %d field 6", i)
		}
		clips = append(clips, c)
	}
	return clips, nil
}
