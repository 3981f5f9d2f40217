package crx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestPostprocess24BPPSwap covers invariant 7: 24-bpp output swaps the byte
// at offset 0 and offset 2 of every pixel (BGR -> RGB).
func TestPostprocess24BPPSwap(t *testing.T) {
	data := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60}
	got, err := postprocess(data, 2, 1, 24, 0, nil)
	if err != nil {
		t.Fatalf("postprocess: %v", err)
	}
	want := []byte{0x30, 0x20, 0x10, 0x60, 0x50, 0x40}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("postprocess mismatch (-want +got):\n%s", diff)
	}
}

// TestPostprocess32BPPAlphaInvert covers invariant 8 for mode 0: alpha is
// rotated from the lead byte to the tail and inverted, then the BGR(A)
// swap runs unconditionally on top.
func TestPostprocess32BPPAlphaInvert(t *testing.T) {
	// input pixel bytes in order [A, B, G, R] = [0x01, 0x02, 0x03, 0x04].
	data := []byte{0x01, 0x02, 0x03, 0x04}
	got, err := postprocess(data, 1, 1, 32, 0, nil)
	if err != nil {
		t.Fatalf("postprocess: %v", err)
	}
	// rotation+invert: [B,G,R,A^0xFF] = [0x02,0x03,0x04,0xFE].
	// swap(0,2): [0x04,0x03,0x02,0xFE].
	want := []byte{0x04, 0x03, 0x02, 0xFE}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("postprocess mismatch (-want +got):\n%s", diff)
	}
}

func TestPostprocess32BPPModeTwoNoInvert(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	got, err := postprocess(data, 1, 1, 32, 2, nil)
	if err != nil {
		t.Fatalf("postprocess: %v", err)
	}
	// rotation, no invert: [B,G,R,A] = [0x02,0x03,0x04,0x01].
	// swap(0,2): [0x04,0x03,0x02,0x01].
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("postprocess mismatch (-want +got):\n%s", diff)
	}
}

// TestPostprocess32BPPModeOneLatentBug covers the documented, deliberately
// preserved mode == 1 quirk: the alpha rotation is skipped, but the BGR(A)
// swap still runs, producing byte order [G,B,A,R] rather than true RGBA.
func TestPostprocess32BPPModeOneLatentBug(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04} // [A,B,G,R]
	got, err := postprocess(data, 1, 1, 32, 1, nil)
	if err != nil {
		t.Fatalf("postprocess: %v", err)
	}
	want := []byte{0x03, 0x02, 0x01, 0x04} // swap(0,2) only: [G,B,A,R]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("postprocess mismatch (-want +got):\n%s", diff)
	}
}

// TestPostprocessPaletteExpansion covers invariant 4: 8-bpp data is
// expanded through the palette into 24-bpp RGB, independent of version.
func TestPostprocessPaletteExpansion(t *testing.T) {
	palette := []rgb{{1, 2, 3}, {4, 5, 6}}
	got, err := postprocess([]byte{1, 0, 1}, 3, 1, 8, 0, palette)
	if err != nil {
		t.Fatalf("postprocess: %v", err)
	}
	want := []byte{4, 5, 6, 1, 2, 3, 4, 5, 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("postprocess mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandPaletteOutOfRange(t *testing.T) {
	palette := []rgb{{1, 2, 3}}
	_, err := expandPalette([]byte{0, 5}, 2, palette)
	if _, ok := err.(*PaletteIndexOutOfRangeError); !ok {
		t.Errorf("err = %v, want *PaletteIndexOutOfRangeError", err)
	}
}
