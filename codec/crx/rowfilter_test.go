package crx

import (
	"bytes"
	"testing"
)

func decodeRows(t *testing.T, stream []byte, width, height, pixelSize int) []byte {
	t.Helper()
	got, err := reconstructRows(bytes.NewReader(stream), width, height, pixelSize, false)
	if err != nil {
		t.Fatalf("reconstructRows: %v", err)
	}
	return got
}

func TestReconstructRowsFilterLeft(t *testing.T) {
	stream := []byte{filterLeft, 10, 5, 250}
	got := decodeRows(t, stream, 3, 1, 1)
	want := []byte{10, 15, 9}
	if !bytes.Equal(got, want) {
		t.Errorf("row = %v, want %v", got, want)
	}
}

func TestReconstructRowsFilterUp(t *testing.T) {
	stream := []byte{
		filterLeft, 1, 2, 3,
		filterUp, 10, 10, 10,
	}
	got := decodeRows(t, stream, 3, 2, 1)
	want := []byte{1, 3, 6, 11, 13, 16}
	if !bytes.Equal(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestReconstructRowsFilterUpLeft(t *testing.T) {
	stream := []byte{
		filterLeft, 1, 2, 3,
		filterUpLeft, 5, 9, 20,
	}
	got := decodeRows(t, stream, 3, 2, 1)
	want := []byte{1, 3, 6, 5, 10, 23}
	if !bytes.Equal(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestReconstructRowsFilterUpRight(t *testing.T) {
	stream := []byte{
		filterLeft, 1, 2, 3,
		filterUpRight, 7, 8, 99,
	}
	got := decodeRows(t, stream, 3, 2, 1)
	want := []byte{1, 3, 6, 10, 14, 99}
	if !bytes.Equal(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

// TestReconstructRowsNoPreviousRow covers invariant 5: modes 1, 2 and 3 on
// the first row of an image have no previous row to predict from.
func TestReconstructRowsNoPreviousRow(t *testing.T) {
	for _, mode := range []byte{filterUp, filterUpLeft, filterUpRight} {
		stream := []byte{mode, 0, 0, 0}
		_, err := reconstructRows(bytes.NewReader(stream), 3, 1, 1, false)
		if _, ok := err.(*NoPreviousRowError); !ok {
			t.Errorf("mode %d: err = %v, want *NoPreviousRowError", mode, err)
		}
	}
}

func TestReconstructRowsRLE(t *testing.T) {
	stream := []byte{filterRLE, 7, 7, 2, 9, 9, 1}
	got := decodeRows(t, stream, 5, 1, 1)
	want := []byte{7, 7, 7, 9, 9}
	if !bytes.Equal(got, want) {
		t.Errorf("row = %v, want %v", got, want)
	}
}

func TestReconstructRowsRLEOverflow(t *testing.T) {
	stream := []byte{filterRLE, 5, 5, 10}
	_, err := reconstructRows(bytes.NewReader(stream), 3, 1, 1, false)
	if _, ok := err.(*RowOverflowError); !ok {
		t.Errorf("err = %v, want *RowOverflowError", err)
	}
}

func TestReconstructRowsInvalidMode(t *testing.T) {
	stream := []byte{0x7F, 0, 0, 0}
	_, err := reconstructRows(bytes.NewReader(stream), 3, 1, 1, false)
	if _, ok := err.(*RowModeInvalidError); !ok {
		t.Errorf("err = %v, want *RowModeInvalidError", err)
	}
}

func TestReconstructRowsPaletteIndices(t *testing.T) {
	stream := []byte{1, 2, 3, 4, 5, 6}
	got, err := reconstructRows(bytes.NewReader(stream), 3, 2, 1, true)
	if err != nil {
		t.Fatalf("reconstructRows: %v", err)
	}
	if !bytes.Equal(got, stream) {
		t.Errorf("indices = %v, want %v", got, stream)
	}
}
