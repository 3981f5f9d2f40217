package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/crx-go/crx/codec/crx"
)

// TestConvertRoundTrip is a light smoke test: decoding a small fixture and
// re-encoding it as PNG must round-trip without error. It does not assert
// on pixel values — those are covered by codec/crx's own tests.
func TestConvertRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("CRXG")
	buf.Write([]byte{
		0, 0, 0, 0, // inner_x, inner_y
		2, 0, 1, 0, // width=2, height=1
		1, 0, 0, 0, // version=1, flag=0
		0, 0, 0, 0, // depth=0, mode=0
	})
	buf.Write([]byte{0xFF, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60})

	f, err := crx.Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("crx.Decode: %v", err)
	}

	img := toImage(f)

	dir := t.TempDir()
	dst := filepath.Join(dir, "out.png")
	out, err := os.Create(dst)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	if got, want := outputPath("/a/b/c.crx", "", ""), "/a/b/c.png"; got != want {
		t.Errorf("outputPath = %q, want %q", got, want)
	}
	if got, want := outputPath("/a/b/c.crx", "/out", ".clip0"), "/out/c.clip0.png"; got != want {
		t.Errorf("outputPath = %q, want %q", got, want)
	}
}
