/*
DESCRIPTION
  crxconvert is a batch CLI driver for the crx package: it walks one or
  more paths, decodes every CRX file it finds with a bounded pool of
  worker goroutines, and writes each one back out as a PNG alongside
  the source.

LICENSE
  Copyright (C) 2026 the crx-go contributors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the crx-go project.
*/

// Package main implements crxconvert, a batch CRX-to-PNG conversion tool.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/ausocean/utils/logging"
	"github.com/crx-go/crx/codec/crx"
	"golang.org/x/image/draw"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Logging configuration: rotation settings for the -log file.
const (
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logSuppress  = false
)

func main() {
	outDir := flag.String("out", "", "output directory for PNGs (default: alongside each source file)")
	recursive := flag.Bool("r", false, "recurse into subdirectories")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	logFile := flag.String("log", "", "log file path (default: stderr)")
	verbosity := flag.Int("v", int(logging.Info), "log verbosity (0=Debug, 1=Info, 2=Warning, 3=Error)")
	flag.Parse()

	var w io.Writer = os.Stderr
	if *logFile != "" {
		w = &lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		}
	}
	log := logging.New(int8(*verbosity), w, logSuppress)

	if flag.NArg() == 0 {
		log.Error("no paths given")
		return
	}
	if *workers < 1 {
		*workers = 1
	}

	paths := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				convert(path, *outDir, log)
			}
		}()
	}

	for _, arg := range flag.Args() {
		walk(arg, *recursive, paths, log)
	}
	close(paths)
	wg.Wait()
}

// walk feeds every .crx file under root (or root itself, if it is a
// regular file) into paths.
func walk(root string, recursive bool, paths chan<- string, log logging.Logger) {
	info, err := os.Stat(root)
	if err != nil {
		log.Error("cannot stat path", "path", root, "error", err)
		return
	}
	if !info.IsDir() {
		paths <- root
		return
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Error("walk error", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".crx") {
			paths <- path
		}
		return nil
	})
	if err != nil {
		log.Error("walk failed", "path", root, "error", err)
	}
}

// convert decodes one CRX file and writes it (and, for version-3 files
// with clips, a cropped variant of the first clip) as PNG. It never
// returns an error to the caller: every failure is logged and skipped.
func convert(path, outDir string, log logging.Logger) {
	log.Debug("decoding", "path", path)

	buf, err := os.ReadFile(path)
	if err != nil {
		log.Error("read failed", "path", path, "error", err)
		return
	}

	f, err := crx.Decode(buf)
	if err != nil {
		log.Error("decode failed", "path", path, "error", err)
		return
	}

	img := toImage(f)
	dst := outputPath(path, outDir, "")
	if err := writePNG(dst, img); err != nil {
		log.Error("write failed", "path", path, "dst", dst, "error", err)
		return
	}
	log.Info("converted", "path", path, "dst", dst, "width", f.Width(), "height", f.Height(), "bpp", f.BPP())

	if clips := f.Clips(); len(clips) > 0 {
		cropped := cropToClip(img, clips[0])
		cropDst := outputPath(path, outDir, ".clip0")
		if err := writePNG(cropDst, cropped); err != nil {
			log.Error("clip write failed", "path", path, "dst", cropDst, "error", err)
			return
		}
		log.Debug("wrote clip crop", "path", path, "dst", cropDst)
	}
}

// toImage converts a decoded CRX file's pixel buffer into an
// image.NRGBA, expanding 24-bpp RGB to opaque RGBA where necessary.
func toImage(f *crx.CrxFile) *image.NRGBA {
	w, h := int(f.Width()), int(f.Height())
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	px := f.Pixels()

	switch f.BPP() {
	case 32:
		copy(img.Pix, px)
	case 24:
		for i := 0; i < w*h; i++ {
			d := img.Pix[i*4 : i*4+4]
			s := px[i*3 : i*3+3]
			d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xFF
		}
	}
	return img
}

// cropToClip extracts the sub-rectangle described by a clip's first point
// (x, y) and second point (x, y) as top-left/bottom-right corners, using
// golang.org/x/image/draw to copy pixels without resampling.
func cropToClip(img *image.NRGBA, c crx.Clip) *image.NRGBA {
	r := image.Rect(int(c.Point1X), int(c.Point1Y), int(c.Point2X), int(c.Point2Y)).Intersect(img.Bounds())
	if r.Empty() {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}

func outputPath(src, outDir, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + suffix + ".png"
	if outDir == "" {
		return filepath.Join(filepath.Dir(src), base)
	}
	return filepath.Join(outDir, base)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return png.Encode(f, img)
}
