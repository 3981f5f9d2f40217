/*
DESCRIPTION
  doc.go provides package documentation for crx.

LICENSE
  Copyright (C) 2026 the crx-go contributors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the crx-go project.
*/

// Package crx decodes the CRX image container used by CIRCUS visual-novel
// titles into an in-memory, fully decompressed RGB/RGBA pixel buffer.
//
// A CRX file is a small fixed header followed by an optional palette, an
// optional clip table, and a compressed payload. Two unrelated compression
// schemes exist depending on the container version: version 1 uses a custom
// 64 KiB sliding-window LZSS variant, while versions 2 and 3 wrap a standard
// zlib stream around a per-row prediction filter bank borrowed from the same
// family of ideas as PNG's filter types. Decode selects the right scheme,
// reconstructs the pixel bytes, and performs the channel reordering and
// alpha handling CRX expects on the way out.
//
// Decode is a pure function of its input bytes: it holds no package-level
// state and every call owns its own window, row, and output buffers, so
// concurrent calls never interfere with each other.
package crx
