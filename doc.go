// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

/*
Package retropack collects a family of 8-bit-era LZ77/LZSS and RLE codecs,
each implementing a bit-exact stream format: MDK-RLE, LZF, Pletter v0.5,
DAN1, DAN3, ZX7, ZX0 and BitBuster v1.2. Each format lives in its own
subpackage (mdkrle, lzf, pletter, dan1, dan3, zx7, zx0, bitbuster) exposing
exactly two operations:

	Compress(src []byte, opts *CompressOptions) ([]byte, error)
	Decompress(src []byte, opts *DecompressOptions) ([]byte, error)

The codecs draw on three shared primitives from internal/bitio,
internal/gamma and internal/matchfinder: an MSB-first bit writer/reader
with a reserve-then-backfill discipline (used by the bit-packed formats),
standard and interlaced Elias-gamma coders, and a 2-byte hash-chain match
finder used by every optimal parser. MDK-RLE uses none of them.

This package also exposes a small Codec capability registry (see codec.go)
used by the internal test harness to exercise the universal round-trip and
termination properties against every format uniformly; file I/O, UI,
CRC/hex-dump helpers and extension-to-format detection are intentionally
out of scope for the core (they surround, rather than belong to, it).

# Examples

Round-trip with ZX0 at default settings:

	enc, err := zx0.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := zx0.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Round-trip with DAN1, enabling RAW literal blocks in the optimal parse:

	enc, err := dan1.Compress(data, &dan1.CompressOptions{RLE: true})
	dec, err := dan1.Decompress(enc, nil)
*/
package retropack
