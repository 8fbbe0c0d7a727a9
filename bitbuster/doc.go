// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package bitbuster implements the BitBuster v1.2 compressor/decompressor.
//
// A stream opens with a 4-byte little-endian uncompressed length, then a
// token bit stream: 0 selects a literal byte, 1 selects a match. A match's
// distance byte is either a direct short-form value or, once its top bit
// is set, a 7-bit low part with 4 more bits taken from the bit stream; its
// length rides a standard Elias-gamma code of length-2. The end of the
// stream is a match tag whose distance byte is the reserved value 0,
// followed by sixteen 1 bits and a terminating 0 — a pattern no real
// gamma-coded length can produce because distance 1 is never assigned to
// a real match (see doc comment on Compress).
//
//	enc, err := bitbuster.Compress(data, nil)
//	dec, err := bitbuster.Decompress(enc, nil)
package bitbuster
