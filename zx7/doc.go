// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package zx7 implements the ZX7 compressor/decompressor.
//
// The first source byte is stored raw; every later byte is covered by a
// token: a 0 bit and a raw byte for a literal, or a 1 bit, a standard
// Elias-gamma length, and a one- or two-part offset for a match. Offsets
// up to 128 fit a single byte; longer ones set the byte's top bit and
// carry four extra high bits in the stream. The stream ends with a
// match token whose gamma prefix runs 16 zero bits without a real
// magnitude field, a pattern no legitimate length can produce.
//
//	enc, err := zx7.Compress(data, nil)
//	dec, err := zx7.Decompress(enc, nil)
package zx7
