// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package zx0 implements the ZX0 compressor/decompressor: an interlaced
// Elias-gamma LZ77 variant with a three-state token stream (literal run,
// copy from the most recently used offset, copy from a freshly coded
// offset) instead of a flat literal/match flag per token.
//
// The stream opens with an interlaced-gamma literal run (length then raw
// bytes). After that, one bit selects the next state, but its meaning
// depends on which state produced it: coming out of a literal run, 0
// means "reuse the last offset" and 1 means "code a new offset", since a
// second literal run can never immediately follow the first (it would
// just have been the same run); coming out of a copy, 0 means "literal
// run" and 1 means "new offset". A new-offset copy codes the offset as an
// interlaced-gamma MSB chunk count followed by a plain low-byte, then the
// match length; reaching an MSB value that no real offset produces marks
// the end of the stream.
//
//	enc, err := zx0.Compress(data, nil)
//	dec, err := zx0.Decompress(enc, nil)
package zx0
