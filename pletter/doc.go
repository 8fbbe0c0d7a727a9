// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package pletter implements the Pletter v0.5 compressor/decompressor.
//
// A stream opens with a 3-bit field carrying q-1 (the offset-subset in
// use, q in 1..7) followed by the first source byte stored raw. Every
// later byte is covered by a token: a 0 bit and a raw byte for a
// literal, or a 1 bit, an interlaced Elias-gamma length, and an offset
// byte (followed by q-1 extra high bits for offsets above 128) for a
// match. The stream ends with a match token
// whose length field never terminates within the bound a real length
// could reach, which the decoder recognizes as EOF rather than a
// truncation error.
//
//	enc, err := pletter.Compress(data, nil)
//	dec, err := pletter.Decompress(enc, nil)
package pletter
