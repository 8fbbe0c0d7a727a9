// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package dan1 implements the DAN1 compressor/decompressor.
//
// The first source byte is stored raw. Each later token opens with a
// flag bit: 1 selects a raw literal byte, 0 selects either a match (an
// Elias-gamma length followed by a four-tier offset) or the RAW/END
// escape, recognized when the gamma reader's leading zero-bit run
// reaches 16 without a real magnitude following. A RAW escape then
// carries a length byte (block length minus 27) and the block's literal
// bytes; an END escape
// simply closes the stream.
//
//	enc, err := dan1.Compress(data, nil)
//	dec, err := dan1.Decompress(enc, nil)
package dan1
