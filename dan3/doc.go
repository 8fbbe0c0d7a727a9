// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package dan3 implements the DAN3 compressor/decompressor.
//
// A unary preamble (subset ones then a terminating zero, so eight bits
// for the maximum subset 7) names which of eight candidate
// offset-tier widths the rest of the stream uses; Compress tries all
// eight and keeps the cheapest. The first source byte follows raw, then
// each token opens with a flag bit: 1 for a raw literal byte, 0 for a
// match (an Elias-gamma length then a tiered offset) or the RAW/END
// escape recognized the same way DAN1's is.
//
//	enc, err := dan3.Compress(data, nil)
//	dec, err := dan3.Decompress(enc, nil)
package dan3
