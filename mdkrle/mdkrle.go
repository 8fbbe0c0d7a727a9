// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package mdkrle implements MDK-RLE, a byte-oriented run/raw packet RLE
// codec with a single end-marker byte. Control byte C: 0x00-0x7F is a RAW
// packet of C+1 payload bytes; 0x80-0xFE is an RLE packet of (C&0x7F)+1
// repetitions of the following byte; 0xFF ends the stream.
package mdkrle

import (
	"github.com/pkg/errors"
)

const (
	rawMax = 128 // max payload bytes per RAW packet
	rleMax = 127 // max run length per RLE packet
	rleMin = 3   // minimum run length worth encoding as RLE
	end    = 0xFF
)

// Compress encodes src as an MDK-RLE stream. opts is currently unused (nil
// is fine) and exists for API symmetry with the other codecs.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	out := make([]byte, 0, len(src)/2+2)

	flushRaw := func(raw []byte) []byte {
		for len(raw) > 0 {
			n := len(raw)
			if n > rawMax {
				n = rawMax
			}
			out = append(out, byte(n-1))
			out = append(out, raw[:n]...)
			raw = raw[n:]
		}
		return raw
	}

	var pending []byte
	i := 0
	for i < len(src) {
		runLen := 1
		for i+runLen < len(src) && src[i+runLen] == src[i] && runLen < rleMax {
			runLen++
		}
		if runLen >= rleMin {
			pending = flushRaw(pending)
			out = append(out, 0x80|byte(runLen-1), src[i])
			i += runLen
			continue
		}
		pending = append(pending, src[i])
		i++
		if len(pending) == rawMax {
			pending = flushRaw(pending)
		}
	}
	flushRaw(pending)
	out = append(out, end)
	return out, nil
}

// Decompress decodes an MDK-RLE stream. opts is currently unused.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out := make([]byte, 0, len(src)*2)
	i := 0
	for {
		if i >= len(src) {
			return nil, errors.Wrap(ErrTruncatedStream, "mdkrle: missing end marker")
		}
		c := src[i]
		i++
		switch {
		case c == end:
			return out, nil
		case c < 0x80:
			n := int(c) + 1
			if i+n > len(src) {
				return nil, errors.Wrapf(ErrTruncatedStream, "mdkrle: raw packet at %d needs %d bytes, %d remain", i, n, len(src)-i)
			}
			out = append(out, src[i:i+n]...)
			i += n
		default:
			n := int(c&0x7F) + 1
			if i >= len(src) {
				return nil, errors.Wrap(ErrTruncatedStream, "mdkrle: rle packet missing value byte")
			}
			v := src[i]
			i++
			for k := 0; k < n; k++ {
				out = append(out, v)
			}
		}
	}
}
