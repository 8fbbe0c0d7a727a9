// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package lzf implements a simplified, byte-aligned LZ77 codec with a
// literal control byte, two match tiers (short and long), and a single
// end-marker byte (0xFF) terminating the stream. The optimal parser picks
// the cheapest covering of literal runs and matches via dynamic
// programming over a 2-byte hash chain, matching the core's shared
// optimal-parse engine.
package lzf

import (
	"github.com/pkg/errors"

	"github.com/oldbytes/retropack/internal/matchfinder"
)

type token struct {
	isMatch bool
	length  int
	offset  int
}

// Compress encodes src as an LZF stream.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	n := len(src)
	if n == 0 {
		// Per the format's empty-input convention, no end marker is needed
		// when there was never a stream to terminate.
		return []byte{}, nil
	}

	const inf = 1 << 30
	cost := make([]int, n+1)
	choice := make([]token, n+1)
	for i := 1; i <= n; i++ {
		cost[i] = inf
	}

	depth := opts.chainDepth()
	chain := matchfinder.New(src)

	relaxLiteral := func(i, length int) {
		c := cost[i] + 1 + length
		if c < cost[i+length] {
			cost[i+length] = c
			choice[i+length] = token{isMatch: false, length: length}
		}
	}
	relaxMatch := func(i, length, offset int) {
		c := cost[i] + 2
		if length > shortMatchMax {
			c = cost[i] + 3
		}
		if c < cost[i+length] {
			cost[i+length] = c
			choice[i+length] = token{isMatch: true, length: length, offset: offset}
		}
	}

	for i := 0; i < n; i++ {
		maxL := literalMax
		if n-i < maxL {
			maxL = n - i
		}
		for l := 1; l <= maxL; l++ {
			relaxLiteral(i, l)
		}

		visited := 0
		chain.Candidates(i, MaxOffset, func(pos int) bool {
			if visited >= depth {
				return false
			}
			visited++
			length := matchfinder.MatchLength(src, pos, i, longMatchMax)
			if length < minMatch {
				return true
			}
			if n-i < length {
				length = n - i
			}
			offset := i - pos
			relaxMatch(i, length, offset)
			if length > shortMatchMax {
				relaxMatch(i, shortMatchMax, offset)
			}
			return true
		})
		chain.Insert(i)
	}

	// Reconstruct the token sequence by walking choice[] backward from n.
	var tokens []token
	for i := n; i > 0; {
		t := choice[i]
		tokens = append(tokens, t)
		i -= t.length
	}
	for l, r := 0, len(tokens)-1; l < r; l, r = l+1, r-1 {
		tokens[l], tokens[r] = tokens[r], tokens[l]
	}

	out := make([]byte, 0, cost[n]+1)
	pos := 0
	for _, t := range tokens {
		if !t.isMatch {
			out = append(out, byte(t.length-1))
			out = append(out, src[pos:pos+t.length]...)
		} else {
			value := t.offset - 1
			hi := byte(value >> 8)
			lo := byte(value & 0xFF)
			if t.length <= shortMatchMax {
				out = append(out, byte(t.length-2)<<5|hi, lo)
			} else {
				out = append(out, 7<<5|hi, byte(t.length-9), lo)
			}
		}
		pos += t.length
	}
	out = append(out, end)
	return out, nil
}

const end = 0xFF

// Decompress decodes an LZF stream.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	out := make([]byte, 0, len(src)*2)
	i := 0
	for {
		if i >= len(src) {
			return nil, errors.Wrap(ErrTruncatedStream, "lzf: missing end marker")
		}
		b := src[i]
		i++
		if b == end {
			return out, nil
		}
		control := b >> 5
		if control == 0 {
			length := int(b&0x1F) + 1
			if i+length > len(src) {
				return nil, errors.Wrapf(ErrTruncatedStream, "lzf: literal run at %d needs %d bytes", i, length)
			}
			out = append(out, src[i:i+length]...)
			i += length
			continue
		}

		var length int
		if control == 7 {
			if i >= len(src) {
				return nil, errors.Wrap(ErrTruncatedStream, "lzf: long match missing length byte")
			}
			length = int(src[i]) + 9
			i++
		} else {
			length = int(control) + 2
		}
		if i >= len(src) {
			return nil, errors.Wrap(ErrTruncatedStream, "lzf: match missing offset byte")
		}
		lo := src[i]
		i++
		offset := (int(b&0x1F)<<8 | int(lo)) + 1
		if offset > len(out) {
			return nil, errors.Wrapf(ErrInvalidBackReference, "lzf: offset %d exceeds output length %d", offset, len(out))
		}
		start := len(out) - offset
		for k := 0; k < length; k++ {
			out = append(out, out[start+k])
		}
	}
}
