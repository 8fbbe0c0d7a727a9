// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package zx7 implements the ZX7 codec: a plain (non-interlaced)
// Elias-gamma LZ77 variant with a two-tier offset byte. It is ZX0's
// non-interlaced ancestor and shares its offset-tiering idea at a
// coarser granularity.
package zx7

import (
	"github.com/pkg/errors"

	"github.com/oldbytes/retropack/internal/gamma"
	"github.com/oldbytes/retropack/internal/matchfinder"

	"github.com/oldbytes/retropack/internal/bitio"
)

const (
	maxOffset1 = 128
	maxOffset2 = 2176
	minMatch   = 2
	// eofZeroRun leading zero bits (with no terminating magnitude) signal
	// EOF instead of a real length. A standard Elias-gamma code for
	// length-1 reaches exactly eofZeroRun leading zeros once length-1
	// reaches 2^16; matches are capped below that so no real length can
	// ever be mistaken for the end marker.
	eofZeroRun  = 16
	maxMatchLen = 1 << eofZeroRun
)

func offsetCostBits(offset int) int {
	if offset <= maxOffset1 {
		return 8
	}
	return 12
}

type token struct {
	isMatch bool
	length  int
	offset  int
}

// Compress encodes src as a ZX7 stream.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if len(src) > MaxInput {
		return nil, errors.Wrapf(ErrInputTooLarge, "zx7: input %d exceeds MaxInput %d", len(src), MaxInput)
	}
	n := len(src)
	if n == 0 {
		return []byte{}, nil
	}

	chain := matchfinder.New(src)
	chain.Insert(0)

	const inf = 1 << 30
	cost := make([]int, n+1)
	choice := make([]token, n+1)
	for i := 2; i <= n; i++ {
		cost[i] = inf
	}

	for i := 1; i < n; i++ {
		if c := cost[i] + 9; c < cost[i+1] {
			cost[i+1] = c
			choice[i+1] = token{isMatch: false, length: 1}
		}
		chain.Candidates(i, maxOffset2, func(pos int) bool {
			maxLen := n - i
			if maxLen > maxMatchLen {
				maxLen = maxMatchLen
			}
			length := matchfinder.MatchLength(src, pos, i, maxLen)
			if length < minMatch {
				return true
			}
			offset := i - pos
			c := cost[i] + 1 + gamma.Bits(length-1) + offsetCostBits(offset)
			if c < cost[i+length] {
				cost[i+length] = c
				choice[i+length] = token{isMatch: true, length: length, offset: offset}
			}
			return true
		})
		if i+1 <= n {
			chain.Insert(i)
		}
	}

	var tokens []token
	for i := n; i > 1; {
		t := choice[i]
		tokens = append(tokens, t)
		i -= t.length
	}
	for l, r := 0, len(tokens)-1; l < r; l, r = l+1, r-1 {
		tokens[l], tokens[r] = tokens[r], tokens[l]
	}

	w := bitio.NewWriterSize(n)
	w.WriteByte(src[0])
	pos := 1
	for _, t := range tokens {
		if !t.isMatch {
			w.WriteBit(0)
			w.WriteByte(src[pos])
		} else {
			w.WriteBit(1)
			gamma.Write(w, t.length-1)
			writeOffset(w, t.offset)
		}
		pos += t.length
	}

	w.WriteBit(1)
	for i := 0; i < eofZeroRun; i++ {
		w.WriteBit(0)
	}
	w.WriteBit(1)

	return w.Bytes(), nil
}

func writeOffset(w *bitio.Writer, offset int) {
	if offset <= maxOffset1 {
		w.WriteByte(byte(offset - 1))
		return
	}
	value := offset - maxOffset1 - 1
	low7 := byte(value & 0x7F)
	high4 := (value >> 7) & 0xF
	w.WriteByte(0x80 | low7)
	w.WriteBits(uint64(high4), 4)
}

func readOffset(r *bitio.Reader) (int, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedStream, "zx7: truncated offset byte")
	}
	if b&0x80 == 0 {
		return int(b) + 1, nil
	}
	high4, err := r.ReadBits(4)
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedStream, "zx7: truncated offset high nibble")
	}
	value := (int(high4) << 7) | int(b&0x7F)
	return value + maxOffset1 + 1, nil
}

// readLengthOrEOF reads a standard Elias-gamma length, or recognizes the
// end marker's eofZeroRun leading zero bits with no terminating magnitude.
func readLengthOrEOF(r *bitio.Reader) (value int, isEOF bool, err error) {
	n := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, false, errors.Wrap(ErrTruncatedStream, "zx7: truncated length")
		}
		if bit != 0 {
			if n == eofZeroRun {
				return 0, true, nil
			}
			break
		}
		n++
	}
	rest, err := r.ReadBits(n)
	if err != nil {
		return 0, false, errors.Wrap(ErrTruncatedStream, "zx7: truncated length magnitude")
	}
	return (1 << uint(n)) | int(rest), false, nil
}

// Decompress decodes a ZX7 stream.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	r := bitio.NewReader(src)
	first, err := r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrTruncatedStream, "zx7: missing first literal byte")
	}
	out := []byte{first}
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "zx7: truncated token stream")
		}
		if bit == 0 {
			b, err := r.ReadByte()
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "zx7: truncated literal")
			}
			out = append(out, b)
			continue
		}

		lengthValue, isEOF, err := readLengthOrEOF(r)
		if err != nil {
			return nil, err
		}
		if isEOF {
			return out, nil
		}
		length := lengthValue + 1

		offset, err := readOffset(r)
		if err != nil {
			return nil, err
		}
		if offset > len(out) {
			return nil, errors.Wrapf(ErrInvalidBackReference, "zx7: offset %d exceeds output length %d", offset, len(out))
		}
		start := len(out) - offset
		for k := 0; k < length; k++ {
			out = append(out, out[start+k])
		}
	}
}
