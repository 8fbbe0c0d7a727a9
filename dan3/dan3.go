// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package dan3 implements the DAN3 codec: DAN1's sibling, distinguished
// by a unary subset preamble that picks how wide the top offset tier is,
// chosen by running the optimal parse once per candidate subset and
// keeping the cheapest.
package dan3

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/oldbytes/retropack/internal/bitio"
	"github.com/oldbytes/retropack/internal/gamma"
	"github.com/oldbytes/retropack/internal/matchfinder"
)

const (
	// sentinelZeroRun mirrors dan1's RAW/END escape: a gamma prefix of
	// exactly this many zero bits, closed by a 1 with no magnitude bits
	// after it, is not a real length. Matches are capped below 2^16 to keep
	// this unambiguous.
	sentinelZeroRun = 16
	maxMatchLen     = 1<<sentinelZeroRun - 1

	rawLenMax = 256

	tier1Width, tier1Base = 5, 0
	tier2Width, tier2Base = 8, 32
	tier3Base             = 288

	maxSubset = 7
)

func tier3Width(subset int) int { return 9 + subset }

func maxOffsetForSubset(subset int) int {
	return (1 << uint(9+subset)) + tier3Base
}

func tierFor(offset, subset int) (tier, base, width int) {
	switch {
	case offset <= tier1Base+(1<<tier1Width):
		return 1, tier1Base, tier1Width
	case offset <= tier2Base+(1<<tier2Width):
		return 2, tier2Base, tier2Width
	default:
		return 3, tier3Base, tier3Width(subset)
	}
}

func offsetCostBitsGeneral(offset, subset int) int {
	tier, _, width := tierFor(offset, subset)
	if tier == 1 {
		return 1 + width
	}
	return 2 + width
}

func writeOffsetGeneral(w *bitio.Writer, offset, subset int) {
	tier, base, width := tierFor(offset, subset)
	switch tier {
	case 1:
		w.WriteBit(0)
	case 2:
		w.WriteBit(1)
		w.WriteBit(0)
	default:
		w.WriteBit(1)
		w.WriteBit(1)
	}
	w.WriteBits(uint64(offset-1-base), width)
}

func readOffsetGeneral(r *bitio.Reader, subset int) (int, error) {
	b1, err := r.ReadBit()
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedStream, "dan3: truncated offset selector")
	}
	var base, width int
	if b1 == 0 {
		base, width = tier1Base, tier1Width
	} else {
		b2, err := r.ReadBit()
		if err != nil {
			return 0, errors.Wrap(ErrTruncatedStream, "dan3: truncated offset selector")
		}
		if b2 == 0 {
			base, width = tier2Base, tier2Width
		} else {
			base, width = tier3Base, tier3Width(subset)
		}
	}
	value, err := r.ReadBits(width)
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedStream, "dan3: truncated offset value")
	}
	return int(value) + 1 + base, nil
}

// writeOffsetLen1/readOffsetLen1 implement the short two-outcome scheme
// for length-1 matches: a single selector bit picks offset 1 or 2.
func writeOffsetLen1(w *bitio.Writer, offset int) {
	if offset == 1 {
		w.WriteBit(0)
	} else {
		w.WriteBit(1)
	}
}

func readOffsetLen1(r *bitio.Reader) (int, error) {
	bit, err := r.ReadBit()
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedStream, "dan3: truncated length-1 offset")
	}
	if bit == 0 {
		return 1, nil
	}
	return 2, nil
}

func readLengthOrSentinel(r *bitio.Reader) (value int, isSentinel bool, err error) {
	n := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, false, errors.Wrap(ErrTruncatedStream, "dan3: truncated length")
		}
		if bit != 0 {
			if n == sentinelZeroRun {
				return 0, true, nil
			}
			break
		}
		n++
	}
	rest, err := r.ReadBits(n)
	if err != nil {
		return 0, false, errors.Wrap(ErrTruncatedStream, "dan3: truncated length magnitude")
	}
	return (1 << uint(n)) | int(rest), false, nil
}

func writePreamble(w *bitio.Writer, subset int) {
	for i := 0; i < subset; i++ {
		w.WriteBit(1)
	}
	w.WriteBit(0)
}

func readPreamble(r *bitio.Reader) (int, error) {
	subset := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, errors.Wrap(ErrInvalidHeader, "dan3: truncated subset preamble")
		}
		if bit == 0 {
			return subset, nil
		}
		subset++
		if subset > maxSubset {
			return 0, errors.Wrap(ErrInvalidHeader, "dan3: subset preamble exceeds maximum subset")
		}
	}
}

type tokenKind int

const (
	kindLiteral tokenKind = iota
	kindMatch1
	kindMatch
	kindRaw
)

type token struct {
	kind   tokenKind
	length int
	offset int
}

// Compress encodes src as a DAN3 stream, searching subset in 0..7 for the
// cheapest total encoding.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if len(src) > MaxInput {
		return nil, errors.Wrapf(ErrInputTooLarge, "dan3: input %d exceeds MaxInput %d", len(src), MaxInput)
	}
	n := len(src)
	if n == 0 {
		return []byte{}, nil
	}
	var verbose io.Writer
	if opts != nil {
		verbose = opts.Verbose
	}

	const inf = 1 << 30
	bestSubset := -1
	var bestTokens []token
	bestCost := inf

	for subset := 0; subset <= maxSubset; subset++ {
		chain := matchfinder.New(src)
		chain.Insert(0)
		maxOff := maxOffsetForSubset(subset)
		cost := make([]int, n+1)
		choice := make([]token, n+1)
		for i := 2; i <= n; i++ {
			cost[i] = inf
		}

		for i := 1; i < n; i++ {
			if c := cost[i] + 9; c < cost[i+1] {
				cost[i+1] = c
				choice[i+1] = token{kind: kindLiteral, length: 1}
			}

			for off := 1; off <= 2 && off <= i; off++ {
				if src[i-off] != src[i] {
					continue
				}
				c := cost[i] + 1 + gamma.Bits(1) + 1
				if c < cost[i+1] {
					cost[i+1] = c
					choice[i+1] = token{kind: kindMatch1, length: 1, offset: off}
				}
				break
			}

			chain.Candidates(i, maxOff, func(pos int) bool {
				maxLen := n - i
				if maxLen > maxMatchLen {
					maxLen = maxMatchLen
				}
				length := matchfinder.MatchLength(src, pos, i, maxLen)
				if length < 2 {
					return true
				}
				offset := i - pos
				c := cost[i] + 1 + gamma.Bits(length) + offsetCostBitsGeneral(offset, subset)
				if c < cost[i+length] {
					cost[i+length] = c
					choice[i+length] = token{kind: kindMatch, length: length, offset: offset}
				}
				return true
			})

			maxRaw := n - i
			if maxRaw > rawLenMax {
				maxRaw = rawLenMax
			}
			for l := 1; l <= maxRaw; l++ {
				c := cost[i] + 1 + sentinelZeroRun + 1 + 1 + 8 + 8*l
				if c < cost[i+l] {
					cost[i+l] = c
					choice[i+l] = token{kind: kindRaw, length: l}
				}
			}

			if i+1 <= n {
				chain.Insert(i)
			}
		}

		if cost[n] < bestCost {
			bestCost = cost[n]
			bestSubset = subset
			var tokens []token
			for i := n; i > 1; {
				t := choice[i]
				tokens = append(tokens, t)
				i -= t.length
			}
			for l, r := 0, len(tokens)-1; l < r; l, r = l+1, r-1 {
				tokens[l], tokens[r] = tokens[r], tokens[l]
			}
			bestTokens = tokens
		}
	}

	w := bitio.NewWriterSize(n)
	writePreamble(w, bestSubset)
	w.WriteByte(src[0])

	pos := 1
	rawBlocks := 0
	for _, t := range bestTokens {
		switch t.kind {
		case kindLiteral:
			w.WriteBit(1)
			w.WriteByte(src[pos])
		case kindMatch1:
			w.WriteBit(0)
			gamma.Write(w, 1)
			writeOffsetLen1(w, t.offset)
		case kindMatch:
			w.WriteBit(0)
			gamma.Write(w, t.length)
			writeOffsetGeneral(w, t.offset, bestSubset)
		case kindRaw:
			w.WriteBit(0)
			for i := 0; i < sentinelZeroRun; i++ {
				w.WriteBit(0)
			}
			w.WriteBit(1)
			w.WriteBit(1)
			w.WriteByte(byte(t.length - 1))
			for _, b := range src[pos : pos+t.length] {
				w.WriteByte(b)
			}
			rawBlocks++
		}
		pos += t.length
	}

	w.WriteBit(0)
	for i := 0; i < sentinelZeroRun; i++ {
		w.WriteBit(0)
	}
	w.WriteBit(1)
	w.WriteBit(0)

	if verbose != nil {
		fmt.Fprintf(verbose, "dan3: subset=%d encoded %d bytes into %d bits (%d RAW blocks)\n", bestSubset, n, bestCost, rawBlocks)
	}

	return w.Bytes(), nil
}

// Decompress decodes a DAN3 stream.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	r := bitio.NewReader(src)
	subset, err := readPreamble(r)
	if err != nil {
		return nil, err
	}
	first, err := r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrTruncatedStream, "dan3: missing first literal byte")
	}
	out := []byte{first}
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "dan3: truncated token stream")
		}
		if bit == 1 {
			b, err := r.ReadByte()
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "dan3: truncated literal")
			}
			out = append(out, b)
			continue
		}

		length, isSentinel, err := readLengthOrSentinel(r)
		if err != nil {
			return nil, err
		}
		if !isSentinel {
			var offset int
			if length == 1 {
				offset, err = readOffsetLen1(r)
			} else {
				offset, err = readOffsetGeneral(r, subset)
			}
			if err != nil {
				return nil, err
			}
			if offset > len(out) {
				return nil, errors.Wrapf(ErrInvalidBackReference, "dan3: offset %d exceeds output length %d", offset, len(out))
			}
			start := len(out) - offset
			for k := 0; k < length; k++ {
				out = append(out, out[start+k])
			}
			continue
		}

		selector, err := r.ReadBit()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "dan3: truncated RAW/END selector")
		}
		if selector == 0 {
			return out, nil
		}
		lenByte, err := r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "dan3: truncated RAW length byte")
		}
		rawLen := int(lenByte) + 1
		for k := 0; k < rawLen; k++ {
			b, err := r.ReadByte()
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "dan3: truncated RAW payload")
			}
			out = append(out, b)
		}
	}
}
