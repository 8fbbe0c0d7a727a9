// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package dan1 implements the DAN1 codec: a tiered-offset LZ77 variant
// with Elias-gamma lengths, an optional RAW-literal-block escape, and an
// explicit END marker, all disambiguated by the same 16-zero-bit
// sentinel the gamma reader recognizes in place of a real length.
package dan1

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/oldbytes/retropack/internal/bitio"
	"github.com/oldbytes/retropack/internal/gamma"
	"github.com/oldbytes/retropack/internal/matchfinder"
)

const (
	// sentinelZeroRun is how many leading zero bits the gamma reader will
	// tolerate before concluding this isn't a real length at all, but the
	// RAW/END escape (the format's "16 zero bits then a flag bit"
	// pattern). No real match length reaches a prefix this long: matches
	// are capped below 2^16 for exactly this reason.
	sentinelZeroRun = 16
	maxMatchLen     = 1<<sentinelZeroRun - 1

	rawLenBase = 27
	rawLenMax  = rawLenBase + 255

	tier1Max, tier1Width, tier1Base = 2, 1, 0
	tier2Max, tier2Width, tier2Base = 18, 4, 2
	tier3Max, tier3Width, tier3Base = 274, 8, 18
	tier4Width, tier4Base           = 12, 274

	length1MaxOffset = tier3Max
)

func tierFor(offset int) (tier, base, width int) {
	switch {
	case offset <= tier1Max:
		return 1, tier1Base, tier1Width
	case offset <= tier2Max:
		return 2, tier2Base, tier2Width
	case offset <= tier3Max:
		return 3, tier3Base, tier3Width
	default:
		return 4, tier4Base, tier4Width
	}
}

func selectorBits(tier int) int {
	if tier <= 2 {
		return tier
	}
	return 3
}

func offsetCostBits(offset int) int {
	tier, _, width := tierFor(offset)
	return selectorBits(tier) + width
}

func writeSelector(w *bitio.Writer, tier int) {
	switch tier {
	case 1:
		w.WriteBit(0)
	case 2:
		w.WriteBit(1)
		w.WriteBit(0)
	case 3:
		w.WriteBit(1)
		w.WriteBit(1)
		w.WriteBit(0)
	default:
		w.WriteBit(1)
		w.WriteBit(1)
		w.WriteBit(1)
	}
}

func writeOffset(w *bitio.Writer, offset int) {
	tier, base, width := tierFor(offset)
	writeSelector(w, tier)
	w.WriteBits(uint64(offset-1-base), width)
}

func readOffset(r *bitio.Reader) (int, error) {
	b1, err := r.ReadBit()
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedStream, "dan1: truncated offset selector")
	}
	var base, width int
	if b1 == 0 {
		base, width = tier1Base, tier1Width
	} else {
		b2, err := r.ReadBit()
		if err != nil {
			return 0, errors.Wrap(ErrTruncatedStream, "dan1: truncated offset selector")
		}
		if b2 == 0 {
			base, width = tier2Base, tier2Width
		} else {
			b3, err := r.ReadBit()
			if err != nil {
				return 0, errors.Wrap(ErrTruncatedStream, "dan1: truncated offset selector")
			}
			if b3 == 0 {
				base, width = tier3Base, tier3Width
			} else {
				base, width = tier4Base, tier4Width
			}
		}
	}
	value, err := r.ReadBits(width)
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedStream, "dan1: truncated offset value")
	}
	return int(value) + 1 + base, nil
}

// readLengthOrSentinel reads a standard Elias-gamma value, or recognizes
// the RAW/END escape: sentinelZeroRun leading zero bits with no real
// magnitude following.
func readLengthOrSentinel(r *bitio.Reader) (value int, isSentinel bool, err error) {
	n := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, false, errors.Wrap(ErrTruncatedStream, "dan1: truncated length")
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
		return 0, false, errors.Wrap(ErrTruncatedStream, "dan1: truncated length magnitude")
	}
	return (1 << uint(n)) | int(rest), false, nil
}

type tokenKind int

const (
	kindLiteral tokenKind = iota
	kindMatch
	kindRaw
)

type token struct {
	kind   tokenKind
	length int
	offset int
}

// Compress encodes src as a DAN1 stream.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if len(src) > MaxInput {
		return nil, errors.Wrapf(ErrInputTooLarge, "dan1: input %d exceeds MaxInput %d", len(src), MaxInput)
	}
	n := len(src)
	if n == 0 {
		return []byte{}, nil
	}
	var rle bool
	var verbose io.Writer
	if opts != nil {
		rle = opts.RLE
		verbose = opts.Verbose
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
		// Literal.
		if c := cost[i] + 9; c < cost[i+1] {
			cost[i+1] = c
			choice[i+1] = token{kind: kindLiteral, length: 1}
		}

		// Length-1 match: a single repeated byte, restricted to the
		// first three tiers (offset <= 274) per the cost model.
		maxBack := length1MaxOffset
		if maxBack > i {
			maxBack = i
		}
		for off := 1; off <= maxBack; off++ {
			if src[i-off] != src[i] {
				continue
			}
			c := cost[i] + 1 + gamma.Bits(1) + offsetCostBits(off)
			if c < cost[i+1] {
				cost[i+1] = c
				choice[i+1] = token{kind: kindMatch, length: 1, offset: off}
			}
			break
		}

		// General matches via the hash chain.
		chain.Candidates(i, tier4Base+(1<<tier4Width), func(pos int) bool {
			maxLen := n - i
			if maxLen > maxMatchLen {
				maxLen = maxMatchLen
			}
			length := matchfinder.MatchLength(src, pos, i, maxLen)
			if length < 2 {
				return true
			}
			offset := i - pos
			c := cost[i] + 1 + gamma.Bits(length) + offsetCostBits(offset)
			if c < cost[i+length] {
				cost[i+length] = c
				choice[i+length] = token{kind: kindMatch, length: length, offset: offset}
			}
			return true
		})

		// RAW literal block.
		if rle {
			maxLen := n - i
			if maxLen > rawLenMax {
				maxLen = rawLenMax
			}
			for l := rawLenBase; l <= maxLen; l++ {
				c := cost[i] + 27 + 8*l
				if c < cost[i+l] {
					cost[i+l] = c
					choice[i+l] = token{kind: kindRaw, length: l}
				}
			}
		}

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
	rawBlocks := 0
	for _, t := range tokens {
		switch t.kind {
		case kindLiteral:
			w.WriteBit(1)
			w.WriteByte(src[pos])
		case kindMatch:
			w.WriteBit(0)
			gamma.Write(w, t.length)
			writeOffset(w, t.offset)
		case kindRaw:
			w.WriteBit(0)
			for i := 0; i < sentinelZeroRun; i++ {
				w.WriteBit(0)
			}
			w.WriteBit(1)
			w.WriteBit(1)
			w.WriteByte(byte(t.length - rawLenBase))
			for _, b := range src[pos : pos+t.length] {
				w.WriteByte(b)
			}
			rawBlocks++
		}
		pos += t.length
	}

	// END marker: not-literal bit, sentinel zero run, END selector bit.
	w.WriteBit(0)
	for i := 0; i < sentinelZeroRun; i++ {
		w.WriteBit(0)
	}
	w.WriteBit(1)
	w.WriteBit(0)

	if verbose != nil {
		fmt.Fprintf(verbose, "dan1: encoded %d bytes into %d bits (%d RAW blocks)\n", n, cost[n], rawBlocks)
	}

	return w.Bytes(), nil
}

// Decompress decodes a DAN1 stream.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	r := bitio.NewReader(src)
	first, err := r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrTruncatedStream, "dan1: missing first literal byte")
	}
	out := []byte{first}
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "dan1: truncated token stream")
		}
		if bit == 1 {
			b, err := r.ReadByte()
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "dan1: truncated literal")
			}
			out = append(out, b)
			continue
		}

		length, isSentinel, err := readLengthOrSentinel(r)
		if err != nil {
			return nil, err
		}
		if !isSentinel {
			offset, err := readOffset(r)
			if err != nil {
				return nil, err
			}
			if offset > len(out) {
				return nil, errors.Wrapf(ErrInvalidBackReference, "dan1: offset %d exceeds output length %d", offset, len(out))
			}
			start := len(out) - offset
			for k := 0; k < length; k++ {
				out = append(out, out[start+k])
			}
			continue
		}

		selector, err := r.ReadBit()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "dan1: truncated RAW/END selector")
		}
		if selector == 0 {
			return out, nil
		}
		lenByte, err := r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "dan1: truncated RAW length byte")
		}
		rawLen := int(lenByte) + rawLenBase
		for k := 0; k < rawLen; k++ {
			b, err := r.ReadByte()
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "dan1: truncated RAW payload")
			}
			out = append(out, b)
		}
	}
}
