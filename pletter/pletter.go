// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

// Package pletter implements Pletter v0.5: a bit-packed LZ77 codec with a
// choice of offset-subset (q in 1..7; the encoder tries q in 1..6 and keeps
// the cheapest). A 3-bit header encodes q-1, the first source byte is
// stored literally, then each token is either a literal bit followed by a
// raw byte, or a match bit followed by an interlaced Elias-gamma length
// and an offset byte, which for offsets above 128 is followed by q-1
// extra high bits.
package pletter

import (
	"github.com/pkg/errors"

	"github.com/oldbytes/retropack/internal/bitio"
	"github.com/oldbytes/retropack/internal/gamma"
	"github.com/oldbytes/retropack/internal/matchfinder"
)

const (
	minMatch = 2
	// eofPairs is how many 2-bit (tag, payload) pairs the encoder emits
	// without ever terminating, to force the decoder's gamma reader past
	// any length a real match could need (max magnitude 16 bits for
	// lengths up to MaxInput) and into the EOF sentinel.
	eofPairs = 17
)

func extraWidth(q int) int { return q - 1 }

func maxOffsetForQ(q int) int { return 128 << uint(extraWidth(q)) }

func offsetCostBits(offset, q int) int {
	if offset <= 128 {
		return 8
	}
	return 8 + extraWidth(q)
}

type token struct {
	isMatch bool
	length  int
	offset  int
}

// Compress encodes src as a Pletter v0.5 stream, searching q in 1..6 for
// the smallest total encoding and emitting with the winner.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if len(src) > MaxInput {
		return nil, errors.Wrapf(ErrInputTooLarge, "pletter: input %d exceeds MaxInput %d", len(src), MaxInput)
	}
	if len(src) == 0 {
		return []byte{}, nil
	}

	n := len(src)

	bestQ := -1
	var bestTokens []token
	bestCost := 1 << 62

	for q := 1; q <= 6; q++ {
		chain := matchfinder.New(src)
		// Insert position 0 (the literal first byte never participates in a
		// match as a *source* start before it's inserted into the chain).
		chain.Insert(0)
		maxOff := maxOffsetForQ(q)
		const inf = 1 << 30
		cost := make([]int, n+1)
		choice := make([]token, n+1)
		for i := 2; i <= n; i++ {
			cost[i] = inf
		}
		cost[1] = 0

		for i := 1; i < n; i++ {
			// Literal.
			if c := cost[i] + 9; c < cost[i+1] {
				cost[i+1] = c
				choice[i+1] = token{isMatch: false, length: 1}
			}
			// Matches via the hash chain, bounded by this q's MaxOffset.
			chain.Candidates(i, maxOff, func(pos int) bool {
				length := matchfinder.MatchLength(src, pos, i, n-i)
				if length < minMatch {
					return true
				}
				offset := i - pos
				c := cost[i] + 1 + gamma.Bits(length-1) + offsetCostBits(offset, q)
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

		if cost[n] < bestCost {
			bestCost = cost[n]
			bestQ = q
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

	w := bitio.NewWriter()
	w.WriteBits(uint64(bestQ-1), 3)
	w.WriteByte(src[0])

	pos := 1
	for _, t := range bestTokens {
		if !t.isMatch {
			w.WriteBit(0)
			w.WriteByte(src[pos])
		} else {
			w.WriteBit(1)
			gamma.WriteInterlaced(w, t.length-1, false, false)
			writeOffset(w, t.offset, bestQ)
		}
		pos += t.length
	}

	// End marker: a match bit followed by eofPairs*2 bits that never
	// terminate the interlaced-gamma length read, so the decoder's length
	// reader overruns into the EOF sentinel instead of a real length.
	w.WriteBit(1)
	for i := 0; i < eofPairs; i++ {
		w.WriteBit(0)
		w.WriteBit(0)
	}

	return w.Bytes(), nil
}

// writeOffset emits the offset byte B first, then (only for the long
// form, B>=128) the extra high-order bits. readOffsetFull mirrors this
// order exactly: it must see B before it knows whether extra bits follow.
func writeOffset(w *bitio.Writer, offset, q int) {
	value := offset - 1
	if value < 128 {
		w.WriteByte(byte(value))
		return
	}
	width := extraWidth(q)
	w.WriteByte(0x80 | byte(value&0x7F))
	extra := (value >> 7) & ((1 << uint(width)) - 1)
	w.WriteBits(uint64(extra), width)
}

// Decompress decodes a Pletter v0.5 stream.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	if opts != nil && opts.Dsk2Rom {
		return decompressDsk2Rom(src)
	}

	r := bitio.NewReader(src)
	qBits, err := r.ReadBits(3)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidHeader, "pletter: truncated q header")
	}
	q := int(qBits) + 1
	if q > 7 {
		return nil, errors.Wrapf(ErrInvalidQValue, "pletter: header q=%d outside 1..7", q)
	}

	first, err := r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrTruncatedStream, "pletter: missing first literal byte")
	}

	out := []byte{first}
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "pletter: truncated token stream")
		}
		if bit == 0 {
			b, err := r.ReadByte()
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "pletter: truncated literal")
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

		offset, err := readOffsetFull(r, q)
		if err != nil {
			return nil, err
		}
		if offset > len(out) {
			return nil, errors.Wrapf(ErrInvalidBackReference, "pletter: offset %d exceeds output length %d", offset, len(out))
		}
		start := len(out) - offset
		for k := 0; k < length; k++ {
			out = append(out, out[start+k])
		}
	}
}

// readLengthOrEOF mirrors the interlaced Elias-gamma reader but bails out
// after eofPairs magnitude-bit pairs without a terminator, signalling EOF
// exactly as the encoder's end-marker run was constructed to trigger.
func readLengthOrEOF(r *bitio.Reader) (value int, isEOF bool, err error) {
	value = 1
	for i := 0; i < eofPairs; i++ {
		tag, err := r.ReadBit()
		if err != nil {
			return 0, false, errors.Wrap(ErrTruncatedStream, "pletter: truncated length")
		}
		if tag != 0 {
			// Normal terminator: value is complete.
			return value, false, nil
		}
		bit, err := r.ReadBit()
		if err != nil {
			return 0, false, errors.Wrap(ErrTruncatedStream, "pletter: truncated length")
		}
		value = (value << 1) | bit
	}
	return 0, true, nil
}

func readOffsetFull(r *bitio.Reader, q int) (int, error) {
	width := extraWidth(q)
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedStream, "pletter: truncated offset byte")
	}
	if b < 128 {
		return int(b) + 1, nil
	}
	extra, err := r.ReadBits(width)
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedStream, "pletter: truncated offset extra bits")
	}
	value := (int(b&0x7F) | (int(extra) << 7))
	return value + 1, nil
}

const dsk2RomEOF = 131072

// decompressDsk2Rom decodes the dsk2rom container variant: q is fixed at
// 2 (no header bits are read) and EOF is signalled by the literal gamma
// value 131072 rather than a bit-count overrun.
func decompressDsk2Rom(src []byte) ([]byte, error) {
	const q = 2
	r := bitio.NewReader(src)
	first, err := r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrTruncatedStream, "pletter: missing first literal byte")
	}
	out := []byte{first}
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "pletter: truncated token stream")
		}
		if bit == 0 {
			b, err := r.ReadByte()
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "pletter: truncated literal")
			}
			out = append(out, b)
			continue
		}
		value, err := gamma.ReadInterlaced(r, false, false)
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "pletter: truncated length")
		}
		if value == dsk2RomEOF {
			return out, nil
		}
		length := value + 1
		offset, err := readOffsetFull(r, q)
		if err != nil {
			return nil, err
		}
		if offset > len(out) {
			return nil, errors.Wrapf(ErrInvalidBackReference, "pletter: offset %d exceeds output length %d", offset, len(out))
		}
		start := len(out) - offset
		for k := 0; k < length; k++ {
			out = append(out, out[start+k])
		}
	}
}
