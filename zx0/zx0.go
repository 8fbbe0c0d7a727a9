// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package zx0

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/oldbytes/retropack/internal/bitio"
	"github.com/oldbytes/retropack/internal/gamma"
	"github.com/oldbytes/retropack/internal/matchfinder"
)

const (
	minMatch = 2
	// eofSentinel is an offset-MSB chunk count no real offset can produce
	// (MaxOffset keeps every real value below it), marking the end of the
	// stream in the "new offset" branch.
	eofSentinel = 256
)

type tokenKind int

const (
	kindLiteral tokenKind = iota
	kindMatchNew
	kindMatchReuse
)

type token struct {
	kind   tokenKind
	length int
	offset int
}

// Compress encodes src as a ZX0 stream.
//
// The optimal parse tracks, at each position, the single cheapest path's
// last-used offset (arrivalOffset) rather than the full per-offset block
// lattice a from-scratch ZX0 optimizer maintains; this occasionally misses
// a cheaper reuse-offset opportunity that a costlier arriving path would
// have enabled, trading a small amount of ratio for a tractable single
// forward pass. See DESIGN.md.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = &CompressOptions{}
	}
	if len(src) > MaxInput {
		return nil, errors.Wrapf(ErrInputTooLarge, "zx0: input %d exceeds MaxInput %d", len(src), MaxInput)
	}
	n := len(src)
	if n == 0 {
		return []byte{}, nil
	}

	if opts.Backwards {
		src = reversed(src)
	}

	maxOffset := MaxOffset
	if opts.Quick {
		maxOffset = quickMaxOffset
	}
	invert := !opts.Classic
	backwards := opts.Backwards

	chain := matchfinder.New(src)

	const inf = 1 << 30
	const literalStepCost = 9 // 1 selector bit (approx) + 8 data bits

	// The parse tracks two states per position, mirroring the decoder's own
	// afterLiteral/afterCopy distinction: a reuse-offset match is only a
	// legal next token directly after a literal run, never directly after
	// another copy. stLit/stCopy record, independently, the cheapest path
	// reaching i that last completed a literal run vs. a copy.
	const stLit, stCopy = 0, 1
	cost := [2][]int{make([]int, n+1), make([]int, n+1)}
	choice := [2][]token{make([]token, n+1), make([]token, n+1)}
	from := [2][]int{make([]int, n+1), make([]int, n+1)}
	arrivalOffset := [2][]int{make([]int, n+1), make([]int, n+1)}
	for s := 0; s < 2; s++ {
		for i := 0; i <= n; i++ {
			cost[s][i] = inf
		}
	}
	// Position 0 starts as if just out of a copy: no offset to reuse yet,
	// and the mandatory first token is a literal run, which the stCopy ->
	// stLit literal-step transition below produces.
	cost[stCopy][0] = 0

	for i := 0; i < n; i++ {
		for s := 0; s < 2; s++ {
			if cost[s][i] >= inf {
				continue
			}
			if c := cost[s][i] + literalStepCost; c < cost[stLit][i+1] {
				cost[stLit][i+1] = c
				choice[stLit][i+1] = token{kind: kindLiteral, length: 1}
				from[stLit][i+1] = s
				arrivalOffset[stLit][i+1] = arrivalOffset[s][i]
			}
		}

		if i < opts.Skip {
			chain.Insert(i)
			continue
		}

		// reuse the last offset: only legal coming out of a literal run
		if cost[stLit][i] < inf {
			if off := arrivalOffset[stLit][i]; off > 0 && i-off >= 0 {
				length := matchfinder.MatchLength(src, i-off, i, n-i)
				if length >= 1 {
					c := cost[stLit][i] + 2 + gamma.Bits(length)
					if c < cost[stCopy][i+length] {
						cost[stCopy][i+length] = c
						choice[stCopy][i+length] = token{kind: kindMatchReuse, length: length, offset: off}
						from[stCopy][i+length] = stLit
						arrivalOffset[stCopy][i+length] = off
					}
				}
			}
		}

		chain.Candidates(i, maxOffset, func(pos int) bool {
			length := matchfinder.MatchLength(src, pos, i, n-i)
			if length < minMatch {
				return true
			}
			offset := i - pos
			msb := (offset-1)/128 + 1
			matchCost := 2 + gamma.Bits(msb) + 8 + gamma.Bits(length-1)
			for s := 0; s < 2; s++ {
				if cost[s][i] >= inf {
					continue
				}
				c := cost[s][i] + matchCost
				if c < cost[stCopy][i+length] {
					cost[stCopy][i+length] = c
					choice[stCopy][i+length] = token{kind: kindMatchNew, length: length, offset: offset}
					from[stCopy][i+length] = s
					arrivalOffset[stCopy][i+length] = offset
				}
			}
			return true
		})
		chain.Insert(i)
	}

	endState := stCopy
	if cost[stLit][n] < cost[stCopy][n] {
		endState = stLit
	}
	var tokens []token
	for i, s := n, endState; i > 0; {
		t := choice[s][i]
		tokens = append(tokens, t)
		i, s = i-t.length, from[s][i]
	}
	for l, r := 0, len(tokens)-1; l < r; l, r = l+1, r-1 {
		tokens[l], tokens[r] = tokens[r], tokens[l]
	}
	tokens = mergeLiteralRuns(tokens)
	// tokens[0] is always a literal run: position 0 starts in stCopy with
	// no offset recorded, and the only transition out of position 0 in
	// that state (besides another copy, which needs a match the empty
	// chain can't yet provide) is the literal step into stLit.

	w := bitio.NewWriterSize(n)
	pos := 0
	gamma.WriteInterlaced(w, tokens[0].length, backwards, false)
	for k := 0; k < tokens[0].length; k++ {
		w.WriteByte(src[pos+k])
	}
	pos += tokens[0].length

	// The bit written per token kind never depends on state: 0 for a
	// literal run or an offset reuse, 1 for a new offset. Decompress tells
	// the two 0 meanings apart by tracking which kind of token it last
	// decoded, so Compress needs no equivalent state here.
	matches, reuses, literals := 0, 0, 1

	for _, t := range tokens[1:] {
		switch t.kind {
		case kindLiteral:
			w.WriteBit(0)
			gamma.WriteInterlaced(w, t.length, backwards, false)
			for k := 0; k < t.length; k++ {
				w.WriteByte(src[pos+k])
			}
			literals++
		case kindMatchReuse:
			w.WriteBit(0)
			gamma.WriteInterlaced(w, t.length, backwards, false)
			reuses++
		case kindMatchNew:
			w.WriteBit(1)
			msb := (t.offset-1)/128 + 1
			gamma.WriteInterlaced(w, msb, backwards, invert)
			w.WriteByte(byte((t.offset - 1) % 128))
			gamma.WriteInterlaced(w, t.length-1, backwards, false)
			matches++
		}
		pos += t.length
	}

	w.WriteBit(1)
	gamma.WriteInterlaced(w, eofSentinel, backwards, invert)

	if opts.Verbose != nil {
		fmt.Fprintf(opts.Verbose, "zx0: encoded %d bytes into %d bytes (%d literal runs, %d new-offset matches, %d reuses)\n",
			n, w.Len(), literals, matches, reuses)
	}

	return w.Bytes(), nil
}

// reversed returns a new slice containing src's bytes in reverse order.
func reversed(src []byte) []byte {
	out := make([]byte, len(src))
	for i, b := range src {
		out[len(src)-1-i] = b
	}
	return out
}

func mergeLiteralRuns(tokens []token) []token {
	out := tokens[:0:0]
	for _, t := range tokens {
		if t.kind == kindLiteral && len(out) > 0 && out[len(out)-1].kind == kindLiteral {
			out[len(out)-1].length += t.length
			continue
		}
		out = append(out, t)
	}
	return out
}

// Decompress decodes a ZX0 stream.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = &DecompressOptions{}
	}
	if len(src) == 0 {
		return []byte{}, nil
	}
	invert := !opts.Classic
	backwards := opts.Backwards

	r := bitio.NewReader(src)
	runLen, err := gamma.ReadInterlaced(r, backwards, false)
	if err != nil {
		return nil, errors.Wrap(ErrTruncatedStream, "zx0: truncated initial literal run length")
	}
	out := make([]byte, 0, runLen)
	for k := 0; k < runLen; k++ {
		b, err := r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "zx0: truncated initial literal run")
		}
		out = append(out, b)
	}

	lastOffset := 0
	afterLiteral := true
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "zx0: truncated token stream")
		}
		if bit == 1 {
			msb, err := gamma.ReadInterlaced(r, backwards, invert)
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "zx0: truncated offset MSB")
			}
			if msb == eofSentinel {
				if backwards {
					return reversed(out), nil
				}
				return out, nil
			}
			lsb, err := r.ReadByte()
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "zx0: truncated offset low byte")
			}
			offset := (msb-1)*128 + int(lsb) + 1
			lengthValue, err := gamma.ReadInterlaced(r, backwards, false)
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "zx0: truncated match length")
			}
			length := lengthValue + 1
			if offset > len(out) {
				return nil, errors.Wrapf(ErrInvalidBackReference, "zx0: offset %d exceeds output length %d", offset, len(out))
			}
			start := len(out) - offset
			for k := 0; k < length; k++ {
				out = append(out, out[start+k])
			}
			lastOffset = offset
			afterLiteral = false
			continue
		}

		if afterLiteral {
			length, err := gamma.ReadInterlaced(r, backwards, false)
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "zx0: truncated reuse length")
			}
			if lastOffset == 0 || lastOffset > len(out) {
				return nil, errors.Wrapf(ErrInvalidBackReference, "zx0: reuse offset %d exceeds output length %d", lastOffset, len(out))
			}
			start := len(out) - lastOffset
			for k := 0; k < length; k++ {
				out = append(out, out[start+k])
			}
			afterLiteral = false
		} else {
			length, err := gamma.ReadInterlaced(r, backwards, false)
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "zx0: truncated literal run length")
			}
			for k := 0; k < length; k++ {
				b, err := r.ReadByte()
				if err != nil {
					return nil, errors.Wrap(ErrTruncatedStream, "zx0: truncated literal run")
				}
				out = append(out, b)
			}
			afterLiteral = true
		}
	}
}
