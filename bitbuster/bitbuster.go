// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package bitbuster

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/oldbytes/retropack/internal/bitio"
	"github.com/oldbytes/retropack/internal/gamma"
	"github.com/oldbytes/retropack/internal/matchfinder"
)

const eofZeroRun = 16

func offsetCostBits(offset int) int {
	if offset <= 128 {
		return 8
	}
	return 12
}

type token struct {
	isMatch bool
	length  int
	offset  int
}

// Compress encodes src as a BitBuster stream.
//
// Distance 1 (a wire distance byte of 0) is never assigned to a real match:
// it is reserved exclusively for the end marker, which also starts with a
// zero distance byte. Without that restriction a real offset-1 match of
// length 3 would be bit-for-bit indistinguishable from the start of the
// end marker (both begin "distance byte 0, then a 1 bit"), since the
// standard Elias-gamma code for length-2 == 1 is the single bit 1.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	maxInput := opts.maxInput()
	if len(src) > maxInput {
		return nil, errors.Wrapf(ErrInputTooLarge, "bitbuster: input %d exceeds MaxInput %d", len(src), maxInput)
	}
	n := len(src)

	w := bitio.NewWriterSize(n + 4)
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(n))
	w.WriteByte(header[0])
	w.WriteByte(header[1])
	w.WriteByte(header[2])
	w.WriteByte(header[3])

	// Empty input encodes to the zero length header alone.
	if n == 0 {
		return w.Bytes(), nil
	}

	chain := matchfinder.New(src)

	const inf = 1 << 30
	cost := make([]int, n+1)
	choice := make([]token, n+1)
	for i := 1; i <= n; i++ {
		cost[i] = inf
	}

	for i := 0; i < n; i++ {
		if c := cost[i] + 9; c < cost[i+1] {
			cost[i+1] = c
			choice[i+1] = token{isMatch: false, length: 1}
		}
		chain.Candidates(i, MaxOffset, func(pos int) bool {
			offset := i - pos
			if offset == 1 {
				return true
			}
			length := matchfinder.MatchLength(src, pos, i, n-i)
			if length < minMatch {
				return true
			}
			c := cost[i] + 1 + gamma.Bits(length-2) + offsetCostBits(offset)
			if c < cost[i+length] {
				cost[i+length] = c
				choice[i+length] = token{isMatch: true, length: length, offset: offset}
			}
			return true
		})
		chain.Insert(i)
	}

	var tokens []token
	for i := n; i > 0; {
		t := choice[i]
		tokens = append(tokens, t)
		i -= t.length
	}
	for l, r := 0, len(tokens)-1; l < r; l, r = l+1, r-1 {
		tokens[l], tokens[r] = tokens[r], tokens[l]
	}

	pos := 0
	for _, t := range tokens {
		if !t.isMatch {
			w.WriteBit(0)
			w.WriteByte(src[pos])
		} else {
			w.WriteBit(1)
			writeOffset(w, t.offset)
			gamma.Write(w, t.length-2)
		}
		pos += t.length
	}
	writeEOF(w)

	return w.Bytes(), nil
}

func writeEOF(w *bitio.Writer) {
	w.WriteBit(1)
	w.WriteByte(0)
	for i := 0; i < eofZeroRun; i++ {
		w.WriteBit(1)
	}
	w.WriteBit(0)
}

func writeOffset(w *bitio.Writer, offset int) {
	value := offset - 1
	if value < 128 {
		w.WriteByte(byte(value))
		return
	}
	low7 := byte(value & 0x7F)
	hi4 := (value >> 7) & 0xF
	w.WriteByte(0x80 | low7)
	w.WriteBits(uint64(hi4), 4)
}

func readOffset(r *bitio.Reader, d byte) (int, error) {
	if d < 128 {
		return int(d) + 1, nil
	}
	hi4, err := r.ReadBits(4)
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedStream, "bitbuster: truncated distance high nibble")
	}
	value := (int(hi4) << 7) | int(d&0x7F)
	return value + 1, nil
}

// Decompress decodes a BitBuster stream.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if len(src) < 4 {
		return nil, errors.Wrap(ErrTruncatedStream, "bitbuster: missing length header")
	}
	uncompressedLen := binary.LittleEndian.Uint32(src)
	maxInput := opts.maxInput()
	if uncompressedLen > uint32(maxInput) {
		return nil, errors.Wrapf(ErrInvalidHeader, "bitbuster: header length %d exceeds MaxInput %d", uncompressedLen, maxInput)
	}
	if uncompressedLen == 0 && len(src) == 4 {
		return []byte{}, nil
	}

	r := bitio.NewReader(src[4:])
	out := make([]byte, 0, uncompressedLen)
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "bitbuster: truncated token stream")
		}
		if bit == 0 {
			b, err := r.ReadByte()
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "bitbuster: truncated literal")
			}
			out = append(out, b)
			continue
		}

		d, err := r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "bitbuster: truncated distance byte")
		}
		if d == 0 {
			for k := 0; k < eofZeroRun; k++ {
				b, err := r.ReadBit()
				if err != nil {
					return nil, errors.Wrap(ErrTruncatedStream, "bitbuster: truncated end marker")
				}
				if b != 1 {
					return nil, errors.Wrap(ErrInvalidHeader, "bitbuster: malformed end marker")
				}
			}
			term, err := r.ReadBit()
			if err != nil {
				return nil, errors.Wrap(ErrTruncatedStream, "bitbuster: truncated end marker terminator")
			}
			if term != 0 {
				return nil, errors.Wrap(ErrInvalidHeader, "bitbuster: malformed end marker terminator")
			}
			return out, nil
		}

		offset, err := readOffset(r, d)
		if err != nil {
			return nil, err
		}
		lengthValue, err := gamma.Read(r)
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "bitbuster: truncated match length")
		}
		length := lengthValue + 2
		if offset > len(out) {
			return nil, errors.Wrapf(ErrInvalidBackReference, "bitbuster: offset %d exceeds output length %d", offset, len(out))
		}
		start := len(out) - offset
		for k := 0; k < length; k++ {
			out = append(out, out[start+k])
		}
	}
}
