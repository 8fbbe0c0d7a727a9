// Package gamma implements standard and interlaced Elias-gamma coding, the
// value encoders shared by most of the LZ77 variants in this repository
// (DAN1, DAN3, Pletter, ZX7, ZX0, BitBuster).
package gamma

import (
	"math/bits"

	"github.com/oldbytes/retropack/internal/bitio"
)

// Bits returns the number of bits a standard Elias-gamma code for value
// occupies: 2*floor(log2(value)) + 1. value must be >= 1.
func Bits(value int) int {
	n := bits.Len(uint(value)) - 1 // floor(log2(value))
	return 2*n + 1
}

// Write emits value (>= 1) as standard Elias-gamma: floor(log2(value))
// zero bits, then the binary representation of value, MSB first.
func Write(w *bitio.Writer, value int) {
	n := bits.Len(uint(value)) - 1
	for i := 0; i < n; i++ {
		w.WriteBit(0)
	}
	w.WriteBits(uint64(value), n+1)
}

// Read decodes a standard Elias-gamma value (>= 1).
func Read(r *bitio.Reader) (int, error) {
	n := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit != 0 {
			break
		}
		n++
	}
	rest, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	return (1 << n) | int(rest), nil
}

// WriteInterlaced emits value (>= 1) as interlaced Elias-gamma: each
// high-to-low magnitude bit is preceded by a "more bits follow" tag, then a
// terminating tag closes the code. invert XORs every payload bit (used for
// offset-MSB fields); backwards flips the sense of the continuation tag
// (used when compressing in reverse, as ZX0's `backwards` mode does).
func WriteInterlaced(w *bitio.Writer, value int, backwards, invert bool) {
	i := 2
	for i <= value {
		i <<= 1
	}
	i >>= 1
	for i >>= 1; i > 0; i >>= 1 {
		w.WriteBit(btoi(backwards))
		w.WriteBit(btoi(invert == ((value & i) == 0)))
	}
	w.WriteBit(btoi(!backwards))
}

// ReadInterlaced decodes an interlaced Elias-gamma value, mirroring
// WriteInterlaced. The returned value includes the implicit leading 1 bit.
func ReadInterlaced(r *bitio.Reader, backwards, invert bool) (int, error) {
	value := 1
	for {
		tag, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if backwards {
			if tag == 0 {
				break
			}
		} else {
			if tag != 0 {
				break
			}
		}
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if invert {
			bit = 1 - bit
		}
		value = (value << 1) | bit
	}
	return value, nil
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
