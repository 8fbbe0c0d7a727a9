package bitbuster

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/oldbytes/retropack/internal/bitio"
	"github.com/oldbytes/retropack/internal/corpus"
)

func TestEmptyInput(t *testing.T) {
	enc, err := Compress(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) != 4 {
		t.Fatalf("want 4-byte zero header, got %x", enc)
	}
	if binary.LittleEndian.Uint32(enc) != 0 {
		t.Fatalf("want zero length header, got %x", enc)
	}
	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(dec) != 0 {
		t.Fatalf("got %x", dec)
	}
}

func TestSingleByte(t *testing.T) {
	enc, err := Compress([]byte{0x77}, nil)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, []byte{0x77}) {
		t.Fatalf("got %x", dec)
	}
}

func TestCorpusRoundTrip(t *testing.T) {
	for name, data := range corpus.Cases() {
		enc, err := Compress(data, nil)
		if err != nil {
			t.Fatalf("%s: compress: %v", name, err)
		}
		dec, err := Decompress(enc, nil)
		if err != nil {
			t.Fatalf("%s: decompress: %v", name, err)
		}
		if !bytes.Equal(dec, data) {
			t.Fatalf("%s: round trip mismatch in=%d out=%d", name, len(data), len(dec))
		}
	}
}

// TestOffsetOneNeverEmitted exercises data where the naive parser would
// want a length-3 offset-1 match (a byte immediately repeating itself
// three times), which Compress must route around to avoid colliding with
// the end marker's reserved zero distance byte.
func TestOffsetOneNeverEmitted(t *testing.T) {
	data := []byte("aaaXaaaaXaaaaaXaa")
	enc, err := Compress(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, data) {
		t.Fatalf("round trip mismatch: got %q want %q", dec, data)
	}
}

func TestDistanceBoundary(t *testing.T) {
	for _, gap := range []int{100, 128, 129, 2000, 2047} {
		data := make([]byte, 0, gap+8)
		data = append(data, 0xD0, 0xD1, 0xD2, 0xD3)
		for len(data) < gap {
			data = append(data, byte(len(data)))
		}
		data = append(data, 0xD0, 0xD1, 0xD2, 0xD3, 0xEE)
		enc, err := Compress(data, nil)
		if err != nil {
			t.Fatalf("gap=%d: compress: %v", gap, err)
		}
		dec, err := Decompress(enc, nil)
		if err != nil {
			t.Fatalf("gap=%d: decompress: %v", gap, err)
		}
		if !bytes.Equal(dec, data) {
			t.Fatalf("gap=%d: round trip mismatch", gap)
		}
	}
}

func TestTruncatedHeader(t *testing.T) {
	_, err := Decompress([]byte{0x01, 0x00}, nil)
	if err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestHeaderExceedsMaxInput(t *testing.T) {
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(DefaultMaxInput)+1)
	_, err := Decompress(header[:], nil)
	if err == nil {
		t.Fatal("expected an invalid-header error")
	}
}

func TestInvalidBackReference(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBit(1) // match
	w.WriteByte(0x05)
	w.WriteBit(1) // gamma(1) -> length-2 == 1 -> length 3

	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], 1)
	src := append(header[:], w.Bytes()...)

	_, err := Decompress(src, nil)
	if err == nil {
		t.Fatal("expected an out-of-range back-reference error")
	}
}

func TestTruncatedEndMarker(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBit(1)
	w.WriteByte(0)
	w.WriteBit(1)
	w.WriteBit(1)

	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], 0)
	src := append(header[:], w.Bytes()...)

	_, err := Decompress(src, nil)
	if err == nil {
		t.Fatal("expected a truncated end-marker error")
	}
}
