package dan3

import (
	"bytes"
	"testing"

	"github.com/oldbytes/retropack/internal/bitio"
	"github.com/oldbytes/retropack/internal/corpus"
)

func TestEmptyInput(t *testing.T) {
	enc, err := Compress(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) != 0 {
		t.Fatalf("want empty, got %x", enc)
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
	enc, err := Compress([]byte{0x5C}, nil)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, []byte{0x5C}) {
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

func TestPreambleRoundTripAllSubsets(t *testing.T) {
	for subset := 0; subset <= maxSubset; subset++ {
		w := bitio.NewWriter()
		writePreamble(w, subset)
		r := bitio.NewReader(w.Bytes())
		got, err := readPreamble(r)
		if err != nil {
			t.Fatalf("subset=%d: %v", subset, err)
		}
		if got != subset {
			t.Fatalf("subset=%d: decoded %d", subset, got)
		}
	}
}

// TestOffsetTierBoundaries exercises all three general offset tiers.
func TestOffsetTierBoundaries(t *testing.T) {
	for _, gap := range []int{32, 33, 288, 289, 800} {
		data := make([]byte, 0, gap+8)
		data = append(data, 0xB0, 0xB1, 0xB2, 0xB3)
		for len(data) < gap {
			data = append(data, byte(len(data)))
		}
		data = append(data, 0xB0, 0xB1, 0xB2, 0xB3, 0xCC)
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

func TestTruncatedStream(t *testing.T) {
	_, err := Decompress([]byte{0x41}, nil)
	if err == nil {
		t.Fatal("expected truncation error")
	}
}
