package dan1

import (
	"bytes"
	"strings"
	"testing"

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
	enc, err := Compress([]byte{0x33}, nil)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, []byte{0x33}) {
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

func TestRLEOption(t *testing.T) {
	data := bytes.Repeat([]byte{0x7E}, 200)
	enc, err := Compress(data, &CompressOptions{RLE: true})
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, data) {
		t.Fatalf("round trip mismatch: in=%d out=%d", len(data), len(dec))
	}
}

func TestVerboseDiagnostics(t *testing.T) {
	var buf strings.Builder
	_, err := Compress([]byte("hello world hello world"), &CompressOptions{Verbose: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected diagnostic output")
	}
}

// TestOffsetTierBoundaries round-trips a 4-byte repeat placed at gaps
// around the tier limits. A gap below 4 still puts the repeat at offset 4,
// and the byte filler repeats every 256 bytes, so the cheapest parse of
// these inputs uses tiers 2 and 3 but not tiers 1 or 4.
func TestOffsetTierBoundaries(t *testing.T) {
	for _, gap := range []int{2, 18, 19, 274, 275, 4370} {
		data := make([]byte, 0, gap+8)
		data = append(data, 0xA0, 0xA1, 0xA2, 0xA3)
		for len(data) < gap {
			data = append(data, byte(len(data)))
		}
		data = append(data, 0xA0, 0xA1, 0xA2, 0xA3, 0xEE)
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
