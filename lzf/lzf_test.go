package lzf

import (
	"bytes"
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

func TestEndMarkerIsTerminal(t *testing.T) {
	enc, err := Compress([]byte("hello hello hello world"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if enc[len(enc)-1] != 0xFF {
		t.Fatalf("expected terminal 0xFF, got %x", enc)
	}
	for _, b := range enc[:len(enc)-1] {
		_ = b // literal payload and offset bytes may contain 0xFF; only the
		// terminal byte is meaningful as a marker during correct decoding.
	}
}

func TestSingleByte(t *testing.T) {
	enc, err := Compress([]byte{0x41}, nil)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, []byte{0x41}) {
		t.Fatalf("got %x", dec)
	}
}

func TestTruncatedLiteralRun(t *testing.T) {
	_, err := Decompress([]byte{0x05, 0x01, 0x02}, nil)
	if err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestInvalidBackReference(t *testing.T) {
	// control=1 (short match len 3), offset high=0, low byte chosen so
	// offset exceeds the (empty) output produced so far.
	_, err := Decompress([]byte{0x20, 0x05, 0xFF}, nil)
	if err == nil {
		t.Fatal("expected invalid back-reference error")
	}
}
