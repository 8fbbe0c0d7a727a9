package mdkrle

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
	if !bytes.Equal(enc, []byte{0xFF}) {
		t.Fatalf("got %x", enc)
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
	enc, err := Compress([]byte{0x41}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, []byte{0x00, 0x41, 0xFF}) {
		t.Fatalf("got %x", enc)
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
			t.Fatalf("%s: round trip mismatch, in=%d out=%d", name, len(data), len(dec))
		}
	}
}

func TestConstantRunSizeBound(t *testing.T) {
	data := bytes.Repeat([]byte{0x55}, 300)
	enc, err := Compress(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) >= 320 {
		t.Fatalf("compressed size %d not < 320", len(enc))
	}
}

func TestTruncatedRawPacket(t *testing.T) {
	_, err := Decompress([]byte{0x05, 0x01, 0x02}, nil)
	if err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestTruncatedRLEPacket(t *testing.T) {
	_, err := Decompress([]byte{0x80}, nil)
	if err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestMissingEndMarker(t *testing.T) {
	_, err := Decompress([]byte{0x00, 0x41}, nil)
	if err == nil {
		t.Fatal("expected truncation error for missing end marker")
	}
}
