package bitio

import "testing"

func TestWriteReadBitsRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteBit(1)
	w.WriteBit(0)
	w.WriteBits(0b101, 3)
	w.WriteByte(0xAB)
	w.WriteBit(1)

	r := NewReader(w.Bytes())
	if b, _ := r.ReadBit(); b != 1 {
		t.Fatalf("bit 0: got %d", b)
	}
	if b, _ := r.ReadBit(); b != 0 {
		t.Fatalf("bit 1: got %d", b)
	}
	v, err := r.ReadBits(3)
	if err != nil || v != 0b101 {
		t.Fatalf("bits: got %d err %v", v, err)
	}
}

func TestReserveOnDemand(t *testing.T) {
	w := NewWriter()
	for i := 0; i < 8; i++ {
		w.WriteBit(1)
	}
	if len(w.Bytes()) != 1 || w.Bytes()[0] != 0xFF {
		t.Fatalf("got %x", w.Bytes())
	}
	w.WriteByte(0x10)
	w.WriteBit(1)
	if len(w.Bytes()) != 3 {
		t.Fatalf("expected reserve of a third byte, got %x", w.Bytes())
	}
}

func TestEOF(t *testing.T) {
	r := NewReader(nil)
	if _, err := r.ReadBit(); err != ErrEOF {
		t.Fatalf("want ErrEOF, got %v", err)
	}
	if _, err := r.ReadByte(); err != ErrEOF {
		t.Fatalf("want ErrEOF, got %v", err)
	}
}
