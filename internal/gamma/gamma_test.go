package gamma

import (
	"testing"

	"github.com/oldbytes/retropack/internal/bitio"
)

func TestStandardRoundTrip(t *testing.T) {
	for _, v := range []int{1, 2, 3, 4, 15, 16, 300, 65535} {
		w := bitio.NewWriter()
		Write(w, v)
		if got := w.Len() * 8; got < Bits(v) {
			t.Fatalf("value %d: wrote fewer bits than Bits() predicted", v)
		}
		r := bitio.NewReader(w.Bytes())
		got, err := Read(r)
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Fatalf("value %d: got %d", v, got)
		}
	}
}

func TestInterlacedRoundTrip(t *testing.T) {
	for _, backwards := range []bool{false, true} {
		for _, invert := range []bool{false, true} {
			for _, v := range []int{1, 2, 3, 4, 15, 16, 300, 65535} {
				w := bitio.NewWriter()
				WriteInterlaced(w, v, backwards, invert)
				r := bitio.NewReader(w.Bytes())
				got, err := ReadInterlaced(r, backwards, invert)
				if err != nil {
					t.Fatal(err)
				}
				if got != v {
					t.Fatalf("backwards=%v invert=%v value %d: got %d", backwards, invert, v, got)
				}
			}
		}
	}
}
