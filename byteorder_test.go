package binview

import (
	"bytes"
	"testing"
)

func TestFlipBytes(t *testing.T) {
	cases := []struct {
		in, want []byte
	}{
		{[]byte{1}, []byte{1}},
		{[]byte{1, 2}, []byte{2, 1}},
		{[]byte{1, 2, 3, 4}, []byte{4, 3, 2, 1}},
		{[]byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{8, 7, 6, 5, 4, 3, 2, 1}},
	}

	for _, c := range cases {
		b := make([]byte, len(c.in))
		copy(b, c.in)

		flipBytes(b)

		if !bytes.Equal(b, c.want) {
			t.Errorf("expected % x, got % x", c.want, b)
		}
	}
}

func TestNeedsFlip(t *testing.T) {
	if NativeEndian.needsFlip() {
		t.Error("the native order must never need a flip")
	}
	if !(!NativeEndian).needsFlip() {
		t.Error("the foreign order must always need a flip")
	}
}

func TestHostOrderMatchesNativeEndian(t *testing.T) {
	var b [2]byte
	hostOrder.PutUint16(b[:], 0xCAFE)

	switch {
	case NativeEndian == LittleEndian && (b[0] != 0xFE || b[1] != 0xCA):
		t.Errorf("little-endian host encoded 0xCAFE as % x", b)
	case NativeEndian == BigEndian && (b[0] != 0xCA || b[1] != 0xFE):
		t.Errorf("big-endian host encoded 0xCAFE as % x", b)
	}
}

func TestByteOrderString(t *testing.T) {
	if BigEndian.String() != "big-endian" {
		t.Errorf("got %q", BigEndian.String())
	}
	if LittleEndian.String() != "little-endian" {
		t.Errorf("got %q", LittleEndian.String())
	}
}
