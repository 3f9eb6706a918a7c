package binview

import (
	"testing"

	"github.com/binview/binview/buffer"
)

func TestNewCoversWholeBuffer(t *testing.T) {
	buf := buffer.NewByteBuffer(16)

	v, err := New(buf)
	if err != nil {
		t.Fatal(err)
	}

	if v.ByteOffset() != 0 {
		t.Errorf("expected byte offset 0, got %v", v.ByteOffset())
	}
	if v.ByteLength() != 16 {
		t.Errorf("expected byte length 16, got %v", v.ByteLength())
	}
	if v.Buffer() != buf {
		t.Error("expected Buffer to return the backing buffer")
	}
}

func TestNewAt(t *testing.T) {
	cases := []struct {
		offset  int64
		wantLen int
	}{
		{0, 16},
		{1, 15},
		{8, 8},
		{16, 0},
	}

	for _, c := range cases {
		buf := buffer.NewByteBuffer(16)

		v, err := NewAt(buf, c.offset)
		if err != nil {
			t.Errorf("offset %v: unexpected error %v", c.offset, err)
			continue
		}

		if v.ByteOffset() != int(c.offset) {
			t.Errorf("offset %v: got byte offset %v", c.offset, v.ByteOffset())
		}
		if v.ByteLength() != c.wantLen {
			t.Errorf("offset %v: expected byte length %v, got %v", c.offset, c.wantLen, v.ByteLength())
		}
	}
}

func TestNewSlice(t *testing.T) {
	buf := buffer.NewByteBuffer(16)

	v, err := NewSlice(buf, 4, 8)
	if err != nil {
		t.Fatal(err)
	}
	if v.ByteOffset() != 4 || v.ByteLength() != 8 {
		t.Errorf("expected window (4, 8), got (%v, %v)", v.ByteOffset(), v.ByteLength())
	}

	// offset+length == buffer length is the last valid window
	if _, err = NewSlice(buf, 8, 8); err != nil {
		t.Errorf("expected boundary window to succeed, got %v", err)
	}
}

func TestConstructionBounds(t *testing.T) {
	cases := []struct {
		name      string
		offset    int64
		length    int64
		hasLength bool
	}{
		{"offset past end", 17, 0, false},
		{"negative offset", -1, 0, false},
		{"offset past safe range", 1 << 53, 0, false},
		{"window past end", 8, 9, true},
		{"negative length", 8, -1, true},
		{"length past safe range", 0, 1 << 53, true},
	}

	for _, c := range cases {
		buf := buffer.NewByteBuffer(16)

		var err error
		if c.hasLength {
			_, err = NewSlice(buf, c.offset, c.length)
		} else {
			_, err = NewAt(buf, c.offset)
		}

		if err == nil {
			t.Errorf("%v: expected construction to fail", c.name)
			continue
		}
		if !IsRangeError(err) {
			t.Errorf("%v: expected a range error, got %v", c.name, err)
		}
	}
}

func TestNewNilBuffer(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatal("expected construction without a buffer to fail")
	}
	if !IsTypeError(err) {
		t.Errorf("expected a type error, got %v", err)
	}
}

func TestZeroLengthView(t *testing.T) {
	buf := buffer.NewByteBuffer(8)

	v, err := NewAt(buf, 8)
	if err != nil {
		t.Fatal(err)
	}
	if v.ByteLength() != 0 {
		t.Fatalf("expected zero byte length, got %v", v.ByteLength())
	}

	if _, err = v.GetUint8(0); err == nil {
		t.Error("expected any access on a zero length view to fail")
	} else if !IsRangeError(err) {
		t.Errorf("expected a range error, got %v", err)
	}
}

// Detachment is not validated at construction time, only on access. This
// matches the original behavior, which skips the stricter check.
func TestNewOverDetachedBuffer(t *testing.T) {
	buf := buffer.NewByteBuffer(8)
	buf.Detach()

	v, err := New(buf)
	if err != nil {
		t.Fatalf("expected construction over a detached buffer to succeed, got %v", err)
	}

	if _, err = v.GetUint8(0); err == nil {
		t.Error("expected access to fail")
	} else if !IsTypeError(err) {
		t.Errorf("expected a type error, got %v", err)
	}
}

func TestAttributesSurviveDetach(t *testing.T) {
	buf := buffer.NewByteBuffer(8)

	v, err := NewSlice(buf, 2, 4)
	if err != nil {
		t.Fatal(err)
	}

	buf.Detach()

	if v.ByteOffset() != 2 {
		t.Errorf("expected recorded byte offset 2, got %v", v.ByteOffset())
	}
	if v.ByteLength() != 4 {
		t.Errorf("expected recorded byte length 4, got %v", v.ByteLength())
	}
}
