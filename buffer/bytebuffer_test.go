package buffer

import (
	"bytes"
	"testing"
)

func TestByteBufferReadWrite(t *testing.T) {
	b := NewByteBuffer(10)

	if b.Len() != 10 {
		t.Errorf("expected length 10, got %v", b.Len())
	}
	if b.Detached() {
		t.Error("a fresh buffer must not be detached")
	}

	if err := b.WriteAt([]byte{1, 2, 3}, 2); err != nil {
		t.Fatal(err)
	}

	got := make([]byte, 3)
	if err := b.ReadAt(got, 2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("expected 1 2 3, got % x", got)
	}

	if b.Bytes()[2] != 1 || b.Bytes()[4] != 3 {
		t.Error("write not reflected in the raw storage")
	}
}

func TestByteBufferBounds(t *testing.T) {
	b := NewByteBuffer(4)

	cases := []struct {
		n   int
		off int
	}{
		{1, 4},
		{1, -1},
		{4, 1},
		{8, 0},
	}

	for _, c := range cases {
		if err := b.WriteAt(make([]byte, c.n), c.off); err != ErrOutOfRange {
			t.Errorf("write %v bytes at %v: expected ErrOutOfRange, got %v", c.n, c.off, err)
		}
		if err := b.ReadAt(make([]byte, c.n), c.off); err != ErrOutOfRange {
			t.Errorf("read %v bytes at %v: expected ErrOutOfRange, got %v", c.n, c.off, err)
		}
	}
}

func TestByteBufferDetach(t *testing.T) {
	b := NewByteBuffer(4)
	b.Detach()

	if !b.Detached() {
		t.Fatal("expected the buffer to report detached")
	}
	if b.Len() != 0 {
		t.Errorf("expected a detached buffer to have length 0, got %v", b.Len())
	}
	if err := b.ReadAt(make([]byte, 1), 0); err != ErrDetached {
		t.Errorf("expected ErrDetached, got %v", err)
	}
	if err := b.WriteAt([]byte{1}, 0); err != ErrDetached {
		t.Errorf("expected ErrDetached, got %v", err)
	}
}

func TestNewByteBufferSlice(t *testing.T) {
	data := []byte{9, 9, 9, 9}
	b := NewByteBufferSlice(data)

	if err := b.WriteAt([]byte{1}, 1); err != nil {
		t.Fatal(err)
	}

	// the buffer aliases the passed slice, it does not copy it
	if data[1] != 1 {
		t.Error("write not visible through the original slice")
	}
}
