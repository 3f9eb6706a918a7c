package binview

import (
	"testing"

	"github.com/binview/binview/buffer"
)

func TestTimedViewCounts(t *testing.T) {
	buf := buffer.NewByteBuffer(8)
	v, err := New(buf)
	if err != nil {
		t.Fatal(err)
	}

	tv := NewTimedView(v)
	if tv.View() != v {
		t.Error("expected View to return the wrapped view")
	}

	for i := 0; i < 10; i++ {
		if err := tv.Set(Uint32, 0, i, LittleEndian); err != nil {
			t.Fatal(err)
		}
		if _, err := tv.Get(Uint32, 0, LittleEndian); err != nil {
			t.Fatal(err)
		}
	}

	if tv.SetCount() != 10 {
		t.Errorf("expected 10 recorded sets, got %v", tv.SetCount())
	}
	if tv.GetCount() != 10 {
		t.Errorf("expected 10 recorded gets, got %v", tv.GetCount())
	}

	if tv.GetLatencyPercentile(99) < 0 {
		t.Error("expected a non-negative latency percentile")
	}
	if tv.MeanSetLatency() < 0 {
		t.Error("expected a non-negative mean latency")
	}
}

func TestTimedViewRecordsFailedCalls(t *testing.T) {
	buf := buffer.NewByteBuffer(8)
	v, err := New(buf)
	if err != nil {
		t.Fatal(err)
	}

	tv := NewTimedView(v)

	if _, err := tv.Get(Uint64, 5); err == nil {
		t.Fatal("expected an out of bounds read to fail")
	}

	if tv.GetCount() != 1 {
		t.Errorf("expected the failed call to be recorded, got count %v", tv.GetCount())
	}
}

func TestTimedViewReset(t *testing.T) {
	buf := buffer.NewByteBuffer(8)
	v, err := New(buf)
	if err != nil {
		t.Fatal(err)
	}

	tv := NewTimedView(v)
	for i := 0; i < 5; i++ {
		if err := tv.Set(Uint8, 0, i); err != nil {
			t.Fatal(err)
		}
	}

	tv.Reset()

	if tv.SetCount() != 0 || tv.GetCount() != 0 {
		t.Errorf("expected counts to reset, got %v sets and %v gets", tv.SetCount(), tv.GetCount())
	}
}
