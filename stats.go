package binview

import (
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
)

// latency histogram range: 1ns to 1s at 3 significant figures
const (
	minLatency = 1
	maxLatency = int64(time.Second)
	sigfigures = 3
)

// TimedView wraps a view and records the latency of every generic Get and
// Set call into HDR histograms, one per direction, in nanoseconds. The
// histograms are safe for concurrent use; the underlying view keeps the
// concurrency model of View.
type TimedView struct {
	v    *View
	mu   sync.Mutex
	gets *hdrhistogram.Histogram
	sets *hdrhistogram.Histogram
}

// NewTimedView creates a TimedView over v with empty histograms.
func NewTimedView(v *View) *TimedView {
	return &TimedView{
		v:    v,
		gets: hdrhistogram.New(minLatency, maxLatency, sigfigures),
		sets: hdrhistogram.New(minLatency, maxLatency, sigfigures),
	}
}

// View returns the wrapped view.
func (t *TimedView) View() *View { return t.v }

// Get reads through the wrapped view and records the call latency,
// whether the call succeeded or not.
func (t *TimedView) Get(kind Kind, byteOffset int64, order ...ByteOrder) (interface{}, error) {
	start := time.Now()
	val, err := t.v.Get(kind, byteOffset, order...)
	elapsed := time.Since(start).Nanoseconds()

	t.mu.Lock()
	// only fails past the 1s ceiling, which is not worth surfacing
	_ = t.gets.RecordValue(elapsed)
	t.mu.Unlock()

	return val, err
}

// Set writes through the wrapped view and records the call latency.
func (t *TimedView) Set(kind Kind, byteOffset int64, value interface{}, order ...ByteOrder) error {
	start := time.Now()
	err := t.v.Set(kind, byteOffset, value, order...)
	elapsed := time.Since(start).Nanoseconds()

	t.mu.Lock()
	_ = t.sets.RecordValue(elapsed)
	t.mu.Unlock()

	return err
}

// GetCount returns the number of recorded Get calls.
func (t *TimedView) GetCount() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gets.TotalCount()
}

// SetCount returns the number of recorded Set calls.
func (t *TimedView) SetCount() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sets.TotalCount()
}

// GetLatencyPercentile returns the q'th percentile of Get latencies in
// nanoseconds, q in (0, 100].
func (t *TimedView) GetLatencyPercentile(q float64) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gets.ValueAtQuantile(q)
}

// SetLatencyPercentile returns the q'th percentile of Set latencies in
// nanoseconds, q in (0, 100].
func (t *TimedView) SetLatencyPercentile(q float64) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sets.ValueAtQuantile(q)
}

// MeanGetLatency returns the mean Get latency in nanoseconds.
func (t *TimedView) MeanGetLatency() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gets.Mean()
}

// MeanSetLatency returns the mean Set latency in nanoseconds.
func (t *TimedView) MeanSetLatency() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sets.Mean()
}

// Reset discards all recorded latencies.
func (t *TimedView) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gets.Reset()
	t.sets.Reset()
}
