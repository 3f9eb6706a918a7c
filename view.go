package binview

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/binview/binview/buffer"
)

// maxIndex is the largest offset or length a view accepts: 2^53-1, the
// largest integer a float64-based host can address exactly.
const maxIndex = 1<<53 - 1

// toIndex converts i into a non-negative index representable on this
// host. Offsets and lengths past maxIndex, negative values, and values
// that do not fit an int on 32-bit platforms are all rejected.
func toIndex(i int64) (int, bool) {
	if i < 0 || i > maxIndex {
		return 0, false
	}
	if bits.UintSize == 32 && i >= math.MaxInt32 {
		return 0, false
	}
	return int(i), true
}

// View is an immutable fixed window into a backing buffer. The offset and
// length are validated against the buffer length once, at construction;
// detachment of the buffer is re-checked live on every access, since the
// buffer's owner may detach it at any point after the view is created.
//
// A view never allocates or frees its buffer and does not observe later
// buffer growth.
type View struct {
	buf        buffer.Buffer
	byteOffset int
	byteLength int
}

// New constructs a view covering all of buf.
func New(buf buffer.Buffer) (*View, error) {
	return construct(buf, 0, 0, false)
}

// NewAt constructs a view from byteOffset to the end of buf.
func NewAt(buf buffer.Buffer, byteOffset int64) (*View, error) {
	return construct(buf, byteOffset, 0, false)
}

// NewSlice constructs a view of byteLength bytes starting at byteOffset.
func NewSlice(buf buffer.Buffer, byteOffset, byteLength int64) (*View, error) {
	return construct(buf, byteOffset, byteLength, true)
}

func construct(buf buffer.Buffer, byteOffset, byteLength int64, hasLength bool) (*View, error) {
	if buf == nil {
		return nil, errors.Wrap(ErrNotABuffer, "cannot construct view")
	}

	offset, ok := toIndex(byteOffset)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidOffset, "offset %d", byteOffset)
	}

	// Detachment is deliberately not checked here: a view may be
	// constructed over an already detached buffer and will only fail
	// once accessed.
	bufLen := buf.Len()
	if offset > bufLen {
		return nil, errors.Wrapf(ErrInvalidOffset, "offset %d, buffer length %d", offset, bufLen)
	}

	var length int
	if hasLength {
		length, ok = toIndex(byteLength)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidLength, "length %d", byteLength)
		}
		if length > bufLen-offset {
			return nil, errors.Wrapf(ErrInvalidLength, "offset %d, length %d, buffer length %d", offset, length, bufLen)
		}
	} else {
		length = bufLen - offset
	}

	if logging {
		logger.Info("constructed view",
			zap.String("module", "view"),
			zap.Int("byteOffset", offset),
			zap.Int("byteLength", length),
			zap.Int("bufferLength", bufLen),
		)
	}

	return &View{buf: buf, byteOffset: offset, byteLength: length}, nil
}

// Buffer returns the backing buffer the view was constructed over.
func (v *View) Buffer() buffer.Buffer { return v.buf }

// ByteOffset returns the view's start offset into the buffer, as recorded
// at construction.
func (v *View) ByteOffset() int { return v.byteOffset }

// ByteLength returns the view's length in bytes, as recorded at
// construction. It is reported even after the buffer is detached.
func (v *View) ByteLength() int { return v.byteLength }
