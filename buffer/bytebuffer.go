package buffer

import "errors"

// errors shared by the buffer implementations
var (
	ErrOutOfRange = errors.New("offset out of range")
	ErrDetached   = errors.New("buffer is detached")
	ErrReadOnly   = errors.New("buffer is mapped read-only")
)

// ByteBuffer is a simple fixed-size in-memory buffer that supports
// reading and writing anywhere within its range.
type ByteBuffer struct {
	data []byte
}

// NewByteBuffer creates a new ByteBuffer of the specified size
func NewByteBuffer(n int) *ByteBuffer {
	return &ByteBuffer{data: make([]byte, n)}
}

// NewByteBufferSlice creates a new ByteBuffer using the passed slice
func NewByteBufferSlice(data []byte) *ByteBuffer {
	return &ByteBuffer{data: data}
}

// Len returns the byte length of the buffer, zero once detached.
func (b *ByteBuffer) Len() int { return len(b.data) }

// Detached reports whether the storage has been revoked.
func (b *ByteBuffer) Detached() bool { return b.data == nil }

// Detach revokes the storage. Every view constructed over the buffer
// fails on its next access.
func (b *ByteBuffer) Detach() { b.data = nil }

// Bytes returns the internal byte array of the ByteBuffer
func (b *ByteBuffer) Bytes() []byte { return b.data }

// ReadAt copies len(dst) bytes starting at off into dst.
func (b *ByteBuffer) ReadAt(dst []byte, off int) error {
	if b.data == nil {
		return ErrDetached
	}
	if off < 0 || off+len(dst) > len(b.data) {
		return ErrOutOfRange
	}
	copy(dst, b.data[off:])
	return nil
}

// WriteAt copies src into the buffer starting at off.
func (b *ByteBuffer) WriteAt(src []byte, off int) error {
	if b.data == nil {
		return ErrDetached
	}
	if off < 0 || off+len(src) > len(b.data) {
		return ErrOutOfRange
	}
	copy(b.data[off:], src)
	return nil
}
