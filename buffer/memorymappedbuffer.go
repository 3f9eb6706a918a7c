package buffer

import (
	"fmt"
	"os"
	"path"

	mmap "github.com/edsrzf/mmap-go"
)

// MemoryMappedBuffer is a ByteBuffer that is also mapped into memory.
// Unmapping it is the file-backed form of detachment: once unmapped,
// every view over the buffer fails on access.
type MemoryMappedBuffer struct {
	*ByteBuffer
	m        mmap.MMap
	f        *os.File
	loc      string // location of the memory mapped file
	size     int    // size in bytes
	readonly bool
}

// NewMemoryMappedBuffer will create and return a new instance of a
// MemoryMappedBuffer, mapped read-write over a newly created file of the
// specified size at loc.
func NewMemoryMappedBuffer(loc string, size int) (*MemoryMappedBuffer, error) {
	if _, err := os.Stat(loc); err == nil {
		if err = os.Remove(loc); err != nil {
			return nil, err
		}
	}

	// ensure destination directory exists
	if err := os.MkdirAll(path.Dir(loc), 0700); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}

	l, err := f.Write(make([]byte, size))
	if err != nil {
		return nil, err
	}
	if l < size {
		return nil, fmt.Errorf("could not initialize %d bytes", size)
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, err
	}

	return &MemoryMappedBuffer{
		ByteBuffer: NewByteBufferSlice(m),
		m:          m,
		f:          f,
		loc:        loc,
		size:       size,
	}, nil
}

// OpenMemoryMappedBuffer maps an existing file at loc read-only. Writes
// through the returned buffer fail with ErrReadOnly.
func OpenMemoryMappedBuffer(loc string) (*MemoryMappedBuffer, error) {
	f, err := os.Open(loc)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}

	return &MemoryMappedBuffer{
		ByteBuffer: NewByteBufferSlice(m),
		m:          m,
		f:          f,
		loc:        loc,
		size:       int(fi.Size()),
		readonly:   true,
	}, nil
}

// Loc returns the location of the mapped file.
func (b *MemoryMappedBuffer) Loc() string { return b.loc }

// WriteAt copies src into the mapping starting at off.
func (b *MemoryMappedBuffer) WriteAt(src []byte, off int) error {
	if b.readonly {
		return ErrReadOnly
	}
	return b.ByteBuffer.WriteAt(src, off)
}

// Unmap will manually delete the memory mapping of a mapped buffer and
// leave it detached.
func (b *MemoryMappedBuffer) Unmap(removefile bool) error {
	if err := b.m.Unmap(); err != nil {
		return err
	}

	// the mapping is gone, revoke the slice before anyone can touch it
	b.Detach()

	if err := b.f.Close(); err != nil {
		return err
	}

	if removefile {
		if err := os.Remove(b.loc); err != nil {
			return err
		}
	}

	return nil
}
