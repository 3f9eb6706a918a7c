// Package buffer implements the backing buffers views are constructed
// over.
//
// A buffer is a fixed-size contiguous byte region exposing a current
// length, a detached flag and raw offset-addressed access. Detaching
// revokes the storage: afterwards the length reports zero and every raw
// read or write fails. The package ships an in-memory implementation and
// a memory-mapped one; anything satisfying Buffer can back a view.
package buffer

// Buffer defines an abstraction for an object that allows reading and
// writing of binary data anywhere within a fixed range, and whose storage
// can be revoked at any time by its owner.
type Buffer interface {
	Len() int
	Detached() bool
	ReadAt(dst []byte, off int) error
	WriteAt(src []byte, off int) error
}
