package binview

import (
	"math"

	"github.com/pkg/errors"
)

// pick resolves the optional trailing byte-order argument of an accessor.
// Omission means big-endian.
func pick(order []ByteOrder) ByteOrder {
	if len(order) > 0 {
		return order[0]
	}
	return BigEndian
}

// prepare runs the shared validation sequence of every accessor: the
// ToIndex conversion, the live detachment check, and the bounds check
// against the recorded view length, in that order. It returns the
// absolute position inside the buffer.
func (v *View) prepare(op string, byteOffset int64, size int) (int, error) {
	idx, ok := toIndex(byteOffset)
	if !ok {
		return 0, errors.Wrapf(ErrOutOfBounds, "%s: offset %d", op, byteOffset)
	}
	if v.buf.Detached() {
		return 0, errors.Wrapf(ErrDetached, "cannot perform %s", op)
	}
	// The second comparison catches the addition itself wrapping when
	// idx sits close to the host integer limit.
	if idx+size > v.byteLength || idx+size < idx {
		return 0, errors.Wrapf(ErrOutOfBounds, "%s: offset %d", op, idx)
	}
	return v.byteOffset + idx, nil
}

// load validates the access and fills dst with len(dst) bytes in host
// order, reversing them when the requested order differs from the host's.
func (v *View) load(op string, byteOffset int64, order ByteOrder, dst []byte) error {
	pos, err := v.prepare(op, byteOffset, len(dst))
	if err != nil {
		return err
	}
	if err := v.buf.ReadAt(dst, pos); err != nil {
		return errors.Wrap(err, op)
	}
	if order.needsFlip() {
		flipBytes(dst)
	}
	return nil
}

// store validates the access and commits src, given in host order, to the
// buffer in the requested order. A failing validation step writes
// nothing.
func (v *View) store(op string, byteOffset int64, order ByteOrder, src []byte) error {
	pos, err := v.prepare(op, byteOffset, len(src))
	if err != nil {
		return err
	}
	if order.needsFlip() {
		flipBytes(src)
	}
	if err := v.buf.WriteAt(src, pos); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}

// GetInt8 reads the byte at byteOffset as a signed 8-bit integer.
func (v *View) GetInt8(byteOffset int64, order ...ByteOrder) (int8, error) {
	var b [1]byte
	if err := v.load("GetInt8", byteOffset, pick(order), b[:]); err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// GetUint8 reads the byte at byteOffset.
func (v *View) GetUint8(byteOffset int64, order ...ByteOrder) (uint8, error) {
	var b [1]byte
	if err := v.load("GetUint8", byteOffset, pick(order), b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// GetInt16 reads a signed 16-bit integer at byteOffset. The order
// defaults to big-endian when omitted.
func (v *View) GetInt16(byteOffset int64, order ...ByteOrder) (int16, error) {
	var b [2]byte
	if err := v.load("GetInt16", byteOffset, pick(order), b[:]); err != nil {
		return 0, err
	}
	return int16(hostOrder.Uint16(b[:])), nil
}

// GetUint16 reads an unsigned 16-bit integer at byteOffset.
func (v *View) GetUint16(byteOffset int64, order ...ByteOrder) (uint16, error) {
	var b [2]byte
	if err := v.load("GetUint16", byteOffset, pick(order), b[:]); err != nil {
		return 0, err
	}
	return hostOrder.Uint16(b[:]), nil
}

// GetInt32 reads a signed 32-bit integer at byteOffset.
func (v *View) GetInt32(byteOffset int64, order ...ByteOrder) (int32, error) {
	var b [4]byte
	if err := v.load("GetInt32", byteOffset, pick(order), b[:]); err != nil {
		return 0, err
	}
	return int32(hostOrder.Uint32(b[:])), nil
}

// GetUint32 reads an unsigned 32-bit integer at byteOffset.
func (v *View) GetUint32(byteOffset int64, order ...ByteOrder) (uint32, error) {
	var b [4]byte
	if err := v.load("GetUint32", byteOffset, pick(order), b[:]); err != nil {
		return 0, err
	}
	return hostOrder.Uint32(b[:]), nil
}

// GetFloat32 reads an IEEE 754 single-precision float at byteOffset. The
// bit pattern is reinterpreted without rounding.
func (v *View) GetFloat32(byteOffset int64, order ...ByteOrder) (float32, error) {
	var b [4]byte
	if err := v.load("GetFloat32", byteOffset, pick(order), b[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(hostOrder.Uint32(b[:])), nil
}

// GetFloat64 reads an IEEE 754 double-precision float at byteOffset.
func (v *View) GetFloat64(byteOffset int64, order ...ByteOrder) (float64, error) {
	var b [8]byte
	if err := v.load("GetFloat64", byteOffset, pick(order), b[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(hostOrder.Uint64(b[:])), nil
}

// GetInt64 reads a signed 64-bit integer at byteOffset. The full 64-bit
// range round-trips exactly.
func (v *View) GetInt64(byteOffset int64, order ...ByteOrder) (int64, error) {
	var b [8]byte
	if err := v.load("GetInt64", byteOffset, pick(order), b[:]); err != nil {
		return 0, err
	}
	return int64(hostOrder.Uint64(b[:])), nil
}

// GetUint64 reads an unsigned 64-bit integer at byteOffset.
func (v *View) GetUint64(byteOffset int64, order ...ByteOrder) (uint64, error) {
	var b [8]byte
	if err := v.load("GetUint64", byteOffset, pick(order), b[:]); err != nil {
		return 0, err
	}
	return hostOrder.Uint64(b[:]), nil
}

// SetInt8 writes a signed 8-bit integer at byteOffset.
func (v *View) SetInt8(byteOffset int64, val int8, order ...ByteOrder) error {
	b := [1]byte{byte(val)}
	return v.store("SetInt8", byteOffset, pick(order), b[:])
}

// SetUint8 writes the byte at byteOffset.
func (v *View) SetUint8(byteOffset int64, val uint8, order ...ByteOrder) error {
	b := [1]byte{val}
	return v.store("SetUint8", byteOffset, pick(order), b[:])
}

// SetInt16 writes a signed 16-bit integer at byteOffset. The order
// defaults to big-endian when omitted.
func (v *View) SetInt16(byteOffset int64, val int16, order ...ByteOrder) error {
	var b [2]byte
	hostOrder.PutUint16(b[:], uint16(val))
	return v.store("SetInt16", byteOffset, pick(order), b[:])
}

// SetUint16 writes an unsigned 16-bit integer at byteOffset.
func (v *View) SetUint16(byteOffset int64, val uint16, order ...ByteOrder) error {
	var b [2]byte
	hostOrder.PutUint16(b[:], val)
	return v.store("SetUint16", byteOffset, pick(order), b[:])
}

// SetInt32 writes a signed 32-bit integer at byteOffset.
func (v *View) SetInt32(byteOffset int64, val int32, order ...ByteOrder) error {
	var b [4]byte
	hostOrder.PutUint32(b[:], uint32(val))
	return v.store("SetInt32", byteOffset, pick(order), b[:])
}

// SetUint32 writes an unsigned 32-bit integer at byteOffset.
func (v *View) SetUint32(byteOffset int64, val uint32, order ...ByteOrder) error {
	var b [4]byte
	hostOrder.PutUint32(b[:], val)
	return v.store("SetUint32", byteOffset, pick(order), b[:])
}

// SetFloat32 writes an IEEE 754 single-precision float at byteOffset.
func (v *View) SetFloat32(byteOffset int64, val float32, order ...ByteOrder) error {
	var b [4]byte
	hostOrder.PutUint32(b[:], math.Float32bits(val))
	return v.store("SetFloat32", byteOffset, pick(order), b[:])
}

// SetFloat64 writes an IEEE 754 double-precision float at byteOffset.
func (v *View) SetFloat64(byteOffset int64, val float64, order ...ByteOrder) error {
	var b [8]byte
	hostOrder.PutUint64(b[:], math.Float64bits(val))
	return v.store("SetFloat64", byteOffset, pick(order), b[:])
}

// SetInt64 writes a signed 64-bit integer at byteOffset.
func (v *View) SetInt64(byteOffset int64, val int64, order ...ByteOrder) error {
	var b [8]byte
	hostOrder.PutUint64(b[:], uint64(val))
	return v.store("SetInt64", byteOffset, pick(order), b[:])
}

// SetUint64 writes an unsigned 64-bit integer at byteOffset.
func (v *View) SetUint64(byteOffset int64, val uint64, order ...ByteOrder) error {
	var b [8]byte
	hostOrder.PutUint64(b[:], val)
	return v.store("SetUint64", byteOffset, pick(order), b[:])
}
