package binview

import (
	"math"

	"github.com/pkg/errors"
)

// Coercer converts arbitrary host values into the numeric domains of the
// view kinds. The generic Set path runs every incoming value through the
// DefaultCoercer; hosts with their own conversion rules supply a
// replacement.
type Coercer interface {
	ToInt32(v interface{}) (int32, error)
	ToUint32(v interface{}) (uint32, error)
	ToFloat64(v interface{}) (float64, error)
	ToInt64(v interface{}) (int64, error)
	ToUint64(v interface{}) (uint64, error)
}

// DefaultCoercer is the coercion collaborator used by View.Set.
var DefaultCoercer Coercer = StdCoercer{}

// StdCoercer implements the ECMAScript conversion rules over Go values:
// ToInt32/ToUint32 truncate toward zero and wrap modulo 2^32, and the
// 64-bit conversions accept only the integer value family, wrapping
// modulo 2^64. Floats are rejected for the 64-bit kinds even when
// integral, the way ToBigInt rejects every Number.
type StdCoercer struct{}

const two32 = 1 << 32

// doubleToUint32 is the ECMAScript ToUint32 truncation: NaN and the
// infinities map to 0, everything else truncates toward zero and wraps
// modulo 2^32.
func doubleToUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	m := math.Mod(f, two32)
	if m < 0 {
		m += two32
	}
	return uint32(m)
}

// toNumber maps the Go numeric types (and bool) onto float64. The
// returned flag is false for anything outside that family; general
// string-to-number conversion is the host's job, not this package's.
func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uintptr:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// toRawInteger keeps integer-typed values out of the float64 round trip,
// which loses precision past 2^53. The raw bits wrap modulo 2^64.
func toRawInteger(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case int:
		return uint64(n), true
	case int8:
		return uint64(n), true
	case int16:
		return uint64(n), true
	case int32:
		return uint64(n), true
	case int64:
		return uint64(n), true
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case uintptr:
		return uint64(n), true
	}
	return 0, false
}

// ToInt32 converts v with the wrapping 32-bit signed truncation.
func (c StdCoercer) ToInt32(v interface{}) (int32, error) {
	u, err := c.ToUint32(v)
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// ToUint32 converts v with the wrapping 32-bit unsigned truncation.
func (StdCoercer) ToUint32(v interface{}) (uint32, error) {
	if raw, ok := toRawInteger(v); ok {
		return uint32(raw), nil
	}
	f, ok := toNumber(v)
	if !ok {
		return 0, errors.Wrapf(ErrNotNumeric, "%T", v)
	}
	return doubleToUint32(f), nil
}

// ToFloat64 converts v to a double-precision float.
func (StdCoercer) ToFloat64(v interface{}) (float64, error) {
	f, ok := toNumber(v)
	if !ok {
		return 0, errors.Wrapf(ErrNotNumeric, "%T", v)
	}
	return f, nil
}

// ToInt64 converts an integer-typed v, wrapping modulo 2^64.
func (StdCoercer) ToInt64(v interface{}) (int64, error) {
	raw, ok := toRawInteger(v)
	if !ok {
		return 0, errors.Wrapf(ErrNotInteger, "%T", v)
	}
	return int64(raw), nil
}

// ToUint64 converts an integer-typed v, wrapping modulo 2^64.
func (StdCoercer) ToUint64(v interface{}) (uint64, error) {
	raw, ok := toRawInteger(v)
	if !ok {
		return 0, errors.Wrapf(ErrNotInteger, "%T", v)
	}
	return raw, nil
}

// kindOps drives the generic accessors from one routine plus a per-kind
// pair of decode/encode functions, instead of dispatching by hand in
// twenty places.
var kindOps = [...]struct {
	get func(v *View, off int64, o ByteOrder) (interface{}, error)
	set func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error
}{
	Int8: {
		get: func(v *View, off int64, o ByteOrder) (interface{}, error) {
			n, err := v.GetInt8(off, o)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		set: func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error {
			n, err := c.ToInt32(val)
			if err != nil {
				return err
			}
			return v.SetInt8(off, int8(n), o)
		},
	},
	Uint8: {
		get: func(v *View, off int64, o ByteOrder) (interface{}, error) {
			n, err := v.GetUint8(off, o)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		set: func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error {
			n, err := c.ToUint32(val)
			if err != nil {
				return err
			}
			return v.SetUint8(off, uint8(n), o)
		},
	},
	Int16: {
		get: func(v *View, off int64, o ByteOrder) (interface{}, error) {
			n, err := v.GetInt16(off, o)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		set: func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error {
			n, err := c.ToInt32(val)
			if err != nil {
				return err
			}
			return v.SetInt16(off, int16(n), o)
		},
	},
	Uint16: {
		get: func(v *View, off int64, o ByteOrder) (interface{}, error) {
			n, err := v.GetUint16(off, o)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		set: func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error {
			n, err := c.ToUint32(val)
			if err != nil {
				return err
			}
			return v.SetUint16(off, uint16(n), o)
		},
	},
	Int32: {
		get: func(v *View, off int64, o ByteOrder) (interface{}, error) {
			n, err := v.GetInt32(off, o)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		set: func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error {
			n, err := c.ToInt32(val)
			if err != nil {
				return err
			}
			return v.SetInt32(off, n, o)
		},
	},
	Uint32: {
		get: func(v *View, off int64, o ByteOrder) (interface{}, error) {
			n, err := v.GetUint32(off, o)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		set: func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error {
			n, err := c.ToUint32(val)
			if err != nil {
				return err
			}
			return v.SetUint32(off, n, o)
		},
	},
	Float32: {
		get: func(v *View, off int64, o ByteOrder) (interface{}, error) {
			n, err := v.GetFloat32(off, o)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		set: func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error {
			f, err := c.ToFloat64(val)
			if err != nil {
				return err
			}
			// narrowing to single precision may lose precision, never errors
			return v.SetFloat32(off, float32(f), o)
		},
	},
	Float64: {
		get: func(v *View, off int64, o ByteOrder) (interface{}, error) {
			n, err := v.GetFloat64(off, o)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		set: func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error {
			f, err := c.ToFloat64(val)
			if err != nil {
				return err
			}
			return v.SetFloat64(off, f, o)
		},
	},
	Int64: {
		get: func(v *View, off int64, o ByteOrder) (interface{}, error) {
			n, err := v.GetInt64(off, o)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		set: func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error {
			n, err := c.ToInt64(val)
			if err != nil {
				return err
			}
			return v.SetInt64(off, n, o)
		},
	},
	Uint64: {
		get: func(v *View, off int64, o ByteOrder) (interface{}, error) {
			n, err := v.GetUint64(off, o)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		set: func(v *View, off int64, val interface{}, o ByteOrder, c Coercer) error {
			n, err := c.ToUint64(val)
			if err != nil {
				return err
			}
			return v.SetUint64(off, n, o)
		},
	},
}

// Get reads a value of the given kind at byteOffset and materializes it
// as the kind's Go type (int8 through uint64, float32, float64). The
// order defaults to big-endian when omitted.
func (v *View) Get(kind Kind, byteOffset int64, order ...ByteOrder) (interface{}, error) {
	if !kind.valid() {
		return nil, errors.Wrapf(ErrKind, "Get: kind %d", int(kind))
	}
	return kindOps[kind].get(v, byteOffset, pick(order))
}

// Set coerces value into the given kind's domain through the
// DefaultCoercer and writes it at byteOffset. The offset is validated
// before the value is converted and the value before the buffer is
// touched; a failing step writes nothing.
func (v *View) Set(kind Kind, byteOffset int64, value interface{}, order ...ByteOrder) error {
	if !kind.valid() {
		return errors.Wrapf(ErrKind, "Set: kind %d", int(kind))
	}
	if _, ok := toIndex(byteOffset); !ok {
		return errors.Wrapf(ErrOutOfBounds, "Set%s: offset %d", kind, byteOffset)
	}
	return kindOps[kind].set(v, byteOffset, value, pick(order), DefaultCoercer)
}
