package binview

import "github.com/pkg/errors"

// The failure vocabulary splits into two classes, mirroring the RangeError
// and TypeError split of the original DataView semantics. Errors returned
// by this package wrap one of these sentinels with the failing operation's
// name; classify with IsRangeError/IsTypeError or unwrap with
// errors.Cause.
var (
	// ErrInvalidOffset rejects a view start offset that is negative,
	// too large for the host, or past the end of the buffer.
	ErrInvalidOffset = errors.New("start offset is outside the bounds of the buffer")

	// ErrInvalidLength rejects a view length that is negative, too large
	// for the host, or extends past the end of the buffer.
	ErrInvalidLength = errors.New("invalid view length")

	// ErrOutOfBounds rejects an accessor offset outside the view, either
	// directly or once the value width is added.
	ErrOutOfBounds = errors.New("offset is outside the bounds of the view")

	// ErrNotABuffer rejects view construction without a backing buffer.
	ErrNotABuffer = errors.New("backing buffer must not be nil")

	// ErrDetached rejects any access through a view whose backing buffer
	// has been detached.
	ErrDetached = errors.New("cannot access a detached buffer")

	// ErrNotInteger rejects a value that cannot be converted to a 64-bit
	// integer kind.
	ErrNotInteger = errors.New("value cannot be converted to a 64-bit integer")

	// ErrNotNumeric rejects a non-numeric value on the generic Set path.
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrKind rejects an out-of-range Kind on the generic accessors.
	ErrKind = errors.New("unknown value kind")
)

// IsRangeError reports whether err is an invalid or out-of-domain offset
// or length failure.
func IsRangeError(err error) bool {
	switch errors.Cause(err) {
	case ErrInvalidOffset, ErrInvalidLength, ErrOutOfBounds:
		return true
	}
	return false
}

// IsTypeError reports whether err is a wrong-collaborator failure: a
// missing buffer, a detached buffer, an unknown kind, or a value outside
// the 64-bit integer value family.
func IsTypeError(err error) bool {
	switch errors.Cause(err) {
	case ErrNotABuffer, ErrDetached, ErrNotInteger, ErrNotNumeric, ErrKind:
		return true
	}
	return false
}
