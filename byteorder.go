package binview

import "encoding/binary"

// ByteOrder selects the order of bytes within a multi-byte value.
type ByteOrder bool

// The two wire orders. BigEndian is the zero value: an accessor called
// without an explicit order reads and writes big-endian, the convention
// inherited from DataView. It is deliberately not the host order.
const (
	BigEndian    ByteOrder = false
	LittleEndian ByteOrder = true
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// hostOrder is the encoding/binary codec matching the machine this was
// compiled for. NativeEndian comes from byteorder_le.go / byteorder_be.go.
var hostOrder binary.ByteOrder = func() binary.ByteOrder {
	if NativeEndian == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()

// needsFlip reports whether bytes in the requested order have to be
// reversed before the host can interpret them natively.
func (o ByteOrder) needsFlip() bool {
	return o != NativeEndian
}

// flipBytes reverses b in place. Widths are always 1, 2, 4 or 8.
func flipBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
