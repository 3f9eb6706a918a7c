package binview

// Kind identifies one of the ten fixed-width numeric kinds a view can
// read or write. The generic accessors (View.Get, View.Set) dispatch on
// it; the typed accessors bake it into their names.
type Kind int

// The closed set of value kinds, in width order within each family.
const (
	Int8 Kind = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
	Int64
	Uint64
)

var kindNames = [...]string{
	Int8:    "Int8",
	Uint8:   "Uint8",
	Int16:   "Int16",
	Uint16:  "Uint16",
	Int32:   "Int32",
	Uint32:  "Uint32",
	Float32: "Float32",
	Float64: "Float64",
	Int64:   "Int64",
	Uint64:  "Uint64",
}

var kindSizes = [...]int{
	Int8:    1,
	Uint8:   1,
	Int16:   2,
	Uint16:  2,
	Int32:   4,
	Uint32:  4,
	Float32: 4,
	Float64: 8,
	Int64:   8,
	Uint64:  8,
}

func (k Kind) valid() bool {
	return k >= Int8 && k <= Uint64
}

// Size returns the byte width of the kind, 0 for an unknown kind.
func (k Kind) Size() int {
	if !k.valid() {
		return 0
	}
	return kindSizes[k]
}

func (k Kind) String() string {
	if !k.valid() {
		return "Unknown"
	}
	return kindNames[k]
}
