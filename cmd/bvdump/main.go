// bvdump prints typed values out of a binary file.
//
// The file is memory mapped read-only and read through a view, so the
// dump sees exactly the bytes on disk, interpreted in the requested kind
// and byte order.
//
//	bvdump -kind uint32 -n 4 -le -offset 16 data.bin
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/binview/binview"
	"github.com/binview/binview/buffer"
)

var (
	offset = flag.Int64("offset", 0, "byte offset of the first value")
	count  = flag.Int("n", 1, "number of consecutive values to dump")
	kind   = flag.String("kind", "uint8", "value kind: int8 uint8 int16 uint16 int32 uint32 float32 float64 int64 uint64")
	le     = flag.Bool("le", false, "read little-endian instead of big-endian")
)

var kindsByName = map[string]binview.Kind{
	"int8":    binview.Int8,
	"uint8":   binview.Uint8,
	"int16":   binview.Int16,
	"uint16":  binview.Uint16,
	"int32":   binview.Int32,
	"uint32":  binview.Uint32,
	"float32": binview.Float32,
	"float64": binview.Float64,
	"int64":   binview.Int64,
	"uint64":  binview.Uint64,
}

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		panic("Usage: bvdump [options] <file>")
	}
	file := flag.Arg(0)

	k, ok := kindsByName[strings.ToLower(*kind)]
	if !ok {
		panic(fmt.Sprintf("unknown kind %q", *kind))
	}

	order := binview.BigEndian
	if *le {
		order = binview.LittleEndian
	}

	b, err := buffer.OpenMemoryMappedBuffer(file)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := b.Unmap(false); err != nil {
			panic(err)
		}
	}()

	v, err := binview.New(b)
	if err != nil {
		panic(err)
	}

	fmt.Printf(`
File   = %v
Length = %v bytes
Kind   = %v (%v bytes, %v)

`, file, v.ByteLength(), k, k.Size(), order)

	off := *offset
	for i := 0; i < *count; i++ {
		val, err := v.Get(k, off, order)
		if err != nil {
			panic(err)
		}

		fmt.Printf("\t[%v] = %v\n", off, val)
		off += int64(k.Size())
	}
}
