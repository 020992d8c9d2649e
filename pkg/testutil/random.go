package testutil

import (
	"encoding/binary"
	"io"
)

// SequentialReader returns a reader whose successive 16-byte blocks encode
// 1, 2, 3, ... in big endian. GUIDs drawn from it are predictable:
// 00000000-0000-0000-0000-000000000001, ...0002 and so on.
func SequentialReader() io.Reader {
	return &sequentialReader{}
}

type sequentialReader struct {
	counter uint64
	block   [16]byte
	offset  int
}

func (r *sequentialReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.offset == 0 {
			r.counter++
			binary.BigEndian.PutUint64(r.block[8:], r.counter)
		}
		copied := copy(p[n:], r.block[r.offset:])
		n += copied
		r.offset = (r.offset + copied) % len(r.block)
	}
	return n, nil
}
