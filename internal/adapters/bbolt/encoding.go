// Binary encoding for met-word values.
//
// The key is the word exactly as typed. The value is fixed width
// (little-endian):
//
//	count: uint32
//	seq:   uint64
package bbolt

import (
	"encoding/binary"
	"fmt"

	"github.com/jladdjr/typey-type/internal/ports"
)

// metWordSize is the byte size of an encoded met-word value.
const metWordSize = 12

func encodeMetWord(w ports.MetWord) []byte {
	buf := make([]byte, metWordSize)
	binary.LittleEndian.PutUint32(buf[0:4], w.Count)
	binary.LittleEndian.PutUint64(buf[4:12], w.Seq)
	return buf
}

// decodeMetWord copies out of k, which is only valid inside the transaction.
func decodeMetWord(k, v []byte) (ports.MetWord, error) {
	if len(v) != metWordSize {
		return ports.MetWord{}, fmt.Errorf("met word %q: value is %d bytes, want %d", k, len(v), metWordSize)
	}
	return ports.MetWord{
		Word:  string(k),
		Count: binary.LittleEndian.Uint32(v[0:4]),
		Seq:   binary.LittleEndian.Uint64(v[4:12]),
	}, nil
}
