package huffman

import (
	"encoding/binary"
	"errors"

	"github.com/q3net/netmsg/internal/bits"
)

// MaxInput is the largest block Compress accepts; the length prefix is 16 bits.
const MaxInput = 0xffff

var (
	// ErrTooLarge is returned when a block does not fit the length prefix.
	ErrTooLarge = errors.New("huffman: block larger than 65535 bytes")

	// ErrShortInput is returned when a compressed block lacks its length prefix.
	ErrShortInput = errors.New("huffman: compressed block shorter than its length prefix")
)

// Compress codes src with a fresh adaptive model. The output is a big-endian
// 16-bit length followed by the bitstream. An empty src compresses to nothing.
func Compress(src []byte) ([]byte, error) {
	if len(src) > MaxInput {
		return nil, ErrTooLarge
	}
	if len(src) == 0 {
		return nil, nil
	}

	// an adaptive tree over at most 64k symbols is shallower than 32 levels,
	// so 40 bits per symbol is a safe upper bound
	out := make([]byte, 3+len(src)*5)
	binary.BigEndian.PutUint16(out, uint16(len(src)))

	s := bits.NewStream(out, 16)
	m := New()
	for _, c := range src {
		m.Encode(s, c)
	}
	return out[:(s.Pos+8)>>3], nil
}

// Decompress reverses Compress. At most limit bytes are produced when limit
// is not negative. A truncated stream stops decoding early and leaves the
// remaining output bytes zero.
func Decompress(src []byte, limit int) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	if len(src) < 2 {
		return nil, ErrShortInput
	}
	n := int(binary.BigEndian.Uint16(src))
	if limit >= 0 && n > limit {
		n = limit
	}

	out := make([]byte, n)
	s := bits.NewStream(src, 16)
	m := New()
	for j := range out {
		if s.Pos>>3 > len(src) {
			break
		}
		out[j] = m.Decode(s)
	}
	return out, nil
}
