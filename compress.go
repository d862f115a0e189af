package netmsg

import "github.com/q3net/netmsg/internal/huffman"

// ErrTooLarge is returned when a block exceeds the 65535 bytes a compressed
// block can describe.
var ErrTooLarge = huffman.ErrTooLarge

// Compress codes p as a standalone block: a big-endian 16-bit length, then an
// adaptive Huffman bitstream that starts from an empty model.
func Compress(p []byte) ([]byte, error) {
	return huffman.Compress(p)
}

// Decompress reverses Compress. The result is capped at MaxMessageLen bytes.
func Decompress(p []byte) ([]byte, error) {
	return huffman.Decompress(p, MaxMessageLen)
}

// Compress replaces the bytes from offset to the end of the message with
// their compressed block. If the block does not fit, the message is left
// unchanged and marked overflowed.
func (m *Message) Compress(offset int) error {
	if offset < 0 || offset > m.size {
		return ErrInvalidOffset
	}
	out, err := huffman.Compress(m.s.Buf[offset:m.size])
	if err != nil {
		return err
	}
	if offset+len(out) > len(m.s.Buf) {
		return m.overflow()
	}
	m.size = offset + copy(m.s.Buf[offset:], out)
	m.s.Pos = m.size * 8
	return nil
}

// Decompress replaces the compressed block stored from offset to the end of
// the message with its decoded bytes, truncated to the capacity. Read cursors
// are not moved.
func (m *Message) Decompress(offset int) error {
	if offset < 0 || offset > m.size {
		return ErrInvalidOffset
	}
	out, err := huffman.Decompress(m.s.Buf[offset:m.size], len(m.s.Buf)-offset)
	if err != nil {
		return err
	}
	m.size = offset + copy(m.s.Buf[offset:], out)
	return nil
}
