// Package bits provides bit-level I/O over fixed byte buffers.
//
// Bits are packed least-significant first within each byte. The stream never
// grows its buffer: writes past the end are dropped and reads past the end
// return zero bits, so callers decide how to treat the overrun.
package bits

// Stream reads and writes individual bits at an absolute bit offset.
type Stream struct {
	Buf []byte
	Pos int // bit offset from the start of Buf
}

// NewStream creates a stream over buf starting at bit pos.
func NewStream(buf []byte, pos int) *Stream {
	return &Stream{Buf: buf, Pos: pos}
}

// WriteBit writes a single bit. The first bit written into a byte clears it,
// so stale buffer contents never leak into the stream.
func (s *Stream) WriteBit(bit uint32) {
	i := s.Pos >> 3
	if i < len(s.Buf) {
		if s.Pos&7 == 0 {
			s.Buf[i] = 0
		}
		s.Buf[i] |= byte(bit&1) << (s.Pos & 7)
	}
	s.Pos++
}

// ReadBit reads a single bit.
func (s *Stream) ReadBit() uint32 {
	pos := s.Pos
	s.Pos++
	if pos>>3 >= len(s.Buf) {
		return 0
	}
	return uint32(s.Buf[pos>>3]>>(pos&7)) & 1
}

// WriteBits writes the low n bits of value, least significant first.
func (s *Stream) WriteBits(value uint32, n int) {
	for i := 0; i < n; i++ {
		s.WriteBit(value)
		value >>= 1
	}
}

// ReadBits reads n bits written by WriteBits.
func (s *Stream) ReadBits(n int) uint32 {
	var out uint32
	for i := 0; i < n; i++ {
		out |= s.ReadBit() << i
	}
	return out
}

// WriteBitsMSB writes the low n bits of value, most significant first.
func (s *Stream) WriteBitsMSB(value uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		s.WriteBit(value >> i)
	}
}

// ReadBitsMSB reads n bits written by WriteBitsMSB.
func (s *Stream) ReadBitsMSB(n int) uint32 {
	var out uint32
	for i := 0; i < n; i++ {
		out = out<<1 | s.ReadBit()
	}
	return out
}

// Overrun reports whether the cursor has moved past the end of the buffer.
func (s *Stream) Overrun() bool {
	return s.Pos > len(s.Buf)*8
}

// Bytes returns the number of bytes touched by the cursor.
func (s *Stream) Bytes() int {
	return (s.Pos + 7) >> 3
}

// Mask returns a mask covering the low width bits. Widths of 32 or more
// return all ones.
func Mask(width int) uint32 {
	if width >= 32 {
		return 0xffffffff
	}
	if width <= 0 {
		return 0
	}
	return 1<<width - 1
}

// SignExtend interprets the low width bits of raw as a two's complement
// value.
func SignExtend(raw uint32, width int) int32 {
	if width <= 0 || width >= 32 {
		return int32(raw)
	}
	shift := 32 - width
	return int32(raw<<shift) >> shift
}
