package netmsg

import "math"

// pastEnd reports whether the last read ran beyond the recorded size.
func (m *Message) pastEnd() bool { return m.readCount > m.size }

// ReadChar reads a signed 8-bit field, or -1 past the end.
func (m *Message) ReadChar() int {
	v, _ := m.ReadBits(-8)
	if m.pastEnd() {
		return -1
	}
	return int(v)
}

// ReadUint8 reads an unsigned 8-bit field, or -1 past the end.
func (m *Message) ReadUint8() int {
	v, _ := m.ReadBits(8)
	if m.pastEnd() {
		return -1
	}
	return int(v)
}

// ReadByte reads an unsigned 8-bit field. It satisfies io.ByteReader and
// returns ErrReadPastEnd past the end.
func (m *Message) ReadByte() (byte, error) {
	c := m.ReadUint8()
	if c < 0 {
		return 0, ErrReadPastEnd
	}
	return byte(c), nil
}

// ReadShort reads a signed 16-bit field, or -1 past the end.
func (m *Message) ReadShort() int {
	v, _ := m.ReadBits(-16)
	if m.pastEnd() {
		return -1
	}
	return int(v)
}

// ReadLong reads a 32-bit field, or -1 past the end.
func (m *Message) ReadLong() int32 {
	v, _ := m.ReadBits(32)
	if m.pastEnd() {
		return -1
	}
	return v
}

// ReadFloat reads a float written by WriteFloat, or -1 past the end.
func (m *Message) ReadFloat() float32 {
	v, _ := m.ReadBits(32)
	if m.pastEnd() {
		return -1
	}
	return math.Float32frombits(uint32(v))
}

// ReadData fills p byte by byte. Bytes past the end read as 0xff and the
// call returns ErrReadPastEnd.
func (m *Message) ReadData(p []byte) error {
	for i := range p {
		p[i] = byte(m.ReadUint8())
	}
	if m.pastEnd() {
		return ErrReadPastEnd
	}
	return nil
}

// ReadAngle reads an angle written by WriteAngle.
func (m *Message) ReadAngle() float32 {
	return float32(m.ReadUint8()) * (360.0 / 256)
}

// ReadAngle16 reads an angle written by WriteAngle16.
func (m *Message) ReadAngle16() float32 {
	return float32(m.ReadShort()) * (360.0 / 65536)
}

// LookaheadByte returns the next byte without consuming it, or -1 past the
// end.
func (m *Message) LookaheadByte() int {
	readCount, pos := m.readCount, m.s.Pos
	c := m.ReadUint8()
	m.readCount, m.s.Pos = readCount, pos
	return c
}
