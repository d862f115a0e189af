package netmsg

import "math"

// WriteChar writes c as a signed 8-bit field.
func (m *Message) WriteChar(c int) error {
	return m.WriteBits(int32(c), 8)
}

// WriteByte writes c as an unsigned 8-bit field. It satisfies io.ByteWriter.
func (m *Message) WriteByte(c byte) error {
	return m.WriteBits(int32(c), 8)
}

// WriteShort writes the low 16 bits of c.
func (m *Message) WriteShort(c int) error {
	return m.WriteBits(int32(c), 16)
}

// WriteLong writes c as a 32-bit field.
func (m *Message) WriteLong(c int32) error {
	return m.WriteBits(c, 32)
}

// WriteFloat writes the IEEE 754 bit pattern of f.
func (m *Message) WriteFloat(f float32) error {
	return m.WriteBits(int32(math.Float32bits(f)), 32)
}

// WriteData writes p byte by byte. It stops at the first failed write.
func (m *Message) WriteData(p []byte) error {
	for _, c := range p {
		if err := m.WriteByte(c); err != nil {
			return err
		}
	}
	return nil
}

// WriteAngle writes f degrees quantized to 256 steps per turn.
func (m *Message) WriteAngle(f float32) error {
	return m.WriteByte(byte(int32(f*256/360) & 255))
}

// WriteAngle16 writes f degrees quantized to 65536 steps per turn.
func (m *Message) WriteAngle16(f float32) error {
	return m.WriteShort(int(int32(f*65536/360) & 65535))
}
