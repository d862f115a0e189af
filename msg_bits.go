package netmsg

import (
	"encoding/binary"

	"github.com/q3net/netmsg/internal/bits"
)

// WriteBits writes the low |width| bits of value. Valid widths are 1 to 32 in
// compressed mode and 8, 16 or 32 out of band; the sign of width only matters
// to the reader.
//
// With fewer than four bytes of headroom the message is marked overflowed and
// nothing is written. The returned error is ErrOverflow when the message does
// not allow overflow, nil otherwise.
func (m *Message) WriteBits(value int32, width int) error {
	n, err := checkWidth("write", width, m.oob)
	if err != nil {
		return err
	}
	if len(m.s.Buf)-m.size < 4 {
		return m.overflow()
	}

	v := uint32(value) & bits.Mask(n)
	if m.oob {
		dst := m.s.Buf[m.size:]
		switch n {
		case 8:
			dst[0] = byte(v)
		case 16:
			binary.LittleEndian.PutUint16(dst, uint16(v))
		case 32:
			binary.LittleEndian.PutUint32(dst, v)
		}
		m.size += n / 8
		m.s.Pos = m.size * 8
		return nil
	}

	if r := n & 7; r != 0 {
		m.s.WriteBits(v, r)
		v >>= r
		n -= r
	}
	enc := m.c().models.Encoder
	for ; n > 0; n -= 8 {
		enc.Transmit(&m.s, byte(v))
		v >>= 8
	}
	if m.s.Overrun() {
		m.size = len(m.s.Buf)
		return m.overflow()
	}
	m.size = m.s.Bytes()
	return nil
}

// ReadBits reads a field written by WriteBits with the same |width|. A
// negative width sign-extends the result from bit |width|-1. Out of band,
// 16-bit fields are always sign-extended and 8-bit fields never are.
//
// Reading past the recorded size is not an error here; the typed readers turn
// it into their -1 result.
func (m *Message) ReadBits(width int) (int32, error) {
	n, err := checkWidth("read", width, m.oob)
	if err != nil {
		return 0, err
	}

	var v uint32
	if m.oob {
		var tmp [4]byte
		if m.readCount < len(m.s.Buf) {
			copy(tmp[:n/8], m.s.Buf[m.readCount:])
		}
		switch n {
		case 8:
			v = uint32(tmp[0])
		case 16:
			v = uint32(int32(int16(binary.LittleEndian.Uint16(tmp[:]))))
		case 32:
			v = binary.LittleEndian.Uint32(tmp[:])
		}
		m.readCount += n / 8
		m.s.Pos = m.readCount * 8
	} else {
		shift := n & 7
		if shift != 0 {
			v = m.s.ReadBits(shift)
		}
		dec := m.c().models.Decoder
		for ; shift < n; shift += 8 {
			v |= uint32(dec.Receive(&m.s)) << shift
		}
		m.readCount = m.s.Bytes()
	}

	if width < 0 {
		return bits.SignExtend(v, n), nil
	}
	return int32(v), nil
}
