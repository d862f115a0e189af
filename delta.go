package netmsg

import (
	"math"

	"github.com/q3net/netmsg/internal/bits"
)

// Delta fields start with one flag bit. A clear flag means the field kept its
// previous value; a set flag is followed by the new value.

// WriteDelta writes newV as a delta against oldV using |width| bits.
func (m *Message) WriteDelta(oldV, newV int32, width int) error {
	if _, err := checkWidth("write", width, m.oob); err != nil {
		return err
	}
	if oldV == newV {
		return m.WriteBits(0, 1)
	}
	if err := m.WriteBits(1, 1); err != nil {
		return err
	}
	return m.WriteBits(newV, width)
}

// ReadDelta reads a field written by WriteDelta.
func (m *Message) ReadDelta(oldV int32, width int) (int32, error) {
	if _, err := checkWidth("read", width, m.oob); err != nil {
		return 0, err
	}
	flag, err := m.ReadBits(1)
	if err != nil {
		return 0, err
	}
	if flag == 0 {
		return oldV, nil
	}
	return m.ReadBits(width)
}

// WriteDeltaFloat writes newV as a delta against oldV. A changed value is sent
// as its full 32-bit pattern.
func (m *Message) WriteDeltaFloat(oldV, newV float32) error {
	if oldV == newV {
		return m.WriteBits(0, 1)
	}
	if err := m.WriteBits(1, 1); err != nil {
		return err
	}
	return m.WriteFloat(newV)
}

// ReadDeltaFloat reads a field written by WriteDeltaFloat.
func (m *Message) ReadDeltaFloat(oldV float32) (float32, error) {
	flag, err := m.ReadBits(1)
	if err != nil {
		return 0, err
	}
	if flag == 0 {
		return oldV, nil
	}
	v, err := m.ReadBits(32)
	return math.Float32frombits(uint32(v)), err
}

// WriteDeltaKey is WriteDelta with the changed value XORed with key.
func (m *Message) WriteDeltaKey(key, oldV, newV int32, width int) error {
	if _, err := checkWidth("write", width, m.oob); err != nil {
		return err
	}
	if oldV == newV {
		return m.WriteBits(0, 1)
	}
	if err := m.WriteBits(1, 1); err != nil {
		return err
	}
	return m.WriteBits(newV^key, width)
}

// ReadDeltaKey reads a field written by WriteDeltaKey with the same key. Only
// the low |width| bits of key take part.
func (m *Message) ReadDeltaKey(key, oldV int32, width int) (int32, error) {
	n, err := checkWidth("read", width, m.oob)
	if err != nil {
		return 0, err
	}
	flag, err := m.ReadBits(1)
	if err != nil {
		return 0, err
	}
	if flag == 0 {
		return oldV, nil
	}
	v, err := m.ReadBits(width)
	if err != nil {
		return 0, err
	}
	raw := uint32(v) ^ uint32(key)&bits.Mask(n)
	if width < 0 {
		// the key is applied to the wire bits, so extend after unmasking
		return bits.SignExtend(raw&bits.Mask(n), n), nil
	}
	return int32(raw), nil
}

// WriteDeltaKeyFloat is WriteDeltaFloat with the changed bit pattern XORed
// with key.
func (m *Message) WriteDeltaKeyFloat(key int32, oldV, newV float32) error {
	if oldV == newV {
		return m.WriteBits(0, 1)
	}
	if err := m.WriteBits(1, 1); err != nil {
		return err
	}
	return m.WriteBits(int32(math.Float32bits(newV))^key, 32)
}

// ReadDeltaKeyFloat reads a field written by WriteDeltaKeyFloat.
func (m *Message) ReadDeltaKeyFloat(key int32, oldV float32) (float32, error) {
	flag, err := m.ReadBits(1)
	if err != nil {
		return 0, err
	}
	if flag == 0 {
		return oldV, nil
	}
	v, err := m.ReadBits(32)
	return math.Float32frombits(uint32(v ^ key)), err
}
