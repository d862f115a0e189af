package netmsg

import "github.com/q3net/netmsg/internal/bits"

// Message is a fixed-capacity packet buffer with one cursor set, used either
// for writing or for reading.
//
// In compressed mode (the default) values are packed into a bitstream: the
// sub-byte remainder of each field is stored as raw bits and every whole byte
// is Huffman coded with the codec's seeded models. In out-of-band mode values
// are stored byte aligned, little-endian, uncompressed.
//
// Writes never fail loudly on a full buffer: the overflow flag is set and the
// write is dropped. Check Overflowed after a batch of writes. Typed reads past
// the end of the message return -1.
//
// A Message is not safe for concurrent use.
type Message struct {
	codec *Codec
	s     bits.Stream // backing buffer and bit cursor

	size      int
	readCount int

	oob           bool
	overflowed    bool
	allowOverflow bool
}

func (m *Message) c() *Codec {
	if m.codec == nil {
		m.codec = Default()
	}
	return m.codec
}

// Init binds buf to the message and selects compressed mode. The capacity
// is len(buf). All cursors and flags are reset.
func (m *Message) Init(buf []byte) {
	c := m.c()
	*m = Message{
		codec:         c,
		s:             bits.Stream{Buf: buf},
		allowOverflow: c.cfg.AllowOverflow,
	}
}

// InitOOB binds buf to the message and selects out-of-band mode.
func (m *Message) InitOOB(buf []byte) {
	m.Init(buf)
	m.oob = true
}

// Clear empties the message, keeping its buffer and mode.
func (m *Message) Clear() {
	m.size = 0
	m.overflowed = false
	m.s.Pos = 0
}

// Bitstream switches the message to compressed mode without moving any
// cursor.
func (m *Message) Bitstream() { m.oob = false }

// SetOOB switches between out-of-band and compressed mode without moving any
// cursor, so a single message can mix both.
func (m *Message) SetOOB(oob bool) { m.oob = oob }

// BeginReading rewinds the read cursors and selects compressed mode.
func (m *Message) BeginReading() {
	m.readCount = 0
	m.s.Pos = 0
	m.oob = false
}

// BeginReadingOOB rewinds the read cursors and selects out-of-band mode.
func (m *Message) BeginReadingOOB() {
	m.readCount = 0
	m.s.Pos = 0
	m.oob = true
}

// Copy makes m a duplicate of src backed by buf. It fails with
// ErrCopyTooSmall when buf cannot hold src's contents.
func (m *Message) Copy(buf []byte, src *Message) error {
	if len(buf) < src.size {
		return ErrCopyTooSmall
	}
	*m = *src
	m.s.Buf = buf
	copy(buf, src.s.Buf[:src.size])
	return nil
}

// SetSize records how many bytes of the buffer hold a received packet.
func (m *Message) SetSize(n int) {
	if n > len(m.s.Buf) {
		n = len(m.s.Buf)
	}
	if n < 0 {
		n = 0
	}
	m.size = n
}

// Load copies a received packet into the buffer, records its size and
// rewinds the read cursors, keeping the current mode. It returns the number
// of bytes copied, which is short when p exceeds the capacity.
func (m *Message) Load(p []byte) int {
	n := copy(m.s.Buf, p)
	m.size = n
	m.readCount = 0
	m.s.Pos = 0
	return n
}

// Data returns the written part of the buffer.
func (m *Message) Data() []byte { return m.s.Buf[:m.size] }

// Size returns the message size in bytes.
func (m *Message) Size() int { return m.size }

// Cap returns the message capacity in bytes.
func (m *Message) Cap() int { return len(m.s.Buf) }

// ReadCount returns the read cursor in bytes.
func (m *Message) ReadCount() int { return m.readCount }

// Bit returns the bit cursor.
func (m *Message) Bit() int { return m.s.Pos }

// OOB reports whether the message is in out-of-band mode.
func (m *Message) OOB() bool { return m.oob }

// Overflowed reports whether a write was dropped for lack of space. The flag
// stays set until Clear or Init.
func (m *Message) Overflowed() bool { return m.overflowed }

// SetAllowOverflow overrides the codec's overflow policy for this message.
func (m *Message) SetAllowOverflow(allow bool) { m.allowOverflow = allow }

// overflow sets the sticky flag and applies the overflow policy.
func (m *Message) overflow() error {
	if !m.overflowed {
		m.overflowed = true
		log := m.c().logger
		if m.allowOverflow {
			log.Debug("message overflowed", "size", m.size, "cap", len(m.s.Buf))
		} else {
			log.Warn("message overflowed", "size", m.size, "cap", len(m.s.Buf))
		}
	}
	if m.allowOverflow {
		return nil
	}
	return ErrOverflow
}
