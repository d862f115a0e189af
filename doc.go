// Package netmsg packs entity and player state into compact datagrams and
// reads it back.
//
// A [Message] wraps a caller-owned byte buffer. In compressed mode, the
// default, fields are written as a bitstream whose whole bytes are Huffman
// coded against a static frequency table; in out-of-band mode fields are plain
// little-endian bytes. The two modes can be mixed in one message.
//
// # Basic Usage
//
// Write a packet:
//
//	m := netmsg.NewMessage(make([]byte, netmsg.MaxMessageLen))
//	m.WriteShort(entity)
//	m.WriteDelta(prev.Health, cur.Health, 8)
//	m.WriteAngle16(cur.Yaw)
//	if m.Overflowed() {
//	    // packet was cut short
//	}
//	send(m.Data())
//
// Read it back:
//
//	r := netmsg.Default().Reader(packet)
//	entity := r.ReadShort()
//	health, _ := r.ReadDelta(prev.Health, 8)
//	yaw := r.ReadAngle16()
//
// # Codecs
//
// A [Codec] holds the seeded encoder/decoder model pair and the
// configuration shared by its messages. [Default] is built from
// [DefaultConfig] on first use. Message coding never modifies the models, so
// one Codec can serve messages on many goroutines; each Message belongs to
// one goroutine.
//
// # Overflow
//
// Writes into a full message are dropped and set a sticky flag, checked with
// [Message.Overflowed]. With Config.AllowOverflow false the failing write
// also returns [ErrOverflow].
//
// # Whole-buffer compression
//
// [Compress] and [Decompress] code a standalone block with an adaptive model
// that starts empty, prefixed by its 16-bit length.
package netmsg
