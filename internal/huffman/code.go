package huffman

import "github.com/q3net/netmsg/internal/bits"

// Transmit writes the prefix code for sym. A symbol without a leaf is sent as
// the NYT code followed by its 8-bit value, most significant bit first.
// Transmit does not modify the model, so concurrent calls are safe as long as
// nothing calls AddRef.
func (m *Model) Transmit(w *bits.Stream, sym byte) {
	leaf := m.loc[sym]
	if leaf == none {
		m.send(w, m.loc[NYT])
		w.WriteBitsMSB(uint32(sym), 8)
		return
	}
	m.send(w, leaf)
}

// send writes the path from the root down to n: 0 for left, 1 for right.
func (m *Model) send(w *bits.Stream, n int32) {
	var stack [32]byte
	path := stack[:0]
	for p := m.nodes[n].parent; p != none; n, p = p, m.nodes[p].parent {
		if m.nodes[p].right == n {
			path = append(path, 1)
		} else {
			path = append(path, 0)
		}
	}
	for i := len(path) - 1; i >= 0; i-- {
		w.WriteBit(uint32(path[i]))
	}
}

// Receive decodes one symbol without modifying the model. It never fails: a
// corrupt or truncated stream decodes to some symbol, since reads past the end
// yield zero bits.
func (m *Model) Receive(r *bits.Stream) byte {
	n := m.tree
	for n != none && m.nodes[n].symbol == internal {
		if r.ReadBit() != 0 {
			n = m.nodes[n].right
		} else {
			n = m.nodes[n].left
		}
	}
	if n == none {
		return 0
	}
	if m.nodes[n].symbol == NYT {
		return byte(r.ReadBitsMSB(8))
	}
	return byte(m.nodes[n].symbol)
}

// Encode transmits sym and then updates the model.
func (m *Model) Encode(w *bits.Stream, sym byte) {
	m.Transmit(w, sym)
	m.AddRef(sym)
}

// Decode receives a symbol and then updates the model.
func (m *Model) Decode(r *bits.Stream) byte {
	sym := m.Receive(r)
	m.AddRef(sym)
	return sym
}
