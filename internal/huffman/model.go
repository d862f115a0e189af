// Package huffman implements the adaptive Huffman coder used by compressed
// messages.
//
// A Model is a binary code tree plus a list of every node ordered by weight.
// Ranks are not stored; a node's rank is its position in the list. Nodes that
// share a weight form a block, and each block has a leader slot pointing at its
// highest-ranked node. Incrementing a symbol swaps it with its block leader
// before bumping the weight, which keeps the sibling property without ever
// rebuilding the tree.
//
// Nodes live in a fixed arena and refer to each other by index.
package huffman

const (
	// Symbols is the number of byte symbols.
	Symbols = 256

	// NYT is the pseudo-symbol for a byte not yet transmitted.
	NYT = Symbols

	internal = NYT + 1
	maxNodes = 2 * (Symbols + 1)
	none     = -1
)

type node struct {
	left, right, parent int32
	next, prev          int32 // weight-ordered list, next is higher rank
	head                int32 // block leader slot
	weight              int32
	symbol              int32
}

// Model is one adaptive Huffman tree. The zero value is not usable; use New.
// A Model is not safe for concurrent use.
type Model struct {
	nodes [maxNodes]node
	used  int32

	// leader slots, shared by every node of a block
	heads     [maxNodes]int32
	headsUsed int32
	freeHeads []int32

	tree  int32
	lhead int32
	loc   [Symbols + 1]int32
}

// New returns a model holding only the NYT node.
func New() *Model {
	m := &Model{freeHeads: make([]int32, 0, maxNodes)}
	for i := range m.loc {
		m.loc[i] = none
	}
	root := m.alloc()
	m.nodes[root] = node{
		left: none, right: none, parent: none,
		next: none, prev: none, head: none,
		symbol: NYT,
	}
	m.tree, m.lhead = root, root
	m.loc[NYT] = root
	return m
}

// Clone returns an independent copy of m.
func (m *Model) Clone() *Model {
	c := *m
	c.freeHeads = append(make([]int32, 0, maxNodes), m.freeHeads...)
	return &c
}

func (m *Model) alloc() int32 {
	n := m.used
	m.used++
	return n
}

func (m *Model) getHead() int32 {
	if k := len(m.freeHeads); k > 0 {
		h := m.freeHeads[k-1]
		m.freeHeads = m.freeHeads[:k-1]
		return h
	}
	h := m.headsUsed
	m.headsUsed++
	return h
}

func (m *Model) freeHead(h int32) {
	m.freeHeads = append(m.freeHeads, h)
}

// Nodes returns the number of arena nodes in use.
func (m *Model) Nodes() int { return int(m.used) }

// Known reports whether sym has a leaf in the tree.
func (m *Model) Known(sym byte) bool { return m.loc[sym] != none }

// Weight returns the occurrence count recorded for sym.
func (m *Model) Weight(sym byte) int {
	if m.loc[sym] == none {
		return 0
	}
	return int(m.nodes[m.loc[sym]].weight)
}

// swap exchanges the tree positions of a and b.
func (m *Model) swap(a, b int32) {
	pa, pb := m.nodes[a].parent, m.nodes[b].parent
	if pa != none {
		if m.nodes[pa].left == a {
			m.nodes[pa].left = b
		} else {
			m.nodes[pa].right = b
		}
	} else {
		m.tree = b
	}
	if pb != none {
		if m.nodes[pb].left == b {
			m.nodes[pb].left = a
		} else {
			m.nodes[pb].right = a
		}
	} else {
		m.tree = a
	}
	m.nodes[a].parent = pb
	m.nodes[b].parent = pa
}

// swapList exchanges the list positions (ranks) of a and b.
func (m *Model) swapList(a, b int32) {
	na, nb := &m.nodes[a], &m.nodes[b]
	na.next, nb.next = nb.next, na.next
	na.prev, nb.prev = nb.prev, na.prev
	if na.next == a {
		na.next = b
	}
	if nb.next == b {
		nb.next = a
	}
	if na.next != none {
		m.nodes[na.next].prev = a
	}
	if nb.next != none {
		m.nodes[nb.next].prev = b
	}
	if na.prev != none {
		m.nodes[na.prev].next = a
	}
	if nb.prev != none {
		m.nodes[nb.prev].next = b
	}
}

func (m *Model) increment(n int32) {
	if n == none {
		return
	}
	nd := &m.nodes[n]
	if nd.next != none && m.nodes[nd.next].weight == nd.weight {
		leader := m.heads[nd.head]
		if leader != nd.parent {
			m.swap(leader, n)
		}
		m.swapList(leader, n)
	}
	if nd.prev != none && m.nodes[nd.prev].weight == nd.weight {
		m.heads[nd.head] = nd.prev
	} else {
		m.heads[nd.head] = none
		m.freeHead(nd.head)
	}
	nd.weight++
	if nd.next != none && m.nodes[nd.next].weight == nd.weight {
		nd.head = m.nodes[nd.next].head
	} else {
		nd.head = m.getHead()
		m.heads[nd.head] = n
	}
	if nd.parent != none {
		m.increment(nd.parent)
		if nd.prev == nd.parent {
			m.swapList(n, nd.parent)
			if m.heads[nd.head] == n {
				m.heads[nd.head] = nd.parent
			}
		}
	}
}

// AddRef records one occurrence of sym and updates the tree. A symbol seen for
// the first time splits the NYT leaf into an internal node holding the old
// NYT leaf and the new symbol leaf.
func (m *Model) AddRef(sym byte) {
	if m.loc[sym] != none {
		m.increment(m.loc[sym])
		return
	}

	leaf := m.alloc()
	inner := m.alloc()
	lhead := &m.nodes[m.lhead]

	in := &m.nodes[inner]
	*in = node{symbol: internal, weight: 1, next: lhead.next, prev: m.lhead}
	if lhead.next != none {
		m.nodes[lhead.next].prev = inner
		if m.nodes[lhead.next].weight == 1 {
			in.head = m.nodes[lhead.next].head
		} else {
			in.head = m.getHead()
			m.heads[in.head] = inner
		}
	} else {
		in.head = m.getHead()
		m.heads[in.head] = inner
	}
	lhead.next = inner

	lf := &m.nodes[leaf]
	*lf = node{
		symbol: int32(sym), weight: 1,
		next: inner, prev: m.lhead,
		left: none, right: none,
		head: in.head,
	}
	m.nodes[inner].prev = leaf
	lhead.next = leaf

	if lhead.parent != none {
		p := &m.nodes[lhead.parent]
		if p.left == m.lhead {
			p.left = inner
		} else {
			p.right = inner
		}
	} else {
		m.tree = inner
	}

	in.right = leaf
	in.left = m.lhead
	in.parent = lhead.parent
	lhead.parent = inner
	lf.parent = inner

	m.loc[sym] = leaf

	m.increment(in.parent)
}
