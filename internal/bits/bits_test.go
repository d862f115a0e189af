package bits

import (
	"testing"
)

func TestStreamWriteRead(t *testing.T) {
	tests := []struct {
		name   string
		values []uint32
		bits   []int
	}{
		{
			name:   "single bit",
			values: []uint32{1},
			bits:   []int{1},
		},
		{
			name:   "one byte",
			values: []uint32{0b11010110},
			bits:   []int{8},
		},
		{
			name:   "32 bits",
			values: []uint32{0xDEADBEEF},
			bits:   []int{32},
		},
		{
			name:   "unaligned values",
			values: []uint32{0b101, 0b11, 0b1111, 0x3ff},
			bits:   []int{3, 2, 4, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 16)
			w := NewStream(buf, 0)
			for i, v := range tt.values {
				w.WriteBits(v, tt.bits[i])
			}

			r := NewStream(buf, 0)
			for i, expected := range tt.values {
				if got := r.ReadBits(tt.bits[i]); got != expected {
					t.Errorf("value %d: got %d, want %d", i, got, expected)
				}
			}
			if r.Pos != w.Pos {
				t.Errorf("read cursor %d != write cursor %d", r.Pos, w.Pos)
			}
		})
	}
}

func TestStreamBitOrder(t *testing.T) {
	buf := []byte{0xff}
	s := NewStream(buf, 0)
	// the first bit written into a byte clears stale contents
	s.WriteBit(1)
	s.WriteBit(0)
	s.WriteBit(1)
	s.WriteBit(1)

	if buf[0] != 0b00001101 {
		t.Errorf("expected 0b00001101, got 0b%08b", buf[0])
	}
	if s.Bytes() != 1 {
		t.Errorf("expected 1 byte touched, got %d", s.Bytes())
	}
}

func TestStreamMSB(t *testing.T) {
	buf := make([]byte, 2)
	s := NewStream(buf, 3)
	s.WriteBitsMSB(0xA5, 8)

	r := NewStream(buf, 3)
	if got := r.ReadBitsMSB(8); got != 0xA5 {
		t.Errorf("got %#x, want 0xa5", got)
	}
}

func TestStreamPastEnd(t *testing.T) {
	buf := []byte{0xff}
	s := NewStream(buf, 8)
	s.WriteBits(0xff, 8)
	if !s.Overrun() {
		t.Error("expected overrun after writing past the end")
	}

	r := NewStream(buf, 8)
	if got := r.ReadBits(8); got != 0 {
		t.Errorf("reading past the end: got %d, want 0", got)
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		width int
		want  uint32
	}{
		{0, 0},
		{1, 0x1},
		{7, 0x7f},
		{16, 0xffff},
		{31, 0x7fffffff},
		{32, 0xffffffff},
	}
	for _, tt := range tests {
		if got := Mask(tt.width); got != tt.want {
			t.Errorf("Mask(%d) = %#x, want %#x", tt.width, got, tt.want)
		}
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		raw   uint32
		width int
		want  int32
	}{
		{0x1, 1, -1},
		{0x0, 1, 0},
		{0x7, 4, 7},
		{0x8, 4, -8},
		{0xf, 4, -1},
		{0x3ff, 10, -1},
		{0x1ff, 10, 511},
		{0xffff, 16, -1},
		{0x8000, 16, -32768},
		{0xffffffff, 32, -1},
		{0x7fffffff, 32, 0x7fffffff},
	}
	for _, tt := range tests {
		if got := SignExtend(tt.raw, tt.width); got != tt.want {
			t.Errorf("SignExtend(%#x, %d) = %d, want %d", tt.raw, tt.width, got, tt.want)
		}
	}
}
