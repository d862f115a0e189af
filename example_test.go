package netmsg_test

import (
	"fmt"

	"github.com/q3net/netmsg"
)

func Example() {
	m := netmsg.NewMessage(make([]byte, 64))
	_ = m.WriteShort(1234)
	_ = m.WriteAngle16(90)
	_ = m.WriteString("hello")
	if m.Overflowed() {
		panic("packet too small")
	}

	r := netmsg.Default().Reader(m.Data())
	fmt.Println(r.ReadShort(), r.ReadAngle16(), r.ReadString())
	// Output: 1234 90 hello
}

func ExampleMessage_WriteDelta() {
	m := netmsg.NewMessage(make([]byte, 16))
	_ = m.WriteDelta(100, 100, 16)
	fmt.Println("unchanged field costs", m.Bit(), "bit")
	_ = m.WriteDelta(100, 250, 16)

	r := netmsg.Default().Reader(m.Data())
	a, _ := r.ReadDelta(100, 16)
	b, _ := r.ReadDelta(100, 16)
	fmt.Println(a, b)
	// Output:
	// unchanged field costs 1 bit
	// 100 250
}

func ExampleCompress() {
	packed, err := netmsg.Compress([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	if err != nil {
		panic(err)
	}
	out, err := netmsg.Decompress(packed)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(packed) < 32, string(out))
	// Output: true aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa
}

func ExampleNewConfigBuilder() {
	cfg, err := netmsg.NewConfigBuilder().
		WithMaxMessageLen(1400).
		WithStringPolicy(netmsg.StrictStringPolicy()).
		Build()
	if err != nil {
		panic(err)
	}
	codec, err := netmsg.New(cfg)
	if err != nil {
		panic(err)
	}

	m := codec.NewMessage(codec.NewBuffer())
	_ = m.WriteString("100%")
	fmt.Println(codec.Reader(m.Data()).ReadString(), m.Cap())
	// Output: 100. 1400
}
