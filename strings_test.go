package netmsg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_Sanitize(t *testing.T) {
	strict := newTestCodec(t, func(b *ConfigBuilder) { b.WithStringPolicy(StrictStringPolicy()) })
	none := newTestCodec(t, func(b *ConfigBuilder) { b.WithStringPolicy(StringPolicy{}) })

	tests := []struct {
		name  string
		codec *Codec
		write func(*Message, string) error
		read  func(*Message) string
		in    string
		want  string
	}{
		{"percent in string", testCodec(t), (*Message).WriteString, (*Message).ReadString, "abc%def", "abc.def"},
		{"percent kept in big string", testCodec(t), (*Message).WriteBigString, (*Message).ReadBigString, "100%", "100%"},
		{"percent kept in line", testCodec(t), (*Message).WriteString, (*Message).ReadStringLine, "a%b", "a%b"},
		{"strict big string", strict, (*Message).WriteBigString, (*Message).ReadBigString, "100%", "100."},
		{"strict line", strict, (*Message).WriteString, (*Message).ReadStringLine, "a%b", "a.b"},
		{"no filter", none, (*Message).WriteString, (*Message).ReadString, "a%b", "a%b"},
		{"high bit", testCodec(t), (*Message).WriteString, (*Message).ReadString, "caf\xe9!", "caf.!"},
		{"cut at nul", testCodec(t), (*Message).WriteString, (*Message).ReadString, "abc\x00def", "abc"},
		{"empty", testCodec(t), (*Message).WriteString, (*Message).ReadString, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.codec.NewMessage(make([]byte, 256))
			require.NoError(t, tt.write(m, tt.in))
			r := tt.codec.Reader(m.Data())
			assert.Equal(t, tt.want, tt.read(r))
			assert.Equal(t, m.Size(), r.ReadCount())
		})
	}
}

func TestString_FilterOnWrite(t *testing.T) {
	c := newTestCodec(t, func(b *ConfigBuilder) {
		b.WithStringPolicy(StringPolicy{FilterPercentOnWrite: true})
	})
	m := c.NewMessageOOB(make([]byte, 16))
	require.NoError(t, m.WriteString("5%"))
	assert.Equal(t, []byte("5.\x00"), m.Data())
}

func TestString_Bounds(t *testing.T) {
	c := testCodec(t)

	t.Run("too long is sent empty", func(t *testing.T) {
		m := c.NewMessage(c.NewBuffer())
		require.NoError(t, m.WriteString(strings.Repeat("a", MaxStringChars)))
		require.NoError(t, m.WriteString("next"))
		r := reread(c, m)
		assert.Equal(t, "", r.ReadString())
		assert.Equal(t, "next", r.ReadString())
	})

	t.Run("longest allowed", func(t *testing.T) {
		s := strings.Repeat("b", MaxStringChars-1)
		m := c.NewMessage(c.NewBuffer())
		require.NoError(t, m.WriteString(s))
		assert.Equal(t, s, reread(c, m).ReadString())
	})

	t.Run("big string", func(t *testing.T) {
		s := strings.Repeat("c", BigInfoString-1)
		m := c.NewMessageOOB(c.NewBuffer())
		require.NoError(t, m.WriteBigString(s))
		require.NoError(t, m.WriteBigString(s+"c"))
		r := reread(c, m)
		r.BeginReadingOOB()
		assert.Equal(t, s, r.ReadBigString())
		assert.Equal(t, "", r.ReadBigString())
	})

	t.Run("reader stops at bound", func(t *testing.T) {
		// a peer with a bigger bound sent more than ReadString takes at once
		s := strings.Repeat("d", MaxStringChars+10)
		m := c.NewMessageOOB(c.NewBuffer())
		require.NoError(t, m.WriteBigString(s))
		r := reread(c, m)
		r.BeginReadingOOB()
		assert.Equal(t, s[:MaxStringChars-1], r.ReadString())
		assert.Equal(t, s[MaxStringChars-1:], r.ReadString())
	})

	t.Run("custom bounds", func(t *testing.T) {
		small := newTestCodec(t, func(b *ConfigBuilder) { b.WithStringBounds(4, 8) })
		m := small.NewMessageOOB(make([]byte, 32))
		require.NoError(t, m.WriteString("abcd"))
		require.NoError(t, m.WriteString("abc"))
		require.NoError(t, m.WriteBigString("abcdefg"))
		assert.Equal(t, []byte("\x00abc\x00abcdefg\x00"), m.Data())
	})
}

func TestString_ReadStringLine(t *testing.T) {
	c := testCodec(t)
	m := c.NewMessage(make([]byte, 64))
	require.NoError(t, m.WriteString("first\nsecond"))

	r := reread(c, m)
	assert.Equal(t, "first", r.ReadStringLine())
	assert.Equal(t, "second", r.ReadStringLine())
	assert.Equal(t, "", r.ReadStringLine())
}

func TestString_ReadPastEnd(t *testing.T) {
	c := testCodec(t)
	m := c.NewMessageOOB(make([]byte, 16))
	require.NoError(t, m.WriteData([]byte("abc")))

	r := reread(c, m)
	r.BeginReadingOOB()
	assert.Equal(t, "abc", r.ReadString())
}

func TestHashKey(t *testing.T) {
	assert.Equal(t, int32(0), HashKey("", 10))
	assert.Equal(t, int32(11548), HashKey("a", 10))
	assert.Equal(t, int32(78647), HashKey("origin", MaxStringChars))

	assert.Equal(t, HashKey("a.b", 10), HashKey("a%b", 10))
	assert.Equal(t, HashKey("a.b", 10), HashKey("a\xffb", 10))
	assert.Equal(t, HashKey("abc", 3), HashKey("abcdef", 3))
	assert.Equal(t, HashKey("abc", 10), HashKey("abc\x00def", 10))
	assert.NotEqual(t, HashKey("abc", 10), HashKey("acb", 10))
}

func TestHashKey_MatchesSanitizedRoundTrip(t *testing.T) {
	c := newTestCodec(t, func(b *ConfigBuilder) { b.WithStringPolicy(StrictStringPolicy()) })
	for _, s := range []string{"model%d", "\x80\x81name", "plain"} {
		m := c.NewMessage(make([]byte, 64))
		require.NoError(t, m.WriteString(s))
		got := c.Reader(m.Data()).ReadString()
		assert.Equal(t, HashKey(s, MaxStringChars), HashKey(got, MaxStringChars), "%q", s)
	}
}
