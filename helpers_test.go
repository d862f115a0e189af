package netmsg

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	quietOnce  sync.Once
	quietCodec *Codec
)

// testCodec returns a shared codec with default settings and logging off.
// Seeding walks the whole frequency table, so tests share one.
func testCodec(t testing.TB) *Codec {
	t.Helper()
	quietOnce.Do(func() { quietCodec = newTestCodec(t) })
	return quietCodec
}

// newTestCodec builds a quiet codec from a builder, applying opts first.
func newTestCodec(t testing.TB, opts ...func(*ConfigBuilder)) *Codec {
	t.Helper()
	b := NewConfigBuilder().WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, o := range opts {
		o(b)
	}
	cfg, err := b.Build()
	require.NoError(t, err)
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

// reread returns a reader over the written part of m.
func reread(c *Codec, m *Message) *Message {
	return c.Reader(m.Data())
}
