package netmsg

import (
	"log/slog"
	"sync"

	"github.com/q3net/netmsg/internal/huffman"
)

// Models is the encoder/decoder model pair used by compressed messages.
type Models = huffman.Pair

// FrequencyTable holds one seed count per byte value.
type FrequencyTable = huffman.Table

// DefaultFrequencyTable returns a copy of the built-in seed table.
func DefaultFrequencyTable() FrequencyTable {
	return huffman.DefaultTable
}

// Codec binds a seeded model pair to a configuration. Messages created from
// a Codec code their compressed fields with its models.
//
// Message coding only reads the models, so any number of messages may share
// a Codec across goroutines. Each Message itself is single-goroutine.
type Codec struct {
	cfg    Config
	models *Models
	logger *slog.Logger
}

// New validates cfg and seeds a fresh model pair from its frequency table.
func New(cfg Config) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Codec{
		cfg:    cfg,
		models: huffman.NewPair(cfg.table()),
		logger: cfg.logger(),
	}, nil
}

// NewWithModels builds a codec around an existing model pair, which must
// have been seeded from the table both peers agree on.
func NewWithModels(cfg Config, models *Models) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Codec{cfg: cfg, models: models, logger: cfg.logger()}, nil
}

var (
	defaultOnce  sync.Once
	defaultCodec *Codec
)

// Default returns the process-wide codec built from DefaultConfig. The models
// are seeded on first use, exactly once.
func Default() *Codec {
	defaultOnce.Do(func() {
		c, err := New(DefaultConfig())
		if err != nil {
			panic(err)
		}
		defaultCodec = c
	})
	return defaultCodec
}

// Config returns the codec configuration.
func (c *Codec) Config() Config { return c.cfg }

// Models returns the codec's model pair.
func (c *Codec) Models() *Models { return c.models }

// NewBuffer allocates a buffer of the configured message capacity.
func (c *Codec) NewBuffer() []byte {
	return make([]byte, c.cfg.MaxMessageLen)
}

// NewMessage returns a compressed-mode message writing into buf.
func (c *Codec) NewMessage(buf []byte) *Message {
	m := &Message{codec: c}
	m.Init(buf)
	return m
}

// NewMessageOOB returns an out-of-band message writing into buf.
func (c *Codec) NewMessageOOB(buf []byte) *Message {
	m := &Message{codec: c}
	m.InitOOB(buf)
	return m
}

// Reader returns a compressed-mode message reading the received packet p.
// The message refers to p; it does not copy it.
func (c *Codec) Reader(p []byte) *Message {
	m := c.NewMessage(p)
	m.size = len(p)
	return m
}

// NewMessage returns a compressed-mode message using the default codec.
func NewMessage(buf []byte) *Message {
	return Default().NewMessage(buf)
}
