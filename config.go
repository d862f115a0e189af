package netmsg

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/q3net/netmsg/internal/huffman"
)

const (
	// MaxMessageLen is the default message capacity in bytes.
	MaxMessageLen = 16384

	// MaxStringChars bounds strings written by WriteString, terminator included.
	MaxStringChars = 1024

	// BigInfoString bounds strings written by WriteBigString, terminator included.
	BigInfoString = 8192
)

// Config defines codec configuration.
type Config struct {
	// MaxMessageLen is the capacity of buffers allocated by NewBuffer.
	// Default: 16384.
	MaxMessageLen int `json:"max_message_len" yaml:"max_message_len"`

	// MaxStringChars bounds WriteString, ReadString and ReadStringLine.
	// Default: 1024.
	MaxStringChars int `json:"max_string_chars" yaml:"max_string_chars"`

	// BigInfoString bounds WriteBigString and ReadBigString.
	// Default: 8192.
	BigInfoString int `json:"big_info_string" yaml:"big_info_string"`

	// AllowOverflow makes writes into a full message fail silently. When
	// false they also return ErrOverflow.
	// Default: true.
	AllowOverflow bool `json:"allow_overflow" yaml:"allow_overflow"`

	// Strings selects which string paths replace '%' with '.'.
	Strings StringPolicy `json:"strings" yaml:"strings"`

	// FrequencyTable seeds the compressed-mode models. It must hold 256
	// counts when set; both ends of a connection need the same table.
	// Default: the built-in table.
	FrequencyTable []int `json:"frequency_table,omitempty" yaml:"frequency_table,omitempty"`

	// Logger receives codec diagnostics. Default: slog.Default().
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// StringPolicy selects the '%' filter per string path. Bytes above 127 are
// always replaced. The zero value filters nothing; DefaultStringPolicy
// reproduces the historical mix, where only ReadString filters.
type StringPolicy struct {
	FilterPercentOnWrite    bool `json:"filter_percent_on_write" yaml:"filter_percent_on_write"`
	FilterPercentString     bool `json:"filter_percent_string" yaml:"filter_percent_string"`
	FilterPercentBigString  bool `json:"filter_percent_big_string" yaml:"filter_percent_big_string"`
	FilterPercentStringLine bool `json:"filter_percent_string_line" yaml:"filter_percent_string_line"`
}

// DefaultStringPolicy filters '%' in ReadString only.
func DefaultStringPolicy() StringPolicy {
	return StringPolicy{FilterPercentString: true}
}

// StrictStringPolicy filters '%' on every path.
func StrictStringPolicy() StringPolicy {
	return StringPolicy{
		FilterPercentOnWrite:    true,
		FilterPercentString:     true,
		FilterPercentBigString:  true,
		FilterPercentStringLine: true,
	}
}

// DefaultConfig returns the configuration compatible with existing peers.
func DefaultConfig() Config {
	return Config{
		MaxMessageLen:  MaxMessageLen,
		MaxStringChars: MaxStringChars,
		BigInfoString:  BigInfoString,
		AllowOverflow:  true,
		Strings:        DefaultStringPolicy(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxMessageLen < 4 {
		return fmt.Errorf("%w: max_message_len %d is below 4", ErrInvalidConfig, c.MaxMessageLen)
	}
	if c.MaxStringChars < 1 {
		return fmt.Errorf("%w: max_string_chars must be positive", ErrInvalidConfig)
	}
	if c.BigInfoString < 1 {
		return fmt.Errorf("%w: big_info_string must be positive", ErrInvalidConfig)
	}
	if c.FrequencyTable != nil {
		if len(c.FrequencyTable) != huffman.Symbols {
			return fmt.Errorf("%w: frequency_table has %d entries, want %d",
				ErrInvalidConfig, len(c.FrequencyTable), huffman.Symbols)
		}
		for i, n := range c.FrequencyTable {
			if n < 0 {
				return fmt.Errorf("%w: frequency_table[%d] is negative", ErrInvalidConfig, i)
			}
		}
	}
	return nil
}

func (c *Config) table() *huffman.Table {
	if c.FrequencyTable == nil {
		return &huffman.DefaultTable
	}
	var t huffman.Table
	copy(t[:], c.FrequencyTable)
	return &t
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// ParseConfig parses a YAML configuration. Fields missing from data keep
// their DefaultConfig values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
