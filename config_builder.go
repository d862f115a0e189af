package netmsg

import "log/slog"

// ConfigBuilder provides a fluent API for constructing a [Config].
// It starts from [DefaultConfig] defaults, so only fields that differ
// from the defaults need to be set.
//
//	cfg, err := netmsg.NewConfigBuilder().
//	    WithStringPolicy(netmsg.StrictStringPolicy()).
//	    WithAllowOverflow(false).
//	    Build()
type ConfigBuilder struct {
	cfg Config
}

// NewConfigBuilder creates a builder pre-populated with [DefaultConfig] values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: DefaultConfig()}
}

// WithMaxMessageLen sets the capacity of buffers allocated by NewBuffer.
func (b *ConfigBuilder) WithMaxMessageLen(n int) *ConfigBuilder {
	b.cfg.MaxMessageLen = n
	return b
}

// WithStringBounds sets the small and big string bounds.
func (b *ConfigBuilder) WithStringBounds(small, big int) *ConfigBuilder {
	b.cfg.MaxStringChars = small
	b.cfg.BigInfoString = big
	return b
}

// WithAllowOverflow sets whether writes into a full message fail silently.
func (b *ConfigBuilder) WithAllowOverflow(allow bool) *ConfigBuilder {
	b.cfg.AllowOverflow = allow
	return b
}

// WithStringPolicy sets the '%' filter policy.
func (b *ConfigBuilder) WithStringPolicy(p StringPolicy) *ConfigBuilder {
	b.cfg.Strings = p
	return b
}

// WithFrequencyTable sets the table the compressed-mode models are seeded from.
func (b *ConfigBuilder) WithFrequencyTable(counts []int) *ConfigBuilder {
	b.cfg.FrequencyTable = append([]int(nil), counts...)
	return b
}

// WithLogger sets the logger for codec diagnostics.
func (b *ConfigBuilder) WithLogger(l *slog.Logger) *ConfigBuilder {
	b.cfg.Logger = l
	return b
}

// Build validates and returns the configuration.
func (b *ConfigBuilder) Build() (Config, error) {
	cfg := b.cfg
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
