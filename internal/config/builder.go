package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDefaultLevel sets the level used for a bare "computer" player.
func (b *ConfigBuilder) WithDefaultLevel(level int) *ConfigBuilder {
	b.cfg.Game.DefaultLevel = level
	return b
}

// WithSeed sets the random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Game.Seed = seed
	return b
}

// WithMaxPlies sets the ply cap for interactive games.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Game.MaxPlies = n
	return b
}

// WithSelfPlay sets the self-play batch size and levels.
func (b *ConfigBuilder) WithSelfPlay(games, whiteLevel, blackLevel int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = games
	b.cfg.SelfPlay.WhiteLevel = whiteLevel
	b.cfg.SelfPlay.BlackLevel = blackLevel
	return b
}

// WithWorkers sets the number of self-play workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.SelfPlay.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
