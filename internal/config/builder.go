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

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithOutputFormat sets the line mode board format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithSVGFile sets the file an SVG board image is written to.
func (b *ConfigBuilder) WithSVGFile(path string) *ConfigBuilder {
	b.cfg.Output.SVGFile = path
	return b
}

// WithLegalMoves lists legal moves after every redraw.
func (b *ConfigBuilder) WithLegalMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLegalMoves = enabled
	return b
}

// WithTUI enables the terminal user interface.
func (b *ConfigBuilder) WithTUI(enabled bool) *ConfigBuilder {
	b.cfg.TUI = enabled
	return b
}

// WithPerft sets the perft depth and worker count.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithDivide enables per-move perft output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithPerftHash sets the size of the shared perft cache.
func (b *ConfigBuilder) WithPerftHash(entries int) *ConfigBuilder {
	b.cfg.Perft.HashEntries = entries
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
