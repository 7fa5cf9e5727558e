package human

import "github.com/signadot/dx-format/go-dx/encode"

// Config controls the human rendering. It is an immutable value: the With
// methods return modified copies.
type Config struct {
	indent   int
	align    bool
	box      bool
	comments bool
	unicode  bool
	smart    bool
	colors   *encode.Colors
}

type FormatOption func(*Config)

func IndentSize(n int) FormatOption {
	return func(c *Config) { c.indent = clampIndent(n) }
}
func AlignValues(v bool) FormatOption {
	return func(c *Config) { c.align = v }
}
func BoxDrawing(v bool) FormatOption {
	return func(c *Config) { c.box = v }
}
func PreserveComments(v bool) FormatOption {
	return func(c *Config) { c.comments = v }
}
func UnicodeSymbols(v bool) FormatOption {
	return func(c *Config) { c.unicode = v }
}
func SmartQuoting(v bool) FormatOption {
	return func(c *Config) { c.smart = v }
}
func Colors(v *encode.Colors) FormatOption {
	return func(c *Config) { c.colors = v }
}

// NewConfig applies opts to Default.
func NewConfig(opts ...FormatOption) Config {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Default renders with 4 space indents, aligned values, box drawn tables
// and Unicode symbols.
func Default() Config {
	return Config{
		indent:   4,
		align:    true,
		box:      true,
		comments: true,
		unicode:  true,
		smart:    true,
	}
}

// ASCII is Default restricted to ASCII output.
func ASCII() Config {
	c := Default()
	c.unicode = false
	return c
}

// Compact uses 2 space indents and keyed table rows without alignment.
func Compact() Config {
	return Config{
		indent:   2,
		comments: true,
		smart:    true,
	}
}

func clampIndent(n int) int {
	if n == 4 {
		return 4
	}
	return 2
}

func (c Config) IndentSize() int        { return clampIndent(c.indent) }
func (c Config) AlignValues() bool      { return c.align }
func (c Config) BoxDrawing() bool       { return c.box }
func (c Config) PreserveComments() bool { return c.comments }
func (c Config) UnicodeSymbols() bool   { return c.unicode }
func (c Config) SmartQuoting() bool     { return c.smart }

func (c Config) With(opts ...FormatOption) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) WithIndentSize(n int) Config        { return c.With(IndentSize(n)) }
func (c Config) WithAlignValues(v bool) Config      { return c.With(AlignValues(v)) }
func (c Config) WithBoxDrawing(v bool) Config       { return c.With(BoxDrawing(v)) }
func (c Config) WithPreserveComments(v bool) Config { return c.With(PreserveComments(v)) }
func (c Config) WithUnicodeSymbols(v bool) Config   { return c.With(UnicodeSymbols(v)) }
func (c Config) WithSmartQuoting(v bool) Config     { return c.With(SmartQuoting(v)) }
func (c Config) WithColors(v *encode.Colors) Config { return c.With(Colors(v)) }
