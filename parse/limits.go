package parse

const (
	DefaultMaxInputSize      = 100 * 1024 * 1024
	DefaultMaxTableRows      = 10_000_000
	DefaultMaxRecursionDepth = 1000
)

// Limits bounds the work a single parse may do.
type Limits struct {
	MaxInputSize      int
	MaxTableRows      int
	MaxRecursionDepth int
}

func DefaultLimits() Limits {
	return Limits{
		MaxInputSize:      DefaultMaxInputSize,
		MaxTableRows:      DefaultMaxTableRows,
		MaxRecursionDepth: DefaultMaxRecursionDepth,
	}
}
