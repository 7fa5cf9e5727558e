package parse

type parseOpts struct {
	limits   Limits
	comments bool
}

type ParseOption func(*parseOpts)

// ParseComments controls whether comments are kept on the document. The
// default is true.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// WithLimits overrides the resource guards. Zero fields keep their default.
func WithLimits(l Limits) ParseOption {
	return func(o *parseOpts) {
		if l.MaxInputSize > 0 {
			o.limits.MaxInputSize = l.MaxInputSize
		}
		if l.MaxTableRows > 0 {
			o.limits.MaxTableRows = l.MaxTableRows
		}
		if l.MaxRecursionDepth > 0 {
			o.limits.MaxRecursionDepth = l.MaxRecursionDepth
		}
	}
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{limits: DefaultLimits(), comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
