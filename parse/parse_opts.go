package parse

type parseOpts struct {
	args *Args
}

type ParseOption func(*parseOpts)

// WithArgs enables placeholders, which consume args in order.
func WithArgs(args *Args) ParseOption {
	return func(o *parseOpts) { o.args = args }
}
