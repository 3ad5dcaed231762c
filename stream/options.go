package stream

import "github.com/signadot/qjson/parse"

// StreamOption configures Framer, Decoder and Reader behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	maxTokens int
	args      *parse.Args
	bufSize   int
}

func newStreamOpts(opts []StreamOption) *streamOpts {
	res := &streamOpts{bufSize: 4096}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// WithMaxTokens bounds the number of tokens in one message. 0 means no
// bound.
func WithMaxTokens(n int) StreamOption {
	return func(opts *streamOpts) {
		opts.maxTokens = n
	}
}

// WithArgs supplies interpolation args, consumed in order across messages.
func WithArgs(args *parse.Args) StreamOption {
	return func(opts *streamOpts) {
		opts.args = args
	}
}

// WithBufferSize sets the size of reads made by a Reader.
func WithBufferSize(n int) StreamOption {
	return func(opts *streamOpts) {
		if n > 0 {
			opts.bufSize = n
		}
	}
}
