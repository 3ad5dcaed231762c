package transport

// StreamOption configures a Stream.
type StreamOption func(*Stream)

// WithMaxTokens bounds the size of an incoming message; see
// stream.WithMaxTokens.
func WithMaxTokens(n int) StreamOption {
	return func(s *Stream) { s.maxTokens = n }
}

// WithPretty makes the stream write messages with one element per line.
func WithPretty(v bool) StreamOption {
	return func(s *Stream) { s.pretty = v }
}

// WithReadSize sets the size of reads from the underlying connection.
func WithReadSize(n int) StreamOption {
	return func(s *Stream) {
		if n > 0 {
			s.rbuf = make([]byte, n)
		}
	}
}
