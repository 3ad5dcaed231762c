package stream

import (
	"github.com/signadot/qjson/ir"
	"github.com/signadot/qjson/parse"
	"github.com/signadot/qjson/token"
)

// MessageFunc receives each decoded message. Exactly one of n and err is
// non-nil; n is owned by the callee.
type MessageFunc func(n *ir.Node, err error)

// Decoder parses the messages of a byte stream as they complete.
type Decoder struct {
	framer *Framer
	fn     MessageFunc
	opts   *streamOpts
}

func NewDecoder(fn MessageFunc, opts ...StreamOption) *Decoder {
	d := &Decoder{fn: fn, opts: newStreamOpts(opts)}
	d.framer = NewFramer(d.message, opts...)
	return d
}

func (d *Decoder) message(toks []token.Token) {
	var pOpts []parse.ParseOption
	if d.opts.args != nil {
		pOpts = append(pOpts, parse.WithArgs(d.opts.args))
	}
	n, err := parse.Parse(toks, pOpts...)
	d.fn(n, err)
}

// Feed decodes p. A message that fails to parse is reported to the
// MessageFunc and decoding continues; lexical errors stop the stream and
// are returned.
func (d *Decoder) Feed(p []byte) error {
	return parse.LexicalError(d.framer.Feed(p))
}

// Flush signals the end of input. See Framer.Flush.
func (d *Decoder) Flush() error {
	return parse.LexicalError(d.framer.Flush())
}

// Reset starts a new stream.
func (d *Decoder) Reset() {
	d.framer.Reset()
}

func (d *Decoder) Close() {
	d.framer.Close()
}

// Pos returns the stream position of the next byte to be fed.
func (d *Decoder) Pos() token.Pos {
	return d.framer.Pos()
}
