package stream

import (
	"fmt"

	"github.com/signadot/qjson/debug"
	"github.com/signadot/qjson/token"
)

// Framer groups the tokens of a byte stream into messages, each holding
// exactly one top-level value.
type Framer struct {
	lex  *token.Lexer
	emit func([]token.Token)
	opts *streamOpts

	pending          []token.Token
	braces, brackets int
	err              error
}

// NewFramer returns a framer calling emit with each complete message, in
// arrival order. The slice passed to emit belongs to the callee.
func NewFramer(emit func([]token.Token), opts ...StreamOption) *Framer {
	f := &Framer{
		emit: emit,
		opts: newStreamOpts(opts),
	}
	f.lex = token.NewLexer(f.push)
	return f
}

func (f *Framer) push(tok token.Token) {
	if f.err != nil {
		return
	}
	switch tok.Type {
	case token.TLCurl:
		f.braces++
	case token.TRCurl:
		f.braces--
	case token.TLSquare:
		f.brackets++
	case token.TRSquare:
		f.brackets--
	}
	f.pending = append(f.pending, tok)
	if f.braces == 0 && f.brackets == 0 {
		msg := f.pending
		f.pending = nil
		if debug.Frame() {
			debug.Logf("frame %d tokens at %s: %v\n", len(msg), msg[0].Pos, msg)
		}
		f.emit(msg)
		return
	}
	if limit := f.opts.maxTokens; limit > 0 && len(f.pending) > limit {
		f.err = fmt.Errorf("%w: more than %d tokens at %s", ErrMessageTooLarge, limit, f.pending[0].Pos)
		f.pending = nil
	}
}

// Feed scans p, emitting every message it completes. After an error the
// framer returns the same error until Reset.
func (f *Framer) Feed(p []byte) error {
	if f.err != nil {
		return f.err
	}
	if err := f.lex.Feed(p); err != nil {
		f.err = err
		return err
	}
	return f.err
}

// Flush signals the end of input. A pending number or keyword is emitted;
// a partial message is dropped and reported with ErrIncomplete.
func (f *Framer) Flush() error {
	if f.err != nil {
		return f.err
	}
	if err := f.lex.Flush(); err != nil {
		f.err = err
		return err
	}
	if f.err != nil {
		return f.err
	}
	if n := len(f.pending); n > 0 {
		start := f.pending[0].Pos
		f.pending = nil
		f.braces, f.brackets = 0, 0
		return fmt.Errorf("%w: %d tokens from %s", ErrIncomplete, n, start)
	}
	return nil
}

// Reset discards all state, including any error, and starts a new stream.
func (f *Framer) Reset() {
	f.lex.Reset()
	f.pending = nil
	f.braces, f.brackets = 0, 0
	f.err = nil
}

// Close releases the framer's buffers. The framer must not be used after.
func (f *Framer) Close() {
	f.Reset()
	f.emit = func([]token.Token) {}
}

// Pending reports the number of tokens queued for an incomplete message.
func (f *Framer) Pending() int {
	return len(f.pending)
}

// Depth reports the current brace and bracket depth.
func (f *Framer) Depth() (braces, brackets int) {
	return f.braces, f.brackets
}

// Pos returns the stream position of the next byte to be fed.
func (f *Framer) Pos() token.Pos {
	return f.lex.Pos()
}
