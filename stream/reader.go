package stream

import (
	"io"

	"github.com/signadot/qjson/ir"
)

type result struct {
	n   *ir.Node
	err error
}

// Reader decodes messages from an io.Reader on demand.
type Reader struct {
	r     io.Reader
	dec   *Decoder
	buf   []byte
	queue []result
	err   error
}

func NewReader(r io.Reader, opts ...StreamOption) *Reader {
	res := &Reader{r: r}
	res.dec = NewDecoder(res.push, opts...)
	res.buf = make([]byte, res.dec.opts.bufSize)
	return res
}

func (r *Reader) push(n *ir.Node, err error) {
	r.queue = append(r.queue, result{n: n, err: err})
}

// Next returns the next message, which the caller owns. A message which
// fails to parse is returned as an error and reading may continue. At the
// end of input Next returns io.EOF.
func (r *Reader) Next() (*ir.Node, error) {
	for len(r.queue) == 0 {
		if r.err != nil {
			return nil, r.err
		}
		r.fill()
	}
	res := r.queue[0]
	r.queue[0] = result{}
	r.queue = r.queue[1:]
	return res.n, res.err
}

func (r *Reader) fill() {
	n, err := r.r.Read(r.buf)
	if n > 0 {
		if ferr := r.dec.Feed(r.buf[:n]); ferr != nil {
			r.err = ferr
			return
		}
	}
	switch {
	case err == io.EOF:
		if ferr := r.dec.Flush(); ferr != nil {
			r.err = ferr
			return
		}
		r.err = io.EOF
	case err != nil:
		r.err = err
	}
}

// Close releases messages read ahead but not yet returned.
func (r *Reader) Close() {
	for _, res := range r.queue {
		if res.n != nil {
			res.n.Release()
		}
	}
	r.queue = nil
	r.dec.Close()
}
