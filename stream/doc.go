// Package stream provides incremental decoding of qjson messages.
//
// A stream carries a sequence of top-level values with no length prefix or
// delimiter between them. [Framer] finds the message boundaries by tracking
// brace and bracket depth over the token stream: a bare scalar is a message
// by itself, and a {...} or [...] value is a message once it is balanced,
// however many calls to Feed that takes.
//
// # Example: Push decoding
//
//	dec := stream.NewDecoder(func(n *ir.Node, err error) {
//	    if err != nil {
//	        log.Printf("bad message: %v", err)
//	        return
//	    }
//	    defer n.Release()
//	    handle(n)
//	})
//	for chunk := range chunks {
//	    if err := dec.Feed(chunk); err != nil {
//	        return err
//	    }
//	}
//	return dec.Flush()
//
// # Example: Pull decoding
//
//	r := stream.NewReader(conn)
//	for {
//	    n, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// Framers and decoders are not safe for concurrent use.
package stream
