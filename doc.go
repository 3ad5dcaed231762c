// Package qjson decodes and encodes qjson text, a JSON-like notation with
// single quoted strings, no null, and placeholders for splicing native
// values into parsed text.
//
// # Usage
//
//	node, err := qjson.Decode(`{"foo": 42, "bar": 'hello world'}`)
//	if err != nil {
//	    return err
//	}
//	defer node.Release()
//	fmt.Println(qjson.Encode(node))
//	// {"foo": 42, "bar": "hello world"}
//
//	list, err := qjson.Decodef("[%d, 2, %p]", parse.Int(1), parse.Value(node))
//
// Nodes are reference counted; see package ir for the ownership rules.
//
// # Related Packages
//
//   - github.com/signadot/qjson/ir - IR representation
//   - github.com/signadot/qjson/token - Incremental lexer
//   - github.com/signadot/qjson/stream - Message framing and streaming decode
//   - github.com/signadot/qjson/parse - Parse tokens to IR
//   - github.com/signadot/qjson/encode - Encode IR to text
package qjson
