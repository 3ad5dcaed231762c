// Package parse parses message groups of qjson tokens into IR nodes.
//
// # Usage
//
//	toks, err := token.Tokenize(nil, []byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return parse.LexicalError(err)
//	}
//	node, err := parse.Parse(toks)
//	if err != nil {
//	    return err
//	}
//	defer node.Release()
//
// # Placeholders
//
// With [WithArgs], placeholder tokens are replaced by native values taken
// from an [Args] cursor in order:
//
//	%p          Value (an *ir.Node)
//	%i          Bool
//	%d %ld %lld %I64d
//	            Int
//	%s          Text
//	%f          Float
//
//	args := parse.NewArgs(parse.Int(1), parse.Value(prev))
//	node, err := parse.Parse(toks, parse.WithArgs(args))
//
// # Errors
//
// Failures are reported as *[Error], carrying a [Kind] and the position of
// the offending token. All of them match [ErrParse] with errors.Is.
package parse
