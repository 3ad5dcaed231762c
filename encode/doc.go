// Package encode encodes IR nodes to qjson text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//	// {"name": "alice", "age": 30}
//
//	err = encode.Encode(node, os.Stdout, encode.EncodePretty(true))
//	// {
//	//     "name": "alice",
//	//     "age": 30
//	// }
//
// Floats are written in fixed point with at most 6 fractional digits and
// never use exponents. Non-ASCII characters in the Basic Multilingual Plane
// are written as \u escapes; characters beyond it are written as raw UTF-8.
//
// [EncodeYAML] renders the same tree as YAML.
//
// # Related Packages
//
//   - github.com/signadot/qjson/ir - IR representation
//   - github.com/signadot/qjson/parse - Parse tokens to IR
package encode
