// Package ir provides the value representation for qjson documents.
//
// # Overview
//
// Every decoded message is a tree of *Node. The IR works as a tagged union:
// the Type field says which of the value fields is meaningful.
//
//   - IntType: Int64
//   - FloatType: Float64
//   - BoolType: Bool
//   - StringType: String
//   - ListType: Values, in order
//   - DictType: Fields[i] is the key of Values[i]
//
// There is no null type.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
//	})
//
// Dict keys are unique. Setting a key that is already present replaces its
// value in place; iteration follows the order in which keys were first set.
//
// # Ownership
//
// Nodes are reference counted. A constructor returns a node with one
// reference owned by the caller. Lists and dicts own one reference to each
// child; Append, Set, FromSlice, FromMap and FromKeyVals take over the
// caller's reference to the children they are given. Use Ref to keep a
// child while also handing it to a container, which lets one node appear at
// several places in a tree:
//
//	shared := ir.FromString("x")
//	list := ir.FromSlice([]*ir.Node{shared.Ref(), shared})
//	list.Release() // releases shared twice, freeing it
//
// Release drops a reference. When the count reaches zero the node releases
// its children, which may cascade. Releasing a released node panics.
//
// # Thread Safety
//
// Reference counts are atomic. Built nodes may be read from several
// goroutines; mutation (Append, Set) needs external synchronization.
//
// # Related Packages
//
//   - github.com/signadot/qjson/parse - Parses tokens into IR nodes
//   - github.com/signadot/qjson/encode - Encodes IR nodes to text
package ir
