package ir

// Truth reports whether node is a true value: nonzero numbers, true,
// non-empty strings and non-empty containers are true.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case DictType, ListType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case IntType:
		return node.Int64 != 0
	case FloatType:
		return node.Float64 != 0
	case BoolType:
		return node.Bool
	}
	return false
}
