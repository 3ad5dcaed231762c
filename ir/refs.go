package ir

// Ref adds a reference to y and returns it.
func (y *Node) Ref() *Node {
	if y.freed.Load() {
		panic("ir: Ref of released node")
	}
	y.extra.Add(1)
	return y
}

// Refs reports the number of live references to y; 0 once y is released.
func (y *Node) Refs() int {
	if y.freed.Load() {
		return 0
	}
	return int(y.extra.Load()) + 1
}

// Release drops a reference to y. When the last reference goes away the
// references y holds on its children are released in turn and y is cleared.
func (y *Node) Release() {
	if y.extra.Add(-1) >= 0 {
		return
	}
	if y.freed.Swap(true) {
		panic("ir: Release of released node")
	}
	values := y.Values
	y.Values = nil
	y.Fields = nil
	y.index = nil
	y.String = ""
	for _, v := range values {
		v.Release()
	}
}

// Released reports whether the last reference to y has been dropped.
func (y *Node) Released() bool {
	return y.freed.Load()
}

// ReleaseAll releases each non-nil node in ns.
func ReleaseAll(ns ...*Node) {
	for _, n := range ns {
		if n != nil {
			n.Release()
		}
	}
}
