package ir

import (
	"fmt"
	"maps"
	"slices"
	"sync/atomic"
)

type Node struct {
	Type Type

	// Fields[i] is the key of Values[i] for DictType; ListType uses Values only.
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64

	// extra counts references beyond the one held by whoever created the node,
	// so a zero Node is a live value with a single owner.
	extra atomic.Int32
	freed atomic.Bool
	index map[string]int
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int64: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: FloatType, Float64: f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromSlice returns a list holding vs. The list takes over the caller's
// reference to each element.
func FromSlice(vs []*Node) *Node {
	res := NewList()
	for _, v := range vs {
		res.Append(v)
	}
	return res
}

// FromMap returns a dict of m with keys in sorted order. The dict takes over
// the caller's reference to each value.
func FromMap(m map[string]*Node) *Node {
	res := NewDict()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals returns a dict of kvs in order. A repeated key keeps the
// position of its first occurrence and the value of its last.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewDict()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func NewList() *Node {
	return &Node{Type: ListType, Values: []*Node{}}
}

func NewDict() *Node {
	return &Node{Type: DictType, Fields: []string{}, Values: []*Node{}}
}

// Append adds v to the end of a list, taking over the caller's reference.
func (y *Node) Append(v *Node) *Node {
	if y.Type != ListType {
		panic(fmt.Sprintf("ir: Append on %s", y.Type))
	}
	if v == nil {
		panic("ir: Append nil")
	}
	y.Values = append(y.Values, v)
	return y
}

// Set binds key to v, taking over the caller's reference to v. If key is
// already present its old value is released and replaced in place, even
// when it is v itself.
func (y *Node) Set(key string, v *Node) *Node {
	if y.Type != DictType {
		panic(fmt.Sprintf("ir: Set on %s", y.Type))
	}
	if v == nil {
		panic("ir: Set nil")
	}
	y.reindex()
	if i, ok := y.lookup(key); ok {
		old := y.Values[i]
		y.Values[i] = v
		old.Release()
		return y
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
	y.index[key] = len(y.Fields) - 1
	return y
}

// Get returns the value under key, or nil. The result is borrowed.
func (y *Node) Get(key string) *Node {
	if y.Type != DictType {
		return nil
	}
	i, ok := y.lookup(key)
	if !ok {
		return nil
	}
	return y.Values[i]
}

// lookup never writes to y.
func (y *Node) lookup(key string) (int, bool) {
	if y.index != nil && len(y.index) == len(y.Fields) {
		i, ok := y.index[key]
		if ok && y.Fields[i] == key {
			return i, true
		}
		return 0, false
	}
	for i, f := range y.Fields {
		if f == key {
			return i, true
		}
	}
	return 0, false
}

func (y *Node) reindex() {
	if y.index != nil && len(y.index) == len(y.Fields) {
		return
	}
	y.index = make(map[string]int, len(y.Fields))
	for i, f := range y.Fields {
		if _, ok := y.index[f]; !ok {
			y.index[f] = i
		}
	}
}

// Keys returns dict keys in iteration order.
func (y *Node) Keys() []string {
	return slices.Clone(y.Fields)
}

func (y *Node) Len() int {
	switch y.Type {
	case ListType, DictType:
		return len(y.Values)
	case StringType:
		return len(y.String)
	}
	return 0
}
