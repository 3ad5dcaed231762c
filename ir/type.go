package ir

import "fmt"

type Type int

const (
	IntType Type = iota
	FloatType
	BoolType
	StringType
	ListType
	DictType
)

var (
	typeNames = map[Type]string{
		IntType:    "Int",
		FloatType:  "Float",
		BoolType:   "Bool",
		StringType: "String",
		ListType:   "List",
		DictType:   "Dict",
	}
	typesByName = map[string]Type{
		"Int":    IntType,
		"Float":  FloatType,
		"Bool":   BoolType,
		"String": StringType,
		"List":   ListType,
		"Dict":   DictType,
	}
	allTypes = [...]Type{IntType, FloatType, BoolType, StringType, ListType, DictType}
)

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := typesByName[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// Types returns every value type.
func Types() []Type {
	return allTypes[:]
}

// IsLeaf reports whether values of type t hold no children.
func (t Type) IsLeaf() bool {
	switch t {
	case ListType, DictType:
		return false
	default:
		return true
	}
}
