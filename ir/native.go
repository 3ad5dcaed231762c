package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
)

// ToNative converts y to plain Go values: int64, float64, bool, string,
// []any and map[string]any.
func ToNative(y *Node) any {
	switch y.Type {
	case IntType:
		return y.Int64
	case FloatType:
		return y.Float64
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case ListType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToNative(v)
		}
		return res
	case DictType:
		res := make(map[string]any, len(y.Values))
		for i, f := range y.Fields {
			res[f] = ToNative(y.Values[i])
		}
		return res
	}
	return nil
}

// FromNative is the inverse of ToNative. It also accepts the other Go integer
// and float kinds, json.Number and map[any]any with string keys. There is no
// null value, so nil is an error.
func FromNative(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrNative)
	case *Node:
		if x == nil {
			return nil, ErrNilNode
		}
		return x.Ref(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %w", ErrNative, x, err)
		}
		return FromFloat(f), nil
	case []any:
		res := NewList()
		for i, e := range x {
			n, err := FromNative(e)
			if err != nil {
				res.Release()
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		res := NewDict()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromNative(x[k])
			if err != nil {
				res.Release()
				return nil, fmt.Errorf("%q: %w", k, err)
			}
			res.Set(k, n)
		}
		return res, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: key %v of type %T", ErrNative, k, k)
			}
			m[ks] = e
		}
		return FromNative(m)
	}
	return nil, fmt.Errorf("%w: %T", ErrNative, v)
}

func fromUint(u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrNative, u)
	}
	return FromInt(int64(u)), nil
}
