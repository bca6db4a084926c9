package document

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// ValueOf converts a native Go value into a node. Supported inputs are
// document nodes, bool, signed and unsigned integers, float32/float64,
// string, time.Time, map[string]any and []any (recursively). Map keys are
// inserted in sorted order.
func ValueOf(v any) (Node, error) {
	switch x := v.(type) {
	case Node:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintNode(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return uintNode(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case time.Time:
		return DateTimeOf(x), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		t := NewTable()
		for _, k := range keys {
			n, err := ValueOf(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			t.Set(k, n)
		}
		return t, nil
	case []any:
		a := &Array{items: make([]Node, 0, len(x))}
		for i, it := range x {
			n, err := ValueOf(it)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			a.Append(n)
		}
		return a, nil
	case nil:
		return nil, fmt.Errorf("document: TOML cannot represent nil")
	default:
		return nil, fmt.Errorf("document: unsupported value of type %T", v)
	}
}

func uintNode(u uint64) (Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("document: %d overflows a TOML integer", u)
	}
	return Int(int64(u)), nil
}

// ToNative converts n into plain Go values: map[string]any, []any, string,
// int64, float64, bool, and Date/Time/DateTime for the date family.
func ToNative(n Node) any {
	switch x := n.(type) {
	case *Table:
		m := make(map[string]any, x.Len())
		x.Range(func(k string, v Node) bool {
			m[k] = ToNative(v)
			return true
		})
		return m
	case *Array:
		out := make([]any, 0, x.Len())
		for _, it := range x.items {
			out = append(out, ToNative(it))
		}
		return out
	case String:
		return string(x)
	case Integer:
		return x.Value
	case Float:
		return float64(x)
	case Bool:
		return bool(x)
	case Date, Time, DateTime:
		return x
	default:
		return nil
	}
}
