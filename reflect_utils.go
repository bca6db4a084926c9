package tomlkit

import (
	"reflect"
	"strings"
	"sync"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's TOML key.
// Priority: toml tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("toml")
	if !ok {
		return sf.Name
	}
	if tag == "-" {
		return "-"
	}
	name, _, _ := strings.Cut(tag, ",")
	if name = strings.TrimSpace(name); name == "" {
		return sf.Name
	}
	return name
}

func hasOmitEmpty(sf reflect.StructField) bool {
	tag := sf.Tag.Get("toml")
	if tag == "-" {
		return false
	}
	parts := strings.Split(tag, ",")
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == "omitempty" {
			return true
		}
	}
	return false
}

// structField is one TOML-visible field of a struct type. index reaches it
// through flattened anonymous structs.
type structField struct {
	name      string
	index     []int
	typ       reflect.Type
	omitEmpty bool
	// optional fields decode with DecodeIfPresent.
	optional bool
}

var fieldCache sync.Map // reflect.Type -> []structField

// structFields lists the TOML fields of t in declaration order. A field
// declared at a shallower depth wins over a flattened one with the same key.
func structFields(t reflect.Type) []structField {
	if v, ok := fieldCache.Load(t); ok {
		return v.([]structField)
	}
	var out []structField
	seen := map[string]int{} // key -> depth
	var walk func(t reflect.Type, index []int, depth int)
	walk = func(t reflect.Type, index []int, depth int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			idx := make([]int, len(index)+1)
			copy(idx, index)
			idx[len(index)] = i

			_, tagged := sf.Tag.Lookup("toml")
			if sf.Anonymous && !tagged && sf.Type.Kind() == reflect.Struct {
				walk(sf.Type, idx, depth+1)
				continue
			}
			if !sf.IsExported() {
				continue
			}
			name, omit := ResolveStructKey(sf), hasOmitEmpty(sf)
			if name == "-" {
				continue
			}
			if d, dup := seen[name]; dup {
				if d <= depth {
					continue
				}
				out = removeField(out, name)
			}
			seen[name] = depth
			out = append(out, structField{
				name:      name,
				index:     idx,
				typ:       sf.Type,
				omitEmpty: omit,
				optional:  omit || sf.Type.Kind() == reflect.Pointer,
			})
		}
	}
	walk(t, nil, 0)
	v, _ := fieldCache.LoadOrStore(t, out)
	return v.([]structField)
}

func removeField(fields []structField, name string) []structField {
	out := fields[:0]
	for _, f := range fields {
		if f.name != name {
			out = append(out, f)
		}
	}
	return out
}

// isEmptyValue mirrors encoding/json's omitempty rule.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	case reflect.Struct:
		return v.IsZero()
	}
	return false
}
