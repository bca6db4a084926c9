package tomlkit

import (
	"fmt"
	"strconv"
	"strings"
)

// PathKey is one segment of a CodingPath: a table key or an array index.
type PathKey struct {
	Name    string
	Index   int
	IsIndex bool
}

// Key returns a table-key segment.
func Key(name string) PathKey { return PathKey{Name: name} }

// Index returns an array-index segment.
func Index(i int) PathKey { return PathKey{Index: i, IsIndex: true} }

func (k PathKey) String() string {
	if k.IsIndex {
		return strconv.Itoa(k.Index)
	}
	return k.Name
}

// CodingPath is the route from the document root to the node being decoded
// or encoded.
type CodingPath []PathKey

// Path builds a CodingPath from strings (keys) and ints (indices).
// It panics on any other segment type.
func Path(parts ...any) CodingPath {
	p := make(CodingPath, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			p = append(p, Key(v))
		case int:
			p = append(p, Index(v))
		case PathKey:
			p = append(p, v)
		default:
			panic(fmt.Sprintf("tomlkit.Path: unsupported segment %T", part))
		}
	}
	return p
}

// Append returns a new path with key appended. p itself is never modified,
// so sibling containers cannot observe each other's segments.
func (p CodingPath) Append(key string) CodingPath {
	return p.with(Key(key))
}

// AppendIndex returns a new path with index i appended.
func (p CodingPath) AppendIndex(i int) CodingPath {
	return p.with(Index(i))
}

func (p CodingPath) with(k PathKey) CodingPath {
	out := make(CodingPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, k)
}

// Equal reports whether both paths have identical segments.
func (p CodingPath) Equal(o CodingPath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders the path in TOML-ish dotted form, e.g. b.c[0].a.
func (p CodingPath) String() string {
	b := &strings.Builder{}
	for i, k := range p {
		if k.IsIndex {
			fmt.Fprintf(b, "[%d]", k.Index)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(k.Name)
	}
	return b.String()
}

// Pointer renders the path as an RFC 6901 JSON Pointer ("/" for the root).
func (p CodingPath) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, k := range p {
		b.WriteByte('/')
		if k.IsIndex {
			b.WriteString(strconv.Itoa(k.Index))
			continue
		}
		// escape '~' -> '~0', '/' -> '~1'
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(k.Name, "~", "~0"), "/", "~1"))
	}
	return b.String()
}
