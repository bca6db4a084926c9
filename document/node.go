// Package document implements the TOML document tree consumed and produced
// by tomlkit: a closed set of node types (tables, arrays and scalars) with
// safe typed accessors and mutation primitives.
//
// Tables and arrays are reference types (*Table, *Array) and are mutated in
// place. Scalars are values.
package document

// Kind discriminates document nodes.
type Kind uint8

const (
	KindInvalid Kind = iota // No node (absent key, index past the end).
	KindTable
	KindArray
	KindString
	KindInteger
	KindFloat
	KindBool
	KindDate
	KindTime
	KindDateTime
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "date-time"
	default:
		return "none"
	}
}

// Node is one value of a TOML document. The set of implementations is closed:
// *Table, *Array, String, Integer, Float, Bool, Date, Time and DateTime.
type Node interface {
	Kind() Kind
	node()
}

// String is a TOML string.
type String string

// Float is a TOML float.
type Float float64

// Bool is a TOML boolean.
type Bool bool

func (String) Kind() Kind   { return KindString }
func (Integer) Kind() Kind  { return KindInteger }
func (Float) Kind() Kind    { return KindFloat }
func (Bool) Kind() Kind     { return KindBool }
func (Date) Kind() Kind     { return KindDate }
func (Time) Kind() Kind     { return KindTime }
func (DateTime) Kind() Kind { return KindDateTime }
func (*Table) Kind() Kind   { return KindTable }
func (*Array) Kind() Kind   { return KindArray }

func (String) node()   {}
func (Integer) node()  {}
func (Float) node()    {}
func (Bool) node()     {}
func (Date) node()     {}
func (Time) node()     {}
func (DateTime) node() {}
func (*Table) node()   {}
func (*Array) node()   {}

// KindOf returns the kind of n, or KindInvalid when n is nil.
func KindOf(n Node) Kind {
	if n == nil {
		return KindInvalid
	}
	return n.Kind()
}
