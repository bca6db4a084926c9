package document

// Equal reports whether a and b are semantically equal. Tables compare as key
// sets, so insertion order does not matter; integer display formats and the
// Inline flag are ignored.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Table:
		y, ok := b.(*Table)
		if !ok || x.Len() != y.Len() {
			return false
		}
		eq := true
		x.Range(func(k string, xv Node) bool {
			yv, ok := y.Get(k)
			eq = ok && Equal(xv, yv)
			return eq
		})
		return eq
	case *Array:
		y, ok := b.(*Array)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	case Integer:
		y, ok := b.(Integer)
		return ok && x.Value == y.Value
	case DateTime:
		y, ok := b.(DateTime)
		return ok && x.Equal(y)
	case String, Float, Bool, Date, Time:
		return a == b
	default:
		return false
	}
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	switch x := n.(type) {
	case *Table:
		if x == nil {
			return nil
		}
		t := NewTable()
		t.Inline = x.Inline
		x.Range(func(k string, v Node) bool {
			t.Set(k, Clone(v))
			return true
		})
		return t
	case *Array:
		if x == nil {
			return nil
		}
		a := &Array{items: make([]Node, 0, len(x.items))}
		for _, it := range x.items {
			a.items = append(a.items, Clone(it))
		}
		return a
	case DateTime:
		if x.Offset != nil {
			off := *x.Offset
			x.Offset = &off
		}
		return x
	default:
		return n
	}
}
