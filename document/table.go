package document

// Table is an insertion-ordered mapping from keys to nodes. Lookup is hashed;
// Keys reports the order in which keys were first inserted.
type Table struct {
	keys    []string
	entries map[string]Node
	// Inline marks the table for inline rendering. It is cosmetic and ignored
	// by Equal.
	Inline bool
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: map[string]Node{}}
}

// Get returns the node stored at key.
func (t *Table) Get(key string) (Node, bool) {
	if t == nil {
		return nil, false
	}
	n, ok := t.entries[key]
	return n, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Set inserts n at key. Replacing an existing key keeps its position.
// A nil node deletes the key.
func (t *Table) Set(key string, n Node) {
	if n == nil {
		t.Delete(key)
		return
	}
	if t.entries == nil {
		t.entries = map[string]Node{}
	}
	if _, ok := t.entries[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = n
}

// Delete removes key and reports whether it was present.
func (t *Table) Delete(key string) bool {
	if t == nil {
		return false
	}
	if _, ok := t.entries[key]; !ok {
		return false
	}
	delete(t.entries, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns a copy of the keys in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (t *Table) Range(fn func(key string, n Node) bool) {
	if t == nil {
		return
	}
	for _, k := range t.keys {
		if !fn(k, t.entries[k]) {
			return
		}
	}
}
