package document

// Array is an ordered, 0-indexed sequence of nodes.
type Array struct {
	items []Node
}

// NewArray returns an array holding items. Nil items are dropped.
func NewArray(items ...Node) *Array {
	a := &Array{items: make([]Node, 0, len(items))}
	for _, it := range items {
		a.Append(it)
	}
	return a
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Get returns the element at i.
func (a *Array) Get(i int) (Node, bool) {
	if a == nil || i < 0 || i >= len(a.items) {
		return nil, false
	}
	return a.items[i], true
}

// Set replaces the element at i. Setting i == Len() appends. It reports false
// when i is out of range or n is nil.
func (a *Array) Set(i int, n Node) bool {
	if n == nil || i < 0 || i > len(a.items) {
		return false
	}
	if i == len(a.items) {
		a.items = append(a.items, n)
		return true
	}
	a.items[i] = n
	return true
}

// Append adds n at the end.
func (a *Array) Append(n Node) {
	if n == nil {
		return
	}
	a.items = append(a.items, n)
}

// Insert places n before the element at i (i == Len() appends).
func (a *Array) Insert(i int, n Node) bool {
	if n == nil || i < 0 || i > len(a.items) {
		return false
	}
	a.items = append(a.items, nil)
	copy(a.items[i+1:], a.items[i:])
	a.items[i] = n
	return true
}

// Remove deletes the element at i and returns it.
func (a *Array) Remove(i int) (Node, bool) {
	if a == nil || i < 0 || i >= len(a.items) {
		return nil, false
	}
	n := a.items[i]
	a.items = append(a.items[:i], a.items[i+1:]...)
	return n, true
}

// Items returns a copy of the elements.
func (a *Array) Items() []Node {
	if a == nil {
		return nil
	}
	return append([]Node(nil), a.items...)
}
