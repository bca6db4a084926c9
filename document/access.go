package document

// Typed try-accessors. Each returns false when n is nil or of another kind;
// no accessor converts between kinds.

func AsTable(n Node) (*Table, bool) {
	t, ok := n.(*Table)
	return t, ok && t != nil
}

func AsArray(n Node) (*Array, bool) {
	a, ok := n.(*Array)
	return a, ok && a != nil
}

func AsString(n Node) (string, bool) {
	s, ok := n.(String)
	return string(s), ok
}

// AsInt returns the integer value, dropping its display format.
func AsInt(n Node) (int64, bool) {
	i, ok := n.(Integer)
	return i.Value, ok
}

func AsInteger(n Node) (Integer, bool) {
	i, ok := n.(Integer)
	return i, ok
}

func AsFloat(n Node) (float64, bool) {
	f, ok := n.(Float)
	return float64(f), ok
}

func AsBool(n Node) (bool, bool) {
	b, ok := n.(Bool)
	return bool(b), ok
}

func AsDate(n Node) (Date, bool) {
	d, ok := n.(Date)
	return d, ok
}

func AsTime(n Node) (Time, bool) {
	t, ok := n.(Time)
	return t, ok
}

func AsDateTime(n Node) (DateTime, bool) {
	dt, ok := n.(DateTime)
	return dt, ok
}
