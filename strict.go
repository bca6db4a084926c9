package tomlkit

// strictKeys collects document keys that no decode call consumed. Entries are
// keyed by the rendered full path, so the same key name seen in two places
// yields two entries.
type strictKeys map[string]UnexpectedKey

func (s strictKeys) record(key string, path CodingPath) {
	s[path.Pointer()] = UnexpectedKey{Key: key, Path: path}
}

// merge imports child's findings. Callers only merge children whose decode
// succeeded.
func (s strictKeys) merge(child strictKeys) {
	for p, k := range child {
		s[p] = k
	}
}

func (s strictKeys) sorted() []UnexpectedKey {
	out := make([]UnexpectedKey, 0, len(s))
	for _, k := range s {
		out = append(out, k)
	}
	sortUnexpected(out)
	return out
}
