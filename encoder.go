package tomlkit

import (
	"fmt"

	"github.com/reoring/tomlkit/document"
)

// target is the slot an encoder writes its value into.
type target interface {
	load() (document.Node, bool)
	store(n document.Node)
}

// tableTarget is the value slot of key in table.
type tableTarget struct {
	table *document.Table
	key   string
}

func (t tableTarget) load() (document.Node, bool) { return t.table.Get(t.key) }
func (t tableTarget) store(n document.Node)       { t.table.Set(t.key, n) }

// indexTarget is element index of array; storing at index == Len appends.
type indexTarget struct {
	array *document.Array
	index int
}

func (t indexTarget) load() (document.Node, bool) { return t.array.Get(t.index) }

func (t indexTarget) store(n document.Node) {
	if !t.array.Set(t.index, n) {
		panic(fmt.Sprintf("tomlkit: array index %d out of range (len %d)", t.index, t.array.Len()))
	}
}

// rootTarget is the top-level table. Only tables can be stored there.
type rootTarget struct {
	table *document.Table
}

func (t rootTarget) load() (document.Node, bool) { return t.table, true }

func (t rootTarget) store(n document.Node) {
	src, ok := n.(*document.Table)
	if !ok {
		panic(fmt.Sprintf("tomlkit: cannot store %s at the top level; only key-value values can be encoded there", document.KindOf(n)))
	}
	if src == t.table {
		return
	}
	src.Range(func(k string, v document.Node) bool {
		t.table.Set(k, v)
		return true
	})
}

type encoder struct {
	target target
	path   CodingPath
	opts   *EncodeOpt

	kind    containerKind
	keyed   *keyedEncoder
	unkeyed *unkeyedEncoder
	single  *singleEncoder
}

func newEncoder(t target, path CodingPath, opts *EncodeOpt) *encoder {
	return &encoder{target: t, path: path, opts: opts}
}

func (e *encoder) CodingPath() CodingPath   { return e.path }
func (e *encoder) UserInfo() map[string]any { return e.opts.UserInfo }

func (e *encoder) claim(k containerKind) {
	if e.kind != containerNone && e.kind != k {
		panic(fmt.Sprintf("tomlkit: %s container requested at %s after a %s container", k, e.path.Pointer(), e.kind))
	}
	e.kind = k
}

func (e *encoder) KeyedContainer() KeyedEncoder { return e.keyedEncoder() }

func (e *encoder) keyedEncoder() *keyedEncoder {
	e.claim(containerKeyed)
	if e.keyed == nil {
		e.keyed = &keyedEncoder{enc: e, target: e.target, path: e.path}
		// An array element holds its slot even when nothing is written.
		if _, ok := e.target.(indexTarget); ok {
			e.keyed.materialize()
		}
	}
	return e.keyed
}

func (e *encoder) UnkeyedContainer() UnkeyedEncoder {
	e.claim(containerUnkeyed)
	if e.unkeyed == nil {
		e.unkeyed = newUnkeyedEncoder(e, e.target, e.path)
	}
	return e.unkeyed
}

func (e *encoder) SingleValueContainer() SingleValueEncoder { return e.singleEncoder() }

func (e *encoder) singleEncoder() *singleEncoder {
	e.claim(containerSingle)
	if e.single == nil {
		e.single = &singleEncoder{enc: e}
	}
	return e.single
}

// encodeChild encodes v into t with a fresh encoder.
func (e *encoder) encodeChild(t target, path CodingPath, v any) error {
	return newEncoder(t, path, e.opts).encodeValue(v)
}

func (e *encoder) encodeBlob(path CodingPath, b []byte) (document.Node, error) {
	n, err := e.opts.DataEncoder(b)
	if err != nil {
		return nil, encodeFailed(path, err)
	}
	return n, nil
}
