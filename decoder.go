package tomlkit

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/reoring/tomlkit/document"
)

type containerKind uint8

const (
	containerNone containerKind = iota
	containerKeyed
	containerUnkeyed
	containerSingle
)

func (c containerKind) String() string {
	switch c {
	case containerKeyed:
		return "keyed"
	case containerUnkeyed:
		return "unkeyed"
	case containerSingle:
		return "single-value"
	default:
		return "none"
	}
}

// decoder is the decode context for one node. It lives for a single
// recursive decode call and owns every keyed container created through it,
// including nested ones, until finish runs.
type decoder struct {
	node   document.Node
	path   CodingPath
	opts   *DecodeOpt
	strict strictKeys

	kind    containerKind
	keyed   *keyedDecoder
	unkeyed *unkeyedDecoder
	single  *singleDecoder

	tracked  []*keyedDecoder
	finished bool
}

func newDecoder(n document.Node, path CodingPath, opts *DecodeOpt) *decoder {
	return &decoder{node: n, path: path, opts: opts, strict: strictKeys{}}
}

func (d *decoder) CodingPath() CodingPath   { return d.path }
func (d *decoder) UserInfo() map[string]any { return d.opts.UserInfo }

func (d *decoder) claim(k containerKind) {
	if d.kind != containerNone && d.kind != k {
		panic(fmt.Sprintf("tomlkit: %s container requested at %s after a %s container", k, d.path.Pointer(), d.kind))
	}
	d.kind = k
}

func (d *decoder) KeyedContainer() (KeyedDecoder, error) {
	d.claim(containerKeyed)
	if d.keyed != nil {
		return d.keyed, nil
	}
	k, err := newKeyedDecoder(d, d.node, d.path)
	if err != nil {
		return nil, err
	}
	d.keyed = k
	return k, nil
}

func (d *decoder) UnkeyedContainer() (UnkeyedDecoder, error) {
	d.claim(containerUnkeyed)
	if d.unkeyed != nil {
		return d.unkeyed, nil
	}
	u, err := newUnkeyedDecoder(d, d.node, d.path)
	if err != nil {
		return nil, err
	}
	d.unkeyed = u
	return u, nil
}

func (d *decoder) SingleValueContainer() (SingleValueDecoder, error) {
	d.claim(containerSingle)
	if d.single == nil {
		d.single = &singleDecoder{dec: d}
	}
	return d.single, nil
}

func (d *decoder) track(k *keyedDecoder) { d.tracked = append(d.tracked, k) }

// finish finalizes every keyed container created through d. It runs once,
// after the decode body returned, whether or not it succeeded.
func (d *decoder) finish() {
	if d.finished {
		return
	}
	d.finished = true
	if !d.opts.Strict {
		return
	}
	for _, k := range d.tracked {
		k.finalize(d.strict)
	}
}

// run decodes d.node into v and finalizes d.
func (d *decoder) run(v any) error {
	defer d.finish()
	return d.decodeValue(v)
}

// decodeChild decodes n at path into v with a fresh decoder. The child's
// strict findings reach d only when it succeeded.
func (d *decoder) decodeChild(n document.Node, path CodingPath, v any) error {
	child := newDecoder(n, path, d.opts)
	if err := child.run(v); err != nil {
		if len(child.strict) > 0 {
			Logger().Debug("discarding strict findings of failed decode",
				zap.String("path", path.Pointer()),
				zap.Int("count", len(child.strict)))
		}
		return err
	}
	d.strict.merge(child.strict)
	return nil
}

func (d *decoder) decodeBlob(n document.Node, path CodingPath, p *[]byte) error {
	b, ok := d.opts.DataDecoder(n)
	if !ok {
		return DataCorruptedError(path, "invalid blob encoding")
	}
	*p = b
	return nil
}

// expect converts n with as, reporting a TypeMismatch at path on failure.
func expect[T any](n document.Node, path CodingPath, want document.Kind, as func(document.Node) (T, bool)) (T, error) {
	v, ok := as(n)
	if !ok {
		var zero T
		return zero, TypeMismatchError(path, want, document.KindOf(n))
	}
	return v, nil
}
