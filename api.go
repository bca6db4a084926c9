package tomlkit

import (
	"errors"
	"reflect"

	"go.uber.org/zap"

	"github.com/reoring/tomlkit/document"
)

// Decode decodes node into a new T.
// With DecodeOpt.Strict, a structurally successful decode that left document
// keys unconsumed fails with *UnexpectedKeysError.
func Decode[T any](node document.Node, opts ...DecodeOpt) (T, error) {
	var out T
	if err := DecodeInto(node, &out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// DecodeInto decodes node into v, which must be a non-nil pointer. The last
// option wins.
func DecodeInto(node document.Node, v any, opts ...DecodeOpt) error {
	opt := normalizeDecodeOpt(opts)
	d := newDecoder(node, nil, opt)
	if err := d.run(v); err != nil {
		return err
	}
	if opt.Strict && len(d.strict) > 0 {
		Logger().Debug("strict decode rejected document", zap.Int("unexpected", len(d.strict)))
		return &UnexpectedKeysError{Keys: d.strict.sorted()}
	}
	return nil
}

// Encode encodes v into a new top-level table. v must encode as key-value
// pairs: a struct, a string-keyed map, a *document.Table, or an Encodable
// that uses a keyed container.
func Encode(v any, opts ...EncodeOpt) (*document.Table, error) {
	opt := normalizeEncodeOpt(opts)
	root := document.NewTable()
	if isNil(v) {
		return root, nil
	}
	if !encodesAsTable(v) {
		return nil, &EncodeError{
			Message: "top-level value must encode to a table, got " + reflect.TypeOf(v).String(),
			Cause:   errors.ErrUnsupported,
		}
	}
	e := newEncoder(rootTarget{table: root}, nil, opt)
	if err := e.encodeValue(v); err != nil {
		return nil, err
	}
	return root, nil
}

func encodesAsTable(v any) bool {
	if _, ok := asEncodable(v); ok {
		return true
	}
	if _, ok := v.(*document.Table); ok {
		return true
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		return t != reflect.TypeOf(document.Date{}) && t != reflect.TypeOf(document.Time{}) &&
			t != reflect.TypeOf(document.DateTime{}) && t != reflect.TypeOf(document.Integer{}) &&
			t.PkgPath() != "time"
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	}
	return false
}
