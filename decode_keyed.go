package tomlkit

import (
	"github.com/reoring/tomlkit/document"
)

type keyedDecoder struct {
	dec      *decoder
	table    *document.Table
	path     CodingPath
	consumed map[string]struct{}
}

func newKeyedDecoder(owner *decoder, n document.Node, path CodingPath) (*keyedDecoder, error) {
	t, ok := document.AsTable(n)
	if !ok {
		return nil, TypeMismatchError(path, document.KindTable, document.KindOf(n))
	}
	k := &keyedDecoder{dec: owner, table: t, path: path, consumed: map[string]struct{}{}}
	owner.track(k)
	return k, nil
}

func (k *keyedDecoder) CodingPath() CodingPath   { return k.path }
func (k *keyedDecoder) AllKeys() []string        { return k.table.Keys() }
func (k *keyedDecoder) Contains(key string) bool { return k.table.Has(key) }
func (k *keyedDecoder) DecodeNil(key string) bool {
	return !k.table.Has(key)
}

func (k *keyedDecoder) consume(key string) { k.consumed[key] = struct{}{} }

func (k *keyedDecoder) lookup(key string) (document.Node, error) {
	n, ok := k.table.Get(key)
	if !ok {
		return nil, KeyNotFoundError(k.path, key)
	}
	return n, nil
}

// finalize records every key of the table that was never consumed.
func (k *keyedDecoder) finalize(into strictKeys) {
	for _, key := range k.table.Keys() {
		if _, ok := k.consumed[key]; !ok {
			into.record(key, k.path.Append(key))
		}
	}
}

func keyedScalar[T any](k *keyedDecoder, key string, want document.Kind, as func(document.Node) (T, bool)) (T, error) {
	n, err := k.lookup(key)
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := expect(n, k.path.Append(key), want, as)
	if err == nil {
		k.consume(key)
	}
	return v, err
}

func (k *keyedDecoder) DecodeBool(key string) (bool, error) {
	return keyedScalar(k, key, document.KindBool, document.AsBool)
}

func (k *keyedDecoder) DecodeString(key string) (string, error) {
	return keyedScalar(k, key, document.KindString, document.AsString)
}

func (k *keyedDecoder) DecodeFloat(key string) (float64, error) {
	return keyedScalar(k, key, document.KindFloat, document.AsFloat)
}

func (k *keyedDecoder) DecodeInt(key string) (int64, error) {
	return keyedScalar(k, key, document.KindInteger, document.AsInt)
}

func (k *keyedDecoder) DecodeInteger(key string) (document.Integer, error) {
	return keyedScalar(k, key, document.KindInteger, document.AsInteger)
}

func (k *keyedDecoder) DecodeDate(key string) (document.Date, error) {
	return keyedScalar(k, key, document.KindDate, document.AsDate)
}

func (k *keyedDecoder) DecodeTime(key string) (document.Time, error) {
	return keyedScalar(k, key, document.KindTime, document.AsTime)
}

func (k *keyedDecoder) DecodeDateTime(key string) (document.DateTime, error) {
	return keyedScalar(k, key, document.KindDateTime, document.AsDateTime)
}

func (k *keyedDecoder) Decode(key string, v any) error {
	n, err := k.lookup(key)
	if err != nil {
		return err
	}
	path := k.path.Append(key)
	if p, ok := v.(*[]byte); ok && p != nil {
		err = k.dec.decodeBlob(n, path, p)
	} else {
		err = k.dec.decodeChild(n, path, v)
	}
	if err != nil {
		return err
	}
	k.consume(key)
	return nil
}

func (k *keyedDecoder) DecodeIfPresent(key string, v any) (bool, error) {
	if !k.table.Has(key) {
		return false, nil
	}
	if err := k.Decode(key, v); err != nil {
		return false, err
	}
	return true, nil
}

func (k *keyedDecoder) NestedKeyed(key string) (KeyedDecoder, error) {
	n, err := k.lookup(key)
	if err != nil {
		return nil, err
	}
	nested, err := newKeyedDecoder(k.dec, n, k.path.Append(key))
	if err != nil {
		return nil, err
	}
	k.consume(key)
	return nested, nil
}

func (k *keyedDecoder) NestedUnkeyed(key string) (UnkeyedDecoder, error) {
	n, ok := k.table.Get(key)
	if !ok || document.KindOf(n) != document.KindArray {
		return nil, KeyNotFoundError(k.path, key)
	}
	nested, err := newUnkeyedDecoder(k.dec, n, k.path.Append(key))
	if err != nil {
		return nil, err
	}
	k.consume(key)
	return nested, nil
}
