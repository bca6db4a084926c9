package tomlkit

import (
	"github.com/reoring/tomlkit/document"
)

type unkeyedDecoder struct {
	dec    *decoder
	array  *document.Array
	path   CodingPath
	cursor int
}

func newUnkeyedDecoder(owner *decoder, n document.Node, path CodingPath) (*unkeyedDecoder, error) {
	a, ok := document.AsArray(n)
	if !ok {
		return nil, TypeMismatchError(path, document.KindArray, document.KindOf(n))
	}
	return &unkeyedDecoder{dec: owner, array: a, path: path}, nil
}

func (u *unkeyedDecoder) CodingPath() CodingPath { return u.path }
func (u *unkeyedDecoder) Count() int             { return u.array.Len() }
func (u *unkeyedDecoder) IsAtEnd() bool          { return u.cursor >= u.array.Len() }
func (u *unkeyedDecoder) CurrentIndex() int      { return u.cursor }
func (u *unkeyedDecoder) DecodeNil() bool        { return false }

// current returns the element under the cursor (nil past the end) and its path.
func (u *unkeyedDecoder) current() (document.Node, CodingPath) {
	n, _ := u.array.Get(u.cursor)
	return n, u.path.AppendIndex(u.cursor)
}

func unkeyedScalar[T any](u *unkeyedDecoder, want document.Kind, as func(document.Node) (T, bool)) (T, error) {
	n, path := u.current()
	v, err := expect(n, path, want, as)
	if err == nil {
		u.cursor++
	}
	return v, err
}

func (u *unkeyedDecoder) DecodeBool() (bool, error) {
	return unkeyedScalar(u, document.KindBool, document.AsBool)
}

func (u *unkeyedDecoder) DecodeString() (string, error) {
	return unkeyedScalar(u, document.KindString, document.AsString)
}

func (u *unkeyedDecoder) DecodeFloat() (float64, error) {
	return unkeyedScalar(u, document.KindFloat, document.AsFloat)
}

func (u *unkeyedDecoder) DecodeInt() (int64, error) {
	return unkeyedScalar(u, document.KindInteger, document.AsInt)
}

func (u *unkeyedDecoder) DecodeInteger() (document.Integer, error) {
	return unkeyedScalar(u, document.KindInteger, document.AsInteger)
}

func (u *unkeyedDecoder) DecodeDate() (document.Date, error) {
	return unkeyedScalar(u, document.KindDate, document.AsDate)
}

func (u *unkeyedDecoder) DecodeTime() (document.Time, error) {
	return unkeyedScalar(u, document.KindTime, document.AsTime)
}

func (u *unkeyedDecoder) DecodeDateTime() (document.DateTime, error) {
	return unkeyedScalar(u, document.KindDateTime, document.AsDateTime)
}

func (u *unkeyedDecoder) Decode(v any) error {
	n, path := u.current()
	if n == nil {
		return TypeMismatchError(path, document.KindInvalid, document.KindInvalid)
	}
	if err := u.dec.decodeChild(n, path, v); err != nil {
		return err
	}
	u.cursor++
	return nil
}

func (u *unkeyedDecoder) NestedKeyed() (KeyedDecoder, error) {
	n, path := u.current()
	k, err := newKeyedDecoder(u.dec, n, path)
	if err != nil {
		return nil, err
	}
	u.cursor++
	return k, nil
}

func (u *unkeyedDecoder) NestedUnkeyed() (UnkeyedDecoder, error) {
	n, path := u.current()
	nested, err := newUnkeyedDecoder(u.dec, n, path)
	if err != nil {
		return nil, err
	}
	u.cursor++
	return nested, nil
}
