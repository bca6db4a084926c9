package tomlkit

import (
	"errors"

	"github.com/reoring/tomlkit/document"
)

// unkeyedEncoder stores an empty array at its target on creation and writes
// each element at the cursor.
type unkeyedEncoder struct {
	enc    *encoder
	path   CodingPath
	array  *document.Array
	cursor int
}

func newUnkeyedEncoder(owner *encoder, t target, path CodingPath) *unkeyedEncoder {
	a := document.NewArray()
	t.store(a)
	return &unkeyedEncoder{enc: owner, path: path, array: a}
}

func (u *unkeyedEncoder) CodingPath() CodingPath { return u.path }
func (u *unkeyedEncoder) Count() int             { return u.array.Len() }

func (u *unkeyedEncoder) slot() indexTarget { return indexTarget{array: u.array, index: u.cursor} }

func (u *unkeyedEncoder) push(n document.Node) {
	u.slot().store(n)
	u.cursor++
}

func (u *unkeyedEncoder) EncodeBool(v bool)     { u.push(document.Bool(v)) }
func (u *unkeyedEncoder) EncodeString(v string) { u.push(document.String(v)) }
func (u *unkeyedEncoder) EncodeFloat(v float64) { u.push(document.Float(v)) }
func (u *unkeyedEncoder) EncodeInt(v int64)     { u.push(document.Int(v)) }

func (u *unkeyedEncoder) EncodeInteger(v document.Integer)   { u.push(v) }
func (u *unkeyedEncoder) EncodeDate(v document.Date)         { u.push(v) }
func (u *unkeyedEncoder) EncodeTime(v document.Time)         { u.push(v) }
func (u *unkeyedEncoder) EncodeDateTime(v document.DateTime) { u.push(document.Clone(v)) }

func (u *unkeyedEncoder) EncodeBytes(b []byte) error {
	n, err := u.enc.encodeBlob(u.path.AppendIndex(u.cursor), b)
	if err != nil {
		return err
	}
	u.push(n)
	return nil
}

// Encode appends v. TOML arrays cannot hold null, so nil is an error.
func (u *unkeyedEncoder) Encode(v any) error {
	path := u.path.AppendIndex(u.cursor)
	if isNil(v) {
		return encodeFailed(path, errors.New("nil array element"))
	}
	if err := u.enc.encodeChild(u.slot(), path, v); err != nil {
		return err
	}
	if u.array.Len() <= u.cursor {
		return encodeFailed(path, errors.New("array element encoded no value"))
	}
	u.cursor++
	return nil
}

func (u *unkeyedEncoder) NestedKeyed() KeyedEncoder {
	t := document.NewTable()
	slot := u.slot()
	u.push(t)
	return &keyedEncoder{enc: u.enc, target: slot, path: u.path.AppendIndex(slot.index), table: t}
}

func (u *unkeyedEncoder) NestedUnkeyed() UnkeyedEncoder {
	slot := u.slot()
	nested := newUnkeyedEncoder(u.enc, slot, u.path.AppendIndex(slot.index))
	u.cursor++
	return nested
}
