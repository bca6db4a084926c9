package tomlkit

import (
	"github.com/reoring/tomlkit/document"
)

// keyedEncoder materializes its table on the first write, reusing a table
// already stored at the target.
type keyedEncoder struct {
	enc    *encoder
	target target
	path   CodingPath
	table  *document.Table
}

func (k *keyedEncoder) materialize() *document.Table {
	if k.table != nil {
		return k.table
	}
	if n, ok := k.target.load(); ok {
		if t, ok := document.AsTable(n); ok {
			k.table = t
			return t
		}
	}
	k.table = document.NewTable()
	k.target.store(k.table)
	return k.table
}

func (k *keyedEncoder) set(key string, n document.Node) { k.materialize().Set(key, n) }

func (k *keyedEncoder) CodingPath() CodingPath { return k.path }
func (k *keyedEncoder) EncodeNil(string)       {}

func (k *keyedEncoder) EncodeBool(key string, v bool)     { k.set(key, document.Bool(v)) }
func (k *keyedEncoder) EncodeString(key string, v string) { k.set(key, document.String(v)) }
func (k *keyedEncoder) EncodeFloat(key string, v float64) { k.set(key, document.Float(v)) }
func (k *keyedEncoder) EncodeInt(key string, v int64)     { k.set(key, document.Int(v)) }

func (k *keyedEncoder) EncodeInteger(key string, v document.Integer) { k.set(key, v) }
func (k *keyedEncoder) EncodeDate(key string, v document.Date)       { k.set(key, v) }
func (k *keyedEncoder) EncodeTime(key string, v document.Time)       { k.set(key, v) }

func (k *keyedEncoder) EncodeDateTime(key string, v document.DateTime) {
	k.set(key, document.Clone(v))
}

func (k *keyedEncoder) EncodeBytes(key string, b []byte) error {
	n, err := k.enc.encodeBlob(k.path.Append(key), b)
	if err != nil {
		return err
	}
	k.set(key, n)
	return nil
}

// Encode encodes v at key. Nil pointers and interfaces leave key absent.
func (k *keyedEncoder) Encode(key string, v any) error {
	if isNil(v) {
		return nil
	}
	return k.enc.encodeChild(tableTarget{table: k.materialize(), key: key}, k.path.Append(key), v)
}

func (k *keyedEncoder) NestedKeyed(key string) KeyedEncoder {
	t := document.NewTable()
	k.set(key, t)
	return &keyedEncoder{enc: k.enc, target: tableTarget{table: k.table, key: key}, path: k.path.Append(key), table: t}
}

func (k *keyedEncoder) NestedUnkeyed(key string) UnkeyedEncoder {
	return newUnkeyedEncoder(k.enc, tableTarget{table: k.materialize(), key: key}, k.path.Append(key))
}
