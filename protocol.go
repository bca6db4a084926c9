package tomlkit

import "github.com/reoring/tomlkit/document"

// Decodable is implemented by types that decode themselves from a Decoder.
// Implementations request exactly one container kind from d.
type Decodable interface {
	DecodeTOML(d Decoder) error
}

// Encodable is implemented by types that encode themselves into an Encoder.
type Encodable interface {
	EncodeTOML(e Encoder) error
}

// Decoder gives a Decodable access to the node it is decoding.
//
// Requesting a container kind different from one already produced by the
// same Decoder panics; requesting the same kind again returns the same
// container.
type Decoder interface {
	CodingPath() CodingPath
	UserInfo() map[string]any
	KeyedContainer() (KeyedDecoder, error)
	UnkeyedContainer() (UnkeyedDecoder, error)
	SingleValueContainer() (SingleValueDecoder, error)
}

// KeyedDecoder reads named fields from a table.
type KeyedDecoder interface {
	CodingPath() CodingPath
	AllKeys() []string
	// Contains reports whether the table has key, whether or not it was
	// decoded already.
	Contains(key string) bool
	// DecodeNil reports whether key is absent. TOML has no null.
	DecodeNil(key string) bool

	DecodeBool(key string) (bool, error)
	DecodeString(key string) (string, error)
	DecodeFloat(key string) (float64, error)
	DecodeInt(key string) (int64, error)
	DecodeInteger(key string) (document.Integer, error)
	DecodeDate(key string) (document.Date, error)
	DecodeTime(key string) (document.Time, error)
	DecodeDateTime(key string) (document.DateTime, error)

	// Decode decodes the value at key into v, which must be a non-nil pointer.
	Decode(key string, v any) error
	// DecodeIfPresent is Decode for optional keys: an absent key reports
	// (false, nil) and leaves v untouched.
	DecodeIfPresent(key string, v any) (bool, error)

	NestedKeyed(key string) (KeyedDecoder, error)
	NestedUnkeyed(key string) (UnkeyedDecoder, error)
}

// UnkeyedDecoder reads array elements through a cursor. A failed decode never
// moves the cursor.
type UnkeyedDecoder interface {
	CodingPath() CodingPath
	Count() int
	IsAtEnd() bool
	CurrentIndex() int
	// DecodeNil is always false: TOML arrays cannot hold null.
	DecodeNil() bool

	DecodeBool() (bool, error)
	DecodeString() (string, error)
	DecodeFloat() (float64, error)
	DecodeInt() (int64, error)
	DecodeInteger() (document.Integer, error)
	DecodeDate() (document.Date, error)
	DecodeTime() (document.Time, error)
	DecodeDateTime() (document.DateTime, error)

	Decode(v any) error
	NestedKeyed() (KeyedDecoder, error)
	NestedUnkeyed() (UnkeyedDecoder, error)
}

// SingleValueDecoder reads the current node as a whole.
type SingleValueDecoder interface {
	CodingPath() CodingPath
	// DecodeNil is always false: TOML has no null.
	DecodeNil() bool

	DecodeBool() (bool, error)
	DecodeString() (string, error)
	DecodeFloat() (float64, error)
	DecodeInt() (int64, error)
	DecodeInteger() (document.Integer, error)
	DecodeDate() (document.Date, error)
	DecodeTime() (document.Time, error)
	DecodeDateTime() (document.DateTime, error)

	Decode(v any) error
}

// Encoder gives an Encodable a place in the document to write to. The same
// container rules as Decoder apply.
type Encoder interface {
	CodingPath() CodingPath
	UserInfo() map[string]any
	KeyedContainer() KeyedEncoder
	UnkeyedContainer() UnkeyedEncoder
	SingleValueContainer() SingleValueEncoder
}

// KeyedEncoder writes named fields into a table. Scalar writes cannot fail.
type KeyedEncoder interface {
	CodingPath() CodingPath
	// EncodeNil is a no-op: TOML has no null, absent keys stand for it.
	EncodeNil(key string)

	EncodeBool(key string, v bool)
	EncodeString(key string, v string)
	EncodeFloat(key string, v float64)
	EncodeInt(key string, v int64)
	EncodeInteger(key string, v document.Integer)
	EncodeDate(key string, v document.Date)
	EncodeTime(key string, v document.Time)
	EncodeDateTime(key string, v document.DateTime)
	EncodeBytes(key string, b []byte) error

	Encode(key string, v any) error
	NestedKeyed(key string) KeyedEncoder
	NestedUnkeyed(key string) UnkeyedEncoder
}

// UnkeyedEncoder appends elements to an array.
type UnkeyedEncoder interface {
	CodingPath() CodingPath
	Count() int

	EncodeBool(v bool)
	EncodeString(v string)
	EncodeFloat(v float64)
	EncodeInt(v int64)
	EncodeInteger(v document.Integer)
	EncodeDate(v document.Date)
	EncodeTime(v document.Time)
	EncodeDateTime(v document.DateTime)
	EncodeBytes(b []byte) error

	Encode(v any) error
	NestedKeyed() KeyedEncoder
	NestedUnkeyed() UnkeyedEncoder
}

// SingleValueEncoder writes one value at the encoder's target.
type SingleValueEncoder interface {
	CodingPath() CodingPath

	EncodeBool(v bool)
	EncodeString(v string)
	EncodeFloat(v float64)
	EncodeInt(v int64)
	EncodeInteger(v document.Integer)
	EncodeDate(v document.Date)
	EncodeTime(v document.Time)
	EncodeDateTime(v document.DateTime)
	EncodeBytes(b []byte) error

	Encode(v any) error
}
