package tomlkit

import (
	"github.com/reoring/tomlkit/document"
)

// singleDecoder reads its owner's node. It never tracks keys: a table reached
// through a single-value Decode gets a child decoder of its own.
type singleDecoder struct {
	dec *decoder
}

func (s *singleDecoder) CodingPath() CodingPath { return s.dec.path }
func (s *singleDecoder) DecodeNil() bool        { return false }

func singleScalar[T any](s *singleDecoder, want document.Kind, as func(document.Node) (T, bool)) (T, error) {
	return expect(s.dec.node, s.dec.path, want, as)
}

func (s *singleDecoder) DecodeBool() (bool, error) {
	return singleScalar(s, document.KindBool, document.AsBool)
}

func (s *singleDecoder) DecodeString() (string, error) {
	return singleScalar(s, document.KindString, document.AsString)
}

func (s *singleDecoder) DecodeFloat() (float64, error) {
	return singleScalar(s, document.KindFloat, document.AsFloat)
}

func (s *singleDecoder) DecodeInt() (int64, error) {
	return singleScalar(s, document.KindInteger, document.AsInt)
}

func (s *singleDecoder) DecodeInteger() (document.Integer, error) {
	return singleScalar(s, document.KindInteger, document.AsInteger)
}

func (s *singleDecoder) DecodeDate() (document.Date, error) {
	return singleScalar(s, document.KindDate, document.AsDate)
}

func (s *singleDecoder) DecodeTime() (document.Time, error) {
	return singleScalar(s, document.KindTime, document.AsTime)
}

func (s *singleDecoder) DecodeDateTime() (document.DateTime, error) {
	return singleScalar(s, document.KindDateTime, document.AsDateTime)
}

func (s *singleDecoder) Decode(v any) error {
	if p, ok := v.(*[]byte); ok && p != nil {
		return s.dec.decodeBlob(s.dec.node, s.dec.path, p)
	}
	return s.dec.decodeChild(s.dec.node, s.dec.path, v)
}
