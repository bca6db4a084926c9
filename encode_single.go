package tomlkit

import (
	"github.com/reoring/tomlkit/document"
)

// singleEncoder writes directly to its owner's target. Storing a scalar on
// the root target panics.
type singleEncoder struct {
	enc *encoder
}

func (s *singleEncoder) store(n document.Node) { s.enc.target.store(n) }

func (s *singleEncoder) CodingPath() CodingPath { return s.enc.path }

func (s *singleEncoder) EncodeBool(v bool)     { s.store(document.Bool(v)) }
func (s *singleEncoder) EncodeString(v string) { s.store(document.String(v)) }
func (s *singleEncoder) EncodeFloat(v float64) { s.store(document.Float(v)) }
func (s *singleEncoder) EncodeInt(v int64)     { s.store(document.Int(v)) }

func (s *singleEncoder) EncodeInteger(v document.Integer)   { s.store(v) }
func (s *singleEncoder) EncodeDate(v document.Date)         { s.store(v) }
func (s *singleEncoder) EncodeTime(v document.Time)         { s.store(v) }
func (s *singleEncoder) EncodeDateTime(v document.DateTime) { s.store(document.Clone(v)) }

func (s *singleEncoder) EncodeBytes(b []byte) error {
	n, err := s.enc.encodeBlob(s.enc.path, b)
	if err != nil {
		return err
	}
	s.store(n)
	return nil
}

// Encode re-targets a child encoder at the same slot.
func (s *singleEncoder) Encode(v any) error {
	if isNil(v) {
		return nil
	}
	return s.enc.encodeChild(s.enc.target, s.enc.path, v)
}
