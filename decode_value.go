package tomlkit

import (
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/reoring/tomlkit/codec"
	"github.com/reoring/tomlkit/document"
)

// decodeValue is the generic dispatch behind every container Decode call.
// v must be a non-nil pointer.
func (d *decoder) decodeValue(v any) error {
	rv := reflect.ValueOf(v)
	if v == nil || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &InvalidDecodeError{Type: reflect.TypeOf(v)}
	}
	if dv, ok := v.(Decodable); ok {
		return dv.DecodeTOML(d)
	}

	switch p := v.(type) {
	case *document.Node:
		*p = document.Clone(d.node)
		return nil
	case *document.Table:
		t, err := expect(d.node, d.path, document.KindTable, document.AsTable)
		if err != nil {
			return err
		}
		*p = *document.Clone(t).(*document.Table)
		return nil
	case *document.Array:
		a, err := expect(d.node, d.path, document.KindArray, document.AsArray)
		if err != nil {
			return err
		}
		*p = *document.Clone(a).(*document.Array)
		return nil
	case *[]byte:
		return d.decodeBlob(d.node, d.path, p)
	case *any:
		*p = document.ToNative(d.node)
		return nil
	}

	if handled, err := d.decodeScalar(v); handled {
		return err
	}
	return d.decodeReflect(rv.Elem())
}

// decodeScalar handles the struct-shaped scalar types that reflection would
// otherwise treat as tables.
func (d *decoder) decodeScalar(v any) (bool, error) {
	var err error
	switch p := v.(type) {
	case *document.Integer:
		*p, err = d.singleValue().DecodeInteger()
	case *document.Date:
		*p, err = d.singleValue().DecodeDate()
	case *document.Time:
		*p, err = d.singleValue().DecodeTime()
	case *document.DateTime:
		*p, err = d.singleValue().DecodeDateTime()
	case *time.Time:
		d.singleValue()
		t, ok := codec.TimeFromNode(d.node)
		if !ok {
			return true, TypeMismatchError(d.path, document.KindDateTime, document.KindOf(d.node))
		}
		*p = t
	default:
		return false, nil
	}
	return true, err
}

func (d *decoder) singleValue() SingleValueDecoder {
	s, _ := d.SingleValueContainer()
	return s
}

func (d *decoder) decodeReflect(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return d.decodeValue(rv.Interface())
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return d.decodeKind(rv)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			var b []byte
			if err := d.decodeBlob(d.node, d.path, &b); err != nil {
				return err
			}
			rv.SetBytes(b)
			return nil
		}
		return d.decodeSlice(rv)
	case reflect.Array:
		return d.decodeArray(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return d.decodeMap(rv)
		}
	case reflect.Struct:
		return d.decodeStruct(rv)
	}
	Logger().Debug("unsupported decode type",
		zap.String("type", rv.Type().String()),
		zap.String("path", d.path.Pointer()))
	return &UnsupportedTypeError{Type: rv.Type(), Path: d.path}
}

// decodeKind decodes scalars by reflect kind, so named types such as
// `type Level string` work like their underlying type.
func (d *decoder) decodeKind(rv reflect.Value) error {
	s := d.singleValue()
	switch rv.Kind() {
	case reflect.Bool:
		b, err := s.DecodeBool()
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.String:
		str, err := s.DecodeString()
		if err != nil {
			return err
		}
		rv.SetString(str)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := s.DecodeInt()
		if err != nil {
			return err
		}
		if rv.OverflowInt(i) {
			return DataCorruptedError(d.path, fmt.Sprintf("%d overflows %s", i, rv.Type()))
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := s.DecodeInt()
		if err != nil {
			return err
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return DataCorruptedError(d.path, fmt.Sprintf("%d overflows %s", i, rv.Type()))
		}
		rv.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		f, err := s.DecodeFloat()
		if err != nil {
			return err
		}
		if rv.OverflowFloat(f) {
			return DataCorruptedError(d.path, fmt.Sprintf("%g overflows %s", f, rv.Type()))
		}
		rv.SetFloat(f)
	}
	return nil
}

func (d *decoder) decodeSlice(rv reflect.Value) error {
	u, err := d.UnkeyedContainer()
	if err != nil {
		return err
	}
	out := reflect.MakeSlice(rv.Type(), 0, u.Count())
	for !u.IsAtEnd() {
		elem := reflect.New(rv.Type().Elem())
		if err := u.Decode(elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	rv.Set(out)
	return nil
}

func (d *decoder) decodeArray(rv reflect.Value) error {
	u, err := d.UnkeyedContainer()
	if err != nil {
		return err
	}
	if u.Count() > rv.Len() {
		return DataCorruptedError(d.path, fmt.Sprintf("%d elements do not fit %s", u.Count(), rv.Type()))
	}
	for i := 0; i < rv.Len(); i++ {
		if u.IsAtEnd() {
			rv.Index(i).SetZero()
			continue
		}
		if err := u.Decode(rv.Index(i).Addr().Interface()); err != nil {
			return err
		}
	}
	return nil
}

// decodeMap decodes every key of the table, so nothing under a map is ever
// reported by strict decoding.
func (d *decoder) decodeMap(rv reflect.Value) error {
	k, err := d.KeyedContainer()
	if err != nil {
		return err
	}
	t := rv.Type()
	keys := k.AllKeys()
	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(t, len(keys)))
	}
	for _, key := range keys {
		elem := reflect.New(t.Elem())
		if err := k.Decode(key, elem.Interface()); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(key).Convert(t.Key()), elem.Elem())
	}
	return nil
}

func (d *decoder) decodeStruct(rv reflect.Value) error {
	k, err := d.KeyedContainer()
	if err != nil {
		return err
	}
	for _, f := range structFields(rv.Type()) {
		ptr := rv.FieldByIndex(f.index).Addr().Interface()
		if f.optional {
			if _, err := k.DecodeIfPresent(f.name, ptr); err != nil {
				return err
			}
			continue
		}
		if err := k.Decode(f.name, ptr); err != nil {
			return err
		}
	}
	return nil
}
