package tomlkit

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/reoring/tomlkit/codec"
	"github.com/reoring/tomlkit/document"
)

var encodableType = reflect.TypeOf((*Encodable)(nil)).Elem()

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		return rv.IsNil()
	}
	return false
}

// encodeValue is the generic dispatch behind every container Encode call.
func (e *encoder) encodeValue(v any) error {
	if isNil(v) {
		return nil
	}
	if ev, ok := asEncodable(v); ok {
		return ev.EncodeTOML(e)
	}

	switch x := v.(type) {
	case *document.Table:
		e.target.store(document.Clone(x))
		return nil
	case *document.Array:
		e.target.store(document.Clone(x))
		return nil
	case document.Node:
		e.singleEncoder().store(document.Clone(x))
		return nil
	case []byte:
		return e.singleEncoder().EncodeBytes(x)
	case time.Time:
		e.singleEncoder().store(codec.TimeToNode(x))
		return nil
	}
	return e.encodeReflect(reflect.ValueOf(v))
}

// asEncodable also finds EncodeTOML methods declared on *T when v is a T.
func asEncodable(v any) (Encodable, bool) {
	if ev, ok := v.(Encodable); ok {
		return ev, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer || !reflect.PointerTo(rv.Type()).Implements(encodableType) {
		return nil, false
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.Interface().(Encodable), true
}

func (e *encoder) encodeReflect(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return e.encodeValue(rv.Elem().Interface())
	case reflect.Bool:
		e.singleEncoder().EncodeBool(rv.Bool())
		return nil
	case reflect.String:
		e.singleEncoder().EncodeString(rv.String())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.singleEncoder().EncodeInt(rv.Int())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return encodeFailed(e.path, fmt.Errorf("%d overflows a TOML integer", u))
		}
		e.singleEncoder().EncodeInt(int64(u))
		return nil
	case reflect.Float32, reflect.Float64:
		e.singleEncoder().EncodeFloat(rv.Float())
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return e.singleEncoder().EncodeBytes(rv.Bytes())
		}
		return e.encodeSequence(rv)
	case reflect.Array:
		return e.encodeSequence(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return e.encodeMap(rv)
		}
	case reflect.Struct:
		return e.encodeStruct(rv)
	}
	Logger().Debug("unsupported encode type",
		zap.String("type", rv.Type().String()),
		zap.String("path", e.path.Pointer()))
	return &UnsupportedTypeError{Type: rv.Type(), Path: e.path}
}

func (e *encoder) encodeSequence(rv reflect.Value) error {
	u := e.UnkeyedContainer()
	for i := 0; i < rv.Len(); i++ {
		if err := u.Encode(rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

// encodeMap writes keys in sorted order so output is deterministic.
func (e *encoder) encodeMap(rv reflect.Value) error {
	k := e.keyedEncoder()
	k.materialize()
	keys := make([]string, 0, rv.Len())
	for _, mk := range rv.MapKeys() {
		keys = append(keys, mk.String())
	}
	sort.Strings(keys)
	for _, key := range keys {
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if err := k.Encode(key, mv.Interface()); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encodeStruct(rv reflect.Value) error {
	k := e.keyedEncoder()
	k.materialize()
	for _, f := range structFields(rv.Type()) {
		fv := rv.FieldByIndex(f.index)
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		if err := k.Encode(f.name, fv.Interface()); err != nil {
			return err
		}
	}
	return nil
}
