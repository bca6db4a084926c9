package tomlkit

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/reoring/tomlkit/document"
	"github.com/reoring/tomlkit/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeKeyNotFound     = "key_not_found"
	CodeTypeMismatch    = "type_mismatch"
	CodeDataCorrupted   = "data_corrupted"
	CodeUnexpectedKeys  = "unexpected_keys"
	CodeEncodeFailed    = "encode_failed"
	CodeUnsupportedType = "unsupported_type"
)

// Sentinels for errors.Is.
var (
	ErrKeyNotFound    = errors.New("tomlkit: key not found")
	ErrTypeMismatch   = errors.New("tomlkit: type mismatch")
	ErrDataCorrupted  = errors.New("tomlkit: data corrupted")
	ErrUnexpectedKeys = errors.New("tomlkit: unexpected keys")
)

// DecodeError is a structural decode failure at Path.
type DecodeError struct {
	Code string     // CodeKeyNotFound, CodeTypeMismatch or CodeDataCorrupted.
	Path CodingPath // Full path of the offending node (including Key for KeyNotFound).
	Key  string     // Missing key (KeyNotFound only).
	// Expected and Found describe a TypeMismatch. Found is KindInvalid when
	// there was no node at all (e.g. the cursor ran past the array end).
	Expected document.Kind
	Found    document.Kind
	Message  string
	Cause    error // Optional: underlying error.
}

func (e *DecodeError) Error() string {
	at := e.Path.String()
	if at == "" {
		at = "<root>"
	}
	return fmt.Sprintf("tomlkit: %s at %s: %s", e.Code, at, e.Message)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// Is matches the sentinel for e's code.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrKeyNotFound:
		return e.Code == CodeKeyNotFound
	case ErrTypeMismatch:
		return e.Code == CodeTypeMismatch
	case ErrDataCorrupted:
		return e.Code == CodeDataCorrupted
	}
	return false
}

// KeyNotFoundError reports that key is missing from the table at path.
func KeyNotFoundError(path CodingPath, key string) *DecodeError {
	return &DecodeError{
		Code:    CodeKeyNotFound,
		Path:    path.Append(key),
		Key:     key,
		Message: i18n.T(CodeKeyNotFound, map[string]string{"key": strconv.Quote(key)}),
	}
}

// TypeMismatchError reports that the node at path is not of the expected kind.
func TypeMismatchError(path CodingPath, expected, found document.Kind) *DecodeError {
	exp := expected.String()
	if expected == document.KindInvalid {
		exp = "a value"
	}
	return &DecodeError{
		Code:     CodeTypeMismatch,
		Path:     path,
		Expected: expected,
		Found:    found,
		Message:  i18n.T(CodeTypeMismatch, map[string]string{"expected": exp, "found": found.String()}),
	}
}

// DataCorruptedError reports a node of the right kind whose content could not
// be converted, e.g. an undecodable blob or an integer overflowing its target.
func DataCorruptedError(path CodingPath, detail string) *DecodeError {
	return &DecodeError{
		Code:    CodeDataCorrupted,
		Path:    path,
		Message: i18n.T(CodeDataCorrupted, map[string]string{"detail": detail}),
	}
}

// AsDecodeError extracts a *DecodeError from err using errors.As internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// UnexpectedKey is a document key that no destination consumed.
type UnexpectedKey struct {
	Key  string
	Path CodingPath // Full path, ending with Key.
}

// UnexpectedKeysError is returned by strict decoding when the document holds
// keys no field consumed. Keys is sorted by path.
type UnexpectedKeysError struct {
	Keys []UnexpectedKey
}

// Error summarizes the first few keys.
func (e *UnexpectedKeysError) Error() string {
	const maxShown = 3
	b := &strings.Builder{}
	n := len(e.Keys)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Keys[i].Path.String())
	}
	if n > lim {
		fmt.Fprintf(b, ", ... (total %d)", n)
	}
	return "tomlkit: " + i18n.T(CodeUnexpectedKeys, map[string]string{"keys": b.String()})
}

func (e *UnexpectedKeysError) Is(target error) bool { return target == ErrUnexpectedKeys }

// ByKey groups the unexpected paths by key name.
func (e *UnexpectedKeysError) ByKey() map[string][]CodingPath {
	out := make(map[string][]CodingPath, len(e.Keys))
	for _, k := range e.Keys {
		out[k.Key] = append(out[k.Key], k.Path)
	}
	return out
}

// EncodeError is returned when a value could not be encoded at Path.
type EncodeError struct {
	Path    CodingPath
	Message string
	Cause   error
}

func (e *EncodeError) Error() string {
	at := e.Path.String()
	if at == "" {
		at = "<root>"
	}
	return fmt.Sprintf("tomlkit: %s at %s: %s", CodeEncodeFailed, at, e.Message)
}

func (e *EncodeError) Unwrap() error { return e.Cause }

func encodeFailed(path CodingPath, cause error) *EncodeError {
	return &EncodeError{
		Path:    path,
		Message: i18n.T(CodeEncodeFailed, map[string]string{"detail": cause.Error()}),
		Cause:   cause,
	}
}

// UnsupportedTypeError is returned for Go types that have no TOML mapping.
type UnsupportedTypeError struct {
	Type reflect.Type
	Path CodingPath
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("tomlkit: %s at %s", i18n.T(CodeUnsupportedType, map[string]string{"type": e.Type.String()}), e.Path.Pointer())
}

// InvalidDecodeError describes an invalid argument passed to DecodeInto or to
// a container's Decode method: the target must be a non-nil pointer.
type InvalidDecodeError struct {
	Type reflect.Type
}

func (e *InvalidDecodeError) Error() string {
	if e.Type == nil {
		return "tomlkit: decode target is nil"
	}
	if e.Type.Kind() != reflect.Pointer {
		return "tomlkit: decode target is not a pointer: " + e.Type.String()
	}
	return "tomlkit: decode target is a nil " + e.Type.String()
}

func sortUnexpected(keys []UnexpectedKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Path.Pointer() < keys[j].Path.Pointer() })
}
