// Package codec provides blob conversions between byte slices and document
// nodes, plus time.Time interop for the TOML date family.
//
// Each decoder has the shape func(document.Node) ([]byte, bool) and each
// encoder func([]byte) (document.Node, error), matching tomlkit.DataDecoder
// and tomlkit.DataEncoder.
package codec

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/reoring/tomlkit/document"
)

// Base64Decode reads a standard base64 string node. It is the default blob
// decoder.
func Base64Decode(n document.Node) ([]byte, bool) {
	return decodeString(n, base64.StdEncoding.DecodeString)
}

// Base64Encode renders b as a standard base64 string node. It is the default
// blob encoder.
func Base64Encode(b []byte) (document.Node, error) {
	return document.String(base64.StdEncoding.EncodeToString(b)), nil
}

// Base64URLDecode reads an unpadded URL-safe base64 string node.
func Base64URLDecode(n document.Node) ([]byte, bool) {
	return decodeString(n, base64.RawURLEncoding.DecodeString)
}

// Base64URLEncode renders b as an unpadded URL-safe base64 string node.
func Base64URLEncode(b []byte) (document.Node, error) {
	return document.String(base64.RawURLEncoding.EncodeToString(b)), nil
}

// HexDecode reads a hexadecimal string node.
func HexDecode(n document.Node) ([]byte, bool) {
	return decodeString(n, hex.DecodeString)
}

// HexEncode renders b as a lowercase hexadecimal string node.
func HexEncode(b []byte) (document.Node, error) {
	return document.String(hex.EncodeToString(b)), nil
}

// ByteArrayDecode reads an array of integers in [0, 255].
func ByteArrayDecode(n document.Node) ([]byte, bool) {
	arr, ok := document.AsArray(n)
	if !ok {
		return nil, false
	}
	out := make([]byte, 0, arr.Len())
	for _, it := range arr.Items() {
		v, ok := document.AsInt(it)
		if !ok || v < 0 || v > 255 {
			return nil, false
		}
		out = append(out, byte(v))
	}
	return out, true
}

// ByteArrayEncode renders b as an array of integers.
func ByteArrayEncode(b []byte) (document.Node, error) {
	arr := document.NewArray()
	for _, c := range b {
		arr.Append(document.Int(int64(c)))
	}
	return arr, nil
}

func decodeString(n document.Node, dec func(string) ([]byte, error)) ([]byte, bool) {
	s, ok := document.AsString(n)
	if !ok {
		return nil, false
	}
	b, err := dec(s)
	if err != nil {
		return nil, false
	}
	return b, true
}
