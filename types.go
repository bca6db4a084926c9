package tomlkit

import (
	"github.com/reoring/tomlkit/codec"
	"github.com/reoring/tomlkit/document"
)

// DataDecoder reconstructs a byte blob from a document node. It reports
// false when the node does not hold a valid blob.
type DataDecoder func(n document.Node) ([]byte, bool)

// DataEncoder renders a byte blob as a document node.
type DataEncoder func(b []byte) (document.Node, error)

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	// Strict rejects documents with keys that no destination consumed.
	Strict bool
	// DataDecoder converts blob scalars; nil means standard base64 strings.
	DataDecoder DataDecoder
	// UserInfo is exposed to Decodable implementations via Decoder.UserInfo.
	UserInfo map[string]any
}

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	// DataEncoder converts blobs; nil means standard base64 strings.
	DataEncoder DataEncoder
	// UserInfo is exposed to Encodable implementations via Encoder.UserInfo.
	UserInfo map[string]any
}

func normalizeDecodeOpt(opts []DecodeOpt) *DecodeOpt {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.DataDecoder == nil {
		opt.DataDecoder = codec.Base64Decode
	}
	if opt.UserInfo == nil {
		opt.UserInfo = map[string]any{}
	}
	return &opt
}

func normalizeEncodeOpt(opts []EncodeOpt) *EncodeOpt {
	var opt EncodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.DataEncoder == nil {
		opt.DataEncoder = codec.Base64Encode
	}
	if opt.UserInfo == nil {
		opt.UserInfo = map[string]any{}
	}
	return &opt
}
