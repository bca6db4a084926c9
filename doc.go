// Package tomlkit provides:
//
// - Conversion between Go values and TOML document trees (package document) through an explicit keyed/unkeyed/single-value container protocol
// - Strict decoding that reports every document key no destination consumed, with full coding paths
// - A stable error model (KeyNotFound, TypeMismatch, DataCorrupted, UnexpectedKeys) usable from custom Decodable implementations
// - Reflection-based conformances for structs, slices, arrays, string-keyed maps and pointers driven by `toml` tags
//
// Design policy:
// - Keep only public APIs in the root package; document tree types live in document/, blob and time conversions in codec/.
// - Parsing and printing TOML text is out of scope: callers bring a document tree from any parser.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	cfg, err := tomlkit.Decode[Config](doc, tomlkit.DecodeOpt{Strict: true})
//	out, err := tomlkit.Encode(cfg)
//
// Custom types implement Decodable and Encodable:
//
//	func (p *Point) DecodeTOML(d tomlkit.Decoder) error {
//		k, err := d.KeyedContainer()
//		if err != nil {
//			return err
//		}
//		if p.X, err = k.DecodeInt("x"); err != nil {
//			return err
//		}
//		p.Y, err = k.DecodeInt("y")
//		return err
//	}
package tomlkit
