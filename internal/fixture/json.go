package fixture

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	"github.com/reoring/tomlkit/document"
)

// LoadJSON decodes a JSON object from r, keeping key order. Numbers are read
// as json.Number.
func LoadJSON(r io.Reader) (*document.Table, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	n, err := readJSON(dec)
	if err != nil {
		return nil, err
	}
	t, ok := document.AsTable(n)
	if !ok {
		return nil, fmt.Errorf("fixture: top level is %s, want table", document.KindOf(n))
	}
	return t, nil
}

func readJSON(dec *j.Decoder) (document.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		}
		return nil, fmt.Errorf("fixture: unexpected delimiter %q", rune(v))
	case string:
		return document.String(v), nil
	case bool:
		return document.Bool(v), nil
	case j.Number:
		return jsonNumber(v)
	case nil:
		return nil, errors.New("fixture: null has no TOML representation")
	default:
		return nil, fmt.Errorf("fixture: unexpected token %T", tok)
	}
}

func readObject(dec *j.Decoder) (document.Node, error) {
	t := document.NewTable()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("fixture: object key is %T", tok)
		}
		if t.Has(key) {
			return nil, fmt.Errorf("fixture: duplicate JSON key %q", key)
		}
		v, err := readJSON(dec)
		if err != nil {
			return nil, err
		}
		t.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // '}'
		return nil, err
	}
	return t, nil
}

func readArray(dec *j.Decoder) (document.Node, error) {
	a := document.NewArray()
	for dec.More() {
		v, err := readJSON(dec)
		if err != nil {
			return nil, err
		}
		a.Append(v)
	}
	if _, err := dec.Token(); err != nil { // ']'
		return nil, err
	}
	return a, nil
}

func jsonNumber(n j.Number) (document.Node, error) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("fixture: number %s: %w", s, err)
		}
		return document.Float(f), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("fixture: number %s: %w", s, err)
	}
	return document.Int(i), nil
}
