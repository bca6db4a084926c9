// Package fixture loads YAML and JSON test fixtures into document trees, so
// tests can describe TOML documents without a TOML parser.
//
// YAML scalars map by resolved tag: !!int keeps its radix prefix as the
// integer format, !!timestamp becomes a date or date-time, and the custom
// !time and !datetime tags mark a local time and a T-separated local
// date-time. JSON numbers with a fraction or exponent
// become floats, all others integers. Nulls are rejected.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reoring/tomlkit/document"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// Load reads a .yaml, .yml or .json fixture file.
func Load(path string) (*document.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	default:
		return nil, fmt.Errorf("fixture: unsupported extension %q", filepath.Ext(path))
	}
}

// LoadYAML decodes the first YAML document of r. The top level must be a
// mapping.
func LoadYAML(r io.Reader) (*document.Table, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return document.NewTable(), nil
		}
		return nil, err
	}
	n, err := fromYAML(&root)
	if err != nil {
		return nil, err
	}
	t, ok := document.AsTable(n)
	if !ok {
		return nil, fmt.Errorf("fixture: top level is %s, want table", document.KindOf(n))
	}
	return t, nil
}

func fromYAML(n *yaml.Node) (document.Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return document.NewTable(), nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.MappingNode:
		t := document.NewTable()
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if pos, dup := first[k.Value]; dup {
				return nil, &DuplicateKeyError{Key: k.Value, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[k.Value] = [2]int{k.Line, k.Column}
			val, err := fromYAML(v)
			if err != nil {
				return nil, err
			}
			t.Set(k.Value, val)
		}
		if n.Style&yaml.FlowStyle != 0 {
			t.Inline = true
		}
		return t, nil
	case yaml.SequenceNode:
		a := document.NewArray()
		for _, c := range n.Content {
			v, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			a.Append(v)
		}
		return a, nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	default:
		return nil, fmt.Errorf("fixture: unsupported YAML node at %d:%d", n.Line, n.Column)
	}
}

func yamlScalar(n *yaml.Node) (document.Node, error) {
	switch n.ShortTag() {
	case "!!str", "!":
		return document.String(n.Value), nil
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(n.Value))
		if err != nil {
			return nil, scalarErr(n, err)
		}
		return document.Bool(b), nil
	case "!!int":
		i, err := document.ParseInteger(n.Value)
		if err != nil {
			return nil, scalarErr(n, err)
		}
		return i, nil
	case "!!float":
		f, err := parseYAMLFloat(n.Value)
		if err != nil {
			return nil, scalarErr(n, err)
		}
		return document.Float(f), nil
	case "!!timestamp", "!datetime":
		return parseTimestamp(n)
	case "!time":
		t, err := time.Parse("15:04:05.999999999", n.Value)
		if err != nil {
			return nil, scalarErr(n, err)
		}
		return document.TimeOf(t), nil
	case "!!null":
		return nil, fmt.Errorf("fixture: null at %d:%d has no TOML representation", n.Line, n.Column)
	default:
		return nil, fmt.Errorf("fixture: unsupported tag %s at %d:%d", n.Tag, n.Line, n.Column)
	}
}

func parseYAMLFloat(s string) (float64, error) {
	switch strings.ToLower(s) {
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
}

// localDateTimes are the zone-less layouts. yaml.v3 resolves only the
// space-separated one as !!timestamp; the T form needs an explicit !datetime.
var localDateTimes = []string{"2006-01-02 15:04:05.999999999", "2006-01-02T15:04:05.999999999"}

func parseTimestamp(n *yaml.Node) (document.Node, error) {
	s := n.Value
	if len(s) == len("2006-01-02") {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, scalarErr(n, err)
		}
		return document.DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return document.DateTimeOf(t), nil
	}
	var err error
	for _, layout := range localDateTimes {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return document.DateTime{Date: document.DateOf(t), Time: document.TimeOf(t)}, nil
		}
	}
	return nil, scalarErr(n, err)
}

func scalarErr(n *yaml.Node, err error) error {
	return fmt.Errorf("fixture: %s %q at %d:%d: %w", n.Tag, n.Value, n.Line, n.Column, err)
}
