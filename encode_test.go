package tomlkit_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tomlkit "github.com/reoring/tomlkit"
	"github.com/reoring/tomlkit/codec"
	"github.com/reoring/tomlkit/document"
)

// manifest writes itself through the container protocol directly.
type manifest struct {
	Name  string
	Mode  int64
	Tags  []string
	Blob  []byte
	Clock document.Time
}

func (m manifest) EncodeTOML(e tomlkit.Encoder) error {
	k := e.KeyedContainer()
	k.EncodeString("name", m.Name)
	k.EncodeInteger("mode", document.Integer{Value: m.Mode, Format: document.FormatOctal})
	k.EncodeNil("ignored")
	tags := k.NestedUnkeyed("tags")
	for _, t := range m.Tags {
		tags.EncodeString(t)
	}
	meta := k.NestedKeyed("meta")
	meta.EncodeTime("clock", m.Clock)
	meta.EncodeString("user", e.UserInfo()["user"].(string))
	return k.EncodeBytes("blob", m.Blob)
}

func TestEncode_KeyedProtocol(t *testing.T) {
	m := manifest{Name: "svc", Mode: 0o644, Tags: []string{"a", "b"}, Blob: []byte("c "), Clock: document.Time{Hour: 7}}
	tbl, err := tomlkit.Encode(m, tomlkit.EncodeOpt{DataEncoder: codec.HexEncode, UserInfo: map[string]any{"user": "root"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "mode", "tags", "meta", "blob"}, tbl.Keys())
	n, _ := tbl.Get("mode")
	mode, ok := document.AsInteger(n)
	require.True(t, ok)
	assert.Equal(t, "0o644", mode.String())
	assert.False(t, tbl.Has("ignored"))

	n, _ = tbl.Get("tags")
	assert.True(t, document.Equal(document.NewArray(document.String("a"), document.String("b")), n))
	n, _ = tbl.Get("meta")
	meta, ok := document.AsTable(n)
	require.True(t, ok)
	clock, _ := meta.Get("clock")
	assert.Equal(t, document.Time{Hour: 7}, clock)
	user, _ := meta.Get("user")
	assert.Equal(t, document.String("root"), user)
	blob, _ := tbl.Get("blob")
	assert.Equal(t, document.String("6320"), blob)
}

type grid struct{ rows [][]int64 }

func (g *grid) EncodeTOML(e tomlkit.Encoder) error {
	u := e.KeyedContainer().NestedUnkeyed("rows")
	for _, r := range g.rows {
		inner := u.NestedUnkeyed()
		for _, v := range r {
			inner.EncodeInt(v)
		}
	}
	cell := u.NestedKeyed()
	cell.EncodeBool("last", true)
	if u.Count() != len(g.rows)+1 {
		return errors.New("count mismatch")
	}
	return u.Encode(3.5)
}

func TestEncode_NestedUnkeyed(t *testing.T) {
	tbl, err := tomlkit.Encode(&grid{rows: [][]int64{{1, 2}, {3}}})
	require.NoError(t, err)
	want := table("rows", document.NewArray(
		document.NewArray(document.Int(1), document.Int(2)),
		document.NewArray(document.Int(3)),
		table("last", document.Bool(true)),
		document.Float(3.5),
	))
	assert.True(t, document.Equal(want, tbl), "got %v", tbl.Keys())
}

type rootScalar struct{}

func (rootScalar) EncodeTOML(e tomlkit.Encoder) error {
	e.SingleValueContainer().EncodeInt(1)
	return nil
}

type twoKinds struct{}

func (twoKinds) EncodeTOML(e tomlkit.Encoder) error {
	e.KeyedContainer()
	e.UnkeyedContainer()
	return nil
}

// emptyKeyed opens a keyed container and writes nothing.
type emptyKeyed struct{}

func (emptyKeyed) EncodeTOML(e tomlkit.Encoder) error {
	e.KeyedContainer()
	return nil
}

type silent struct{}

func (silent) EncodeTOML(tomlkit.Encoder) error { return nil }

func TestEncode_EmptyKeyedElementKeepsItsSlot(t *testing.T) {
	tbl, err := tomlkit.Encode(map[string][]any{"l": {emptyKeyed{}, 1, 2}})
	require.NoError(t, err)

	n, _ := tbl.Get("l")
	arr, ok := document.AsArray(n)
	require.True(t, ok)
	require.Equal(t, 3, arr.Len())
	first, _ := arr.Get(0)
	sub, ok := document.AsTable(first)
	require.True(t, ok)
	assert.Zero(t, sub.Len())
	second, _ := arr.Get(1)
	assert.Equal(t, document.Int(1), second)

	_, err = tomlkit.Encode(map[string][]any{"l": {silent{}, 1}})
	var ee *tomlkit.EncodeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, tomlkit.Path("l", 0), ee.Path)
}

func TestEncode_ProgrammerErrorsPanic(t *testing.T) {
	assert.Panics(t, func() { _, _ = tomlkit.Encode(rootScalar{}) })
	assert.Panics(t, func() { _, _ = tomlkit.Encode(twoKinds{}) })
}

type sameKind struct{ same bool }

func (s *sameKind) EncodeTOML(e tomlkit.Encoder) error {
	s.same = e.KeyedContainer() == e.KeyedContainer()
	return nil
}

func TestEncode_SameContainerKindIsReused(t *testing.T) {
	s := &sameKind{}
	_, err := tomlkit.Encode(s)
	require.NoError(t, err)
	assert.True(t, s.same)
}

func TestEncode_TopLevelMustBeTable(t *testing.T) {
	_, err := tomlkit.Encode(42)
	var ee *tomlkit.EncodeError
	require.ErrorAs(t, err, &ee)

	_, err = tomlkit.Encode([]int{1})
	require.ErrorAs(t, err, &ee)

	empty, err := tomlkit.Encode(nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestEncode_ReflectiveValues(t *testing.T) {
	type inner struct {
		On bool `toml:"on"`
	}
	type outer struct {
		Name    string            `toml:"name"`
		Skip    string            `toml:"-"`
		Empty   string            `toml:"empty,omitempty"`
		Nothing *inner            `toml:"nothing"`
		Inner   inner             `toml:"inner"`
		Limits  map[string]uint16 `toml:"limits"`
		When    time.Time         `toml:"when"`
		Level   level             `toml:"level"`
		Ratio   float32           `toml:"ratio"`
		Items   [2]int            `toml:"items"`
	}
	when := time.Date(2025, 1, 1, 9, 0, 0, 0, time.FixedZone("", 9*3600))
	tbl, err := tomlkit.Encode(outer{
		Name:   "x",
		Skip:   "hidden",
		Inner:  inner{On: true},
		Limits: map[string]uint16{"mem": 512, "cpu": 2},
		When:   when,
		Level:  "info",
		Ratio:  0.25,
		Items:  [2]int{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "inner", "limits", "when", "level", "ratio", "items"}, tbl.Keys())

	n, _ := tbl.Get("limits")
	limits, _ := document.AsTable(n)
	assert.Equal(t, []string{"cpu", "mem"}, limits.Keys())

	n, _ = tbl.Get("when")
	dt, ok := document.AsDateTime(n)
	require.True(t, ok)
	assert.Equal(t, "2025-01-01T09:00:00+09:00", dt.String())

	n, _ = tbl.Get("level")
	assert.Equal(t, document.String("info"), n)
}

func TestEncode_Errors(t *testing.T) {
	_, err := tomlkit.Encode(map[string]uint64{"big": 1 << 63})
	var ee *tomlkit.EncodeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, tomlkit.Path("big"), ee.Path)

	_, err = tomlkit.Encode(map[string]any{"fn": func() {}})
	var ut *tomlkit.UnsupportedTypeError
	require.ErrorAs(t, err, &ut)
	assert.Equal(t, tomlkit.Path("fn"), ut.Path)

	_, err = tomlkit.Encode(map[string][]*server{"list": {nil}})
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, tomlkit.Path("list", 0), ee.Path)

	boom := errors.New("boom")
	_, err = tomlkit.Encode(map[string][]byte{"data": {1}}, tomlkit.EncodeOpt{
		DataEncoder: func([]byte) (document.Node, error) { return nil, boom },
	})
	require.ErrorAs(t, err, &ee)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, tomlkit.Path("data"), ee.Path)
}

func TestEncode_DocumentNodesAreCopied(t *testing.T) {
	sub := table("x", document.Int(1))
	tbl, err := tomlkit.Encode(map[string]any{"sub": sub, "n": document.Integer{Value: 10, Format: document.FormatBinary}})
	require.NoError(t, err)
	got, _ := tbl.Get("sub")
	assert.True(t, document.Equal(sub, got))
	assert.NotSame(t, sub, got)
	n, _ := tbl.Get("n")
	i, _ := document.AsInteger(n)
	assert.Equal(t, document.FormatBinary, i.Format)

	root := table("a", document.String("b"))
	top, err := tomlkit.Encode(root)
	require.NoError(t, err)
	assert.True(t, document.Equal(root, top))
}
