package fixture_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/reoring/tomlkit/document"
	"github.com/reoring/tomlkit/internal/fixture"
)

func TestLoadYAML_ScalarTags(t *testing.T) {
	tbl, err := fixture.Load("testdata/sample.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"title", "hex", "oct", "bin", "dec", "pi", "inf", "on", "day", "at", "local", "clock", "point", "list"}
	if got := tbl.Keys(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("key order: %v", got)
	}

	formats := map[string]document.Integer{
		"hex": {Value: 31, Format: document.FormatHexadecimal},
		"oct": {Value: 15, Format: document.FormatOctal},
		"bin": {Value: 5, Format: document.FormatBinary},
		"dec": {Value: 42, Format: document.FormatDecimal},
	}
	for key, want := range formats {
		n, _ := tbl.Get(key)
		got, ok := document.AsInteger(n)
		if !ok || got != want {
			t.Fatalf("%s: got %#v", key, n)
		}
	}

	if n, _ := tbl.Get("inf"); !isInf(n) {
		t.Fatalf("inf: got %#v", n)
	}
	if n, _ := tbl.Get("day"); n != (document.Date{Year: 2021, Month: 5, Day: 20}) {
		t.Fatalf("day: got %#v", n)
	}
	n, _ := tbl.Get("at")
	at, ok := document.AsDateTime(n)
	if !ok || at.Offset == nil || at.Offset.Minutes != 0 || at.Time.Nanosecond != 294 {
		t.Fatalf("at: got %#v", n)
	}
	n, _ = tbl.Get("local")
	if local, ok := document.AsDateTime(n); !ok || local.Offset != nil {
		t.Fatalf("local: got %#v", n)
	}
	if n, _ := tbl.Get("clock"); n != (document.Time{Hour: 4, Minute: 27, Second: 5}) {
		t.Fatalf("clock: got %#v", n)
	}
	n, _ = tbl.Get("point")
	if pt, ok := document.AsTable(n); !ok || !pt.Inline {
		t.Fatalf("point: expected inline table, got %#v", n)
	}
}

func TestLoadYAML_LocalDateTimeForms(t *testing.T) {
	tbl, err := fixture.LoadYAML(strings.NewReader("spaced: 1979-05-27 07:32:00.5\ntagged: !datetime 1979-05-27T07:32:00.5\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := document.DateTime{
		Date: document.Date{Year: 1979, Month: 5, Day: 27},
		Time: document.Time{Hour: 7, Minute: 32, Nanosecond: 500_000_000},
	}
	for _, key := range []string{"spaced", "tagged"} {
		n, _ := tbl.Get(key)
		got, ok := document.AsDateTime(n)
		if !ok || !got.Equal(want) {
			t.Fatalf("%s: got %#v", key, n)
		}
	}
	if _, err := fixture.LoadYAML(strings.NewReader("bad: !datetime 1979-05-27X07:32:00\n")); err == nil {
		t.Fatalf("expected error for malformed date-time")
	}
}

func isInf(n document.Node) bool {
	f, ok := document.AsFloat(n)
	return ok && math.IsInf(f, 1)
}

func TestLoadYAML_RejectsDuplicatesAndNull(t *testing.T) {
	_, err := fixture.LoadYAML(strings.NewReader("a: 1\na: 2\n"))
	var dup *fixture.DuplicateKeyError
	if !errors.As(err, &dup) || dup.Key != "a" || dup.Line != 2 {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
	if _, err := fixture.LoadYAML(strings.NewReader("a: ~\n")); err == nil {
		t.Fatalf("expected error for null")
	}
	if _, err := fixture.LoadYAML(strings.NewReader("- 1\n")); err == nil {
		t.Fatalf("expected error for top-level sequence")
	}
}

func TestLoadJSON_NumbersAndOrder(t *testing.T) {
	tbl, err := fixture.Load("testdata/sample.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n, _ := tbl.Get("dec"); n != document.Int(42) {
		t.Fatalf("dec: got %#v", n)
	}
	if n, _ := tbl.Get("exp"); n != document.Float(1000) {
		t.Fatalf("exp: got %#v", n)
	}
	n, _ := tbl.Get("nested")
	nested, ok := document.AsTable(n)
	if !ok || strings.Join(nested.Keys(), ",") != "z,a" {
		t.Fatalf("nested: got %#v", n)
	}
	want := document.NewArray(document.String("a"), document.String("b"))
	if n, _ := tbl.Get("list"); !document.Equal(n, want) {
		t.Fatalf("list: got %#v", n)
	}
}

func TestLoadJSON_RejectsNull(t *testing.T) {
	if _, err := fixture.LoadJSON(strings.NewReader(`{"a": null}`)); err == nil {
		t.Fatalf("expected error for null")
	}
}
