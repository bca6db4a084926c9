package tomlkit_test

import (
	"errors"
	"strings"
	"testing"

	tomlkit "github.com/reoring/tomlkit"
	"github.com/reoring/tomlkit/document"
	"github.com/reoring/tomlkit/i18n"
)

func TestCodingPath_Render(t *testing.T) {
	p := tomlkit.Path("b", "c", 0, "a")
	if got := p.String(); got != "b.c[0].a" {
		t.Fatalf("String: %s", got)
	}
	if got := p.Pointer(); got != "/b/c/0/a" {
		t.Fatalf("Pointer: %s", got)
	}
	if got := tomlkit.Path("a/b", "~x").Pointer(); got != "/a~1b/~0x" {
		t.Fatalf("escaping: %s", got)
	}
	if got := tomlkit.Path().Pointer(); got != "/" {
		t.Fatalf("root pointer: %s", got)
	}
}

func TestCodingPath_AppendDoesNotAlias(t *testing.T) {
	base := make(tomlkit.CodingPath, 0, 8)
	base = append(base, tomlkit.Key("root"))
	left := base.Append("left")
	right := base.Append("right")
	if left.String() != "root.left" || right.String() != "root.right" {
		t.Fatalf("siblings aliased: %s %s", left, right)
	}
	if len(base) != 1 {
		t.Fatalf("parent modified: %v", base)
	}
	if !left.AppendIndex(2).Equal(tomlkit.Path("root", "left", 2)) {
		t.Fatalf("AppendIndex mismatch")
	}
}

func TestPath_PanicsOnUnsupportedSegment(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	tomlkit.Path(1.5)
}

func TestErrors_MessagesAndSentinels(t *testing.T) {
	nf := tomlkit.KeyNotFoundError(tomlkit.Path("b"), "a")
	if !errors.Is(nf, tomlkit.ErrKeyNotFound) || errors.Is(nf, tomlkit.ErrTypeMismatch) {
		t.Fatalf("sentinel mismatch")
	}
	if !strings.Contains(nf.Error(), "b.a") || !strings.Contains(nf.Error(), `"a"`) {
		t.Fatalf("unexpected message: %s", nf)
	}
	tm := tomlkit.TypeMismatchError(nil, document.KindTable, document.KindArray)
	if !strings.Contains(tm.Error(), "<root>") || !strings.Contains(tm.Error(), "array") {
		t.Fatalf("unexpected message: %s", tm)
	}

	uk := &tomlkit.UnexpectedKeysError{Keys: []tomlkit.UnexpectedKey{
		{Key: "a", Path: tomlkit.Path("a")},
		{Key: "b", Path: tomlkit.Path("b")},
		{Key: "c", Path: tomlkit.Path("c")},
		{Key: "d", Path: tomlkit.Path("d")},
	}}
	if got := uk.Error(); !strings.Contains(got, "a, b, c, ... (total 4)") {
		t.Fatalf("unexpected summary: %s", got)
	}
}

func TestErrors_Localized(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	msg := tomlkit.KeyNotFoundError(nil, "name").Error()
	if !strings.Contains(msg, `"name"`) || strings.Contains(msg, "not found") {
		t.Fatalf("expected japanese message, got %s", msg)
	}
}
