package document_test

import (
	"strings"
	"testing"
	"time"

	"github.com/reoring/tomlkit/document"
)

func TestTable_OrderAndReplace(t *testing.T) {
	tbl := document.NewTable()
	tbl.Set("b", document.Int(1))
	tbl.Set("a", document.Int(2))
	tbl.Set("b", document.Int(3))
	if got := strings.Join(tbl.Keys(), ","); got != "b,a" {
		t.Fatalf("keys: %s", got)
	}
	if n, _ := tbl.Get("b"); n != document.Int(3) {
		t.Fatalf("replace lost value: %#v", n)
	}
	if !tbl.Delete("b") || tbl.Has("b") || tbl.Len() != 1 {
		t.Fatalf("delete failed: %v", tbl.Keys())
	}
	tbl.Set("a", nil)
	if tbl.Len() != 0 {
		t.Fatalf("nil set should delete")
	}
	var nilTbl *document.Table
	if _, ok := nilTbl.Get("x"); ok || nilTbl.Len() != 0 {
		t.Fatalf("nil table should behave as empty")
	}
}

func TestArray_Mutation(t *testing.T) {
	arr := document.NewArray(document.Int(1), document.Int(3))
	if !arr.Insert(1, document.Int(2)) {
		t.Fatalf("insert failed")
	}
	if !arr.Set(3, document.Int(4)) {
		t.Fatalf("set at len should append")
	}
	if arr.Set(5, document.Int(9)) {
		t.Fatalf("set past len should fail")
	}
	want := document.NewArray(document.Int(1), document.Int(2), document.Int(3), document.Int(4))
	if !document.Equal(arr, want) {
		t.Fatalf("unexpected array: %v", arr.Items())
	}
	if n, ok := arr.Remove(0); !ok || n != document.Int(1) || arr.Len() != 3 {
		t.Fatalf("remove: %v %v", n, ok)
	}
	if _, ok := arr.Get(3); ok {
		t.Fatalf("get past end should fail")
	}
}

func TestEqual_IgnoresOrderFormatAndInline(t *testing.T) {
	a := document.NewTable()
	a.Set("x", document.Integer{Value: 255, Format: document.FormatHexadecimal})
	a.Set("y", document.String("s"))
	b := document.NewTable()
	b.Inline = true
	b.Set("y", document.String("s"))
	b.Set("x", document.Int(255))
	if !document.Equal(a, b) {
		t.Fatalf("expected semantic equality")
	}
	b.Set("z", document.Bool(true))
	if document.Equal(a, b) {
		t.Fatalf("extra key should break equality")
	}
	if document.Equal(document.Int(1), document.Float(1)) {
		t.Fatalf("kinds must not convert")
	}
}

func TestClone_IsDeep(t *testing.T) {
	off := &document.Offset{Minutes: 60}
	src := document.NewTable()
	src.Set("list", document.NewArray(document.String("a")))
	src.Set("at", document.DateTime{Offset: off})
	cp := document.Clone(src).(*document.Table)

	n, _ := src.Get("list")
	n.(*document.Array).Append(document.String("b"))
	off.Minutes = 0

	n, _ = cp.Get("list")
	if n.(*document.Array).Len() != 1 {
		t.Fatalf("clone shares array")
	}
	n, _ = cp.Get("at")
	if dt, _ := document.AsDateTime(n); dt.Offset.Minutes != 60 {
		t.Fatalf("clone shares offset")
	}
}

func TestInteger_String(t *testing.T) {
	cases := []struct {
		in   document.Integer
		want string
	}{
		{document.Integer{Value: 10, Format: document.FormatBinary}, "0b1010"},
		{document.Integer{Value: 8, Format: document.FormatOctal}, "0o10"},
		{document.Integer{Value: 255, Format: document.FormatHexadecimal}, "0xff"},
		{document.Integer{Value: -5, Format: document.FormatHexadecimal}, "-5"},
		{document.Int(7), "7"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Fatalf("%#v: got %s want %s", c.in, got, c.want)
		}
	}
	i, err := document.ParseInteger("0o755")
	if err != nil || i.Value != 493 || i.Format != document.FormatOctal {
		t.Fatalf("parse: %#v %v", i, err)
	}
	if _, err := document.ParseInteger("zz"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDateTime_StringAndTime(t *testing.T) {
	dt := document.DateTime{
		Date:   document.Date{Year: 2021, Month: 5, Day: 20},
		Time:   document.Time{Hour: 4, Minute: 27, Second: 5, Nanosecond: 294},
		Offset: &document.Offset{Minutes: 0},
	}
	if got := dt.String(); got != "2021-05-20T04:27:05.000000294Z" {
		t.Fatalf("string: %s", got)
	}
	dt.Offset = &document.Offset{Minutes: -330}
	if got := dt.String(); got != "2021-05-20T04:27:05.000000294-05:30" {
		t.Fatalf("string: %s", got)
	}
	back := document.DateTimeOf(dt.ToTime())
	if !back.Equal(dt) {
		t.Fatalf("time roundtrip: %s != %s", back, dt)
	}
	local := document.DateTime{Date: dt.Date, Time: dt.Time}
	if local.Equal(dt) || local.String() != "2021-05-20T04:27:05.000000294" {
		t.Fatalf("local date-time: %s", local)
	}
	if got := (document.Date{Year: 2021, Month: 5, Day: 20}).ToTime(); !got.Equal(time.Date(2021, 5, 20, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date time: %v", got)
	}
}

func TestAccessors_NoConversion(t *testing.T) {
	if _, ok := document.AsInt(document.Float(1)); ok {
		t.Fatalf("float must not read as int")
	}
	if _, ok := document.AsFloat(document.Int(1)); ok {
		t.Fatalf("int must not read as float")
	}
	if _, ok := document.AsTable(nil); ok {
		t.Fatalf("nil must not read as table")
	}
	if document.KindOf(nil) != document.KindInvalid || document.KindOf(document.NewArray()) != document.KindArray {
		t.Fatalf("KindOf mismatch")
	}
}

func TestValueOf_ToNative(t *testing.T) {
	n, err := document.ValueOf(map[string]any{
		"b": []any{int8(1), "x"},
		"a": true,
	})
	if err != nil {
		t.Fatalf("ValueOf: %v", err)
	}
	tbl := n.(*document.Table)
	if got := strings.Join(tbl.Keys(), ","); got != "a,b" {
		t.Fatalf("keys should be sorted: %s", got)
	}
	native := document.ToNative(tbl).(map[string]any)
	if native["a"] != true || native["b"].([]any)[0] != int64(1) {
		t.Fatalf("native: %#v", native)
	}
	if _, err := document.ValueOf(uint64(1 << 63)); err == nil {
		t.Fatalf("expected overflow error")
	}
	if _, err := document.ValueOf(nil); err == nil {
		t.Fatalf("expected error for nil")
	}
}
