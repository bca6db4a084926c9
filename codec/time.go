package codec

import (
	"time"

	"github.com/reoring/tomlkit/document"
)

// TimeFromNode converts a date-family node to a time.Time. Offset date-times
// keep their offset, local date-times and dates are taken as UTC, and a local
// time lands on year 0, January 1st.
func TimeFromNode(n document.Node) (time.Time, bool) {
	switch v := n.(type) {
	case document.DateTime:
		return v.ToTime(), true
	case document.Date:
		return v.ToTime(), true
	case document.Time:
		return time.Date(0, time.January, 1, v.Hour, v.Minute, v.Second, v.Nanosecond, time.UTC), true
	default:
		return time.Time{}, false
	}
}

// TimeToNode converts t to an offset date-time node. The offset is t's zone
// offset, so UTC values render with a trailing Z.
func TimeToNode(t time.Time) document.Node {
	return document.DateTimeOf(t)
}

// TimeRFC3339Decode parses an RFC 3339 string node (trailing fractional zeros
// optional) into a time.Time.
func TimeRFC3339Decode(n document.Node) (time.Time, bool) {
	s, ok := document.AsString(n)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TimeRFC3339Encode renders t as a canonical RFC 3339 string node, normalized
// to UTC (Go trims trailing zeros).
func TimeRFC3339Encode(t time.Time) document.Node {
	return document.String(t.UTC().Format(time.RFC3339Nano))
}
