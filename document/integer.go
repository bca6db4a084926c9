package document

import "strconv"

// IntFormat is the display format of an integer literal. It is cosmetic: it
// rides along with the value but never takes part in equality.
type IntFormat uint8

const (
	FormatDecimal IntFormat = iota
	FormatBinary
	FormatOctal
	FormatHexadecimal
)

func (f IntFormat) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatOctal:
		return "octal"
	case FormatHexadecimal:
		return "hexadecimal"
	default:
		return "decimal"
	}
}

// Integer is a TOML integer with its display format.
type Integer struct {
	Value  int64
	Format IntFormat
}

// Int returns a decimal Integer.
func Int(v int64) Integer { return Integer{Value: v} }

// String renders the literal in its format. Negative values are always
// rendered in decimal since TOML only allows prefixed non-negative literals.
func (i Integer) String() string {
	if i.Value < 0 {
		return strconv.FormatInt(i.Value, 10)
	}
	switch i.Format {
	case FormatBinary:
		return "0b" + strconv.FormatInt(i.Value, 2)
	case FormatOctal:
		return "0o" + strconv.FormatInt(i.Value, 8)
	case FormatHexadecimal:
		return "0x" + strconv.FormatInt(i.Value, 16)
	default:
		return strconv.FormatInt(i.Value, 10)
	}
}

// ParseInteger parses a TOML integer literal, recording its radix prefix as the
// display format. Underscore separators are accepted.
func ParseInteger(s string) (Integer, error) {
	format := FormatDecimal
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B':
			format = FormatBinary
		case 'o', 'O':
			format = FormatOctal
		case 'x', 'X':
			format = FormatHexadecimal
		}
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return Integer{}, err
	}
	return Integer{Value: v, Format: format}, nil
}
