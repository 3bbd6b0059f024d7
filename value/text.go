package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/wrenfield/icalgo/icalerr"
)

// textCodec implements the RFC 5545 §3.3.11 TEXT type: backslash
// escapes for comma, semicolon, backslash, and the two-character
// sequence "\n"/"\N" for a literal newline.
type textCodec struct{}

func (textCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	decoded, err := unescapeText(raw, mode)
	if err != nil {
		return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypeText, err, 0, raw)
	}
	return Value{Kind: KindText, Text: decoded}, nil, nil
}

func (textCodec) Write(v Value) string {
	return escapeText(v.Text)
}

func unescapeText(s string, mode Mode) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			sb.WriteByte(s[i])
			continue
		}
		if i == len(s)-1 {
			if mode == Strict {
				return "", errDanglingBackslash
			}
			sb.WriteByte('\\')
			break
		}
		switch s[i+1] {
		case 'n', 'N':
			sb.WriteByte('\n')
		case '\\':
			sb.WriteByte('\\')
		case ';':
			sb.WriteByte(';')
		case ',':
			sb.WriteByte(',')
		default:
			if mode == Strict {
				return "", errInvalidTextEscape(s[i : i+2])
			}
			sb.WriteByte(s[i])
			i--
		}
		i++
	}
	return sb.String(), nil
}

func escapeText(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case ';':
			sb.WriteString(`\;`)
		case ',':
			sb.WriteString(`\,`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

type textEscapeError string

func (e textEscapeError) Error() string { return "invalid TEXT escape: " + string(e) }
func errInvalidTextEscape(seq string) error { return textEscapeError(seq) }

var errDanglingBackslash = textEscapeError(`\`)

// booleanCodec implements RFC 5545 §3.3.2.
type booleanCodec struct{}

func (booleanCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	switch strings.ToUpper(raw) {
	case "TRUE":
		return Value{Kind: KindBoolean, Boolean: true}, nil, nil
	case "FALSE":
		return Value{Kind: KindBoolean, Boolean: false}, nil, nil
	default:
		if mode == Strict {
			return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeBoolean,
				"BOOLEAN must be TRUE or FALSE, got: "+raw, 0, raw)
		}
		return Value{Kind: KindBoolean, Boolean: false}, []icalerr.Warning{{
			Code: icalerr.CodeTypeBoolean, Message: "BOOLEAN was neither TRUE nor FALSE, defaulted to FALSE", Raw: raw,
		}}, nil
	}
}

func (booleanCodec) Write(v Value) string {
	if v.Boolean {
		return "TRUE"
	}
	return "FALSE"
}

// integerCodec implements RFC 5545 §3.3.8.
type integerCodec struct{}

func (integerCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return Value{Kind: KindInteger, Integer: n}, nil, nil
	}
	if mode == Lenient {
		if f, ferr := strconv.ParseFloat(raw, 64); ferr == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			rounded := int64(math.Round(f))
			return Value{Kind: KindInteger, Integer: rounded}, []icalerr.Warning{{
				Code: icalerr.CodeTypeInteger, Message: "INTEGER had a fractional part, rounded to nearest", Raw: raw,
			}}, nil
		}
	}
	return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypeInteger, err, 0, raw)
}

func (integerCodec) Write(v Value) string {
	return strconv.FormatInt(v.Integer, 10)
}

// floatCodec implements RFC 5545 §3.3.7.
type floatCodec struct{}

func (floatCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypeFloat, err, 0, raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeFloat,
			"FLOAT does not permit NaN or infinite values on parse: "+raw, 0, raw)
	}
	return Value{Kind: KindFloat, Float: f}, nil, nil
}

func (floatCodec) Write(v Value) string {
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}
