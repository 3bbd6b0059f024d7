// Package property turns an unfolded content line into a structured
// Property record: the property name, an ordered multimap of
// parameters, and the raw (still-encoded) value string. It also
// implements RFC 6868 parameter-value escaping.
package property

import (
	"regexp"
	"strings"

	"github.com/wrenfield/icalgo/icalerr"
)

// nameGrammar matches both the IANA-token and X-name grammars from
// RFC 5545 §3.1: ALPHA/DIGIT/'-', no leading restriction beyond that.
var nameGrammar = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// Param holds every value given for one parameter occurrence, in
// source order. A single-valued parameter has len(Values) == 1.
type Param struct {
	Name   string
	Values []string
}

// Property is the parsed form of one logical content line, with the
// value still in its undecoded wire representation; the value
// package is responsible for turning Raw into a typed Value.
type Property struct {
	Name   string
	Params []Param
	Raw    string
	Line   int
}

// Get returns the first value of the named parameter (case
// insensitive) and whether it was present.
func (p Property) Get(name string) (string, bool) {
	for _, param := range p.Params {
		if strings.EqualFold(param.Name, name) && len(param.Values) > 0 {
			return param.Values[0], true
		}
	}
	return "", false
}

// GetAll returns every value of the named parameter, or nil.
func (p Property) GetAll(name string) []string {
	for _, param := range p.Params {
		if strings.EqualFold(param.Name, name) {
			return param.Values
		}
	}
	return nil
}

// Mode selects strict or lenient parsing behavior.
type Mode int

const (
	Strict Mode = iota
	Lenient
)

// Parse converts one unfolded logical line into a Property.
func Parse(raw string, line int, mode Mode) (Property, []icalerr.Warning, error) {
	var warnings []icalerr.Warning

	nameEnd, sepIdx, sep := scanNameEnd(raw)
	if sepIdx == -1 {
		return Property{}, nil, icalerr.New(icalerr.KindFormat, icalerr.CodeMissingColon,
			"content line has no unquoted colon separating value", line, raw)
	}
	name := raw[:nameEnd]
	if name == "" {
		return Property{}, nil, icalerr.New(icalerr.KindFormat, icalerr.CodeInvalidName,
			"property name is empty", line, raw)
	}
	if !nameGrammar.MatchString(name) {
		return Property{}, nil, icalerr.New(icalerr.KindFormat, icalerr.CodeInvalidName,
			"property name does not match the IANA-token/X-name grammar: "+name, line, raw)
	}

	var params []Param
	if sep == ';' {
		rest := raw[nameEnd+1:]
		colonIdx := findUnquotedColon(rest)
		if colonIdx == -1 {
			return Property{}, nil, icalerr.New(icalerr.KindFormat, icalerr.CodeMissingColon,
				"content line has no unquoted colon separating value", line, raw)
		}
		paramSection := rest[:colonIdx]
		value := rest[colonIdx+1:]
		parsedParams, w, err := parseParams(paramSection, line, raw, mode)
		if err != nil {
			return Property{}, nil, err
		}
		warnings = append(warnings, w...)
		params = parsedParams
		return Property{Name: strings.ToUpper(name), Params: params, Raw: value, Line: line}, warnings, nil
	}

	value := raw[nameEnd+1:]
	return Property{Name: strings.ToUpper(name), Raw: value, Line: line}, warnings, nil
}

// scanNameEnd finds where the property name ends: at the first
// unquoted ';' or ':'. Returns the name end index, the index of the
// separator itself (-1 if neither an unquoted ';' nor ':' was found), and which
// byte the scan stopped on.
func scanNameEnd(raw string) (nameEnd int, sepIdx int, sep byte) {
	inQuotes := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case !inQuotes && (c == ';' || c == ':'):
			return i, i, c
		}
	}
	return len(raw), -1, 0
}

// findUnquotedColon returns the index of the first unquoted ':' or -1.
func findUnquotedColon(s string) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case ':':
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}

// parseParams scans a ";"-joined, possibly-quoted parameter section
// (already separated from the value by the caller) into an ordered
// list of Params, decoding RFC 6868 escapes inside each value.
func parseParams(section string, line int, raw string, mode Mode) ([]Param, []icalerr.Warning, error) {
	var params []Param
	var warnings []icalerr.Warning
	if section == "" {
		return params, warnings, nil
	}

	for _, piece := range splitTopLevel(section, ';') {
		eqIdx := findUnquotedByte(piece, '=')
		if eqIdx == -1 {
			return nil, nil, icalerr.New(icalerr.KindFormat, icalerr.CodeInvalidParamName,
				"parameter missing '=': "+piece, line, raw)
		}
		name := piece[:eqIdx]
		if !nameGrammar.MatchString(name) {
			return nil, nil, icalerr.New(icalerr.KindFormat, icalerr.CodeInvalidParamName,
				"parameter name does not match grammar: "+name, line, raw)
		}
		valueSection := piece[eqIdx+1:]

		var values []string
		for _, rawValue := range splitTopLevel(valueSection, ',') {
			unquoted, quotedErr := stripQuotes(rawValue)
			if quotedErr {
				return nil, nil, icalerr.New(icalerr.KindFormat, icalerr.CodeUnclosedQuote,
					"unclosed quoted parameter value: "+rawValue, line, raw)
			}
			decoded, w, err := decode6868(unquoted, mode)
			if err != nil {
				return nil, nil, icalerr.Wrap(icalerr.KindFormat, icalerr.CodeInvalidEscape, err, line, raw)
			}
			if w != "" {
				warnings = append(warnings, icalerr.Warning{Code: icalerr.CodeInvalidEscape, Message: w, Line: line, Raw: raw})
			}
			values = append(values, decoded)
		}
		params = append(params, Param{Name: name, Values: values})
	}
	return params, warnings, nil
}

// splitTopLevel splits on sep, ignoring any sep found inside a
// double-quoted run.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == sep && !inQuotes:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

func findUnquotedByte(s string, target byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case target:
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}

// stripQuotes removes a matched pair of surrounding double quotes, if
// present. Returns (value, true) if the value starts with a quote but
// never closes it.
func stripQuotes(s string) (string, bool) {
	if len(s) == 0 || s[0] != '"' {
		return s, false
	}
	if len(s) < 2 || s[len(s)-1] != '"' {
		return s, true
	}
	return s[1 : len(s)-1], false
}

// decode6868 applies RFC 6868 decoding: ^n -> LF, ^^ -> ^, ^' -> ".
// In strict mode a lone '^' followed by anything else is an error; in
// lenient mode the pair passes through literally and a warning is
// returned.
func decode6868(s string, mode Mode) (string, string, error) {
	if !strings.Contains(s, "^") {
		return s, "", nil
	}
	var sb strings.Builder
	var warning string
	for i := 0; i < len(s); i++ {
		if s[i] != '^' || i == len(s)-1 {
			sb.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'n':
			sb.WriteByte('\n')
			i++
		case '^':
			sb.WriteByte('^')
			i++
		case '\'':
			sb.WriteByte('"')
			i++
		default:
			if mode == Strict {
				return "", "", errInvalidEscape(s[i : i+2])
			}
			warning = "invalid RFC 6868 escape passed through literally: " + s[i:i+2]
			sb.WriteByte(s[i])
		}
	}
	return sb.String(), warning, nil
}

type escapeError string

func (e escapeError) Error() string { return "invalid RFC 6868 escape: " + string(e) }

func errInvalidEscape(seq string) error { return escapeError(seq) }

// Encode6868 is the writer-side inverse of decode6868, used by the
// write package when emitting parameter values.
func Encode6868(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString("^n")
		case '^':
			sb.WriteString("^^")
		case '"':
			sb.WriteString("^'")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// NeedsQuoting reports whether a parameter value must be wrapped in
// double quotes to serialize safely: it contains a ':', ';', or ','.
func NeedsQuoting(s string) bool {
	return strings.ContainsAny(s, ":;,")
}
