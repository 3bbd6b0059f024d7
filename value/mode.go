package value

import "github.com/wrenfield/icalgo/icalerr"

// Mode selects strict or lenient value parsing, mirroring the mode
// threaded through contentline, property, and rrule.
type Mode int

const (
	Strict Mode = iota
	Lenient
)

// Codec parses and writes the wire text for exactly one Kind.
type Codec interface {
	Parse(raw string, mode Mode) (Value, []icalerr.Warning, error)
	Write(v Value) string
}
