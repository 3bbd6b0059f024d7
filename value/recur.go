package value

import (
	"github.com/wrenfield/icalgo/icalerr"
	"github.com/wrenfield/icalgo/rrule"
)

// recurCodec implements RFC 5545 §3.3.10 by delegating entirely to
// the rrule package, which owns the RECUR grammar and canonical
// writer.
type recurCodec struct{}

func (recurCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	rmode := rrule.Strict
	if mode == Lenient {
		rmode = rrule.Lenient
	}
	r, warnings, err := rrule.Parse(raw, rmode)
	if err != nil {
		return Value{}, nil, err
	}
	return Value{Kind: KindRecur, Recur: r}, warnings, nil
}

func (recurCodec) Write(v Value) string {
	if v.Recur == nil {
		return ""
	}
	return v.Recur.String()
}
