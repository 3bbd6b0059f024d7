// Package value implements the RFC 5545 typed value codec registry:
// parsing a property's raw wire text into one of the fourteen typed
// values the spec defines, and writing a typed value back to its
// canonical wire text. Every codec supports a Strict and a Lenient
// Mode, as described in the spec's value-codec contract.
package value

import "github.com/wrenfield/icalgo/rrule"

// Kind tags which RFC 5545 data type a Value holds.
type Kind int

const (
	KindBinary Kind = iota
	KindBoolean
	KindCalAddress
	KindDate
	KindDateTime
	KindDuration
	KindFloat
	KindInteger
	KindPeriod
	KindRecur
	KindText
	KindTime
	KindURI
	KindUTCOffset
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "BINARY"
	case KindBoolean:
		return "BOOLEAN"
	case KindCalAddress:
		return "CAL-ADDRESS"
	case KindDate:
		return "DATE"
	case KindDateTime:
		return "DATE-TIME"
	case KindDuration:
		return "DURATION"
	case KindFloat:
		return "FLOAT"
	case KindInteger:
		return "INTEGER"
	case KindPeriod:
		return "PERIOD"
	case KindRecur:
		return "RECUR"
	case KindText:
		return "TEXT"
	case KindTime:
		return "TIME"
	case KindURI:
		return "URI"
	case KindUTCOffset:
		return "UTC-OFFSET"
	default:
		return "UNKNOWN"
	}
}

// Date is a civil (Gregorian) calendar date with no time component.
type Date struct {
	Year, Month, Day int
}

// DateTime is either a UTC instant, a floating local wall-clock time,
// or a wall-clock time anchored to a named TZID. Second may be 60 to
// represent a leap second, which time.Time cannot express directly.
type DateTime struct {
	Year, Month, Day, Hour, Minute, Second int
	UTC                                    bool
	TZID                                   string
}

// Floating reports whether d carries no UTC flag and no TZID, i.e. is
// interpreted in the observer's local timezone.
func (d DateTime) Floating() bool { return !d.UTC && d.TZID == "" }

// Date drops the time-of-day components, giving the civil date this
// DateTime falls on.
func (d DateTime) Date() Date { return Date{Year: d.Year, Month: d.Month, Day: d.Day} }

// TimeOfDay is a RFC 5545 TIME value.
type TimeOfDay struct {
	Hour, Minute, Second int
	UTC                  bool
}

// Duration is the signed component decomposition of an ISO-8601-style
// iCalendar DURATION: either a week count alone, or days plus a time
// part, never both.
type Duration struct {
	Negative             bool
	Weeks                int
	Days, Hours, Minutes, Seconds int
}

// Period is a single PERIOD value: a start instant paired with either
// an explicit end instant or a duration.
type Period struct {
	Start DateTime
	End   *DateTime
	Dur   *Duration
}

// Value is a tagged union over the fourteen RFC 5545 value types. Only
// the field matching Kind is meaningful.
type Value struct {
	Kind Kind

	Binary     []byte
	Boolean    bool
	CalAddress string
	DateVal    Date
	DateTime   DateTime
	Duration   Duration
	Float      float64
	Integer    int64
	Periods    []Period
	Recur      *rrule.RRule
	Text       string
	Time       TimeOfDay
	URI        string
	UTCOffset  int
}
