package value

import (
	"strconv"
	"time"

	"github.com/wrenfield/icalgo/icalerr"
)

// dateCodec implements RFC 5545 §3.3.4: an 8-digit YYYYMMDD civil date.
type dateCodec struct{}

func (dateCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	d, err := parseDate(raw)
	if err != nil {
		return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypeDate, err, 0, raw)
	}
	return Value{Kind: KindDate, DateVal: d}, nil, nil
}

func (dateCodec) Write(v Value) string {
	return formatDate(v.DateVal)
}

func parseDate(raw string) (Date, error) {
	if len(raw) != 8 {
		return Date{}, errBadLength("DATE", 8, len(raw))
	}
	year, err1 := strconv.Atoi(raw[0:4])
	month, err2 := strconv.Atoi(raw[4:6])
	day, err3 := strconv.Atoi(raw[6:8])
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, errNotNumeric("DATE", raw)
	}
	if !validCivilDate(year, month, day) {
		return Date{}, errOutOfRange("DATE", raw)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func formatDate(d Date) string {
	return fourDigit(d.Year) + twoDigit(d.Month) + twoDigit(d.Day)
}

func validCivilDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysInMonth(year, month)
}

func daysInMonth(year, month int) int {
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}

// dateTimeCodec implements RFC 5545 §3.3.5: a DATE, 'T', a TIME, and
// an optional trailing 'Z' for UTC. A bare DATE-TIME is floating
// unless a TZID parameter (supplied by the caller, not encoded in the
// wire text) applies.
type dateTimeCodec struct{}

func (dateTimeCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	dt, err := parseDateTime(raw)
	if err != nil {
		return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypeDateTime, err, 0, raw)
	}
	return Value{Kind: KindDateTime, DateTime: dt}, nil, nil
}

func (dateTimeCodec) Write(v Value) string {
	return formatDateTime(v.DateTime)
}

func parseDateTime(raw string) (DateTime, error) {
	utc := false
	body := raw
	if len(body) > 0 && body[len(body)-1] == 'Z' {
		utc = true
		body = body[:len(body)-1]
	}
	if len(body) != 15 || body[8] != 'T' {
		return DateTime{}, errBadLength("DATE-TIME", 15, len(body))
	}
	date, err := parseDate(body[0:8])
	if err != nil {
		return DateTime{}, err
	}
	hour, err1 := strconv.Atoi(body[9:11])
	min, err2 := strconv.Atoi(body[11:13])
	sec, err3 := strconv.Atoi(body[13:15])
	if err1 != nil || err2 != nil || err3 != nil {
		return DateTime{}, errNotNumeric("DATE-TIME", raw)
	}
	if hour > 23 || min > 59 || sec > 60 {
		return DateTime{}, errOutOfRange("DATE-TIME", raw)
	}
	return DateTime{
		Year: date.Year, Month: date.Month, Day: date.Day,
		Hour: hour, Minute: min, Second: sec, UTC: utc,
	}, nil
}

func formatDateTime(dt DateTime) string {
	s := formatDate(dt.Date()) + "T" + twoDigit(dt.Hour) + twoDigit(dt.Minute) + twoDigit(dt.Second)
	if dt.UTC {
		s += "Z"
	}
	return s
}

// timeCodec implements RFC 5545 §3.3.12.
type timeCodec struct{}

func (timeCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	utc := false
	body := raw
	if len(body) > 0 && body[len(body)-1] == 'Z' {
		utc = true
		body = body[:len(body)-1]
	}
	if len(body) != 6 {
		return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeTime,
			"TIME must be HHMMSS, got: "+raw, 0, raw)
	}
	hour, err1 := strconv.Atoi(body[0:2])
	min, err2 := strconv.Atoi(body[2:4])
	sec, err3 := strconv.Atoi(body[4:6])
	if err1 != nil || err2 != nil || hour > 23 || min > 59 || sec > 60 {
		return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeTime,
			"TIME components out of range: "+raw, 0, raw)
	}
	_ = err3
	return Value{Kind: KindTime, Time: TimeOfDay{Hour: hour, Minute: min, Second: sec, UTC: utc}}, nil, nil
}

func (timeCodec) Write(v Value) string {
	s := twoDigit(v.Time.Hour) + twoDigit(v.Time.Minute) + twoDigit(v.Time.Second)
	if v.Time.UTC {
		s += "Z"
	}
	return s
}

// utcOffsetCodec implements RFC 5545 §3.3.14: signed seconds east of
// UTC. "-0000" is explicitly invalid per the RFC.
type utcOffsetCodec struct{}

func (utcOffsetCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	if raw == "-0000" || raw == "-000000" {
		return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeUTCOffset,
			"-0000 is not a valid UTC-OFFSET", 0, raw)
	}
	if len(raw) != 5 && len(raw) != 7 {
		return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeUTCOffset,
			"UTC-OFFSET must be (+/-)HHMM[SS]: "+raw, 0, raw)
	}
	sign := 1
	switch raw[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeUTCOffset,
			"UTC-OFFSET must start with + or -: "+raw, 0, raw)
	}
	hour, err1 := strconv.Atoi(raw[1:3])
	min, err2 := strconv.Atoi(raw[3:5])
	sec := 0
	var err3 error
	if len(raw) == 7 {
		sec, err3 = strconv.Atoi(raw[5:7])
	}
	if err1 != nil || err2 != nil || err3 != nil || hour > 23 || min > 59 || sec > 59 {
		return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeUTCOffset,
			"UTC-OFFSET components out of range: "+raw, 0, raw)
	}
	total := sign * (hour*3600 + min*60 + sec)
	return Value{Kind: KindUTCOffset, UTCOffset: total}, nil, nil
}

func (utcOffsetCodec) Write(v Value) string {
	sign := "+"
	n := v.UTCOffset
	if n < 0 {
		sign = "-"
		n = -n
	}
	hour := n / 3600
	min := (n % 3600) / 60
	sec := n % 60
	if sec != 0 {
		return sign + twoDigit(hour) + twoDigit(min) + twoDigit(sec)
	}
	return sign + twoDigit(hour) + twoDigit(min)
}

func twoDigit(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func fourDigit(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

type lengthError struct {
	kind string
	want, got int
}

func (e lengthError) Error() string {
	return e.kind + " has wrong length: want " + strconv.Itoa(e.want) + " got " + strconv.Itoa(e.got)
}
func errBadLength(kind string, want, got int) error { return lengthError{kind, want, got} }

type formatError struct{ kind, raw string }

func (e formatError) Error() string { return e.kind + " is not numeric: " + e.raw }
func errNotNumeric(kind, raw string) error { return formatError{kind, raw} }

type rangeError struct{ kind, raw string }

func (e rangeError) Error() string { return e.kind + " value out of range: " + e.raw }
func errOutOfRange(kind, raw string) error { return rangeError{kind, raw} }
