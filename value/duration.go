package value

import (
	"strconv"
	"strings"
	"time"

	"github.com/wrenfield/icalgo/icaldur"
	"github.com/wrenfield/icalgo/icalerr"
)

// durationCodec implements RFC 5545 §3.3.6 directly against the wire
// grammar (weeks XOR days+time) rather than round-tripping through
// time.Duration, since time.Duration cannot distinguish a DURATION
// carrying days from one carrying the equivalent number of hours and
// loses the weeks-vs-days form on write.
type durationCodec struct{}

func (durationCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	d, err := parseDuration(raw)
	if err != nil {
		return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypeDuration, err, 0, raw)
	}
	return Value{Kind: KindDuration, Duration: d}, nil, nil
}

func (durationCodec) Write(v Value) string {
	return formatDuration(v.Duration)
}

func parseDuration(s string) (Duration, error) {
	if s == "" {
		return Duration{}, errDurationEmpty
	}
	var d Duration
	i := 0
	switch s[0] {
	case '+':
		i++
	case '-':
		d.Negative = true
		i++
	}
	if i >= len(s) || s[i] != 'P' {
		return Duration{}, errDurationBadPrefix
	}
	i++

	if wIdx := strings.IndexByte(s[i:], 'W'); wIdx != -1 {
		numStr := s[i : i+wIdx]
		if numStr == "" || i+wIdx != len(s)-1 {
			return Duration{}, errDurationMalformed
		}
		weeks, err := strconv.Atoi(numStr)
		if err != nil {
			return Duration{}, errDurationMalformed
		}
		d.Weeks = weeks
		return d, nil
	}

	inTime := false
	sawAny := false
	for i < len(s) {
		if s[i] == 'T' {
			inTime = true
			i++
			continue
		}
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start || i >= len(s) {
			return Duration{}, errDurationMalformed
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return Duration{}, errDurationMalformed
		}
		unit := s[i]
		i++
		sawAny = true
		switch unit {
		case 'D':
			if inTime {
				return Duration{}, errDurationMalformed
			}
			d.Days = n
		case 'H':
			if !inTime {
				return Duration{}, errDurationMalformed
			}
			d.Hours = n
		case 'M':
			if !inTime {
				return Duration{}, errDurationMalformed
			}
			d.Minutes = n
		case 'S':
			if !inTime {
				return Duration{}, errDurationMalformed
			}
			d.Seconds = n
		default:
			return Duration{}, errDurationMalformed
		}
	}
	if !sawAny {
		return Duration{}, errDurationMalformed
	}
	return d, nil
}

func formatDuration(d Duration) string {
	var sb strings.Builder
	if d.Negative {
		sb.WriteByte('-')
	}
	sb.WriteByte('P')
	if d.Weeks != 0 && d.Days == 0 && d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0 {
		sb.WriteString(strconv.Itoa(d.Weeks))
		sb.WriteByte('W')
		return sb.String()
	}
	if d.Days != 0 {
		sb.WriteString(strconv.Itoa(d.Days))
		sb.WriteByte('D')
	}
	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
		sb.WriteByte('T')
		if d.Hours != 0 {
			sb.WriteString(strconv.Itoa(d.Hours))
			sb.WriteByte('H')
		}
		if d.Minutes != 0 {
			sb.WriteString(strconv.Itoa(d.Minutes))
			sb.WriteByte('M')
		}
		if d.Seconds != 0 {
			sb.WriteString(strconv.Itoa(d.Seconds))
			sb.WriteByte('S')
		}
	}
	if d.Days == 0 && d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0 && d.Weeks == 0 {
		sb.WriteString("T0S")
	}
	return sb.String()
}

// AsStdDuration converts d to a time.Duration by delegating to
// icaldur.ParseICalDuration on d's own canonical text, the conversion
// the recurrence expander uses to add a DURATION to an instant.
func (d Duration) AsStdDuration() (time.Duration, error) {
	return icaldur.ParseICalDuration(formatDuration(d))
}

type durationError string

func (e durationError) Error() string { return string(e) }

var (
	errDurationEmpty     = durationError("empty DURATION")
	errDurationBadPrefix = durationError("DURATION must start with P")
	errDurationMalformed = durationError("malformed DURATION")
)

// periodCodec implements RFC 5545 §3.3.9: start/end or start/duration,
// comma-separated for a multi-valued PERIOD list (e.g. FREEBUSY).
type periodCodec struct{}

func (periodCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	parts := strings.Split(raw, ",")
	periods := make([]Period, 0, len(parts))
	for _, p := range parts {
		start, rest, found := strings.Cut(p, "/")
		if !found {
			return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypePeriod,
				"PERIOD requires start/end or start/duration: "+p, 0, raw)
		}
		startDT, err := parseDateTime(start)
		if err != nil {
			return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypePeriod, err, 0, raw)
		}
		var period Period
		period.Start = startDT
		if len(rest) > 0 && rest[0] == 'P' || (len(rest) > 1 && (rest[0] == '+' || rest[0] == '-') && rest[1] == 'P') {
			dur, err := parseDuration(rest)
			if err != nil {
				return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypePeriod, err, 0, raw)
			}
			period.Dur = &dur
		} else {
			endDT, err := parseDateTime(rest)
			if err != nil {
				return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypePeriod, err, 0, raw)
			}
			period.End = &endDT
		}
		periods = append(periods, period)
	}
	return Value{Kind: KindPeriod, Periods: periods}, nil, nil
}

func (periodCodec) Write(v Value) string {
	strs := make([]string, len(v.Periods))
	for i, p := range v.Periods {
		if p.Dur != nil {
			strs[i] = formatDateTime(p.Start) + "/" + formatDuration(*p.Dur)
		} else {
			strs[i] = formatDateTime(p.Start) + "/" + formatDateTime(*p.End)
		}
	}
	return strings.Join(strs, ",")
}
