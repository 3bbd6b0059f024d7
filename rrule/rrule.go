// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rrule implements the recurrence rules defined in RFC 5545
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
package rrule

import (
	"strconv"
	"strings"
	"time"

	"github.com/wrenfield/icalgo/icaldur"
	"github.com/wrenfield/icalgo/icalerr"
)

type Frequency string

const (
	FrequencySecondly Frequency = "SECONDLY"
	FrequencyMinutely Frequency = "MINUTELY"
	FrequencyHourly   Frequency = "HOURLY"
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyYearly   Frequency = "YEARLY"
)

func (f Frequency) valid() bool {
	switch f {
	case FrequencySecondly, FrequencyMinutely, FrequencyHourly, FrequencyDaily,
		FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

type Weekday string

const (
	WeekdayMonday    Weekday = "MO"
	WeekdayTuesday   Weekday = "TU"
	WeekdayWednesday Weekday = "WE"
	WeekdayThursday  Weekday = "TH"
	WeekdayFriday    Weekday = "FR"
	WeekdaySaturday  Weekday = "SA"
	WeekdaySunday    Weekday = "SU"
)

// weekdayOrder fixes MO..SU to 0..6 for wkst-relative week arithmetic,
// independent of time.Weekday's Sunday-first numbering.
var weekdayOrder = map[Weekday]int{
	WeekdayMonday: 0, WeekdayTuesday: 1, WeekdayWednesday: 2, WeekdayThursday: 3,
	WeekdayFriday: 4, WeekdaySaturday: 5, WeekdaySunday: 6,
}

// ToTime converts a Weekday into the matching time.Weekday.
func (w Weekday) ToTime() time.Weekday {
	switch w {
	case WeekdayMonday:
		return time.Monday
	case WeekdayTuesday:
		return time.Tuesday
	case WeekdayWednesday:
		return time.Wednesday
	case WeekdayThursday:
		return time.Thursday
	case WeekdayFriday:
		return time.Friday
	case WeekdaySaturday:
		return time.Saturday
	default:
		return time.Sunday
	}
}

// FromTime converts a time.Weekday into the matching Weekday.
func FromTime(w time.Weekday) Weekday {
	switch w {
	case time.Monday:
		return WeekdayMonday
	case time.Tuesday:
		return WeekdayTuesday
	case time.Wednesday:
		return WeekdayWednesday
	case time.Thursday:
		return WeekdayThursday
	case time.Friday:
		return WeekdayFriday
	case time.Saturday:
		return WeekdaySaturday
	default:
		return WeekdaySunday
	}
}

func isValidWeekday(weekday Weekday) bool {
	_, ok := weekdayOrder[weekday]
	return ok
}

// ByDay is one BYDAY token. Ordinal zero means no ordinal was given,
// i.e. "every occurrence of this weekday within scope"; a nonzero
// Ordinal picks the n-th (or, negative, the n-th from the end).
type ByDay struct {
	Weekday Weekday
	Ordinal int
}

// RRule is a fully parsed RFC 5545 recurrence rule.
type RRule struct {
	Frequency Frequency
	Interval  int
	Count     *int
	Until     *time.Time

	ByDay      []ByDay
	ByMonth    []int
	ByMonthDay []int
	ByYearDay  []int
	ByWeekNo   []int
	ByHour     []int
	ByMinute   []int
	BySecond   []int
	BySetPos   []int

	Wkst Weekday
}

// Mode selects strict or lenient handling of unrecognized RRULE keys.
type Mode int

const (
	Strict Mode = iota
	Lenient
)

// ParseRRule parses an iCalendar RRULE value string in Strict mode.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
func ParseRRule(rruleString string) (*RRule, error) {
	r, _, err := Parse(rruleString, Strict)
	return r, err
}

// Parse parses an iCalendar RRULE value string. In Lenient mode,
// unrecognized keys are skipped and reported back as warnings instead
// of rejecting the whole rule.
func Parse(rruleString string, mode Mode) (*RRule, []icalerr.Warning, error) {
	r := &RRule{Interval: 1, Wkst: WeekdayMonday}
	var warnings []icalerr.Warning

	for _, part := range strings.Split(rruleString, ";") {
		if part == "" {
			return nil, nil, icalerr.Wrap(icalerr.KindRecurrence, icalerr.CodeRRuleInvalidByValue, ErrInvalidRRuleString, 0, rruleString)
		}
		tag, val, found := strings.Cut(part, "=")
		if !found {
			return nil, nil, wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidRRuleString, rruleString)
		}
		tag = strings.ToUpper(tag)
		var err error
		switch tag {
		case "FREQ":
			r.Frequency = Frequency(strings.ToUpper(val))
		case "INTERVAL":
			r.Interval, err = parsePositiveInt(val)
			if err != nil {
				return nil, nil, wrapErr(icalerr.CodeRRuleInvalidInterval, ErrInvalidInterval, val)
			}
		case "COUNT":
			count, convErr := strconv.Atoi(val)
			if convErr != nil {
				return nil, nil, wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByValue, val)
			}
			r.Count = &count
		case "UNTIL":
			until, convErr := icaldur.ParseIcalTime(val)
			if convErr != nil {
				return nil, nil, wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByValue, val)
			}
			r.Until = &until
		case "WKST":
			wkst := Weekday(strings.ToUpper(val))
			if !isValidWeekday(wkst) {
				return nil, nil, wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByValue, val)
			}
			r.Wkst = wkst
		case "BYDAY":
			r.ByDay, err = parseByDayList(val)
		case "BYMONTH":
			r.ByMonth, err = parseIntList(val, 1, 12, false)
		case "BYMONTHDAY":
			r.ByMonthDay, err = parseIntList(val, 1, 31, true)
		case "BYYEARDAY":
			r.ByYearDay, err = parseIntList(val, 1, 366, true)
		case "BYWEEKNO":
			r.ByWeekNo, err = parseIntList(val, 1, 53, true)
		case "BYHOUR":
			r.ByHour, err = parseIntList(val, 0, 23, false)
		case "BYMINUTE":
			r.ByMinute, err = parseIntList(val, 0, 59, false)
		case "BYSECOND":
			r.BySecond, err = parseIntList(val, 0, 60, false)
		case "BYSETPOS":
			r.BySetPos, err = parseIntList(val, 1, 366, true)
		default:
			if mode == Strict {
				return nil, nil, wrapErr(icalerr.CodeRRuleUnknownKey, ErrUnknownKey, tag)
			}
			warnings = append(warnings, icalerr.Warning{
				Code:    icalerr.CodeRRuleUnknownKey,
				Message: "unrecognized RRULE key skipped: " + tag,
				Raw:     part,
			})
			continue
		}
		if err != nil {
			return nil, nil, err
		}
	}

	if err := validateRRule(r); err != nil {
		return nil, nil, err
	}
	return r, warnings, nil
}

func wrapErr(code string, sentinel error, raw string) *icalerr.Error {
	return icalerr.Wrap(icalerr.KindRecurrence, code, sentinel, 0, raw)
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, ErrInvalidInterval
	}
	return n, nil
}

// parseIntList parses a comma-separated list of signed integers, each
// within [min,max] in absolute value (so zero only where min is 0). allowNegative
// permits the leading '-' that lets a BY-rule index from the end of
// its period (e.g. BYMONTHDAY=-1 is the last day of the month).
func parseIntList(s string, min, max int, allowNegative bool) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByValue, p)
		}
		if n == 0 && min > 0 {
			return nil, wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByValue, p)
		}
		if n < 0 && !allowNegative {
			return nil, wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByValue, p)
		}
		abs := n
		if abs < 0 {
			abs = -abs
		}
		if abs < min || abs > max {
			return nil, wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByValue, p)
		}
		out = append(out, n)
	}
	return out, nil
}

// parseByDayList parses a comma-separated BYDAY value into ByDay
// entries.
func parseByDayList(s string) ([]ByDay, error) {
	parts := strings.Split(s, ",")
	out := make([]ByDay, 0, len(parts))
	for _, p := range parts {
		ordinal, weekday, err := ParseByDay(p)
		if err != nil {
			return nil, err
		}
		out = append(out, ByDay{Weekday: weekday, Ordinal: ordinal})
	}
	return out, nil
}

// ParseByDay parses a single BYDAY token such as "2TU", "-1FR", or
// "MO" into its ordinal (0 if none given) and weekday.
func ParseByDay(byDayString string) (int, Weekday, error) {
	if len(byDayString) < 2 {
		return 0, "", wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByDayString, byDayString)
	}
	weekday := Weekday(strings.ToUpper(byDayString[len(byDayString)-2:]))
	if !isValidWeekday(weekday) {
		return 0, "", wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByDayString, byDayString)
	}
	ordPart := byDayString[:len(byDayString)-2]
	if ordPart == "" {
		return 0, weekday, nil
	}
	ord, err := strconv.Atoi(ordPart)
	if err != nil || ord == 0 || ord < -53 || ord > 53 {
		return 0, "", wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByDayString, byDayString)
	}
	return ord, weekday, nil
}

func validateRRule(r *RRule) error {
	if r.Frequency == "" {
		return wrapErr(icalerr.CodeRRuleFreqRequired, ErrFrequencyRequired, "")
	}
	if !r.Frequency.valid() {
		return wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidFrequency, string(r.Frequency))
	}
	if r.Count != nil && r.Until != nil {
		return wrapErr(icalerr.CodeRRuleCountUntil, ErrCountAndUntilBothSet, "")
	}
	if r.Count != nil && *r.Count <= 0 {
		return wrapErr(icalerr.CodeRRuleInvalidByValue, ErrInvalidByValue, "COUNT")
	}
	if r.Interval <= 0 {
		return wrapErr(icalerr.CodeRRuleInvalidInterval, ErrInvalidInterval, strconv.Itoa(r.Interval))
	}
	return nil
}
