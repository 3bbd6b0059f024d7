package rrule

import (
	"strconv"
	"strings"
)

// String renders r as a canonical RRULE value: FREQ, INTERVAL, then
// UNTIL or COUNT, then the BY* keys in the order RFC 5545 §3.3.10
// lists them, then WKST, so the output is stable regardless of the
// order fields were set in.
func (r *RRule) String() string {
	var parts []string
	parts = append(parts, "FREQ="+string(r.Frequency))
	if r.Interval != 1 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(r.Interval))
	}
	if r.Until != nil {
		parts = append(parts, "UNTIL="+r.Until.UTC().Format("20060102T150405Z"))
	}
	if r.Count != nil {
		parts = append(parts, "COUNT="+strconv.Itoa(*r.Count))
	}
	if len(r.BySecond) > 0 {
		parts = append(parts, "BYSECOND="+joinInts(r.BySecond))
	}
	if len(r.ByMinute) > 0 {
		parts = append(parts, "BYMINUTE="+joinInts(r.ByMinute))
	}
	if len(r.ByHour) > 0 {
		parts = append(parts, "BYHOUR="+joinInts(r.ByHour))
	}
	if len(r.ByDay) > 0 {
		parts = append(parts, "BYDAY="+joinByDay(r.ByDay))
	}
	if len(r.ByMonthDay) > 0 {
		parts = append(parts, "BYMONTHDAY="+joinInts(r.ByMonthDay))
	}
	if len(r.ByYearDay) > 0 {
		parts = append(parts, "BYYEARDAY="+joinInts(r.ByYearDay))
	}
	if len(r.ByWeekNo) > 0 {
		parts = append(parts, "BYWEEKNO="+joinInts(r.ByWeekNo))
	}
	if len(r.ByMonth) > 0 {
		parts = append(parts, "BYMONTH="+joinInts(r.ByMonth))
	}
	if len(r.BySetPos) > 0 {
		parts = append(parts, "BYSETPOS="+joinInts(r.BySetPos))
	}
	if r.Wkst != "" && r.Wkst != WeekdayMonday {
		parts = append(parts, "WKST="+string(r.Wkst))
	}
	return strings.Join(parts, ";")
}

func joinInts(vals []int) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, ",")
}

func joinByDay(days []ByDay) string {
	strs := make([]string, len(days))
	for i, d := range days {
		if d.Ordinal == 0 {
			strs[i] = string(d.Weekday)
		} else {
			strs[i] = strconv.Itoa(d.Ordinal) + string(d.Weekday)
		}
	}
	return strings.Join(strs, ",")
}
