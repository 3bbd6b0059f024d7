package recur

import (
	"time"

	extrrule "github.com/teambition/rrule-go"

	"github.com/wrenfield/icalgo/icalerr"
	"github.com/wrenfield/icalgo/rrule"
)

var freqTable = map[rrule.Frequency]extrrule.Frequency{
	rrule.FrequencySecondly: extrrule.SECONDLY,
	rrule.FrequencyMinutely: extrrule.MINUTELY,
	rrule.FrequencyHourly:   extrrule.HOURLY,
	rrule.FrequencyDaily:    extrrule.DAILY,
	rrule.FrequencyWeekly:   extrrule.WEEKLY,
	rrule.FrequencyMonthly:  extrrule.MONTHLY,
	rrule.FrequencyYearly:   extrrule.YEARLY,
}

var weekdayTable = map[rrule.Weekday]extrrule.Weekday{
	rrule.WeekdayMonday:    extrrule.MO,
	rrule.WeekdayTuesday:   extrrule.TU,
	rrule.WeekdayWednesday: extrrule.WE,
	rrule.WeekdayThursday:  extrrule.TH,
	rrule.WeekdayFriday:    extrrule.FR,
	rrule.WeekdaySaturday:  extrrule.SA,
	rrule.WeekdaySunday:    extrrule.SU,
}

// toROption translates our own rrule.RRule (the type the value
// package's RECUR codec produces) into the ROption the expansion
// engine consumes.
func toROption(r *rrule.RRule, dtstart time.Time) (extrrule.ROption, error) {
	freq, ok := freqTable[r.Frequency]
	if !ok {
		return extrrule.ROption{}, icalerr.New(icalerr.KindRecurrence, icalerr.CodeRRuleInvalidByValue,
			"unrecognized FREQ for expansion: "+string(r.Frequency), 0, string(r.Frequency))
	}

	opt := extrrule.ROption{
		Freq:       freq,
		Dtstart:    dtstart,
		Interval:   r.Interval,
		Wkst:       weekdayTable[r.Wkst],
		Bymonth:    r.ByMonth,
		Bymonthday: r.ByMonthDay,
		Byyearday:  r.ByYearDay,
		Byweekno:   r.ByWeekNo,
		Byhour:     r.ByHour,
		Byminute:   r.ByMinute,
		Bysecond:   r.BySecond,
		Bysetpos:   r.BySetPos,
	}
	if r.Count != nil {
		opt.Count = *r.Count
	}
	if r.Until != nil {
		opt.Until = *r.Until
	}
	if len(r.ByDay) > 0 {
		opt.Byweekday = make([]extrrule.Weekday, 0, len(r.ByDay))
		for _, d := range r.ByDay {
			wd, ok := weekdayTable[d.Weekday]
			if !ok {
				return extrrule.ROption{}, icalerr.New(icalerr.KindRecurrence, icalerr.CodeRRuleInvalidByValue,
					"unrecognized BYDAY weekday for expansion", 0, string(d.Weekday))
			}
			if d.Ordinal != 0 {
				wd = wd.Nth(d.Ordinal)
			}
			opt.Byweekday = append(opt.Byweekday, wd)
		}
	}
	return opt, nil
}
