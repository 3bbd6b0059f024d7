package recur

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/icalgo/rrule"
)

type fakeRecurring struct {
	start   time.Time
	rrules  []*rrule.RRule
	rdates  []time.Time
	exdates []time.Time
	dur     time.Duration
	hasDur  bool
}

func (f fakeRecurring) DTStart() time.Time        { return f.start }
func (f fakeRecurring) RRules() []*rrule.RRule    { return f.rrules }
func (f fakeRecurring) RDates() []time.Time       { return f.rdates }
func (f fakeRecurring) ExDates() []time.Time      { return f.exdates }
func (f fakeRecurring) Duration() (time.Duration, bool) { return f.dur, f.hasDur }

func mustRule(t *testing.T, s string) *rrule.RRule {
	t.Helper()
	r, err := rrule.ParseRRule(s)
	require.NoError(t, err)
	return r
}

func TestDailyWithExdateDropsFourthOccurrence(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	rec := fakeRecurring{
		start:   start,
		rrules:  []*rrule.RRule{mustRule(t, "FREQ=DAILY;COUNT=5")},
		exdates: []time.Time{start.AddDate(0, 0, 3)},
	}
	exp, err := Expand(rec, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, exp.Len())

	var days []int
	for {
		occ, ok := exp.Next()
		if !ok {
			break
		}
		days = append(days, occ.Start.Day())
	}
	assert.Equal(t, []int{1, 2, 3, 5}, days)
}

func TestMonthlySecondTuesday(t *testing.T) {
	// DTSTART falls on a Thursday, which BYDAY=2TU never matches: the
	// first occurrence must come from the rule's own filtering, not
	// from DTSTART being injected unconditionally.
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	rec := fakeRecurring{
		start:  start,
		rrules: []*rrule.RRule{mustRule(t, "FREQ=MONTHLY;BYDAY=2TU;COUNT=6")},
	}
	exp, err := Expand(rec, nil)
	require.NoError(t, err)
	require.Equal(t, 6, exp.Len())

	want := []time.Time{
		time.Date(2026, 1, 13, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 12, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 9, 9, 0, 0, 0, time.UTC),
	}
	var got []time.Time
	for {
		occ, ok := exp.Next()
		if !ok {
			break
		}
		assert.Equal(t, time.Tuesday, occ.Start.Weekday())
		got = append(got, occ.Start)
	}
	assert.Equal(t, want, got)
}

func TestLastWeekdayOfMonthViaBySetPos(t *testing.T) {
	// DTSTART (Jan 1, a Thursday) is not the last weekday of its month,
	// so it must not surface as a spurious extra occurrence alongside
	// the two the rule actually generates.
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	rec := fakeRecurring{
		start:  start,
		rrules: []*rrule.RRule{mustRule(t, "FREQ=MONTHLY;BYDAY=MO,TU,WE,TH,FR;BYSETPOS=-1;COUNT=2")},
	}
	exp, err := Expand(rec, nil)
	require.NoError(t, err)
	require.Equal(t, 2, exp.Len())

	want := []time.Time{
		time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC), // last weekday of Jan 2026 (Fri)
		time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC), // last weekday of Feb 2026 (Fri)
	}
	var got []time.Time
	for {
		occ, ok := exp.Next()
		if !ok {
			break
		}
		got = append(got, occ.Start)
	}
	assert.Equal(t, want, got)
}

func TestCountAppliesBeforeExdateRemoval(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	rec := fakeRecurring{
		start:   start,
		rrules:  []*rrule.RRule{mustRule(t, "FREQ=DAILY;COUNT=3")},
		exdates: []time.Time{start.AddDate(0, 0, 1)},
	}
	exp, err := Expand(rec, nil)
	require.NoError(t, err)
	// COUNT=3 generates day 1,2,3; EXDATE removes day 2, leaving 2 total.
	assert.Equal(t, 2, exp.Len())
}

func TestUnboundedRuleRequiresRangeEnd(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	rec := fakeRecurring{
		start:  start,
		rrules: []*rrule.RRule{mustRule(t, "FREQ=DAILY")},
	}
	_, err := Expand(rec, nil)
	require.Error(t, err)
}

func TestRDateMergesAndDedupes(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	rec := fakeRecurring{
		start:  start,
		rrules: []*rrule.RRule{mustRule(t, "FREQ=DAILY;COUNT=2")},
		rdates: []time.Time{start, start.AddDate(0, 0, 5)},
	}
	exp, err := Expand(rec, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, exp.Len())
}

func TestDurationPopulatesEnd(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	rec := fakeRecurring{
		start:  start,
		rrules: []*rrule.RRule{mustRule(t, "FREQ=DAILY;COUNT=1")},
		dur:    time.Hour,
		hasDur: true,
	}
	exp, err := Expand(rec, nil)
	require.NoError(t, err)
	occ, ok := exp.Next()
	require.True(t, ok)
	require.NotNil(t, occ.End)
	assert.Equal(t, start.Add(time.Hour), *occ.End)
}
