// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package test

import (
	_ "embed"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/icalgo/parse"
	"github.com/wrenfield/icalgo/recur"
)

//go:embed test_data/recurring_event.ical
var testRecurringEventInput string

func TestParseRecurringEventWithAlarm(t *testing.T) {
	cal, err := parse.Parse([]byte(testRecurringEventInput))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)

	ev := cal.Events()[0]
	assert.Equal(t, "recurring-1@example.com", ev.UID())
	assert.Equal(t, "Weekly sync", ev.Summary())
	require.Len(t, ev.RRules(), 1)
	assert.Equal(t, []time.Time{time.Date(2026, time.January, 8, 9, 0, 0, 0, time.UTC)}, ev.ExDates())

	require.Len(t, ev.Alarms(), 1)
	alarm := ev.Alarms()[0]
	assert.Equal(t, "DISPLAY", string(alarm.Action()))
	assert.Equal(t, "Reminder", alarm.Description())
	dur, ok := alarm.TriggerDuration()
	require.True(t, ok)
	assert.Equal(t, -15*time.Minute, dur)

	exp, err := recur.Expand(ev, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, exp.Len())

	occ, ok := exp.Next()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC), occ.Start)
	require.NotNil(t, occ.End)
	assert.Equal(t, time.Hour, occ.End.Sub(occ.Start))

	occ, ok = exp.Next()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC), occ.Start)
}
