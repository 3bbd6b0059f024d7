package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/icalgo/recur"
)

func newEvent(t *testing.T, lines ...string) Event {
	t.Helper()
	c := NewComponent("VEVENT")
	for _, l := range lines {
		c.AddProperty(mustProperty(t, l))
	}
	return Event{c}
}

func TestEventImplementsRecurring(t *testing.T) {
	var _ recur.Recurring = Event{}
	var _ recur.Recurring = Todo{}
	var _ recur.Recurring = Journal{}
	var _ recur.Recurring = Available{}
}

func TestEventFieldAccessors(t *testing.T) {
	ev := newEvent(t,
		"UID:event-1@example.com",
		"SUMMARY:Standup",
		"DESCRIPTION:Daily sync",
		"LOCATION:Room 4",
		"STATUS:CONFIRMED",
		"DTSTART:20260105T090000Z",
		"DTEND:20260105T093000Z",
		"ORGANIZER;CN=Alice:mailto:alice@example.com",
	)
	assert.Equal(t, "event-1@example.com", ev.UID())
	assert.Equal(t, "Standup", ev.Summary())
	assert.Equal(t, "Daily sync", ev.Description())
	assert.Equal(t, "Room 4", ev.Location())
	assert.Equal(t, EventStatusConfirmed, ev.Status())
	require.NotNil(t, ev.Organizer())
	assert.Equal(t, "Alice", ev.Organizer().CommonName)
	assert.Equal(t, "mailto:alice@example.com", ev.Organizer().CalAddress)

	dur, ok := ev.Duration()
	require.True(t, ok)
	assert.Equal(t, 30*time.Minute, dur)
}

func TestEventExpandsThroughRecur(t *testing.T) {
	ev := newEvent(t,
		"UID:event-2@example.com",
		"DTSTART:20260101T090000Z",
		"DTEND:20260101T100000Z",
		"RRULE:FREQ=DAILY;COUNT=3",
		"EXDATE:20260102T090000Z",
	)
	exp, err := recur.Expand(ev, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, exp.Len())

	occ, ok := exp.Next()
	require.True(t, ok)
	assert.Equal(t, 1, occ.Start.Day())
	require.NotNil(t, occ.End)
	assert.Equal(t, time.Hour, occ.End.Sub(occ.Start))
}
