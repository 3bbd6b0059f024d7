package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/icalgo/property"
)

func mustProperty(t *testing.T, raw string) property.Property {
	t.Helper()
	p, _, err := property.Parse(raw, 1, property.Strict)
	require.NoError(t, err)
	return p
}

func TestComponentGetAndGetAll(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(mustProperty(t, "SUMMARY:Team sync"))
	c.AddProperty(mustProperty(t, "CATEGORIES:WORK,INTERNAL"))
	c.AddProperty(mustProperty(t, "CATEGORIES:URGENT"))

	p, ok := c.Get("summary")
	require.True(t, ok)
	assert.Equal(t, "Team sync", p.Raw)

	assert.Len(t, c.GetAll("CATEGORIES"), 2)
	_, ok = c.Get("MISSING")
	assert.False(t, ok)
}

func TestComponentChildren(t *testing.T) {
	cal := NewComponent("VCALENDAR")
	ev1 := NewComponent("VEVENT")
	ev2 := NewComponent("VEVENT")
	tz := NewComponent("VTIMEZONE")
	cal.AddComponent(ev1)
	cal.AddComponent(tz)
	cal.AddComponent(ev2)

	assert.Equal(t, []*Component{ev1, ev2}, cal.Children("VEVENT"))
	assert.Equal(t, []*Component{tz}, cal.Children("VTIMEZONE"))
}

func TestPropertyTextFallsBackToRawForUnknownKind(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(mustProperty(t, "X-CUSTOM-DURATION;VALUE=DURATION:PT1H"))
	s, ok := c.PropertyText("X-CUSTOM-DURATION")
	require.True(t, ok)
	assert.Equal(t, "PT1H", s)
}

func TestPropertyDateTimeUTC(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(mustProperty(t, "DTSTART:20260115T090000Z"))
	ts, ok := c.PropertyDateTime("DTSTART")
	require.True(t, ok)
	assert.Equal(t, 2026, ts.Year())
	assert.Equal(t, 9, ts.Hour())
	assert.Equal(t, "UTC", ts.Location().String())
}

func TestPropertyDateTimeListSplitsCommaSeparatedValues(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(mustProperty(t, "EXDATE:20260101T090000Z,20260103T090000Z"))
	dates := c.PropertyDateTimeList("EXDATE")
	require.Len(t, dates, 2)
	assert.Equal(t, 1, dates[0].Day())
	assert.Equal(t, 3, dates[1].Day())
}

func TestPropertyCalAddressListDecodesParameters(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(mustProperty(t, `ATTENDEE;CN=Jane Doe;ROLE=CHAIR:mailto:jane@example.com`))
	attendees := c.PropertyCalAddressList("ATTENDEE")
	require.Len(t, attendees, 1)
	assert.Equal(t, "mailto:jane@example.com", attendees[0].CalAddress)
	assert.Equal(t, "Jane Doe", attendees[0].CommonName)
	assert.Equal(t, "CHAIR", attendees[0].Role)
}

func TestPropertyRRulesDecodesRRULE(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(mustProperty(t, "RRULE:FREQ=DAILY;COUNT=5"))
	rules := c.PropertyRRules()
	require.Len(t, rules, 1)
	assert.Equal(t, 5, *rules[0].Count)
}
