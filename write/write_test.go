// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package write_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/icalgo/parse"
	"github.com/wrenfield/icalgo/write"
)

const roundTripCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//Test//Test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:1@example.com\r\n" +
	"DTSTAMP:20260101T000000Z\r\n" +
	"SUMMARY:Team sync\r\n" +
	"ORGANIZER;CN=Alice:mailto:alice@example.com\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestWriteRoundTrips(t *testing.T) {
	cal, err := parse.Parse([]byte(roundTripCalendar))
	require.NoError(t, err)

	out, err := write.Write(cal)
	require.NoError(t, err)

	reparsed, err := parse.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, cal.Version(), reparsed.Version())
	assert.Equal(t, cal.ProdID(), reparsed.ProdID())
	require.Len(t, reparsed.Events(), 1)
	assert.Equal(t, "Team sync", reparsed.Events()[0].Summary())
	assert.Equal(t, "Alice", reparsed.Events()[0].Organizer().CommonName)
}

func TestWriteSortsParametersDeterministically(t *testing.T) {
	const withUnsortedParams = "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//Test//Test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:1@example.com\r\n" +
		"DTSTAMP:20260101T000000Z\r\n" +
		"ATTENDEE;ROLE=CHAIR;CN=Bob:mailto:bob@example.com\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, err := parse.Parse([]byte(withUnsortedParams))
	require.NoError(t, err)

	out, err := write.Write(cal)
	require.NoError(t, err)

	idx := strings.Index(string(out), "ATTENDEE;")
	require.GreaterOrEqual(t, idx, 0)
	line := string(out)[idx:]
	line = line[:strings.Index(line, "\r\n")]
	assert.Equal(t, "ATTENDEE;CN=Bob;ROLE=CHAIR:mailto:bob@example.com", line)
}

func TestWriteDropsNonDerivedDescriptionWhenStyledDescriptionPresent(t *testing.T) {
	const withStyled = "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//Test//Test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:1@example.com\r\n" +
		"DTSTAMP:20260101T000000Z\r\n" +
		"DESCRIPTION:Plain text fallback\r\n" +
		"STYLED-DESCRIPTION;FMTTYPE=text/html:<p>Rich</p>\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, err := parse.Parse([]byte(withStyled))
	require.NoError(t, err)

	out, err := write.Write(cal)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "DESCRIPTION:Plain text fallback")
	assert.Contains(t, string(out), "STYLED-DESCRIPTION")
}

func TestWriteFoldsLongLines(t *testing.T) {
	longSummary := strings.Repeat("x", 200)
	const calFmt = "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//Test//Test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:1@example.com\r\n" +
		"DTSTAMP:20260101T000000Z\r\n" +
		"SUMMARY:%s\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, err := parse.Parse([]byte(strings.ReplaceAll(calFmt, "%s", longSummary)))
	require.NoError(t, err)

	out, err := write.Write(cal)
	require.NoError(t, err)
	for _, line := range strings.Split(string(out), "\r\n") {
		assert.LessOrEqual(t, len(line), 75)
	}
}
