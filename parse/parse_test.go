// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/icalgo/parse"
	"github.com/wrenfield/icalgo/property"
	"github.com/wrenfield/icalgo/security"
)

const minimalCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//Test//Test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:1@example.com\r\n" +
	"DTSTAMP:20260101T000000Z\r\n" +
	"SUMMARY:Hello, World\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParsePackageLevelConvenience(t *testing.T) {
	cal, err := parse.Parse([]byte(minimalCalendar))
	require.NoError(t, err)
	assert.Equal(t, "2.0", cal.Version())
	require.Len(t, cal.Events(), 1)
	assert.Equal(t, "Hello, World", cal.Events()[0].Summary())
}

func TestParseRejectsMismatchedEnd(t *testing.T) {
	bad := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//Test//Test//EN\r\nBEGIN:VEVENT\r\nUID:1@example.com\r\nEND:VTODO\r\nEND:VCALENDAR\r\n"
	_, err := parse.Parse([]byte(bad))
	assert.Error(t, err)
}

func TestParseRejectsMultipleTopLevelComponents(t *testing.T) {
	bad := minimalCalendar + "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//Test//Test//EN\r\nEND:VCALENDAR\r\n"
	_, err := parse.Parse([]byte(bad))
	assert.Error(t, err)
}

type shallowPolicy struct{}

func (shallowPolicy) AllowURIScheme(string) bool { return true }
func (shallowPolicy) MaxComponentDepth() int      { return 1 }

func TestParseEnforcesSecurityPolicyDepth(t *testing.T) {
	p := parse.NewParser(parse.WithSecurityPolicy(shallowPolicy{}))
	_, err := p.Parse(strings.NewReader(minimalCalendar))
	assert.Error(t, err)
}

func TestParseDefaultSecurityPolicyAllowsNormalNesting(t *testing.T) {
	p := parse.NewParser(parse.WithSecurityPolicy(security.NewDefaultPolicy()))
	_, err := p.Parse(strings.NewReader(minimalCalendar))
	assert.NoError(t, err)
}

func TestParseLenientModeCollectsWarnings(t *testing.T) {
	withBadEscape := strings.Replace(minimalCalendar, "UID:1@example.com", `UID;X-FOO=a^qb:1@example.com`, 1)
	p := parse.NewParser(parse.WithMode(property.Lenient))
	_, err := p.Parse(strings.NewReader(withBadEscape))
	require.NoError(t, err)
	assert.NotEmpty(t, p.Warnings())
}

func TestParseStreamExposesContentLines(t *testing.T) {
	p := parse.NewParser()
	var lines []string
	for cl, err := range p.ParseStream(strings.NewReader(minimalCalendar)) {
		require.NoError(t, err)
		lines = append(lines, cl.Raw)
	}
	assert.Contains(t, lines, "BEGIN:VCALENDAR")
	assert.Contains(t, lines, "SUMMARY:Hello, World")
}
