package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleProperty(t *testing.T) {
	p, warnings, err := Parse("SUMMARY:Team sync", 1, Strict)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "SUMMARY", p.Name)
	assert.Equal(t, "Team sync", p.Raw)
	assert.Empty(t, p.Params)
}

func TestParsePropertyWithParams(t *testing.T) {
	p, _, err := Parse(`DTSTART;TZID=America/New_York;VALUE=DATE-TIME:20260101T090000`, 1, Strict)
	require.NoError(t, err)
	assert.Equal(t, "DTSTART", p.Name)
	tzid, ok := p.Get("TZID")
	require.True(t, ok)
	assert.Equal(t, "America/New_York", tzid)
	value, ok := p.Get("VALUE")
	require.True(t, ok)
	assert.Equal(t, "DATE-TIME", value)
}

func TestParseQuotedParamValue(t *testing.T) {
	p, _, err := Parse(`ORGANIZER;CN="Doe, Jane":mailto:jane@example.com`, 1, Strict)
	require.NoError(t, err)
	cn, ok := p.Get("CN")
	require.True(t, ok)
	assert.Equal(t, "Doe, Jane", cn)
	assert.Equal(t, "mailto:jane@example.com", p.Raw)
}

func TestParseMultiValuedParam(t *testing.T) {
	p, _, err := Parse(`ATTENDEE;MEMBER="mailto:a@example.com","mailto:b@example.com":mailto:c@example.com`, 1, Strict)
	require.NoError(t, err)
	members := p.GetAll("MEMBER")
	require.Len(t, members, 2)
	assert.Equal(t, "mailto:a@example.com", members[0])
	assert.Equal(t, "mailto:b@example.com", members[1])
}

func TestParseMissingColonIsError(t *testing.T) {
	_, _, err := Parse("SUMMARY;NO-COLON", 1, Strict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ICAL-FORMAT-MISSING-COLON")
}

func TestParseUnclosedQuoteIsError(t *testing.T) {
	_, _, err := Parse(`ORGANIZER;CN="Jane:mailto:jane@example.com`, 1, Strict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ICAL-FORMAT")
}

func TestRFC6868DecodingHiInThere(t *testing.T) {
	p, _, err := Parse(`X-INFO;CN="Say ^'hi^' ^nthere":v`, 1, Strict)
	require.NoError(t, err)
	cn, ok := p.Get("CN")
	require.True(t, ok)
	assert.Equal(t, "Say \"hi\" \nthere", cn)
}

func TestRFC6868LoneCaretStrictFails(t *testing.T) {
	_, _, err := Parse(`X-INFO;CN="bad^x":v`, 1, Strict)
	require.Error(t, err)
}

func TestRFC6868LoneCaretLenientPassesThrough(t *testing.T) {
	p, warnings, err := Parse(`X-INFO;CN="bad^x":v`, 1, Lenient)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	cn, _ := p.Get("CN")
	assert.Equal(t, "bad^x", cn)
}

func TestEncode6868RoundTrips(t *testing.T) {
	original := `Say "hi" ` + "\n" + `there with a ^caret`
	encoded := Encode6868(original)
	decoded, _, err := decode6868(encoded, Strict)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestNeedsQuoting(t *testing.T) {
	assert.True(t, NeedsQuoting("has:colon"))
	assert.True(t, NeedsQuoting("has;semi"))
	assert.True(t, NeedsQuoting("has,comma"))
	assert.False(t, NeedsQuoting("plain"))
}

func TestInvalidPropertyName(t *testing.T) {
	_, _, err := Parse(`bad name:value`, 1, Strict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ICAL-FORMAT-INVALID-NAME")
}
