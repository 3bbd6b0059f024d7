package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRejectsLeapYearViolation(t *testing.T) {
	_, _, err := dateCodec{}.Parse("20230229", Strict)
	require.Error(t, err)
}

func TestDateAcceptsLeapDay(t *testing.T) {
	v, _, err := dateCodec{}.Parse("20240229", Strict)
	require.NoError(t, err)
	assert.Equal(t, Date{2024, 2, 29}, v.DateVal)
}

func TestDateRejectsYearZero(t *testing.T) {
	_, _, err := dateCodec{}.Parse("00000101", Strict)
	require.Error(t, err)
}

func TestDateTimeParsesUTC(t *testing.T) {
	v, _, err := dateTimeCodec{}.Parse("20260101T090000Z", Strict)
	require.NoError(t, err)
	assert.True(t, v.DateTime.UTC)
	assert.Equal(t, 2026, v.DateTime.Year)
	assert.Equal(t, 9, v.DateTime.Hour)
}

func TestDateTimeAllowsLeapSecond(t *testing.T) {
	v, _, err := dateTimeCodec{}.Parse("19990101T235960Z", Strict)
	require.NoError(t, err)
	assert.Equal(t, 60, v.DateTime.Second)
}

func TestDateTimeFloatingHasNoTZIDOrUTC(t *testing.T) {
	v, _, err := dateTimeCodec{}.Parse("20260101T090000", Strict)
	require.NoError(t, err)
	assert.True(t, v.DateTime.Floating())
}

func TestDateTimeRoundTrips(t *testing.T) {
	raw := "20260101T090000Z"
	v, _, err := dateTimeCodec{}.Parse(raw, Strict)
	require.NoError(t, err)
	assert.Equal(t, raw, dateTimeCodec{}.Write(v))
}

func TestUTCOffsetRejectsNegativeZero(t *testing.T) {
	_, _, err := utcOffsetCodec{}.Parse("-0000", Strict)
	require.Error(t, err)
}

func TestUTCOffsetRoundTrips(t *testing.T) {
	v, _, err := utcOffsetCodec{}.Parse("-0500", Strict)
	require.NoError(t, err)
	assert.Equal(t, -5*3600, v.UTCOffset)
	assert.Equal(t, "-0500", utcOffsetCodec{}.Write(v))
}

func TestUTCOffsetWithSeconds(t *testing.T) {
	v, _, err := utcOffsetCodec{}.Parse("+013000", Strict)
	require.NoError(t, err)
	assert.Equal(t, 1*3600+30*60, v.UTCOffset)
}
