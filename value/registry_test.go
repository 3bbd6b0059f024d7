package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaultKindForKnownProperty(t *testing.T) {
	r := NewRegistry()
	kind, ok := r.DefaultKind("dtstart")
	require.True(t, ok)
	assert.Equal(t, KindDateTime, kind)
}

func TestRegistryParseUsesDefaultKind(t *testing.T) {
	r := NewRegistry()
	v, _, err := r.Parse("SUMMARY", "", "Team sync", Strict)
	require.NoError(t, err)
	assert.Equal(t, KindText, v.Kind)
	assert.Equal(t, "Team sync", v.Text)
}

func TestRegistryParseHonorsValueOverride(t *testing.T) {
	r := NewRegistry()
	v, _, err := r.Parse("DTSTART", "DATE", "20260101", Strict)
	require.NoError(t, err)
	assert.Equal(t, KindDate, v.Kind)
}

func TestRegistryUnknownPropertyFallsBackToText(t *testing.T) {
	r := NewRegistry()
	v, _, err := r.Parse("X-CUSTOM-PROP", "", "hello", Strict)
	require.NoError(t, err)
	assert.Equal(t, KindText, v.Kind)
}

func TestRegistryWriteRoundTripsRecur(t *testing.T) {
	r := NewRegistry()
	v, _, err := r.Parse("RRULE", "", "FREQ=DAILY;COUNT=5", Strict)
	require.NoError(t, err)
	out, err := r.Write(v)
	require.NoError(t, err)
	assert.Equal(t, "FREQ=DAILY;COUNT=5", out)
}
