// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package test

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/icalgo/parse"
	"github.com/wrenfield/icalgo/recur"
)

//go:embed test_data/availability.ical
var testAvailabilityInput string

func TestParseAvailability(t *testing.T) {
	cal, err := parse.Parse([]byte(testAvailabilityInput))
	require.NoError(t, err)
	require.Len(t, cal.Availabilities(), 1)

	av := cal.Availabilities()[0]
	assert.Equal(t, "availability-1@example.com", av.UID())
	assert.Equal(t, "BUSY-UNAVAILABLE", av.BusyType())

	require.Len(t, av.Available(), 1)
	slot := av.Available()[0]
	assert.Equal(t, "Office hours", slot.Summary())

	exp, err := recur.Expand(slot, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, exp.Len())
}
