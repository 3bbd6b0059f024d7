// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package test

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/icalgo/model"
	"github.com/wrenfield/icalgo/parse"
)

//go:embed test_data/journal.ical
var testJournalInput string

func TestParseJournal(t *testing.T) {
	cal, err := parse.Parse([]byte(testJournalInput))
	require.NoError(t, err)
	require.Len(t, cal.Journals(), 1)

	jr := cal.Journals()[0]
	assert.Equal(t, "journal-1@example.com", jr.UID())
	assert.Equal(t, "Daily log", jr.Summary())
	assert.Equal(t, []string{"Shipped the release.", "Fixed two bugs."}, jr.Description())
	assert.Equal(t, model.JournalStatusFinal, jr.Status())

	_, ok := jr.Duration()
	assert.False(t, ok)
}
