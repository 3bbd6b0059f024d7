// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/wrenfield/icalgo/rrule"
)

// JournalStatus represents the possible values for a VJOURNAL's
// STATUS field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type JournalStatus string

const (
	JournalStatusDraft     JournalStatus = "DRAFT"
	JournalStatusFinal     JournalStatus = "FINAL"
	JournalStatusCancelled JournalStatus = "CANCELLED"
)

// Journal represents a VJOURNAL component: a grouping of component
// properties that describe a journal entry. Unlike an Event, a
// Journal does not take up time on a calendar, so its recurrence set
// (when present) has no End.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.3
type Journal struct {
	*Component
}

// NewJournal wraps c as a Journal view.
func NewJournal(c *Component) Journal { return Journal{c} }

// UID is the unique identifier for the journal entry.
func (j Journal) UID() string { v, _ := j.PropertyText("UID"); return v }

// DTStamp defines the date and time the instance was created.
func (j Journal) DTStamp() time.Time { v, _ := j.PropertyDateTime("DTSTAMP"); return v }

// Summary is a short, one-line summary of the journal entry.
func (j Journal) Summary() string { v, _ := j.PropertyText("SUMMARY"); return v }

// Description returns every DESCRIPTION value on the entry (VJOURNAL
// allows more than one).
func (j Journal) Description() []string { return j.PropertyTextList("DESCRIPTION") }

// Status defines the overall status or confirmation for the entry.
func (j Journal) Status() JournalStatus {
	v, _ := j.PropertyText("STATUS")
	return JournalStatus(v)
}

// Organizer is the organizer of the journal entry, or nil if absent.
func (j Journal) Organizer() *Organizer { return organizerFrom(j.Component) }

// Categories lists the categories the entry belongs to.
func (j Journal) Categories() []string { return j.PropertyTextList("CATEGORIES") }

// DTStart satisfies recur.Recurring.
func (j Journal) DTStart() time.Time { v, _ := j.PropertyDateTime("DTSTART"); return v }

// RRules satisfies recur.Recurring.
func (j Journal) RRules() []*rrule.RRule { return j.PropertyRRules() }

// RDates satisfies recur.Recurring.
func (j Journal) RDates() []time.Time { return j.PropertyDateTimeList("RDATE") }

// ExDates satisfies recur.Recurring.
func (j Journal) ExDates() []time.Time { return j.PropertyDateTimeList("EXDATE") }

// Duration satisfies recur.Recurring: a journal entry occupies no
// span of time, so Duration always reports false.
func (j Journal) Duration() (time.Duration, bool) { return 0, false }
