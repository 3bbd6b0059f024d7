// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/wrenfield/icalgo/rrule"
)

// TodoStatus represents the possible values for a VTODO's STATUS
// field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type TodoStatus string

const (
	TodoStatusNeedsAction TodoStatus = "NEEDS-ACTION"
	TodoStatusCompleted   TodoStatus = "COMPLETED"
	TodoStatusInProcess   TodoStatus = "IN-PROCESS"
	TodoStatusCancelled   TodoStatus = "CANCELLED"
)

// Todo represents a VTODO component in the iCalendar format: a
// grouping of component properties that describe an action item.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
//
// Todo implements recur.Recurring, anchored on DTSTART when present
// and otherwise on DUE.
type Todo struct {
	*Component
}

// NewTodo wraps c as a Todo view.
func NewTodo(c *Component) Todo { return Todo{c} }

// UID is the unique identifier for the to-do. Required.
func (t Todo) UID() string { v, _ := t.PropertyText("UID"); return v }

// DTStamp defines the date and time the instance was created.
func (t Todo) DTStamp() time.Time { v, _ := t.PropertyDateTime("DTSTAMP"); return v }

// Summary is a short, one-line summary of the to-do.
func (t Todo) Summary() string { v, _ := t.PropertyText("SUMMARY"); return v }

// Description is the lengthy textual description of the to-do.
func (t Todo) Description() string { v, _ := t.PropertyText("DESCRIPTION"); return v }

// Status defines the overall status or confirmation for the to-do.
func (t Todo) Status() TodoStatus {
	v, _ := t.PropertyText("STATUS")
	return TodoStatus(v)
}

// PercentComplete is the percentage completion, 0-100.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.8
func (t Todo) PercentComplete() (int, bool) {
	v, ok := t.PropertyInt("PERCENT-COMPLETE")
	return int(v), ok
}

// Priority defines the relative priority for the to-do, 0-9.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.9
func (t Todo) Priority() int {
	v, _ := t.PropertyInt("PRIORITY")
	return int(v)
}

// Organizer is the organizer of the to-do, or nil if absent.
func (t Todo) Organizer() *Organizer { return organizerFrom(t.Component) }

// Due specifies the date and time the to-do is expected to be
// completed.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.3
func (t Todo) Due() time.Time { v, _ := t.PropertyDateTime("DUE"); return v }

// Completed specifies the date and time the to-do was completed.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.1
func (t Todo) Completed() time.Time { v, _ := t.PropertyDateTime("COMPLETED"); return v }

// Alarms returns the VALARM sub-components attached to the to-do.
func (t Todo) Alarms() []Alarm {
	children := t.Children("VALARM")
	out := make([]Alarm, len(children))
	for i, ch := range children {
		out[i] = Alarm{ch}
	}
	return out
}

// DTStart satisfies recur.Recurring, anchoring on DTSTART if present,
// falling back to DUE for a to-do with no explicit start.
func (t Todo) DTStart() time.Time {
	if start, ok := t.PropertyDateTime("DTSTART"); ok {
		return start
	}
	return t.Due()
}

// RRules satisfies recur.Recurring.
func (t Todo) RRules() []*rrule.RRule { return t.PropertyRRules() }

// RDates satisfies recur.Recurring.
func (t Todo) RDates() []time.Time { return t.PropertyDateTimeList("RDATE") }

// ExDates satisfies recur.Recurring.
func (t Todo) ExDates() []time.Time { return t.PropertyDateTimeList("EXDATE") }

// Duration satisfies recur.Recurring: the fixed offset from an
// occurrence's start to DUE, when both a DTSTART and DUE are present.
func (t Todo) Duration() (time.Duration, bool) {
	start, hasStart := t.PropertyDateTime("DTSTART")
	due, hasDue := t.PropertyDateTime("DUE")
	if hasStart && hasDue {
		return due.Sub(start), true
	}
	if d, ok := t.PropertyDuration("DURATION"); ok {
		return d, true
	}
	return 0, false
}
