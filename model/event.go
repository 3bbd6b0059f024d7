// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/wrenfield/icalgo/rrule"
)

// EventStatus represents the possible values for a VEVENT's STATUS
// field; note VTODO's STATUS field accepts different values.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusTentative EventStatus = "TENTATIVE"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// Event represents a VEVENT component in the iCalendar format.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
//
// Event implements recur.Recurring directly, so a parsed Event can be
// handed straight to recur.Expand.
type Event struct {
	*Component
}

// NewEvent wraps c as an Event view.
func NewEvent(c *Component) Event { return Event{c} }

// UID is the unique identifier for the event. Required.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.7
func (e Event) UID() string { v, _ := e.PropertyText("UID"); return v }

// DTStamp defines the date and time that the instance of the
// calendar component was created.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.2
func (e Event) DTStamp() time.Time { t, _ := e.PropertyDateTime("DTSTAMP"); return t }

// Summary is a short, one-line summary about the event.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.12
func (e Event) Summary() string { v, _ := e.PropertyText("SUMMARY"); return v }

// Description captures a lengthy textual description of the event.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.5
func (e Event) Description() string { v, _ := e.PropertyText("DESCRIPTION"); return v }

// StyledDescription is the RFC 9073 STYLED-DESCRIPTION property, a
// richer alternative to DESCRIPTION. When both are present, the
// write package's serialization drops a non-DERIVED DESCRIPTION.
func (e Event) StyledDescription() string { v, _ := e.PropertyText("STYLED-DESCRIPTION"); return v }

// Location is the event's location.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.7
func (e Event) Location() string { v, _ := e.PropertyText("LOCATION"); return v }

// Status defines the overall status or confirmation for the event.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
func (e Event) Status() EventStatus {
	v, _ := e.PropertyText("STATUS")
	return EventStatus(v)
}

// Organizer is the organizer of the event, or nil if absent.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.3
func (e Event) Organizer() *Organizer { return organizerFrom(e.Component) }

// Attendees lists the participants invited to the event.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.1
func (e Event) Attendees() []Attendee { return e.PropertyCalAddressList("ATTENDEE") }

// Categories lists the categories the event belongs to.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.2
func (e Event) Categories() []string { return e.PropertyTextList("CATEGORIES") }

// Sequence is the revision sequence number of the event.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.4
func (e Event) Sequence() int {
	v, _ := e.PropertyInt("SEQUENCE")
	return int(v)
}

// Start is the DTSTART of the event.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.4
func (e Event) Start() time.Time { t, _ := e.PropertyDateTime("DTSTART"); return t }

// End is the DTEND of the event, the zero time if DTEND is absent
// (the event may instead carry a DURATION; see Duration).
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.2
func (e Event) End() time.Time { t, _ := e.PropertyDateTime("DTEND"); return t }

// Alarms returns the VALARM sub-components attached to the event.
func (e Event) Alarms() []Alarm {
	children := e.Children("VALARM")
	out := make([]Alarm, len(children))
	for i, ch := range children {
		out[i] = Alarm{ch}
	}
	return out
}

// Participants returns the RFC 9073 PARTICIPANT sub-components.
func (e Event) Participants() []Participant {
	children := e.Children("PARTICIPANT")
	out := make([]Participant, len(children))
	for i, ch := range children {
		out[i] = Participant{ch}
	}
	return out
}

// DTStart satisfies recur.Recurring.
func (e Event) DTStart() time.Time { return e.Start() }

// RRules satisfies recur.Recurring.
func (e Event) RRules() []*rrule.RRule { return e.PropertyRRules() }

// RDates satisfies recur.Recurring.
func (e Event) RDates() []time.Time { return e.PropertyDateTimeList("RDATE") }

// ExDates satisfies recur.Recurring.
func (e Event) ExDates() []time.Time { return e.PropertyDateTimeList("EXDATE") }

// Duration satisfies recur.Recurring: the fixed offset from an
// occurrence's start to its end, taken from DTEND when present or
// DURATION otherwise.
func (e Event) Duration() (time.Duration, bool) {
	if end, ok := e.PropertyDateTime("DTEND"); ok {
		return end.Sub(e.Start()), true
	}
	if d, ok := e.PropertyDuration("DURATION"); ok {
		return d, true
	}
	return 0, false
}
