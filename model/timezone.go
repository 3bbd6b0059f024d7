// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/wrenfield/icalgo/rrule"
)

// TimeZone represents a VTIMEZONE component: a grouping of component
// properties that defines a time zone, expressed as one or more
// STANDARD/DAYLIGHT observances.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type TimeZone struct {
	*Component
}

// NewTimeZone wraps c as a TimeZone view.
func NewTimeZone(c *Component) TimeZone { return TimeZone{c} }

// ID is the time zone identifier, denoted by TZID.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.1
func (t TimeZone) ID() string { v, _ := t.PropertyText("TZID"); return v }

// URL is a URL from which an up-to-date version of this time zone
// definition can be retrieved.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.5
func (t TimeZone) URL() string { v, _ := t.PropertyURI("TZURL"); return v }

// LastModified is when the time zone definition was last revised.
func (t TimeZone) LastModified() time.Time { v, _ := t.PropertyDateTime("LAST-MODIFIED"); return v }

// Standards returns the STANDARD-time observances.
func (t TimeZone) Standards() []Observance {
	children := t.Children("STANDARD")
	out := make([]Observance, len(children))
	for i, ch := range children {
		out[i] = Observance{ch}
	}
	return out
}

// Daylights returns the DAYLIGHT-time observances.
func (t TimeZone) Daylights() []Observance {
	children := t.Children("DAYLIGHT")
	out := make([]Observance, len(children))
	for i, ch := range children {
		out[i] = Observance{ch}
	}
	return out
}

// Observance is a single STANDARD or DAYLIGHT sub-component of a
// VTIMEZONE: the rule describing one UTC-offset regime and when it
// takes effect.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type Observance struct {
	*Component
}

// Start is the DTSTART marking when this observance first applies,
// expressed as a floating local time.
func (o Observance) Start() time.Time { v, _ := o.PropertyDateTime("DTSTART"); return v }

// OffsetFrom is the UTC offset in effect just before this observance
// began, in seconds east of UTC.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.3
func (o Observance) OffsetFrom() (int, bool) {
	p, ok := o.Get("TZOFFSETFROM")
	if !ok {
		return 0, false
	}
	v, ok := o.decode(p)
	if !ok {
		return 0, false
	}
	return v.UTCOffset, true
}

// OffsetTo is the UTC offset in effect during this observance, in
// seconds east of UTC.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.4
func (o Observance) OffsetTo() (int, bool) {
	p, ok := o.Get("TZOFFSETTO")
	if !ok {
		return 0, false
	}
	v, ok := o.decode(p)
	if !ok {
		return 0, false
	}
	return v.UTCOffset, true
}

// Name is the customary display name for this time zone observance.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.2
func (o Observance) Name() string { v, _ := o.PropertyText("TZNAME"); return v }

// RRules is the recurrence rule describing when this observance
// recurs (e.g. "second Sunday in March").
func (o Observance) RRules() []*rrule.RRule { return o.PropertyRRules() }

// RDates lists explicit observance-transition instants in addition
// to, or instead of, an RRULE.
func (o Observance) RDates() []time.Time { return o.PropertyDateTimeList("RDATE") }
