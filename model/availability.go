// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/wrenfield/icalgo/rrule"
)

// Availability represents an RFC 7953 VAVAILABILITY component: a
// grouping of properties and AVAILABLE sub-components that together
// describe a period of time during which a calendar user is
// available.
type Availability struct {
	*Component
}

// NewAvailability wraps c as an Availability view.
func NewAvailability(c *Component) Availability { return Availability{c} }

// UID is the unique identifier for the availability block.
func (a Availability) UID() string { v, _ := a.PropertyText("UID"); return v }

// DTStamp defines when the instance was created.
func (a Availability) DTStamp() time.Time { v, _ := a.PropertyDateTime("DTSTAMP"); return v }

// BusyType is the default busy time type for gaps not covered by any
// AVAILABLE sub-component.
func (a Availability) BusyType() string { v, _ := a.PropertyText("BUSYTYPE"); return v }

// DTStart specifies when the availability block begins.
func (a Availability) DTStart() time.Time { v, _ := a.PropertyDateTime("DTSTART"); return v }

// DTEnd specifies when the availability block ends.
func (a Availability) DTEnd() time.Time { v, _ := a.PropertyDateTime("DTEND"); return v }

// Available returns the AVAILABLE sub-components describing the
// individual available periods within this block.
func (a Availability) Available() []Available {
	children := a.Children("AVAILABLE")
	out := make([]Available, len(children))
	for i, ch := range children {
		out[i] = Available{ch}
	}
	return out
}

// Available represents an RFC 7953 AVAILABLE sub-component: one
// specific period (optionally recurring) during which a calendar
// user is available.
type Available struct {
	*Component
}

// UID is the unique identifier for the available period.
func (a Available) UID() string { v, _ := a.PropertyText("UID"); return v }

// Summary is a short summary of the available period.
func (a Available) Summary() string { v, _ := a.PropertyText("SUMMARY"); return v }

// DTStart satisfies recur.Recurring.
func (a Available) DTStart() time.Time { v, _ := a.PropertyDateTime("DTSTART"); return v }

// RRules satisfies recur.Recurring.
func (a Available) RRules() []*rrule.RRule { return a.PropertyRRules() }

// RDates satisfies recur.Recurring.
func (a Available) RDates() []time.Time { return a.PropertyDateTimeList("RDATE") }

// ExDates satisfies recur.Recurring. RFC 7953 does not define EXDATE
// for AVAILABLE, but nothing forbids it either; this always returns
// an empty slice since the property is never emitted here.
func (a Available) ExDates() []time.Time { return nil }

// Duration satisfies recur.Recurring.
func (a Available) Duration() (time.Duration, bool) {
	if end, ok := a.PropertyDateTime("DTEND"); ok {
		return end.Sub(a.DTStart()), true
	}
	if d, ok := a.PropertyDuration("DURATION"); ok {
		return d, true
	}
	return 0, false
}
