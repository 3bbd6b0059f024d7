// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// Calendar represents a VCALENDAR component in the iCalendar format.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.4
//
// Calendar is a thin typed view over the generic Component tree: it
// exposes the required/common VCALENDAR properties and the typed
// sub-component collections, while the underlying *Component retains
// every property (including unrecognized X- extensions) for
// round-trip fidelity.
type Calendar struct {
	*Component
}

// NewCalendar wraps c as a Calendar view. c.Name is expected to be
// VCALENDAR but is not enforced here.
func NewCalendar(c *Component) Calendar { return Calendar{c} }

// Version specifies the identifier corresponding to the highest
// version number, or the minimum and maximum range, of the iCalendar
// specification required to interpret the object. This property is
// required.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.4
func (c Calendar) Version() string { v, _ := c.PropertyText("VERSION"); return v }

// ProdID specifies the identifier for the product that created the
// iCalendar object. This property is required.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.3
func (c Calendar) ProdID() string { v, _ := c.PropertyText("PRODID"); return v }

// CalScale specifies the calendar scale used by the calendar
// component. Optional, defaults to GREGORIAN.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.1
func (c Calendar) CalScale() string {
	v, ok := c.PropertyText("CALSCALE")
	if !ok {
		return "GREGORIAN"
	}
	return v
}

// Method specifies the iTIP method used by the calendar component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.2
func (c Calendar) Method() string { v, _ := c.PropertyText("METHOD"); return v }

// Name is the RFC 7986 display name for the calendar as a whole.
func (c Calendar) Name() string { v, _ := c.PropertyText("NAME"); return v }

// Color is the RFC 7986 color hint for the calendar as a whole.
func (c Calendar) Color() string { v, _ := c.PropertyText("COLOR"); return v }

// Events returns the VEVENT sub-components, as typed views.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
func (c Calendar) Events() []Event {
	children := c.Children("VEVENT")
	out := make([]Event, len(children))
	for i, ch := range children {
		out[i] = Event{ch}
	}
	return out
}

// Todos returns the VTODO sub-components, as typed views.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
func (c Calendar) Todos() []Todo {
	children := c.Children("VTODO")
	out := make([]Todo, len(children))
	for i, ch := range children {
		out[i] = Todo{ch}
	}
	return out
}

// Journals returns the VJOURNAL sub-components, as typed views.
func (c Calendar) Journals() []Journal {
	children := c.Children("VJOURNAL")
	out := make([]Journal, len(children))
	for i, ch := range children {
		out[i] = Journal{ch}
	}
	return out
}

// FreeBusys returns the VFREEBUSY sub-components, as typed views.
func (c Calendar) FreeBusys() []FreeBusy {
	children := c.Children("VFREEBUSY")
	out := make([]FreeBusy, len(children))
	for i, ch := range children {
		out[i] = FreeBusy{ch}
	}
	return out
}

// TimeZones returns the VTIMEZONE sub-components, as typed views.
func (c Calendar) TimeZones() []TimeZone {
	children := c.Children("VTIMEZONE")
	out := make([]TimeZone, len(children))
	for i, ch := range children {
		out[i] = TimeZone{ch}
	}
	return out
}

// Availabilities returns the RFC 7953 VAVAILABILITY sub-components,
// as typed views.
func (c Calendar) Availabilities() []Availability {
	children := c.Children("VAVAILABILITY")
	out := make([]Availability, len(children))
	for i, ch := range children {
		out[i] = Availability{ch}
	}
	return out
}
