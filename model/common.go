// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// Organizer represents an ORGANIZER property, used in VEVENT, VTODO,
// VJOURNAL, and VFREEBUSY.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.3
type Organizer struct {
	// CalAddress is the mailto: (or other) URI identifying the
	// organizer, the property's bare value.
	CalAddress string
	// denoted by CN= in the spec
	CommonName string
	// denoted by DIR= in the spec
	Directory string
}

// Attendee represents an ATTENDEE property, used in VEVENT, VTODO,
// VJOURNAL, VFREEBUSY, and VALARM (EMAIL action).
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.1
type Attendee struct {
	CalAddress string
	// denoted by CN= in the spec
	CommonName string
	// denoted by ROLE= in the spec
	Role string
	// denoted by PARTSTAT= in the spec
	PartStat string
}

// Geo represents a GEO property: latitude and longitude in decimal
// degrees.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.6
type Geo struct {
	Latitude, Longitude float64
}

// Contact is used to represent contact information.
// Can be specified in Events, Todos, Journals, and FreeBusy Components.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.2
type Contact = string

// Sequence is used to define the revision sequence number of the component.
// Can be specified in Events, Todos, and Journals.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.4
type Sequence = int

// organizerFrom decodes the first ORGANIZER property on c, if any.
func organizerFrom(c *Component) *Organizer {
	p, ok := c.Get("ORGANIZER")
	if !ok {
		return nil
	}
	addr, _ := c.PropertyCalAddress("ORGANIZER")
	cn, _ := p.Get("CN")
	dir, _ := p.Get("DIR")
	return &Organizer{CalAddress: addr, CommonName: cn, Directory: dir}
}
