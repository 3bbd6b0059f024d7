// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// Participant represents an RFC 9073 PARTICIPANT sub-component, a
// richer alternative to the bare ATTENDEE property for describing
// who (or what resource) is involved in an event.
type Participant struct {
	*Component
}

// NewParticipant wraps c as a Participant view.
func NewParticipant(c *Component) Participant { return Participant{c} }

// ParticipantType is the PARTICIPANT-TYPE property, e.g. "ACTIVE",
// "CHAIR", "BOOKING-CONTACT".
func (p Participant) ParticipantType() string { v, _ := p.PropertyText("PARTICIPANT-TYPE"); return v }

// CalendarAddress is the CALENDAR-ADDRESS property identifying the
// participant.
func (p Participant) CalendarAddress() string { v, _ := p.PropertyCalAddress("CALENDAR-ADDRESS"); return v }

// Description is a free-text description of the participant.
func (p Participant) Description() string { v, _ := p.PropertyText("DESCRIPTION"); return v }
