// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"strings"
	"time"

	"github.com/wrenfield/icalgo/value"
)

// FreeBusyStatus represents the possible values for a VFREEBUSY's
// FREEBUSY property FBTYPE= parameter.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.6
type FreeBusyStatus string

const (
	FreeBusyStatusFree            FreeBusyStatus = "FREE"
	FreeBusyStatusBusy            FreeBusyStatus = "BUSY"
	FreeBusyStatusBusyTentative   FreeBusyStatus = "BUSY-TENTATIVE"
	FreeBusyStatusBusyUnavailable FreeBusyStatus = "BUSY-UNAVAILABLE"
)

// FreeBusy represents a VFREEBUSY component: either a request for
// free/busy time, a response to such a request, or a published set
// of busy time.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.4
type FreeBusy struct {
	*Component
}

// NewFreeBusy wraps c as a FreeBusy view.
func NewFreeBusy(c *Component) FreeBusy { return FreeBusy{c} }

// UID is the unique identifier for the free/busy component.
func (f FreeBusy) UID() string { v, _ := f.PropertyText("UID"); return v }

// DTStamp defines the date and time the instance was created.
func (f FreeBusy) DTStamp() time.Time { v, _ := f.PropertyDateTime("DTSTAMP"); return v }

// DTStart specifies when the free/busy report begins.
func (f FreeBusy) DTStart() time.Time { v, _ := f.PropertyDateTime("DTSTART"); return v }

// DTEnd specifies when the free/busy report ends.
func (f FreeBusy) DTEnd() time.Time { v, _ := f.PropertyDateTime("DTEND"); return v }

// Organizer is the organizer of the free/busy report, or nil if
// absent.
func (f FreeBusy) Organizer() *Organizer { return organizerFrom(f.Component) }

// URL is a URL associated with the free/busy report.
func (f FreeBusy) URL() string { v, _ := f.PropertyText("URL"); return v }

// Attendees lists the participants the free/busy report concerns.
func (f FreeBusy) Attendees() []Attendee { return f.PropertyCalAddressList("ATTENDEE") }

// Contact specifies contact information for the activity.
func (f FreeBusy) Contact() string { v, _ := f.PropertyText("CONTACT"); return v }

// Comment returns every non-processing comment on the report.
func (f FreeBusy) Comment() []string { return f.PropertyTextList("COMMENT") }

// FreeBusyTime is a single free/busy interval with its status,
// decoded from one FREEBUSY property's PERIOD value list.
type FreeBusyTime struct {
	Start, End time.Time
	Status     FreeBusyStatus
}

// FreeBusyTimes decodes every FREEBUSY property into its constituent
// intervals, tagged with that property's FBTYPE= (defaulting to BUSY
// per RFC 5545 §3.2.9).
func (f FreeBusy) FreeBusyTimes() []FreeBusyTime {
	var out []FreeBusyTime
	for _, p := range f.GetAll("FREEBUSY") {
		status := FreeBusyStatusBusy
		if fbtype, ok := p.Get("FBTYPE"); ok {
			status = FreeBusyStatus(strings.ToUpper(fbtype))
		}
		v, ok := f.decode(p)
		if !ok || v.Kind != value.KindPeriod {
			continue
		}
		for _, period := range v.Periods {
			start := f.dateTimeToGo(period.Start)
			var end time.Time
			switch {
			case period.End != nil:
				end = f.dateTimeToGo(*period.End)
			case period.Dur != nil:
				d, err := period.Dur.AsStdDuration()
				if err != nil {
					continue
				}
				end = start.Add(d)
			default:
				continue
			}
			out = append(out, FreeBusyTime{Start: start, End: end, Status: status})
		}
	}
	return out
}
