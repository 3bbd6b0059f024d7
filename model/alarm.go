// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import "time"

// AlarmAction represents the possible values for a VALARM's ACTION
// field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.1
type AlarmAction string

const (
	AlarmActionAudio     AlarmAction = "AUDIO"
	AlarmActionDisplay   AlarmAction = "DISPLAY"
	AlarmActionEmail     AlarmAction = "EMAIL"
	AlarmActionProcedure AlarmAction = "PROCEDURE"
)

// Alarm represents a VALARM component: a sub-component of VEVENT,
// VTODO, or VJOURNAL that defines an alarm.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.6
type Alarm struct {
	*Component
}

// NewAlarm wraps c as an Alarm view.
func NewAlarm(c *Component) Alarm { return Alarm{c} }

// Action defines what happens when the alarm triggers. Required.
func (a Alarm) Action() AlarmAction {
	v, _ := a.PropertyText("ACTION")
	return AlarmAction(v)
}

// Trigger specifies when the alarm fires: a signed DURATION relative
// to the owning component's start/end, or a DATE-TIME instant when
// VALUE=DATE-TIME is set. Required.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.3
func (a Alarm) Trigger() (string, bool) {
	p, ok := a.Get("TRIGGER")
	if !ok {
		return "", false
	}
	return p.Raw, true
}

// TriggerDuration returns Trigger decoded as a relative offset, when
// it was not given as an absolute DATE-TIME.
func (a Alarm) TriggerDuration() (time.Duration, bool) { return a.PropertyDuration("TRIGGER") }

// Duration is the interval between repeated alarm triggers, paired
// with Repeat.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.2
func (a Alarm) Duration() (time.Duration, bool) { return a.PropertyDuration("DURATION") }

// Repeat is the number of times the alarm should be repeated after
// its initial trigger.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.2
func (a Alarm) Repeat() int {
	v, _ := a.PropertyInt("REPEAT")
	return int(v)
}

// Description is a more complete description of the alarm (DISPLAY
// and EMAIL actions).
func (a Alarm) Description() string { v, _ := a.PropertyText("DESCRIPTION"); return v }

// Summary is a short summary/subject for the alarm (EMAIL action).
func (a Alarm) Summary() string { v, _ := a.PropertyText("SUMMARY"); return v }

// Attach lists documents associated with the alarm (AUDIO and EMAIL
// actions).
func (a Alarm) Attach() []string { return a.PropertyTextList("ATTACH") }

// Attendees lists the participants invited to the alarm (EMAIL
// action, at least one required).
func (a Alarm) Attendees() []Attendee { return a.PropertyCalAddressList("ATTENDEE") }
