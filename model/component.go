// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"strings"
	"time"

	"github.com/wrenfield/icalgo/property"
	"github.com/wrenfield/icalgo/rrule"
	"github.com/wrenfield/icalgo/tzresolver"
	"github.com/wrenfield/icalgo/value"
)

// registry is shared by every typed view's property accessors. It is
// built once and is safe for concurrent reads, per value.NewRegistry's
// own contract.
var registry = value.NewRegistry()

// Component is the generic node of an iCalendar document tree: a
// named container (VCALENDAR, VEVENT, VTODO, VJOURNAL, VFREEBUSY,
// VTIMEZONE, STANDARD, DAYLIGHT, VALARM, PARTICIPANT, VAVAILABILITY,
// AVAILABLE, ...) holding an ordered list of properties and an
// ordered list of sub-components. A Component exclusively owns both
// lists; there is no parent pointer, only traversal context, so the
// tree can be built, copied, and walked without aliasing concerns.
//
// Calendar, Event, Todo, and the other RFC-named types are thin
// typed views over a *Component: they expose the handful of
// well-known properties each RFC component defines as typed Go
// values, decoded on demand through the shared value.Registry, while
// leaving every other property (including unrecognized X- extensions)
// reachable through the embedded Component for round-trip fidelity.
type Component struct {
	Name       string
	Properties []property.Property
	Components []*Component

	// Resolver resolves TZID parameters on DATE-TIME properties to a
	// *time.Location. Nil defaults to tzresolver.StdResolver{}.
	Resolver tzresolver.Resolver
}

// NewComponent returns an empty Component named name.
func NewComponent(name string) *Component {
	return &Component{Name: name}
}

// AddProperty appends p to the component's property list, preserving
// the order properties were added in.
func (c *Component) AddProperty(p property.Property) {
	c.Properties = append(c.Properties, p)
}

// AddComponent appends child to the component's sub-component list.
func (c *Component) AddComponent(child *Component) {
	c.Components = append(c.Components, child)
}

// Get returns the first property named name (case-insensitive) and
// whether one was present.
func (c *Component) Get(name string) (property.Property, bool) {
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return property.Property{}, false
}

// GetAll returns every property named name, in source order.
func (c *Component) GetAll(name string) []property.Property {
	var out []property.Property
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}
	return out
}

// Children returns every direct sub-component named name, in source
// order.
func (c *Component) Children(name string) []*Component {
	var out []*Component
	for _, ch := range c.Components {
		if strings.EqualFold(ch.Name, name) {
			out = append(out, ch)
		}
	}
	return out
}

func (c *Component) resolver() tzresolver.Resolver {
	if c.Resolver != nil {
		return c.Resolver
	}
	return tzresolver.StdResolver{}
}

func (c *Component) valueParam(p property.Property) string {
	v, _ := p.Get("VALUE")
	return v
}

func (c *Component) decode(p property.Property) (value.Value, bool) {
	v, _, err := registry.Parse(p.Name, c.valueParam(p), p.Raw, value.Lenient)
	if err != nil {
		return value.Value{}, false
	}
	return v, true
}

// PropertyText returns the decoded TEXT (or equivalent) value of the
// first property named name.
func (c *Component) PropertyText(name string) (string, bool) {
	p, ok := c.Get(name)
	if !ok {
		return "", false
	}
	return c.decodeString(p)
}

// decodeString decodes p as whichever of TEXT/URI/CAL-ADDRESS its
// Kind resolves to, falling back to the raw wire value for any other
// Kind (e.g. a caller asking for a string view of a DURATION).
func (c *Component) decodeString(p property.Property) (string, bool) {
	v, ok := c.decode(p)
	if !ok {
		return "", false
	}
	switch v.Kind {
	case value.KindText:
		return v.Text, true
	case value.KindURI:
		return v.URI, true
	case value.KindCalAddress:
		return v.CalAddress, true
	default:
		return p.Raw, true
	}
}

// PropertyTextList returns the decoded string value of every
// property named name, in source order.
func (c *Component) PropertyTextList(name string) []string {
	var out []string
	for _, p := range c.GetAll(name) {
		s, ok := c.decodeString(p)
		if !ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// PropertyInt returns the decoded INTEGER value of the first property
// named name.
func (c *Component) PropertyInt(name string) (int64, bool) {
	p, ok := c.Get(name)
	if !ok {
		return 0, false
	}
	v, ok := c.decode(p)
	if !ok || v.Kind != value.KindInteger {
		return 0, false
	}
	return v.Integer, true
}

// PropertyDateTime returns the first property named name as a
// time.Time, resolved against the component's Resolver when the
// value carries a TZID, or interpreted as UTC/floating-local
// otherwise.
func (c *Component) PropertyDateTime(name string) (time.Time, bool) {
	p, ok := c.Get(name)
	if !ok {
		return time.Time{}, false
	}
	return c.decodeDateTime(p)
}

// PropertyDateTimeList returns every DATE-TIME instance named by
// properties called name (RDATE/EXDATE may repeat and each may carry
// a comma-separated list).
func (c *Component) PropertyDateTimeList(name string) []time.Time {
	var out []time.Time
	for _, p := range c.GetAll(name) {
		for _, raw := range strings.Split(p.Raw, ",") {
			single := p
			single.Raw = raw
			if t, ok := c.decodeDateTime(single); ok {
				out = append(out, t)
			}
		}
	}
	return out
}

func (c *Component) decodeDateTime(p property.Property) (time.Time, bool) {
	v, ok := c.decode(p)
	if !ok {
		return time.Time{}, false
	}
	var dt value.DateTime
	switch v.Kind {
	case value.KindDateTime:
		dt = v.DateTime
		if tzid, ok := p.Get("TZID"); ok && !dt.UTC {
			dt.TZID = tzid
		}
	case value.KindDate:
		dt = value.DateTime{Year: v.DateVal.Year, Month: v.DateVal.Month, Day: v.DateVal.Day}
	default:
		return time.Time{}, false
	}
	return c.dateTimeToGo(dt), true
}

func (c *Component) dateTimeToGo(dt value.DateTime) time.Time {
	loc := time.Local
	switch {
	case dt.UTC:
		loc = time.UTC
	case dt.TZID != "":
		if zone, ok := c.resolver().Resolve(dt.TZID); ok {
			loc = zone.Location
		}
	}
	sec := dt.Second
	if sec > 59 {
		sec = 59 // time.Date has no leap-second representation
	}
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, sec, 0, loc)
}

// PropertyDuration returns the first property named name decoded as
// a time.Duration via value.Duration.AsStdDuration.
func (c *Component) PropertyDuration(name string) (time.Duration, bool) {
	p, ok := c.Get(name)
	if !ok {
		return 0, false
	}
	v, ok := c.decode(p)
	if !ok || v.Kind != value.KindDuration {
		return 0, false
	}
	d, err := v.Duration.AsStdDuration()
	if err != nil {
		return 0, false
	}
	return d, true
}

// PropertyURI returns the decoded URI value of the first property
// named name.
func (c *Component) PropertyURI(name string) (string, bool) {
	p, ok := c.Get(name)
	if !ok {
		return "", false
	}
	v, ok := c.decode(p)
	if !ok || v.Kind != value.KindURI {
		return "", false
	}
	return v.URI, true
}

// PropertyCalAddress returns the decoded CAL-ADDRESS value of the
// first property named name.
func (c *Component) PropertyCalAddress(name string) (string, bool) {
	p, ok := c.Get(name)
	if !ok {
		return "", false
	}
	v, ok := c.decode(p)
	if !ok || v.Kind != value.KindCalAddress {
		return "", false
	}
	return v.CalAddress, true
}

// PropertyCalAddressList returns the decoded CAL-ADDRESS value (plus
// its parameters) of every property named name, in source order.
func (c *Component) PropertyCalAddressList(name string) []Attendee {
	var out []Attendee
	for _, p := range c.GetAll(name) {
		v, ok := c.decode(p)
		if !ok || v.Kind != value.KindCalAddress {
			continue
		}
		cn, _ := p.Get("CN")
		role, _ := p.Get("ROLE")
		partstat, _ := p.Get("PARTSTAT")
		out = append(out, Attendee{
			CalAddress: v.CalAddress,
			CommonName: cn,
			Role:       role,
			PartStat:   partstat,
		})
	}
	return out
}

// PropertyRRules decodes every RRULE property into this module's own
// *rrule.RRule, skipping (and leaving for the caller's warnings, if
// any were collected during parse) any that fail to decode.
func (c *Component) PropertyRRules() []*rrule.RRule {
	var out []*rrule.RRule
	for _, p := range c.GetAll("RRULE") {
		v, ok := c.decode(p)
		if !ok || v.Kind != value.KindRecur || v.Recur == nil {
			continue
		}
		out = append(out, v.Recur)
	}
	return out
}
