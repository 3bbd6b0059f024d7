// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package parse builds a model.Calendar Component tree out of raw
// iCalendar content: it unfolds physical lines, parses each logical
// line into a property.Property, and tracks BEGIN/END nesting to
// assemble the Component tree, enforcing the configured
// security.Policy along the way.
package parse

import (
	"bytes"
	"io"
	"iter"
	"strings"

	"github.com/wrenfield/icalgo/contentline"
	"github.com/wrenfield/icalgo/icalerr"
	"github.com/wrenfield/icalgo/model"
	"github.com/wrenfield/icalgo/property"
	"github.com/wrenfield/icalgo/security"
	"github.com/wrenfield/icalgo/tzresolver"
)

// Option configures a Parser.
type Option func(*Parser)

// WithMode selects strict or lenient property/value decoding. The
// default is Strict.
func WithMode(m property.Mode) Option {
	return func(p *Parser) { p.mode = m }
}

// WithSecurityPolicy overrides the default security policy; the
// parser consults only its MaxComponentDepth.
func WithSecurityPolicy(pol security.Policy) Option {
	return func(p *Parser) { p.policy = pol }
}

// WithResolver overrides the default IANA-tzdata resolver used to
// interpret TZID parameters on DATE-TIME properties.
func WithResolver(r tzresolver.Resolver) Option {
	return func(p *Parser) { p.resolver = r }
}

// Parser builds a Component tree from an iCalendar byte stream. A
// Parser carries mutable warnings state across a Parse call and must
// not be shared across concurrent calls; construct one per call site.
type Parser struct {
	mode     property.Mode
	policy   security.Policy
	resolver tzresolver.Resolver
	warnings []icalerr.Warning
}

// NewParser returns a Parser configured with opts, defaulting to
// strict mode, security.NewDefaultPolicy, and tzresolver.StdResolver.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		mode:     property.Strict,
		policy:   security.NewDefaultPolicy(),
		resolver: tzresolver.StdResolver{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Warnings returns every non-fatal deviation accepted while decoding
// lenient-mode property values during the most recent Parse call.
func (p *Parser) Warnings() []icalerr.Warning { return p.warnings }

// ParseStream exposes the unfolded content-line stream underlying r,
// for callers that want to inspect logical lines directly without
// building a Component tree.
func (p *Parser) ParseStream(r io.Reader) iter.Seq2[contentline.ContentLine, error] {
	return func(yield func(contentline.ContentLine, error) bool) {
		u := contentline.NewUnfolder(r)
		for {
			cl, err := u.Next()
			if err == io.EOF {
				return
			}
			if !yield(cl, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Parse reads one iCalendar document from r and returns it as a
// model.Calendar backed by the full Component tree.
func (p *Parser) Parse(r io.Reader) (*model.Calendar, error) {
	p.warnings = nil
	u := contentline.NewUnfolder(r)

	var stack []*model.Component
	var root *model.Component

	for {
		cl, err := u.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch {
		case hasToken(cl.Raw, "BEGIN:"):
			name := strings.ToUpper(strings.TrimSpace(cl.Raw[len("BEGIN:"):]))
			if len(stack)+1 > p.policy.MaxComponentDepth() {
				return nil, icalerr.New(icalerr.KindSecurity, icalerr.CodeSecurityDepthExceeded,
					"component nesting exceeds the configured policy depth", cl.Line, cl.Raw)
			}
			comp := model.NewComponent(name)
			comp.Resolver = p.resolver
			switch {
			case len(stack) > 0:
				stack[len(stack)-1].AddComponent(comp)
			case root == nil:
				root = comp
			default:
				return nil, icalerr.New(icalerr.KindStructure, icalerr.CodeStructureIllegalNesting,
					"document contains more than one top-level component", cl.Line, cl.Raw)
			}
			stack = append(stack, comp)

		case hasToken(cl.Raw, "END:"):
			name := strings.ToUpper(strings.TrimSpace(cl.Raw[len("END:"):]))
			if len(stack) == 0 || stack[len(stack)-1].Name != name {
				return nil, icalerr.New(icalerr.KindStructure, icalerr.CodeStructureIllegalNesting,
					"END does not match the innermost open component", cl.Line, cl.Raw)
			}
			stack = stack[:len(stack)-1]

		default:
			if strings.TrimSpace(cl.Raw) == "" {
				continue
			}
			if len(stack) == 0 {
				return nil, icalerr.New(icalerr.KindStructure, icalerr.CodeStructureIllegalNesting,
					"property encountered outside of any component", cl.Line, cl.Raw)
			}
			prop, warnings, err := property.Parse(cl.Raw, cl.Line, p.mode)
			if err != nil {
				return nil, err
			}
			p.warnings = append(p.warnings, warnings...)
			stack[len(stack)-1].AddProperty(prop)
		}
	}

	if root == nil {
		return nil, icalerr.New(icalerr.KindStructure, icalerr.CodeStructureMissingProperty,
			"document does not contain a VCALENDAR component", 0, "")
	}
	if len(stack) != 0 {
		return nil, icalerr.New(icalerr.KindStructure, icalerr.CodeStructureIllegalNesting,
			"component not closed with a matching END", 0, "")
	}
	if root.Name != "VCALENDAR" {
		return nil, icalerr.New(icalerr.KindStructure, icalerr.CodeStructureIllegalNesting,
			"top-level component must be VCALENDAR", 0, root.Name)
	}

	cal := model.NewCalendar(root)
	if p.mode == property.Strict {
		if err := validateCalendar(cal); err != nil {
			return nil, err
		}
	}
	return &cal, nil
}

func hasToken(raw, token string) bool {
	return len(raw) >= len(token) && strings.EqualFold(raw[:len(token)], token)
}

// validateCalendar enforces the handful of properties RFC 5545 marks
// required, in strict mode. Lenient mode skips this and leaves the
// absence visible through the typed accessors returning zero values.
func validateCalendar(cal model.Calendar) error {
	if cal.Version() == "" {
		return icalerr.New(icalerr.KindStructure, icalerr.CodeStructureMissingProperty,
			"VCALENDAR is missing the required VERSION property", 0, "")
	}
	if cal.ProdID() == "" {
		return icalerr.New(icalerr.KindStructure, icalerr.CodeStructureMissingProperty,
			"VCALENDAR is missing the required PRODID property", 0, "")
	}
	for _, ev := range cal.Events() {
		if ev.UID() == "" {
			return icalerr.New(icalerr.KindStructure, icalerr.CodeStructureMissingProperty,
				"VEVENT is missing the required UID property", 0, "")
		}
		if _, ok := ev.PropertyDateTime("DTSTAMP"); !ok {
			return icalerr.New(icalerr.KindStructure, icalerr.CodeStructureMissingProperty,
				"VEVENT is missing the required DTSTAMP property", 0, "")
		}
		for _, al := range ev.Alarms() {
			if err := validateAlarm(al); err != nil {
				return err
			}
		}
	}
	for _, td := range cal.Todos() {
		if td.UID() == "" {
			return icalerr.New(icalerr.KindStructure, icalerr.CodeStructureMissingProperty,
				"VTODO is missing the required UID property", 0, "")
		}
		for _, al := range td.Alarms() {
			if err := validateAlarm(al); err != nil {
				return err
			}
		}
	}
	for _, jr := range cal.Journals() {
		if jr.UID() == "" {
			return icalerr.New(icalerr.KindStructure, icalerr.CodeStructureMissingProperty,
				"VJOURNAL is missing the required UID property", 0, "")
		}
	}
	for _, fb := range cal.FreeBusys() {
		if fb.UID() == "" {
			return icalerr.New(icalerr.KindStructure, icalerr.CodeStructureMissingProperty,
				"VFREEBUSY is missing the required UID property", 0, "")
		}
	}
	for _, tz := range cal.TimeZones() {
		if tz.ID() == "" {
			return icalerr.New(icalerr.KindStructure, icalerr.CodeStructureMissingProperty,
				"VTIMEZONE is missing the required TZID property", 0, "")
		}
	}
	return nil
}

// validateAlarm enforces RFC 5545 §3.6.6's per-ACTION required
// properties.
func validateAlarm(a model.Alarm) error {
	if a.Action() == "" {
		return icalerr.New(icalerr.KindStructure, icalerr.CodeAlarmMissingAction,
			"VALARM is missing the required ACTION property", 0, "")
	}
	if _, ok := a.Trigger(); !ok {
		return icalerr.New(icalerr.KindStructure, icalerr.CodeAlarmMissingTrigger,
			"VALARM is missing the required TRIGGER property", 0, "")
	}
	switch a.Action() {
	case model.AlarmActionDisplay:
		if a.Description() == "" {
			return icalerr.New(icalerr.KindStructure, icalerr.CodeAlarmMissingDescription,
				"DISPLAY VALARM is missing the required DESCRIPTION property", 0, "")
		}
	case model.AlarmActionEmail:
		if a.Description() == "" {
			return icalerr.New(icalerr.KindStructure, icalerr.CodeAlarmMissingDescription,
				"EMAIL VALARM is missing the required DESCRIPTION property", 0, "")
		}
		if a.Summary() == "" {
			return icalerr.New(icalerr.KindStructure, icalerr.CodeAlarmMissingSummary,
				"EMAIL VALARM is missing the required SUMMARY property", 0, "")
		}
		if len(a.Attendees()) == 0 {
			return icalerr.New(icalerr.KindStructure, icalerr.CodeAlarmMissingAttendees,
				"EMAIL VALARM requires at least one ATTENDEE property", 0, "")
		}
	}
	return nil
}

// Parse parses a complete iCalendar document in strict mode. It is a
// convenience wrapper around NewParser().Parse for callers that don't
// need warnings or custom options.
func Parse(data []byte) (*model.Calendar, error) {
	return NewParser().Parse(bytes.NewReader(data))
}
