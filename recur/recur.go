// Package recur expands a component's RRULE/RDATE/EXDATE properties
// into its concrete occurrence set, per RFC 5545 §3.8.5: the union of
// every RRULE's generated instances and the RDATE instances, minus
// whatever EXDATE names. DTSTART anchors every RRULE expansion and is
// itself an instance only when it satisfies the rule's BY-filters;
// with no RRULE, DTSTART is the single generated instance.
//
// The per-RRULE candidate generation and BY-rule filtering cascade is
// delegated to github.com/teambition/rrule-go, which already
// implements the RFC 5545 algorithm end to end; this package owns the
// DTSTART-anchoring rule, EXDATE/RDATE set algebra, range bounding,
// and the lazy iterator surface the rest of icalgo consumes.
package recur

import (
	"sort"
	"time"

	extrrule "github.com/teambition/rrule-go"

	"github.com/wrenfield/icalgo/icalerr"
	"github.com/wrenfield/icalgo/rrule"
)

// Origin records whether an Occurrence came from an RRULE expansion
// or an explicit RDATE.
type Origin int

const (
	OriginRRule Origin = iota
	OriginRDate
)

// Occurrence is one immutable instance in a component's recurrence
// set, ordered strictly ascending by Start.
type Occurrence struct {
	Start  time.Time
	End    *time.Time
	Origin Origin
}

// Recurring is the minimal surface a component must expose to be
// expanded. model.Event/model.Todo implement it directly; any caller
// can satisfy it for ad hoc expansion.
type Recurring interface {
	DTStart() time.Time
	RRules() []*rrule.RRule
	RDates() []time.Time
	ExDates() []time.Time
	// Duration returns the fixed offset from an occurrence's Start to
	// its End (DTEND-DTSTART or DUE-DTSTART), and whether one exists.
	Duration() (time.Duration, bool)
}

// Expander is a single-consumer, restartable cursor over a pre-
// computed, ascending occurrence set. It holds no goroutines; calling
// Expand does all the work eagerly, matching the bounded,
// synchronous concurrency contract the rest of the module follows.
type Expander struct {
	occurrences []Occurrence
	pos         int
}

// Expand computes the full occurrence set for rec. When rangeEnd is
// non-nil, RRULE expansion stops at that instant (inclusive); RDATE
// entries beyond rangeEnd are also dropped. A rangeEnd is required
// whenever any RRULE in rec is unbounded (no COUNT and no UNTIL),
// otherwise Expand returns an ICAL-RECUR-UNBOUNDED-EXPANSION error.
func Expand(rec Recurring, rangeEnd *time.Time) (*Expander, error) {
	dtstart := rec.DTStart()

	if rangeEnd == nil {
		for _, r := range rec.RRules() {
			if r.Count == nil && r.Until == nil {
				return nil, icalerr.New(icalerr.KindRecurrence, icalerr.CodeRecurUnbounded,
					"RRULE has neither COUNT nor UNTIL; a rangeEnd is required to expand it", 0, r.String())
			}
		}
	}

	var candidates []time.Time
	for _, r := range rec.RRules() {
		opt, err := toROption(r, dtstart)
		if err != nil {
			return nil, err
		}
		extRule, err := extrrule.NewRRule(opt)
		if err != nil {
			return nil, icalerr.Wrap(icalerr.KindRecurrence, icalerr.CodeRRuleInvalidByValue, err, 0, r.String())
		}
		var instances []time.Time
		if rangeEnd != nil {
			instances = extRule.Between(dtstart, *rangeEnd, true)
		} else {
			instances = extRule.All()
		}
		candidates = append(candidates, instances...)
	}

	exdates := toDateSet(rec.ExDates())

	merged := make(map[int64]Occurrence)
	for _, t := range candidates {
		if _, excluded := exdates[t.UnixNano()]; excluded {
			continue
		}
		merged[t.UnixNano()] = Occurrence{Start: t, Origin: OriginRRule}
	}
	for _, t := range rec.RDates() {
		if rangeEnd != nil && t.After(*rangeEnd) {
			continue
		}
		if _, excluded := exdates[t.UnixNano()]; excluded {
			continue
		}
		merged[t.UnixNano()] = Occurrence{Start: t, Origin: OriginRDate}
	}
	// With no RRULE, nothing else seeds the first instance: DTSTART
	// itself is the occurrence. With an RRULE present, extRule.All()/
	// Between() already anchor on dtstart and apply every BY-filter
	// to it (dateutil semantics), so adding it again here would wrongly
	// inject an unfiltered instance whenever DTSTART doesn't itself
	// satisfy the rule's BY-filters.
	if len(rec.RRules()) == 0 {
		if _, excluded := exdates[dtstart.UnixNano()]; !excluded {
			merged[dtstart.UnixNano()] = Occurrence{Start: dtstart, Origin: OriginRRule}
		}
	}

	out := make([]Occurrence, 0, len(merged))
	for _, occ := range merged {
		out = append(out, occ)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })

	if dur, ok := rec.Duration(); ok {
		for i := range out {
			end := out[i].Start.Add(dur)
			out[i].End = &end
		}
	}

	return &Expander{occurrences: out}, nil
}

func toDateSet(dates []time.Time) map[int64]struct{} {
	set := make(map[int64]struct{}, len(dates))
	for _, d := range dates {
		set[d.UnixNano()] = struct{}{}
	}
	return set
}

// Next returns the next occurrence in ascending order, and false once
// the set is exhausted.
func (e *Expander) Next() (Occurrence, bool) {
	if e.pos >= len(e.occurrences) {
		return Occurrence{}, false
	}
	occ := e.occurrences[e.pos]
	e.pos++
	return occ, true
}

// Reset rewinds the cursor to the beginning, so the same Expander can
// be walked again.
func (e *Expander) Reset() { e.pos = 0 }

// Len reports the total number of occurrences computed.
func (e *Expander) Len() int { return len(e.occurrences) }

// All returns a fresh iter.Seq over the full occurrence set, for
// idiomatic range-over-func consumption alongside the state-machine
// Next() method. Ranging over All does not consume the Expander's own
// cursor.
func (e *Expander) All() func(yield func(Occurrence) bool) {
	return func(yield func(Occurrence) bool) {
		for _, occ := range e.occurrences {
			if !yield(occ) {
				return
			}
		}
	}
}
