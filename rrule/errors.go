// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import "errors"

// Predefined errors for the rrule package. Parse wraps each of these
// into an *icalerr.Error carrying the matching ICAL-RRULE-* code, so
// callers that only need errors.Is compatibility can keep matching
// against these sentinels directly.
var (
	// ErrInvalidRRuleString is returned when the rrule string format is invalid.
	ErrInvalidRRuleString = errors.New("invalid rrule string")

	// ErrFrequencyRequired is returned when the frequency property is missing.
	ErrFrequencyRequired = errors.New("frequency is required")

	// ErrInvalidFrequency is returned when FREQ is not one of the seven recognized values.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrCountAndUntilBothSet is returned when both count and until properties are set.
	ErrCountAndUntilBothSet = errors.New("count and until cannot both be set")

	// ErrInvalidInterval is returned when the interval is not a positive integer.
	ErrInvalidInterval = errors.New("interval must be a positive integer")

	// ErrInvalidByDayString is returned when the BYDAY string format is invalid.
	ErrInvalidByDayString = errors.New("invalid BYDAY string")

	// ErrInvalidByValue is returned when a BYxxx numeric list contains a
	// value outside its RFC 5545 range (including zero where the range
	// starts at 1).
	ErrInvalidByValue = errors.New("invalid BY-rule value")

	// ErrUnknownKey is returned in Strict mode for an RRULE key that is
	// not one of the recognized IANA tokens.
	ErrUnknownKey = errors.New("unrecognized RRULE key")
)
