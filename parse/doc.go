// Package parse builds a model.Calendar out of raw iCalendar (RFC
// 5545) content.
//
// Parse and NewParser(...).Parse are the two entry points: the
// package-level Parse is a strict-mode convenience wrapper, while a
// *Parser built with options controls strict/lenient decoding, the
// security.Policy applied to nesting depth, and the tzresolver.Resolver
// used to interpret TZID parameters.
package parse
