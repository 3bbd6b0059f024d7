// Package write serializes a model.Component tree (most commonly a
// model.Calendar's) back to a folded iCalendar byte stream, mirroring
// the structure parse builds: a depth-first BEGIN/properties/
// sub-components/END walk, with contentline.Fold applied to every
// output line and parameter values re-escaped per RFC 6868.
package write
