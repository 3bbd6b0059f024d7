// Package model contains the generic Component tree and the typed
// views (Calendar, Event, Todo, Journal, FreeBusy, TimeZone, Alarm,
// Participant, Availability, Available) built on top of it.
//
// A Component owns its properties and sub-components outright; the
// typed views are thin wrappers that decode the handful of
// well-known properties each RFC component defines, through the
// shared value.Registry, while leaving every other property
// (including unrecognized X- extensions) reachable on the embedded
// Component for round-trip fidelity.
package model
