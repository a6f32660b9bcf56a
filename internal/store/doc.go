// Package store provides the in-memory collections that canonical data lives in,
// together with the error taxonomy shared by every persistence layer.
//
// UniqueList is the ordered, uniqueness-enforcing container behind every aggregate
// root. It exposes a live read-only ListView and notifies subscribers synchronously
// after each committed mutation, which is how FilteredList projections stay current.
package store
