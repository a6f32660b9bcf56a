// Package model holds the aggregate roots of the recruitment book and the
// ModelManager that orchestrates them.
//
// AddressBook and ScheduleBoard exclusively own their canonical lists. Callers
// outside this package receive read-only views; every mutation goes through
// ModelManager, which keeps the filtered projections current before returning.
package model
