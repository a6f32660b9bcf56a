// Package postgres stores the address book and the schedule board in PostgreSQL.
//
// Each save replaces the stored snapshot inside one transaction, so readers never
// see a half-written address book. The schema is created by the goose migrations
// embedded in this package; run Migrate before using a Store.
package postgres
