//go:build integration

// Package testdb provides utilities for database integration tests: locating the
// test database, applying the embedded migrations and cleaning up afterwards.
package testdb
