// Package testutils provides testing utilities for recruitbook.
//
// This package contains helpers for:
// 1. Creating test persons and job applications
// 2. Parsing value objects in tests without error plumbing
// 3. Capturing structured log output
//
// # Test Persons
//
// For creating persons, use the following patterns:
//
//	// Create a person with default values:
//	p := testutils.MustCreatePersonForTest(t)
//
//	// Create a person with specific options:
//	p := testutils.MustCreatePersonForTest(t,
//	    testutils.WithName("Jane Doe"),
//	    testutils.WithTags("referral"),
//	    testutils.WithApplication("Data Analyst", "2024-05-01 10:00", "APPLIED", ""),
//	)
//
//	// The typical persons, in canonical order:
//	persons := testutils.TypicalPersons(t)
//
// # Logs
//
//	log, handler := testutils.NewTestLogger()
//	// ... exercise code with log ...
//	entry, ok := handler.Find("person added")
//
// Helpers that take *testing.T call t.Helper and fail the test on error.
// This package must not import internal/model, whose tests depend on it.
package testutils
