// Package jsonfile stores the address book, the schedule board and the user
// preferences as JSON files.
//
// Every document is checked against an embedded JSON schema before it is decoded.
// The schema only fixes the document's shape; required fields and value formats
// are checked per record so that a single bad record can be skipped when the
// store is configured to do so.
package jsonfile
