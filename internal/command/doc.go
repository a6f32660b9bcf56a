// Package command implements the user-facing operations of recruitbook.
//
// Each command is a small value holding already-parsed arguments. Execute runs it
// against a model.Model and returns a Result describing what the user should see.
// Errors returned from Execute are *Error values carrying a message that is safe
// to show verbatim.
//
// Person and job-application indexes are one-based and refer to the currently
// filtered person list, so the same index can name different persons after a
// find or search.
package command
