// Package storage defines how the address book, the schedule board and the user
// preferences are persisted, independent of the backend holding them.
//
// Backends live under internal/platform (jsonfile, postgres). Manager combines
// one implementation of each interface and turns stored data into a ready
// ModelManager at startup and back into stored data after each command.
package storage
