package command

import (
	"github.com/phrazzld/recruitbook/internal/model"
)

// Command is an executable user operation.
type Command interface {
	// Execute runs the command against m.
	Execute(m model.Model) (*Result, error)
}

// Names of the available commands, as typed by the user.
const (
	WordAdd       = "add"
	WordEdit      = "edit"
	WordDelete    = "delete"
	WordClear     = "clear"
	WordFind      = "find"
	WordList      = "list"
	WordView      = "view"
	WordApply     = "apply"
	WordEditApp   = "editapp"
	WordUnapply   = "unapply"
	WordSearch    = "search"
	WordSchedules = "schedules"
	WordRoles     = "roles"
	WordAddRole   = "addrole"
	WordDelRole   = "delrole"
	WordHelp      = "help"
	WordExit      = "exit"
)

// syncAfter rebuilds the schedule board once a mutating command has succeeded.
func syncAfter(m model.Model, result *Result) (*Result, error) {
	if err := m.SyncScheduleBoard(); err != nil {
		return nil, Translate(err)
	}
	return result, nil
}
