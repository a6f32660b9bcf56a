package command

import (
	"github.com/phrazzld/recruitbook/internal/model"
)

// Usage lists every command with its arguments.
const Usage = `Commands:
  add NAME --phone PHONE --email EMAIL --address ADDRESS [--tag TAG]... [--job TITLE --schedule "YYYY-MM-DD HH:MM" --label LABEL [--remark REMARK]]
  edit INDEX [--name NAME] [--phone PHONE] [--email EMAIL] [--address ADDRESS] [--tag TAG]... [--clear-tags]
  delete INDEX
  clear
  find KEYWORD [MORE_KEYWORDS]...
  list
  view INDEX
  apply INDEX --job TITLE --schedule "YYYY-MM-DD HH:MM" --label LABEL [--remark REMARK]
  editapp INDEX APP_INDEX [--job TITLE] [--schedule "YYYY-MM-DD HH:MM"] [--label LABEL] [--remark REMARK]
  unapply INDEX APP_INDEX
  search [KEYWORD]... [--label LABEL]
  schedules [--on YYYY-MM-DD | --from YYYY-MM-DD --to YYYY-MM-DD]
  roles [KEYWORD]
  addrole TITLE
  delrole INDEX
  help
  exit`

// HelpCommand shows usage instructions.
type HelpCommand struct{}

func (HelpCommand) Execute(model.Model) (*Result, error) {
	return &Result{Feedback: "Opened help window.\n" + Usage, ShowHelp: true}, nil
}

// ExitCommand ends the session.
type ExitCommand struct{}

func (ExitCommand) Execute(model.Model) (*Result, error) {
	return &Result{Feedback: "Exiting Address Book as requested ...", Exit: true}, nil
}
