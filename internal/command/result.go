package command

import (
	"fmt"

	"github.com/phrazzld/recruitbook/internal/domain"
)

// Result represents the outcome of a command execution.
type Result struct {
	Feedback string

	// ShowHelp reports that help information should be shown to the user.
	ShowHelp bool
	// Exit reports that the application should exit.
	Exit bool

	// PersonNew is set when NewPerson should be shown in the detail pane.
	PersonNew bool
	// PersonUpdated is set when OldPerson was replaced by NewPerson.
	PersonUpdated bool

	OldPerson *domain.Person
	NewPerson *domain.Person
}

// NewResult creates a Result carrying only feedback.
func NewResult(feedback string) *Result {
	return &Result{Feedback: feedback}
}

// NewViewResult creates a Result that selects p for display.
func NewViewResult(feedback string, p *domain.Person) *Result {
	return &Result{Feedback: feedback, PersonNew: true, NewPerson: p}
}

// NewUpdateResult creates a Result recording that oldPerson was replaced by newPerson.
func NewUpdateResult(feedback string, oldPerson, newPerson *domain.Person) *Result {
	return &Result{
		Feedback:      feedback,
		PersonUpdated: true,
		OldPerson:     oldPerson,
		NewPerson:     newPerson,
	}
}

// Equal reports whether both results carry the same feedback, flags and new person.
// OldPerson is not compared.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.NewPerson == nil || other.NewPerson == nil {
		if r.NewPerson != other.NewPerson {
			return false
		}
	} else if !r.NewPerson.Equal(other.NewPerson) {
		return false
	}
	return r.Feedback == other.Feedback &&
		r.ShowHelp == other.ShowHelp &&
		r.Exit == other.Exit &&
		r.PersonNew == other.PersonNew &&
		r.PersonUpdated == other.PersonUpdated
}

func (r *Result) String() string {
	newPerson := "<nil>"
	if r.NewPerson != nil {
		newPerson = r.NewPerson.String()
	}
	return fmt.Sprintf("Result{feedback=%s, showHelp=%t, personNew=%t, personUpdated=%t, newPerson=%s, exit=%t}",
		r.Feedback, r.ShowHelp, r.PersonNew, r.PersonUpdated, newPerson, r.Exit)
}
