package command

import (
	"fmt"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/store"
)

// ApplyCommand adds a job application to the person at Index.
// Application is a detached template; it is bound to the person on execution.
type ApplyCommand struct {
	Index       Index
	Application *domain.JobApplication
}

func (c ApplyCommand) Execute(m model.Model) (*Result, error) {
	if c.Application == nil {
		return nil, Translate(domain.NewMissingFieldError("Job application", "JobApplication"))
	}
	target, err := personAt(m.FilteredPersons(), c.Index)
	if err != nil {
		return nil, err
	}
	updated, err := m.AddJobApplication(target, c.Application)
	if err != nil {
		return nil, Translate(err)
	}
	feedback := fmt.Sprintf("New job application added for %s: %s", updated.Name(), c.Application)
	return syncAfter(m, NewUpdateResult(feedback, target, updated))
}

// EditApplicationDescriptor holds the job-application fields to change.
// Nil fields are kept.
type EditApplicationDescriptor struct {
	JobTitle *domain.JobTitle
	Schedule *domain.Schedule
	Label    *domain.Label
	Remark   *domain.Remark
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditApplicationDescriptor) IsAnyFieldEdited() bool {
	return d.JobTitle != nil || d.Schedule != nil || d.Label != nil || d.Remark != nil
}

func (d EditApplicationDescriptor) apply(app *domain.JobApplication) (*domain.JobApplication, error) {
	title, schedule, label, remark := app.JobTitle(), app.Schedule(), app.Label(), app.Remark()
	if d.JobTitle != nil {
		title = *d.JobTitle
	}
	if d.Schedule != nil {
		schedule = *d.Schedule
	}
	if d.Label != nil {
		label = *d.Label
	}
	if d.Remark != nil {
		remark = *d.Remark
	}
	return domain.NewJobApplication(title, schedule, label, remark)
}

// EditApplicationCommand edits one job application of the person at PersonIndex.
type EditApplicationCommand struct {
	PersonIndex      Index
	ApplicationIndex Index
	Descriptor       EditApplicationDescriptor
}

func (c EditApplicationCommand) Execute(m model.Model) (*Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return nil, NewError(MessageNotEdited, nil)
	}
	target, err := personAt(m.FilteredPersons(), c.PersonIndex)
	if err != nil {
		return nil, err
	}
	app, err := applicationAt(target, c.ApplicationIndex)
	if err != nil {
		return nil, err
	}
	edited, err := c.Descriptor.apply(app)
	if err != nil {
		return nil, Translate(err)
	}
	updated, err := m.SetJobApplication(target, app, edited)
	if err != nil {
		return nil, Translate(err)
	}
	feedback := fmt.Sprintf("Edited job application for %s: %s", updated.Name(), edited)
	return syncAfter(m, NewUpdateResult(feedback, target, updated))
}

// UnapplyCommand deletes one job application of the person at PersonIndex.
type UnapplyCommand struct {
	PersonIndex      Index
	ApplicationIndex Index
}

func (c UnapplyCommand) Execute(m model.Model) (*Result, error) {
	target, err := personAt(m.FilteredPersons(), c.PersonIndex)
	if err != nil {
		return nil, err
	}
	app, err := applicationAt(target, c.ApplicationIndex)
	if err != nil {
		return nil, err
	}
	updated, err := m.DeleteJobApplication(target, app)
	if err != nil {
		return nil, Translate(err)
	}
	feedback := fmt.Sprintf("Deleted job application for %s: %s", updated.Name(), app)
	return syncAfter(m, NewUpdateResult(feedback, target, updated))
}

// SearchCommand shows the persons with a job application matching every given
// criterion. Keywords match any application detail as whole words; a non-zero
// Label additionally requires an application with that label.
type SearchCommand struct {
	Keywords []string
	Label    domain.Label
}

func (c SearchCommand) Execute(m model.Model) (*Result, error) {
	if len(c.Keywords) == 0 && c.Label.IsZero() {
		return nil, NewError(MessageEmptyKeywords, nil)
	}

	var predicates []store.Predicate[*domain.Person]
	if len(c.Keywords) > 0 {
		matchers := make([]store.Predicate[*domain.Person], 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			matchers = append(matchers, domain.ApplicationsContainKeyword(kw))
		}
		predicates = append(predicates, anyOf(matchers))
	}
	if !c.Label.IsZero() {
		predicates = append(predicates, domain.HasLabel(c.Label))
	}

	m.UpdateFilteredPersonList(allOf(predicates))
	return NewResult(personsListed(m.FilteredPersons().Len())), nil
}

func anyOf[T any](predicates []store.Predicate[T]) store.Predicate[T] {
	return func(v T) bool {
		for _, p := range predicates {
			if p(v) {
				return true
			}
		}
		return false
	}
}

func allOf[T any](predicates []store.Predicate[T]) store.Predicate[T] {
	return func(v T) bool {
		for _, p := range predicates {
			if !p(v) {
				return false
			}
		}
		return true
	}
}
