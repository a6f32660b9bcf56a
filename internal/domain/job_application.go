package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const jobApplicationEntity = "Job application"

// JobApplication is one application a person has for a role: the title, the interview
// schedule, a status label, and a free-text remark.
//
// An application references its owner by arena ID and identity key (the owner's Name)
// rather than by pointer, so the Person <-> JobApplication relation carries no cycle.
// A detached application (no owner) is a template used while deserializing, before
// the owning Person exists.
type JobApplication struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	ownerName Name
	jobTitle  JobTitle
	schedule  Schedule
	label     Label
	remark    Remark
}

// NewJobApplication creates a detached job application template.
// Every field is required; a zero-value field fails with a *MissingFieldError.
func NewJobApplication(
	jobTitle JobTitle,
	schedule Schedule,
	label Label,
	remark Remark,
) (*JobApplication, error) {
	if err := requireApplicationFields(jobTitle, schedule, label, remark); err != nil {
		return nil, err
	}

	return &JobApplication{
		id:       uuid.New(),
		jobTitle: jobTitle,
		schedule: schedule,
		label:    label,
		remark:   remark,
	}, nil
}

// NewJobApplicationFor creates a job application owned by person and registers it into
// the person's application set in the same call. On error, person is left untouched.
func NewJobApplicationFor(
	person *Person,
	jobTitle JobTitle,
	schedule Schedule,
	label Label,
	remark Remark,
) (*JobApplication, error) {
	if person == nil {
		return nil, NewMissingFieldError(jobApplicationEntity, "Person")
	}

	app, err := NewJobApplication(jobTitle, schedule, label, remark)
	if err != nil {
		return nil, err
	}

	app = app.attachTo(person)
	if err := person.AddJobApplication(app); err != nil {
		return nil, err
	}
	return app, nil
}

func requireApplicationFields(jobTitle JobTitle, schedule Schedule, label Label, remark Remark) error {
	switch {
	case jobTitle.IsZero():
		return NewMissingFieldError(jobApplicationEntity, "JobTitle")
	case schedule.IsZero():
		return NewMissingFieldError(jobApplicationEntity, "Schedule")
	case label.IsZero():
		return NewMissingFieldError(jobApplicationEntity, "Label")
	case remark.IsZero():
		return NewMissingFieldError(jobApplicationEntity, "Remark")
	}
	return nil
}

// attachTo returns a copy of a bound to person. The arena ID is preserved.
func (a *JobApplication) attachTo(person *Person) *JobApplication {
	bound := *a
	bound.ownerID = person.id
	bound.ownerName = person.name
	return &bound
}

// BoundTo returns a copy of a owned by person, without registering it in the
// person's application set. The arena ID is preserved.
func (a *JobApplication) BoundTo(person *Person) *JobApplication {
	return a.attachTo(person)
}

// Detach returns a copy of a with the owner cleared, suitable as a template for
// another person or for an edit.
func (a *JobApplication) Detach() *JobApplication {
	detached := *a
	detached.ownerID = uuid.Nil
	detached.ownerName = Name{}
	return &detached
}

// WithRemark returns a detached copy of a with a different remark.
func (a *JobApplication) WithRemark(remark Remark) *JobApplication {
	edited := a.Detach()
	edited.remark = remark
	return edited
}

// ID returns the application's arena identifier.
func (a *JobApplication) ID() uuid.UUID { return a.id }

// OwnerID returns the owning person's arena identifier, or uuid.Nil when detached.
func (a *JobApplication) OwnerID() uuid.UUID { return a.ownerID }

// OwnerName returns the owning person's name, or the zero Name when detached.
func (a *JobApplication) OwnerName() Name { return a.ownerName }

// IsDetached reports whether the application has no owner.
func (a *JobApplication) IsDetached() bool { return a.ownerID == uuid.Nil }

func (a *JobApplication) JobTitle() JobTitle { return a.jobTitle }
func (a *JobApplication) Schedule() Schedule { return a.schedule }
func (a *JobApplication) Label() Label { return a.label }
func (a *JobApplication) Remark() Remark { return a.remark }

// IsSameApplication reports whether both applications are for the same person, role,
// schedule and label. Remark is free text and does not contribute to identity.
// This defines a weaker notion of equality between two applications.
func (a *JobApplication) IsSameApplication(other *JobApplication) bool {
	if other == nil {
		return false
	}
	if a == other {
		return true
	}

	return a.ownerName.Equal(other.ownerName) &&
		a.label.Equal(other.label) &&
		a.jobTitle.Equal(other.jobTitle) &&
		a.schedule.Equal(other.schedule)
}

// Equal reports whether both applications are for the same person and have the same
// data fields, remark included. This defines a stronger notion of equality.
//
// The owner is compared by identity key; comparing the owner's full data would recurse
// back through the owner's own application set.
func (a *JobApplication) Equal(other *JobApplication) bool {
	if other == nil {
		return false
	}
	if a == other {
		return true
	}

	return a.IsSameApplication(other) && a.remark.Equal(other.remark)
}

func (a *JobApplication) String() string {
	return fmt.Sprintf("%s; Interview: %s; Label: %s; Remark: %s",
		a.jobTitle, a.schedule, a.label, a.remark)
}
