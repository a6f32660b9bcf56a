package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const personEntity = "Person"

// Person represents a contact in the address book.
// Guarantees: details are present and validated; Name, Phone, Email, Address and tags
// never change after construction. The only in-place mutation is appending to the
// job application set, and every application in that set is owned by this person.
//
// Editing a person means constructing a replacement (WithDetails, WithApplications)
// and swapping it into the owning list.
type Person struct {
	id      uuid.UUID
	name    Name
	phone   Phone
	email   Email
	address Address

	tags         tagSet
	applications []*JobApplication
}

// NewPerson creates a person with no job applications.
// Every field must be present; a zero-value field fails with a *MissingFieldError.
func NewPerson(name Name, phone Phone, email Email, address Address, tags []Tag) (*Person, error) {
	return newPerson(uuid.New(), name, phone, email, address, tags, nil)
}

// NewPersonWithApplications creates a person holding copies of apps rebound to the new
// person. Detached templates and applications copied from another person are both
// accepted; duplicates under full equality collapse into one.
func NewPersonWithApplications(
	name Name,
	phone Phone,
	email Email,
	address Address,
	tags []Tag,
	apps []*JobApplication,
) (*Person, error) {
	return newPerson(uuid.New(), name, phone, email, address, tags, apps)
}

// NewPersonWithApplication creates a person with a single job application built
// in-line from its fields.
func NewPersonWithApplication(
	name Name,
	phone Phone,
	email Email,
	address Address,
	jobTitle JobTitle,
	schedule Schedule,
	label Label,
	remark Remark,
	tags []Tag,
) (*Person, error) {
	p, err := NewPerson(name, phone, email, address, tags)
	if err != nil {
		return nil, err
	}
	if _, err := NewJobApplicationFor(p, jobTitle, schedule, label, remark); err != nil {
		return nil, err
	}
	return p, nil
}

func newPerson(
	id uuid.UUID,
	name Name,
	phone Phone,
	email Email,
	address Address,
	tags []Tag,
	apps []*JobApplication,
) (*Person, error) {
	switch {
	case name.IsZero():
		return nil, NewMissingFieldError(personEntity, "Name")
	case phone.IsZero():
		return nil, NewMissingFieldError(personEntity, "Phone")
	case email.IsZero():
		return nil, NewMissingFieldError(personEntity, "Email")
	case address.IsZero():
		return nil, NewMissingFieldError(personEntity, "Address")
	}
	for _, t := range tags {
		if t.IsZero() {
			return nil, NewMissingFieldError(personEntity, "Tag")
		}
	}

	p := &Person{
		id:      id,
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		tags:    newTagSet(tags),
	}
	for _, app := range apps {
		if app == nil {
			continue
		}
		p.appendApplication(app.attachTo(p))
	}
	return p, nil
}

// WithDetails returns a replacement for p with new details. The replacement keeps
// p's arena ID and job applications; the applications are rebound so their owner
// reference follows a renamed person.
func (p *Person) WithDetails(name Name, phone Phone, email Email, address Address, tags []Tag) (*Person, error) {
	return newPerson(p.id, name, phone, email, address, tags, p.applications)
}

// WithApplications returns a replacement for p whose application set is exactly apps.
func (p *Person) WithApplications(apps []*JobApplication) *Person {
	replacement := &Person{
		id:      p.id,
		name:    p.name,
		phone:   p.phone,
		email:   p.email,
		address: p.address,
		tags:    newTagSet(p.tags.sorted()),
	}
	for _, app := range apps {
		if app == nil {
			continue
		}
		replacement.appendApplication(app.attachTo(replacement))
	}
	return replacement
}

// AddJobApplication appends app to the person's application set. The set deduplicates
// by full equality only: an application that matches an existing one by identity but
// differs in remark is kept alongside it.
// Returns ErrForeignApplication when app is detached or owned by another person.
func (p *Person) AddJobApplication(app *JobApplication) error {
	if app == nil {
		return NewMissingFieldError(personEntity, "JobApplication")
	}
	if app.ownerID != p.id {
		return ErrForeignApplication
	}
	p.appendApplication(app)
	return nil
}

func (p *Person) appendApplication(app *JobApplication) {
	for _, existing := range p.applications {
		if existing.Equal(app) {
			return
		}
	}
	p.applications = append(p.applications, app)
}

// ID returns the person's arena identifier. It is stable across edits.
func (p *Person) ID() uuid.UUID { return p.id }

func (p *Person) Name() Name { return p.name }
func (p *Person) Phone() Phone { return p.phone }
func (p *Person) Email() Email { return p.email }
func (p *Person) Address() Address { return p.address }

// Tags returns a copy of the person's tags ordered by name.
func (p *Person) Tags() []Tag {
	return p.tags.sorted()
}

// HasTag reports whether the person carries tag.
func (p *Person) HasTag(tag Tag) bool {
	_, ok := p.tags[tag]
	return ok
}

// JobApplications returns a copy of the application set in insertion order.
func (p *Person) JobApplications() []*JobApplication {
	out := make([]*JobApplication, len(p.applications))
	copy(out, p.applications)
	return out
}

// IsSamePerson reports whether both persons have the same name.
// This defines a weaker notion of equality between two persons.
func (p *Person) IsSamePerson(other *Person) bool {
	if other == nil {
		return false
	}
	if p == other {
		return true
	}
	return p.name.Equal(other.name)
}

// Equal reports whether both persons have the same identity and data fields,
// tags and job applications included. The arena ID is not data and is ignored.
// This defines a stronger notion of equality between two persons.
func (p *Person) Equal(other *Person) bool {
	if other == nil {
		return false
	}
	if p == other {
		return true
	}

	return p.name.Equal(other.name) &&
		p.phone.Equal(other.phone) &&
		p.email.Equal(other.email) &&
		p.address.Equal(other.address) &&
		p.tags.equal(other.tags) &&
		applicationSetsEqual(p.applications, other.applications)
}

func applicationSetsEqual(a, b []*JobApplication) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range b {
			if x.Equal(y) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (p *Person) String() string {
	var tags strings.Builder
	for _, t := range p.Tags() {
		tags.WriteString(t.String())
	}
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s; Tags: %s",
		p.name, p.phone, p.email, p.address, tags.String())
}
