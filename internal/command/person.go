package command

import (
	"fmt"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/store"
)

// AddCommand adds a person to the address book.
type AddCommand struct {
	Person *domain.Person
}

func (c AddCommand) Execute(m model.Model) (*Result, error) {
	if c.Person == nil {
		return nil, Translate(domain.NewMissingFieldError("Person", "Person"))
	}
	if m.HasPerson(c.Person) {
		return nil, NewError(MessageDuplicatePerson, store.ErrDuplicatePerson)
	}
	if err := m.AddPerson(c.Person); err != nil {
		return nil, Translate(err)
	}
	return syncAfter(m, NewViewResult(fmt.Sprintf("New person added: %s", c.Person), c.Person))
}

// EditPersonDescriptor holds the fields to change on a person. Nil fields are kept.
type EditPersonDescriptor struct {
	Name    *domain.Name
	Phone   *domain.Phone
	Email   *domain.Email
	Address *domain.Address
	// Tags replaces the whole tag set when non-nil. An empty slice clears it.
	Tags *[]domain.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

func (d EditPersonDescriptor) apply(p *domain.Person) (*domain.Person, error) {
	name, phone, email, address, tags := p.Name(), p.Phone(), p.Email(), p.Address(), p.Tags()
	if d.Name != nil {
		name = *d.Name
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	if d.Email != nil {
		email = *d.Email
	}
	if d.Address != nil {
		address = *d.Address
	}
	if d.Tags != nil {
		tags = *d.Tags
	}
	return p.WithDetails(name, phone, email, address, tags)
}

// EditCommand edits the details of the person at Index.
type EditCommand struct {
	Index      Index
	Descriptor EditPersonDescriptor
}

func (c EditCommand) Execute(m model.Model) (*Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return nil, NewError(MessageNotEdited, nil)
	}
	target, err := personAt(m.FilteredPersons(), c.Index)
	if err != nil {
		return nil, err
	}
	edited, err := c.Descriptor.apply(target)
	if err != nil {
		return nil, Translate(err)
	}
	if err := m.SetPerson(target, edited); err != nil {
		return nil, Translate(err)
	}
	m.UpdateFilteredPersonList(store.ShowAll[*domain.Person])
	return syncAfter(m, NewUpdateResult(fmt.Sprintf("Edited Person: %s", edited), target, edited))
}

// DeleteCommand deletes the person at Index together with their job applications.
type DeleteCommand struct {
	Index Index
}

func (c DeleteCommand) Execute(m model.Model) (*Result, error) {
	target, err := personAt(m.FilteredPersons(), c.Index)
	if err != nil {
		return nil, err
	}
	if err := m.DeletePerson(target); err != nil {
		return nil, Translate(err)
	}
	return syncAfter(m, NewResult(fmt.Sprintf("Deleted Person: %s", target)))
}

// ClearCommand removes every person. The job-role catalogue is kept.
type ClearCommand struct{}

func (ClearCommand) Execute(m model.Model) (*Result, error) {
	cleared := model.NewAddressBook(nil)
	if err := cleared.SetJobRoles(m.AddressBook().JobRoles().Items()); err != nil {
		return nil, Translate(err)
	}
	if err := m.SetAddressBook(cleared); err != nil {
		return nil, Translate(err)
	}
	return syncAfter(m, NewResult("Address book has been cleared!"))
}

// ViewCommand selects the person at Index for display.
type ViewCommand struct {
	Index Index
}

func (c ViewCommand) Execute(m model.Model) (*Result, error) {
	p, err := personAt(m.FilteredPersons(), c.Index)
	if err != nil {
		return nil, err
	}
	return NewViewResult(fmt.Sprintf("Viewing Person: %s", p.Name()), p), nil
}

// FindCommand shows the persons whose name contains any of Keywords as a whole word.
type FindCommand struct {
	Keywords []string
}

func (c FindCommand) Execute(m model.Model) (*Result, error) {
	if len(c.Keywords) == 0 {
		return nil, NewError(MessageEmptyKeywords, nil)
	}
	m.UpdateFilteredPersonList(domain.NameContainsKeywords(c.Keywords))
	return NewResult(personsListed(m.FilteredPersons().Len())), nil
}

// ListCommand shows every person.
type ListCommand struct{}

func (ListCommand) Execute(m model.Model) (*Result, error) {
	m.UpdateFilteredPersonList(store.ShowAll[*domain.Person])
	return NewResult("Listed all persons"), nil
}

func personsListed(n int) string {
	return fmt.Sprintf("%d persons listed!", n)
}
