package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/store"
)

// Index is a one-based position in a displayed list.
type Index int

// ParseIndex parses a one-based index typed by the user.
func ParseIndex(raw string) (Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, NewError(MessageInvalidIndex, fmt.Errorf("%w: %q", ErrInvalidIndex, raw))
	}
	return Index(n), nil
}

// Zero returns the zero-based offset of i.
func (i Index) Zero() int {
	return int(i) - 1
}

func (i Index) inRange(length int) bool {
	return i > 0 && int(i) <= length
}

// personAt returns the person shown at index in the filtered list.
func personAt(persons store.ListView[*domain.Person], index Index) (*domain.Person, error) {
	if !index.inRange(persons.Len()) {
		return nil, invalidIndexError(MessageInvalidPersonIndex, index)
	}
	return persons.At(index.Zero()), nil
}

// jobRoleAt returns the job role shown at index in the filtered catalogue.
func jobRoleAt(roles store.ListView[domain.JobTitle], index Index) (domain.JobTitle, error) {
	if !index.inRange(roles.Len()) {
		return domain.JobTitle{}, invalidIndexError(MessageInvalidJobRoleIndex, index)
	}
	return roles.At(index.Zero()), nil
}

// applicationAt returns p's job application at index.
func applicationAt(p *domain.Person, index Index) (*domain.JobApplication, error) {
	apps := p.JobApplications()
	if !index.inRange(len(apps)) {
		return nil, invalidIndexError(MessageInvalidApplicationIndex, index)
	}
	return apps[index.Zero()], nil
}
