package testutils

import (
	"testing"

	"github.com/phrazzld/recruitbook/internal/domain"
)

// Raw schedules shared by the typical persons.
const (
	Schedule1 = "2024-04-01 10:00"
	Schedule2 = "2024-04-02 14:30"
	Schedule3 = "2024-04-03 09:15"
)

// Job roles relative to the default catalogue.
const (
	JobRoleInDefaultList    = "Software Engineer"
	JobRoleNotInDefaultList = "Marine Biologist"
)

// AliceSpec and friends are the typical persons used across tests.
var (
	AliceSpec = PersonSpec{
		Name: "Alice Pauline", Phone: "94351253", Email: "alice@example.com",
		Address: "123, Jurong West Ave 6, #08-111", Tags: []string{"friends"},
		Applications: []ApplicationSpec{
			{JobTitle: "Software Engineer", Schedule: Schedule1, Label: "INTERESTED", Remark: ""},
		},
	}
	BensonSpec = PersonSpec{
		Name: "Benson Meier", Phone: "98765432", Email: "johnd@example.com",
		Address: "311, Clementi Ave 2, #02-25", Tags: []string{"owesMoney", "friends"},
		Applications: []ApplicationSpec{
			{JobTitle: "Data Analyst", Schedule: Schedule2, Label: "APPLIED", Remark: "Sent portfolio"},
		},
	}
	CarlSpec = PersonSpec{
		Name: "Carl Kurz", Phone: "95352563", Email: "heinz@example.com",
		Address: "wall street",
		Applications: []ApplicationSpec{
			{JobTitle: "Product Manager", Schedule: Schedule1, Label: "INTERVIEWING", Remark: ""},
		},
	}
	DanielSpec = PersonSpec{
		Name: "Daniel Meier", Phone: "87652533", Email: "cornelia@example.com",
		Address: "10th street", Tags: []string{"friends"},
		Applications: []ApplicationSpec{
			{JobTitle: "DevOps Engineer", Schedule: Schedule3, Label: "OFFERED", Remark: "Negotiating"},
		},
	}
	ElleSpec = PersonSpec{
		Name: "Elle Meyer", Phone: "9482224", Email: "werner@example.com",
		Address: "michegan ave",
	}
)

// TypicalPersonSpecs returns the typical persons in their canonical order.
func TypicalPersonSpecs() []PersonSpec {
	return []PersonSpec{AliceSpec, BensonSpec, CarlSpec, DanielSpec, ElleSpec}
}

// TypicalPersons builds fresh instances of the typical persons.
func TypicalPersons(t *testing.T) []*domain.Person {
	t.Helper()

	specs := TypicalPersonSpecs()
	persons := make([]*domain.Person, 0, len(specs))
	for _, spec := range specs {
		persons = append(persons, MustBuildPerson(t, spec))
	}
	return persons
}

// Alice builds a fresh Alice.
func Alice(t *testing.T) *domain.Person {
	t.Helper()
	return MustBuildPerson(t, AliceSpec)
}

// Benson builds a fresh Benson.
func Benson(t *testing.T) *domain.Person {
	t.Helper()
	return MustBuildPerson(t, BensonSpec)
}

// AliceWith builds Alice modified by opts.
func AliceWith(t *testing.T, opts ...PersonOption) *domain.Person {
	t.Helper()

	spec := AliceSpec
	spec.Tags = append([]string(nil), AliceSpec.Tags...)
	spec.Applications = append([]ApplicationSpec(nil), AliceSpec.Applications...)
	for _, opt := range opts {
		opt(&spec)
	}
	return MustBuildPerson(t, spec)
}
