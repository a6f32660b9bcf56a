package testutils

import (
	"testing"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/stretchr/testify/require"
)

// ApplicationSpec holds the raw fields of a job application for testing.
type ApplicationSpec struct {
	JobTitle string
	Schedule string
	Label    string
	Remark   string
}

// PersonSpec holds the raw fields of a person for testing.
type PersonSpec struct {
	Name         string
	Phone        string
	Email        string
	Address      string
	Tags         []string
	Applications []ApplicationSpec
}

// PersonOption is a function that configures a PersonSpec for testing.
type PersonOption func(*PersonSpec)

// WithName sets the person's name.
func WithName(name string) PersonOption {
	return func(s *PersonSpec) {
		s.Name = name
	}
}

// WithPhone sets the person's phone number.
func WithPhone(phone string) PersonOption {
	return func(s *PersonSpec) {
		s.Phone = phone
	}
}

// WithEmail sets the person's email.
func WithEmail(email string) PersonOption {
	return func(s *PersonSpec) {
		s.Email = email
	}
}

// WithAddress sets the person's address.
func WithAddress(address string) PersonOption {
	return func(s *PersonSpec) {
		s.Address = address
	}
}

// WithTags replaces the person's tags.
func WithTags(tags ...string) PersonOption {
	return func(s *PersonSpec) {
		s.Tags = tags
	}
}

// WithApplication appends a job application.
func WithApplication(title, schedule, label, remark string) PersonOption {
	return func(s *PersonSpec) {
		s.Applications = append(s.Applications, ApplicationSpec{
			JobTitle: title,
			Schedule: schedule,
			Label:    label,
			Remark:   remark,
		})
	}
}

// WithoutApplications clears the person's job applications.
func WithoutApplications() PersonOption {
	return func(s *PersonSpec) {
		s.Applications = nil
	}
}

// DefaultPersonSpec returns the spec used by MustCreatePersonForTest when no
// options are given.
func DefaultPersonSpec() PersonSpec {
	return PersonSpec{
		Name:    "Amy Bee",
		Phone:   "85355255",
		Email:   "amy@gmail.com",
		Address: "123, Jurong West Ave 6, #08-111",
	}
}

// MustCreatePersonForTest builds a Person from the default spec modified by opts.
// Job applications are registered through NewJobApplicationFor.
func MustCreatePersonForTest(t *testing.T, opts ...PersonOption) *domain.Person {
	t.Helper()

	spec := DefaultPersonSpec()
	for _, opt := range opts {
		opt(&spec)
	}
	return MustBuildPerson(t, spec)
}

// MustBuildPerson builds a Person from spec.
func MustBuildPerson(t *testing.T, spec PersonSpec) *domain.Person {
	t.Helper()

	name, err := domain.NewName(spec.Name)
	require.NoError(t, err, "invalid name")
	phone, err := domain.NewPhone(spec.Phone)
	require.NoError(t, err, "invalid phone")
	email, err := domain.NewEmail(spec.Email)
	require.NoError(t, err, "invalid email")
	address, err := domain.NewAddress(spec.Address)
	require.NoError(t, err, "invalid address")
	tags, err := domain.NewTags(spec.Tags...)
	require.NoError(t, err, "invalid tags")

	p, err := domain.NewPerson(name, phone, email, address, tags)
	require.NoError(t, err, "Failed to create test person")

	for _, a := range spec.Applications {
		_, err := domain.NewJobApplicationFor(p,
			MustJobTitle(t, a.JobTitle), MustSchedule(t, a.Schedule), MustLabel(t, a.Label),
			domain.NewRemark(a.Remark))
		require.NoError(t, err, "Failed to create test job application")
	}
	return p
}

// MustCreateApplicationTemplate builds a detached job application.
func MustCreateApplicationTemplate(t *testing.T, title, schedule, label, remark string) *domain.JobApplication {
	t.Helper()

	app, err := domain.NewJobApplication(
		MustJobTitle(t, title), MustSchedule(t, schedule), MustLabel(t, label), domain.NewRemark(remark))
	require.NoError(t, err, "Failed to create test job application")
	return app
}

// MustJobTitle parses a job title or fails the test.
func MustJobTitle(t *testing.T, raw string) domain.JobTitle {
	t.Helper()
	v, err := domain.NewJobTitle(raw)
	require.NoError(t, err)
	return v
}

// MustSchedule parses a schedule or fails the test.
func MustSchedule(t *testing.T, raw string) domain.Schedule {
	t.Helper()
	v, err := domain.NewSchedule(raw)
	require.NoError(t, err)
	return v
}

// MustLabel parses a label or fails the test.
func MustLabel(t *testing.T, raw string) domain.Label {
	t.Helper()
	v, err := domain.NewLabel(raw)
	require.NoError(t, err)
	return v
}

// MustPhone parses a phone number or fails the test.
func MustPhone(t *testing.T, raw string) domain.Phone {
	t.Helper()
	v, err := domain.NewPhone(raw)
	require.NoError(t, err)
	return v
}
