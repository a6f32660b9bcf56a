package jsonfile

import (
	"github.com/phrazzld/recruitbook/internal/domain"
)

const (
	personEntity         = "Person"
	jobApplicationEntity = "Job application"
)

// jsonAdaptedJobApplication is the stored form of a JobApplication. The owner is
// implied by the enclosing person record.
type jsonAdaptedJobApplication struct {
	JobTitle *string `json:"jobTitle"`
	Schedule *string `json:"schedule"`
	Label    *string `json:"label"`
	Remark   *string `json:"remark"`
}

func adaptJobApplication(app *domain.JobApplication) jsonAdaptedJobApplication {
	return jsonAdaptedJobApplication{
		JobTitle: ptr(app.JobTitle().String()),
		Schedule: ptr(app.Schedule().String()),
		Label:    ptr(app.Label().String()),
		Remark:   ptr(app.Remark().String()),
	}
}

// toTemplate converts the record into a detached application. The caller binds it
// to its owner.
func (j jsonAdaptedJobApplication) toTemplate() (*domain.JobApplication, error) {
	if j.JobTitle == nil {
		return nil, domain.NewMissingFieldError(jobApplicationEntity, "JobTitle")
	}
	title, err := domain.NewJobTitle(*j.JobTitle)
	if err != nil {
		return nil, err
	}

	if j.Schedule == nil {
		return nil, domain.NewMissingFieldError(jobApplicationEntity, "Schedule")
	}
	schedule, err := domain.NewSchedule(*j.Schedule)
	if err != nil {
		return nil, err
	}

	if j.Label == nil {
		return nil, domain.NewMissingFieldError(jobApplicationEntity, "Label")
	}
	label, err := domain.NewLabel(*j.Label)
	if err != nil {
		return nil, err
	}

	if j.Remark == nil {
		return nil, domain.NewMissingFieldError(jobApplicationEntity, "Remark")
	}

	return domain.NewJobApplication(title, schedule, label, domain.NewRemark(*j.Remark))
}

// jsonAdaptedPerson is the stored form of a Person.
type jsonAdaptedPerson struct {
	Name            *string                     `json:"name"`
	Phone           *string                     `json:"phone"`
	Email           *string                     `json:"email"`
	Address         *string                     `json:"address"`
	Tags            []string                    `json:"tags"`
	JobApplications []jsonAdaptedJobApplication `json:"jobApplications"`
}

func adaptPerson(p *domain.Person) jsonAdaptedPerson {
	tags := make([]string, 0, len(p.Tags()))
	for _, tag := range p.Tags() {
		tags = append(tags, tag.Name())
	}

	apps := make([]jsonAdaptedJobApplication, 0, len(p.JobApplications()))
	for _, app := range p.JobApplications() {
		apps = append(apps, adaptJobApplication(app))
	}

	return jsonAdaptedPerson{
		Name:            ptr(p.Name().String()),
		Phone:           ptr(p.Phone().String()),
		Email:           ptr(p.Email().String()),
		Address:         ptr(p.Address().String()),
		Tags:            tags,
		JobApplications: apps,
	}
}

// toModel converts the record into a Person owning its job applications.
func (j jsonAdaptedPerson) toModel() (*domain.Person, error) {
	if j.Name == nil {
		return nil, domain.NewMissingFieldError(personEntity, "Name")
	}
	name, err := domain.NewName(*j.Name)
	if err != nil {
		return nil, err
	}

	if j.Phone == nil {
		return nil, domain.NewMissingFieldError(personEntity, "Phone")
	}
	phone, err := domain.NewPhone(*j.Phone)
	if err != nil {
		return nil, err
	}

	if j.Email == nil {
		return nil, domain.NewMissingFieldError(personEntity, "Email")
	}
	email, err := domain.NewEmail(*j.Email)
	if err != nil {
		return nil, err
	}

	if j.Address == nil {
		return nil, domain.NewMissingFieldError(personEntity, "Address")
	}
	address, err := domain.NewAddress(*j.Address)
	if err != nil {
		return nil, err
	}

	tags, err := domain.NewTags(j.Tags...)
	if err != nil {
		return nil, err
	}

	templates := make([]*domain.JobApplication, 0, len(j.JobApplications))
	for _, ja := range j.JobApplications {
		template, err := ja.toTemplate()
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	return domain.NewPersonWithApplications(name, phone, email, address, tags, templates)
}

func ptr(s string) *string {
	return &s
}
