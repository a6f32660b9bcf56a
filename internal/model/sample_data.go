package model

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/recruitbook/internal/domain"
)

type sampleApplication struct {
	title, schedule, label, remark string
}

type samplePerson struct {
	name, phone, email, address string
	tags                        []string
	applications                []sampleApplication
}

var samplePersons = []samplePerson{
	{
		name: "Alex Yeoh", phone: "87438807", email: "alexyeoh@example.com",
		address: "Blk 30 Geylang Street 29, #06-40", tags: []string{"friends"},
		applications: []sampleApplication{
			{"Software Engineer", "2024-03-04 10:00", "INTERVIEWING", "Second round with the platform team"},
		},
	},
	{
		name: "Bernice Yu", phone: "99272758", email: "berniceyu@example.com",
		address: "Blk 30 Lorong 3 Serangoon Gardens, #07-18", tags: []string{"colleagues", "friends"},
		applications: []sampleApplication{
			{"Data Analyst", "2024-03-05 14:30", "APPLIED", ""},
			{"Business Analyst", "2024-03-12 09:00", "INTERESTED", "Referral from Alex"},
		},
	},
	{
		name: "Charlotte Oliveiro", phone: "93210283", email: "charlotte@example.com",
		address: "Blk 11 Ang Mo Kio Street 74, #11-04", tags: []string{"neighbours"},
		applications: []sampleApplication{
			{"Product Manager", "2024-03-06 11:00", "OFFERED", "Awaiting compensation details"},
		},
	},
	{
		name: "David Li", phone: "91031282", email: "lidavid@example.com",
		address: "Blk 436 Serangoon Gardens Street 26, #16-43", tags: []string{"family"},
		applications: []sampleApplication{
			{"DevOps Engineer", "2024-03-07 16:00", "REJECTED", ""},
		},
	},
	{
		name: "Irfan Ibrahim", phone: "92492021", email: "irfan@example.com",
		address: "Blk 47 Tampines Street 20, #17-35", tags: []string{"classmates"},
		applications: []sampleApplication{
			{"QA Engineer", "2024-03-08 13:00", "ACCEPTED", "Starts next month"},
		},
	},
	{
		name: "Roy Balakrishnan", phone: "92624417", email: "royb@example.com",
		address: "Blk 45 Aljunied Street 85, #11-31", tags: []string{"colleagues"},
		applications: []sampleApplication{
			{"Frontend Developer", "2024-03-04 10:00", "INTERVIEWING", "Panel interview"},
		},
	},
}

// SamplePersons builds the persons shown on first launch.
func SamplePersons() ([]*domain.Person, error) {
	persons := make([]*domain.Person, 0, len(samplePersons))
	for _, sp := range samplePersons {
		p, err := buildSamplePerson(sp)
		if err != nil {
			return nil, fmt.Errorf("sample person %q: %w", sp.name, err)
		}
		persons = append(persons, p)
	}
	return persons, nil
}

func buildSamplePerson(sp samplePerson) (*domain.Person, error) {
	name, err := domain.NewName(sp.name)
	if err != nil {
		return nil, err
	}
	phone, err := domain.NewPhone(sp.phone)
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail(sp.email)
	if err != nil {
		return nil, err
	}
	address, err := domain.NewAddress(sp.address)
	if err != nil {
		return nil, err
	}
	tags, err := domain.NewTags(sp.tags...)
	if err != nil {
		return nil, err
	}
	p, err := domain.NewPerson(name, phone, email, address, tags)
	if err != nil {
		return nil, err
	}

	for _, sa := range sp.applications {
		title, err := domain.NewJobTitle(sa.title)
		if err != nil {
			return nil, err
		}
		schedule, err := domain.NewSchedule(sa.schedule)
		if err != nil {
			return nil, err
		}
		label, err := domain.NewLabel(sa.label)
		if err != nil {
			return nil, err
		}
		if _, err := domain.NewJobApplicationFor(p, title, schedule, label, domain.NewRemark(sa.remark)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SampleAddressBook returns an address book populated with SamplePersons.
func SampleAddressBook(logger *slog.Logger) (*AddressBook, error) {
	persons, err := SamplePersons()
	if err != nil {
		return nil, err
	}
	ab := NewAddressBook(logger)
	if err := ab.SetPersons(persons); err != nil {
		return nil, err
	}
	return ab, nil
}

// SampleScheduleBoard returns a board holding the distinct interview schedules of
// the sample persons.
func SampleScheduleBoard(logger *slog.Logger) (*ScheduleBoard, error) {
	ab, err := SampleAddressBook(logger)
	if err != nil {
		return nil, err
	}
	return ScheduleBoardFor(ab, logger)
}

// ScheduleBoardFor returns a board holding the distinct schedules of every job
// application in ab, in address-book order.
func ScheduleBoardFor(ab ReadOnlyAddressBook, logger *slog.Logger) (*ScheduleBoard, error) {
	sb := NewScheduleBoard(logger)
	if err := sb.SetSchedules(schedulesOf(ab)); err != nil {
		return nil, err
	}
	return sb, nil
}

func schedulesOf(ab ReadOnlyAddressBook) []domain.Schedule {
	var schedules []domain.Schedule
	seen := make(map[domain.Schedule]struct{})
	for _, p := range ab.Persons().All() {
		for _, app := range p.JobApplications() {
			if _, ok := seen[app.Schedule()]; ok {
				continue
			}
			seen[app.Schedule()] = struct{}{}
			schedules = append(schedules, app.Schedule())
		}
	}
	return schedules
}
