package domain

import (
	"regexp"
	"strings"
	"time"
)

// Constraint messages for job application fields.
const (
	JobTitleConstraints = "Job titles should start with an alphanumeric character and may only contain " +
		"alphanumeric characters, spaces and the symbols , . & / ( ) + # -"
	ScheduleConstraints = "Schedules should be a valid date and time in the format YYYY-MM-DD HH:MM"
	LabelConstraints    = "Labels should be one of: INTERESTED, APPLIED, INTERVIEWING, OFFERED, REJECTED, ACCEPTED"
)

// ScheduleLayout is the time layout of an interview schedule.
const ScheduleLayout = "2006-01-02 15:04"

var jobTitleRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ,.&/()+#-]*$`)

// JobTitle is the title of the role a person is being considered for.
type JobTitle struct {
	value string
}

// IsValidJobTitle reports whether raw is a valid job title.
func IsValidJobTitle(raw string) bool {
	return jobTitleRegex.MatchString(raw)
}

// NewJobTitle validates raw and wraps it in a JobTitle.
func NewJobTitle(raw string) (JobTitle, error) {
	if !IsValidJobTitle(raw) {
		return JobTitle{}, newInvalidFormatError("job title", raw, JobTitleConstraints)
	}
	return JobTitle{value: raw}, nil
}

func (j JobTitle) String() string { return j.value }
func (j JobTitle) IsZero() bool { return j.value == "" }
func (j JobTitle) Equal(o JobTitle) bool { return j.value == o.value }

// Schedule is the date and time of an interview.
// The wrapped value is kept in canonical ScheduleLayout form so equality is textual.
type Schedule struct {
	value string
}

// IsValidSchedule reports whether raw parses with ScheduleLayout.
func IsValidSchedule(raw string) bool {
	_, err := time.Parse(ScheduleLayout, raw)
	return err == nil
}

// NewSchedule validates raw and wraps it in a Schedule.
func NewSchedule(raw string) (Schedule, error) {
	t, err := time.Parse(ScheduleLayout, raw)
	if err != nil {
		return Schedule{}, newInvalidFormatError("schedule", raw, ScheduleConstraints)
	}
	return Schedule{value: t.Format(ScheduleLayout)}, nil
}

// ScheduleAt wraps t, truncated to the minute.
func ScheduleAt(t time.Time) Schedule {
	return Schedule{value: t.Format(ScheduleLayout)}
}

// Time returns the schedule as a time.Time in UTC. The zero Schedule returns the zero time.
func (s Schedule) Time() time.Time {
	if s.value == "" {
		return time.Time{}
	}
	t, _ := time.Parse(ScheduleLayout, s.value)
	return t
}

func (s Schedule) String() string { return s.value }
func (s Schedule) IsZero() bool { return s.value == "" }
func (s Schedule) Equal(o Schedule) bool { return s.value == o.value }

// Before reports whether s is earlier than o.
func (s Schedule) Before(o Schedule) bool { return s.Time().Before(o.Time()) }

// Label is the status of a job application.
type Label struct {
	value string
}

// Possible label values
const (
	LabelInterested   = "INTERESTED"
	LabelApplied      = "APPLIED"
	LabelInterviewing = "INTERVIEWING"
	LabelOffered      = "OFFERED"
	LabelRejected     = "REJECTED"
	LabelAccepted     = "ACCEPTED"
)

// LabelValues lists the accepted labels in display order.
var LabelValues = []string{
	LabelInterested, LabelApplied, LabelInterviewing, LabelOffered, LabelRejected, LabelAccepted,
}

// IsValidLabel reports whether raw names one of LabelValues, ignoring case.
func IsValidLabel(raw string) bool {
	switch strings.ToUpper(raw) {
	case LabelInterested, LabelApplied, LabelInterviewing, LabelOffered, LabelRejected, LabelAccepted:
		return true
	default:
		return false
	}
}

// NewLabel validates raw and wraps its upper-case form in a Label.
func NewLabel(raw string) (Label, error) {
	if !IsValidLabel(raw) {
		return Label{}, newInvalidFormatError("label", raw, LabelConstraints)
	}
	return Label{value: strings.ToUpper(raw)}, nil
}

func (l Label) String() string { return l.value }
func (l Label) IsZero() bool { return l.value == "" }
func (l Label) Equal(o Label) bool { return l.value == o.value }

// Remark is free text attached to a job application. It may be empty and is never
// part of an application's identity.
type Remark struct {
	value string
	set   bool
}

// NewRemark wraps raw in a Remark. Every string is a valid remark.
func NewRemark(raw string) Remark {
	return Remark{value: raw, set: true}
}

func (r Remark) String() string { return r.value }

// IsZero reports whether the remark was never set. An explicitly empty remark is not zero.
func (r Remark) IsZero() bool { return !r.set }

// Equal compares the remark text only.
func (r Remark) Equal(o Remark) bool { return r.value == o.value }
