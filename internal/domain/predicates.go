package domain

import (
	"strings"
	"time"
)

// ContainsWordIgnoreCase reports whether sentence contains word as a whole,
// space-separated token, ignoring case. word must be a single non-empty word;
// an empty or multi-word argument never matches.
func ContainsWordIgnoreCase(sentence, word string) bool {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" || len(strings.Fields(trimmed)) != 1 {
		return false
	}

	for _, token := range strings.Fields(sentence) {
		if strings.EqualFold(token, trimmed) {
			return true
		}
	}
	return false
}

// NameContainsKeywords returns a predicate matching persons whose name contains any of
// keywords as a whole word, ignoring case.
func NameContainsKeywords(keywords []string) func(*Person) bool {
	kws := append([]string(nil), keywords...)
	return func(p *Person) bool {
		for _, kw := range kws {
			if ContainsWordIgnoreCase(p.Name().String(), kw) {
				return true
			}
		}
		return false
	}
}

// NameContainsSubstring returns a predicate matching persons whose name contains
// fragment anywhere, ignoring case.
func NameContainsSubstring(fragment string) func(*Person) bool {
	needle := strings.ToLower(fragment)
	return func(p *Person) bool {
		return strings.Contains(strings.ToLower(p.Name().String()), needle)
	}
}

// JobApplicationDetailsContainKeyword reports whether any of the application's
// attributes contains keyword as a whole word, ignoring case.
func JobApplicationDetailsContainKeyword(app *JobApplication, keyword string) bool {
	return ContainsWordIgnoreCase(app.JobTitle().String(), keyword) ||
		ContainsWordIgnoreCase(app.Schedule().String(), keyword) ||
		ContainsWordIgnoreCase(app.Label().String(), keyword) ||
		ContainsWordIgnoreCase(app.Remark().String(), keyword)
}

// ApplicationsContainKeyword returns a predicate matching persons with at least one job
// application whose details contain keyword.
func ApplicationsContainKeyword(keyword string) func(*Person) bool {
	return func(p *Person) bool {
		for _, app := range p.applications {
			if JobApplicationDetailsContainKeyword(app, keyword) {
				return true
			}
		}
		return false
	}
}

// HasLabel returns a predicate matching persons with at least one application labelled label.
func HasLabel(label Label) func(*Person) bool {
	return func(p *Person) bool {
		for _, app := range p.applications {
			if app.Label().Equal(label) {
				return true
			}
		}
		return false
	}
}

// SchedulesOnDate returns a predicate matching schedules on the same calendar day as date.
func SchedulesOnDate(date time.Time) func(Schedule) bool {
	y, m, d := date.Date()
	return func(s Schedule) bool {
		sy, sm, sd := s.Time().Date()
		return sy == y && sm == m && sd == d
	}
}

// SchedulesBetween returns a predicate matching schedules in the half-open range [from, to).
func SchedulesBetween(from, to time.Time) func(Schedule) bool {
	return func(s Schedule) bool {
		t := s.Time()
		return !t.Before(from) && t.Before(to)
	}
}

// JobTitleContainsKeyword returns a predicate matching job roles whose title contains
// keyword as a whole word, ignoring case.
func JobTitleContainsKeyword(keyword string) func(JobTitle) bool {
	return func(j JobTitle) bool {
		return ContainsWordIgnoreCase(j.String(), keyword)
	}
}
