package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsWordIgnoreCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sentence string
		word     string
		want     bool
	}{
		{"", "abc", false},
		{"aaa bbb ccc", "", false},
		{"aaa bbb ccc", "  ", false},
		{"aaa bbb ccc", "aaa bbb", false},
		{"aaa bbb ccc", "bb", false},
		{"aaa bbb ccc", "Bbb", true},
		{"aaa bbb ccc", "CCC", true},
		{"  AAA   bBb   ccc  ", "aaa", true},
		{"aaa bbb ccc", " ccc ", true},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ContainsWordIgnoreCase(tc.sentence, tc.word),
			"sentence=%q word=%q", tc.sentence, tc.word)
	}
}

func TestNameContainsKeywords(t *testing.T) {
	t.Parallel()

	alice := mustPerson(t, aliceFields)

	assert.True(t, NameContainsKeywords([]string{"alice"})(alice))
	assert.True(t, NameContainsKeywords([]string{"Bob", "Pauline"})(alice))
	assert.False(t, NameContainsKeywords([]string{"Ali"})(alice), "whole words only")
	assert.False(t, NameContainsKeywords(nil)(alice))
	assert.False(t, NameContainsKeywords([]string{"94351253"})(alice), "other fields are not searched")
}

func TestNameContainsSubstring(t *testing.T) {
	t.Parallel()

	alice := mustPerson(t, aliceFields)
	assert.True(t, NameContainsSubstring("Ali")(alice))
	assert.True(t, NameContainsSubstring("PAUL")(alice))
	assert.False(t, NameContainsSubstring("Bob")(alice))
}

func TestJobApplicationPredicates(t *testing.T) {
	t.Parallel()

	alice := mustPerson(t, aliceFields)
	title, schedule, label := mustApplicationFields(t, "Backend Engineer", "2024-05-01 10:00", "INTERVIEWING")
	app, err := NewJobApplicationFor(alice, title, schedule, label, NewRemark("bring portfolio"))
	require.NoError(t, err)

	assert.True(t, JobApplicationDetailsContainKeyword(app, "backend"))
	assert.True(t, JobApplicationDetailsContainKeyword(app, "2024-05-01"))
	assert.True(t, JobApplicationDetailsContainKeyword(app, "interviewing"))
	assert.True(t, JobApplicationDetailsContainKeyword(app, "portfolio"))
	assert.False(t, JobApplicationDetailsContainKeyword(app, "frontend"))

	assert.True(t, ApplicationsContainKeyword("engineer")(alice))
	assert.False(t, ApplicationsContainKeyword("engineer")(mustPerson(t, bobFields)))

	interviewing, err := NewLabel("interviewing")
	require.NoError(t, err)
	offered, err := NewLabel("offered")
	require.NoError(t, err)
	assert.True(t, HasLabel(interviewing)(alice))
	assert.False(t, HasLabel(offered)(alice))
}

func TestSchedulePredicates(t *testing.T) {
	t.Parallel()

	s, err := NewSchedule("2024-05-01 10:00")
	require.NoError(t, err)

	assert.True(t, SchedulesOnDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))(s))
	assert.False(t, SchedulesOnDate(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))(s))

	from := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, SchedulesBetween(from, from.Add(time.Hour))(s), "range start is inclusive")
	assert.False(t, SchedulesBetween(from.Add(-time.Hour), from)(s), "range end is exclusive")

	title, err := NewJobTitle("Senior Data Engineer")
	require.NoError(t, err)
	assert.True(t, JobTitleContainsKeyword("data")(title))
	assert.False(t, JobTitleContainsKeyword("scientist")(title))
}
