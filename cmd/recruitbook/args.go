package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/phrazzld/recruitbook/internal/command"
	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/spf13/cobra"
)

// MessageInvalidDate is shown for a date flag that is not YYYY-MM-DD.
const MessageInvalidDate = "Dates should be in the format YYYY-MM-DD"

// fieldParser parses a sequence of raw values and remembers the first failure.
type fieldParser struct {
	err error
}

func parseField[In, T any](p *fieldParser, parse func(In) (T, error), raw In) T {
	var zero T
	if p.err != nil {
		return zero
	}
	v, err := parse(raw)
	if err != nil {
		p.err = err
		return zero
	}
	return v
}

// parseChanged parses the named flag only when the user set it.
func parseChanged[In, T any](
	p *fieldParser,
	cmd *cobra.Command,
	flag string,
	parse func(In) (T, error),
	raw In,
) *T {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	v := parseField(p, parse, raw)
	return &v
}

func parseRemark(raw string) (domain.Remark, error) {
	return domain.NewRemark(raw), nil
}

func parseTags(raw []string) ([]domain.Tag, error) {
	return domain.NewTags(raw...)
}

// parseDate parses a YYYY-MM-DD date in UTC. An empty string is the zero time.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, command.NewError(MessageInvalidDate, err)
	}
	return t, nil
}

// applicationFlags are the flags describing a job application.
type applicationFlags struct {
	job, schedule, label, remark string
}

func (f *applicationFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.job, "job", "j", "", "Job title")
	flags.StringVarP(&f.schedule, "schedule", "s", "", `Interview schedule, "YYYY-MM-DD HH:MM"`)
	flags.StringVarP(&f.label, "label", "l", "", "Application status: "+strings.Join(domain.LabelValues, ", "))
	flags.StringVarP(&f.remark, "remark", "r", "", "Free-text remark")
}

// template builds a detached job application from the flags.
func (f *applicationFlags) template() (*domain.JobApplication, error) {
	var p fieldParser
	title := parseField(&p, domain.NewJobTitle, f.job)
	schedule := parseField(&p, domain.NewSchedule, f.schedule)
	label := parseField(&p, domain.NewLabel, f.label)
	if p.err != nil {
		return nil, p.err
	}
	return domain.NewJobApplication(title, schedule, label, domain.NewRemark(f.remark))
}

func mustMarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			// ALLOW-PANIC: flag names are compile-time constants
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
