package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/recruitbook/internal/command"
	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/model"
)

// view selects the list printed after a command's feedback.
type view int

const (
	viewNone view = iota
	viewPersons
	viewSchedules
	viewJobRoles
)

// render prints the command feedback, the selected person and the chosen list.
func render(out io.Writer, m model.Model, result *command.Result, v view) {
	fmt.Fprintln(out, result.Feedback)

	if (result.PersonNew || result.PersonUpdated) && result.NewPerson != nil {
		fmt.Fprintln(out)
		renderPersonDetails(out, result.NewPerson)
	}

	switch v {
	case viewPersons:
		fmt.Fprintln(out)
		for i, p := range m.FilteredPersons().All() {
			fmt.Fprintf(out, "%d. %s\n", i+1, personSummary(p))
		}
	case viewSchedules:
		fmt.Fprintln(out)
		for i, s := range m.FilteredSchedules().All() {
			fmt.Fprintf(out, "%d. %s\n", i+1, s)
		}
	case viewJobRoles:
		fmt.Fprintln(out)
		for i, role := range m.FilteredJobRoles().All() {
			fmt.Fprintf(out, "%d. %s\n", i+1, role)
		}
	}
}

func personSummary(p *domain.Person) string {
	var b strings.Builder
	b.WriteString(p.Name().String())
	for _, tag := range p.Tags() {
		b.WriteString(" ")
		b.WriteString(tag.String())
	}
	if n := len(p.JobApplications()); n > 0 {
		fmt.Fprintf(&b, " (%d job applications)", n)
	}
	return b.String()
}

func renderPersonDetails(out io.Writer, p *domain.Person) {
	fmt.Fprintf(out, "Name:    %s\n", p.Name())
	fmt.Fprintf(out, "Phone:   %s\n", p.Phone())
	fmt.Fprintf(out, "Email:   %s\n", p.Email())
	fmt.Fprintf(out, "Address: %s\n", p.Address())
	if tags := p.Tags(); len(tags) > 0 {
		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, tag.Name())
		}
		fmt.Fprintf(out, "Tags:    %s\n", strings.Join(names, ", "))
	}
	apps := p.JobApplications()
	if len(apps) == 0 {
		return
	}
	fmt.Fprintln(out, "Job applications:")
	for i, app := range apps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, app)
	}
}
