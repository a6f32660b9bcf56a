package main

import (
	"fmt"
	"strings"

	"github.com/phrazzld/recruitbook/internal/command"
	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/spf13/cobra"
)

// buildFunc turns parsed cobra arguments into an executable command.
type buildFunc func(cmd *cobra.Command, args []string) (command.Command, error)

// newCmd wraps build into a cobra command that runs the built command against
// the stored data and prints v afterwards.
func (c *cli) newCmd(use, short string, args cobra.PositionalArgs, v view, build buildFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, a []string) error {
			built, err := build(cmd, a)
			if err != nil {
				return command.Translate(err)
			}
			return c.run(cmd, built, v)
		},
	}
}

// indexArgs validates that exactly n positional indexes were given.
func indexArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return command.NewError(
				fmt.Sprintf("Expected %d index argument(s), got %d.", n, len(args)), command.ErrInvalidIndex)
		}
		return nil
	}
}

func (c *cli) personCmds() []*cobra.Command {
	return []*cobra.Command{
		c.addCmd(),
		c.editCmd(),
		c.newCmd("delete INDEX", "Delete the person at INDEX", indexArgs(1), viewPersons,
			func(_ *cobra.Command, args []string) (command.Command, error) {
				index, err := command.ParseIndex(args[0])
				return command.DeleteCommand{Index: index}, err
			}),
		c.newCmd(command.WordClear, "Delete every person", cobra.NoArgs, viewPersons,
			func(*cobra.Command, []string) (command.Command, error) {
				return command.ClearCommand{}, nil
			}),
		c.newCmd("find KEYWORD...", "Show persons whose name contains any keyword", cobra.MinimumNArgs(1), viewPersons,
			func(_ *cobra.Command, args []string) (command.Command, error) {
				return command.FindCommand{Keywords: args}, nil
			}),
		c.newCmd(command.WordList, "Show every person", cobra.NoArgs, viewPersons,
			func(*cobra.Command, []string) (command.Command, error) {
				return command.ListCommand{}, nil
			}),
		c.newCmd("view INDEX", "Show the details of the person at INDEX", indexArgs(1), viewNone,
			func(_ *cobra.Command, args []string) (command.Command, error) {
				index, err := command.ParseIndex(args[0])
				return command.ViewCommand{Index: index}, err
			}),
	}
}

func (c *cli) addCmd() *cobra.Command {
	var (
		phone, email, address string
		tags                  []string
		app                   applicationFlags
	)

	cmd := c.newCmd("add NAME...", "Add a person, optionally with a first job application",
		cobra.MinimumNArgs(1), viewPersons,
		func(cmd *cobra.Command, args []string) (command.Command, error) {
			var p fieldParser
			name := parseField(&p, domain.NewName, strings.Join(args, " "))
			ph := parseField(&p, domain.NewPhone, phone)
			em := parseField(&p, domain.NewEmail, email)
			ad := parseField(&p, domain.NewAddress, address)
			ts := parseField(&p, parseTags, tags)
			if p.err != nil {
				return nil, p.err
			}

			if !cmd.Flags().Changed("job") {
				person, err := domain.NewPerson(name, ph, em, ad, ts)
				return command.AddCommand{Person: person}, err
			}

			template, err := app.template()
			if err != nil {
				return nil, err
			}
			person, err := domain.NewPersonWithApplications(name, ph, em, ad, ts, []*domain.JobApplication{template})
			return command.AddCommand{Person: person}, err
		})

	flags := cmd.Flags()
	flags.StringVarP(&phone, "phone", "p", "", "Phone number (required)")
	flags.StringVarP(&email, "email", "e", "", "Email address (required)")
	flags.StringVarP(&address, "address", "a", "", "Address (required)")
	flags.StringArrayVarP(&tags, "tag", "t", nil, "Tag, may be repeated")
	app.register(cmd)
	mustMarkRequired(cmd, "phone", "email", "address")
	cmd.MarkFlagsRequiredTogether("job", "schedule", "label")

	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	var (
		name, phone, email, address string
		tags                        []string
		clearTags                   bool
	)

	cmd := c.newCmd("edit INDEX", "Edit the details of the person at INDEX", indexArgs(1), viewPersons,
		func(cmd *cobra.Command, args []string) (command.Command, error) {
			index, err := command.ParseIndex(args[0])
			if err != nil {
				return nil, err
			}

			var p fieldParser
			descriptor := command.EditPersonDescriptor{
				Name:    parseChanged(&p, cmd, "name", domain.NewName, name),
				Phone:   parseChanged(&p, cmd, "phone", domain.NewPhone, phone),
				Email:   parseChanged(&p, cmd, "email", domain.NewEmail, email),
				Address: parseChanged(&p, cmd, "address", domain.NewAddress, address),
			}
			switch {
			case clearTags:
				descriptor.Tags = &[]domain.Tag{}
			case cmd.Flags().Changed("tag"):
				ts := parseField(&p, parseTags, tags)
				descriptor.Tags = &ts
			}
			if p.err != nil {
				return nil, p.err
			}
			return command.EditCommand{Index: index, Descriptor: descriptor}, nil
		})

	flags := cmd.Flags()
	flags.StringVarP(&name, "name", "n", "", "New name")
	flags.StringVarP(&phone, "phone", "p", "", "New phone number")
	flags.StringVarP(&email, "email", "e", "", "New email address")
	flags.StringVarP(&address, "address", "a", "", "New address")
	flags.StringArrayVarP(&tags, "tag", "t", nil, "Replacement tag, may be repeated")
	flags.BoolVar(&clearTags, "clear-tags", false, "Remove every tag")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")

	return cmd
}

func (c *cli) applicationCmds() []*cobra.Command {
	return []*cobra.Command{c.applyCmd(), c.editAppCmd(), c.unapplyCmd(), c.searchCmd()}
}

func (c *cli) applyCmd() *cobra.Command {
	var app applicationFlags

	cmd := c.newCmd("apply INDEX", "Add a job application to the person at INDEX", indexArgs(1), viewNone,
		func(_ *cobra.Command, args []string) (command.Command, error) {
			index, err := command.ParseIndex(args[0])
			if err != nil {
				return nil, err
			}
			template, err := app.template()
			if err != nil {
				return nil, err
			}
			return command.ApplyCommand{Index: index, Application: template}, nil
		})

	app.register(cmd)
	mustMarkRequired(cmd, "job", "schedule", "label")
	return cmd
}

func (c *cli) editAppCmd() *cobra.Command {
	var app applicationFlags

	cmd := c.newCmd("editapp INDEX APP_INDEX", "Edit a job application of the person at INDEX", indexArgs(2), viewNone,
		func(cmd *cobra.Command, args []string) (command.Command, error) {
			personIndex, err := command.ParseIndex(args[0])
			if err != nil {
				return nil, err
			}
			appIndex, err := command.ParseIndex(args[1])
			if err != nil {
				return nil, err
			}

			var p fieldParser
			descriptor := command.EditApplicationDescriptor{
				JobTitle: parseChanged(&p, cmd, "job", domain.NewJobTitle, app.job),
				Schedule: parseChanged(&p, cmd, "schedule", domain.NewSchedule, app.schedule),
				Label:    parseChanged(&p, cmd, "label", domain.NewLabel, app.label),
				Remark:   parseChanged(&p, cmd, "remark", parseRemark, app.remark),
			}
			if p.err != nil {
				return nil, p.err
			}
			return command.EditApplicationCommand{
				PersonIndex:      personIndex,
				ApplicationIndex: appIndex,
				Descriptor:       descriptor,
			}, nil
		})

	app.register(cmd)
	return cmd
}

func (c *cli) unapplyCmd() *cobra.Command {
	return c.newCmd("unapply INDEX APP_INDEX", "Delete a job application of the person at INDEX", indexArgs(2), viewNone,
		func(_ *cobra.Command, args []string) (command.Command, error) {
			personIndex, err := command.ParseIndex(args[0])
			if err != nil {
				return nil, err
			}
			appIndex, err := command.ParseIndex(args[1])
			if err != nil {
				return nil, err
			}
			return command.UnapplyCommand{PersonIndex: personIndex, ApplicationIndex: appIndex}, nil
		})
}

func (c *cli) searchCmd() *cobra.Command {
	var label string

	cmd := c.newCmd("search [KEYWORD]...", "Show persons with a job application matching the keywords",
		cobra.ArbitraryArgs, viewPersons,
		func(cmd *cobra.Command, args []string) (command.Command, error) {
			search := command.SearchCommand{Keywords: args}
			if cmd.Flags().Changed("label") {
				l, err := domain.NewLabel(label)
				if err != nil {
					return nil, err
				}
				search.Label = l
			}
			return search, nil
		})

	cmd.Flags().StringVarP(&label, "label", "l", "", "Only persons with an application in this status")
	return cmd
}

func (c *cli) boardCmds() []*cobra.Command {
	return []*cobra.Command{c.schedulesCmd(), c.rolesCmd(), c.addRoleCmd(), c.delRoleCmd()}
}

func (c *cli) schedulesCmd() *cobra.Command {
	var on, from, to string

	cmd := c.newCmd(command.WordSchedules, "Show interview schedules, optionally for a day or date range",
		cobra.NoArgs, viewSchedules,
		func(*cobra.Command, []string) (command.Command, error) {
			var p fieldParser
			schedules := command.SchedulesCommand{
				On:   parseField(&p, parseDate, on),
				From: parseField(&p, parseDate, from),
				To:   parseField(&p, parseDate, to),
			}
			return schedules, p.err
		})

	flags := cmd.Flags()
	flags.StringVar(&on, "on", "", "Day to show, YYYY-MM-DD")
	flags.StringVar(&from, "from", "", "Start of the range, YYYY-MM-DD (inclusive)")
	flags.StringVar(&to, "to", "", "End of the range, YYYY-MM-DD (exclusive)")
	cmd.MarkFlagsMutuallyExclusive("on", "from")
	cmd.MarkFlagsMutuallyExclusive("on", "to")
	cmd.MarkFlagsRequiredTogether("from", "to")
	return cmd
}

func (c *cli) rolesCmd() *cobra.Command {
	return c.newCmd("roles [KEYWORD]", "Show the job-role catalogue", cobra.MaximumNArgs(1), viewJobRoles,
		func(_ *cobra.Command, args []string) (command.Command, error) {
			roles := command.RolesCommand{}
			if len(args) == 1 {
				roles.Keyword = args[0]
			}
			return roles, nil
		})
}

func (c *cli) addRoleCmd() *cobra.Command {
	return c.newCmd("addrole TITLE...", "Add a job role to the catalogue", cobra.MinimumNArgs(1), viewJobRoles,
		func(_ *cobra.Command, args []string) (command.Command, error) {
			role, err := domain.NewJobTitle(strings.Join(args, " "))
			if err != nil {
				return nil, err
			}
			return command.AddRoleCommand{Role: role}, nil
		})
}

func (c *cli) delRoleCmd() *cobra.Command {
	return c.newCmd("delrole INDEX", "Delete the job role at INDEX of the catalogue", indexArgs(1), viewJobRoles,
		func(_ *cobra.Command, args []string) (command.Command, error) {
			index, err := command.ParseIndex(args[0])
			return command.DeleteRoleCommand{Index: index}, err
		})
}
