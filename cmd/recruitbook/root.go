package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/recruitbook/internal/command"
	"github.com/phrazzld/recruitbook/internal/config"
	"github.com/phrazzld/recruitbook/internal/platform/logger"
	"github.com/spf13/cobra"
)

// cli holds the state shared by every subcommand.
type cli struct {
	configPath string

	in  io.Reader
	out io.Writer
	// logOut receives log output. When nil, logs go to stderr through logger.Setup.
	logOut io.Writer

	// active is the open session of an interactive shell, if any.
	active *session
}

func newRootCmd(in io.Reader, out, logOut io.Writer) *cobra.Command {
	c := &cli{in: in, out: out, logOut: logOut}
	return c.rootCmd()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "recruitbook",
		Short: "Recruitment contact manager",
		Long: "recruitbook keeps track of recruitment contacts, the job applications made " +
			"through them and the resulting interview schedules.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "",
		"Path to a YAML config file (default: ./recruitbook.yaml or $HOME/.recruitbook/recruitbook.yaml)")

	root.AddCommand(c.personCmds()...)
	root.AddCommand(c.applicationCmds()...)
	root.AddCommand(c.boardCmds()...)
	root.AddCommand(c.exitCmd(), c.shellCmd(), c.migrateCmd())
	root.SetHelpCommand(c.helpCmd())

	return root
}

// loadConfig loads the configuration named by --config, or searches the default
// locations when the flag is not set.
func (c *cli) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFile(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func (c *cli) setupLogger(cfg *config.Config) (*slog.Logger, error) {
	if c.logOut != nil {
		return logger.New(cfg.Log, c.logOut), nil
	}
	l, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l, nil
}

func (c *cli) helpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   command.WordHelp,
		Short: "Show usage instructions",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			result, err := command.HelpCommand{}.Execute(nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, result.Feedback)
			return nil
		},
	}
}
