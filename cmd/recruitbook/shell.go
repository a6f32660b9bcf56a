package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"

	"github.com/mattn/go-shellwords"
	"github.com/phrazzld/recruitbook/internal/command"
	"github.com/phrazzld/recruitbook/internal/platform/logger"
	"github.com/spf13/cobra"
)

const shellPrompt = "recruitbook> "

// run executes built against the shell session when one is open, or loads and
// saves the stored data around a single execution otherwise.
func (c *cli) run(cmd *cobra.Command, built command.Command, v view) error {
	if c.active != nil {
		result, err := c.active.execute(cmd.Context(), built, v)
		if err == nil && result.Exit {
			c.active.exited = true
		}
		return err
	}
	return c.runCommand(cmd.Context(), built, v)
}

func (c *cli) exitCmd() *cobra.Command {
	return c.newCmd(command.WordExit, "Leave the interactive shell", cobra.NoArgs, viewNone,
		func(*cobra.Command, []string) (command.Command, error) {
			return command.ExitCommand{}, nil
		})
}

func (c *cli) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively against one loaded session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runShell(cmd.Context())
		},
	}
}

// runShell reads one command per line until exit or end of input. Failed
// commands are reported and the shell continues.
func (c *cli) runShell(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	log, err := c.setupLogger(cfg)
	if err != nil {
		return err
	}
	ctx = logger.WithLogger(ctx, log)

	s, err := openSession(ctx, cfg, c.out, log)
	if err != nil {
		return err
	}
	defer s.close()

	c.active = s
	defer func() { c.active = nil }()

	scanner := bufio.NewScanner(c.in)
	for !s.exited {
		fmt.Fprint(c.out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			break
		}

		words, err := splitLine(scanner.Text())
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}
		if len(words) == 0 {
			continue
		}
		if words[0] == "shell" {
			fmt.Fprintln(c.out, "Error: already in a shell")
			continue
		}

		root := c.rootCmd()
		root.SetArgs(words)
		if err := root.ExecuteContext(ctx); err != nil {
			log.Debug("shell command failed", slog.String("command", words[0]))
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}

// splitLine splits a shell line into words using shell quoting rules, as in:
// apply 1 --schedule "2024-05-01 10:00" --remark="call back".
// A blank line yields nil.
func splitLine(line string) ([]string, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("could not parse line: %w", err)
	}
	if len(words) == 0 {
		return nil, nil
	}
	return words, nil
}
