// FILE: lixenwraith/configutil/cli.go
package configutil

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const configFlag = "config"

var errCommandRequired = errors.New("the following arguments are required: command")

// invocation is what the command line contributed to a resolution.
type invocation struct {
	ran        bool // false when help was printed instead
	command    string
	configPath string
	flags      map[string]string // explicitly supplied, non-empty flag values
}

// choiceValue is a pflag.Value holding a raw string, optionally limited to a set of choices.
type choiceValue struct {
	value   string
	metavar string
	choices []string
}

func newChoiceValue(arg Argument) *choiceValue {
	return &choiceValue{metavar: metavar(arg), choices: arg.Choices}
}

func (c *choiceValue) String() string {
	return c.value
}

func (c *choiceValue) Set(s string) error {
	if len(c.choices) > 0 && !slices.Contains(c.choices, s) {
		return fmt.Errorf("invalid choice: %q (choose from %s)", s, strings.Join(c.choices, ", "))
	}
	c.value = s
	return nil
}

func (c *choiceValue) Type() string {
	return c.metavar
}

// metavar is the placeholder for the flag value in usage text.
func metavar(arg Argument) string {
	if len(arg.Choices) > 0 {
		return "{" + strings.Join(arg.Choices, ",") + "}"
	}
	return strings.ToUpper(strings.ReplaceAll(arg.Name, "-", "_"))
}

// newCommandTree builds a fresh cobra command tree mirroring the registry.
// Nothing is shared with other trees or with cobra's package state.
func (r *Resolver) newCommandTree(inv *invocation) *cobra.Command {
	root := &cobra.Command{
		Use:                r.prog,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableSuggestions: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		Args:               rejectPositional,
	}
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		r.writeHelp(cmd)
	})
	root.SetUsageFunc(func(cmd *cobra.Command) error {
		r.writeUsage(cmd)
		return nil
	})
	root.SetOut(r.output)
	root.SetErr(r.output)

	run := func(cmd *cobra.Command, _ []string) error {
		inv.ran = true
		if len(r.commands) > 0 {
			if cmd == root {
				return errCommandRequired
			}
			inv.command = cmd.Name()
		}
		cmd.Flags().Visit(func(f *pflag.Flag) {
			switch {
			case f.Name == configFlag:
				inv.configPath = f.Value.String()
			case f.Value.String() != "":
				inv.flags[f.Name] = f.Value.String()
			}
		})
		return nil
	}
	root.RunE = run

	if len(r.commands) == 0 {
		r.defineFlags(root.Flags())
		return root
	}

	// Every command carries its own copy of the full flag set. The root
	// parses its own flags while traversing, so a flag placed before the
	// command token is an unknown flag instead of being handed down.
	root.Args = rejectUnknownCommand
	root.TraverseChildren = true
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	for _, c := range r.commands {
		sub := &cobra.Command{
			Use:   c.Name,
			Short: c.Help,
			Args:  rejectPositional,
			RunE:  run,
		}
		r.defineFlags(sub.Flags())
		root.AddCommand(sub)
	}
	return root
}

func (r *Resolver) defineFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false
	fs.String(configFlag, "", "configuration file path")
	for _, section := range r.sections {
		for _, arg := range section.args {
			fs.Var(newChoiceValue(arg), arg.Name, arg.Help)
		}
	}
}

func rejectPositional(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unrecognized arguments: %s", strings.Join(args, " "))
	}
	return nil
}

// rejectUnknownCommand reports a command token matching no registered command.
func rejectUnknownCommand(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// parseCommandLine parses the configured args against a fresh command tree.
// Help requests and syntax errors are handed to the exit function.
func (r *Resolver) parseCommandLine() (*invocation, error) {
	inv := &invocation{flags: make(map[string]string)}
	root := r.newCommandTree(inv)

	// A nil slice makes cobra fall back to os.Args.
	root.SetArgs(append([]string{}, r.args...))

	cmd, err := root.ExecuteC()
	if err != nil {
		r.writeError(cmd, err)
		r.exit(2)
		return nil, ErrExited
	}
	if !inv.ran {
		r.exit(0)
		return nil, ErrExited
	}

	r.logger.Debug("command line parsed",
		"command", inv.command, "config", inv.configPath, "flags", len(inv.flags))
	return inv, nil
}
