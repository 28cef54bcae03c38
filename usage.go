package configutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// helpRow is one line of a help table: invocation and description.
type helpRow struct {
	left  string
	right string
}

// commandPath returns "prog" for the root command and "prog <command>" for sub-commands.
func (r *Resolver) commandPath(cmd *cobra.Command) string {
	if cmd != nil && cmd.HasParent() {
		return r.prog + " " + cmd.Name()
	}
	return r.prog
}

// selectsCommand reports whether cmd is the root of a resolver in command mode.
func (r *Resolver) selectsCommand(cmd *cobra.Command) bool {
	return len(r.commands) > 0 && (cmd == nil || !cmd.HasParent())
}

func (r *Resolver) usageLine(cmd *cobra.Command) string {
	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(r.commandPath(cmd))
	b.WriteString(" [-h]")

	if r.selectsCommand(cmd) {
		names := make([]string, len(r.commands))
		for i, c := range r.commands {
			names[i] = c.Name
		}
		b.WriteString(" {" + strings.Join(names, ",") + "} ...")
		return b.String()
	}

	b.WriteString(" [--config CONFIG]")
	for _, section := range r.sections {
		for _, arg := range section.args {
			fmt.Fprintf(&b, " [--%s %s]", arg.Name, metavar(arg))
		}
	}
	return b.String()
}

func (r *Resolver) writeUsage(cmd *cobra.Command) {
	fmt.Fprintln(r.output, r.usageLine(cmd))
}

// writeHelp prints the usage line followed by the options and, in command
// mode, the commands with their help text in registration order.
func (r *Resolver) writeHelp(cmd *cobra.Command) {
	var b strings.Builder
	b.WriteString(r.usageLine(cmd))
	b.WriteString("\n\noptions:\n")

	options := []helpRow{{"-h, --help", "show this help message and exit"}}
	if r.selectsCommand(cmd) {
		writeTable(&b, options)

		commands := make([]helpRow, len(r.commands))
		for i, c := range r.commands {
			commands[i] = helpRow{c.Name, c.Help}
		}
		b.WriteString("\navailable commands:\n")
		writeTable(&b, commands)
	} else {
		options = append(options, helpRow{"--config CONFIG", "configuration file path"})
		for _, section := range r.sections {
			for _, arg := range section.args {
				options = append(options, helpRow{"--" + arg.Name + " " + metavar(arg), arg.Help})
			}
		}
		writeTable(&b, options)
	}

	fmt.Fprint(r.output, b.String())
}

// writeError prints the usage line and the error in the conventional
// "prog: error: message" form.
func (r *Resolver) writeError(cmd *cobra.Command, err error) {
	r.writeUsage(cmd)
	fmt.Fprintf(r.output, "%s: error: %v\n", r.commandPath(cmd), err)
}

func writeTable(b *strings.Builder, rows []helpRow) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row.left))
	}
	for _, row := range rows {
		if row.right == "" {
			fmt.Fprintf(b, "  %s\n", row.left)
			continue
		}
		fmt.Fprintf(b, "  %-*s  %s\n", width, row.left, row.right)
	}
}
