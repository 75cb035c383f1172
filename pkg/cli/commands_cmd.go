package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandEntry describes one leaf command for machine consumption.
type CommandEntry struct {
	Path  string      `json:"path"`
	Short string      `json:"short"`
	Args  string      `json:"args,omitempty"`
	Flags []FlagEntry `json:"flags,omitempty"`
}

// FlagEntry describes one flag of a command.
type FlagEntry struct {
	Name    string `json:"name"`
	Short   string `json:"short,omitempty"`
	Type    string `json:"type"`
	Default string `json:"default,omitempty"`
	Usage   string `json:"usage"`
}

// newCommandsCmd dumps the full command tree as JSON, for shell completion
// tooling and docs generation.
func newCommandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "commands",
		Short:  "List all commands and their flags as JSON",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return PrintJSON(os.Stdout, walkCommands(cmd.Root(), ""))
		},
	}
	return cmd
}

func walkCommands(cmd *cobra.Command, path string) []CommandEntry {
	var entries []CommandEntry
	for _, child := range cmd.Commands() {
		if child.Hidden || child.Name() == "help" || child.Name() == "completion" {
			continue
		}
		childPath := child.Name()
		if path != "" {
			childPath = path + " " + child.Name()
		}
		if child.HasSubCommands() {
			entries = append(entries, walkCommands(child, childPath)...)
			continue
		}

		args := ""
		useParts := strings.Fields(child.Use)
		if len(useParts) > 1 {
			args = strings.Join(useParts[1:], " ")
		}
		entries = append(entries, CommandEntry{
			Path:  childPath,
			Short: child.Short,
			Args:  args,
			Flags: collectFlags(child),
		})
	}
	return entries
}

func collectFlags(cmd *cobra.Command) []FlagEntry {
	var flags []FlagEntry
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		flags = append(flags, FlagEntry{
			Name:    f.Name,
			Short:   f.Shorthand,
			Type:    f.Value.Type(),
			Default: f.DefValue,
			Usage:   f.Usage,
		})
	})
	return flags
}
