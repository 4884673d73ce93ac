package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cbout22/makegen/internal/layout"
	"github.com/cbout22/makegen/internal/manifest"
	"github.com/cbout22/makegen/internal/printer"
)

// newTemplatesCmd creates the `templates` command.
// Usage: makegen templates [--format text|toml|json|yaml]
func newTemplatesCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the directories and template files makegen creates",
		Long: `Prints the built-in layout: each directory and template file with its
permission bits, and for files the size and SHA-256 of the template content.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger().Debug("listing templates", "format", format)
			return runTemplatesWith(format, layout.Default(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(manifest.FormatText), "Output format: text, toml, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, f := range manifest.Formats() {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runTemplatesWith is the testable core of the templates command.
func runTemplatesWith(format string, l layout.Layout, out io.Writer) error {
	f, err := manifest.ParseFormat(format)
	if err != nil {
		return err
	}

	m := manifest.FromLayout(l)
	if f != manifest.FormatText {
		return m.Encode(out, f)
	}

	if err := printer.PrintTree(out, "<root>", l); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return m.Encode(out, f)
}
