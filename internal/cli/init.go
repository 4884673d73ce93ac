package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cbout22/makegen/internal/layout"
	"github.com/cbout22/makegen/internal/printer"
	"github.com/cbout22/makegen/internal/scaffold"
)

// newInitCmd creates the `init` command.
// Usage: makegen init <root>
func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init <root>",
		Short: "Create src/, inc/, Makefile and src/main.c under <root>",
		Long: `Creates the project layout under an existing <root> directory.

Directories are created in order (src, then inc); ones that already exist are
left untouched. The Makefile and src/main.c are then written, replacing any
previous content. The first failure stops the run and is reported with the
step that failed; nothing already created is removed.

Example:
  makegen init ./hello`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeRootDir,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitWith(args[0], layout.Default(), a.logger(), a.progress(cmd))
		},
	}
}

// runInitWith is the testable core of the init command.
func runInitWith(root string, l layout.Layout, logger *log.Logger, out io.Writer) error {
	fmt.Fprintf(out, "🛠️  Scaffolding %s...\n", root)

	s := scaffold.New(root, l, scaffold.WithLogger(logger), scaffold.WithOutput(out))
	if err := s.Scaffold(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	if err := printer.PrintTree(out, root, l); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n✅ Project ready. Run 'make' in %s to build it.\n", root)
	return nil
}

// completeRootDir completes the <root> argument with directory names only.
func completeRootDir(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}
