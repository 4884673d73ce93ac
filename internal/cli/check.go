package cli

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	errUtils "github.com/cbout22/makegen/internal/errors"
	"github.com/cbout22/makegen/internal/layout"
	"github.com/cbout22/makegen/internal/manifest"
	"github.com/cbout22/makegen/internal/scaffold"
)

// newCheckCmd creates the `check` command.
// Usage: makegen check <root> [--strict]
func newCheckCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <root>",
		Short: "Check whether <root> matches the scaffolded layout",
		Long: `Inspects <root> without modifying it and reports, for every directory and
template file, whether it is present with the expected kind, permission bits
and content.

With --strict, the command exits with a non-zero code if any entry is
missing, modified or has the wrong mode.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeRootDir,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger().Debug("checking layout", "root", args[0], "strict", strict)
			return runCheckWith(args[0], layout.Default(), scaffold.OSFileSystem{}, cmd.OutOrStdout(), strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with error code if the layout has issues")

	return cmd
}

// runCheckWith is the testable core of the check command.
func runCheckWith(root string, l layout.Layout, fsys scaffold.FileSystem, out io.Writer, strict bool) error {
	results := CheckLayout(root, l, fsys)

	fmt.Fprintf(out, "🔍 Checking %d entries in %s...\n\n", len(results), root)

	var issues int
	for _, r := range results {
		name := r.Path
		if r.Kind == layout.KindDir {
			name += "/"
		}
		switch r.Status {
		case CheckOK:
			fmt.Fprintf(out, "  ✅ %s — ok\n", name)
		case CheckMissing:
			fmt.Fprintf(out, "  ❌ %s — missing\n", name)
			issues++
		case CheckWrongKind:
			fmt.Fprintf(out, "  ❌ %s — exists but is not a %s\n", name, r.Kind)
			issues++
		case CheckModified:
			fmt.Fprintf(out, "  ⚠️  %s — content differs from template\n", name)
			issues++
		case CheckModeMismatch:
			fmt.Fprintf(out, "  ⚠️  %s — mode %s, want %s\n", name,
				manifest.FormatMode(uint32(r.GotMode)), manifest.FormatMode(uint32(r.WantMode)))
			issues++
		case CheckError:
			fmt.Fprintf(out, "  ❌ %s — %s\n", name, r.Err)
			issues++
		}
	}

	fmt.Fprintln(out)
	if issues > 0 {
		msg := fmt.Sprintf("Found %d issue(s). Run 'makegen init %s' to restore the templates.", issues, root)
		if strict {
			return errors.Wrapf(errUtils.ErrStrictCheck, "found %d issue(s) in %s", issues, root)
		}
		fmt.Fprintf(out, "⚠️  %s\n", msg)
	} else {
		fmt.Fprintln(out, "✅ Layout is complete.")
	}
	return nil
}
