package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cbout22/makegen/internal/config"
	errUtils "github.com/cbout22/makegen/internal/errors"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries the state shared by all commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	settings   config.Settings
	log        *log.Logger
}

// logger returns the configured logger, or a discarding one before setup.
func (a *app) logger() *log.Logger {
	if a.log == nil {
		return log.New(io.Discard)
	}
	return a.log
}

// progress returns where step-by-step progress goes; nowhere with --quiet.
func (a *app) progress(cmd *cobra.Command) io.Writer {
	if a.settings.Quiet {
		return io.Discard
	}
	return cmd.OutOrStdout()
}

// NewRootCmd creates the top-level `makegen` command.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "makegen",
		Short: "makegen scaffolds a C project: src/, inc/, a Makefile and a starter main.c",
		Long: `makegen creates a conventional C project layout under a root directory.

It ensures src/ and inc/ exist (rwxrwxr-x), then writes a Makefile and a
hello-world src/main.c (rw-r--r--). Existing directories are kept; template
files are always overwritten with the built-in content.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.settings = s
			if s.NoColor {
				color.NoColor = true
			}
			a.log = config.NewLogger(cmd.ErrOrStderr(), s)
			a.log.Debug("configuration loaded", "file", s.ConfigFile, "level", s.LogLevel, "quiet", s.Quiet)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/makegen/config.toml)")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolP("quiet", "q", false, "suppress progress output")

	// Flags take precedence over env and config file when set.
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyNoColor, flags.Lookup("no-color"))
	_ = a.v.BindPFlag(config.KeyQuiet, flags.Lookup("quiet"))

	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newTemplatesCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code:
// 0 on success, the OS errno of the failure when there is one, 1 otherwise.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", config.AppName, err)
		return errUtils.ExitCode(err)
	}
	return 0
}
