// Package cli implements the noty command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/noty/internal/paths"
	"github.com/mesh-intelligence/noty/pkg/noty"
	"github.com/mesh-intelligence/noty/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds flag values accessible to all commands.
type rootFlags struct {
	configDir string
	notesFile string
	jsonMode  bool
	verbose   bool
	format    string
	yes       bool

	// Mode flags; at most one may be set.
	add    bool
	list   bool
	remove bool
	export bool
	clear  bool
	fix    bool
}

// app carries the state shared by one invocation of the command tree.
type app struct {
	flags     rootFlags
	configDir string
	config    types.Config
	logger    *zap.Logger
	now       func() time.Time
}

const rootLong = `Noty is a simple command line note-taking tool.

Notes are kept as a JSON array in a single file (default ~/.noty_notes.json).

Usage:
  noty <text>           Add a note (shorthand)
  noty -a <text>        Add a note
  noty -l               List all notes
  noty -r <id>          Remove a note by ID
  noty -e [file]        Export notes to a text file
  noty -c               Clear all notes (with confirmation)
  noty -f               Fix duplicate IDs (maintenance)
  noty -h               Show this help message

Everything after -a is note text, even words that name a command. Bare text
that starts with a command name runs that command when the remaining words
fit it and is added as a note otherwise: "noty clear the table" adds a note,
while "noty export taxes" exports to a file named taxes.

To add text starting with '-', end the flags first: noty -a -- -your text`

// NewRootCmd creates the top-level "noty" command with global flags, the
// mode flags, and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{
		logger: zap.NewNop(),
		now:    time.Now,
	}

	root := &cobra.Command{
		Use:     "noty [text...]",
		Short:   "A simple command line note-taking tool",
		Long:    rootLong,
		Version: noty.Version,
		Args:    cobra.ArbitraryArgs,
		// Errors are printed once by run; usage is not repeated on failure.
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runRoot,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/noty)")
	pf.StringVar(&a.flags.notesFile, "file", "", "notes file (default: ~/.noty_notes.json)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	pf.BoolVar(&a.flags.verbose, "verbose", false, "enable debug logging on stderr")
	pf.StringVar(&a.flags.format, "format", "", "export format: lines, report, yaml (default from config, else lines)")
	pf.BoolVarP(&a.flags.yes, "yes", "y", false, "skip the confirmation prompt when clearing")

	f := root.Flags()
	f.BoolVarP(&a.flags.add, "add", "a", false, "add a note with the given text")
	f.BoolVarP(&a.flags.list, "list", "l", false, "list all notes with timestamps")
	f.BoolVarP(&a.flags.remove, "remove", "r", false, "remove a note by ID")
	f.BoolVarP(&a.flags.export, "export", "e", false, "export notes to a text file")
	f.BoolVarP(&a.flags.clear, "clear", "c", false, "clear all notes (with confirmation)")
	f.BoolVarP(&a.flags.fix, "fix", "f", false, "fix duplicate IDs")
	root.MarkFlagsMutuallyExclusive("add", "list", "remove", "export", "clear", "fix")

	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newAddCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newClearCmd(a))
	root.AddCommand(newFixCmd(a))
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command against the process arguments and exits
// with the matching code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command tree with the given arguments and streams and
// returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	root := NewRootCmd()
	root.SetArgs(routeArgs(root, args))
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// exitCode maps an error to an exit code: file system failures are system
// errors, everything else is a user error.
func exitCode(err error) int {
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	switch {
	case errors.As(err, &pathErr), errors.As(err, &linkErr):
		return exitSysError
	case errors.Is(err, types.ErrStoreDetached):
		return exitSysError
	default:
		return exitUserError
	}
}

// setup builds the logger and resolves configuration before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	logger, err := newLogger(a.flags.verbose)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	a.logger = logger

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	notesFile, err := paths.ResolveNotesFile(a.flags.notesFile, v.GetString(cfgKeyNotesFile))
	if err != nil {
		return fmt.Errorf("resolve notes file: %w", err)
	}

	format := v.GetString(cfgKeyExportFormat)
	if a.flags.format != "" {
		format = a.flags.format
	}

	a.configDir = configDir
	a.config = types.Config{
		NotesFile:    notesFile,
		ExportFormat: format,
	}
	if err := a.config.Validate(); err != nil {
		if errors.Is(err, types.ErrExportFormatUnknown) {
			return fmt.Errorf("%w %q (valid: lines, report, yaml)", err, format)
		}
		return err
	}

	a.logger.Debug("resolved configuration",
		zap.String("config_dir", configDir),
		zap.String("notes_file", notesFile),
		zap.String("export_format", a.config.GetExportFormat()),
	)
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	// Sync on a console stderr reports EINVAL on some platforms; nothing to do about it.
	_ = a.logger.Sync()
	return nil
}

// runRoot dispatches the mode flags. Bare arguments without a mode flag are
// note text; no arguments at all prints help.
func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	switch {
	case a.flags.add:
		return a.runAdd(cmd, args)
	case a.flags.list:
		return a.runList(cmd, args)
	case a.flags.remove:
		return a.runRemove(cmd, args)
	case a.flags.export:
		return a.runExport(cmd, args)
	case a.flags.clear:
		return a.runClear(cmd, args)
	case a.flags.fix:
		return a.runFix(cmd, args)
	case len(args) == 0:
		return cmd.Help()
	default:
		return a.runAdd(cmd, args)
	}
}
