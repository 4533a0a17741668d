package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/dailycheck/internal/checklist"
	"github.com/idilsaglam/dailycheck/internal/config"
	"github.com/idilsaglam/dailycheck/internal/logging"
	"github.com/idilsaglam/dailycheck/internal/model"
	"github.com/idilsaglam/dailycheck/internal/store/sqlitestore"
	"github.com/idilsaglam/dailycheck/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks bad arguments so Run can answer with exitUsage.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// flags shared by every subcommand
type rootFlags struct {
	configPath string
	dbPath     string
	theme      string
	noColor    bool
	forceColor bool
}

// app is what a subcommand gets once config is loaded, the store is open and
// the startup reset has run.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *sqlitestore.Store
	svc     *checklist.Service
	closers []io.Closer
}

// Close releases everything open acquired. Safe to call more than once.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i].Close()
	}
	a.closers = nil
}

// Run executes the command line and returns an exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, version string) int {
	cmd, a := newRootCmd(version)
	defer a.Close()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprintln(stderr, ui.For(stderr).Dim("Hint: run `dailycheck --help` for usage"))
		return exitUsage
	}
	return exitError
}

// newRootCmd builds the command tree. Running it without a subcommand opens
// the interactive checklist.
func newRootCmd(version string) (*cobra.Command, *app) {
	var (
		rf rootFlags
		a  = &app{}
	)

	root := &cobra.Command{
		Use:   "dailycheck",
		Short: "dailycheck - a recurring checklist",
		Long: `dailycheck keeps short routines you tick off: daily ones, ones that come back
every Monday, and monthly ones. Checkmarks clear themselves when the period
turns over; the check happens each time dailycheck starts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context(), rf)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ui.Run(cmd.Context(), a.svc, a.cfg.Recurrence())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "config file (default ~/.dailycheck/config.yaml)")
	pf.StringVar(&rf.dbPath, "db", "", "database file (overrides db_path)")
	pf.StringVar(&rf.theme, "theme", "", "classic, neon or mono (overrides theme)")
	pf.BoolVar(&rf.noColor, "no-color", false, "disable colors")
	pf.BoolVar(&rf.forceColor, "color", false, "force colors even when not a terminal")

	root.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newCheckCmd(a, "check", true),
		newCheckCmd(a, "uncheck", false),
		newToggleCmd(a),
		newRemoveCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newConfigCmd(&rf),
	)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})
	root.SetVersionTemplate("dailycheck {{.Version}}\n")
	return root, a
}

func (a *app) open(ctx context.Context, rf rootFlags) error {
	cfg, err := config.Load(rf.configPath)
	if err != nil {
		return err
	}
	if rf.dbPath != "" {
		cfg.DBPath = rf.dbPath
	}
	if rf.theme != "" {
		cfg.Theme = rf.theme
	}
	if err := cfg.Validate(); err != nil {
		return usagef("%v", err)
	}
	a.cfg = cfg

	ui.SetColorForcing(rf.forceColor, rf.noColor)
	ui.SetTheme(cfg.Theme) // mono turns color off again

	logger, closer, err := logging.New(cfg.Log.File, cfg.ParseLogLevel())
	if err != nil {
		return err
	}
	a.closers = append(a.closers, closer)
	a.logger = logger

	store, err := sqlitestore.Open(ctx, cfg.DBPath, nil)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, store)
	a.store = store
	logger.Debug("database opened", "path", cfg.DBPath)

	a.svc = checklist.NewService(store, nil, logger)
	if _, err := a.svc.Startup(ctx); err != nil {
		return err
	}
	return nil
}

func parseRecurrence(s string) (model.Recurrence, error) {
	r, err := model.ParseRecurrence(s)
	if err != nil {
		return "", usagef("%v", err)
	}
	return r, nil
}

// Main is the process entry point used by cmd/dailycheck.
func Main(version string) {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, version))
}
