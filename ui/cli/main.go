// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command. A single positional token selects the
// action: "list", "help", or anything else as a host to remove.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/ssr/internal/audit"
	"github.com/toeirei/ssr/internal/config"
	"github.com/toeirei/ssr/internal/core"
	"github.com/toeirei/ssr/internal/i18n"
	"github.com/toeirei/ssr/internal/knownhosts"
	"github.com/toeirei/ssr/internal/logging"
)

// CommandError is a failed list or remove operation. Its message carries the
// localized label, e.g. "Error removing host: permission denied".
type CommandError struct {
	Label string
	Err   error
}

func (e *CommandError) Error() string { return e.Label + ": " + e.Err.Error() }

func (e *CommandError) Unwrap() error { return e.Err }

// app holds the state of one invocation.
type app struct {
	cfg        config.Config
	configFile string
	verbose    bool
	lookupEnv  knownhosts.LookupEnv
}

// Main runs ssr with args and returns the process exit code. Errors are
// printed to stderr.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logging.SetOutput(stderr)
	// Messages stay English until the configured language is loaded.
	i18n.Init("en")
	cmd := NewRootCmd()
	if args == nil {
		// cobra falls back to os.Args for nil args.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	a := &app{lookupEnv: os.LookupEnv}
	var (
		showVersion bool
		printConfig bool
		dryRun      bool
		hashed      bool
	)

	cmd := &cobra.Command{
		Use:   "ssr [list | <ip_or_hostname>]",
		Short: "ssr - SSH known_hosts manager",
		Long: `ssr - SSH known_hosts manager

Lists the hosts recorded in ~/.ssh/known_hosts and removes entries
matching an IP address or hostname. A target matches an entry when it
equals a host of the entry (brackets and port stripped) or appears
anywhere inside one, so "1.1" also matches "11.1.1.1".

A target that starts with "-" goes after "--": ssr -- -host.example`,
		Example: `  ssr list
  ssr 192.168.1.100
  ssr example.com
  ssr -- -host.example`,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			if err := a.setup(cmd); err != nil {
				return &CommandError{Label: errorLabel(cmd), Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case showVersion:
				printVersion(cmd.OutOrStdout())
				return nil
			case printConfig:
				return config.Encode(cmd.OutOrStdout(), &a.cfg)
			case len(args) == 0:
				return cmd.Help()
			}
			return a.runRemove(cmd, args[0], core.RemoveOptions{DryRun: dryRun}, hashed)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default is <user config dir>/ssr/ssr.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Print diagnostics to stderr")
	pf.String("language", "en", `Message language ("en", "de")`)
	pf.String("color", config.ColorNever, `Colorize output: "auto", "always" or "never"`)
	pf.Bool("lock", false, "Hold an advisory lock on known_hosts while rewriting it")
	pf.Bool("backup", false, "Keep a compressed copy of known_hosts before rewriting it")

	f := cmd.Flags()
	f.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")
	f.BoolVar(&printConfig, "print-config", false, "Print the effective configuration as YAML and exit")
	f.BoolVarP(&dryRun, "dry-run", "n", false, "Show matching entries without changing the file")
	f.BoolVar(&hashed, "hashed", false, "Also match hashed (HashKnownHosts) entries")

	cmd.AddCommand(newListCmd(a))
	return cmd
}

// errorLabel returns the localized prefix for failures of cmd.
func errorLabel(cmd *cobra.Command) string {
	if cmd.Name() == "list" {
		return i18n.T("errors.list")
	}
	return i18n.T("errors.remove")
}

// setup loads the configuration and initializes localization and logging.
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetDebug(a.verbose)

	var configFile *string
	if cmd.Flags().Changed("config") && a.configFile != "" {
		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(a.configFile); err != nil {
			return fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		configFile = &a.configFile
	}

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), configFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg
	i18n.Init(cfg.Language)
	logging.Debugf("config loaded (language=%s color=%s lock=%t backup=%t audit=%t)",
		cfg.Language, cfg.Color, cfg.Lock, cfg.Backup, cfg.Audit.Enabled)
	return nil
}

// newService resolves the known_hosts path and builds a core.Service for it.
// The returned cleanup closes the journal, if one was opened. A journal that
// cannot be opened is an error only when requireJournal is set.
func (a *app) newService(cmd *cobra.Command, requireJournal bool) (*core.Service, func(), error) {
	path, err := knownhosts.ResolvePath(a.lookupEnv)
	if err != nil {
		return nil, nil, err
	}
	logging.Debugf("known_hosts path: %s", path)

	svc := core.NewService(path, core.NewPrinter(cmd.OutOrStdout(), a.cfg.Color))
	svc.Lock = a.cfg.Lock
	svc.LockTimeout = a.cfg.LockTimeout
	svc.Backup = a.cfg.Backup
	cleanup := func() {}

	if a.cfg.Audit.Enabled {
		j, err := a.openJournal(cmd.Context())
		switch {
		case err == nil:
			svc.Journal = j
			cleanup = func() {
				if err := j.Close(); err != nil {
					logging.Warnf("could not close journal: %v", err)
				}
			}
		case requireJournal:
			return nil, nil, err
		default:
			logging.Warnf("removal journal unavailable: %v", err)
		}
	}
	return svc, cleanup, nil
}

func (a *app) openJournal(ctx context.Context) (*audit.Journal, error) {
	dsn, err := a.cfg.AuditDSN()
	if err != nil {
		return nil, err
	}
	return audit.Open(ctx, a.cfg.Audit.Type, dsn)
}

func (a *app) runRemove(cmd *cobra.Command, target string, opts core.RemoveOptions, hashed bool) error {
	fail := func(err error) error {
		return &CommandError{Label: i18n.T("errors.remove"), Err: err}
	}
	m := knownhosts.NewTargetMatcher(target, hashed)
	svc, cleanup, err := a.newService(cmd, false)
	if err != nil {
		return fail(err)
	}
	defer cleanup()
	if _, err := svc.Remove(cmd.Context(), target, m, opts); err != nil {
		return fail(err)
	}
	return nil
}
