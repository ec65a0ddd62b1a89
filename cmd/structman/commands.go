package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/desertwitch/structman/internal/configuration"
	"github.com/desertwitch/structman/internal/schema"
	"github.com/desertwitch/structman/internal/ui"
	"github.com/desertwitch/structman/internal/verification"
	"github.com/spf13/cobra"
)

const (
	defaultSettingsFile = "structman.env"
)

// options are the command-line flags shared by all commands.
type options struct {
	settingsFile string
	schemaPath   string
	identifier   string
	policy       string
	overrides    []string
	uiEnabled    bool
	debug        bool
}

func newRootCommand(cancel context.CancelFunc, logManager *SlogManager, level *slog.LevelVar) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "structman",
		Short: "Verify and repair directory structures in well-known directories",
		Long: `structman verifies that the well-known directories of the current user
(configuration, cache, data, documents, ...) contain the files and directories
declared in a schema document, creating missing directories where allowed.

Settings are read from a Unix-type settings file (STRUCTMAN_* keys), any
command-line flag takes precedence over the respective setting.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if level != nil && opts.debug {
				level.Set(slog.LevelDebug)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.settingsFile, "env", defaultSettingsFile, "settings file to read")
	flags.StringVar(&opts.schemaPath, "schema", "", "schema document (JSON or YAML)")
	flags.StringVar(&opts.identifier, "identifier", "", "application identifier for the application-scoped directories")
	flags.StringArrayVar(&opts.overrides, "root", nil, "override a resolved path (kind=path), repeatable")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	verifyCmd := &cobra.Command{
		Use:   "verify [kinds...]",
		Short: "Verify (and repair) the configured well-known directories",
		Long: `Verify the structure of the given well-known directories, or of all
directories configured in the schema document if none are given.

Examples:
  structman verify --schema schema.yaml
  structman verify appConfig app_data --policy continue
  structman verify --root appConfig=/tmp/app --ui`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := readSettings(cmd, opts, args)
			if err != nil {
				return err
			}

			return runVerify(cmd.Context(), cancel, logManager, level, settings, opts.uiEnabled)
		},
	}
	verifyCmd.Flags().StringVar(&opts.policy, "policy", "", "reaction to a failing directory (abort|continue)")
	verifyCmd.Flags().BoolVar(&opts.uiEnabled, "ui", false, "enable the UI")

	rootsCmd := &cobra.Command{
		Use:   "roots",
		Short: "List the well-known directories and their resolved paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := readSettings(cmd, opts, nil)
			if err != nil {
				return err
			}

			cfg := schema.NewConfig()
			if settings.SchemaPath != "" {
				if cfg, err = loadSchema(settings.SchemaPath); err != nil {
					return err
				}
			}

			app, err := NewApp(settings, cfg, nil)
			if err != nil {
				return err
			}

			return app.PrintRoots(cmd.OutOrStdout())
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check-schema [path]",
		Short: "Parse and validate a schema document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := readSettings(cmd, opts, nil)
			if err != nil {
				return err
			}

			path := settings.SchemaPath
			if len(args) > 0 {
				path = args[0]
			}

			cfg, err := loadSchema(path)
			if err != nil {
				return err
			}

			fp, err := schema.Fingerprint(cfg)
			if err != nil {
				return fmt.Errorf("(check) %w", err)
			}

			kinds := make([]string, 0, cfg.Len())
			for _, kind := range cfg.Configured() {
				kinds = append(kinds, kind.String())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "schema:      %s\n", path)
			fmt.Fprintf(out, "fingerprint: %s\n", fp)
			fmt.Fprintf(out, "configured:  %s\n", strings.Join(kinds, ", "))

			return nil
		},
	}

	rootCmd.AddCommand(verifyCmd, rootsCmd, checkCmd)

	return rootCmd
}

// readSettings reads the settings file and applies the command-line flags on
// top. A missing settings file is only an error when it was explicitly given.
func readSettings(cmd *cobra.Command, opts *options, args []string) (*configuration.Settings, error) {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings, err := configHandler.ReadSettings(opts.settingsFile)
	if err != nil {
		if cmd.Flags().Changed("env") || !errors.Is(err, fs.ErrNotExist) {
			return nil, err //nolint:wrapcheck
		}

		slog.Debug("No settings file found, using defaults.",
			"path", opts.settingsFile,
		)
		settings = configuration.NewSettings()
	}

	if opts.schemaPath != "" {
		settings.SchemaPath = opts.schemaPath
	}

	if opts.identifier != "" {
		settings.Identifier = opts.identifier
	}

	if opts.policy != "" {
		policy, err := verification.ParsePolicy(opts.policy)
		if err != nil {
			return nil, fmt.Errorf("%w: --policy: %w", configuration.ErrInvalidSetting, err)
		}
		settings.Policy = policy
	}

	for _, value := range opts.overrides {
		kind, path, err := configuration.ParseOverride(value)
		if err != nil {
			return nil, fmt.Errorf("--root: %w", err)
		}
		settings.Overrides[kind] = path
	}

	if len(args) > 0 {
		roots, err := configuration.ParseRoots(strings.Join(args, ","))
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		settings.Roots = roots
	}

	return settings, nil
}

func runVerify(ctx context.Context, cancel context.CancelFunc, logManager *SlogManager,
	level slog.Leveler, settings *configuration.Settings, uiEnabled bool,
) error {
	cfg, err := loadSchema(settings.SchemaPath)
	if err != nil {
		return err
	}

	var uiHandler *ui.Handler
	if uiEnabled {
		uiHandler = ui.NewHandler(ctx, cancel)
	}

	app, err := NewApp(settings, cfg, uiHandler)
	if err != nil {
		return err
	}

	stopReload := setupReloadHandler(app)
	defer stopReload()

	if uiHandler == nil {
		return app.Launch(ctx)
	}

	var wg sync.WaitGroup
	var appErr error

	wg.Add(1)
	go startUI(&wg, app, logManager, level)

	wg.Add(1)
	go func() {
		defer wg.Done()
		appErr = startApp(ctx, app)
	}()

	wg.Wait()

	return appErr
}

// setupReloadHandler reloads the schema document on SIGHUP.
func setupReloadHandler(app *App) func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP)

	go func() {
		for range sigChan {
			if err := app.Reload(); err != nil {
				slog.Error("Failed to reload the schema: keeping the current.",
					"err", err,
				)
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(sigChan)
	}
}

func startApp(ctx context.Context, app *App) error {
	slog.Info("Waiting for UI...")

	for !app.uiHandler.Ready.Load() && !app.uiHandler.Failed.Load() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond): //nolint:mnd
		}
	}

	return app.Launch(ctx)
}

func startUI(wg *sync.WaitGroup, app *App, logManager *SlogManager, level slog.Leveler) {
	defer wg.Done()

	terminal, _ := logManager.GetHandler(terminalHandlerName)

	logManager.AddHandler(uiHandlerName, newLogHandler(app.uiHandler.LogWriter, level, false))
	logManager.RemoveHandler(terminalHandlerName)

	err := app.LaunchUI()

	logManager.RemoveHandler(uiHandlerName)
	if terminal != nil {
		logManager.AddHandler(terminalHandlerName, terminal)
	}

	if errors.Is(err, context.Canceled) {
		slog.Warn("Interrupted by the user, stopping.")

		return
	}

	if err != nil {
		slog.Error("UI failure: falling back to terminal.",
			"err", fmt.Errorf("%w: %w", ErrUIFailed, err),
		)
	}
}
