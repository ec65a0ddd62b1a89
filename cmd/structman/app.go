package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/desertwitch/structman/internal/configuration"
	"github.com/desertwitch/structman/internal/pathing"
	"github.com/desertwitch/structman/internal/schema"
	"github.com/desertwitch/structman/internal/ui"
	"github.com/desertwitch/structman/internal/validation"
	"github.com/desertwitch/structman/internal/verification"
)

type App struct {
	settings       *configuration.Settings
	store          *schema.Store
	pathingHandler *pathing.Handler
	verifyHandler  *verification.Handler
	uiHandler      *ui.Handler
}

func NewApp(settings *configuration.Settings,
	cfg *schema.Config,
	uiHandler *ui.Handler,
) (*App, error) {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	store, err := schema.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("(app) %w", err)
	}

	pathingHandler := pathing.NewHandler(settings.Identifier, settings.Overrides, osProvider)
	verifyHandler := verification.NewHandler(osProvider, unixProvider, pathingHandler, store)

	return &App{
		settings:       settings,
		store:          store,
		pathingHandler: pathingHandler,
		verifyHandler:  verifyHandler,
		uiHandler:      uiHandler,
	}, nil
}

// loadSchema reads and validates a schema document.
func loadSchema(path string) (*schema.Config, error) {
	if path == "" {
		return nil, ErrNoSchema
	}

	cfg, err := schema.Load(path)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Launch verifies the configured well-known directories.
func (app *App) Launch(ctx context.Context) error {
	var obs verification.Observer
	if app.uiHandler != nil {
		obs = app.uiHandler
	}

	summary, err := app.verifyHandler.VerifyAll(ctx, app.settings.Roots, app.settings.Policy, obs)

	total := summary.Total()
	slog.Info("Verification finished.",
		"roots", len(summary.Results),
		"failed", len(summary.Failed()),
		"dirsCreated", len(total.DirsCreated),
		"dirsChecked", total.DirsChecked,
		"filesChecked", total.FilesChecked,
	)

	if app.uiHandler != nil {
		app.uiHandler.RunFinished(summary, err)
	}

	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	return nil
}

func (app *App) LaunchUI() error {
	if err := app.uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}

// Reload re-reads the schema document and replaces the held configuration,
// directories not yet verified use the new configuration.
func (app *App) Reload() error {
	cfg, err := loadSchema(app.settings.SchemaPath)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	changed, err := app.store.Update(cfg)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	if changed {
		slog.Info("Schema reloaded.",
			"path", app.settings.SchemaPath,
			"fingerprint", app.store.Fingerprint(),
		)
	} else {
		slog.Info("Schema unchanged, nothing to reload.",
			"path", app.settings.SchemaPath,
		)
	}

	return nil
}

// PrintRoots writes every well-known directory with its resolved path and
// whether the held configuration declares it.
func (app *App) PrintRoots(w io.Writer) error {
	cfg := app.store.Load()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd

	fmt.Fprintln(tw, "KIND\tCONFIGURED\tPATH")

	for _, kind := range schema.Kinds() {
		_, configured := cfg.Get(kind)

		path, err := app.pathingHandler.Resolve(kind)
		if err != nil {
			path = "<" + err.Error() + ">"
		}

		fmt.Fprintf(tw, "%s\t%t\t%s\n", kind, configured, path)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	return nil
}
