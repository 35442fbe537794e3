package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/folio/internal/components"
	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/preference"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

const fallbackWidth = 80

// appContext bundles what every command needs: configuration, logging, the preference
// store and the page content.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	store   *preference.FileStore
	content content.Content
}

func loadApp(cmd *cobra.Command, flags *rootFlags, operation string) (*appContext, error) {
	cfg, err := config.Load(flags.configPath, nil)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Fix the config file or point --config at another one.")
	}

	err = cfg.ApplyOverrides(config.Overrides{
		PreferencesPath: flags.preferencesPath,
		ContentPath:     flags.contentPath,
		NoMotion:        flags.noMotion,
		Verbose:         flags.verbose,
	})
	if err != nil {
		return nil, newCommandError(operation, "applying flags", err, "Check the --preferences and --content values.")
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error as log level.")
	}

	prefsPath := cfg.PreferencesPath
	if prefsPath == "" {
		prefsPath, err = preference.DefaultPath()
		if err != nil {
			return nil, newCommandError(operation, "determining preferences path", err, "Ensure your HOME directory is set correctly or pass --preferences.")
		}
	}

	page := content.Default()
	if cfg.ContentPath != "" {
		page, err = content.Load(cfg.ContentPath)
		if err != nil {
			return nil, newCommandError(operation, "loading content", err, "Check the content file against the documented fields.")
		}
	}
	page.Projects = content.ResolveSourceLinks(page.Projects, log.WithComponent("content"))

	return &appContext{
		cfg:     cfg,
		log:     log,
		store:   preference.NewFileStore(prefsPath),
		content: page,
	}, nil
}

// detector builds the ambient signal chain. out is the terminal the page is drawn on.
func (a *appContext) detector(out io.Writer) theme.Detector {
	if a.cfg.Theme.DisableDetection {
		return nil
	}
	return theme.Chain{
		theme.NewEnvDetector(),
		theme.NewTerminalDetector(out),
		theme.NewAppearanceDetector(),
	}
}

func (a *appContext) resolver(out io.Writer) *theme.Resolver {
	opts := []theme.ResolverOption{theme.WithLogger(a.log.WithComponent("theme"))}
	if a.cfg.Theme.Default != "" {
		opts = append(opts, theme.WithFallback(theme.Mode(a.cfg.Theme.Default)))
	}
	return theme.NewResolver(a.store, a.detector(out), components.Root(), opts...)
}

func (a *appContext) persister() *theme.Persister {
	return theme.NewPersister(a.store, components.Root(), a.log.WithComponent("theme"))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
