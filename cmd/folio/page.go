package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

func runPage(cmd *cobra.Command, flags *rootFlags) error {
	app, err := loadApp(cmd, flags, "open the page")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		// Piped output gets the page once, read-only.
		res := app.resolver(out).Resolve()
		fmt.Fprintln(out, tui.Render(app.content, res.Mode, fallbackWidth))
		return nil
	}

	tuiLog, closeLog, err := openTUILog(app.cfg.LogFile, app.cfg.LogLevel)
	if err != nil {
		return newCommandError("open the page", "opening log file", err, "Check log_file in the config.")
	}
	defer closeLog()
	app.log = tuiLog

	initial := app.resolver(out).ResolveInitial()
	controller := theme.NewController(initial, app.persister())
	app.log.WithFields(map[string]any{"mode": initial.String()}).Info("page opened")

	m := tui.NewModel(tui.Options{
		Content:    app.content,
		Controller: controller,
		Logger:     app.log,
		Motion:     !app.cfg.NoMotion,
		Width:      terminalWidth(out),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		app.log.Error(err, "page exited with error")
		return fmt.Errorf("failed to run page: %w", err)
	}

	app.log.WithFields(map[string]any{"mode": controller.Mode().String()}).Info("page closed")
	return nil
}

// openTUILog returns a logger writing to path, since the terminal belongs to the UI.
// An empty path discards log output.
func openTUILog(path, level string) (*logger.Logger, func(), error) {
	if path == "" {
		return logger.Discard(), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Options{Level: level, Writer: file})
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	return log, func() { _ = file.Close() }, nil
}
