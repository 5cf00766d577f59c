package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/campus/internal/tui"
)

var isTerminal = func(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// runSite starts the interactive site, or prints the home page when stdout
// is not a terminal.
func runSite(cmd *cobra.Command, flags *rootFlags) error {
	interactive := isTerminal(cmd.OutOrStdout())
	app, err := newAppContext(cmd, flags, interactive)
	if err != nil {
		return err
	}
	defer app.Close()

	if !interactive {
		app.log.Debug("stdout is not a terminal; printing home page")
		return writeSnapshot(cmd.OutOrStdout(), app.model(tui.PageHome, 0), tui.FormatText)
	}

	m := app.model(tui.PageHome, 0)
	defer m.Close()

	app.log.Info("launching site")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		app.log.Error(err, "site execution failed")
		return fmt.Errorf("failed to run site: %w", err)
	}
	app.log.Info("site closed")
	return nil
}

func writeSnapshot(w io.Writer, m tui.Model, format string) error {
	defer m.Close()
	out, err := m.Snapshot(format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
