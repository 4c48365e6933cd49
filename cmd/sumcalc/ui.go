package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/sumcalc/internal/session"
	"github.com/alexisbeaulieu97/sumcalc/internal/tui/calculator"
)

var errNotTerminal = errors.New("the calculator needs an interactive terminal; use 'sumcalc add' in scripts")

var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newUICmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calculator",
		Long:  `Open the interactive calculator: two number fields, a shuffled digit pad and a light/dark theme toggle.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, flags)
		},
	}

	return cmd
}

func runUI(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	app, err := newAppContext(cmd, flags, true, "command.ui")
	if err != nil {
		return err
	}
	defer app.Close()

	active := app.ResolveTheme()
	app.Logger.With("theme", active.String()).Info("launching calculator")

	m := calculator.NewModel(calculator.Options{
		Session:   session.New(nil),
		Theme:     active,
		Store:     app.Store,
		Clipboard: app.Clipboard,
		Logger:    app.Logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(app.Context()))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "calculator execution failed")
		return fmt.Errorf("failed to run calculator: %w", err)
	}

	app.Logger.Info("calculator closed")
	return nil
}
