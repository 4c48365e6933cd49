package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sumcalc/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the saved theme",
		Long:      `Without an argument, print the theme the calculator would start with. With an argument, save a new preference.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, flags, args)
		},
	}

	return cmd
}

func runTheme(cmd *cobra.Command, flags *rootFlags, args []string) error {
	app, err := newAppContext(cmd, flags, false, "command.theme")
	if err != nil {
		return err
	}
	defer app.Close()

	current := app.ResolveTheme()
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), current)
		return nil
	}

	next := current.Toggle()
	if args[0] != "toggle" {
		next, err = theme.Parse(args[0])
		if err != nil {
			return err
		}
	}

	if err := app.Store.Save(next); err != nil {
		app.Logger.With("path", app.Store.Path()).Error(err, "saving theme failed")
		return err
	}

	app.Logger.With("theme", next.String()).Info("theme saved")
	fmt.Fprintln(cmd.OutOrStdout(), next)
	return nil
}
