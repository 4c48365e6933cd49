package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile    string
	verbose       bool
	logLevel      string
	logFormat     string
	logFile       string
	themeFile     string
	themeFallback string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "sumcalc",
		Short:         "Sumcalc adds two numbers in a small themed terminal calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the calculator
			return runUI(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "Config file (default ~/.config/sumcalc/config.yaml)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")
	pf.StringVar(&flags.logFile, "log-file", "", "Log file used while the calculator is open")
	pf.StringVar(&flags.themeFile, "theme-file", "", "File holding the saved theme preference")
	pf.StringVar(&flags.themeFallback, "theme-fallback", "", "Theme used when none is saved: system, light or dark")

	cmd.AddCommand(newUICmd(flags))
	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newDeckCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
