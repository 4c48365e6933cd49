package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sumcalc/internal/calc"
)

type addOptions struct {
	copy bool
}

func newAddCmd(flags *rootFlags) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <number1> <number2>",
		Short: "Print the sum of two numbers",
		Long: `Print the sum of two numbers using the same validation as the calculator.

Separate negative numbers from flags with "--", for example:
  sumcalc add -- -1.5 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, flags, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the result to the clipboard")

	return cmd
}

func runAdd(cmd *cobra.Command, flags *rootFlags, opts *addOptions, a, b string) error {
	app, err := newAppContext(cmd, flags, false, "command.add")
	if err != nil {
		return err
	}
	defer app.Close()

	sum, err := calc.ComputeSum(a, b)
	if err != nil {
		app.Logger.Debug("sum rejected")
		return err
	}

	text := calc.FormatNumber(sum)
	fmt.Fprintln(cmd.OutOrStdout(), text)
	app.Logger.With("sum", text).Debug("sum computed")

	if opts.copy {
		// Clipboard failures never fail the command.
		if err := app.Clipboard.WriteText(text); err != nil {
			app.Logger.Warn(err, "copy to clipboard failed")
		}
	}

	return nil
}
