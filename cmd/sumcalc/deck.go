package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sumcalc/internal/deck"
)

type deckOptions struct {
	shuffle bool
	seed    uint64
}

func newDeckCmd(flags *rootFlags) *cobra.Command {
	opts := &deckOptions{}

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Print a digit pad layout",
		Long:  `Print the digits of the number pad in display order together with each tile's tilt in degrees.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeck(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.shuffle, "shuffle", false, "Shuffle the digits instead of printing them in order")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible layout")

	return cmd
}

func runDeck(cmd *cobra.Command, flags *rootFlags, opts *deckOptions) error {
	app, err := newAppContext(cmd, flags, false, "command.deck")
	if err != nil {
		return err
	}
	defer app.Close()

	shuffler := deck.NewShuffler(nil)
	if cmd.Flags().Changed("seed") {
		shuffler = deck.NewSeededShuffler(opts.seed)
	}

	layout := shuffler.Initial()
	if opts.shuffle {
		layout = shuffler.Shuffle()
	}

	digits := make([]string, 0, deck.Size)
	tilts := make([]string, 0, deck.Size)
	for _, tile := range layout {
		digits = append(digits, strconv.Itoa(tile.Value))
		tilts = append(tilts, fmt.Sprintf("%+d", tile.Rotation))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "digits: %s\n", strings.Join(digits, " "))
	fmt.Fprintf(out, "tilts:  %s\n", strings.Join(tilts, " "))

	app.Logger.WithFields(map[string]any{"order": layout.Values(), "shuffled": opts.shuffle}).Debug("deck printed")
	return nil
}
