package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "decksmith",
	Short: "Tool for inspecting the standard 52-card playing deck",
	Long: `Decksmith is a command-line tool for generating and inspecting the
standard 52-card playing deck. The deck is always generated suit-major
(Spades, Hearts, Diamonds, Clubs) with ranks A through K in each suit.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
