package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/decksmith/internal/config"
	"github.com/arcanaland/decksmith/internal/deck"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the standard 52-card deck",
	Long:  `Commands for generating and inspecting the standard 52-card deck.`,
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print all 52 cards in generation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		applyColorMode(cfg)

		d := deck.New()

		// Get terminal width
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}

		fmt.Println(d)
		fmt.Println()

		// One block per suit, labels wrapped to the terminal width
		cards := d.Cards()
		for i := 0; i < len(cards); i += 13 {
			suit := cards[i].Suit()
			fmt.Printf("%s:\n", suit)

			line := " "
			lineWidth := 1
			for _, c := range cards[i : i+13] {
				label := cardLabel(c, cfg)
				labelWidth := len(stripAnsi(label))
				if lineWidth+labelWidth+2 > width {
					fmt.Println(line)
					line = " "
					lineWidth = 1
				}
				line += " " + label
				lineWidth += 1 + labelWidth
			}
			fmt.Println(line)
			fmt.Println()
		}

		return nil
	},
}

// deckCountCmd represents the deck count command
var deckCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of cards in the deck",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(deck.New().Len())
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckCountCmd)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
