package cmd

import (
	"fmt"

	"github.com/arcanaland/decksmith/internal/card"
	"github.com/arcanaland/decksmith/internal/config"
	"github.com/arcanaland/decksmith/internal/deck"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card",
	Long: `Show displays detailed information about a single card from the
standard deck. Use canonical card IDs like 'spades.a' or 'hearts.10'.
IDs are case-insensitive.

Examples:
  decksmith show spades.a
  decksmith show hearts.10
  decksmith show clubs.k`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		applyColorMode(cfg)

		d := deck.New()
		c, err := d.Get(cardID)
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		displayCard(c, cfg)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// applyColorMode maps the config color setting onto the color package.
// "auto" keeps the package's own terminal detection.
func applyColorMode(cfg *config.Config) {
	switch cfg.Color {
	case "always":
		colorize.NoColor = false
	case "never":
		colorize.NoColor = true
	}
}

// suitSymbol returns the Unicode symbol for a suit
func suitSymbol(suit string) string {
	switch suit {
	case "Spades":
		return "♠"
	case "Hearts":
		return "♥"
	case "Diamonds":
		return "♦"
	case "Clubs":
		return "♣"
	default:
		return "•"
	}
}

// redSuit reports whether a suit is conventionally printed in red
func redSuit(suit string) bool {
	return suit == "Hearts" || suit == "Diamonds"
}

// cardLabel renders a short card label like "A♠" or "10 of Spades",
// depending on the symbols setting, colored by suit.
func cardLabel(c card.Card, cfg *config.Config) string {
	if cfg.Symbols {
		label := c.Rank() + suitSymbol(c.Suit())
		if redSuit(c.Suit()) {
			return colorize.RedString(label)
		}
		return colorize.HiWhiteString(label)
	}

	if redSuit(c.Suit()) {
		return colorize.RedString(c.String())
	}
	return colorize.HiWhiteString(c.String())
}

// displayCard displays the card information
func displayCard(c card.Card, cfg *config.Config) {
	fmt.Println()
	fmt.Println("  " + colorize.CyanString("Card: ") + cardLabel(c, cfg))
	fmt.Println("  " + colorize.CyanString("Rank: ") + colorize.HiWhiteString(c.Rank()))

	suitLine := c.Suit()
	if cfg.Symbols {
		suitLine = fmt.Sprintf("%s · %s", c.Suit(), suitSymbol(c.Suit()))
	}
	fmt.Println("  " + colorize.CyanString("Suit: ") + colorize.HiWhiteString(suitLine))
	fmt.Println("  " + colorize.CyanString("ID:   ") + colorize.HiWhiteString(c.ID()))
	fmt.Println()
}
