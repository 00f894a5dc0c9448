package cmd

import (
	"fmt"

	"github.com/arcanaland/decksmith/internal/deck"
	"github.com/arcanaland/decksmith/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the composition of a generated deck",
	Long: `Validate generates a deck and checks its composition: exactly 52
cards, 13 per suit, 4 per rank, no duplicate combinations and only the
standard rank and suit labels.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deck.New()

		v := validator.NewValidator(d.Cards())
		results := v.Validate()

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ %s has a valid standard composition.\n", d)
		} else {
			fmt.Printf("❌ Deck has %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
