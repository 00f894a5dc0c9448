package validator

import (
	"fmt"

	"github.com/arcanaland/decksmith/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a card sequence against the standard deck
// composition: 52 cards, 13 per suit, 4 per rank, every (rank, suit)
// combination unique, all labels from the standard vocabularies.
type Validator struct {
	Cards   []card.Card
	Results ValidationResults
}

func NewValidator(cards []card.Card) *Validator {
	return &Validator{
		Cards:   cards,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateCount()
	v.validateLabels()
	v.validateDuplicates()
	v.validateDistribution()

	return v.Results
}

func (v *Validator) validateCount() {
	if len(v.Cards) != 52 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("expected 52 cards, found %d", len(v.Cards)))
	}
}

// validateLabels checks that every card uses known rank and suit labels
func (v *Validator) validateLabels() {
	for _, c := range v.Cards {
		if !card.KnownSuit(c.Suit()) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("unknown suit: %s", c.Suit()))
		}
		if !card.KnownRank(c.Rank()) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("unknown rank: %s", c.Rank()))
		}
	}
}

// validateDuplicates checks that no (rank, suit) combination repeats
func (v *Validator) validateDuplicates() {
	seen := make(map[card.Card]bool, len(v.Cards))
	for _, c := range v.Cards {
		if seen[c] {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("duplicate card: %s", c))
			continue
		}
		seen[c] = true
	}
}

// validateDistribution checks the 13-per-suit and 4-per-rank counts
func (v *Validator) validateDistribution() {
	suitCounts := make(map[string]int)
	rankCounts := make(map[string]int)
	for _, c := range v.Cards {
		suitCounts[c.Suit()]++
		rankCounts[c.Rank()]++
	}

	for _, suit := range card.Suits() {
		if suitCounts[suit] != 13 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("suit %s has %d cards, expected 13", suit, suitCounts[suit]))
		}
	}

	for _, rank := range card.Ranks() {
		if rankCounts[rank] != 4 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("rank %s appears %d times, expected 4", rank, rankCounts[rank]))
		}
	}
}
