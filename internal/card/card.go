package card

import (
	"fmt"
	"strings"
)

// Card represents a single playing card with a rank and a suit.
// Both fields are fixed at construction; Card has no setters and no
// exported fields, so a constructed card cannot be changed. Card is a
// comparable value: == compares (rank, suit) and cards can be used as
// map keys.
type Card struct {
	rank string
	suit string
}

// New creates a card with the given rank and suit labels.
// The labels are not checked against the standard vocabularies; use
// KnownRank and KnownSuit (or the validator package) when rejection of
// unknown labels is wanted.
func New(rank, suit string) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the rank label (e.g. "A", "10", "K").
func (c Card) Rank() string {
	return c.rank
}

// Suit returns the suit label (e.g. "Spades").
func (c Card) Suit() string {
	return c.suit
}

// String returns a readable name like "A of Spades".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

// ID returns the canonical dotted ID for the card, e.g. "spades.a" or
// "hearts.10". IDs are always lowercase.
func (c Card) ID() string {
	return fmt.Sprintf("%s.%s", strings.ToLower(c.suit), strings.ToLower(c.rank))
}

// ParseID parses a canonical dotted card ID like "spades.a" or
// "hearts.10" into a Card. Matching is case-insensitive and the returned
// card carries the canonical labels from the vocabularies.
func ParseID(cardID string) (Card, error) {
	parts := strings.Split(cardID, ".")
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("invalid card ID format: %s", cardID)
	}

	var suit string
	for _, s := range suits {
		if strings.EqualFold(parts[0], s) {
			suit = s
			break
		}
	}
	if suit == "" {
		return Card{}, fmt.Errorf("unknown suit: %s", parts[0])
	}

	var rank string
	for _, r := range ranks {
		if strings.EqualFold(parts[1], r) {
			rank = r
			break
		}
	}
	if rank == "" {
		return Card{}, fmt.Errorf("unknown rank: %s", parts[1])
	}

	return Card{rank: rank, suit: suit}, nil
}
