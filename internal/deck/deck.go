package deck

import (
	"fmt"

	"github.com/arcanaland/decksmith/internal/card"
)

// Deck holds the standard 52-card set. The card sequence is built once
// at construction and never changes; access goes through Cards, which
// returns a copy, so a Deck cannot be modified from outside the package.
type Deck struct {
	cards []card.Card
}

// New creates a standard 52-card deck. Cards are generated suit-major:
// all thirteen ranks of Spades, then Hearts, Diamonds and Clubs, with
// ranks in A,2..10,J,Q,K order within each suit. Every call produces the
// same sequence.
func New() *Deck {
	cards := make([]card.Card, 0, 52)
	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return &Deck{cards: cards}
}

// Cards returns the deck's cards in generation order. The returned slice
// is freshly allocated on every call; mutating it does not affect the
// deck or any other slice returned earlier.
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Len returns the number of cards in the deck, always 52.
func (d *Deck) Len() int {
	return len(d.cards)
}

// String returns a summary like "Deck with 52 cards".
func (d *Deck) String() string {
	return fmt.Sprintf("Deck with %d cards", len(d.cards))
}

// Get returns the card with the given canonical dotted ID, e.g.
// "spades.a" or "hearts.10".
func (d *Deck) Get(cardID string) (card.Card, error) {
	c, err := card.ParseID(cardID)
	if err != nil {
		return card.Card{}, err
	}

	for _, dc := range d.cards {
		if dc == c {
			return dc, nil
		}
	}

	return card.Card{}, fmt.Errorf("card not found: %s", cardID)
}
