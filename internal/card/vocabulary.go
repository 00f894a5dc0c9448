package card

// The standard deck vocabularies, in generation order.
var (
	suits = []string{"Spades", "Hearts", "Diamonds", "Clubs"}
	ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Suits returns the four suit labels in canonical order.
// The returned slice is a copy.
func Suits() []string {
	out := make([]string, len(suits))
	copy(out, suits)
	return out
}

// Ranks returns the thirteen rank labels in canonical order, ace first.
// The returned slice is a copy.
func Ranks() []string {
	out := make([]string, len(ranks))
	copy(out, ranks)
	return out
}

// KnownSuit reports whether suit is one of the four standard suit labels.
func KnownSuit(suit string) bool {
	for _, s := range suits {
		if s == suit {
			return true
		}
	}
	return false
}

// KnownRank reports whether rank is one of the thirteen standard rank labels.
func KnownRank(rank string) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}
	return false
}
