package skat

// Beats reports whether a is the stronger of a and b, when a is the
// reference card: if either card is trump, the jack/trump ranking decides;
// otherwise a's own suit is the natural suit and b only counts if it follows
// that suit (a non-follower compares as if it were worth nothing).
//
// Callers must keep a as the running winner of a left-to-right scan
// (resolveTrick does): a's natural suit is only guaranteed to equal the led
// suit when a is either the trick leader or has already beaten it.
func (a Card) Beats(b Card, variant Variant) bool {
	t := Card(variant.TrumpMask())
	if a&t != 0 || b&t != 0 {
		return a&t > b&t
	}
	s := a.naturalSuitMask()
	return a > b&s
}

// resolveTrick returns the winning card of a completed trick and the sum of
// the three cards' point values. c0 is the card led.
func resolveTrick(c0, c1, c2 Card, variant Variant) (Card, int) {
	points := c0.Points() + c1.Points() + c2.Points()
	winner := c0
	if !winner.Beats(c1, variant) {
		winner = c1
	}
	if !winner.Beats(c2, variant) {
		winner = c2
	}
	return winner, points
}

// leadSuitMask returns the set of cards that "follow" a card led as the
// first card of a trick: the whole trump set if the led card is trump,
// otherwise the led card's own natural suit block.
func leadSuitMask(led Card, variant Variant) CardSet {
	t := variant.TrumpMask()
	if CardSet(led)&t != 0 {
		return t
	}
	return CardSet(led.naturalSuitMask())
}
