package skat

// Variant is the game kind being played: Grand, or one of the four suit
// games. Null variants are out of scope for this solver (see [ErrNotImplemented]).
type Variant uint8

// Variants, matching the fixture file encoding of spec §6.
const (
	Grand Variant = iota
	ClubsTrump
	SpadesTrump
	HeartsTrump
	DiamondsTrump
)

// String satisfies the [fmt.Stringer] interface.
func (v Variant) String() string {
	switch v {
	case Grand:
		return "Grand"
	case ClubsTrump:
		return "Clubs"
	case SpadesTrump:
		return "Spades"
	case HeartsTrump:
		return "Hearts"
	case DiamondsTrump:
		return "Diamonds"
	}
	return "Invalid"
}

// TrumpMask returns the set of cards that are trump in v: the four jacks for
// Grand, plus the named suit's non-jack cards for a suit game.
func (v Variant) TrumpMask() CardSet {
	switch v {
	case Grand:
		return CardSet(jacksMask)
	case ClubsTrump:
		return CardSet(jacksMask | clubsBlockMask)
	case SpadesTrump:
		return CardSet(jacksMask | spadesBlockMask)
	case HeartsTrump:
		return CardSet(jacksMask | heartsBlockMask)
	case DiamondsTrump:
		return CardSet(jacksMask | diamondsBlockMask)
	default:
		panic("skat: Null variants are not implemented")
	}
}

// VariantFromSuit returns the suit-trump Variant for the given suit.
func VariantFromSuit(s Suit) Variant {
	switch s {
	case Clubs:
		return ClubsTrump
	case Spades:
		return SpadesTrump
	case Hearts:
		return HeartsTrump
	default:
		return DiamondsTrump
	}
}
