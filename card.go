// Package skat is a double-dummy solver for the trick-taking card game
// Skat: given full knowledge of every hand, the declared soloist, and the
// variant being played, it computes the maximum number of card points the
// soloist is guaranteed to achieve against two optimally cooperating
// opponents.
package skat

import (
	"fmt"
	"math/bits"
)

// Suit is a card suit.
type Suit uint8

// Suits, ordered by jack strength (Clubs highest).
const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

// String satisfies the [fmt.Stringer] interface.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	}
	return "Invalid"
}

// GermanName returns the suit's German name, as used at the table.
func (s Suit) GermanName() string {
	switch s {
	case Clubs:
		return "Kreuz"
	case Spades:
		return "Pik"
	case Hearts:
		return "Herz"
	case Diamonds:
		return "Karo"
	}
	return "?"
}

// base is the bit offset of the suit's 7-card non-jack block.
func (s Suit) base() uint {
	switch s {
	case Clubs:
		return 21
	case Spades:
		return 14
	case Hearts:
		return 7
	default:
		return 0
	}
}

// jackShift is the bit offset of the suit's jack within the top nibble.
func (s Suit) jackShift() uint {
	switch s {
	case Clubs:
		return 31
	case Spades:
		return 30
	case Hearts:
		return 29
	default:
		return 28
	}
}

// Rank is a non-jack card rank, plus Jack for cards whose suit only matters
// for trump ordering.
type Rank uint8

// Ranks, in ascending bit-offset order within a suit's 7-card block. This is
// also ascending trick-taking strength: Ace beats Ten beats King beats Queen
// beats Nine beats Eight beats Seven.
const (
	Seven Rank = iota
	Eight
	Nine
	Queen
	King
	Ten
	Ace
	Jack
)

// String satisfies the [fmt.Stringer] interface.
func (r Rank) String() string {
	switch r {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ten:
		return "T"
	case Ace:
		return "A"
	case Jack:
		return "J"
	}
	return "?"
}

// offset is the rank's bit offset within a suit's 7-card block. Jack has no
// offset of its own; it lives in the top nibble instead (see [NewCard]).
func (r Rank) offset() uint {
	return uint(r)
}

// Card is a single playing card: a [CardSet] with exactly one bit set.
//
// Bit layout (MSB to LSB), fixed by design so that a masked unsigned compare
// between two cards of the same suit returns the stronger card:
//
//	31..28  Jacks: Clubs(31) Spades(30) Hearts(29) Diamonds(28)
//	27..21  Clubs:    A(27) T(26) K(25) Q(24) 9(23) 8(22) 7(21)
//	20..14  Spades:   A(20) T(19) K(18) Q(17) 9(16) 8(15) 7(14)
//	13..07  Hearts:   A(13) T(12) K(11) Q(10) 9(9)  8(8)  7(7)
//	06..00  Diamonds: A(6)  T(5)  K(4)  Q(3)  9(2)  8(1)  7(0)
type Card uint32

// NewCard returns the card of the given suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	if rank == Jack {
		return Card(1) << suit.jackShift()
	}
	return Card(1) << (suit.base() + rank.offset())
}

// Named cards, one per bit, for use in fixtures and tests.
const (
	ClubsJack    Card = 1 << 31
	SpadesJack   Card = 1 << 30
	HeartsJack   Card = 1 << 29
	DiamondsJack Card = 1 << 28

	ClubsAce   Card = 1 << 27
	ClubsTen   Card = 1 << 26
	ClubsKing  Card = 1 << 25
	ClubsQueen Card = 1 << 24
	ClubsNine  Card = 1 << 23
	ClubsEight Card = 1 << 22
	ClubsSeven Card = 1 << 21

	SpadesAce   Card = 1 << 20
	SpadesTen   Card = 1 << 19
	SpadesKing  Card = 1 << 18
	SpadesQueen Card = 1 << 17
	SpadesNine  Card = 1 << 16
	SpadesEight Card = 1 << 15
	SpadesSeven Card = 1 << 14

	HeartsAce   Card = 1 << 13
	HeartsTen   Card = 1 << 12
	HeartsKing  Card = 1 << 11
	HeartsQueen Card = 1 << 10
	HeartsNine  Card = 1 << 9
	HeartsEight Card = 1 << 8
	HeartsSeven Card = 1 << 7

	DiamondsAce   Card = 1 << 6
	DiamondsTen   Card = 1 << 5
	DiamondsKing  Card = 1 << 4
	DiamondsQueen Card = 1 << 3
	DiamondsNine  Card = 1 << 2
	DiamondsEight Card = 1 << 1
	DiamondsSeven Card = 1 << 0
)

const (
	jacksMask    = ClubsJack | SpadesJack | HeartsJack | DiamondsJack
	sevensMask   = ClubsSeven | SpadesSeven | HeartsSeven | DiamondsSeven
	eightsMask   = ClubsEight | SpadesEight | HeartsEight | DiamondsEight
	ninesMask    = ClubsNine | SpadesNine | HeartsNine | DiamondsNine
	queensMask   = ClubsQueen | SpadesQueen | HeartsQueen | DiamondsQueen
	kingsMask    = ClubsKing | SpadesKing | HeartsKing | DiamondsKing
	tensMask     = ClubsTen | SpadesTen | HeartsTen | DiamondsTen
	acesMask     = ClubsAce | SpadesAce | HeartsAce | DiamondsAce
	lowRanksMask = sevensMask | eightsMask | ninesMask

	clubsBlockMask    = Card(0x7f) << 21
	spadesBlockMask   = Card(0x7f) << 14
	heartsBlockMask   = Card(0x7f) << 7
	diamondsBlockMask = Card(0x7f)

	// deckMask covers all 32 cards.
	deckMask = Card(0xffffffff)
)

// Points returns the card's point value. Summed over a full deck, this is
// exactly 120.
func (c Card) Points() int {
	switch {
	case c&jacksMask != 0:
		return 2
	case c&lowRanksMask != 0:
		return 0
	case c&tensMask != 0:
		return 10
	case c&queensMask != 0:
		return 3
	case c&kingsMask != 0:
		return 4
	case c&acesMask != 0:
		return 11
	default:
		panic(fmt.Sprintf("skat: invalid card %#x", uint32(c)))
	}
}

// IsJack reports whether c is one of the four jacks.
func (c Card) IsJack() bool {
	return c&jacksMask != 0
}

// naturalSuitMask returns the block mask of the suit c belongs to.
func (c Card) naturalSuitMask() Card {
	switch {
	case c&clubsBlockMask != 0:
		return clubsBlockMask
	case c&spadesBlockMask != 0:
		return spadesBlockMask
	case c&heartsBlockMask != 0:
		return heartsBlockMask
	default:
		return diamondsBlockMask
	}
}

// String satisfies the [fmt.Stringer] interface, formatting the card as
// rank+suit-initial (e.g. "JC" for the club jack, "TH" for the heart ten).
func (c Card) String() string {
	if c == 0 {
		return "--"
	}
	n := bits.TrailingZeros32(uint32(c))
	switch {
	case n >= 28:
		return "J" + [4]string{"D", "H", "S", "C"}[n-28]
	case n >= 21:
		return rankOffsetName(n-21) + "C"
	case n >= 14:
		return rankOffsetName(n-14) + "S"
	case n >= 7:
		return rankOffsetName(n-7) + "H"
	default:
		return rankOffsetName(n) + "D"
	}
}

func rankOffsetName(offset int) string {
	return [7]string{"7", "8", "9", "Q", "K", "T", "A"}[offset]
}

// CardSet is an unordered set of cards, represented as a 32-bit word. Bits
// outside the 32-card deck are never set by any constructor in this package.
type CardSet uint32

// Deck is the full 32-card Skat deck.
const Deck = CardSet(deckMask)

// NewCardSet returns the set containing exactly the given cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs |= CardSet(c)
	}
	return cs
}

// Contains reports whether cs contains c.
func (cs CardSet) Contains(c Card) bool {
	return cs&CardSet(c) != 0
}

// Add returns cs with c added.
func (cs CardSet) Add(c Card) CardSet {
	return cs | CardSet(c)
}

// Remove returns cs with c removed.
func (cs CardSet) Remove(c Card) CardSet {
	return cs &^ CardSet(c)
}

// Union returns the union of cs and other.
func (cs CardSet) Union(other CardSet) CardSet {
	return cs | other
}

// Intersect returns the intersection of cs and other.
func (cs CardSet) Intersect(other CardSet) CardSet {
	return cs & other
}

// Len returns the number of cards in cs.
func (cs CardSet) Len() int {
	return bits.OnesCount32(uint32(cs))
}

// Empty reports whether cs contains no cards.
func (cs CardSet) Empty() bool {
	return cs == 0
}

// Lowest returns the lowest-bit card in cs, or 0 if cs is empty. Isolating
// the lowest set bit this way (h & ((h-1) ^ h)) is the standard bitboard
// trick and runs in constant time regardless of popcount.
func (cs CardSet) Lowest() Card {
	if cs == 0 {
		return 0
	}
	return Card(uint32(cs) & ((uint32(cs) - 1) ^ uint32(cs)))
}

// Cards returns the cards in cs, in LSB-first order.
func (cs CardSet) Cards() []Card {
	out := make([]Card, 0, cs.Len())
	for cs != 0 {
		c := cs.Lowest()
		out = append(out, c)
		cs = cs.Remove(c)
	}
	return out
}

// Points returns the sum of point values of the cards in cs.
func (cs CardSet) Points() int {
	var total int
	for _, c := range cs.Cards() {
		total += c.Points()
	}
	return total
}
