package skat

// Player is one of the three players at the table, cyclically ordered
// P1 -> P2 -> P3 -> P1.
type Player uint8

// Players.
const (
	P1 Player = iota
	P2
	P3
)

// String satisfies the [fmt.Stringer] interface.
func (p Player) String() string {
	switch p {
	case P1:
		return "P1"
	case P2:
		return "P2"
	case P3:
		return "P3"
	}
	return "Invalid"
}

// Next returns the player after p in turn order.
func (p Player) Next() Player {
	return (p + 1) % 3
}

// GlobalState holds the facts of a single deal that never change over the
// course of a search: the three dealt hands, the skat, who the soloist is,
// and the variant being played. A GlobalState is immutable once constructed
// and is shared, read-only, across every node of a search.
type GlobalState struct {
	hands    [3]CardSet
	skat     CardSet
	soloist  Player
	variant  Variant
	skatPts  int
	skatBitA Card
	skatBitB Card
}

// NewGlobalState validates and constructs the immutable facts of a deal.
//
// skat must either be exactly 2 cards (a real skat, whose points are
// credited to the soloist) or empty. An empty skat is for partial deals used
// in tests: the constructor synthesizes two deterministic "skat bits" from
// cards held by none of the three hands, solely to keep the transposition
// key of §4.5 well-defined; no points are attributed to them.
func NewGlobalState(hands [3]CardSet, skat CardSet, soloist Player, variant Variant) (*GlobalState, error) {
	if variant > DiamondsTrump {
		return nil, ErrNotImplemented
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if hands[i]&hands[j] != 0 {
				return nil, ErrOverlappingHands
			}
		}
	}
	dealt := hands[0] | hands[1] | hands[2]

	switch skat.Len() {
	case 2:
		if dealt&skat != 0 {
			return nil, ErrOverlappingHands
		}
		if dealt|skat != Deck {
			return nil, ErrWrongCardCount
		}
		cards := skat.Cards()
		return &GlobalState{
			hands:    hands,
			skat:     skat,
			soloist:  soloist,
			variant:  variant,
			skatPts:  skat.Points(),
			skatBitA: cards[0],
			skatBitB: cards[1],
		}, nil
	case 0:
		unassigned := Deck &^ dealt
		if unassigned.Len() < 2 {
			return nil, ErrWrongCardCount
		}
		cards := unassigned.Cards()
		return &GlobalState{
			hands:    hands,
			skat:     0,
			soloist:  soloist,
			variant:  variant,
			skatPts:  0,
			skatBitA: cards[0],
			skatBitB: cards[1],
		}, nil
	default:
		return nil, ErrInvalidSkatSize
	}
}

// SkatPoints returns the card points carried by the skat, credited
// unconditionally to the soloist at the end of a solve.
func (g *GlobalState) SkatPoints() int {
	return g.skatPts
}

// Hand returns the cards dealt to p.
func (g *GlobalState) Hand(p Player) CardSet {
	return g.hands[p]
}

// Soloist returns the declared soloist.
func (g *GlobalState) Soloist() Player {
	return g.soloist
}

// Variant returns the game variant.
func (g *GlobalState) Variant() Variant {
	return g.variant
}

// LocalState is a single search-tree node: which cards remain, the 0-2 cards
// of the in-progress trick, whose turn it is, and the suit led (if any). It
// is cheap to copy and is never mutated in place — successors are produced
// as new values.
type LocalState struct {
	Remaining CardSet
	Trick0    Card // 0 if no card has been led yet
	Trick1    Card // 0 if at most one card has been played
	ToMove    Player
	ledSuit   CardSet
	hasLed    bool
}

// NewRootState returns the trick-start node for a full deal: every dealt
// card remains, nothing has been played, and leader begins.
func NewRootState(g *GlobalState, leader Player) LocalState {
	return LocalState{
		Remaining: g.hands[P1] | g.hands[P2] | g.hands[P3],
		ToMove:    leader,
	}
}

// IsTerminal reports whether every card has been played.
func (s LocalState) IsTerminal() bool {
	return s.Remaining == 0
}

// IsTrickBoundary reports whether both trick slots are empty, i.e. whether s
// is safe to cache in the transposition table (§4.5).
func (s LocalState) IsTrickBoundary() bool {
	return s.Trick0 == 0 && s.Trick1 == 0
}

// LedSuit returns the set of cards that follow the suit led for the
// in-progress trick, and whether a card has been led at all.
func (s LocalState) LedSuit() (CardSet, bool) {
	return s.ledSuit, s.hasLed
}

// hashKey returns the transposition-table key for a trick-boundary node:
// the remaining cards as they are when P1 is to move, with one of the game's
// two fixed skat bits ORed in when P2 is to move and the other when P3 is
// (§4.5). Skat cards are
// never in Remaining, so this never collides across players.
func (s LocalState) hashKey(g *GlobalState) uint32 {
	key := uint32(s.Remaining)
	switch s.ToMove {
	case P2:
		key |= uint32(g.skatBitA)
	case P3:
		key |= uint32(g.skatBitB)
	}
	return key
}
