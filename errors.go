package skat

// Error is a sentinel error type for construction-time failures, mirroring
// the teacher library's plain string-based error values.
type Error string

// Error satisfies the error interface.
func (err Error) Error() string {
	return string(err)
}

// Construction-time errors (spec §7). Search-time invariant violations are
// not in this list: they are programmer errors and panic instead.
const (
	// ErrOverlappingHands is returned when two players' dealt hands, or a
	// hand and the skat, share a card.
	ErrOverlappingHands Error = "skat: hands overlap"
	// ErrWrongCardCount is returned when the hands and skat together do not
	// cover exactly the deck.
	ErrWrongCardCount Error = "skat: hands and skat do not partition the deck"
	// ErrInvalidSkatSize is returned when the skat is neither empty (to be
	// synthesized) nor exactly 2 cards.
	ErrInvalidSkatSize Error = "skat: skat must have 0 or 2 cards"
	// ErrNotImplemented is returned for Null, Null-Hand, Null-Ouvert, and
	// Null-Ouvert-Hand, none of which this solver implements.
	ErrNotImplemented Error = "skat: variant not implemented"
)
