package skat

import "sort"

// Move is one legal successor of a [LocalState]: the card played, the
// resulting state, and — only when the move closes a trick — who won it and
// how many points it carried.
type Move struct {
	Card        Card
	Next        LocalState
	ClosesTrick bool
	TrickPoints int
	TrickWinner Player
}

// Successors generates the legal moves from s for the player to move,
// handling the three trick-position cases of §4.3: trick start (no card on
// the table), one card on the table, and two cards on the table (the move
// that closes the trick).
//
// Moves are ordered to favor alpha-beta cutoffs: by descending card point
// value when opening or continuing a trick, and by descending points
// scored when closing one, since the strongest-looking replies are likeliest
// to produce the tightest bound fastest.
func Successors(g *GlobalState, s LocalState) []Move {
	hand := g.Hand(s.ToMove) & s.Remaining
	variant := g.Variant()

	switch {
	case s.Trick0 == 0:
		cards := legalCards(hand, 0, false)
		moves := make([]Move, len(cards))
		for i, c := range cards {
			moves[i] = Move{
				Card: c,
				Next: LocalState{
					Remaining: s.Remaining.Remove(c),
					Trick0:    c,
					ToMove:    s.ToMove.Next(),
					ledSuit:   leadSuitMask(c, variant),
					hasLed:    true,
				},
			}
		}
		sort.SliceStable(moves, func(i, j int) bool {
			return moves[i].Card.Points() > moves[j].Card.Points()
		})
		return moves

	case s.Trick1 == 0:
		cards := legalCards(hand, s.ledSuit, s.hasLed)
		moves := make([]Move, len(cards))
		for i, c := range cards {
			moves[i] = Move{
				Card: c,
				Next: LocalState{
					Remaining: s.Remaining.Remove(c),
					Trick0:    s.Trick0,
					Trick1:    c,
					ToMove:    s.ToMove.Next(),
					ledSuit:   s.ledSuit,
					hasLed:    s.hasLed,
				},
			}
		}
		sort.SliceStable(moves, func(i, j int) bool {
			return moves[i].Card.Points() > moves[j].Card.Points()
		})
		return moves

	default:
		cards := legalCards(hand, s.ledSuit, s.hasLed)
		leader := s.ToMove.Next() // player who led this trick
		second := leader.Next()   // player who played Trick1
		moves := make([]Move, len(cards))
		for i, c := range cards {
			winner, points := resolveTrick(s.Trick0, s.Trick1, c, variant)
			var winnerPlayer Player
			switch winner {
			case s.Trick0:
				winnerPlayer = leader
			case s.Trick1:
				winnerPlayer = second
			default:
				winnerPlayer = s.ToMove
			}
			moves[i] = Move{
				Card:        c,
				ClosesTrick: true,
				TrickPoints: points,
				TrickWinner: winnerPlayer,
				Next: LocalState{
					Remaining: s.Remaining.Remove(c),
					ToMove:    winnerPlayer,
				},
			}
		}
		sort.SliceStable(moves, func(i, j int) bool {
			return moves[i].TrickPoints > moves[j].TrickPoints
		})
		return moves
	}
}

// legalCards returns the cards of hand that must be played, given the suit
// led. If a card has been led and hand holds a follower, only followers are
// legal; otherwise (nothing led yet, or hand cannot follow) every held card
// is legal.
func legalCards(hand CardSet, ledSuit CardSet, hasLed bool) []Card {
	if hasLed {
		if follow := hand & ledSuit; follow != 0 {
			return follow.Cards()
		}
	}
	return hand.Cards()
}
