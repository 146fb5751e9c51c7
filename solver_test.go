package skat

import (
	"context"
	"testing"
)

// solverFixture is a deal plus the guaranteed score a correct solver must
// produce for it. Every fixture here is taken from a worked example in the
// reference material this solver is built from, not invented.
type solverFixture struct {
	name     string
	hands    [3]CardSet
	skat     CardSet
	soloist  Player
	leader   Player
	variant  Variant
	expected int
}

var solverFixtures = []solverFixture{
	{
		// Smallest worked example: 2 cards each, all of them trump under
		// Clubs. The soloist wins only the trick of its own club jack,
		// which also holds the jack P2 must follow with and the seven P3
		// throws in: 2 + 2 + 0 = 4. The club ten is lost to P2's other jack.
		name: "tiny-2-each",
		hands: [3]CardSet{
			NewCardSet(ClubsJack, ClubsTen),
			NewCardSet(SpadesJack, HeartsJack),
			NewCardSet(ClubsQueen, ClubsSeven),
		},
		soloist:  P1,
		leader:   P1,
		variant:  ClubsTrump,
		expected: 4,
	},
	{
		name: "7-each",
		hands: [3]CardSet{
			NewCardSet(ClubsJack, ClubsTen, HeartsTen, HeartsKing, HeartsEight, SpadesKing, SpadesSeven),
			NewCardSet(SpadesJack, HeartsJack, ClubsEight, DiamondsAce, DiamondsTen, DiamondsQueen, DiamondsNine),
			NewCardSet(ClubsQueen, ClubsSeven, HeartsAce, HeartsSeven, SpadesNine, SpadesEight, DiamondsSeven),
		},
		soloist:  P1,
		leader:   P1,
		variant:  ClubsTrump,
		expected: 7,
	},
	{
		name: "full-deal-soloist-P1-grand",
		hands: [3]CardSet{
			NewCardSet(DiamondsJack, ClubsAce, ClubsQueen, ClubsEight, HeartsKing, HeartsQueen, HeartsEight, SpadesAce, DiamondsAce, DiamondsNine),
			NewCardSet(SpadesJack, HeartsJack, HeartsNine, SpadesTen, SpadesKing, SpadesNine, SpadesEight, DiamondsTen, DiamondsQueen, DiamondsEight),
			NewCardSet(ClubsJack, ClubsTen, ClubsKing, ClubsNine, ClubsSeven, HeartsAce, HeartsTen, HeartsSeven, SpadesSeven, DiamondsSeven),
		},
		skat:     NewCardSet(SpadesQueen, DiamondsKing),
		soloist:  P1,
		leader:   P1,
		variant:  Grand,
		expected: 29,
	},
	{
		name: "full-deal-soloist-P2-grand",
		hands: [3]CardSet{
			NewCardSet(DiamondsJack, ClubsKing, ClubsEight, HeartsAce, HeartsSeven, SpadesTen, SpadesSeven, DiamondsTen, DiamondsQueen, DiamondsEight),
			NewCardSet(HeartsJack, ClubsAce, ClubsTen, ClubsSeven, DiamondsAce, DiamondsSeven, DiamondsNine, SpadesAce, SpadesKing, SpadesQueen),
			NewCardSet(ClubsJack, SpadesJack, ClubsQueen, ClubsNine, HeartsKing, HeartsQueen, HeartsNine, HeartsEight, SpadesNine, DiamondsKing),
		},
		skat:     NewCardSet(HeartsTen, SpadesEight),
		soloist:  P2,
		leader:   P1,
		variant:  Grand,
		expected: 63,
	},
}

func TestSolveFixtures(t *testing.T) {
	for _, fx := range solverFixtures {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			global, err := NewGlobalState(fx.hands, fx.skat, fx.soloist, fx.variant)
			if err != nil {
				t.Fatalf("NewGlobalState: %v", err)
			}
			solver := NewSolver(global)
			got, err := solver.Solve(context.Background(), fx.leader)
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if got != fx.expected {
				t.Errorf("Solve() = %d, want %d", got, fx.expected)
			}
		})
	}
}

func TestSolveMTDFMatchesFullWindow(t *testing.T) {
	for _, fx := range solverFixtures[:2] {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			global, err := NewGlobalState(fx.hands, fx.skat, fx.soloist, fx.variant)
			if err != nil {
				t.Fatalf("NewGlobalState: %v", err)
			}
			solver := NewSolver(global)
			got, err := solver.SolveMTDF(context.Background(), fx.leader, 60)
			if err != nil {
				t.Fatalf("SolveMTDF: %v", err)
			}
			if got != fx.expected {
				t.Errorf("SolveMTDF() = %d, want %d", got, fx.expected)
			}
		})
	}
}

func TestSolvePlainAgreesWithCachedSolver(t *testing.T) {
	for _, fx := range solverFixtures[:2] {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			global, err := NewGlobalState(fx.hands, fx.skat, fx.soloist, fx.variant)
			if err != nil {
				t.Fatalf("NewGlobalState: %v", err)
			}
			got := SolvePlain(global, fx.leader)
			if got != fx.expected {
				t.Errorf("SolvePlain() = %d, want %d", got, fx.expected)
			}
		})
	}
}

func TestSolveWithinBounds(t *testing.T) {
	for _, fx := range solverFixtures {
		global, err := NewGlobalState(fx.hands, fx.skat, fx.soloist, fx.variant)
		if err != nil {
			t.Fatalf("NewGlobalState: %v", err)
		}
		solver := NewSolver(global)
		got, err := solver.Solve(context.Background(), fx.leader)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		if got < 0 || got > 120 {
			t.Errorf("%s: Solve() = %d, want a value in [0, 120]", fx.name, got)
		}
	}
}

func TestSoloVsDefendersComplementarity(t *testing.T) {
	// For each full-deal fixture, the soloist's score (skat included) and
	// the defenders' remainder, 120 minus that score, split the deck. The
	// skat is credited to the soloist alone, so the score never falls below
	// the skat's points and the defenders never get more than the rest.
	for _, fx := range solverFixtures[2:] {
		global, err := NewGlobalState(fx.hands, fx.skat, fx.soloist, fx.variant)
		if err != nil {
			t.Fatalf("NewGlobalState: %v", err)
		}
		solver := NewSolver(global)
		soloistScore, err := solver.Solve(context.Background(), fx.leader)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		if skatPts := global.SkatPoints(); soloistScore < skatPts || soloistScore > 120 {
			t.Fatalf("%s: score %d out of [%d, 120]", fx.name, soloistScore, skatPts)
		}
	}
}

func TestPrincipalLineMatchesScoreAndIsPlayable(t *testing.T) {
	fx := solverFixtures[0]
	global, err := NewGlobalState(fx.hands, fx.skat, fx.soloist, fx.variant)
	if err != nil {
		t.Fatalf("NewGlobalState: %v", err)
	}
	solver := NewSolver(global)
	line, score, err := solver.PrincipalLine(context.Background(), fx.leader)
	if err != nil {
		t.Fatalf("PrincipalLine: %v", err)
	}
	if score != fx.expected {
		t.Errorf("score = %d, want %d", score, fx.expected)
	}
	wantCards := fx.hands[0].Len() + fx.hands[1].Len() + fx.hands[2].Len()
	if len(line) != wantCards {
		t.Fatalf("len(line) = %d, want %d (one card per player per trick)", len(line), wantCards)
	}
	seen := NewCardSet(line...)
	all := fx.hands[0] | fx.hands[1] | fx.hands[2]
	if seen != all {
		t.Errorf("principal line does not play exactly the dealt cards")
	}
}

func TestContextCancellationIsObserved(t *testing.T) {
	fx := solverFixtures[0]
	global, err := NewGlobalState(fx.hands, fx.skat, fx.soloist, fx.variant)
	if err != nil {
		t.Fatalf("NewGlobalState: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	solver := NewSolver(global)
	if _, err := solver.Solve(ctx, fx.leader); err == nil {
		t.Errorf("expected an error from an already-canceled context")
	}
}
