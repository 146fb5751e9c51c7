package skat

import "context"

// defaultTableBits sizes the default transposition table at 2^20 slots,
// 32 MiB on a 64-bit platform (32-byte entries) — large enough to help on a full 10-card hand without
// committing to the ~2^23 slots a production deployment might prefer.
const defaultTableBits = 20

// solverConfig holds the options a Solver is built with.
type solverConfig struct {
	tableBits int
}

// SolverOption configures a [Solver] at construction time.
type SolverOption func(*solverConfig)

// WithTableBits sets the base-2 log of the transposition table size.
func WithTableBits(bits int) SolverOption {
	return func(c *solverConfig) {
		c.tableBits = bits
	}
}

// Solver computes the soloist's guaranteed card points for a single deal.
// A Solver is not safe for concurrent use from multiple goroutines: each
// caller wanting concurrency should build its own Solver (or use
// [ConcurrentSolver] for a table shared by worker goroutines of a single
// search).
type Solver struct {
	global *GlobalState
	tt     *TranspositionTable
	nodes  int
}

// NodesSeen returns the number of search-tree nodes visited by the most
// recent call to Solve, SolveFrom, or SolveMTDF.
func (sv *Solver) NodesSeen() int {
	return sv.nodes
}

// NewSolver returns a Solver for the given deal.
func NewSolver(global *GlobalState, opts ...SolverOption) *Solver {
	cfg := solverConfig{tableBits: defaultTableBits}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{
		global: global,
		tt:     NewTranspositionTable(cfg.tableBits),
	}
}

// maxPlayPoints is the most the soloist can earn from card play alone,
// i.e. everything but the skat.
func (sv *Solver) maxPlayPoints() int {
	return 120 - sv.global.SkatPoints()
}

// Solve returns the soloist's guaranteed card points (0-120, skat included)
// when leader plays first to an empty trick.
func (sv *Solver) Solve(ctx context.Context, leader Player) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	sv.nodes = 0
	root := NewRootState(sv.global, leader)
	played := sv.search(root, 0, sv.maxPlayPoints())
	return played + sv.global.SkatPoints(), nil
}

// SolveFrom is [Solve] starting from an arbitrary (possibly mid-trick)
// [LocalState], used by tests exercising partial deals directly.
func (sv *Solver) SolveFrom(ctx context.Context, s LocalState) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	sv.nodes = 0
	played := sv.search(s, 0, sv.maxPlayPoints())
	return played + sv.global.SkatPoints(), nil
}

// search is the full-window alpha-beta search with transposition-table
// assistance. It returns the soloist's guaranteed card points earned from s
// onward (not including the skat). The result is exact when it lies strictly
// inside (alpha, beta); a result at or below alpha is only an upper bound and
// one at or above beta only a lower bound. The result is not clipped to
// [alpha, beta].
//
// The value threaded through recursion is always "soloist points from here
// on", never negated: the soloist's own moves maximize it, the two
// defenders' moves — playing as a single cooperating opponent — minimize
// it. A move that closes a trick shifts the window by the points it puts in
// play (t), crediting them only if the soloist wins the trick; child_value
// = t + search(child, alpha-t, beta-t) is the same recursive step whichever
// side is to move, which is what lets one routine serve both roles.
func (sv *Solver) search(s LocalState, alpha, beta int) int {
	sv.nodes++
	if s.IsTerminal() {
		return 0
	}

	boundary := s.IsTrickBoundary()
	origAlpha, origBeta := alpha, beta
	var key uint32
	if boundary {
		key = s.hashKey(sv.global)
		if v, _, bound, ok := sv.tt.Get(key); ok {
			switch bound {
			case Exact:
				return v
			case Lower:
				if v > alpha {
					alpha = v
				}
			case Upper:
				if v < beta {
					beta = v
				}
			}
			if alpha >= beta {
				return v
			}
		}
	}

	maximizing := s.ToMove == sv.global.Soloist()
	best := -1
	if !maximizing {
		best = maxPoints + 1
	}

	for _, m := range Successors(sv.global, s) {
		t := 0
		if m.ClosesTrick && m.TrickWinner == sv.global.Soloist() {
			t = m.TrickPoints
		}
		value := t + sv.search(m.Next, alpha-t, beta-t)

		if maximizing {
			if value > best {
				best = value
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if value < best {
				best = value
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			break
		}
	}

	if boundary {
		var bound Bound
		switch {
		case best <= origAlpha:
			bound = Upper
		case best >= origBeta:
			bound = Lower
		default:
			bound = Exact
		}
		sv.tt.Put(key, best, s.Remaining.Len(), bound)
	}
	return best
}

// maxPoints is the most points any single deal's card play can be worth.
const maxPoints = 120

// SolveMTDF computes the same value as [Solver.Solve] via a null-window
// (MTD-f) driver: repeated zero-width searches around a guess, each one
// narrowing the true value's bracket by at least one point, converging in
// generally fewer total nodes than one full-window search by reusing the
// transposition table across iterations. firstGuess seeds the first probe
// and may be any value in [0, 120]; a reasonable guess (e.g. a prior
// iterative-deepening result) shortens convergence but is not required for
// correctness.
func (sv *Solver) SolveMTDF(ctx context.Context, leader Player, firstGuess int) (int, error) {
	sv.nodes = 0
	root := NewRootState(sv.global, leader)
	max := sv.maxPlayPoints()

	guess := firstGuess - sv.global.SkatPoints()
	if guess < 0 {
		guess = 0
	}
	if guess > max {
		guess = max
	}

	lower, upper := 0, max
	for lower < upper {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		beta := guess
		if guess == lower {
			beta = guess + 1
		}
		value := sv.search(root, beta-1, beta)
		if value < beta {
			upper = value
		} else {
			lower = value
		}
		guess = value
	}
	return lower + sv.global.SkatPoints(), nil
}

// PrincipalLine returns one optimal continuation from leader's opening move
// — the cards soloist-optimal play actually produces, not just the score —
// alongside the final guaranteed score. When several continuations tie, the
// first one Successors offers is returned; the move-ordering heuristic
// breaks ties toward the line search would explore first anyway.
func (sv *Solver) PrincipalLine(ctx context.Context, leader Player) ([]Card, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	sv.nodes = 0
	root := NewRootState(sv.global, leader)
	max := sv.maxPlayPoints()
	played := sv.search(root, 0, max)
	line := sv.bestChild(root, played)
	return line, played + sv.global.SkatPoints(), nil
}

// bestChild reconstructs the continuation from s that earns exactly want
// additional soloist points, by re-querying each candidate successor with a
// full window (always exact, by alpha-beta's own correctness) until one
// matches.
func (sv *Solver) bestChild(s LocalState, want int) []Card {
	if s.IsTerminal() {
		return nil
	}
	max := sv.maxPlayPoints()
	for _, m := range Successors(sv.global, s) {
		t := 0
		if m.ClosesTrick && m.TrickWinner == sv.global.Soloist() {
			t = m.TrickPoints
		}
		if value := t + sv.search(m.Next, 0, max); value == want {
			return append([]Card{m.Card}, sv.bestChild(m.Next, want-t)...)
		}
	}
	return nil
}
