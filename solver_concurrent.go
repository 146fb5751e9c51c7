package skat

import (
	"context"
	"sync"
)

// ConcurrentSolver is an experimental lazy-SMP style search: several
// goroutines search the same deal concurrently against one shared
// transposition table, each starting from a slightly different move-order
// perturbation so they explore different parts of the tree first and feed
// each other's cache entries. It is not on [Solver]'s default path — Solve
// and SolveMTDF are single-threaded and sufficient for any one deal — this
// exists for callers who want to spend idle cores shortening wall-clock time
// on a single hard position.
type ConcurrentSolver struct {
	global  *GlobalState
	tt      *TranspositionTable
	mu      sync.Mutex
	workers int
}

// NewConcurrentSolver returns a ConcurrentSolver with the given number of
// worker goroutines (clamped to at least 1) sharing one transposition table.
func NewConcurrentSolver(global *GlobalState, workers int, opts ...SolverOption) *ConcurrentSolver {
	if workers < 1 {
		workers = 1
	}
	cfg := solverConfig{tableBits: defaultTableBits}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ConcurrentSolver{
		global:  global,
		tt:      NewTranspositionTable(cfg.tableBits),
		workers: workers,
	}
}

// Solve runs the configured number of workers against leader's opening move
// and returns the soloist's guaranteed card points. All workers compute the
// same exact value; running more than one is purely a wall-clock bet, not a
// way to get a different answer.
func (cs *ConcurrentSolver) Solve(ctx context.Context, leader Player) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	root := NewRootState(cs.global, leader)
	max := 120 - cs.global.SkatPoints()

	results := make(chan int, cs.workers)
	var wg sync.WaitGroup
	for i := 0; i < cs.workers; i++ {
		wg.Add(1)
		go func(skew int) {
			defer wg.Done()
			results <- cs.search(root, 0, max, skew)
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	value, ok := <-results
	if !ok {
		return 0, ctx.Err()
	}
	for range results {
		// Drain the remaining workers; every one converges to the same
		// value, so only the first result is needed.
	}
	return value + cs.global.SkatPoints(), nil
}

// search is [Solver.search] with its transposition-table access serialized
// behind a mutex and its successor order perturbed by skew, so that workers
// with different skews probe the tree in different orders.
func (cs *ConcurrentSolver) search(s LocalState, alpha, beta, skew int) int {
	if s.IsTerminal() {
		return 0
	}

	boundary := s.IsTrickBoundary()
	origAlpha, origBeta := alpha, beta
	var key uint32
	if boundary {
		key = s.hashKey(cs.global)
		cs.mu.Lock()
		v, _, bound, ok := cs.tt.Get(key)
		cs.mu.Unlock()
		if ok {
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

	maximizing := s.ToMove == cs.global.Soloist()
	best := -1
	if !maximizing {
		best = maxPoints + 1
	}

	moves := Successors(cs.global, s)
	moves = skewMoves(moves, skew)

	for _, m := range moves {
		t := 0
		if m.ClosesTrick && m.TrickWinner == cs.global.Soloist() {
			t = m.TrickPoints
		}
		value := t + cs.search(m.Next, alpha-t, beta-t, skew)

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
		cs.mu.Lock()
		cs.tt.Put(key, best, s.Remaining.Len(), bound)
		cs.mu.Unlock()
	}
	return best
}

// skewMoves rotates the move order by skew positions. Worker 0 always uses
// the default (strongest-first) order; the rest diversify so that not every
// goroutine is racing down the identical principal variation.
func skewMoves(moves []Move, skew int) []Move {
	n := len(moves)
	if n < 2 || skew%n == 0 {
		return moves
	}
	shift := skew % n
	out := make([]Move, n)
	copy(out, moves[shift:])
	copy(out[n-shift:], moves[:shift])
	return out
}
