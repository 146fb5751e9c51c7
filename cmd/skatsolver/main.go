// Command skatsolver runs a file of double-dummy Skat fixtures and reports
// each one's solved score, comparing it against the fixture's expected
// value.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/text/language"

	skat "github.com/johan-stph/skat-solver"
)

func main() {
	fixturePath := flag.String("fixtures", "", "path to a fixture CSV file (required)")
	tableBits := flag.Int("table-bits", 20, "base-2 log of the transposition table size")
	useMTDF := flag.Bool("mtdf", false, "solve via the null-window (MTD-f) driver instead of a full window")
	cpuProfile := flag.String("cpuprofile", "", "write cpu profile to file")
	timeout := flag.Duration("timeout", 0, "deadline per fixture, checked before the search starts and between MTD-f iterations; a running search is not interrupted (0 disables the deadline)")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "skatsolver: -fixtures is required")
		os.Exit(2)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skatsolver: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "skatsolver: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(*fixturePath, *tableBits, *useMTDF, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "skatsolver: %v\n", err)
		os.Exit(1)
	}
}

func run(fixturePath string, tableBits int, useMTDF bool, timeout time.Duration) error {
	f, err := os.Open(fixturePath)
	if err != nil {
		return err
	}
	defer f.Close()

	fixtures, err := skat.ReadFixtures(f)
	if err != nil {
		return err
	}

	printer := skat.NewReportPrinter(language.English)
	mismatches := 0
	for _, fx := range fixtures {
		ctx := context.Background()
		var cancel context.CancelFunc
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, timeout)
		}

		global, err := skat.NewGlobalState(fx.Hands, fx.Skat, fx.Soloist, fx.Variant)
		if err != nil {
			if cancel != nil {
				cancel()
			}
			return fmt.Errorf("%s: %w", fx.Name, err)
		}

		solver := skat.NewSolver(global, skat.WithTableBits(tableBits))
		var score int
		if useMTDF {
			score, err = solver.SolveMTDF(ctx, fx.Leader, fx.Expected)
		} else {
			score, err = solver.Solve(ctx, fx.Leader)
		}
		if cancel != nil {
			cancel()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", fx.Name, err)
		}

		report := skat.Report{
			Soloist:    fx.Soloist,
			Variant:    fx.Variant,
			Score:      score,
			SkatPoints: global.SkatPoints(),
			NodesSeen:  solver.NodesSeen(),
		}
		if err := printer.Fprint(os.Stdout, report); err != nil {
			return err
		}
		if score != fx.Expected {
			mismatches++
			fmt.Printf("  MISMATCH %s: got %d, want %d\n", fx.Name, score, fx.Expected)
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d fixtures mismatched", mismatches, len(fixtures))
	}
	return nil
}
