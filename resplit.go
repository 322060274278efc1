package chandas

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SearchOptions bounds a resegmentation search.
type SearchOptions struct {
	// Radius is the largest distance a pāda break may move. Values below
	// 1 are raised to 1.
	Radius int
	// PinMiddle keeps the middle break (between pādas b and c) in place.
	PinMiddle bool
	// Workers is the number of concurrent trials. 1 runs the trials
	// strictly in order; 0 or less uses GOMAXPROCS.
	Workers int
}

// Searcher tries alternative pāda breaks around a starting segmentation.
type Searcher struct {
	Classifier *Classifier
	Scanner    Scanner
	Logger     *slog.Logger
}

// WiggleOffsets returns start, start+1, start-1, start+2, start-2, ... up
// to start±radius.
func WiggleOffsets(start, radius int) []int {
	out := []int{start}
	for d := 1; d <= radius; d++ {
		out = append(out, start+d, start-d)
	}
	return out
}

// Resplit joins syllables into four pādas broken after ab, bc and cd.
// The breaks must satisfy 0 < ab < bc < cd < len(syllables).
func Resplit(syllables []string, ab, bc, cd int) string {
	quarters := [][]string{syllables[:ab], syllables[ab:bc], syllables[bc:cd], syllables[cd:]}
	lines := make([]string, len(quarters))
	for i, q := range quarters {
		lines[i] = strings.Join(q, SyllableSeparator)
	}
	return strings.Join(lines, "\n")
}

type split struct{ ab, bc, cd int }

// splits enumerates ab × bc × cd in nesting order, skipping breaks that
// would leave a pāda empty.
func splits(n int, breaks [3]int, opts SearchOptions) []split {
	radius := max(opts.Radius, 1)
	middle := WiggleOffsets(breaks[1], radius)
	if opts.PinMiddle {
		middle = []int{breaks[1]}
	}
	var out []split
	for _, ab := range WiggleOffsets(breaks[0], radius) {
		for _, bc := range middle {
			for _, cd := range WiggleOffsets(breaks[2], radius) {
				if 0 < ab && ab < bc && bc < cd && cd < n {
					out = append(out, split{ab, bc, cd})
				}
			}
		}
	}
	return out
}

// Search classifies a copy of base for every valid split around breaks
// and returns the classified copies in iteration order. Trials are
// launched in iteration order; once a trial reaches MaxScore no further
// trial is launched, but trials already running complete. Every trial
// before the first perfect one has therefore been classified, and Best
// over the result picks the same verse a sequential search would.
func (s *Searcher) Search(ctx context.Context, base Verse, syllables []string, breaks [3]int, opts SearchOptions) ([]Verse, error) {
	candidates := splits(len(syllables), breaks, opts)
	trials := make([]Verse, len(candidates))
	done := make([]bool, len(candidates))

	var perfect atomic.Bool
	trial := func(i int) {
		c := candidates[i]
		v := base.Clone()
		v.resegment(Resplit(syllables, c.ab, c.bc, c.cd), s.Scanner)
		if s.Classifier.Classify(&v) >= MaxScore {
			perfect.Store(true)
		}
		trials[i] = v
		done[i] = true
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	launched := 0
	if workers == 1 {
		for i := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if perfect.Load() {
				break
			}
			trial(i)
			launched++
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(workers, max(len(candidates), 1)))
		for i := range candidates {
			if perfect.Load() || gctx.Err() != nil {
				break
			}
			launched++
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				trial(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	var out []Verse
	for i, v := range trials {
		if done[i] && v.IdentificationScore > 0 && v.MeterLabel != "" {
			out = append(out, v)
		}
	}
	if s.Logger != nil {
		s.Logger.Debug("resegmentation search",
			slog.Int("candidates", len(candidates)),
			slog.Int("launched", launched),
			slog.Int("classified", len(out)),
			slog.Bool("perfect", perfect.Load()),
		)
	}
	return out, nil
}

// Best returns the highest-scoring verse; ties go to the earliest one.
func Best(results []Verse) (Verse, bool) {
	if len(results) == 0 {
		return Verse{}, false
	}
	best := 0
	for i, v := range results {
		if v.IdentificationScore > results[best].IdentificationScore {
			best = i
		}
	}
	return results[best], true
}
