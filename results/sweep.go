package results

import (
	"sync"

	"github.com/Sayama3/L-System/grammar"
	"github.com/Sayama3/L-System/turtle"
)

// SweepPoint records the outcome of one seeded generation run.
type SweepPoint struct {
	Seed   int64  `json:"seed"`
	Nodes  int    `json:"nodes"`
	Depth  int    `json:"depth"`
	Leaves int    `json:"leaves"`
	Error  string `json:"error,omitempty"`
}

// Sweep aggregates generation runs of the same grammar across seeds.
type Sweep struct {
	Derivation Derivation   `json:"derivation"`
	Points     []SweepPoint `json:"points"`
	MinNodes   int          `json:"minNodes"`
	MaxNodes   int          `json:"maxNodes"`
	MeanNodes  float64      `json:"meanNodes"`
}

// SweepSeeds rewrites the grammar once and interprets it under each
// seed. Runs share no mutable state (each owns its cursor stack, rng,
// and output tree), so they execute in parallel.
func SweepSeeds(p grammar.Params, opts *turtle.Options, seeds []int64) (*Sweep, error) {
	symbols, err := grammar.Rewrite(p)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, len(seeds))
	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Add(1)
		go func(i int, seed int64) {
			defer wg.Done()
			pt := SweepPoint{Seed: seed}
			tr, _, err := turtle.Interpret(symbols, p, nil, turtle.NewSource(seed), opts)
			if err != nil {
				pt.Error = err.Error()
			} else {
				pt.Nodes = tr.Len()
				pt.Depth = tr.Depth()
				pt.Leaves = tr.Leaves()
			}
			points[i] = pt
		}(i, seed)
	}
	wg.Wait()

	sweep := &Sweep{Points: points}
	preview := symbols
	if len(preview) > PreviewLength {
		preview = preview[:PreviewLength] + "..."
	}
	sweep.Derivation = Derivation{Length: len(symbols), Preview: preview}

	total, ok := 0, 0
	for _, pt := range points {
		if pt.Error != "" {
			continue
		}
		if ok == 0 || pt.Nodes < sweep.MinNodes {
			sweep.MinNodes = pt.Nodes
		}
		if pt.Nodes > sweep.MaxNodes {
			sweep.MaxNodes = pt.Nodes
		}
		total += pt.Nodes
		ok++
	}
	if ok > 0 {
		sweep.MeanNodes = float64(total) / float64(ok)
	}
	return sweep, nil
}
