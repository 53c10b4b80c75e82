package query

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/mosp"
	"github.com/mixgraph/mixgraph/pareto"
)

// Match pairs a node index with the recipe reconstructed from one of
// its Pareto labels.
type Match struct {
	Node   uint32
	Recipe Recipe
}

type found struct {
	node     uint32
	labelIdx int
	label    mosp.Label
}

// InexactMatch scans every node whose decoded effect set is a superset
// of target and tracks the minimum-cost and minimum-length label seen
// across the whole scan. Either return value is nil if no node
// qualifies. Ties are broken by earliest node index, then earliest
// label position within that node — the same result a single-threaded
// ascending scan would produce, regardless of how work is sharded.
func InexactMatch(enc *combinatorial.Encoder, permanent [][]mosp.Label, target effect.Set) (bestCost, bestLength *Match, err error) {
	m := uint32(len(permanent))
	shards := shardRanges(m)

	results := make([]struct{ cost, length *found }, len(shards))

	g, _ := errgroup.WithContext(context.Background())
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	for i, shard := range shards {
		i, shard := i, shard
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			var cost, length *found
			for idx := shard.start; idx < shard.end; idx++ {
				effects := effect.FromBits(enc.Decode(idx))
				if !effects.ContainsAll(target) {
					continue
				}
				costAt, lengthAt, ok := nodeExtremes(permanent[idx])
				if !ok {
					continue
				}
				costCand := found{node: idx, labelIdx: costAt.labelIdx, label: costAt.label}
				if cost == nil || betterCost(costCand, *cost) {
					c := costCand
					cost = &c
				}
				lengthCand := found{node: idx, labelIdx: lengthAt.labelIdx, label: lengthAt.label}
				if length == nil || betterLength(lengthCand, *length) {
					c := lengthCand
					length = &c
				}
			}
			results[i].cost = cost
			results[i].length = length
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var cost, length *found
	for _, r := range results {
		if r.cost != nil && (cost == nil || betterCost(*r.cost, *cost)) {
			cost = r.cost
		}
		if r.length != nil && (length == nil || betterLength(*r.length, *length)) {
			length = r.length
		}
	}

	if cost != nil {
		packed, err := mosp.PathTo(permanent, cost.label)
		if err != nil {
			return nil, nil, err
		}
		bestCost = &Match{Node: cost.node, Recipe: Recipe{Packed: packed, Length: cost.label.Length, Cost: cost.label.Cost}}
	}
	if length != nil {
		packed, err := mosp.PathTo(permanent, length.label)
		if err != nil {
			return nil, nil, err
		}
		bestLength = &Match{Node: length.node, Recipe: Recipe{Packed: packed, Length: length.label.Length, Cost: length.label.Cost}}
	}
	return bestCost, bestLength, nil
}

// nodeExtremes picks the minimum-cost and minimum-length label among a
// node's Pareto labels via a pareto.Front, rather than comparing every
// label against two running bests by hand. Ties keep the earliest label
// position, matching Front's "first encountered wins" scan order.
func nodeExtremes(labels []mosp.Label) (cost, length found, ok bool) {
	front := pareto.New(
		func(f found) uint16 { return f.label.Cost },
		func(f found) uint8 { return f.label.Length },
	)
	for li, l := range labels {
		front.Add(found{labelIdx: li, label: l})
	}
	if front.IsEmpty() {
		return found{}, found{}, false
	}

	costItem, _ := front.MinObjective1()
	lengthItem, _ := front.MinObjective2()
	return costItem.Data, lengthItem.Data, true
}

// betterCost reports whether a should replace b as the running
// minimum-cost candidate.
func betterCost(a, b found) bool {
	if a.label.Cost != b.label.Cost {
		return a.label.Cost < b.label.Cost
	}
	return earlier(a, b)
}

// betterLength reports whether a should replace b as the running
// minimum-length candidate.
func betterLength(a, b found) bool {
	if a.label.Length != b.label.Length {
		return a.label.Length < b.label.Length
	}
	return earlier(a, b)
}

func earlier(a, b found) bool {
	if a.node != b.node {
		return a.node < b.node
	}
	return a.labelIdx < b.labelIdx
}

type nodeRange struct {
	start, end uint32
}

// shardRanges partitions [0, m) into contiguous, roughly equal shards,
// one per available CPU.
func shardRanges(m uint32) []nodeRange {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if uint32(workers) > m && m > 0 {
		workers = int(m)
	}
	if workers == 0 {
		return nil
	}

	chunk := m / uint32(workers)
	remainder := m % uint32(workers)

	shards := make([]nodeRange, 0, workers)
	var cursor uint32
	for i := 0; i < workers; i++ {
		size := chunk
		if uint32(i) < remainder {
			size++
		}
		shards = append(shards, nodeRange{start: cursor, end: cursor + size})
		cursor += size
	}
	return shards
}
