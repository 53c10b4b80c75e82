package query

import (
	"context"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mixgraph/mixgraph/mosp"
	"github.com/mixgraph/mixgraph/pareto"
)

// NoMaxPrice disables ProfitRank's sell-price cap.
const NoMaxPrice = math.MaxFloat64

// NoMixinCap disables ProfitRank's recipe-length cap.
const NoMixinCap = math.MaxUint8

// ProfitEntry is one ranked result from ProfitRank.
type ProfitEntry struct {
	Node      uint32
	Recipe    Recipe
	SellPrice float64
	Profit    float64
}

// ProfitRank selects, for each node, the minimum-cost label whose
// length does not exceed maxMixins, computes its sell price and profit
// against basePrice, and returns the top k entries by descending
// profit. priceMultipliers holds one already-dequantized multiplier per
// node (see artifact.DequantizePrice). Use NoMaxPrice/NoMixinCap to
// disable either cap.
func ProfitRank(permanent [][]mosp.Label, priceMultipliers []float64, basePrice, markup, maxPrice float64, maxMixins uint8, k int) ([]ProfitEntry, error) {
	m := uint32(len(permanent))
	shards := shardRanges(m)

	shardTops := make([][]ProfitEntry, len(shards))

	g, _ := errgroup.WithContext(context.Background())
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	for i, shard := range shards {
		i, shard := i, shard
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			var local []ProfitEntry
			for idx := shard.start; idx < shard.end; idx++ {
				entry, ok, err := bestEntryAt(permanent, priceMultipliers, idx, basePrice, markup, maxPrice, maxMixins)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				local = insertTopK(local, entry, k)
			}
			shardTops[i] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []ProfitEntry
	for _, top := range shardTops {
		for _, entry := range top {
			merged = insertTopK(merged, entry, k)
		}
	}
	return merged, nil
}

// bestEntryAt picks node idx's minimum-cost label with length <=
// maxMixins (if any), via a pareto.Front over the length-filtered
// labels, and turns it into a priced ProfitEntry.
func bestEntryAt(permanent [][]mosp.Label, priceMultipliers []float64, idx uint32, basePrice, markup, maxPrice float64, maxMixins uint8) (ProfitEntry, bool, error) {
	front := pareto.New(
		func(l mosp.Label) uint8 { return l.Length },
		func(l mosp.Label) uint16 { return l.Cost },
	)
	for _, l := range permanent[idx] {
		if l.Length > maxMixins {
			continue
		}
		front.Add(l)
	}
	best, ok := front.MinObjective2()
	if !ok {
		return ProfitEntry{}, false, nil
	}

	packed, err := mosp.PathTo(permanent, best.Data)
	if err != nil {
		return ProfitEntry{}, false, err
	}

	sellPrice := math.Min(maxPrice, math.Round((1+markup)*basePrice*priceMultipliers[idx]))
	profit := sellPrice - float64(best.Data.Cost)

	return ProfitEntry{
		Node:      idx,
		Recipe:    Recipe{Packed: packed, Length: best.Data.Length, Cost: best.Data.Cost},
		SellPrice: sellPrice,
		Profit:    profit,
	}, true, nil
}

// insertTopK inserts entry into a slice kept sorted by descending
// profit (ties broken by lower cost, then lower node index), trimming
// to at most k elements. Profit is a single derived scalar rather than a
// second objective to minimize alongside cost, so ranking by it is an
// ordinary top-k insertion rather than a pareto.Front selection.
func insertTopK(top []ProfitEntry, entry ProfitEntry, k int) []ProfitEntry {
	pos := sort.Search(len(top), func(i int) bool {
		return rankLess(entry, top[i])
	})
	top = append(top, ProfitEntry{})
	copy(top[pos+1:], top[pos:])
	top[pos] = entry
	if len(top) > k {
		top = top[:k]
	}
	return top
}

// rankLess reports whether a ranks strictly ahead of b: higher profit
// first, then lower cost, then lower node index.
func rankLess(a, b ProfitEntry) bool {
	if a.Profit != b.Profit {
		return a.Profit > b.Profit
	}
	if a.Recipe.Cost != b.Recipe.Cost {
		return a.Recipe.Cost < b.Recipe.Cost
	}
	return a.Node < b.Node
}
