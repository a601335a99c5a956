package depot

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/Eashwar-S/rpp-scenarios/coverage"
)

// Select greedily picks vertices from nodes until their union of coverage
// sets contains every vertex in nodes, or no remaining candidate covers
// anything new. Returns the selected ids sorted ascending.
//
// Guarantees:
//   - A vertex is never selected twice.
//   - The covered set grows strictly at every step (gain must be positive).
//   - Among candidates with equal gain, the lowest id wins: candidates are
//     scanned in ascending id order with a strict > comparison.
//
// Vertices absent from cov contribute an empty coverage set; if the graph
// is disconnected or the radius too small, some vertices may stay uncovered
// forever. That terminates the loop early and is not an error here — the
// caller decides whether a partial cover is acceptable.
func Select(cov coverage.Map, nodes []int) []int {
	order := make([]int, len(nodes))
	copy(order, nodes)
	sort.Ints(order)

	total := len(order)
	selected := make(map[int]struct{})
	covered := make(coverage.Set, total)

	for len(covered) < total {
		bestNode, bestGain := 0, 0
		for _, cand := range order {
			if _, taken := selected[cand]; taken {
				continue
			}
			gain := 0
			for id := range cov[cand] {
				if !covered.Contains(id) {
					gain++
				}
			}
			if gain > bestGain {
				bestGain, bestNode = gain, cand
			}
		}
		if bestGain == 0 {
			// Remaining vertices are unreachable within the radius.
			log.Debugf("depot: stopping with %d/%d vertices covered", len(covered), total)
			break
		}

		selected[bestNode] = struct{}{}
		for id := range cov[bestNode] {
			covered[id] = struct{}{}
		}
		log.Debugf("depot: selected %d (gain %d, covered %d/%d)", bestNode, bestGain, len(covered), total)
	}

	picks := make([]int, 0, len(selected))
	for id := range selected {
		picks = append(picks, id)
	}
	sort.Ints(picks)

	return picks
}
