/* ==================================================================================== *\
     defrag.go

     Defragmenter: per-zone minimum-cover merge search (spec §4.F).
     Exponential in the zone's fragment count k; accepted because k stays
     small (tens at most) for any single original zone after overlap
     removal.
\* ==================================================================================== */

package zone

import (
	"math/bits"

	"github.com/Emeline-1/zonefield/box"
)

// maxDefragFragments caps the exponential combo search; beyond this,
// Defragment falls back to greedyDefragment (repeated greedy pairwise
// merge passes until nothing merges) instead of the full optimal search
// (spec §9: "add an optional cap that falls back to a greedy merge pass").
const maxDefragFragments = 24

// Defragment finds a minimum-size cover of z's current fragments using
// only pairwise-mergeable steps, and rewrites z.Fragments to it. The union
// of fragments is unchanged; the count is non-increasing.
func Defragment(z *Zone) {
	k := len(z.Fragments)
	if k < 2 {
		return
	}
	if k > maxDefragFragments {
		greedyDefragment(z)
		return
	}

	boxes := make([]box.Box, k)
	for i, f := range z.Fragments {
		boxes[i] = f.Box
	}

	levels := buildMergeCombinations(boxes)

	allIDs := uint64(0)
	for i := 0; i < k; i++ {
		allIDs |= 1 << uint(i)
	}

	cover := defragOptimalMerge(levels, allIDs, nil)
	if cover == nil {
		// Shouldn't happen: the level-1 singletons always partition allIDs.
		cover = boxes
	}

	axisOrder := z.Fragments[0].AxisOrder
	newFragments := make([]*Fragment, 0, len(cover))
	for _, b := range cover {
		newFragments = append(newFragments, &Fragment{Box: b, Parent: z, AxisOrder: axisOrder})
	}
	z.Fragments = newFragments
}

// buildMergeCombinations computes, for each level 1..k, every combo (as an
// id-bitset) of that many original fragments whose union is itself a
// single axis-aligned box.
func buildMergeCombinations(boxes []box.Box) []map[uint64]box.Box {
	k := len(boxes)
	levels := make([]map[uint64]box.Box, k+1)
	levels[1] = make(map[uint64]box.Box, k)
	for i, b := range boxes {
		levels[1][1<<uint(i)] = b
	}

	for level := 2; level <= k; level++ {
		levels[level] = map[uint64]box.Box{}
		for lower := 1; lower <= level/2; lower++ {
			upper := level - lower
			for upperIDs, upperBox := range levels[upper] {
				for lowerIDs, lowerBox := range levels[lower] {
					if upperIDs == lowerIDs {
						// Not actually a merge (same combo); skip.
						continue
					}
					if upperIDs&lowerIDs != 0 {
						// Overlapping id sets; not a valid partition piece.
						continue
					}
					mergedIDs := upperIDs | lowerIDs
					if bits.OnesCount64(mergedIDs) != level {
						continue
					}
					if _, exists := levels[level][mergedIDs]; exists {
						continue
					}
					merged, ok := upperBox.Merge(lowerBox)
					if !ok {
						continue
					}
					levels[level][mergedIDs] = merged
				}
			}
		}
	}
	return levels
}

// defragOptimalMerge performs the depth-first search for the smallest list
// of combos whose id-sets partition remaining, trying the largest-level
// combos first so the first complete partition found is minimal-cardinality.
func defragOptimalMerge(levels []map[uint64]box.Box, remaining uint64, resultSoFar []box.Box) []box.Box {
	if remaining == 0 {
		return append([]box.Box{}, resultSoFar...)
	}

	for level := bits.OnesCount64(remaining); level >= 1; level-- {
		if level >= len(levels) {
			continue
		}
		for ids, b := range levels[level] {
			if ids&remaining != ids {
				// ids isn't a subset of what's left to cover.
				continue
			}
			newRemaining := remaining &^ ids
			if newRemaining == 0 {
				return append(append([]box.Box{}, resultSoFar...), b)
			}
			if best := defragOptimalMerge(levels, newRemaining, append(resultSoFar, b)); best != nil {
				return best
			}
		}
	}
	return nil
}

// greedyDefragment merges adjacent fragment pairs repeatedly until no pair
// merges, without searching for a globally minimal cover. Used above
// maxDefragFragments, where the optimal search would be too slow.
func greedyDefragment(z *Zone) {
	current := make([]box.Box, len(z.Fragments))
	for i, f := range z.Fragments {
		current[i] = f.Box
	}

	for {
		merged := false
		next := make([]box.Box, 0, len(current))
		used := make([]bool, len(current))

		for i := range current {
			if used[i] {
				continue
			}
			combined := current[i]
			for j := i + 1; j < len(current); j++ {
				if used[j] {
					continue
				}
				if m, ok := combined.Merge(current[j]); ok {
					combined = m
					used[j] = true
					merged = true
				}
			}
			next = append(next, combined)
		}

		current = next
		if !merged {
			break
		}
	}

	axisOrder := z.Fragments[0].AxisOrder
	newFragments := make([]*Fragment, 0, len(current))
	for _, b := range current {
		newFragments = append(newFragments, &Fragment{Box: b, Parent: z, AxisOrder: axisOrder})
	}
	z.Fragments = newFragments
}
