/* ==================================================================================== *\
     overlap.go

     OverlapResolver: priority-ordered pairwise subtraction across all
     zones (spec §4.E). Lower original_id dominates; this is the spec's
     resolution of the source's undocumented priority convention (§9).
\* ==================================================================================== */

package zone

// EclipseWarning records that a lower-priority zone's fragment list became
// empty after being cut against a higher-priority zone's base box (spec
// §7.2: total eclipse, not fatal).
type EclipseWarning struct {
	HigherPriority *Zone
	Eclipsed       *Zone
}

// RemoveOverlaps mutates every zone's Fragments in place so that each
// zone's surviving fragments equal base_box minus the base boxes of every
// higher-priority (lower original_id) zone. zones must be in priority
// order (index i implies original_id i). Returns any total-eclipse
// warnings encountered, in the order they occurred.
func RemoveOverlaps(zones []*Zone) []EclipseWarning {
	var warnings []EclipseWarning

	for i, outer := range zones {
		for _, inner := range zones[i+1:] {
			overlap, ok := outer.BaseBox.Intersect(inner.BaseBox)
			if !ok {
				continue
			}

			var newFragments []*Fragment
			for _, fragment := range inner.Fragments {
				fragOverlap, intersects := fragment.Box.Intersect(overlap)
				if !intersects {
					newFragments = append(newFragments, fragment)
					continue
				}
				newFragments = append(newFragments, fragment.SplitByOverlap(fragOverlap)...)
			}
			inner.Fragments = newFragments

			if len(inner.Fragments) == 0 {
				warnings = append(warnings, EclipseWarning{HigherPriority: outer, Eclipsed: inner})
			}
		}
	}

	return warnings
}
