/* ==================================================================================== *\
     fragment.go

     Fragment: a surviving piece of a Zone's base box, with a non-owning
     back-reference to its parent. Fragment-subtraction (split_by_overlap)
     is the core of overlap removal (spec §4.E).
\* ==================================================================================== */

package zone

import (
	"fmt"

	"github.com/Emeline-1/zonefield/box"
	"github.com/Emeline-1/zonefield/pos"
)

// Fragment is a disjoint piece of a Zone's base box. Its Parent is the
// lookup result for any point inside Box; fragments never contain other
// fragments and are disjoint across every zone after overlap removal.
type Fragment struct {
	Box       box.Box
	Parent    *Zone
	AxisOrder []int
}

func (f *Fragment) String() string {
	return fmt.Sprintf("Fragment(parent=%q, box=%v)", f.Parent.Name, f.Box)
}

// SplitByOverlap replaces f with disjoint residual fragments covering
// f.Box \ overlap, processed axis by axis in f.AxisOrder. Residuals cut on
// an earlier axis are split again on every later axis, so there are up to
// 3^N - 1 of them (not 2N); Defragment merges them back. overlap must
// intersect f.Box (callers check this first). A fragment totally eclipsed
// by overlap yields an empty slice.
func (f *Fragment) SplitByOverlap(overlap box.Box) []*Fragment {
	center := box.New(f.Box.Origin, f.Box.Size)
	var result []box.Box

	otherMin := overlap.Origin
	otherMax := overlap.ExclusiveMax()

	for _, axis := range f.AxisOrder {
		workZones := result
		result = nil

		for _, w := range workZones {
			lower, mid := w.SplitAxis(otherMin.At(axis), axis)
			mid, upper := mid.SplitAxis(otherMax.At(axis), axis)

			if !lower.Empty() {
				result = append(result, lower)
			}
			if !mid.Empty() {
				result = append(result, mid)
			}
			if !upper.Empty() {
				result = append(result, upper)
			}
		}

		lower, mid := center.SplitAxis(otherMin.At(axis), axis)
		mid, upper := mid.SplitAxis(otherMax.At(axis), axis)
		center = mid

		if !lower.Empty() {
			result = append(result, lower)
		}
		if !upper.Empty() {
			result = append(result, upper)
		}
	}
	// center now equals f.Box ∩ overlap and is discarded.

	fragments := make([]*Fragment, 0, len(result))
	for _, b := range result {
		fragments = append(fragments, &Fragment{Box: b, Parent: f.Parent, AxisOrder: f.AxisOrder})
	}
	return fragments
}

// MinCorner/ExclusiveMaxCorner are the pivots best_split (searchtree) candidates
// range over (spec §4.G); kept here since they're pure Box accessors.
func (f *Fragment) MinCorner() pos.Position {
	return f.Box.Origin
}

func (f *Fragment) ExclusiveMaxCorner() pos.Position {
	return f.Box.ExclusiveMax()
}
