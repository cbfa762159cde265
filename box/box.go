/* ==================================================================================== *\
     box.go

     A half-open axis-aligned box: origin + size, size[i] >= 0.
     External formats use an inclusive max corner; everything from zone
     construction on uses this half-open representation (see spec §4.B, §9).
\* ==================================================================================== */

package box

import (
	"fmt"

	"github.com/Emeline-1/zonefield/pos"
)

// Box is the half-open point set { p : origin[i] <= p[i] < origin[i]+size[i] }.
type Box struct {
	Origin pos.Position
	Size   pos.Position
}

// New builds a Box from an origin and a size. Size components may be zero
// (an empty box) but the caller is expected to never pass negative sizes.
func New(origin, size pos.Position) Box {
	return Box{Origin: origin, Size: size}
}

// FromInclusiveCorners builds a Box from two inclusive corners, in either
// order; this is the external (JSON descriptor) representation translated
// to the internal half-open one (spec §6).
func FromInclusiveCorners(a, b pos.Position) Box {
	origin := a.MinCorner(b)
	inclusiveMax := a.MaxCorner(b)
	ones := make([]int, a.Len())
	for i := range ones {
		ones[i] = 1
	}
	size := inclusiveMax.Add(pos.FromSlice(ones)).Sub(origin)
	return Box{Origin: origin, Size: size}
}

// Empty reports whether this box has zero volume on any axis.
func (b Box) Empty() bool {
	if b.Size.Len() == 0 {
		return true
	}
	for i := 0; i < b.Size.Len(); i++ {
		if b.Size.At(i) <= 0 {
			return true
		}
	}
	return false
}

// Volume returns the product of the sizes; 0 for an empty box.
func (b Box) Volume() int {
	if b.Size.Len() == 0 {
		return 0
	}
	result := 1
	for i := 0; i < b.Size.Len(); i++ {
		result *= b.Size.At(i)
	}
	return result
}

// ExclusiveMax returns origin + size: the exclusive max corner, always
// defined (even for an empty box).
func (b Box) ExclusiveMax() pos.Position {
	return b.Origin.Add(b.Size)
}

// InclusiveMax returns origin + size - 1: the inclusive max corner, only
// meaningful for a non-empty box.
func (b Box) InclusiveMax() pos.Position {
	ones := make([]int, b.Size.Len())
	for i := range ones {
		ones[i] = 1
	}
	return b.ExclusiveMax().Sub(pos.FromSlice(ones))
}

// Contains reports whether p lies within this box, using half-open
// semantics: the exclusive max corner (origin + size) is NOT contained.
func (b Box) Contains(p pos.Position) bool {
	if b.Empty() {
		return false
	}
	for axis := 0; axis < b.Origin.Len(); axis++ {
		if p.At(axis) < b.Origin.At(axis) {
			return false
		}
		if p.At(axis) >= b.ExclusiveMax().At(axis) {
			return false
		}
	}
	return true
}

// Intersect returns the intersection of b and other, and whether it is
// non-empty.
func (b Box) Intersect(other Box) (Box, bool) {
	origin := b.Origin.MaxCorner(other.Origin)
	exMax := b.ExclusiveMax().MinCorner(other.ExclusiveMax())
	size := exMax.Sub(origin)
	result := Box{Origin: origin, Size: size}
	if result.Empty() {
		return Box{}, false
	}
	return result, true
}

// SplitAxis splits b along axis at the given pivot coordinate, returning
// (lower, upper). Either side may be empty; this is a partition of b:
// lower union upper == b, lower intersect upper == empty.
func (b Box) SplitAxis(pivot int, axis int) (lower, upper Box) {
	lowerSize := pivot - b.Origin.At(axis)
	if lowerSize < 0 {
		lowerSize = 0
	}
	if lowerSize > b.Size.At(axis) {
		lowerSize = b.Size.At(axis)
	}

	lowerSizeCoords := b.Size.Slice()
	lowerSizeCoords[axis] = lowerSize
	lower = Box{Origin: b.Origin, Size: pos.FromSlice(lowerSizeCoords)}

	upperOriginCoords := b.Origin.Slice()
	upperOriginCoords[axis] += lowerSize
	upperSizeCoords := b.Size.Slice()
	upperSizeCoords[axis] -= lowerSize
	upper = Box{Origin: pos.FromSlice(upperOriginCoords), Size: pos.FromSlice(upperSizeCoords)}

	return lower, upper
}

// Merge attempts to merge b and other into a single box spanning their
// union. Two boxes merge iff they agree on every axis but one, and on that
// axis they are edge-adjacent (or identical). Returns the merged box and
// true on success.
func (b Box) Merge(other Box) (Box, bool) {
	n := b.Origin.Len()
	if other.Origin.Len() != n {
		return Box{}, false
	}

	differentAxis := -1
	for axis := 0; axis < n; axis++ {
		if b.Origin.At(axis) == other.Origin.At(axis) && b.Size.At(axis) == other.Size.At(axis) {
			continue
		}
		if differentAxis != -1 {
			// A second differing axis; can't merge.
			return Box{}, false
		}
		differentAxis = axis
	}

	if differentAxis == -1 {
		// Identical boxes merge to themselves.
		return b, true
	}

	axis := differentAxis
	bEnd := b.Origin.At(axis) + b.Size.At(axis)
	oEnd := other.Origin.At(axis) + other.Size.At(axis)
	if bEnd != other.Origin.At(axis) && oEnd != b.Origin.At(axis) {
		// Not touching.
		return Box{}, false
	}

	minOrigin := b.Origin.At(axis)
	if other.Origin.At(axis) < minOrigin {
		minOrigin = other.Origin.At(axis)
	}
	maxEnd := bEnd
	if oEnd > maxEnd {
		maxEnd = oEnd
	}

	originCoords := b.Origin.Slice()
	originCoords[axis] = minOrigin
	sizeCoords := b.Size.Slice()
	sizeCoords[axis] = maxEnd - minOrigin

	return Box{Origin: pos.FromSlice(originCoords), Size: pos.FromSlice(sizeCoords)}, true
}

func (b Box) String() string {
	if b.Empty() {
		return fmt.Sprintf("Box(empty, origin=%v, size=%v)", b.Origin.Slice(), b.Size.Slice())
	}
	return fmt.Sprintf("Box(origin=%v, size=%v)", b.Origin.Slice(), b.Size.Slice())
}
