package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emeline-1/zonefield/box"
	"github.com/Emeline-1/zonefield/pos"
)

func TestFragmentDisjointAfterRemoveOverlaps(t *testing.T) {
	axisOrder := []int{0, 1}
	zones := []*Zone{
		mustZone(t, "A", "", []int{0, 0}, []int{9, 9}, 0, axisOrder),
		mustZone(t, "B", "", []int{5, 5}, []int{14, 14}, 1, axisOrder),
		mustZone(t, "C", "", []int{2, 8}, []int{12, 12}, 2, axisOrder),
	}
	RemoveOverlaps(zones)

	var all []*Fragment
	for _, z := range zones {
		all = append(all, z.Fragments...)
	}

	for i := range all {
		for j := i + 1; j < len(all); j++ {
			_, intersects := all[i].Box.Intersect(all[j].Box)
			assert.False(t, intersects, "fragment %d and %d from zones %q/%q intersect",
				i, j, all[i].Parent.Name, all[j].Parent.Name)
		}
	}
}

func TestHigherPriorityZoneNeverShadowed(t *testing.T) {
	axisOrder := []int{0, 1}
	a := mustZone(t, "A", "", []int{0, 0}, []int{5, 5}, 0, axisOrder)
	b := mustZone(t, "B", "", []int{2, 2}, []int{10, 10}, 1, axisOrder)
	RemoveOverlaps([]*Zone{a, b})

	for _, f := range b.Fragments {
		_, intersects := f.Box.Intersect(a.BaseBox)
		assert.False(t, intersects)
	}
}

func TestNonOverlappingZonesUnaffected(t *testing.T) {
	axisOrder := []int{0, 1}
	a := mustZone(t, "A", "", []int{0, 0}, []int{2, 2}, 0, axisOrder)
	b := mustZone(t, "B", "", []int{10, 10}, []int{12, 12}, 1, axisOrder)
	warnings := RemoveOverlaps([]*Zone{a, b})

	assert.Empty(t, warnings)
	require.Len(t, a.Fragments, 1)
	require.Len(t, b.Fragments, 1)
	assert.Equal(t, a.BaseBox, a.Fragments[0].Box)
	assert.Equal(t, b.BaseBox, b.Fragments[0].Box)
}

func TestSplitByOverlapIsDisjointResidualCover(t *testing.T) {
	axisOrder := []int{0, 1, 2}
	z := mustZone(t, "Z", "", []int{0, 0, 0}, []int{9, 9, 9}, 0, axisOrder)
	f := z.Fragments[0]

	overlap := box.New(pos.New(3, 3, 3), pos.New(4, 4, 4))
	residuals := f.SplitByOverlap(overlap)

	totalVolume := 0
	for i, r := range residuals {
		totalVolume += r.Box.Volume()
		for j := i + 1; j < len(residuals); j++ {
			_, intersects := r.Box.Intersect(residuals[j].Box)
			assert.False(t, intersects)
		}
		_, intersects := r.Box.Intersect(overlap)
		assert.False(t, intersects)
	}

	assert.Equal(t, f.Box.Volume()-overlap.Volume(), totalVolume)
}

func TestSplitByOverlapTotalEclipseYieldsNoResiduals(t *testing.T) {
	axisOrder := []int{0, 1}
	z := mustZone(t, "Z", "", []int{2, 2}, []int{4, 4}, 0, axisOrder)
	f := z.Fragments[0]

	overlap := box.New(pos.New(0, 0), pos.New(100, 100))
	residuals := f.SplitByOverlap(overlap)
	assert.Empty(t, residuals)
}
