package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emeline-1/zonefield/box"
	"github.com/Emeline-1/zonefield/pos"
)

func unionVolume(fragments []*Fragment) int {
	total := 0
	for _, f := range fragments {
		total += f.Box.Volume()
	}
	return total
}

func TestDefragmentPreservesUnion(t *testing.T) {
	axisOrder := []int{0, 1}
	a := mustZone(t, "A", "", []int{2, 2}, []int{4, 4}, 0, axisOrder)
	b := mustZone(t, "B", "", []int{1, 1}, []int{5, 5}, 1, axisOrder)

	RemoveOverlaps([]*Zone{a, b})
	before := unionVolume(b.Fragments)
	beforeCount := len(b.Fragments)

	Defragment(b)

	assert.Equal(t, before, unionVolume(b.Fragments))
	assert.LessOrEqual(t, len(b.Fragments), beforeCount)
	assert.Len(t, b.Fragments, 4)
}

func TestDefragmentMergesTwoAdjacentBoxes(t *testing.T) {
	z := &Zone{Name: "z", AxisOrder: []int{0, 1}}
	z.Fragments = []*Fragment{
		{Box: box.New(pos.New(0, 0), pos.New(5, 10)), Parent: z, AxisOrder: z.AxisOrder},
		{Box: box.New(pos.New(5, 0), pos.New(5, 10)), Parent: z, AxisOrder: z.AxisOrder},
	}

	Defragment(z)

	require.Len(t, z.Fragments, 1)
	assert.Equal(t, box.New(pos.New(0, 0), pos.New(10, 10)), z.Fragments[0].Box)
}

func TestDefragmentLeavesUnmergeableFragmentsAlone(t *testing.T) {
	z := &Zone{Name: "z", AxisOrder: []int{0, 1}}
	z.Fragments = []*Fragment{
		{Box: box.New(pos.New(0, 0), pos.New(2, 2)), Parent: z, AxisOrder: z.AxisOrder},
		{Box: box.New(pos.New(100, 100), pos.New(2, 2)), Parent: z, AxisOrder: z.AxisOrder},
	}

	Defragment(z)
	assert.Len(t, z.Fragments, 2)
}

func TestGreedyDefragmentAboveCapPreservesUnion(t *testing.T) {
	z := &Zone{Name: "z", AxisOrder: []int{0, 1}}
	for i := 0; i < maxDefragFragments+5; i++ {
		z.Fragments = append(z.Fragments, &Fragment{
			Box:       box.New(pos.New(i, 0), pos.New(1, 1)),
			Parent:    z,
			AxisOrder: z.AxisOrder,
		})
	}

	before := unionVolume(z.Fragments)
	Defragment(z)

	assert.Equal(t, before, unionVolume(z.Fragments))
	// All fragments are collinear and adjacent: the greedy pass should
	// collapse them into a single box.
	assert.Len(t, z.Fragments, 1)
}
