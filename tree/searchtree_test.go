package tree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emeline-1/zonefield/pos"
	"github.com/Emeline-1/zonefield/zone"
)

func mustZone(t *testing.T, name string, pos1, pos2 []int) *zone.Zone {
	t.Helper()
	n := len(pos1)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	z, err := zone.New(zone.Descriptor{Name: name, Pos1: pos1, Pos2: pos2}, 0, order)
	require.NoError(t, err)
	return z
}

func TestEmptyTree(t *testing.T) {
	n := Build(nil)
	assert.Nil(t, n.ZoneOf(pos.New(0, 0)))
	assert.Equal(t, 0, MaxDepth(n))
	assert.Equal(t, 0, LeafCount(n))
	assert.Equal(t, 0.0, AverageDepth(n))
}

func TestLeafTree(t *testing.T) {
	z := mustZone(t, "solo", []int{0, 0}, []int{4, 4})
	n := Build(z.Fragments)

	assert.Equal(t, z, n.ZoneOf(pos.New(2, 2)))
	assert.Nil(t, n.ZoneOf(pos.New(10, 10)))
	assert.Equal(t, 1, MaxDepth(n))
	assert.Equal(t, 1, LeafCount(n))
}

func Test2DCornerOverlapSearchTree(t *testing.T) {
	// spec §8 scenario 1 + scenario 5.
	axisOrder := []int{1, 0}
	alice, err := zone.New(zone.Descriptor{Name: "Alice", Pos1: []int{1, 2}, Pos2: []int{3, 4}}, 0, axisOrder)
	require.NoError(t, err)
	bob, err := zone.New(zone.Descriptor{Name: "Bob", Pos1: []int{2, 3}, Pos2: []int{4, 5}}, 1, axisOrder)
	require.NoError(t, err)

	zone.RemoveOverlaps([]*zone.Zone{alice, bob})
	zone.Defragment(bob)

	var fragments []*zone.Fragment
	fragments = append(fragments, alice.Fragments...)
	fragments = append(fragments, bob.Fragments...)

	n := Build(fragments)

	assert.Equal(t, alice, n.ZoneOf(pos.New(3, 3)))
	assert.Equal(t, bob, n.ZoneOf(pos.New(4, 5)))
	assert.Nil(t, n.ZoneOf(pos.New(0, 0)))
	assert.Nil(t, n.ZoneOf(pos.New(-1441, 2)))

	assert.GreaterOrEqual(t, MaxDepth(n), 1)
	assert.True(t, AverageDepth(n) > 0)
}

func TestShowTreeDoesNotPanic(t *testing.T) {
	z1 := mustZone(t, "A", []int{0, 0}, []int{1, 1})
	z2 := mustZone(t, "B", []int{5, 5}, []int{6, 6})
	n := Build(append(append([]*zone.Fragment{}, z1.Fragments...), z2.Fragments...))

	var buf bytes.Buffer
	ShowTree(&buf, n)
	assert.NotEmpty(t, buf.String())
}

func TestDisjointnessGuaranteesAtMostOneMatch(t *testing.T) {
	axisOrder := []int{0, 1, 2}
	a, _ := zone.New(zone.Descriptor{Name: "A", Pos1: []int{2, 2, 2}, Pos2: []int{2, 2, 2}}, 0, axisOrder)
	b, _ := zone.New(zone.Descriptor{Name: "B", Pos1: []int{1, 1, 1}, Pos2: []int{3, 3, 3}}, 1, axisOrder)

	zone.RemoveOverlaps([]*zone.Zone{a, b})
	zone.Defragment(b)

	var fragments []*zone.Fragment
	fragments = append(fragments, a.Fragments...)
	fragments = append(fragments, b.Fragments...)
	n := Build(fragments)

	assert.Equal(t, a, n.ZoneOf(pos.New(2, 2, 2)))
	assert.Equal(t, b, n.ZoneOf(pos.New(1, 1, 1)))
	assert.Nil(t, n.ZoneOf(pos.New(4, 4, 4)))
}
