/* ==================================================================================== *\
     manager.go

     Manager wires the pipeline described in spec §2's data flow:
     descriptors -> Zones -> OverlapResolver -> Defragmenter -> SearchTree,
     and implements the Query API of spec §6. Equivalent to the original
     Python's ZoneManager (lib/zone_manager.py).
\* ==================================================================================== */

package manager

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/Emeline-1/zonefield/adjacency"
	"github.com/Emeline-1/zonefield/box"
	"github.com/Emeline-1/zonefield/index"
	"github.com/Emeline-1/zonefield/pos"
	"github.com/Emeline-1/zonefield/tree"
	"github.com/Emeline-1/zonefield/zone"
)

// Manager owns every Zone, their Fragments, and the SearchTree built over
// them. Immutable after Build: spec §1 excludes dynamic insert/delete.
type Manager struct {
	zones      []*zone.Zone
	searchTree tree.Node
	nameIndex  *index.NameIndex
	graph      *adjacency.Graph
	warnings   []zone.EclipseWarning
}

// SyntheticZone is the diagnostic shape returned by OverlappingZones: the
// pairwise intersection of two input zones' base boxes, before resolution.
type SyntheticZone struct {
	Name string
	Type string
	Box  box.Box
}

// Build runs the full pipeline over descriptors in priority order (index
// == original_id, lower wins). axisOrder defaults to the identity
// permutation when nil. Fails eagerly (spec §7.1) on mixed dimensionality
// or a non-permutation axisOrder.
func Build(descriptors []zone.Descriptor, axisOrder []int) (*Manager, error) {
	if len(descriptors) == 0 {
		return &Manager{searchTree: tree.Build(nil)}, nil
	}

	n := len(descriptors[0].Pos1)
	for _, d := range descriptors {
		if len(d.Pos1) != n || len(d.Pos2) != n {
			return nil, errors.Errorf("zone %q: expected %d axes, got pos1=%d pos2=%d", d.Name, n, len(d.Pos1), len(d.Pos2))
		}
	}

	if axisOrder == nil {
		axisOrder = pos.Identity(n)
	} else if !pos.IsPermutation(axisOrder, n) {
		return nil, errors.Errorf("axis_order %v is not a permutation of 0..%d", axisOrder, n-1)
	}

	zones := make([]*zone.Zone, 0, len(descriptors))
	for i, d := range descriptors {
		z, err := zone.New(d, i, axisOrder)
		if err != nil {
			return nil, errors.Wrapf(err, "building zone %d", i)
		}
		zones = append(zones, z)
	}

	warnings := zone.RemoveOverlaps(zones)
	for _, w := range warnings {
		log.Printf("WARNING: total eclipse of %s by %s", w.Eclipsed, w.HigherPriority)
	}

	// The first zone is never fragmented by construction: it has no
	// higher-priority zone to cut it down.
	for _, z := range zones[1:] {
		zone.Defragment(z)
	}

	var fragments []*zone.Fragment
	for _, z := range zones {
		fragments = append(fragments, z.Fragments...)
	}
	searchTree := tree.Build(fragments)

	named := make([]index.NamedZone, len(zones))
	boxed := make([]adjacency.NamedBox, len(zones))
	for i, z := range zones {
		named[i] = index.NamedZone{Name: z.Name, OriginalID: z.OriginalID}
		boxed[i] = adjacency.NamedBox{Name: z.Name, Box: z.BaseBox}
	}

	return &Manager{
		zones:      zones,
		searchTree: searchTree,
		nameIndex:  index.Build(named),
		graph:      adjacency.Build(boxed),
		warnings:   warnings,
	}, nil
}

// Len returns the number of zones.
func (m *Manager) Len() int { return len(m.zones) }

// Get returns the zone at index i (its original_id).
func (m *Manager) Get(i int) *zone.Zone { return m.zones[i] }

// Warnings returns the total-eclipse warnings produced during Build.
func (m *Manager) Warnings() []zone.EclipseWarning { return m.warnings }

// ZoneOf answers the point query: the zone owning the fragment containing
// p, or nil if no zone claims it.
func (m *Manager) ZoneOf(p pos.Position) *zone.Zone {
	return m.searchTree.ZoneOf(p)
}

// OverlappingZones reports, for every pair of input zones whose base boxes
// intersect (before any resolution), a synthetic zone describing the
// overlap: spec §6's diagnostic view.
func (m *Manager) OverlappingZones() []SyntheticZone {
	var result []SyntheticZone
	for i, a := range m.zones {
		for _, b := range m.zones[i+1:] {
			overlap, ok := a.BaseBox.Intersect(b.BaseBox)
			if !ok {
				continue
			}
			result = append(result, SyntheticZone{
				Name: a.Name + " X " + b.Name,
				Type: a.Type,
				Box:  overlap,
			})
		}
	}
	return result
}

// NameClusters is a diagnostic: zone names that nest hierarchically under
// another zone's name (radix-backed, see package index).
func (m *Manager) NameClusters() []index.Cluster {
	if m.nameIndex == nil {
		return nil
	}
	return m.nameIndex.Clusters()
}

// NeighborClusters is a diagnostic: connected components of zones whose
// base boxes are face-adjacent (basic_graph-backed, see package adjacency).
func (m *Manager) NeighborClusters() [][]string {
	if m.graph == nil {
		return nil
	}
	return m.graph.NeighborClusters()
}

// MaxDepth, AverageDepth, LeafCount, ShowTree are the debug views of §6.
func (m *Manager) MaxDepth() int         { return tree.MaxDepth(m.searchTree) }
func (m *Manager) AverageDepth() float64 { return tree.AverageDepth(m.searchTree) }
func (m *Manager) LeafCount() int        { return tree.LeafCount(m.searchTree) }
func (m *Manager) ShowTree(w io.Writer)  { tree.ShowTree(w, m.searchTree) }
