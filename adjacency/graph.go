/* ==================================================================================== *\
     graph.go

     Graph: an undirected zone-adjacency graph, grounded on the teacher's
     overlay transitive-closure step (overlays_processing.go:
     process_overlays builds a graph.New(), g.Add_edge per pair, then
     walks connected components). Here the edges are "these two zones'
     base boxes touch along exactly one axis" instead of "these two
     prefixes overlap" -- a diagnostic on top of the spatial index, not
     part of zone_of.
\* ==================================================================================== */

package adjacency

import (
	graph "github.com/Emeline-1/basic_graph"

	"github.com/Emeline-1/zonefield/box"
)

// NamedBox is the minimal shape Build needs from a zone.
type NamedBox struct {
	Name string
	Box  box.Box
}

// Graph is the zone-adjacency graph: one node per zone, an edge between
// any two zones whose base boxes are face-adjacent.
type Graph struct {
	g *graph.Graph
}

// Build constructs the adjacency graph over zones. O(n^2) in the number of
// zones; run once, after the search tree, never during a query.
func Build(zones []NamedBox) *Graph {
	g := graph.New()
	for i, a := range zones {
		for _, b := range zones[i+1:] {
			if adjacent(a.Box, b.Box) {
				g.Add_edge(a.Name, b.Name)
			}
		}
	}
	return &Graph{g: g}
}

// adjacent reports whether a and b are face-adjacent: they don't overlap,
// but Merge (spec §4.B) would succeed on them.
func adjacent(a, b box.Box) bool {
	if _, overlaps := a.Intersect(b); overlaps {
		return false
	}
	_, ok := a.Merge(b)
	return ok
}

// NeighborClusters returns every connected component of the adjacency
// graph: groups of zones that touch each other transitively.
func (g *Graph) NeighborClusters() [][]string {
	var clusters [][]string
	g.g.Set_iterator()
	for g.g.Next_connected_component() {
		clusters = append(clusters, g.g.Connected_component())
	}
	return clusters
}
