/* ==================================================================================== *\
     nameindex.go

     NameIndex: a radix-tree diagnostic index over zone names, grounded on
     the teacher's overlay-aggregate detection
     (overlays_processing.go: process_overlays). There, IP prefixes are
     inserted as bit-strings and a post-order walk finds prefixes whose
     children are an exact aggregate. Here we reuse the same tree and walk
     shape over zone names directly (no bit conversion needed -- the
     radix tree keys on the string as given), to surface zones whose
     names nest hierarchically, e.g. "Forge/Entrance" under "Forge".
\* ==================================================================================== */

package index

import (
	"sort"

	radix "github.com/Emeline-1/radix"
)

// Cluster groups a zone name with the names nested immediately under it
// (sharing it as a path prefix).
type Cluster struct {
	Name     string
	Children []string
}

// NameIndex is a diagnostic view over zone names; it does not affect
// zone_of in any way.
type NameIndex struct {
	tree *radix.Tree
}

// NamedZone is the minimal shape NameIndex needs from a zone.
type NamedZone struct {
	Name       string
	OriginalID int
}

// Build inserts every zone's name into a radix tree keyed on the name
// itself.
func Build(zones []NamedZone) *NameIndex {
	tree := radix.New()
	for _, z := range zones {
		tree.Insert(z.Name, z.OriginalID)
	}
	return &NameIndex{tree: tree}
}

// Clusters walks the tree post-order (same shape as
// overlays_processing.go's generate_walk_radix_tree) and reports every
// node that has at least one name nested under it.
func (idx *NameIndex) Clusters() []Cluster {
	var clusters []Cluster

	idx.tree.Walk_post(func(parent *radix.LeafNode, children []*radix.LeafNode) {
		if len(children) == 0 {
			return
		}
		names := make([]string, 0, len(children))
		for _, child := range children {
			names = append(names, child.Key)
		}
		sort.Strings(names)
		clusters = append(clusters, Cluster{Name: parent.Key, Children: names})
	})

	return clusters
}
