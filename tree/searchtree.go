/* ==================================================================================== *\
     searchtree.go

     SearchTree: the three-way (less/mid/more) recursive spatial partition
     that answers zone_of(point) (spec §4.G). Modeled as a tagged variant
     via a small interface rather than a class hierarchy that mutates a
     parent into a leaf, per the design notes in spec §9.
\* ==================================================================================== */

package tree

import (
	"fmt"
	"io"
	"log"

	"github.com/Emeline-1/zonefield/pos"
	"github.com/Emeline-1/zonefield/zone"
)

// Node is Empty, a Leaf, or a Parent.
type Node interface {
	// ZoneOf returns the zone owning the fragment containing p, or nil.
	ZoneOf(p pos.Position) *zone.Zone

	MaxDepth() int
	allLeafDepths() []int
	LeafCount() int
	ShowTree(w io.Writer, header string, prefix string)
}

// Build constructs a SearchTree node over fragments. fragments must be
// pairwise disjoint (guaranteed by OverlapResolver + Defragmenter having
// already run over every zone).
func Build(fragments []*zone.Fragment) Node {
	switch len(fragments) {
	case 0:
		return emptyNode{}
	case 1:
		return leafNode{fragment: fragments[0]}
	default:
		return buildParent(fragments)
	}
}

type emptyNode struct{}

func (emptyNode) ZoneOf(pos.Position) *zone.Zone { return nil }
func (emptyNode) MaxDepth() int                  { return 0 }
func (emptyNode) allLeafDepths() []int           { return nil }
func (emptyNode) LeafCount() int                 { return 0 }
func (emptyNode) ShowTree(w io.Writer, header, prefix string) {
	if header != "" {
		prefix = header
	}
	fmt.Fprintln(w, prefix+"╴<empty>")
}

type leafNode struct {
	fragment *zone.Fragment
}

func (n leafNode) ZoneOf(p pos.Position) *zone.Zone {
	if n.fragment.Box.Contains(p) {
		return n.fragment.Parent
	}
	return nil
}
func (leafNode) MaxDepth() int        { return 1 }
func (leafNode) allLeafDepths() []int { return []int{1} }
func (leafNode) LeafCount() int       { return 1 }
func (n leafNode) ShowTree(w io.Writer, header, prefix string) {
	if header != "" {
		prefix = header
	}
	fmt.Fprintln(w, prefix+"╴"+n.fragment.String())
}

type parentNode struct {
	axis  int
	pivot int

	midLo int
	midHi int

	less, mid, more Node
}

func (n parentNode) ZoneOf(p pos.Position) *zone.Zone {
	var result *zone.Zone
	if p.At(n.axis) > n.pivot {
		result = n.more.ZoneOf(p)
		if result != nil {
			return result
		}
	} else {
		result = n.less.ZoneOf(p)
		if result != nil {
			return result
		}
	}

	if n.midLo <= p.At(n.axis) && p.At(n.axis) < n.midHi {
		return n.mid.ZoneOf(p)
	}
	return nil
}

func (n parentNode) MaxDepth() int {
	return 1 + maxOf(n.less.MaxDepth(), n.mid.MaxDepth(), n.more.MaxDepth())
}

func (n parentNode) allLeafDepths() []int {
	var result []int
	for _, depth := range n.less.allLeafDepths() {
		result = append(result, depth+1)
	}
	for _, depth := range n.mid.allLeafDepths() {
		result = append(result, depth+1)
	}
	for _, depth := range n.more.allLeafDepths() {
		result = append(result, depth+1)
	}
	return result
}

func (n parentNode) LeafCount() int {
	return n.less.LeafCount() + n.mid.LeafCount() + n.more.LeafCount()
}

func (n parentNode) ShowTree(w io.Writer, header, prefix string) {
	if header != "" {
		prefix = header
	}
	fmt.Fprintf(w, "%s┬╴axis=%d, pivot=%d, mid_lo=%d, mid_hi=%d\n", prefix, n.axis, n.pivot, n.midLo, n.midHi)

	if header != "" {
		prefix = paddingFor(header)
	}
	children := [3]Node{n.less, n.mid, n.more}
	for i, child := range children {
		child.ShowTree(w, "", prefix+getBoxType(i, len(children)).String()+"─")
	}
}

func paddingFor(header string) string {
	runes := []rune(header)
	out := make([]rune, len(runes))
	for i, r := range runes {
		switch r {
		case '─', '├', '└':
			out[i] = ' '
		default:
			out[i] = r
		}
	}
	return string(out)
}

func maxOf(values ...int) int {
	result := values[0]
	for _, v := range values[1:] {
		if v > result {
			result = v
		}
	}
	return result
}

// MaxDepth, AverageDepth, LeafCount are the debug views of spec §6.
func MaxDepth(n Node) int { return n.MaxDepth() }

func LeafCount(n Node) int { return n.LeafCount() }

func AverageDepth(n Node) float64 {
	depths := n.allLeafDepths()
	if len(depths) == 0 {
		return 0
	}
	total := 0
	for _, d := range depths {
		total += d
	}
	return float64(total) / float64(len(depths))
}

// ShowTree prints the tree structure to w for debugging, matching the
// original's "└╴"/"┬╴"/"├─" rendering.
func ShowTree(w io.Writer, n Node) {
	n.ShowTree(w, "─", "")
}

type splitCandidate struct {
	priority int
	axis     int
	pivot    int
	midLo    int
	midHi    int
	less     []*zone.Fragment
	mid      []*zone.Fragment
	more     []*zone.Fragment
}

// buildParent implements best_split: search every candidate (axis, pivot)
// drawn from each fragment's min/exclusive-max corner, and pick the one
// minimizing max(|less|, |mid|, |more|), first-seen on ties.
func buildParent(fragments []*zone.Fragment) Node {
	numAxes := fragments[0].MinCorner().Len()

	seedPriority := len(fragments) + 1
	best := splitCandidate{priority: seedPriority, mid: fragments}

	for _, pivotFragment := range fragments {
		for axis := 0; axis < numAxes; axis++ {
			for _, pivot := range [2]int{pivotFragment.MinCorner().At(axis), pivotFragment.ExclusiveMaxCorner().At(axis)} {
				candidate := classify(fragments, axis, pivot)
				if candidate.priority < best.priority {
					best = candidate
				}
			}
		}
	}

	if best.priority >= len(fragments) {
		// Degenerate split (spec §7.3): no candidate puts fewer than all
		// fragments in one part (e.g. every candidate places all fragments
		// in mid), so recursing would never shrink. Diagnose and recover
		// with a flat linear scan instead of failing the build.
		log.Printf("WARNING: degenerate search tree split over %d fragments; falling back to a linear chain", len(fragments))
		return buildLinearChain(fragments)
	}

	return parentNode{
		axis:  best.axis,
		pivot: best.pivot,
		midLo: best.midLo,
		midHi: best.midHi,
		less:  Build(best.less),
		mid:   Build(best.mid),
		more:  Build(best.more),
	}
}

func classify(fragments []*zone.Fragment, axis, pivot int) splitCandidate {
	candidate := splitCandidate{axis: axis, pivot: pivot, midLo: pivot, midHi: pivot}

	for _, f := range fragments {
		exMax := f.ExclusiveMaxCorner().At(axis)
		min := f.MinCorner().At(axis)

		switch {
		case pivot >= exMax:
			candidate.less = append(candidate.less, f)
		case pivot >= min:
			if min < candidate.midLo {
				candidate.midLo = min
			}
			if exMax > candidate.midHi {
				candidate.midHi = exMax
			}
			candidate.mid = append(candidate.mid, f)
		default:
			candidate.more = append(candidate.more, f)
		}
	}

	candidate.priority = maxOf(len(candidate.less), len(candidate.mid), len(candidate.more))
	return candidate
}

// buildLinearChain recovers from a degenerate split: a single fragment
// becomes a leaf, anything more becomes one linearNode that checks every
// fragment in turn. A simple linear scan, not a balanced tree, but still
// correct.
func buildLinearChain(fragments []*zone.Fragment) Node {
	if len(fragments) == 1 {
		return leafNode{fragment: fragments[0]}
	}
	return linearNode{fragments: fragments}
}

// linearNode is the §7.3 recovery path: a flat scan over fragments that
// could not be usefully partitioned.
type linearNode struct {
	fragments []*zone.Fragment
}

func (n linearNode) ZoneOf(p pos.Position) *zone.Zone {
	for _, f := range n.fragments {
		if f.Box.Contains(p) {
			return f.Parent
		}
	}
	return nil
}
func (n linearNode) MaxDepth() int        { return 1 }
func (n linearNode) allLeafDepths() []int {
	depths := make([]int, len(n.fragments))
	for i := range depths {
		depths[i] = 1
	}
	return depths
}
func (n linearNode) LeafCount() int { return len(n.fragments) }
func (n linearNode) ShowTree(w io.Writer, header, prefix string) {
	if header != "" {
		prefix = header
	}
	fmt.Fprintln(w, prefix+"╴<degenerate linear scan>")
	for _, f := range n.fragments {
		fmt.Fprintln(w, prefix+"  "+f.String())
	}
}
