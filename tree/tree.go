/* ==================================================================================== *\
     tree.go

     Small box-drawing helpers shared by SearchTree.ShowTree, adapted from
     https://github.com/Tufin/asciitree (originally a generic path-tree
     printer; here trimmed down to just the connector glyphs it contributed,
     since our tree has a fixed less/mid/more arity rather than an
     arbitrary map of children).
\* ==================================================================================== */

package tree

// BoxType is which connector glyph a line in the printed tree uses.
type BoxType int

const (
	Regular BoxType = iota
	Last
	AfterLast
	Between
)

func (boxType BoxType) String() string {
	switch boxType {
	case Regular:
		return "├" // ├
	case Last:
		return "└" // └
	case AfterLast:
		return " "
	case Between:
		return "│" // │
	default:
		panic("invalid box type")
	}
}

func getBoxType(index int, length int) BoxType {
	if index+1 == length {
		return Last
	} else if index+1 > length {
		return AfterLast
	}
	return Regular
}
