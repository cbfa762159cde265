/* ==================================================================================== *\
     zone.go

     Zone: a named, typed, priority-ranked box, plus the Fragments that
     survive overlap removal and defragmentation (spec §3, §4.C/D).
\* ==================================================================================== */

package zone

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/Emeline-1/zonefield/box"
	"github.com/Emeline-1/zonefield/pos"
)

// Descriptor is the external (pre-canonicalization) shape of a zone, as
// decoded from JSON or a SQLite row (spec §6). Pos1/Pos2 are inclusive
// corners, order-independent.
type Descriptor struct {
	Name    string
	Type    string
	Pos1    []int
	Pos2    []int
	Payload map[string]interface{}
}

// Zone is a box tagged with metadata and priority, owning the Fragments
// that survive overlap resolution. OriginalID doubles as priority rank:
// lower wins on overlap.
type Zone struct {
	Name       string
	Type       string
	OriginalID int
	Payload    map[string]interface{}
	BaseBox    box.Box
	Fragments  []*Fragment
	AxisOrder  []int
}

// New builds a Zone from a Descriptor, assigning it a single Fragment equal
// to its base box. axisOrder must already be validated as a permutation of
// 0..N-1 (see pos.IsPermutation) -- New returns an errors.Errorf error on
// mismatched dimensionality or a non-permutation axisOrder, a programmer
// error per spec §7.1.
func New(d Descriptor, originalID int, axisOrder []int) (*Zone, error) {
	if len(d.Pos1) != len(d.Pos2) {
		return nil, errors.Errorf("zone %q: pos1 has %d axes, pos2 has %d", d.Name, len(d.Pos1), len(d.Pos2))
	}
	n := len(d.Pos1)
	if !pos.IsPermutation(axisOrder, n) {
		return nil, errors.Errorf("zone %q: axis_order %v is not a permutation of 0..%d", d.Name, axisOrder, n-1)
	}

	base := box.FromInclusiveCorners(pos.FromSlice(d.Pos1), pos.FromSlice(d.Pos2))

	z := &Zone{
		Name:       d.Name,
		Type:       d.Type,
		OriginalID: originalID,
		Payload:    d.Payload,
		BaseBox:    base,
		AxisOrder:  axisOrder,
	}
	z.Fragments = []*Fragment{{Box: base, Parent: z, AxisOrder: axisOrder}}
	return z, nil
}

// Contains returns true if p lies in any surviving fragment of z.
func (z *Zone) Contains(p pos.Position) bool {
	for _, f := range z.Fragments {
		if f.Box.Contains(p) {
			return true
		}
	}
	return false
}

func (z *Zone) String() string {
	if z.BaseBox.Empty() {
		return fmt.Sprintf("Zone(name=%q, type=%q, box=%v)", z.Name, z.Type, z.BaseBox)
	}
	return fmt.Sprintf("Zone(original_id=%d, name=%q, type=%q, box=%v, fragments=%d)",
		z.OriginalID, z.Name, z.Type, z.BaseBox, len(z.Fragments))
}
