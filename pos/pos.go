/* ==================================================================================== *\
     pos.go

     An N-dimensional integer coordinate vector, with the componentwise
     arithmetic the rest of zonefield builds on.
\* ==================================================================================== */

package pos

import (
	"fmt"
	"strings"
)

// Position is an N-element vector of integer coordinates. N is fixed for a
// given vector and is derived from the slice it was built from. Values are
// immutable by convention after construction: every operation returns a new
// Position rather than mutating the receiver.
type Position struct {
	coords []int
}

// New builds a Position from individual coordinates, e.g. New(1, 2, 3).
func New(coords ...int) Position {
	cp := make([]int, len(coords))
	copy(cp, coords)
	return Position{coords: cp}
}

// FromSlice builds a Position from a slice, copying it.
func FromSlice(coords []int) Position {
	return New(coords...)
}

// Len returns the number of axes (N) of this Position.
func (p Position) Len() int {
	return len(p.coords)
}

// At returns the coordinate on the given axis.
func (p Position) At(axis int) int {
	return p.coords[axis]
}

// Slice returns a defensive copy of the underlying coordinates.
func (p Position) Slice() []int {
	cp := make([]int, len(p.coords))
	copy(cp, p.coords)
	return cp
}

func check_same_dimension(a, b Position) {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("pos: mixed dimensionality: %d vs %d", a.Len(), b.Len()))
	}
}

// Add returns the componentwise sum of p and other.
func (p Position) Add(other Position) Position {
	check_same_dimension(p, other)
	result := make([]int, p.Len())
	for i := range result {
		result[i] = p.coords[i] + other.coords[i]
	}
	return Position{coords: result}
}

// Sub returns the componentwise difference p - other.
func (p Position) Sub(other Position) Position {
	check_same_dimension(p, other)
	result := make([]int, p.Len())
	for i := range result {
		result[i] = p.coords[i] - other.coords[i]
	}
	return Position{coords: result}
}

// Neg returns the componentwise negation of p.
func (p Position) Neg() Position {
	result := make([]int, p.Len())
	for i := range result {
		result[i] = -p.coords[i]
	}
	return Position{coords: result}
}

// AddScalar adds the same value to every axis; handy for the +/-1 nudges
// between inclusive and exclusive corners.
func (p Position) AddScalar(v int) Position {
	result := make([]int, p.Len())
	for i := range result {
		result[i] = p.coords[i] + v
	}
	return Position{coords: result}
}

// MinCorner returns the componentwise minimum of p and every other Position
// given.
func (p Position) MinCorner(others ...Position) Position {
	result := p.Slice()
	for _, other := range others {
		check_same_dimension(p, other)
		for i := range result {
			if other.coords[i] < result[i] {
				result[i] = other.coords[i]
			}
		}
	}
	return Position{coords: result}
}

// MaxCorner returns the componentwise maximum of p and every other Position
// given.
func (p Position) MaxCorner(others ...Position) Position {
	result := p.Slice()
	for _, other := range others {
		check_same_dimension(p, other)
		for i := range result {
			if other.coords[i] > result[i] {
				result[i] = other.coords[i]
			}
		}
	}
	return Position{coords: result}
}

// Equal reports lexicographic equality.
func (p Position) Equal(other Position) bool {
	if p.Len() != other.Len() {
		return false
	}
	for i := range p.coords {
		if p.coords[i] != other.coords[i] {
			return false
		}
	}
	return true
}

// Key returns a string usable as a map key / hash for this Position.
func (p Position) Key() string {
	var b strings.Builder
	for i, c := range p.coords {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", c)
	}
	return b.String()
}

func (p Position) String() string {
	return fmt.Sprintf("Position(%v)", p.coords)
}

// IsPermutation reports whether order is a strict permutation of 0..n-1.
// Per spec §9 (open question), axis_order entries beyond n are a hard
// error, not silently skipped.
func IsPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, axis := range order {
		if axis < 0 || axis >= n || seen[axis] {
			return false
		}
		seen[axis] = true
	}
	return true
}

// Identity returns the identity permutation [0, 1, ..., n-1], the default
// axis_order.
func Identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
