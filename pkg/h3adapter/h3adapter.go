// Package h3adapter is a thin, total wrapper over the H3 hexagonal grid
// primitives the routing core needs. It never errors and never panics: an
// absent or otherwise invalid cell is always represented as h3.Cell(0), and
// every function here is defined for that value.
package h3adapter

import (
	"github.com/uber/h3-go/v4"
)

// Cell aliases the underlying H3 cell id. 0 means "absent/global".
type Cell = h3.Cell

// NoCell is the sentinel for "absent/global" everywhere in this package.
const NoCell Cell = 0

// NoRes is the sentinel resolution paired with NoCell, meaning "disabled".
const NoRes = -1

// Resolution returns the hierarchy level of cell, or -1 if cell is absent.
func Resolution(cell Cell) int {
	if cell == NoCell {
		return NoRes
	}
	return cell.Resolution()
}

// Parent returns the ancestor of cell at targetRes. It returns 0 if cell is
// absent or targetRes is negative, and returns cell unchanged if targetRes
// is equal to or finer than (numerically >=) cell's own resolution (i.e. not
// actually an ancestor level).
func Parent(cell Cell, targetRes int) Cell {
	if cell == NoCell || targetRes < 0 {
		return NoCell
	}
	if targetRes >= Resolution(cell) {
		return cell
	}
	return cell.Parent(targetRes)
}

// LCA returns the lowest common ancestor of a and b: both are raised to the
// coarser of their two resolutions, then walked upward in lockstep until
// they agree or resolution 0 is exhausted. Returns 0 if either argument is
// absent or no common ancestor exists.
func LCA(a, b Cell) Cell {
	if a == NoCell || b == NoCell {
		return NoCell
	}

	resA, resB := Resolution(a), Resolution(b)
	minRes := resA
	if resB < minRes {
		minRes = resB
	}

	c1, c2 := a, b
	if resA > minRes {
		c1 = Parent(a, minRes)
	}
	if resB > minRes {
		c2 = Parent(b, minRes)
	}

	for c1 != c2 && minRes > 0 {
		minRes--
		c1 = Parent(c1, minRes)
		c2 = Parent(c2, minRes)
	}

	if c1 == c2 {
		return c1
	}
	return NoCell
}

// ParentCheck tests whether nodeCell lies within the highCell ancestor
// subtree at resolution highRes. Pruning is considered disabled when
// highCell is absent or highRes is negative, in which case ParentCheck
// always returns true.
func ParentCheck(nodeCell, highCell Cell, highRes int) bool {
	if highCell == NoCell || highRes < 0 {
		return true
	}
	if nodeCell == NoCell {
		return false
	}
	if highRes > Resolution(nodeCell) {
		return false
	}
	return Parent(nodeCell, highRes) == highCell
}
