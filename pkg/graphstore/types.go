package graphstore

import "github.com/Khoshkhah/routing-engine/pkg/h3adapter"

// EdgeID names a directed edge of the underlying road network. Edges are
// the vertices of the search graph: the search graph is the edge-based dual
// of the road graph.
type EdgeID uint32

// InsideTag marks the role a Shortcut plays with respect to the spatial
// hierarchy used by the pruned query.
type InsideTag int8

const (
	// InsideUp marks an "upward" shortcut, permitted only in forward search.
	InsideUp InsideTag = 1
	// InsideLateral marks a same-hierarchy-level shortcut, permitted in
	// backward search only at the high-cell apex or when pruning cannot
	// apply to the popped node.
	InsideLateral InsideTag = 0
	// InsideDown marks a "downward" shortcut, permitted in backward search
	// only when the popped node passes the parent check.
	InsideDown InsideTag = -1
	// InsideEdge marks a direct-edge bypass shortcut, permitted in backward
	// search only as a global fallback.
	InsideEdge InsideTag = -2
)

// IsValidInsideTag reports whether v is one of the four defined tags.
func IsValidInsideTag(v int8) bool {
	switch InsideTag(v) {
	case InsideUp, InsideLateral, InsideDown, InsideEdge:
		return true
	default:
		return false
	}
}

// EdgeMeta is the immutable metadata record for one road-network edge.
type EdgeMeta struct {
	IncomingCell h3adapter.Cell
	OutgoingCell h3adapter.Cell
	LCARes       int
	Length       float64
	Cost         float64
}

// Shortcut is a directed search-graph edge: a precomputed bypass between two
// edge ids, tagged with a direction role and a bounding H3 cell.
type Shortcut struct {
	From    EdgeID
	To      EdgeID
	Cost    float64
	ViaEdge EdgeID // 0 means direct; not consulted by the query core
	Cell    h3adapter.Cell
	Inside  InsideTag
}

// HighCell is the LCA cell bounding a pruned query, paired with its
// resolution. The sentinel DisabledHighCell (Cell: 0, Res: -1) means "pruning
// disabled"; Disabled also reports true for any HighCell with Cell 0,
// including the zero value (Cell: 0, Res: 0).
type HighCell struct {
	Cell h3adapter.Cell
	Res  int
}

// Disabled reports whether this HighCell represents the "pruning disabled"
// sentinel.
func (h HighCell) Disabled() bool {
	return h.Cell == h3adapter.NoCell || h.Res < 0
}

// DisabledHighCell is the sentinel HighCell meaning "pruning disabled".
var DisabledHighCell = HighCell{Cell: h3adapter.NoCell, Res: h3adapter.NoRes}

// QueryResult is the outcome of a shortest-path query.
type QueryResult struct {
	Distance  float64
	Path      []EdgeID
	Reachable bool
}

// UnreachableDistance is the reserved invalid distance value reported when a
// query finds no path.
const UnreachableDistance = -1

// Unreachable is the canonical "no path found" result.
var Unreachable = QueryResult{Distance: UnreachableDistance, Path: nil, Reachable: false}
