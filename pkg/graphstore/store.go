package graphstore

import "github.com/Khoshkhah/routing-engine/pkg/h3adapter"

// Store is the immutable, in-memory graph: a flat shortcut array plus
// per-direction adjacency over it, and the edge-metadata map. It is built
// once and borrowed read-only by every query; there is no synchronization
// because nothing ever mutates it after NewStore returns.
type Store struct {
	shortcuts   []Shortcut
	forwardAdj  adjacency
	backwardAdj adjacency
	edgeMeta    map[EdgeID]EdgeMeta
}

// NewStore builds a Store from already-parsed shortcut records and edge
// metadata. Neither is copied: the Store keeps the caller's shortcuts slice
// and edgeMeta map (a nil map is replaced by an empty one), so callers must
// not mutate either after passing it in. Pass StoreOption values to override adjacency construction
// defaults (see WithDenseThresholdFactor).
func NewStore(shortcuts []Shortcut, edgeMeta map[EdgeID]EdgeMeta, opts ...StoreOption) *Store {
	cfg := newStoreConfig(opts)

	fwdPairs := make([]edgeIndexPair, len(shortcuts))
	bwdPairs := make([]edgeIndexPair, len(shortcuts))
	for i, sc := range shortcuts {
		fwdPairs[i] = edgeIndexPair{edge: sc.From, index: int32(i)}
		bwdPairs[i] = edgeIndexPair{edge: sc.To, index: int32(i)}
	}

	if edgeMeta == nil {
		edgeMeta = map[EdgeID]EdgeMeta{}
	}

	return &Store{
		shortcuts:   shortcuts,
		forwardAdj:  buildAdjacency(fwdPairs, cfg.denseThresholdFactor),
		backwardAdj: buildAdjacency(bwdPairs, cfg.denseThresholdFactor),
		edgeMeta:    edgeMeta,
	}
}

// ForwardAdj returns the shortcuts outgoing from u (sc.From == u), in
// stable insertion order.
func (s *Store) ForwardAdj(u EdgeID) []Shortcut {
	return s.lookup(s.forwardAdj, u)
}

// BackwardAdj returns the shortcuts incoming to u (sc.To == u), in stable
// insertion order.
func (s *Store) BackwardAdj(u EdgeID) []Shortcut {
	return s.lookup(s.backwardAdj, u)
}

func (s *Store) lookup(adj adjacency, u EdgeID) []Shortcut {
	idx := adj.indices(u)
	if len(idx) == 0 {
		return nil
	}
	out := make([]Shortcut, len(idx))
	for i, j := range idx {
		out[i] = s.shortcuts[j]
	}
	return out
}

// EdgeCost returns the scalar cost of edge id from metadata, or 0 if the id
// is absent (treated as "global" for cell-derived queries).
func (s *Store) EdgeCost(id EdgeID) float64 {
	if meta, ok := s.edgeMeta[id]; ok {
		return meta.Cost
	}
	return 0
}

// EdgeCell returns the edge's incoming H3 cell, or h3adapter.NoCell if
// absent.
func (s *Store) EdgeCell(id EdgeID) h3adapter.Cell {
	if meta, ok := s.edgeMeta[id]; ok {
		return meta.IncomingCell
	}
	return h3adapter.NoCell
}

// EdgeMeta returns the metadata record for id and whether it is present.
func (s *Store) EdgeMeta(id EdgeID) (EdgeMeta, bool) {
	meta, ok := s.edgeMeta[id]
	return meta, ok
}

// HasEdge reports whether id has a metadata record.
func (s *Store) HasEdge(id EdgeID) bool {
	_, ok := s.edgeMeta[id]
	return ok
}

// ShortcutCount returns the number of shortcuts loaded.
func (s *Store) ShortcutCount() int {
	return len(s.shortcuts)
}

// EdgeCount returns the number of edges with metadata.
func (s *Store) EdgeCount() int {
	return len(s.edgeMeta)
}
