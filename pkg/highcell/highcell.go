// Package highcell derives the LCA cell bounding a pruned bidirectional
// query from a pair of endpoint edges.
package highcell

import (
	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
	"github.com/Khoshkhah/routing-engine/pkg/h3adapter"
)

// edgeCellSource is the subset of graphstore.Store the solver needs.
type edgeCellSource interface {
	EdgeMeta(id graphstore.EdgeID) (graphstore.EdgeMeta, bool)
}

// Solve computes the HighCell for a (source, target) pair of edge ids:
//
//  1. Fetch both metadata records; missing either disables pruning.
//  2. Take each side's incoming cell; either being absent disables pruning.
//  3. Raise each side to its own lca_res ancestor, when lca_res >= 0.
//  4. LCA the two raised cells; zero disables pruning.
func Solve(store edgeCellSource, source, target graphstore.EdgeID) graphstore.HighCell {
	srcMeta, ok := store.EdgeMeta(source)
	if !ok {
		return graphstore.DisabledHighCell
	}
	dstMeta, ok := store.EdgeMeta(target)
	if !ok {
		return graphstore.DisabledHighCell
	}

	srcCell, dstCell := srcMeta.IncomingCell, dstMeta.IncomingCell
	if srcCell == h3adapter.NoCell || dstCell == h3adapter.NoCell {
		return graphstore.DisabledHighCell
	}

	if srcMeta.LCARes >= 0 {
		srcCell = h3adapter.Parent(srcCell, srcMeta.LCARes)
	}
	if dstMeta.LCARes >= 0 {
		dstCell = h3adapter.Parent(dstCell, dstMeta.LCARes)
	}

	lca := h3adapter.LCA(srcCell, dstCell)
	if lca == h3adapter.NoCell {
		return graphstore.DisabledHighCell
	}
	return graphstore.HighCell{Cell: lca, Res: h3adapter.Resolution(lca)}
}
