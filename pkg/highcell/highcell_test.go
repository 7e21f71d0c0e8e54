package highcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/h3-go/v4"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
)

func cellAt(lat, lng float64, res int) h3.Cell {
	return h3.LatLngToCell(h3.NewLatLng(lat, lng), res)
}

func TestSolveDisabledWhenEndpointMissing(t *testing.T) {
	store := graphstore.NewStore(nil, map[graphstore.EdgeID]graphstore.EdgeMeta{
		1: {IncomingCell: cellAt(-7.79, 110.36, 9)},
	})
	high := Solve(store, 1, 2)
	assert.True(t, high.Disabled())
}

func TestSolveDisabledWhenCellAbsent(t *testing.T) {
	store := graphstore.NewStore(nil, map[graphstore.EdgeID]graphstore.EdgeMeta{
		1: {IncomingCell: 0},
		2: {IncomingCell: cellAt(-7.79, 110.36, 9)},
	})
	high := Solve(store, 1, 2)
	assert.True(t, high.Disabled())
}

func TestSolveReturnsSharedAncestor(t *testing.T) {
	base := cellAt(-7.7956, 110.3695, 9)
	parent9 := base

	store := graphstore.NewStore(nil, map[graphstore.EdgeID]graphstore.EdgeMeta{
		1: {IncomingCell: parent9, LCARes: 5},
		2: {IncomingCell: parent9, LCARes: 6},
	})
	high := Solve(store, 1, 2)
	assert.False(t, high.Disabled())
	assert.Equal(t, 5, high.Res)
}

func TestSolveUsesRawCellWhenLCAResNegative(t *testing.T) {
	cell := cellAt(-7.7956, 110.3695, 9)
	store := graphstore.NewStore(nil, map[graphstore.EdgeID]graphstore.EdgeMeta{
		1: {IncomingCell: cell, LCARes: -1},
		2: {IncomingCell: cell, LCARes: -1},
	})
	high := Solve(store, 1, 2)
	assert.False(t, high.Disabled())
	assert.Equal(t, cell, high.Cell)
}

func TestSolveDisabledWhenNoCommonAncestor(t *testing.T) {
	jogja := cellAt(-7.7956, 110.3695, 9)
	tokyo := cellAt(35.6762, 139.6503, 9)
	store := graphstore.NewStore(nil, map[graphstore.EdgeID]graphstore.EdgeMeta{
		1: {IncomingCell: jogja, LCARes: 9},
		2: {IncomingCell: tokyo, LCARes: 9},
	})
	high := Solve(store, 1, 2)
	// H3 has no single root: Yogyakarta and Tokyo lie in different res-0
	// base cells, so their LCA is 0 and pruning is disabled.
	assert.True(t, high.Disabled())
	assert.Equal(t, -1, high.Res)
}
