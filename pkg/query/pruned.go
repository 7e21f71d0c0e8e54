package query

import (
	"math"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
	"github.com/Khoshkhah/routing-engine/pkg/h3adapter"
	"github.com/Khoshkhah/routing-engine/pkg/highcell"
)

// Pruned runs the H3-pruned bidirectional Dijkstra of spec.md §4.5. It
// shares Classic's initialization but checks for a meeting only when a node
// is popped: relaxing a neighbor updates its distance and parent without
// checking the opposite frontier. The forward step hard-prunes expansion
// once a popped node falls outside the high-cell's subtree; the backward
// step instead admits shortcuts by inside tag, parent check and apex test.
func Pruned(store *graphstore.Store, source, target graphstore.EdgeID) graphstore.QueryResult {
	if source == target {
		return graphstore.QueryResult{Distance: store.EdgeCost(source), Path: []graphstore.EdgeID{source}, Reachable: true}
	}

	high := highcell.Solve(store, source, target)

	fwd, bwd := newFrontier(), newFrontier()
	fwd.seed(source, 0)
	bwd.seed(target, store.EdgeCost(target))

	best := math.Inf(1)
	var meeting graphstore.EdgeID

searchLoop:
	for !fwd.queue.Empty() || !bwd.queue.Empty() {
		prunedForwardStep(store, fwd, bwd, high, &best, &meeting)
		prunedBackwardStep(store, fwd, bwd, high, &best, &meeting)

		if best < math.Inf(1) {
			fwdExhausted := exhausted(fwd, best)
			bwdExhausted := exhausted(bwd, best)
			if fwdExhausted && bwdExhausted {
				break searchLoop
			}
		}
	}

	if math.IsInf(best, 1) {
		return graphstore.Unreachable
	}
	return graphstore.QueryResult{Distance: best, Path: reconstructPath(meeting, fwd, bwd), Reachable: true}
}

func exhausted(f *frontier, best float64) bool {
	if f.queue.Empty() {
		return true
	}
	top, _ := f.queue.Peek()
	return top.Rank >= best
}

func prunedForwardStep(store *graphstore.Store, fwd, bwd *frontier, high graphstore.HighCell, best *float64, meeting *graphstore.EdgeID) {
	node, ok := fwd.queue.Pop()
	if !ok {
		return
	}
	d, u := node.Rank, node.Item

	if bd, ok := bwd.dist[u]; ok {
		total := d + bd
		if total <= *best {
			*best = total
			*meeting = u
		}
	}

	if d > fwd.dist[u] || d >= *best {
		return
	}

	uCell := store.EdgeCell(u)
	if !h3adapter.ParentCheck(uCell, high.Cell, high.Res) {
		return
	}

	for _, sc := range store.ForwardAdj(u) {
		if sc.Inside != graphstore.InsideUp {
			continue
		}
		nd := d + sc.Cost
		fwd.relax(u, sc.To, nd)
	}
}

func prunedBackwardStep(store *graphstore.Store, fwd, bwd *frontier, high graphstore.HighCell, best *float64, meeting *graphstore.EdgeID) {
	node, ok := bwd.queue.Pop()
	if !ok {
		return
	}
	d, u := node.Rank, node.Item

	if fd, ok := fwd.dist[u]; ok {
		total := fd + d
		if total <= *best {
			*best = total
			*meeting = u
		}
	}

	if d > bwd.dist[u] || d >= *best {
		return
	}

	uCell := store.EdgeCell(u)
	check := h3adapter.ParentCheck(uCell, high.Cell, high.Res)
	atHigh := uCell == high.Cell

	for _, sc := range store.BackwardAdj(u) {
		var included bool
		switch sc.Inside {
		case graphstore.InsideDown:
			included = check
		case graphstore.InsideLateral:
			included = atHigh || !check
		case graphstore.InsideEdge:
			included = !check
		default:
			included = false
		}
		if !included {
			continue
		}
		nd := d + sc.Cost
		bwd.relax(u, sc.From, nd)
	}
}
