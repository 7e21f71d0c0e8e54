package query

import (
	"math"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
)

// Endpoint is one candidate source or target edge paired with its
// approach/egress cost, per spec.md §4.6.
type Endpoint struct {
	Edge graphstore.EdgeID
	Cost float64
}

// Multi runs the multi-endpoint bidirectional Dijkstra of spec.md §4.6: the
// same unpruned search as Classic, seeded from every valid source and target
// at once, with a termination rule that discards (rather than merely
// pauses on) a side once its queue top can no longer improve best, since the
// two queues may be racing toward different candidate endpoints.
func Multi(store *graphstore.Store, sources, targets []Endpoint) graphstore.QueryResult {
	fwd, bwd := newFrontier(), newFrontier()

	for _, s := range sources {
		if !store.HasEdge(s.Edge) {
			continue
		}
		fwd.seed(s.Edge, s.Cost)
	}
	for _, t := range targets {
		if !store.HasEdge(t.Edge) {
			continue
		}
		bwd.seed(t.Edge, store.EdgeCost(t.Edge)+t.Cost)
	}

	best := math.Inf(1)
	var meeting graphstore.EdgeID

	// Roots seeded directly by both sides (an edge appearing in both
	// source and target sets) never trigger the relax-time meeting check
	// below, since neither root was discovered by relaxing a neighbor.
	scanSeededMeeting(fwd, bwd, &best, &meeting)

	for !fwd.queue.Empty() || !bwd.queue.Empty() {
		classicStep(store, fwd, bwd, true, &best, &meeting)
		classicStep(store, bwd, fwd, false, &best, &meeting)

		if best < math.Inf(1) {
			if top, ok := fwd.queue.Peek(); ok && top.Rank >= best {
				fwd.discard()
			}
			if top, ok := bwd.queue.Peek(); ok && top.Rank >= best {
				bwd.discard()
			}
		}
	}

	if math.IsInf(best, 1) {
		return graphstore.Unreachable
	}
	return graphstore.QueryResult{Distance: best, Path: reconstructPath(meeting, fwd, bwd), Reachable: true}
}
