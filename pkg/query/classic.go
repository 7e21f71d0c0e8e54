package query

import (
	"math"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
)

// Classic runs the unpruned bidirectional Dijkstra of spec.md §4.4: forward
// search follows InsideUp shortcuts, backward search follows InsideLateral
// and InsideDown shortcuts, and the meeting point is discovered opportunistically
// while relaxing neighbors (never by inspecting the popped node itself).
func Classic(store *graphstore.Store, source, target graphstore.EdgeID) graphstore.QueryResult {
	if source == target {
		return graphstore.QueryResult{Distance: store.EdgeCost(source), Path: []graphstore.EdgeID{source}, Reachable: true}
	}

	fwd, bwd := newFrontier(), newFrontier()
	fwd.seed(source, 0)
	bwd.seed(target, store.EdgeCost(target))

	best := math.Inf(1)
	var meeting graphstore.EdgeID

searchLoop:
	for !fwd.queue.Empty() || !bwd.queue.Empty() {
		classicStep(store, fwd, bwd, true, &best, &meeting)
		classicStep(store, bwd, fwd, false, &best, &meeting)

		fwdEmpty, bwdEmpty := fwd.queue.Empty(), bwd.queue.Empty()
		switch {
		case !fwdEmpty && !bwdEmpty:
			ft, _ := fwd.queue.Peek()
			bt, _ := bwd.queue.Peek()
			if ft.Rank >= best && bt.Rank >= best {
				break searchLoop
			}
		case fwdEmpty && !bwdEmpty:
			bt, _ := bwd.queue.Peek()
			if bt.Rank >= best {
				break searchLoop
			}
		case bwdEmpty && !fwdEmpty:
			ft, _ := fwd.queue.Peek()
			if ft.Rank >= best {
				break searchLoop
			}
		default:
			break searchLoop
		}
	}

	if math.IsInf(best, 1) {
		return graphstore.Unreachable
	}
	return graphstore.QueryResult{Distance: best, Path: reconstructPath(meeting, fwd, bwd), Reachable: true}
}

// classicStep pops one node from own and relaxes its outgoing shortcuts into
// own, checking for a meeting against opp on every relaxed neighbor.
// forward selects which side of each shortcut is "own" vs. the allowed tag
// set: forward==true follows InsideUp via sc.From->sc.To, forward==false
// follows InsideLateral/InsideDown via sc.To->sc.From.
func classicStep(store *graphstore.Store, own, opp *frontier, forward bool, best *float64, meeting *graphstore.EdgeID) {
	node, ok := own.queue.Pop()
	if !ok {
		return
	}
	d, u := node.Rank, node.Item
	if d > own.dist[u] || d >= *best {
		return
	}

	var shortcuts []graphstore.Shortcut
	if forward {
		shortcuts = store.ForwardAdj(u)
	} else {
		shortcuts = store.BackwardAdj(u)
	}

	for _, sc := range shortcuts {
		var neighbor graphstore.EdgeID
		if forward {
			if sc.Inside != graphstore.InsideUp {
				continue
			}
			neighbor = sc.To
		} else {
			if sc.Inside != graphstore.InsideLateral && sc.Inside != graphstore.InsideDown {
				continue
			}
			neighbor = sc.From
		}

		nd := d + sc.Cost
		if own.relax(u, neighbor, nd) {
			if od, ok := opp.dist[neighbor]; ok {
				total := nd + od
				if total < *best {
					*best = total
					*meeting = neighbor
				}
			}
		}
	}
}
