// Package query implements the three bidirectional Dijkstra variants over a
// graphstore.Store: Classic, H3-pruned, and multi-endpoint. All three share
// the same frontier bookkeeping (dist/parent maps plus a pqueue.Heap) and the
// same path reconstructor; they differ only in how the frontiers are seeded,
// which shortcuts a step is allowed to expand, whether the meeting check runs
// on relaxation (Classic, Multi) or on pop (Pruned), and when to stop early.
package query

import (
	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
	"github.com/Khoshkhah/routing-engine/pkg/pqueue"
	"github.com/Khoshkhah/routing-engine/pkg/util"
)

// frontier is one direction's transient search state: best known distance
// per edge id, its parent in the search tree (self-parent at roots), and the
// open set ordered by distance.
type frontier struct {
	dist   map[graphstore.EdgeID]float64
	parent map[graphstore.EdgeID]graphstore.EdgeID
	queue  *pqueue.Heap[graphstore.EdgeID]
}

func newFrontier() *frontier {
	return &frontier{
		dist:   make(map[graphstore.EdgeID]float64),
		parent: make(map[graphstore.EdgeID]graphstore.EdgeID),
		queue:  pqueue.New[graphstore.EdgeID](),
	}
}

// seed roots the frontier at id with distance d, keeping the minimum if id
// is seeded more than once.
func (f *frontier) seed(id graphstore.EdgeID, d float64) {
	if cur, ok := f.dist[id]; ok && d >= cur {
		return
	}
	f.dist[id] = d
	f.parent[id] = id
	f.queue.Push(pqueue.Node[graphstore.EdgeID]{Rank: d, Item: id})
}

// relax offers a candidate distance nd to neighbor via from, pushing it if
// it improves the known distance (absent treated as +inf).
func (f *frontier) relax(from, to graphstore.EdgeID, nd float64) bool {
	if cur, ok := f.dist[to]; ok && nd >= cur {
		return false
	}
	f.dist[to] = nd
	f.parent[to] = from
	f.queue.Push(pqueue.Node[graphstore.EdgeID]{Rank: nd, Item: to})
	return true
}

// discard empties the queue, used by the multi-endpoint termination rule to
// stop pulling from a side that can no longer improve best.
func (f *frontier) discard() {
	f.queue = pqueue.New[graphstore.EdgeID]()
}

// reconstructPath walks both parent maps from meeting out to each root and
// concatenates the two halves, per spec.md §4.7.
func reconstructPath(meeting graphstore.EdgeID, fwd, bwd *frontier) []graphstore.EdgeID {
	var forwardHalf []graphstore.EdgeID
	cur := meeting
	for fwd.parent[cur] != cur {
		forwardHalf = append(forwardHalf, cur)
		cur = fwd.parent[cur]
	}
	forwardHalf = append(forwardHalf, cur)
	forwardHalf = util.ReverseG(forwardHalf)

	path := forwardHalf
	cur = meeting
	for bwd.parent[cur] != cur {
		cur = bwd.parent[cur]
		path = append(path, cur)
	}
	return path
}

// scanSeededMeeting checks every id seeded into fwd for a matching seed in
// bwd, updating best/meeting on improvement. Classic and Pruned never need
// this (their only shared root is the source==target case, handled as an
// explicit identity short-circuit before the search even starts); Multi can
// have overlapping source/target edge sets, and the ordinary relax-time
// meeting check never fires for two roots seeded directly by Initialization
// rather than discovered by relaxing a neighbor.
func scanSeededMeeting(fwd, bwd *frontier, best *float64, meeting *graphstore.EdgeID) {
	for id, fd := range fwd.dist {
		if bd, ok := bwd.dist[id]; ok {
			total := fd + bd
			if total < *best {
				*best = total
				*meeting = id
			}
		}
	}
}
