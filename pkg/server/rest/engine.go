package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
	"github.com/Khoshkhah/routing-engine/pkg/metrics"
	"github.com/Khoshkhah/routing-engine/pkg/query"
)

// StoreEngine adapts a *graphstore.Store to the QueryEngine interface,
// dispatching to pkg/query's three algorithms. This is the handler's only
// dependency on the search core, mirroring how mm_rest.MapMatchingService
// sits between the HTTP layer and the contracted graph.
type StoreEngine struct {
	Store *graphstore.Store
}

func (e StoreEngine) Classic(source, target graphstore.EdgeID) graphstore.QueryResult {
	return query.Classic(e.Store, source, target)
}

func (e StoreEngine) Pruned(source, target graphstore.EdgeID) graphstore.QueryResult {
	return query.Pruned(e.Store, source, target)
}

func (e StoreEngine) Multi(sources, targets []EndpointRequest) graphstore.QueryResult {
	return query.Multi(e.Store, toEndpoints(sources), toEndpoints(targets))
}

func toEndpoints(reqs []EndpointRequest) []query.Endpoint {
	out := make([]query.Endpoint, len(reqs))
	for i, r := range reqs {
		out[i] = query.Endpoint{Edge: r.Edge, Cost: r.Cost}
	}
	return out
}

// timed runs fn, records it against m under the given algorithm label, and
// renders the result (or a 500 if fn panics on an internal invariant, which
// it never should for a well-formed *graphstore.Store). The nodes-popped
// observation is always 0: the query functions do not report a pop count.
func timed(m *metrics.Metrics, algorithm string, fn func() graphstore.QueryResult, w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			render.Render(w, r, ErrInternalServerError(fmt.Errorf("query %s: %v", algorithm, rec)))
		}
	}()
	started := time.Now()
	res := fn()
	if m != nil {
		m.ObserveQuery(algorithm, res.Reachable, time.Since(started), 0)
	}
	renderQueryResult(w, r, res)
}
