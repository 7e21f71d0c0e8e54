package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
	"github.com/Khoshkhah/routing-engine/pkg/metrics"
)

func twoHopStore() *graphstore.Store {
	shortcuts := []graphstore.Shortcut{
		{From: 1, To: 2, Cost: 2, Inside: graphstore.InsideUp},
		{From: 2, To: 3, Cost: 3, Inside: graphstore.InsideDown},
	}
	meta := map[graphstore.EdgeID]graphstore.EdgeMeta{
		1: {Cost: 1},
		2: {Cost: 1},
		3: {Cost: 1},
	}
	return graphstore.NewStore(shortcuts, meta)
}

func newTestRouter() *chi.Mux {
	r := chi.NewRouter()
	m := metrics.NewMetrics(prometheus.NewRegistry())
	QueryRouter(r, StoreEngine{Store: twoHopStore()}, m)
	return r
}

func postJSON(t *testing.T, r *chi.Mux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestClassicEndpointReturnsReachablePath(t *testing.T) {
	r := newTestRouter()
	rec := postJSON(t, r, "/api/query/classic", PairRequest{Source: 1, Target: 3})
	require.Equal(t, http.StatusOK, rec.Code)

	var got QueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Reachable)
	assert.Equal(t, []graphstore.EdgeID{1, 2, 3}, got.Path)
}

func TestClassicEndpointRejectsMissingFields(t *testing.T) {
	r := newTestRouter()
	rec := postJSON(t, r, "/api/query/classic", PairRequest{Source: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPrunedEndpointReturnsReachablePath(t *testing.T) {
	r := newTestRouter()
	rec := postJSON(t, r, "/api/query/pruned", PairRequest{Source: 1, Target: 3})
	require.Equal(t, http.StatusOK, rec.Code)

	var got QueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Reachable)
}

func TestMultiEndpointRejectsEmptySourcesOrTargets(t *testing.T) {
	r := newTestRouter()
	rec := postJSON(t, r, "/api/query/multi", MultiRequest{Sources: nil, Targets: []EndpointRequest{{Edge: 3}}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMultiEndpointReturnsReachablePath(t *testing.T) {
	r := newTestRouter()
	rec := postJSON(t, r, "/api/query/multi", MultiRequest{
		Sources: []EndpointRequest{{Edge: 1, Cost: 0}},
		Targets: []EndpointRequest{{Edge: 3, Cost: 0}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got QueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Reachable)
}
