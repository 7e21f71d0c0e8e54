// Package rest exposes the query engine over HTTP, in the shape of the
// teacher's pkg/server/mm_rest/handlers.go: chi routes, render.Bind/Render
// request and response models, a validator/universal-translator validation
// pass, and a swaggo-annotated handler per endpoint.
package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
	"github.com/Khoshkhah/routing-engine/pkg/metrics"
)

// QueryEngine is the subset of the query core a QueryHandler needs. Grounded
// on mm_rest's MapMatchingService-as-an-interface-to-the-domain pattern: the
// HTTP layer depends on behavior, not on *graphstore.Store directly.
type QueryEngine interface {
	Classic(source, target graphstore.EdgeID) graphstore.QueryResult
	Pruned(source, target graphstore.EdgeID) graphstore.QueryResult
	Multi(sources, targets []EndpointRequest) graphstore.QueryResult
}

// QueryHandler serves the three shortest-path algorithms over HTTP.
type QueryHandler struct {
	engine QueryEngine
	m      *metrics.Metrics
}

// QueryRouter mounts /api/query/{classic,pruned,multi} on r.
func QueryRouter(r *chi.Mux, engine QueryEngine, m *metrics.Metrics) {
	h := &QueryHandler{engine: engine, m: m}

	r.Route("/api/query", func(r chi.Router) {
		r.Post("/classic", h.Classic)
		r.Post("/pruned", h.Pruned)
		r.Post("/multi", h.Multi)
	})
}

// PairRequest model info
//
//	@Description	request body for a single source/target shortest-path query
type PairRequest struct {
	Source graphstore.EdgeID `json:"source_edge" validate:"required"`
	Target graphstore.EdgeID `json:"target_edge" validate:"required"`
}

func (p *PairRequest) Bind(r *http.Request) error {
	if p.Source == 0 || p.Target == 0 {
		return errors.New("source_edge and target_edge are required")
	}
	return nil
}

// EndpointRequest model info
//
//	@Description	a candidate source or target edge with its approach/egress cost
type EndpointRequest struct {
	Edge graphstore.EdgeID `json:"edge" validate:"required"`
	Cost float64           `json:"cost" validate:"gte=0"`
}

// MultiRequest model info
//
//	@Description	request body for a multi-endpoint shortest-path query
type MultiRequest struct {
	Sources []EndpointRequest `json:"sources" validate:"required,min=1,dive"`
	Targets []EndpointRequest `json:"targets" validate:"required,min=1,dive"`
}

func (m *MultiRequest) Bind(r *http.Request) error {
	if len(m.Sources) == 0 || len(m.Targets) == 0 {
		return errors.New("sources and targets must both be non-empty")
	}
	return nil
}

// QueryResponse model info
//
//	@Description	shortest-path query result
type QueryResponse struct {
	Distance  float64             `json:"distance"`
	Path      []graphstore.EdgeID `json:"path,omitempty"`
	Reachable bool                `json:"reachable"`
}

func renderQueryResult(w http.ResponseWriter, r *http.Request, res graphstore.QueryResult) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, QueryResponse{Distance: res.Distance, Path: res.Path, Reachable: res.Reachable})
}

func bindAndValidate(w http.ResponseWriter, r *http.Request, data render.Binder) bool {
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return false
	}
	validate := validator.New()
	if err := validate.Struct(data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		render.Render(w, r, ErrValidation(err, translateError(err, trans)))
		return false
	}
	return true
}

// Classic runs the unpruned bidirectional Dijkstra query.
//
//	@Summary		classic bidirectional Dijkstra shortest path
//	@Description	runs the unpruned bidirectional search between two edges
//	@Tags			query
//	@Param			body	body	PairRequest	true	"source and target edge"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/query/classic [post]
//	@Success		200	{object}	QueryResponse
//	@Failure		400	{object}	ErrResponse
func (h *QueryHandler) Classic(w http.ResponseWriter, r *http.Request) {
	data := &PairRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}
	timed(h.m, "classic", func() graphstore.QueryResult {
		return h.engine.Classic(data.Source, data.Target)
	}, w, r)
}

// Pruned runs the H3-pruned bidirectional Dijkstra query.
//
//	@Summary		h3-pruned bidirectional Dijkstra shortest path
//	@Description	runs the high-cell-pruned search between two edges
//	@Tags			query
//	@Param			body	body	PairRequest	true	"source and target edge"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/query/pruned [post]
//	@Success		200	{object}	QueryResponse
//	@Failure		400	{object}	ErrResponse
func (h *QueryHandler) Pruned(w http.ResponseWriter, r *http.Request) {
	data := &PairRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}
	timed(h.m, "pruned", func() graphstore.QueryResult {
		return h.engine.Pruned(data.Source, data.Target)
	}, w, r)
}

// Multi runs the multi-endpoint bidirectional Dijkstra query.
//
//	@Summary		multi-endpoint bidirectional Dijkstra shortest path
//	@Description	runs the unpruned search seeded from several sources and targets at once
//	@Tags			query
//	@Param			body	body	MultiRequest	true	"candidate sources and targets"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/query/multi [post]
//	@Success		200	{object}	QueryResponse
//	@Failure		400	{object}	ErrResponse
func (h *QueryHandler) Multi(w http.ResponseWriter, r *http.Request) {
	data := &MultiRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}
	timed(h.m, "multi", func() graphstore.QueryResult {
		return h.engine.Multi(data.Sources, data.Targets)
	}, w, r)
}
