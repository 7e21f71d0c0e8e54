package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
	"github.com/Khoshkhah/routing-engine/pkg/loader"
	"github.com/Khoshkhah/routing-engine/pkg/metrics"
	"github.com/Khoshkhah/routing-engine/pkg/server/rest"
)

var (
	listenAddr    = flag.String("listenaddr", ":5000", "server listen address")
	shortcutsPath = flag.String("shortcuts", "", "path to the shortcuts CSV file (mutually exclusive with --snapshot)")
	edgesPath     = flag.String("edges", "", "path to the edge metadata CSV file (mutually exclusive with --snapshot)")
	snapshotPath  = flag.String("snapshot", "", "path to a graphstore snapshot previously written by --save-snapshot")
	saveSnapshot  = flag.String("save-snapshot", "", "write a graphstore snapshot to this path after loading, then continue starting the server")
)

//	@title			routing-engine query API
//	@version		1.0
//	@description	hierarchical shortest-path query engine over H3-indexed shortcuts

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	store, err := loadStore()
	if err != nil {
		log.Fatal(err)
	}

	if *saveSnapshot != "" {
		if err := store.SaveSnapshot(*saveSnapshot); err != nil {
			log.Fatal(err)
		}
		log.Printf("snapshot written to %s", *saveSnapshot)
	}

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(m.HTTPMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost%s/swagger/doc.json", *listenAddr)),
	))

	rest.QueryRouter(r, rest.StoreEngine{Store: store}, m)

	fmt.Printf("routing-engine query server ready\nlistening at %s\n", *listenAddr)
	log.Fatal(http.ListenAndServe(*listenAddr, r))
}

func loadStore() (*graphstore.Store, error) {
	if *snapshotPath != "" {
		return graphstore.LoadSnapshot(*snapshotPath)
	}
	if *shortcutsPath == "" || *edgesPath == "" {
		return nil, fmt.Errorf("either --snapshot, or both --shortcuts and --edges, are required")
	}

	shortcuts, err := loader.LoadShortcuts(*shortcutsPath)
	if err != nil {
		return nil, fmt.Errorf("load shortcuts: %w", err)
	}
	edgeMeta, err := loader.LoadEdgeMetadata(*edgesPath)
	if err != nil {
		return nil, fmt.Errorf("load edge metadata: %w", err)
	}
	return graphstore.NewStore(shortcuts, edgeMeta), nil
}
