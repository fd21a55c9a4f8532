// Package api is the HTTP control surface over a pkg/bench.Registry of
// named JumpTree instances.
//
// Host: localhost:8080
// BasePath: /api/v1
//
// SecurityDefinitions:
//   - ApiKeyAuth:
//     type: apiKey
//     in: header
//     name: X-API-Key
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marcusj6/JumpSearchTree/pkg/bench"
)

// StartServer starts the HTTP server with every route described by
// spec.md's external-collaborator section wired up.
func StartServer(registry TreeRegistry, config ServerConfig) error {
	metrics := bench.NewMetrics()
	server := NewServer(registry, config, metrics)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(config.APIKey, metrics))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))
		r.Get("/trees", metrics.InstrumentHandler("GET", "/api/v1/trees", server.handleListTrees))

		r.Route("/trees/{name}", func(r chi.Router) {
			r.Put("/keys/{key}", metrics.InstrumentHandler("PUT", "/api/v1/trees/{name}/keys/{key}", server.handlePutKey))
			r.Get("/keys/{key}", metrics.InstrumentHandler("GET", "/api/v1/trees/{name}/keys/{key}", server.handleGetKey))
			r.Delete("/keys/{key}", metrics.InstrumentHandler("DELETE", "/api/v1/trees/{name}/keys/{key}", server.handleDeleteKey))
			r.Get("/height", metrics.InstrumentHandler("GET", "/api/v1/trees/{name}/height", server.handleHeight))
			r.Get("/print", metrics.InstrumentHandler("GET", "/api/v1/trees/{name}/print", server.handlePrint))
			r.Post("/construct", metrics.InstrumentHandler("POST", "/api/v1/trees/{name}/construct", server.handleConstruct))
		})
	})

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting JumpTree REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))

	return nil
}
