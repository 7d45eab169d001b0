package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"
)

// routes wires middlewares and endpoints. The API is anonymous and CORS is
// wide open, same as the frontend expects.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(a.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})

	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	))

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", a.handleRoot)
	r.Get("/healthz", a.handleHealthz)
	r.Get("/categories", a.handleCategories)
	r.Get("/model/info", a.handleModelInfo)
	r.Post("/recommend", a.handleRecommend)

	return r
}
