// Package server wires the HTTP handlers and middleware into a chi router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/app/handler"
	"github.com/atinyakov/url-cutter/internal/app/service"
	"github.com/atinyakov/url-cutter/internal/middleware"
)

// Init builds the router of the public API. Internal stats are served only
// to requests from trustedSubnet.
func Init(baseURL string, logger *zap.Logger, svc service.URLServiceIface, auth service.AuthIface, trustedSubnet string) *chi.Mux {
	get := handler.NewGet(baseURL, svc, logger)
	post := handler.NewPost(baseURL, svc, logger)
	put := handler.NewPut(baseURL, svc, logger)
	del := handler.NewDelete(svc, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)

	r.Get("/ping", get.PingDB)
	r.Get("/{code}", get.ByShort)

	r.With(middleware.WithSubnet(trustedSubnet)).Get("/api/internal/stats", get.InternalStats)

	r.Route("/links", func(r chi.Router) {
		r.Use(middleware.WithIdentity(auth, logger))

		r.Post("/shorten", post.Shorten)
		r.Get("/search", get.Search)
		r.Get("/{code}", get.Info)
		r.Get("/{code}/stats", get.Stats)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/", get.ListMine)
			r.Put("/{code}", put.Update)
			r.Delete("/expired", del.SweepExpired)
			r.Delete("/{code}", del.Delete)
		})
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
