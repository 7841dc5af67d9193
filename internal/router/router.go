// Package router sets up all HTTP routes and middleware chains for the
// gallery service. Routes split into the public storefront API and the
// session-protected admin API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"luckshop/internal/handlers"
	"luckshop/internal/middleware"
	"luckshop/internal/session"
)

// heatRateLimit caps heat increments per client IP. The endpoint is
// unauthenticated, so without a cap one visitor could pump a product's
// popularity arbitrarily.
const (
	heatRateLimit  = 30
	heatRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The returned rate limiter must be stopped
// on shutdown.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check: no auth, no CSRF.
	r.Get("/health", healthHandler)

	heatLimiter := middleware.NewRateLimiter(heatRateLimit, heatRateWindow)

	// Public storefront API.
	r.Route("/api/gallery", func(r chi.Router) {
		r.Get("/", public.Payload)
		r.Get("/items", public.Items)
		r.Get("/items/{id}", public.Item)
		r.With(heatLimiter.Middleware).Post("/heat", public.Heat)
	})

	// Admin API: session cookie + CSRF.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Login is the only endpoint reachable without a session.
		r.Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)

		// 2FA endpoints require auth but not a completed second factor.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/me", auth.Me)
			r.Get("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)
		})

		// Fully authenticated admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Route("/document", func(r chi.Router) {
				r.Get("/", admin.GetDocument)
				r.Put("/", admin.PutDocument)
				r.Get("/history", admin.History)
				r.Post("/history/{id}/restore", admin.RestoreRevision)
			})

			r.Get("/items", admin.Items)

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", admin.CategoryCreate)
				r.Put("/{name}", admin.CategoryRename)
				r.Delete("/{name}", admin.CategoryDelete)
				r.Post("/{name}/reorder", admin.CategoryReorder)
			})

			r.Route("/products", func(r chi.Router) {
				r.Post("/", admin.ProductUpsert)
				r.Put("/{id}/status", admin.ProductStatus)
			})

			r.Route("/assets", func(r chi.Router) {
				r.Get("/", admin.AssetList)
				r.Post("/", admin.AssetUpload)
				r.Delete("/", admin.AssetDelete)
			})
		})
	})

	return r, heatLimiter
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
