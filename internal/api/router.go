package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"shop-demo/internal/middleware"
)

// RouterConfig holds what NewRouter needs beyond the handler.
type RouterConfig struct {
	Resolver       middleware.Resolver
	RateLimit      middleware.RateLimitConfig
	AllowedOrigins []string
	Logger         *slog.Logger
	// AccessLog enables chi's request logger.
	AccessLog bool
}

// NewRouter mounts the order routes behind request ids, rate limiting and
// principal resolution. /healthz is public.
func NewRouter(h *Handler, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if cfg.AccessLog {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders:   []string{"Location", middleware.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	auth := middleware.RequirePrincipal(cfg.Resolver, cfg.Logger)
	r.Route("/api/customers/me/orders", func(r chi.Router) {
		if cfg.RateLimit.RequestsPerSecond > 0 {
			r.Use(middleware.RateLimiter(cfg.RateLimit))
		}
		r.Post("/", auth(h.PlaceOrder))
		r.Get("/", auth(h.ListOrders))
		r.Get("/{orderId}", auth(h.GetOrder))
	})

	return r
}
