package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orderdesk/internal/http/handlers"
	"orderdesk/internal/http/middleware"
	"orderdesk/internal/http/middleware/ratelimit"
	"orderdesk/internal/logx"
)

// New constructs the chi-based http.Handler with base middleware and all
// routes. The webhook group additionally carries the rate limiter: it is
// the only surface open to outside callers.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	orders *handlers.OrderHandler,
	prospects *handlers.ProspectHandler,
	webhooks *handlers.WebhookHandler,
	limiter *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Observability(logger))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orders.Create)
		r.Get("/", orders.List)
		r.Post("/waybill", orders.Waybill)
		r.Get("/{id}", orders.GetByID)
		r.Post("/{id}/submit", orders.Submit)
		r.Post("/{id}/cancel", orders.Cancel)
	})

	r.Route("/prospects", func(r chi.Router) {
		r.Post("/", prospects.Create)
		r.Get("/", prospects.List)
	})

	r.Route("/webhooks", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Handler())
		}
		r.Post("/courier-status", webhooks.CourierStatus)
		r.Post("/lead", webhooks.LeadRelay)
	})

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
