package handler

import (
	"net/http"

	"github.com/Shivanand-hulikatti/party-events/internal/metrics"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterConfig collects what NewRouter wires together.
type RouterConfig struct {
	Parties    *PartyHandler
	Events     *EventHandler
	Log        zerolog.Logger
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	CORSOrigin string
}

// NewRouter builds the HTTP routes and global middleware stack.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(cfg.Log))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	// Inside Logger and Metrics so a recovered panic is still logged and counted.
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(cfg.CORSOrigin))

	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", Status)

		r.Route("/parties", func(r chi.Router) {
			r.Get("/", cfg.Parties.ListParties)
			r.Get("/{party}", cfg.Parties.GetParty)
			r.Get("/{party}/events", cfg.Events.ListEvents)
			r.Get("/{party}/events/tags/{tags}", cfg.Events.ListTaggedEvents)
		})
	})

	return r
}
