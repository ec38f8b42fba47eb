// Package api implements the HTTP surface of the service.
//
// Routes:
//
//	POST   /internships | /jobs | /hackathons | /scholarships | /learning   create or refresh one opportunity
//	GET    /internships | /jobs | /hackathons | /scholarships | /learning   filtered, paginated listing
//	GET    /{type}/featured                                                  featured active items of a type
//	GET    /work/organization/{name}                                         work items by organization or company
//	GET    /work/expiring?days=N                                             work items whose deadline is near
//	GET    /events/upcoming?days=N                                           events taking place soon
//	GET    /events/free?type=T                                               unpaid events
//	GET    /opportunities/stats                                              counts per type and status
//	POST   /opportunities/batch                                              mixed batch ingestion
//	GET    /opportunities/{id}                                               fetch by id, counts a view
//	PATCH  /opportunities/{id}                                               partial update
//	DELETE /opportunities/{id}                                               delete (work) or archive (event)
//	GET    /health                                                           liveness probe
//	GET    /metrics                                                          Prometheus metrics
package api

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"campus_connect/internal/domain"
	"campus_connect/internal/ratelimit"
	"campus_connect/internal/service"
)

const version = "1.0.0"

// Limiter counts requests per client and tier.
type Limiter interface {
	Allow(ctx context.Context, tier ratelimit.Tier, client string) (ratelimit.Decision, error)
}

type Options struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
	// TrustProxy takes the client address from X-Forwarded-For.
	TrustProxy bool
	// Diagnostic exposes internal error detail in 500 responses.
	Diagnostic bool
}

type Server struct {
	opportunities *service.OpportunityService
	resolver      *service.Resolver
	batch         *service.BatchService
	limiter       Limiter
	logger        *slog.Logger
	opts          Options
}

// NewServer wires the handlers. limiter may be nil, in which case requests
// are not rate limited.
func NewServer(
	opportunities *service.OpportunityService,
	resolver *service.Resolver,
	batch *service.BatchService,
	limiter Limiter,
	logger *slog.Logger,
	opts Options,
) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 10 << 20
	}
	return &Server{
		opportunities: opportunities,
		resolver:      resolver,
		batch:         batch,
		limiter:       limiter,
		logger:        logger.With("component", "api"),
		opts:          opts,
	}
}

var (
	workRoutes = map[string]domain.OpportunityType{
		"/internships": domain.TypeInternship,
		"/jobs":        domain.TypeJob,
	}
	eventRoutes = map[string]domain.OpportunityType{
		"/hackathons":   domain.TypeHackathon,
		"/scholarships": domain.TypeScholarship,
		"/learning":     domain.TypeLearning,
	}
)

// Handler returns the routed handler wrapped in the middleware pipeline.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	var endpoints []string
	handle := func(pattern string, h http.Handler) {
		mux.Handle(pattern, h)
		endpoints = append(endpoints, pattern)
	}

	for path, typ := range workRoutes {
		handle("POST "+path, s.limit(ratelimit.TierWrite, s.createWork(typ)))
		handle("GET "+path, s.limit(ratelimit.TierRead, s.listWork(typ)))
		handle("GET "+path+"/featured", s.limit(ratelimit.TierRead, s.featured(typ)))
	}
	for path, typ := range eventRoutes {
		handle("POST "+path, s.limit(ratelimit.TierWrite, s.createEvent(typ)))
		handle("GET "+path, s.limit(ratelimit.TierRead, s.listEvents(typ)))
		handle("GET "+path+"/featured", s.limit(ratelimit.TierRead, s.featured(typ)))
	}

	handle("GET /work/organization/{name}", s.limit(ratelimit.TierRead, http.HandlerFunc(s.byOrganization)))
	handle("GET /work/expiring", s.limit(ratelimit.TierRead, http.HandlerFunc(s.expiring)))
	handle("GET /events/upcoming", s.limit(ratelimit.TierRead, http.HandlerFunc(s.upcoming)))
	handle("GET /events/free", s.limit(ratelimit.TierRead, http.HandlerFunc(s.free)))

	handle("GET /opportunities/stats", s.limit(ratelimit.TierRead, http.HandlerFunc(s.stats)))
	handle("POST /opportunities/batch", s.limit(ratelimit.TierBatch, http.HandlerFunc(s.ingestBatch)))
	handle("GET /opportunities/{id}", s.limit(ratelimit.TierRead, http.HandlerFunc(s.getOpportunity)))
	handle("PATCH /opportunities/{id}", s.limit(ratelimit.TierWrite, http.HandlerFunc(s.patchOpportunity)))
	handle("DELETE /opportunities/{id}", s.limit(ratelimit.TierWrite, http.HandlerFunc(s.deleteOpportunity)))

	handle("GET /health", http.HandlerFunc(healthHandler))
	handle("GET /metrics", promhttp.Handler())

	sort.Strings(endpoints)
	mux.Handle("/", notFound(endpoints))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:         600,
	})

	var h http.Handler = mux
	h = s.instrument(h)
	h = s.logRequests(h)
	h = corsMiddleware.Handler(h)
	h = s.recoverPanics(h)
	return h
}

// notFound answers unknown routes with the list of known ones.
func notFound(endpoints []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":     "route not found: " + r.Method + " " + r.URL.Path,
			"endpoints": endpoints,
		})
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "campus-connect",
		"version": version,
	})
}
