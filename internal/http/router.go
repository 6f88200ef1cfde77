package http

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"scholarstream/internal/common"
	"scholarstream/internal/http/handlers"
	"scholarstream/internal/http/metrics"
	httpmw "scholarstream/internal/http/middleware"
	"scholarstream/internal/http/response"
)

type RouterDependencies struct {
	SystemHandler      *handlers.SystemHandler
	UserHandler        *handlers.UserHandler
	ScholarshipHandler *handlers.ScholarshipHandler
	ApplicationHandler *handlers.ApplicationHandler
	ReviewHandler      *handlers.ReviewHandler
	PaymentHandler     *handlers.PaymentHandler
	MetricsHandler     *handlers.MetricsHandler
	PaymentLimiter     httpmw.Limiter
	Metrics            *metrics.Collector
	Logger             *zap.Logger
	RequestTimeout     time.Duration
	AllowedOrigins     []string
}

type Router struct {
	deps    RouterDependencies
	handler http.Handler
	payment http.Handler
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	r := &Router{deps: deps}
	r.payment = httpmw.RateLimit(deps.PaymentLimiter, httpmw.ClientIP)(http.HandlerFunc(deps.PaymentHandler.CreateIntent))
	r.handler = httpmw.Chain(r.baseHandler(),
		httpmw.RequestID(deps.Logger),
		httpmw.Logging,
		httpmw.CORS(deps.AllowedOrigins),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover,
		httpmw.Metrics(deps.Metrics),
		httpmw.Timeout(deps.RequestTimeout),
	)
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/":
			r.deps.SystemHandler.Root(w, req)
			return
		case req.Method == http.MethodGet && path == "/health":
			r.deps.SystemHandler.Health(w, req)
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/create-payment-intent":
			r.payment.ServeHTTP(w, req)
			return
		case strings.HasPrefix(path, "/users"):
			if r.handleUsers(w, req) {
				return
			}
		case strings.HasPrefix(path, "/scholarships"):
			if r.handleScholarships(w, req) {
				return
			}
		case strings.HasPrefix(path, "/applications"):
			if r.handleApplications(w, req) {
				return
			}
		case strings.HasPrefix(path, "/reviews"):
			if r.handleReviews(w, req) {
				return
			}
		}

		response.Error(w, req, common.NewError(common.CodeNotFound, "not found", nil))
	})
}

func (r *Router) handleUsers(w http.ResponseWriter, req *http.Request) bool {
	h := r.deps.UserHandler
	path := req.URL.Path
	switch {
	case req.Method == http.MethodPost && path == "/users":
		h.Create(w, req)
	case req.Method == http.MethodGet && path == "/users":
		h.List(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/users/"):
		h.Get(w, req)
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/users/"):
		h.SetRole(w, req)
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/users/"):
		h.Delete(w, req)
	default:
		return false
	}
	return true
}

func (r *Router) handleScholarships(w http.ResponseWriter, req *http.Request) bool {
	h := r.deps.ScholarshipHandler
	path := req.URL.Path
	switch {
	case req.Method == http.MethodPost && path == "/scholarships":
		h.Create(w, req)
	case req.Method == http.MethodGet && path == "/scholarships":
		h.List(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/scholarships/"):
		h.Get(w, req)
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/scholarships/"):
		h.Update(w, req)
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/scholarships/"):
		h.Delete(w, req)
	default:
		return false
	}
	return true
}

// The GET form of /applications/{x} takes a user id; the write forms take an application id.
func (r *Router) handleApplications(w http.ResponseWriter, req *http.Request) bool {
	h := r.deps.ApplicationHandler
	path := req.URL.Path
	switch {
	case req.Method == http.MethodPost && path == "/applications":
		h.Create(w, req)
	case req.Method == http.MethodGet && path == "/applications":
		h.List(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/applications/"):
		h.ListByUser(w, req)
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/"):
		h.Update(w, req)
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/applications/"):
		h.Delete(w, req)
	default:
		return false
	}
	return true
}

func (r *Router) handleReviews(w http.ResponseWriter, req *http.Request) bool {
	h := r.deps.ReviewHandler
	path := req.URL.Path
	switch {
	case req.Method == http.MethodPost && path == "/reviews":
		h.Create(w, req)
	case req.Method == http.MethodGet && path == "/reviews":
		h.List(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/reviews/"):
		h.ListByUser(w, req)
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/reviews/"):
		h.Update(w, req)
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/reviews/"):
		h.Delete(w, req)
	default:
		return false
	}
	return true
}
