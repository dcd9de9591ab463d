package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/kwfilter/internal/domain"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
	catalogue "github.com/kailas-cloud/kwfilter/internal/usecase/catalog"
	filteruc "github.com/kailas-cloud/kwfilter/internal/usecase/filter"
	healthuc "github.com/kailas-cloud/kwfilter/internal/usecase/health"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 4 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the keyword filter HTTP API.
type Server struct {
	filters       *filteruc.Service
	catalog       *catalogue.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	filters *filteruc.Service,
	catalog *catalogue.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		filters: filters,
		catalog: catalog,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrInvalidResult, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest, ErrorCodeValidationFailed),
	}
	return s
}

// Routes registers the API on r.
func (s *Server) Routes(r gochi.Router) {
	r.Post("/filters/parse", s.ParseFilters)
	r.Post("/filters/toggle", s.ToggleFilter)
	r.Post("/filters/apply", s.ApplyFilters)
	r.Get("/search", s.Search)
	r.Post("/results", s.PutResults)
	r.Route("/results/{id}", func(r gochi.Router) {
		r.Put("/", s.PutResult)
		r.Get("/", s.GetResult)
		r.Delete("/", s.DeleteResult)
	})
	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// ParseFilters handles POST /filters/parse.
func (s *Server) ParseFilters(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	q := s.filters.Parse(req.Query)
	writeJSON(w, http.StatusOK, ParseResponse{Terms: q.Terms, Filters: filtersToDTO(q.Filters)})
}

// ToggleFilter handles POST /filters/toggle.
func (s *Server) ToggleFilter(w http.ResponseWriter, r *http.Request) {
	var req Filter
	if !decodeBody(w, r, &req) {
		return
	}
	f, err := filterFromDTO(req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filterToDTO(s.filters.Toggle(f)))
}

// ApplyFilters handles POST /filters/apply.
func (s *Server) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var (
		terms   string
		filters []keyword.Filter
	)
	if req.Filters == nil {
		q := s.filters.Parse(req.Query)
		terms, filters = q.Terms, q.Filters
	} else {
		var err error
		filters, err = filtersFromDTO(*req.Filters)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		terms = keyword.Clean(req.Query, filters)
	}

	out := s.filters.Apply(r.Context(), filters, resultsFromDTO(req.Results))
	writeJSON(w, http.StatusOK, filteredToDTO(terms, out))
}

// Search handles GET /search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var params SearchParams
	if err := runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &params.Q); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter q: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter limit: "+err.Error())
		return
	}

	q, out, err := s.filters.Search(r.Context(), deref(params.Q), deref(params.Limit))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filteredToDTO(q.Terms, out))
}

// PutResult handles PUT /results/{id}.
func (s *Server) PutResult(w http.ResponseWriter, r *http.Request) {
	var req Result
	if !decodeBody(w, r, &req) {
		return
	}
	id := gochi.URLParam(r, "id")
	res := resultFromDTO(id, req)

	created, err := s.catalog.Put(r.Context(), &res)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", "/results/"+id)
	}
	writeJSON(w, status, resultToDTO(&res))
}

// PutResults handles POST /results.
func (s *Server) PutResults(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out := s.catalog.PutBatch(r.Context(), resultsFromDTO(req.Results))
	writeJSON(w, http.StatusOK, batchToDTO(out))
}

// GetResult handles GET /results/{id}.
func (s *Server) GetResult(w http.ResponseWriter, r *http.Request) {
	res, err := s.catalog.Get(r.Context(), gochi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultToDTO(&res))
}

// DeleteResult handles DELETE /results/{id}.
func (s *Server) DeleteResult(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Delete(r.Context(), gochi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthToDTO(report))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			s.logger.Warn("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
