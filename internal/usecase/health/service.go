package health

import (
	"context"
	"sort"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	checkers map[string]Checker
}

// New creates a Service that checks the database.
func New(database Checker) *Service {
	s := &Service{checkers: make(map[string]Checker)}
	if database != nil {
		s.checkers["database"] = database
	}
	return s
}

// WithCheck adds a named component check.
func (s *Service) WithCheck(name string, c Checker) *Service {
	s.checkers[name] = c
	return s
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]CheckResult, len(names))
	failed := 0
	for _, name := range names {
		if err := s.checkers[name].Ping(ctx); err != nil {
			checks[name] = CheckError
			failed++
		} else {
			checks[name] = CheckOK
		}
	}

	status := Healthy
	switch {
	case failed > 0 && failed == len(names):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}
