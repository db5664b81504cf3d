package core

import (
	"context"
	"net/http"
	"time"
)

// HealthProbe checks the availability of a single dependency.
type HealthProbe interface {
	// Name identifies the dependency in the health payload.
	Name() string
	// Check returns nil when the dependency is reachable.
	Check(ctx context.Context) error
}

// HealthProbeFunc adapts a function to the HealthProbe interface.
type HealthProbeFunc struct {
	ProbeName string
	Fn        func(ctx context.Context) error
}

func (p HealthProbeFunc) Name() string                    { return p.ProbeName }
func (p HealthProbeFunc) Check(ctx context.Context) error { return p.Fn(ctx) }

type healthStatus struct {
	Status      string            `json:"status"`
	Version     string            `json:"version"`
	Commit      string            `json:"commit"`
	Environment string            `json:"environment"`
	Checks      map[string]string `json:"checks,omitempty"`
}

// HandleHealth reports service liveness and the status of each registered
// dependency probe. Returns 503 when any probe fails so load balancers can
// rotate the instance out.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := healthStatus{
		Status:      "ok",
		Version:     s.Config.Build.Version,
		Commit:      s.Config.Build.Commit,
		Environment: s.Config.Environment,
		Checks:      make(map[string]string, len(s.HealthProbes)),
	}

	httpStatus := http.StatusOK
	for _, probe := range s.HealthProbes {
		if err := probe.Check(ctx); err != nil {
			status.Checks[probe.Name()] = err.Error()
			status.Status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		} else {
			status.Checks[probe.Name()] = "ok"
		}
	}

	JSON(w, r, httpStatus, status)
}
