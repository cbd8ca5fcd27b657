package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/smartuniversity/campusctl/internal/client/api"
)

// probeTimeout caps each individual health probe so one slow service cannot
// stall the whole report.
const probeTimeout = 5 * time.Second

// healthEndpoints lists every platform service with its health path behind
// the gateway.
var healthEndpoints = []struct {
	name string
	path string
}{
	{"gateway", "/actuator/health"},
	{"auth", "/auth/actuator/health"},
	{"booking", "/booking/actuator/health"},
	{"marketplace", "/market/actuator/health"},
	{"exam", "/exam/actuator/health"},
	{"dashboard", "/dashboard/actuator/health"},
}

// ServiceHealth is the probe result for a single service.
type ServiceHealth struct {
	Name string
	Up   bool
}

// HealthService probes all platform services concurrently. A service that
// fails or times out is reported as down, never as an error.
type HealthService interface {
	CheckAll(ctx context.Context) []ServiceHealth
}

type healthService struct {
	api *api.Client
}

func NewHealthService(client *api.Client) HealthService {
	return &healthService{api: client}
}

func (h *healthService) CheckAll(ctx context.Context) []ServiceHealth {
	results := make([]ServiceHealth, len(healthEndpoints))

	g, ctx := errgroup.WithContext(ctx)
	for i, ep := range healthEndpoints {
		g.Go(func() error {
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			defer cancel()
			err := h.api.Ping(probeCtx, ep.path)
			results[i] = ServiceHealth{Name: ep.name, Up: err == nil}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
