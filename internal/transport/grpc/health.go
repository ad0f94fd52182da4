package grpc_server

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const ServiceName = "courseadmin"

type Check struct {
	Name string
	Fn   func(ctx context.Context) error
}

// HealthProber runs the dependency checks on a timer and publishes the
// result through the standard gRPC health service and Serving().
type HealthProber struct {
	server   *health.Server
	checks   []Check
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
	serving  atomic.Bool
}

func NewHealthProber(checks []Check, interval time.Duration, logger zerolog.Logger) *HealthProber {
	p := &HealthProber{
		server:   health.NewServer(),
		checks:   checks,
		interval: interval,
		timeout:  3 * time.Second,
		logger:   logger.With().Str("component", "health").Logger(),
	}
	p.setStatus(false)
	return p
}

func (p *HealthProber) Server() *health.Server {
	return p.server
}

func (p *HealthProber) Serving() bool {
	return p.serving.Load()
}

func (p *HealthProber) setStatus(ok bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		status = healthpb.HealthCheckResponse_SERVING
	}
	p.server.SetServingStatus("", status)
	p.server.SetServingStatus(ServiceName, status)
	p.serving.Store(ok)
}

// Probe runs every check once.
func (p *HealthProber) Probe(ctx context.Context) bool {
	ok := true
	for _, check := range p.checks {
		cctx, cancel := context.WithTimeout(ctx, p.timeout)
		err := check.Fn(cctx)
		cancel()
		if err != nil {
			ok = false
			p.logger.Warn().Err(err).Str("check", check.Name).Msg("Health check failed")
		}
	}

	if ok != p.Serving() {
		p.logger.Info().Bool("serving", ok).Msg("Health status changed")
	}
	p.setStatus(ok)
	return ok
}

func (p *HealthProber) Run(ctx context.Context) {
	p.Probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.server.Shutdown()
			p.serving.Store(false)
			return
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}

func NewServer(p *HealthProber) *grpc.Server {
	s := grpc.NewServer()
	healthpb.RegisterHealthServer(s, p.Server())
	reflection.Register(s)
	return s
}
