package probe

import (
	"context"
	"log/slog"
	"net"
	"strings"
	"time"

	"subdesk/internal/logging"
)

// DefaultTimeout bounds a single reachability probe.
const DefaultTimeout = 300 * time.Millisecond

// NetworkProbe reports host reachability and local volume readiness.
type NetworkProbe interface {
	IsHostReachable(ctx context.Context, host string) bool
	IsVolumeReady(volume string) bool
}

// System probes the real network and filesystem.
type System struct {
	timeout  time.Duration
	ports    []string
	resolver *net.Resolver
	dialer   *net.Dialer
	logger   *slog.Logger
}

// Option customizes the system probe.
type Option func(*System)

// WithPorts overrides the TCP ports dialed to confirm a host is alive.
func WithPorts(ports ...string) Option {
	return func(s *System) {
		if len(ports) > 0 {
			s.ports = append([]string(nil), ports...)
		}
	}
}

// WithLogger attaches a logger for probe diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *System) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSystem constructs a probe. A non-positive timeout falls back to DefaultTimeout.
func NewSystem(timeout time.Duration, opts ...Option) *System {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &System{
		timeout:  timeout,
		ports:    []string{"445", "139"},
		resolver: net.DefaultResolver,
		dialer:   &net.Dialer{},
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "probe")
	return s
}

// IsHostReachable resolves host and reports whether any probe port accepts a
// connection before the timeout expires.
func (s *System) IsHostReachable(ctx context.Context, host string) bool {
	host = strings.TrimSpace(host)
	if host == "" {
		return false
	}
	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	addrs, err := s.resolver.LookupHost(probeCtx, host)
	if err != nil || len(addrs) == 0 {
		s.logger.Debug("host lookup failed",
			logging.String("host", host),
			logging.Error(err),
		)
		return false
	}

	for _, addr := range addrs {
		for _, port := range s.ports {
			conn, err := s.dialer.DialContext(probeCtx, "tcp", net.JoinHostPort(addr, port))
			if err != nil {
				continue
			}
			_ = conn.Close()
			return true
		}
	}
	s.logger.Debug("host unreachable",
		logging.String("host", host),
		logging.Int("addresses", len(addrs)),
		logging.Duration("timeout", s.timeout),
	)
	return false
}

// IsVolumeReady reports whether the volume rooted at volume can be queried.
func (s *System) IsVolumeReady(volume string) bool {
	if strings.TrimSpace(volume) == "" {
		return false
	}
	return volumeReady(volume)
}
