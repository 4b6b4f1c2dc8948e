package connectivity

import (
	"context"
	"log/slog"
	"net"
	"time"
)

// DefaultProbeInterval how often the prober samples the platform signal
const DefaultProbeInterval = 5 * time.Second

// Checker samples the platform signal
type Checker func(ctx context.Context) bool

// Prober periodically samples a Checker and feeds the result into a Monitor
type Prober struct {
	monitor  *Monitor
	check    Checker
	logger   *slog.Logger
	interval time.Duration
}

// NewProber creates a prober. A non-positive interval falls back to DefaultProbeInterval.
func NewProber(monitor *Monitor, check Checker, interval time.Duration, logger *slog.Logger) *Prober {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &Prober{
		monitor:  monitor,
		check:    check,
		interval: interval,
		logger:   logger,
	}
}

// Run samples immediately and then on every tick until ctx is done
func (p *Prober) Run(ctx context.Context) {
	p.monitor.Set(p.check(ctx))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.monitor.Set(p.check(ctx))
		case <-ctx.Done():
			p.logger.Debug("Connectivity prober stopped")
			return
		}
	}
}

// interfaces подменяется в тестах
var interfaces = net.Interfaces

// InterfaceChecker reports whether some non-loopback interface is up and has an address.
// This mirrors the browser's navigator.onLine: it says nothing about remote reachability.
func InterfaceChecker(ctx context.Context) bool {
	ifaces, err := interfaces()
	if err != nil {
		return false
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		return true
	}

	return false
}

// DialChecker returns a stricter Checker that treats the network as online
// only when a TCP connection to addr can be established within timeout
func DialChecker(addr string, timeout time.Duration) Checker {
	return func(ctx context.Context) bool {
		dialer := net.Dialer{Timeout: timeout}
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}
}
