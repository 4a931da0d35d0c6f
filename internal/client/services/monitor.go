package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/krishi/internal/client/models"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/securitylog"
	"github.com/dmitrijs2005/krishi/internal/logging"
	"github.com/dmitrijs2005/krishi/internal/timex"
)

const (
	DefaultSecurityCheckInterval = 30 * time.Second

	failedLoginThreshold = 5
	failedLoginWindow    = 15 * time.Minute
)

// Alert names a subject with too many recent failed logins.
type Alert struct {
	Subject  string
	Failures int
}

// SecurityMonitor periodically scans the audit trail for repeated failed
// logins. It only reports; logins are never blocked.
type SecurityMonitor struct {
	log    securitylog.Repository
	clock  timex.Clock
	logger logging.Logger
}

func NewSecurityMonitor(log securitylog.Repository, clock timex.Clock, logger logging.Logger) *SecurityMonitor {
	return &SecurityMonitor{log: log, clock: clock, logger: logger}
}

// Check returns one Alert per subject with at least five login_failed events
// in the last fifteen minutes, in order of first appearance.
func (m *SecurityMonitor) Check(ctx context.Context) ([]Alert, error) {
	events, err := m.log.List(ctx)
	if err != nil {
		return nil, err
	}

	since := m.clock.Now().Add(-failedLoginWindow)
	counts := make(map[string]int)
	var order []string
	for _, e := range events {
		if e.Event != models.EventLoginFailed || e.Timestamp.Before(since) {
			continue
		}
		if counts[e.Subject] == 0 {
			order = append(order, e.Subject)
		}
		counts[e.Subject]++
	}

	var alerts []Alert
	for _, s := range order {
		if counts[s] >= failedLoginThreshold {
			alerts = append(alerts, Alert{Subject: s, Failures: counts[s]})
		}
	}
	return alerts, nil
}

// Run calls Check every interval until ctx is done.
func (m *SecurityMonitor) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSecurityCheckInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			alerts, err := m.Check(ctx)
			if err != nil {
				m.logger.Error(ctx, "Security monitor: check failed", "error", err)
				continue
			}
			for _, a := range alerts {
				m.logger.Warn(ctx, "Security monitor: repeated failed logins", "subject", a.Subject, "failures", a.Failures)
			}
		}
	}
}
