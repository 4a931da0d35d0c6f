package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/krishi/internal/client/models"
)

const (
	DefaultLoginDelay  = 1500 * time.Millisecond
	DefaultSignupDelay = 2 * time.Second
)

// LatencyConfig sets the artificial round trip added before each call.
// Zero disables the delay for that call.
type LatencyConfig struct {
	Login  time.Duration
	Signup time.Duration
}

type latencyService struct {
	AuthService
	cfg LatencyConfig
}

// WithLatency makes svc behave like a remote backend: Login and Signup wait
// for the configured delay before delegating. Input is validated before the
// wait, so validation errors come back at once. A cancelled ctx ends the
// wait with ctx.Err().
func WithLatency(svc AuthService, cfg LatencyConfig) AuthService {
	return &latencyService{AuthService: svc, cfg: cfg}
}

func (l *latencyService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	if err := ValidateLogin(identifier, password); err != nil {
		return nil, err
	}
	if err := wait(ctx, l.cfg.Login); err != nil {
		return nil, err
	}
	return l.AuthService.Login(ctx, identifier, password)
}

func (l *latencyService) Signup(ctx context.Context, form models.SignupForm) (*models.User, error) {
	check := form
	if err := ValidateSignup(&check); err != nil {
		return nil, err
	}
	if err := wait(ctx, l.cfg.Signup); err != nil {
		return nil, err
	}
	return l.AuthService.Signup(ctx, form)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
