package auth

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"inventar.org/internal/inventory"
)

// DemoPassword is the only password the mocked credential check accepts.
// The login flow simulates an identity provider; it is not a security
// boundary (spelled out in the dashboard's threat model).
const DemoPassword = "password"

const (
	defaultAccessTTL    = 15 * time.Minute
	defaultRefreshTTL   = 24 * time.Hour * 14
	defaultLoginLatency = 800 * time.Millisecond
)

// TokenPair represents access and refresh tokens along with their expirations.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// Session is the result of a successful login.
type Session struct {
	Principal Principal
	Tokens    TokenPair
}

// Service is the mocked token issuer. It resolves users against the current
// state snapshot and simulates identity-provider latency; callers cancel
// in-flight logins through the context.
type Service struct {
	snapshot   func() inventory.State
	now        func() time.Time
	latency    time.Duration
	limiter    *rate.Limiter
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service)

// WithLatency overrides the simulated identity-provider delay.
func WithLatency(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d >= 0 {
			s.latency = d
		}
	}
}

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// WithLoginLimit replaces the default login rate limiter.
func WithLoginLimit(limit rate.Limit, burst int) ServiceOption {
	return func(s *Service) { s.limiter = rate.NewLimiter(limit, burst) }
}

// WithAccessTTL configures access token lifetime.
func WithAccessTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.accessTTL = ttl
		}
	}
}

// WithRefreshTTL configures refresh token lifetime.
func WithRefreshTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.refreshTTL = ttl
		}
	}
}

// NewService constructs the mocked issuer over a snapshot accessor.
func NewService(snapshot func() inventory.State, opts ...ServiceOption) *Service {
	s := &Service{
		snapshot:   snapshot,
		now:        func() time.Time { return time.Now().UTC() },
		latency:    defaultLoginLatency,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 5),
		accessTTL:  defaultAccessTTL,
		refreshTTL: defaultRefreshTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login validates credentials against the snapshot's user list and issues a
// token pair. The simulated latency is cancellable via ctx.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	if !s.limiter.Allow() {
		return Session{}, ErrRateLimited
	}
	if err := s.simulateLatency(ctx); err != nil {
		return Session{}, err
	}

	state := s.snapshot()
	var user inventory.User
	found := false
	for _, u := range state.Users {
		if u.Username == username {
			user = u
			found = true
			break
		}
	}
	if !found || password != DemoPassword {
		return Session{}, ErrInvalidCredentials
	}
	if user.Status != inventory.UserActive {
		return Session{}, ErrInvalidCredentials
	}

	principal, err := ResolvePrincipal(state, user.ID)
	if err != nil {
		return Session{}, err
	}
	tokens, err := s.mintTokens(principal)
	if err != nil {
		return Session{}, err
	}
	return Session{Principal: principal, Tokens: tokens}, nil
}

// Refresh validates a refresh token and issues a fresh pair for its subject.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return Session{}, err
	}
	claims, err := ParseAndValidate(refreshToken)
	if err != nil {
		return Session{}, err
	}
	principal, err := ResolvePrincipal(s.snapshot(), claims.Subject)
	if err != nil {
		return Session{}, err
	}
	tokens, err := s.mintTokens(principal)
	if err != nil {
		return Session{}, err
	}
	return Session{Principal: principal, Tokens: tokens}, nil
}

func (s *Service) mintTokens(principal Principal) (TokenPair, error) {
	now := s.now()
	privileges := principal.PrivilegeNames()

	access, err := GenerateToken(principal.User.ID, principal.Group.Name, privileges, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := GenerateToken(principal.User.ID, principal.Group.Name, nil, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  now.Add(s.accessTTL),
		RefreshExpiresAt: now.Add(s.refreshTTL),
	}, nil
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
