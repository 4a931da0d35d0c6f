// Package services contains the client application services. This file
// defines the credential and session manager: signup, login, session check,
// logout, and the security audit trail they write.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/krishi/internal/client/models"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/kv"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/krishi/internal/common"
	"github.com/dmitrijs2005/krishi/internal/cryptox"
	"github.com/dmitrijs2005/krishi/internal/logging"
	"github.com/dmitrijs2005/krishi/internal/timex"
	"github.com/google/uuid"
)

const DefaultSessionTTL = 7 * 24 * time.Hour

// AuthService defines the account operations available to the CLI.
//
// Contract:
//   - Signup: validate the form, store a new user, audit account_created.
//   - Login: verify credentials, open a session, audit the outcome.
//   - HasValidSession: report whether the stored session has not expired.
//   - ActiveSession: the stored session while it is valid, nil otherwise.
//   - CurrentUser: the snapshot saved by the last successful login.
//   - Logout: drop the session and the snapshot.
//   - SecurityLog: the audit trail, oldest first.
type AuthService interface {
	Signup(ctx context.Context, form models.SignupForm) (*models.User, error)
	Login(ctx context.Context, identifier, password string) (*models.User, error)
	HasValidSession(ctx context.Context) (*models.User, bool, error)
	ActiveSession(ctx context.Context) (*models.Session, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	SecurityLog(ctx context.Context) ([]models.SecurityEvent, error)
}

// Store is the part of storage.Store the services need.
type Store interface {
	KV() kv.Repository
	Atomic(ctx context.Context, fn func(ctx context.Context, repo kv.Repository) error) error
}

// TokenIssuer mints the opaque session token and checks its signature.
type TokenIssuer interface {
	Issue(userID string, issuedAt, expiresAt time.Time) (string, error)
	Verify(token string) (userID string, err error)
}

// AuthConfig carries the settings that shape sessions and audit events.
type AuthConfig struct {
	SessionTTL time.Duration
	ClientIP   string
	UserAgent  string
}

type authService struct {
	store  Store
	repos  repomanager.RepositoryManager
	hasher cryptox.PasswordHasher
	tokens TokenIssuer
	clock  timex.Clock
	logger logging.Logger
	cfg    AuthConfig
}

// NewAuthService wires the manager. A zero SessionTTL means DefaultSessionTTL.
func NewAuthService(
	store Store,
	repos repomanager.RepositoryManager,
	hasher cryptox.PasswordHasher,
	tokens TokenIssuer,
	clock timex.Clock,
	logger logging.Logger,
	cfg AuthConfig,
) AuthService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	return &authService{
		store:  store,
		repos:  repos,
		hasher: hasher,
		tokens: tokens,
		clock:  clock,
		logger: logger,
		cfg:    cfg,
	}
}

func (a *authService) event(kind models.EventKind, subject string) models.SecurityEvent {
	return models.SecurityEvent{
		Event:     kind,
		Subject:   subject,
		Timestamp: a.clock.Now().UTC(),
		UserAgent: a.cfg.UserAgent,
		IP:        a.cfg.ClientIP,
	}
}

// Signup stores a new account. Existing accounts with the same email or
// phone are not looked for.
func (a *authService) Signup(ctx context.Context, form models.SignupForm) (*models.User, error) {
	if err := ValidateSignup(&form); err != nil {
		return nil, err
	}

	encoded, err := a.hasher.Hash([]byte(form.Password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userType := form.UserType
	if userType == "" {
		userType = models.UserTypeFarmer
	}

	now := a.clock.Now().UTC()
	user := &models.User{
		ID:            "user_" + uuid.NewString(),
		Name:          form.Name,
		Email:         form.Email,
		Phone:         form.Phone,
		State:         form.State,
		District:      form.District,
		Village:       form.Village,
		Crops:         append([]string(nil), form.Crops...),
		Language:      form.Language,
		FarmSize:      form.FarmSize,
		UserType:      userType,
		Password:      encoded,
		JoinDate:      now,
		LastLogin:     now,
		AccountStatus: models.AccountStatusActive,
		Preferences:   models.DefaultPreferences(form.Language),
	}

	err = a.store.Atomic(ctx, func(ctx context.Context, tx kv.Repository) error {
		if err := a.repos.Users(tx).Append(ctx, user); err != nil {
			return err
		}
		return a.repos.SecurityLog(tx).Append(ctx, a.event(models.EventAccountCreated, user.ID))
	})
	if err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}

	a.logger.Info(ctx, "Auth service: account created", "user_id", user.ID)
	return user, nil
}

// Login opens a session for the first user whose email or phone equals
// identifier. Unknown identifiers and wrong passwords both yield
// common.ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	if err := ValidateLogin(identifier, password); err != nil {
		return nil, err
	}

	user, err := a.repos.Users(a.store.KV()).FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil || !a.verify(ctx, user, password) {
		if err := a.repos.SecurityLog(a.store.KV()).Append(ctx, a.event(models.EventLoginFailed, identifier)); err != nil {
			return nil, fmt.Errorf("audit failed login: %w", err)
		}
		a.logger.Warn(ctx, "Auth service: login failed")
		return nil, common.ErrInvalidCredentials
	}

	now := a.clock.Now().UTC()
	expires := now.Add(a.cfg.SessionTTL)
	token, err := a.tokens.Issue(user.ID, now, expires)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	user.LastLogin = now
	session := &models.Session{
		UserID:  user.ID,
		Token:   token,
		Expires: expires,
		IP:      a.cfg.ClientIP,
	}

	err = a.store.Atomic(ctx, func(ctx context.Context, tx kv.Repository) error {
		if err := a.repos.SecurityLog(tx).Append(ctx, a.event(models.EventLoginSuccess, user.ID)); err != nil {
			return err
		}
		if err := a.repos.Users(tx).Update(ctx, user); err != nil {
			return err
		}
		return a.repos.Sessions(tx).Save(ctx, session, user)
	})
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	a.logger.Info(ctx, "Auth service: login", "user_id", user.ID, "expires", expires)
	return user, nil
}

func (a *authService) verify(ctx context.Context, user *models.User, password string) bool {
	ok, err := a.hasher.Verify([]byte(password), user.Password)
	if err != nil {
		a.logger.Warn(ctx, "Auth service: stored password hash unreadable", "user_id", user.ID, "error", err)
		return false
	}
	return ok
}

// HasValidSession is true while the stored expiry lies after now and the
// token carries a valid signature for the stored user. A missing or
// unreadable session is reported as no session.
func (a *authService) HasValidSession(ctx context.Context) (*models.User, bool, error) {
	session, err := a.ActiveSession(ctx)
	if err != nil || session == nil {
		return nil, false, err
	}

	user, err := a.repos.Sessions(a.store.KV()).CurrentUser(ctx)
	if err != nil && !errors.Is(err, kv.ErrMalformed) {
		return nil, false, err
	}
	return user, true, nil
}

func (a *authService) ActiveSession(ctx context.Context) (*models.Session, error) {
	session, err := a.repos.Sessions(a.store.KV()).Get(ctx)
	if errors.Is(err, kv.ErrMalformed) {
		a.logger.Debug(ctx, "Auth service: ignoring malformed session", "error", err)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if session == nil || !session.ValidAt(a.clock.Now()) {
		return nil, nil
	}

	uid, err := a.tokens.Verify(session.Token)
	if err != nil || uid != session.UserID {
		a.logger.Warn(ctx, "Auth service: rejecting session with bad token", "user_id", session.UserID)
		return nil, nil
	}
	return session, nil
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := a.repos.Sessions(a.store.KV()).CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrNotFound
	}
	return user, nil
}

// Logout is a no-op when nobody is logged in.
func (a *authService) Logout(ctx context.Context) error {
	session, err := a.repos.Sessions(a.store.KV()).Get(ctx)
	if err != nil && !errors.Is(err, kv.ErrMalformed) {
		return err
	}

	return a.store.Atomic(ctx, func(ctx context.Context, tx kv.Repository) error {
		if err := a.repos.Sessions(tx).Clear(ctx); err != nil {
			return err
		}
		if session == nil {
			return nil
		}
		a.logger.Info(ctx, "Auth service: logout", "user_id", session.UserID)
		return a.repos.SecurityLog(tx).Append(ctx, a.event(models.EventLogout, session.UserID))
	})
}

func (a *authService) SecurityLog(ctx context.Context) ([]models.SecurityEvent, error) {
	return a.repos.SecurityLog(a.store.KV()).List(ctx)
}
