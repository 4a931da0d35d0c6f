// Package sessions stores the one active session and the snapshot of the
// user it belongs to.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/krishi/internal/client/models"
)

const (
	SessionKey     = "ks_premium_session"
	CurrentUserKey = "ks_premium_current_user"
)

type Repository interface {
	// Get returns nil when no session is stored.
	Get(ctx context.Context) (*models.Session, error)
	// Save overwrites both the session and the current-user snapshot.
	Save(ctx context.Context, s *models.Session, u *models.User) error
	// CurrentUser returns nil when no snapshot is stored.
	CurrentUser(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}
