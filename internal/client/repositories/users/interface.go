// Package users keeps the registered accounts as one JSON array under
// ks_premium_users, in insertion order.
package users

import (
	"context"

	"github.com/dmitrijs2005/krishi/internal/client/models"
)

const Key = "ks_premium_users"

type Repository interface {
	// List returns every user in insertion order; an empty store yields an empty slice.
	List(ctx context.Context) ([]models.User, error)
	Append(ctx context.Context, u *models.User) error
	// FindByIdentifier returns the first user whose email or phone equals
	// identifier, or nil when none does.
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	// Update replaces the first record with the same id. Unknown ids are common.ErrNotFound.
	Update(ctx context.Context, u *models.User) error
}
