package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/krishi/internal/client/models"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/kv"
	"github.com/dmitrijs2005/krishi/internal/common"
)

type KVRepository struct {
	kv kv.Repository
}

func NewKVRepository(r kv.Repository) *KVRepository {
	return &KVRepository{kv: r}
}

func (r *KVRepository) List(ctx context.Context) ([]models.User, error) {
	list := []models.User{}
	if _, err := kv.GetJSON(ctx, r.kv, Key, &list); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return list, nil
}

// Append does not check for an existing email or phone.
func (r *KVRepository) Append(ctx context.Context, u *models.User) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	list = append(list, *u)
	return kv.SetJSON(ctx, r.kv, Key, list)
}

func (r *KVRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Matches(identifier) {
			return &list[i], nil
		}
	}
	return nil, nil
}

func (r *KVRepository) Update(ctx context.Context, u *models.User) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == u.ID {
			list[i] = *u
			return kv.SetJSON(ctx, r.kv, Key, list)
		}
	}
	return fmt.Errorf("user %s: %w", u.ID, common.ErrNotFound)
}
