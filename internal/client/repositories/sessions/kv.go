package sessions

import (
	"context"

	"github.com/dmitrijs2005/krishi/internal/client/models"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/kv"
)

type KVRepository struct {
	kv kv.Repository
}

func NewKVRepository(r kv.Repository) *KVRepository {
	return &KVRepository{kv: r}
}

func (r *KVRepository) Get(ctx context.Context) (*models.Session, error) {
	var s models.Session
	ok, err := kv.GetJSON(ctx, r.kv, SessionKey, &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func (r *KVRepository) Save(ctx context.Context, s *models.Session, u *models.User) error {
	if err := kv.SetJSON(ctx, r.kv, SessionKey, s); err != nil {
		return err
	}
	return kv.SetJSON(ctx, r.kv, CurrentUserKey, u)
}

func (r *KVRepository) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	ok, err := kv.GetJSON(ctx, r.kv, CurrentUserKey, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, SessionKey); err != nil {
		return err
	}
	return r.kv.Delete(ctx, CurrentUserKey)
}
