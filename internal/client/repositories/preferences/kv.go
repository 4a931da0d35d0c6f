package preferences

import (
	"context"

	"github.com/dmitrijs2005/krishi/internal/client/repositories/kv"
)

type KVRepository struct {
	kv kv.Repository
}

func NewKVRepository(r kv.Repository) *KVRepository {
	return &KVRepository{kv: r}
}

func (r *KVRepository) Language(ctx context.Context) (string, error) {
	b, err := r.kv.Get(ctx, LanguageKey)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *KVRepository) SetLanguage(ctx context.Context, code string) error {
	return r.kv.Set(ctx, LanguageKey, []byte(code))
}
