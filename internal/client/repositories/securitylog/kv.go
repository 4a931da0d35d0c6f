package securitylog

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/krishi/internal/client/models"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/kv"
)

type KVRepository struct {
	kv    kv.Repository
	limit int
}

// NewKVRepository keeps at most limit events; limit <= 0 means DefaultLimit.
func NewKVRepository(r kv.Repository, limit int) *KVRepository {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &KVRepository{kv: r, limit: limit}
}

func (r *KVRepository) List(ctx context.Context) ([]models.SecurityEvent, error) {
	events := []models.SecurityEvent{}
	if _, err := kv.GetJSON(ctx, r.kv, Key, &events); err != nil {
		return nil, fmt.Errorf("load security log: %w", err)
	}
	return events, nil
}

func (r *KVRepository) Append(ctx context.Context, e models.SecurityEvent) error {
	events, err := r.List(ctx)
	if err != nil {
		return err
	}
	events = append(events, e)
	if over := len(events) - r.limit; over > 0 {
		events = events[over:]
	}
	return kv.SetJSON(ctx, r.kv, Key, events)
}
