package securitylog

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/dmitrijs2005/krishi/internal/client/models"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/kv"
	"github.com/dmitrijs2005/krishi/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T, limit int) *KVRepository {
	t.Helper()
	s, err := storage.Open(context.Background(), storage.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return NewKVRepository(s.KV(), limit)
}

func event(i int) models.SecurityEvent {
	return models.SecurityEvent{
		Event:     models.EventLoginFailed,
		Subject:   strconv.Itoa(i),
		Timestamp: time.Unix(int64(i), 0).UTC(),
		UserAgent: "test",
		IP:        "127.0.0.1",
	}
}

func TestList_Empty(t *testing.T) {
	r := setupRepo(t, 0)

	events, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAppend_EvictsOldestAtDefaultLimit(t *testing.T) {
	r := setupRepo(t, 0)
	ctx := context.Background()

	seed := make([]models.SecurityEvent, 0, DefaultLimit)
	for i := 1; i <= DefaultLimit; i++ {
		seed = append(seed, event(i))
	}
	require.NoError(t, kv.SetJSON(ctx, r.kv, Key, seed))

	require.NoError(t, r.Append(ctx, event(DefaultLimit+1)))

	events, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, DefaultLimit)
	assert.Equal(t, "2", events[0].Subject)
	assert.Equal(t, strconv.Itoa(DefaultLimit+1), events[len(events)-1].Subject)
	for i := 1; i < len(events); i++ {
		assert.True(t, events[i-1].Timestamp.Before(events[i].Timestamp), "order preserved")
	}
}

func TestAppend_SmallLimit(t *testing.T) {
	r := setupRepo(t, 3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, r.Append(ctx, event(i)))
	}

	events, err := r.List(ctx)
	require.NoError(t, err)
	subjects := make([]string, 0, len(events))
	for _, e := range events {
		subjects = append(subjects, e.Subject)
	}
	assert.Equal(t, []string{"3", "4", "5"}, subjects)
}
