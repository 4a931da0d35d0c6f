package users

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/krishi/internal/client/models"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/kv"
	"github.com/dmitrijs2005/krishi/internal/client/storage"
	"github.com/dmitrijs2005/krishi/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*KVRepository, kv.Repository) {
	t.Helper()
	s, err := storage.Open(context.Background(), storage.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return NewKVRepository(s.KV()), s.KV()
}

func TestList_EmptyStore(t *testing.T) {
	r, _ := setupRepo(t)

	list, err := r.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestAppend_KeepsOrderAndAllowsDuplicates(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, &models.User{ID: "user_a", Email: "ravi@example.com"}))
	require.NoError(t, r.Append(ctx, &models.User{ID: "user_b", Email: "ravi@example.com"}))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "user_a", list[0].ID)
	assert.Equal(t, "user_b", list[1].ID)

	u, err := r.FindByIdentifier(ctx, "ravi@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "user_a", u.ID, "first match by insertion order")
}

func TestFindByIdentifier_PhoneAndMissing(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, &models.User{ID: "user_a", Email: "a@b.co", Phone: "9876543210"}))

	u, err := r.FindByIdentifier(ctx, "9876543210")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "user_a", u.ID)

	u, err = r.FindByIdentifier(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUpdate(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, &models.User{ID: "user_a", Name: "Ravi"}))

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, r.Update(ctx, &models.User{ID: "user_a", Name: "Ravi", LastLogin: ts}))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, ts.Equal(list[0].LastLogin))

	err = r.Update(ctx, &models.User{ID: "user_x"})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestList_Malformed(t *testing.T) {
	r, store := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, Key, []byte("oops")))

	_, err := r.List(ctx)
	require.ErrorIs(t, err, kv.ErrMalformed)
}
