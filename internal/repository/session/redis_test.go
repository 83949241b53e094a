package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func setupTestRedis(t *testing.T) (Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedis(client, time.Hour), mr
}

func TestLoadMissingSessionReturnsEmptyCart(t *testing.T) {
	repo, _ := setupTestRedis(t)

	cart, err := repo.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, int64(0), cart.TotalCents())
}

func TestSaveAndLoad(t *testing.T) {
	repo, _ := setupTestRedis(t)
	ctx := context.Background()

	cart := &domain.Cart{}
	cart.Upsert("p1", 2, 1000, false)
	cart.Upsert("p2", 1, 500, false)
	require.NoError(t, repo.Save(ctx, "sess-1", cart))

	got, err := repo.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "p1", got.Lines[0].ProductID)
	assert.Equal(t, int64(2500), got.TotalCents())
}

func TestSaveStoresSpecifiedBlobSchema(t *testing.T) {
	repo, mr := setupTestRedis(t)
	ctx := context.Background()

	cart := &domain.Cart{}
	cart.Upsert("prod-9", 3, 1999, false)
	require.NoError(t, repo.Save(ctx, "sess-2", cart))

	raw, err := mr.Get("cart:sess-2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"prod-9":{"quantity":3,"price":"19.99"}}`, raw)
}

func TestUpdateCreatesCartOnFirstWrite(t *testing.T) {
	repo, _ := setupTestRedis(t)
	ctx := context.Background()

	cart, err := repo.Update(ctx, "fresh", func(c *domain.Cart) error {
		c.Upsert("p1", 1, 100, false)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Len())

	got, err := repo.Load(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
}

func TestUpdateMutateErrorLeavesCartUntouched(t *testing.T) {
	repo, _ := setupTestRedis(t)
	ctx := context.Background()

	seed := &domain.Cart{}
	seed.Upsert("p1", 1, 100, false)
	require.NoError(t, repo.Save(ctx, "sess-3", seed))

	_, err := repo.Update(ctx, "sess-3", func(c *domain.Cart) error {
		c.Clear()
		return domain.ErrNotFound
	})
	require.Error(t, err)

	got, err := repo.Load(ctx, "sess-3")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
}

func TestConcurrentUpdatesDoNotLoseIncrements(t *testing.T) {
	repo, _ := setupTestRedis(t)
	ctx := context.Background()

	// Two near-simultaneous add_or_update(qty=1) calls must end at quantity 2.
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "sess-race", func(c *domain.Cart) error {
				c.Upsert("p1", 1, 100, false)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Load(ctx, "sess-race")
	require.NoError(t, err)
	line, ok := got.Line("p1")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
}

func TestDelete(t *testing.T) {
	repo, _ := setupTestRedis(t)
	ctx := context.Background()

	cart := &domain.Cart{}
	cart.Upsert("p1", 1, 100, false)
	require.NoError(t, repo.Save(ctx, "sess-4", cart))
	require.NoError(t, repo.Delete(ctx, "sess-4"))

	got, err := repo.Load(ctx, "sess-4")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())

	// Deleting again is a no-op.
	require.NoError(t, repo.Delete(ctx, "sess-4"))
}
