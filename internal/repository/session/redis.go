package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/domain"
)

const keyPrefix = "cart:"

// maxTxRetries bounds the optimistic-transaction retry loop in Update.
const maxTxRetries = 8

type redisRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Redis-backed session cart store. Carts expire after ttl
// of inactivity; every write refreshes the expiry.
func NewRedis(client *redis.Client, ttl time.Duration) Repository {
	return &redisRepo{client: client, ttl: ttl}
}

func (r *redisRepo) Load(ctx context.Context, sessionKey string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, keyPrefix+sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &domain.Cart{}, nil
		}
		return nil, fmt.Errorf("load cart %s: %w", sessionKey, err)
	}
	cart, err := decodeCart(data)
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", sessionKey, err)
	}
	return cart, nil
}

func (r *redisRepo) Save(ctx context.Context, sessionKey string, cart *domain.Cart) error {
	blob, err := encodeCart(cart)
	if err != nil {
		return fmt.Errorf("save cart %s: %w", sessionKey, err)
	}
	if err := r.client.Set(ctx, keyPrefix+sessionKey, blob, r.ttl).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", sessionKey, err)
	}
	return nil
}

// Update runs mutate against the freshest cart inside a WATCH/MULTI
// transaction. When another writer commits between the read and the write the
// transaction fails and the whole read-mutate-write cycle is retried, so
// concurrent updates of the same session merge instead of overwriting each
// other.
func (r *redisRepo) Update(ctx context.Context, sessionKey string, mutate func(cart *domain.Cart) error) (*domain.Cart, error) {
	key := keyPrefix + sessionKey
	var result *domain.Cart

	txf := func(tx *redis.Tx) error {
		cart := &domain.Cart{}
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			if cart, err = decodeCart(data); err != nil {
				return err
			}
		case errors.Is(err, redis.Nil):
			// first write for this session
		default:
			return err
		}

		if err := mutate(cart); err != nil {
			return err
		}
		blob, err := encodeCart(cart)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, blob, r.ttl)
			return nil
		})
		if err == nil {
			result = cart
		}
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, fmt.Errorf("update cart %s: %w", sessionKey, err)
	}
	return nil, fmt.Errorf("update cart %s: gave up after %d conflicting writes", sessionKey, maxTxRetries)
}

func (r *redisRepo) Delete(ctx context.Context, sessionKey string) error {
	if err := r.client.Del(ctx, keyPrefix+sessionKey).Err(); err != nil {
		return fmt.Errorf("delete cart %s: %w", sessionKey, err)
	}
	return nil
}
