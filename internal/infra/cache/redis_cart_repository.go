// Package cache keeps staff carts in Redis, or in process memory when Redis is not configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"kitchen/config"
	"kitchen/internal/domain/entity"
	"kitchen/internal/domain/lifecycle"
	"kitchen/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const cartKeyPrefix = "kitchen:cart:"

type redisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartRepository stores each cart as JSON under kitchen:cart:<owner>, refreshing the TTL on every save.
func NewRedisCartRepository(client *redis.Client, ttl time.Duration) repository.CartRepository {
	return &redisCartRepository{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("%s%s", cartKeyPrefix, ownerID)
}

func (r *redisCartRepository) GetCart(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	raw, err := r.client.Get(ctx, cartKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to read cart")
	}

	var cart entity.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart")
	}

	return &cart, nil
}

func (r *redisCartRepository) SaveCart(ctx context.Context, cart *entity.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := r.client.Set(ctx, cartKey(cart.OwnerID), raw, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

func (r *redisCartRepository) DeleteCart(ctx context.Context, ownerID uuid.UUID) error {
	if err := r.client.Del(ctx, cartKey(ownerID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}

// Params holds dependencies for the cart store
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCartRepository uses Redis when redis.addr is set and falls back to memory otherwise.
func NewCartRepository(params Params) repository.CartRepository {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-memory cart store")

		return NewMemoryCartRepository()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis cart store connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCartRepository(client, cfg.CartTTL)
}

// Module provides the cart store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCartRepository),
)
