package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ougirez/motorquote/internal/pkg/constants"
	"github.com/ougirez/motorquote/internal/pkg/logger"
	"github.com/ougirez/motorquote/internal/wizard"
)

// RedisOpts configures ConnectRedis. Retries is how many extra pings are
// attempted before giving up.
type RedisOpts struct {
	Addr     string
	Password string
	DB       int
	Retries  uint64
	Interval time.Duration
}

// ConnectRedis opens a client and pings it until it answers or the retries
// run out.
func ConnectRedis(ctx context.Context, opts RedisOpts) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	interval := opts.Interval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	attempt := 0
	err := backoff.Retry(
		func() error {
			attempt++
			if pingErr := client.Ping(ctx).Err(); pingErr != nil {
				logger.Warnf(ctx, "redis ping %d to %s failed: %s", attempt, opts.Addr, pingErr.Error())
				return fmt.Errorf("client.Ping: %w", pingErr)
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), opts.Retries),
			ctx,
		),
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("store.ConnectRedis: %w", err)
	}

	return client, nil
}

const (
	updateRetries  = 20
	updateInterval = 5 * time.Millisecond
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore keeps sessions as sonic-encoded values that redis expires
// after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Load(ctx context.Context, id string) (wizard.State, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		return wizard.State{}, fmt.Errorf("store.Load: %w", wrapErr(err))
	}

	var state wizard.State
	if err = sonic.Unmarshal(data, &state); err != nil {
		return wizard.State{}, fmt.Errorf("store.Load, id-%s: sonic.Unmarshal: %w", id, err)
	}

	return state, nil
}

func (s *redisStore) Save(ctx context.Context, id string, state wizard.State) error {
	data, err := sonic.Marshal(state)
	if err != nil {
		return fmt.Errorf("store.Save: sonic.Marshal: %w", err)
	}

	if err = s.client.Set(ctx, sessionKey(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}

	return nil
}

// Update runs fn inside WATCH/MULTI on the session key. A concurrent write
// to the same key aborts the transaction and fn runs again on fresh state.
func (s *redisStore) Update(ctx context.Context, id string, fn Transition) (wizard.State, bool, error) {
	key := sessionKey(id)

	var (
		result  wizard.State
		applied bool
	)
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			return wrapErr(err)
		}

		var current wizard.State
		if err = sonic.Unmarshal(data, &current); err != nil {
			return fmt.Errorf("sonic.Unmarshal: %w", err)
		}

		next, ok := fn(current)
		if !ok {
			result, applied = current, false
			return nil
		}

		encoded, err := sonic.Marshal(next)
		if err != nil {
			return fmt.Errorf("sonic.Marshal: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result, applied = next, true
		return nil
	}

	err := backoff.Retry(
		func() error {
			err := s.client.Watch(ctx, txf, key)
			if errors.Is(err, redis.TxFailedErr) {
				return err
			}
			if err != nil {
				return backoff.Permanent(err)
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(updateInterval), updateRetries),
			ctx,
		),
	)
	if err != nil {
		return wizard.State{}, false, fmt.Errorf("store.Update, id-%s: %w", id, err)
	}

	return result, applied, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("store.Delete: %w", wrapErr(err))
	}
	if n == 0 {
		return constants.ErrSessionNotFound
	}

	return nil
}
