package store

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Marga-Ghale/projectflow/internal/db"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	db     *db.RedisDB
	prefix string
}

// NewRedisStore keeps each key as a plain string value under prefix.
func NewRedisStore(redisDB *db.RedisDB, prefix string) Store {
	return &redisStore{db: redisDB, prefix: prefix}
}

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.db.Client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return r.db.Client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	return r.db.Client.Del(ctx, r.prefix+key).Err()
}

func (r *redisStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.db.Client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

func (r *redisStore) Close() error {
	return r.db.Close()
}
