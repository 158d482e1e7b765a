package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Addr        string
	Username    string
	Password    string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

type RedisStore struct {
	Client *redis.Client
}

func OpenRedis(ctx context.Context, opt RedisOptions) (*RedisStore, error) {
	const op = "kv.OpenRedis"
	client := redis.NewClient(&redis.Options{
		Addr:         opt.Addr,
		Username:     opt.Username,
		Password:     opt.Password,
		DB:           opt.DB,
		MaxRetries:   opt.MaxRetries,
		DialTimeout:  opt.DialTimeout,
		ReadTimeout:  opt.Timeout,
		WriteTimeout: opt.Timeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{Client: client}, nil
}

func redisKey(ns, key string) string { return ns + ":" + key }

func (s *RedisStore) Get(ctx context.Context, ns, key string) (string, bool, error) {
	const op = "kv.RedisStore.Get"
	val, err := s.Client.Get(ctx, redisKey(ns, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

// Set stores without expiration; browser local storage never expires on its own.
func (s *RedisStore) Set(ctx context.Context, ns, key, value string) error {
	return s.Client.Set(ctx, redisKey(ns, key), value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, ns, key string) error {
	return s.Client.Del(ctx, redisKey(ns, key)).Err()
}

func (s *RedisStore) Close() error {
	return s.Client.Close()
}
