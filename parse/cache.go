package parse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/twmb/murmur3"

	sent "github.com/revelaction/newsmunger/sentence"
)

var ErrMiss = errors.New("cache miss")

// Store is a key value store with expiration.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisStore is a Store backed by redis.
type RedisStore struct {
	client redis.UniversalClient
}

var _ Store = (*RedisStore)(nil)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisStore(opts RedisOptions) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:       opts.Addr,
		Password:   opts.Password,
		DB:         opts.DB,
		MaxRetries: 6,
	})

	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}

	return b, err
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Cache is a Parser that remembers the parses of another Parser. Failures
// of the store are logged and never returned.
type Cache struct {
	parser Parser
	store  Store
	ttl    time.Duration
	logger zerolog.Logger
}

var _ Parser = (*Cache)(nil)

func NewCache(p Parser, s Store, ttl time.Duration, logger zerolog.Logger) *Cache {
	return &Cache{parser: p, store: s, ttl: ttl, logger: logger}
}

// Key returns the store key of the parse of text.
func Key(text string) string {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(text))
	if err != nil {
		panic(err)
	}

	return fmt.Sprintf("parse:%016x", hash.Sum64())
}

func (c *Cache) Parse(ctx context.Context, text string) ([]sent.Sentence, error) {
	key := Key(text)

	b, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var sentences []sent.Sentence
		if err := json.Unmarshal(b, &sentences); err == nil {
			return sentences, nil
		}
		c.logger.Warn().Str("key", key).Msg("corrupt cache entry")
	case !errors.Is(err, ErrMiss):
		c.logger.Warn().Err(err).Str("key", key).Msg("cache get error")
	}

	sentences, err := c.parser.Parse(ctx, text)
	if err != nil {
		return nil, err
	}

	b, err = json.Marshal(sentences)
	if err != nil {
		return sentences, nil
	}

	if err := c.store.Set(ctx, key, b, c.ttl); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache set error")
	}

	return sentences, nil
}
