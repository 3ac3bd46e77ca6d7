package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/platform/envutil"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

// ConfigCache keeps the current strategy config hot so scoring passes do not
// hit the database for a value that changes a few times a day. A cache miss
// returns (nil, nil); the caller falls back to the store.
type ConfigCache interface {
	GetStrategy(ctx context.Context) (*types.StrategyConfig, error)
	SetStrategy(ctx context.Context, cfg *types.StrategyConfig) error
	Invalidate(ctx context.Context) error
	Close() error
}

type configCache struct {
	log *logger.Logger
	rdb *goredis.Client
	key string
	ttl time.Duration
}

func NewConfigCache(log *logger.Logger) (ConfigCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	key := envutil.Str("REDIS_STRATEGY_KEY", "strategy:current")
	ttl := time.Duration(envutil.Int("REDIS_STRATEGY_TTL_SECONDS", 300)) * time.Second

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &configCache{
		log: log.With("service", "RedisConfigCache"),
		rdb: rdb,
		key: key,
		ttl: ttl,
	}, nil
}

func (c *configCache) GetStrategy(ctx context.Context) (*types.StrategyConfig, error) {
	if c == nil || c.rdb == nil {
		return nil, fmt.Errorf("config cache not initialized")
	}
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg types.StrategyConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		// A stale or malformed payload is treated as a miss.
		c.log.Warn("dropping unreadable cached strategy", "error", err)
		_ = c.rdb.Del(ctx, c.key).Err()
		return nil, nil
	}
	return &cfg, nil
}

func (c *configCache) SetStrategy(ctx context.Context, cfg *types.StrategyConfig) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("config cache not initialized")
	}
	if cfg == nil {
		return nil
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key, raw, c.ttl).Err()
}

func (c *configCache) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.key).Err()
}

func (c *configCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
