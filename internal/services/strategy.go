package services

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	redisclient "github.com/yungbote/glowstack-backend/internal/clients/redis"
	"github.com/yungbote/glowstack-backend/internal/data/repos"
	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	apperr "github.com/yungbote/glowstack-backend/internal/pkg/errors"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

// StrategyService owns the append-only config sequence. Reads go through the
// redis cache when one is wired; writes append a new version and invalidate.
type StrategyService interface {
	Current(ctx context.Context) (*types.StrategyConfig, error)
	Publish(ctx context.Context, cfg *types.StrategyConfig) (*types.StrategyConfig, error)
	SeedIfEmpty(ctx context.Context, seed *types.StrategyConfig) error
}

type strategyService struct {
	db    *gorm.DB
	log   *logger.Logger
	cfgs  repos.StrategyConfigRepo
	cache redisclient.ConfigCache
}

// NewStrategyService accepts a nil cache; every read then falls through to
// the store.
func NewStrategyService(db *gorm.DB, baseLog *logger.Logger, cfgs repos.StrategyConfigRepo, cache redisclient.ConfigCache) StrategyService {
	return &strategyService{
		db:    db,
		log:   baseLog.With("service", "StrategyService"),
		cfgs:  cfgs,
		cache: cache,
	}
}

func (s *strategyService) Current(ctx context.Context) (*types.StrategyConfig, error) {
	if s.cache != nil {
		cached, err := s.cache.GetStrategy(ctx)
		if err != nil {
			s.log.Warn("strategy cache read failed, falling back to store", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	cfg, err := s.cfgs.Current(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetStrategy(ctx, cfg); err != nil {
			s.log.Warn("strategy cache write failed", "error", err)
		}
	}
	return cfg, nil
}

func (s *strategyService) Publish(ctx context.Context, cfg *types.StrategyConfig) (*types.StrategyConfig, error) {
	if cfg == nil {
		return nil, apperr.ErrInvalidArgument
	}
	if sum := cfg.Weights.Data().Sum(); math.Abs(sum-1.0) > 0.01 {
		// Tolerated so a hand-edited config never blocks publishing.
		s.log.Warn("success weights do not sum to 1.0", "sum", sum)
	}

	if err := s.cfgs.Create(dbctx.Context{Ctx: ctx}, cfg); err != nil {
		return nil, err
	}
	s.log.Info("published strategy config", "version", cfg.Version, "created_by", cfg.CreatedBy)

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn("strategy cache invalidate failed", "error", err)
		}
	}
	return cfg, nil
}

// SeedIfEmpty installs the bundled default config on first boot. A populated
// table wins over the seed file.
func (s *strategyService) SeedIfEmpty(ctx context.Context, seed *types.StrategyConfig) error {
	if seed == nil {
		return apperr.ErrInvalidArgument
	}
	_, err := s.cfgs.Current(dbctx.Context{Ctx: ctx})
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}
	if seed.CreatedBy == "" {
		seed.CreatedBy = "seed"
	}
	_, err = s.Publish(ctx, seed)
	return err
}
