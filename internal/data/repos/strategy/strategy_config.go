package strategy

import (
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	apperr "github.com/yungbote/glowstack-backend/internal/pkg/errors"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

// StrategyConfigRepo is append-only: Create assigns the next version inside
// the caller's transaction and rows are never updated or deleted.
type StrategyConfigRepo interface {
	Create(dbc dbctx.Context, cfg *types.StrategyConfig) error
	Current(dbc dbctx.Context) (*types.StrategyConfig, error)
	GetVersion(dbc dbctx.Context, version int) (*types.StrategyConfig, error)
	Count(dbc dbctx.Context) (int64, error)
}

type strategyConfigRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStrategyConfigRepo(db *gorm.DB, baseLog *logger.Logger) StrategyConfigRepo {
	return &strategyConfigRepo{db: db, log: baseLog.With("repo", "StrategyConfigRepo")}
}

func (r *strategyConfigRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *strategyConfigRepo) Create(dbc dbctx.Context, cfg *types.StrategyConfig) error {
	if cfg == nil {
		return apperr.ErrInvalidArgument
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = time.Now().UTC()
	}

	assign := func(tx *gorm.DB) error {
		var max int
		if err := tx.WithContext(dbc.Ctx).
			Model(&types.StrategyConfig{}).
			Select("COALESCE(MAX(version), 0)").
			Scan(&max).Error; err != nil {
			return err
		}
		cfg.Version = max + 1
		return tx.WithContext(dbc.Ctx).Create(cfg).Error
	}

	if dbc.Tx != nil {
		return assign(dbc.Tx)
	}
	return r.db.Transaction(assign)
}

func (r *strategyConfigRepo) Current(dbc dbctx.Context) (*types.StrategyConfig, error) {
	var cfg types.StrategyConfig
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Order("version DESC").
		Limit(1).
		Find(&cfg).Error
	if err != nil {
		return nil, err
	}
	if cfg.Version == 0 {
		return nil, apperr.ErrNotFound
	}
	return &cfg, nil
}

func (r *strategyConfigRepo) GetVersion(dbc dbctx.Context, version int) (*types.StrategyConfig, error) {
	if version <= 0 {
		return nil, apperr.ErrInvalidArgument
	}
	var cfg types.StrategyConfig
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("version = ?", version).
		Limit(1).
		Find(&cfg).Error
	if err != nil {
		return nil, err
	}
	if cfg.Version == 0 {
		return nil, apperr.ErrNotFound
	}
	return &cfg, nil
}

func (r *strategyConfigRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&types.StrategyConfig{}).
		Count(&n).Error
	return n, err
}
