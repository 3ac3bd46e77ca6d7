package experiments

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	apperr "github.com/yungbote/glowstack-backend/internal/pkg/errors"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type PostExperimentRepo interface {
	Create(dbc dbctx.Context, exp *types.PostExperiment) error
	Get(dbc dbctx.Context, id uuid.UUID) (*types.PostExperiment, error)
	ListRunning(dbc dbctx.Context) ([]*types.PostExperiment, error)
	UpdateVariants(dbc dbctx.Context, id uuid.UUID, variants []types.Variant) error
	// Conclude flips a running experiment to concluded and records the winner.
	// The status guard in the WHERE clause makes a repeated call a no-op.
	Conclude(dbc dbctx.Context, id uuid.UUID, winnerID string) error
}

type postExperimentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostExperimentRepo(db *gorm.DB, baseLog *logger.Logger) PostExperimentRepo {
	return &postExperimentRepo{db: db, log: baseLog.With("repo", "PostExperimentRepo")}
}

func (r *postExperimentRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *postExperimentRepo) Create(dbc dbctx.Context, exp *types.PostExperiment) error {
	if exp == nil || exp.PostID == uuid.Nil || len(exp.Variants) < 2 {
		return apperr.ErrInvalidArgument
	}
	now := time.Now().UTC()
	if exp.Status == "" {
		exp.Status = types.ExperimentStatusRunning
	}
	if exp.CreatedAt.IsZero() {
		exp.CreatedAt = now
	}
	exp.UpdatedAt = now
	return r.dbx(dbc).WithContext(dbc.Ctx).Create(exp).Error
}

func (r *postExperimentRepo) Get(dbc dbctx.Context, id uuid.UUID) (*types.PostExperiment, error) {
	if id == uuid.Nil {
		return nil, apperr.ErrInvalidArgument
	}
	var exp types.PostExperiment
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&exp).Error
	if err != nil {
		return nil, err
	}
	if exp.ID == uuid.Nil {
		return nil, apperr.ErrNotFound
	}
	return &exp, nil
}

func (r *postExperimentRepo) ListRunning(dbc dbctx.Context) ([]*types.PostExperiment, error) {
	out := []*types.PostExperiment{}
	if err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("status = ?", types.ExperimentStatusRunning).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postExperimentRepo) UpdateVariants(dbc dbctx.Context, id uuid.UUID, variants []types.Variant) error {
	if id == uuid.Nil {
		return apperr.ErrInvalidArgument
	}
	return r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&types.PostExperiment{}).
		Where("id = ? AND status = ?", id, types.ExperimentStatusRunning).
		Updates(map[string]any{
			"variants":   datatypes.JSONSlice[types.Variant](variants),
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *postExperimentRepo) Conclude(dbc dbctx.Context, id uuid.UUID, winnerID string) error {
	if id == uuid.Nil || winnerID == "" {
		return apperr.ErrInvalidArgument
	}
	now := time.Now().UTC()
	return r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&types.PostExperiment{}).
		Where("id = ? AND status = ?", id, types.ExperimentStatusRunning).
		Updates(map[string]any{
			"status":       types.ExperimentStatusConcluded,
			"winner_id":    winnerID,
			"concluded_at": now,
			"updated_at":   now,
		}).Error
}
