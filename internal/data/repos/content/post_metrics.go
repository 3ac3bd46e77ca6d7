package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

// PostMetricsRepo and PostRevenueRepo are append-only time series. The scoring
// core only reads; connectors append.

type PostMetricsRepo interface {
	Append(dbc dbctx.Context, row *types.PostMetrics) error
	ListByPostSince(dbc dbctx.Context, postID uuid.UUID, since time.Time) ([]*types.PostMetrics, error)
}

type postMetricsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostMetricsRepo(db *gorm.DB, baseLog *logger.Logger) PostMetricsRepo {
	return &postMetricsRepo{db: db, log: baseLog.With("repo", "PostMetricsRepo")}
}

func (r *postMetricsRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *postMetricsRepo) Append(dbc dbctx.Context, row *types.PostMetrics) error {
	if row == nil || row.PostID == uuid.Nil || row.Day.IsZero() {
		return nil
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return r.dbx(dbc).WithContext(dbc.Ctx).Create(row).Error
}

func (r *postMetricsRepo) ListByPostSince(dbc dbctx.Context, postID uuid.UUID, since time.Time) ([]*types.PostMetrics, error) {
	out := []*types.PostMetrics{}
	if postID == uuid.Nil {
		return out, nil
	}
	if err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("post_id = ? AND day >= ?", postID, since).
		Order("day ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
