package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type PostRevenueRepo interface {
	Append(dbc dbctx.Context, row *types.PostRevenue) error
	ListByPostSince(dbc dbctx.Context, postID uuid.UUID, since time.Time) ([]*types.PostRevenue, error)
}

type postRevenueRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRevenueRepo(db *gorm.DB, baseLog *logger.Logger) PostRevenueRepo {
	return &postRevenueRepo{db: db, log: baseLog.With("repo", "PostRevenueRepo")}
}

func (r *postRevenueRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *postRevenueRepo) Append(dbc dbctx.Context, row *types.PostRevenue) error {
	if row == nil || row.PostID == uuid.Nil || row.Day.IsZero() {
		return nil
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return r.dbx(dbc).WithContext(dbc.Ctx).Create(row).Error
}

func (r *postRevenueRepo) ListByPostSince(dbc dbctx.Context, postID uuid.UUID, since time.Time) ([]*types.PostRevenue, error) {
	out := []*types.PostRevenue{}
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
