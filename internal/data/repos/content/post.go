package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type PostRepo interface {
	Create(dbc dbctx.Context, row *types.Post) error
	Get(dbc dbctx.Context, id uuid.UUID) (*types.Post, error)
	ListPublished(dbc dbctx.Context) ([]*types.Post, error)
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return &postRepo{db: db, log: baseLog.With("repo", "PostRepo")}
}

func (r *postRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *postRepo) Create(dbc dbctx.Context, row *types.Post) error {
	if row == nil || row.Slug == "" {
		return nil
	}
	now := time.Now().UTC()
	row.UpdatedAt = now
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	if row.Status == "" {
		row.Status = types.PostStatusDraft
	}
	return r.dbx(dbc).WithContext(dbc.Ctx).Create(row).Error
}

func (r *postRepo) Get(dbc dbctx.Context, id uuid.UUID) (*types.Post, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Post
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *postRepo) ListPublished(dbc dbctx.Context) ([]*types.Post, error) {
	out := []*types.Post{}
	if err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("status = ?", types.PostStatusPublished).
		Order("published_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
