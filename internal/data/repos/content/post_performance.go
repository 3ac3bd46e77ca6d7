package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type PostPerformanceRepo interface {
	Upsert(dbc dbctx.Context, row *types.PostPerformance) error
	GetByPostAndWindow(dbc dbctx.Context, postID uuid.UUID, window string) (*types.PostPerformance, error)
	// TopBySuccess and BottomBySuccess preload the parent post; the tuner
	// needs its category and word count.
	TopBySuccess(dbc dbctx.Context, window string, limit int) ([]*types.PostPerformance, error)
	BottomBySuccess(dbc dbctx.Context, window string, limit int) ([]*types.PostPerformance, error)
}

type postPerformanceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostPerformanceRepo(db *gorm.DB, baseLog *logger.Logger) PostPerformanceRepo {
	return &postPerformanceRepo{db: db, log: baseLog.With("repo", "PostPerformanceRepo")}
}

func (r *postPerformanceRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *postPerformanceRepo) Upsert(dbc dbctx.Context, row *types.PostPerformance) error {
	if row == nil || row.PostID == uuid.Nil || row.Window == "" {
		return nil
	}
	now := time.Now().UTC()
	row.UpdatedAt = now
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}

	return r.dbx(dbc).WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "post_id"}, {Name: "window"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"engagement_score", "seo_score", "monetization_score", "success_score",
				"main_strength", "main_weakness", "calculated_at", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *postPerformanceRepo) GetByPostAndWindow(dbc dbctx.Context, postID uuid.UUID, window string) (*types.PostPerformance, error) {
	if postID == uuid.Nil || window == "" {
		return nil, nil
	}
	var row types.PostPerformance
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("post_id = ? AND window = ?", postID, window).
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

func (r *postPerformanceRepo) TopBySuccess(dbc dbctx.Context, window string, limit int) ([]*types.PostPerformance, error) {
	return r.listBySuccess(dbc, window, limit, "success_score DESC")
}

func (r *postPerformanceRepo) BottomBySuccess(dbc dbctx.Context, window string, limit int) ([]*types.PostPerformance, error) {
	return r.listBySuccess(dbc, window, limit, "success_score ASC")
}

func (r *postPerformanceRepo) listBySuccess(dbc dbctx.Context, window string, limit int, order string) ([]*types.PostPerformance, error) {
	out := []*types.PostPerformance{}
	if window == "" || limit <= 0 {
		return out, nil
	}
	if err := r.dbx(dbc).WithContext(dbc.Ctx).
		Preload("Post").
		Where("window = ?", window).
		Order(order).
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
