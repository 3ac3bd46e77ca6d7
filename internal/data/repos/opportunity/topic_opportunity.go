package opportunity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type TopicOpportunityRepo interface {
	Upsert(dbc dbctx.Context, row *types.TopicOpportunity) error
	GetByKeyword(dbc dbctx.Context, keyword string) (*types.TopicOpportunity, error)
	ListPendingAbove(dbc dbctx.Context, minScore int) ([]*types.TopicOpportunity, error)
	SetStatus(dbc dbctx.Context, id uuid.UUID, status string) error
}

type topicOpportunityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicOpportunityRepo(db *gorm.DB, baseLog *logger.Logger) TopicOpportunityRepo {
	return &topicOpportunityRepo{db: db, log: baseLog.With("repo", "TopicOpportunityRepo")}
}

func (r *topicOpportunityRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

// Upsert keeps keyword rows current across recompute passes. Status is left
// alone on conflict so a dismissed keyword stays dismissed.
func (r *topicOpportunityRepo) Upsert(dbc dbctx.Context, row *types.TopicOpportunity) error {
	if row == nil || row.Keyword == "" {
		return nil
	}
	now := time.Now().UTC()
	row.UpdatedAt = now
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}

	return r.dbx(dbc).WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "keyword"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"score", "reddit_mentions", "reddit_sentiment", "trend_growth_30d",
				"search_volume_indicator", "paa_question_count", "competitor_strength",
				"recommended_action", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *topicOpportunityRepo) GetByKeyword(dbc dbctx.Context, keyword string) (*types.TopicOpportunity, error) {
	if keyword == "" {
		return nil, nil
	}
	var row types.TopicOpportunity
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("keyword = ?", keyword).
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

func (r *topicOpportunityRepo) ListPendingAbove(dbc dbctx.Context, minScore int) ([]*types.TopicOpportunity, error) {
	out := []*types.TopicOpportunity{}
	if err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("status = ? AND score >= ?", types.OpportunityStatusPending, minScore).
		Order("score DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *topicOpportunityRepo) SetStatus(dbc dbctx.Context, id uuid.UUID, status string) error {
	if id == uuid.Nil || status == "" {
		return nil
	}
	return r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&types.TopicOpportunity{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()}).Error
}
