package opportunity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

// TopicSignalRepo stages raw collector readings. Append-only from the
// collector side; the scoring pass consumes and marks batches processed.
type TopicSignalRepo interface {
	Append(dbc dbctx.Context, rows []*types.TopicSignal) error
	// ListUnprocessed returns unprocessed signals newest-first so the scorer
	// can keep the first row it sees per keyword.
	ListUnprocessed(dbc dbctx.Context, limit int) ([]*types.TopicSignal, error)
	MarkProcessed(dbc dbctx.Context, ids []uuid.UUID) error
}

type topicSignalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicSignalRepo(db *gorm.DB, baseLog *logger.Logger) TopicSignalRepo {
	return &topicSignalRepo{db: db, log: baseLog.With("repo", "TopicSignalRepo")}
}

func (r *topicSignalRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *topicSignalRepo) Append(dbc dbctx.Context, rows []*types.TopicSignal) error {
	if len(rows) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, row := range rows {
		if row.CollectedAt.IsZero() {
			row.CollectedAt = now
		}
		if row.CreatedAt.IsZero() {
			row.CreatedAt = now
		}
	}
	return r.dbx(dbc).WithContext(dbc.Ctx).Create(rows).Error
}

func (r *topicSignalRepo) ListUnprocessed(dbc dbctx.Context, limit int) ([]*types.TopicSignal, error) {
	out := []*types.TopicSignal{}
	q := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("processed = ?", false).
		Order("collected_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *topicSignalRepo) MarkProcessed(dbc dbctx.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&types.TopicSignal{}).
		Where("id IN ?", ids).
		Update("processed", true).Error
}
