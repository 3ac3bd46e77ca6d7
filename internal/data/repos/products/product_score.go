package products

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type ProductScoreRepo interface {
	Upsert(dbc dbctx.Context, row *types.ProductScore) error
	GetByProduct(dbc dbctx.Context, productID uuid.UUID) (*types.ProductScore, error)
}

type productScoreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductScoreRepo(db *gorm.DB, baseLog *logger.Logger) ProductScoreRepo {
	return &productScoreRepo{db: db, log: baseLog.With("repo", "ProductScoreRepo")}
}

func (r *productScoreRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

// Upsert replaces the score for a product wholesale; a ProductScore row is
// never partially written.
func (r *productScoreRepo) Upsert(dbc dbctx.Context, row *types.ProductScore) error {
	if row == nil || row.ProductID == uuid.Nil {
		return nil
	}
	now := time.Now().UTC()
	row.UpdatedAt = now
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}

	return r.dbx(dbc).WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"overall_score", "beneficial_score", "harmful_penalty",
				"concentration_score", "evidence_score", "skin_type_compat",
				"pros", "cons", "best_for", "avoid_if",
				"matched_ingredients", "total_ingredients",
				"last_calculated_at", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *productScoreRepo) GetByProduct(dbc dbctx.Context, productID uuid.UUID) (*types.ProductScore, error) {
	if productID == uuid.Nil {
		return nil, nil
	}
	var row types.ProductScore
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("product_id = ?", productID).
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
