package catalog

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type IngredientFactRepo interface {
	Upsert(dbc dbctx.Context, row *types.IngredientFact) error
	ListAll(dbc dbctx.Context) ([]*types.IngredientFact, error)
	GetByNames(dbc dbctx.Context, names []string) ([]*types.IngredientFact, error)
}

type ingredientFactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngredientFactRepo(db *gorm.DB, baseLog *logger.Logger) IngredientFactRepo {
	return &ingredientFactRepo{db: db, log: baseLog.With("repo", "IngredientFactRepo")}
}

func (r *ingredientFactRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *ingredientFactRepo) Upsert(dbc dbctx.Context, row *types.IngredientFact) error {
	if row == nil || row.Name == "" {
		return nil
	}
	now := time.Now().UTC()
	row.UpdatedAt = now
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}

	return r.dbx(dbc).WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"aliases", "category", "safety_rating", "evidence_level",
				"benefits", "concerns", "best_for", "avoid_for", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *ingredientFactRepo) ListAll(dbc dbctx.Context) ([]*types.IngredientFact, error) {
	out := []*types.IngredientFact{}
	if err := r.dbx(dbc).WithContext(dbc.Ctx).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ingredientFactRepo) GetByNames(dbc dbctx.Context, names []string) ([]*types.IngredientFact, error) {
	out := []*types.IngredientFact{}
	if len(names) == 0 {
		return out, nil
	}
	if err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("LOWER(name) IN ?", lowered(names)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func lowered(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
