package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/glowstack-backend/internal/data/repos"
	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

// IngredientResolver maps raw label ingredient names to catalog facts.
// Matching is case-insensitive and alias-aware; names with no fact resolve to
// a nil entry so scoring can count them as unmatched.
type IngredientResolver interface {
	Resolve(ctx context.Context, names []string) (map[string]*types.IngredientFact, error)
}

type ingredientResolver struct {
	db    *gorm.DB
	log   *logger.Logger
	facts repos.IngredientFactRepo
}

func NewIngredientResolver(db *gorm.DB, baseLog *logger.Logger, facts repos.IngredientFactRepo) IngredientResolver {
	return &ingredientResolver{
		db:    db,
		log:   baseLog.With("service", "IngredientResolver"),
		facts: facts,
	}
}

func (s *ingredientResolver) Resolve(ctx context.Context, names []string) (map[string]*types.IngredientFact, error) {
	out := make(map[string]*types.IngredientFact, len(names))
	if len(names) == 0 {
		return out, nil
	}
	dbc := dbctx.Context{Ctx: ctx}

	keys := make([]string, 0, len(names))
	for _, raw := range names {
		key := normalizeName(raw)
		if key == "" {
			continue
		}
		out[key] = nil
		keys = append(keys, key)
	}

	// Exact-name lookup first; most label names match the canonical name.
	exact, err := s.facts.GetByNames(dbc, keys)
	if err != nil {
		return nil, err
	}
	unresolved := len(out)
	for _, f := range exact {
		key := normalizeName(f.Name)
		if _, wanted := out[key]; wanted {
			out[key] = f
			unresolved--
		}
	}
	if unresolved == 0 {
		return out, nil
	}

	// The catalog is small (hundreds of rows), so one full read covers alias
	// matching for whatever the exact pass missed.
	all, err := s.facts.ListAll(dbc)
	if err != nil {
		return nil, err
	}
	byAlias := make(map[string]*types.IngredientFact, len(all))
	for _, f := range all {
		for _, alias := range f.Aliases {
			key := normalizeName(alias)
			if _, taken := byAlias[key]; !taken {
				byAlias[key] = f
			}
		}
	}
	for key, f := range out {
		if f == nil {
			out[key] = byAlias[key]
		}
	}
	return out, nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
