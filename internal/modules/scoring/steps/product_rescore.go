package steps

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/glowstack-backend/internal/data/repos"
	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/modules/scoring"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
	"github.com/yungbote/glowstack-backend/internal/services"
)

type ProductRescoreDeps struct {
	DB       *gorm.DB
	Log      *logger.Logger
	Products repos.ProductRepo
	Scores   repos.ProductScoreRepo
	Resolver services.IngredientResolver
}

type ProductRescoreInput struct {
	// ProductIDs limits the pass to the given products; empty means all.
	ProductIDs []uuid.UUID `json:"product_ids"`
}

type ProductRescoreOutput struct {
	Scored  int `json:"scored"`
	Skipped int `json:"skipped"`
}

// ProductRescore recomputes and upserts the score row for each product. The
// score function is deterministic over the catalog, so reruns are idempotent.
func ProductRescore(ctx context.Context, deps ProductRescoreDeps, in ProductRescoreInput) (ProductRescoreOutput, error) {
	out := ProductRescoreOutput{}
	if deps.DB == nil || deps.Products == nil || deps.Scores == nil || deps.Resolver == nil {
		return out, fmt.Errorf("product_rescore: missing deps")
	}

	dbc := dbctx.Context{Ctx: ctx}
	var (
		items []*types.Product
		err   error
	)
	if len(in.ProductIDs) > 0 {
		for _, id := range in.ProductIDs {
			p, err := deps.Products.Get(dbc, id)
			if err != nil {
				return out, err
			}
			if p != nil {
				items = append(items, p)
			}
		}
	} else {
		items, err = deps.Products.ListAll(dbc)
		if err != nil {
			return out, err
		}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, p := range items {
		p := p
		g.Go(func() error {
			names := []string(p.Ingredients)
			facts, err := deps.Resolver.Resolve(gctx, names)
			if err != nil {
				return err
			}
			res := scoring.ScoreProduct(names, facts)

			row := &types.ProductScore{
				ProductID:          p.ID,
				OverallScore:       res.OverallScore,
				BeneficialScore:    res.BeneficialScore,
				HarmfulPenalty:     res.HarmfulPenalty,
				ConcentrationScore: res.ConcentrationScore,
				EvidenceScore:      res.EvidenceScore,
				SkinTypeCompat:     datatypes.NewJSONType(res.SkinTypeCompat),
				Pros:               datatypes.JSONSlice[string](res.Pros),
				Cons:               datatypes.JSONSlice[string](res.Cons),
				BestFor:            datatypes.JSONSlice[string](res.BestFor),
				AvoidIf:            datatypes.JSONSlice[string](res.AvoidIf),
				MatchedIngredients: res.MatchedIngredients,
				TotalIngredients:   res.TotalIngredients,
				LastCalculatedAt:   time.Now().UTC(),
			}
			if err := deps.Scores.Upsert(dbctx.Context{Ctx: gctx}, row); err != nil {
				return err
			}
			mu.Lock()
			out.Scored++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	out.Skipped = len(items) - out.Scored
	if deps.Log != nil {
		deps.Log.Info("product rescore pass finished", "scored", out.Scored, "skipped", out.Skipped)
	}
	return out, nil
}
