package steps

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/glowstack-backend/internal/data/repos"
	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/modules/scoring"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
	"github.com/yungbote/glowstack-backend/internal/services"
)

type PerformanceRefreshDeps struct {
	DB          *gorm.DB
	Log         *logger.Logger
	Posts       repos.PostRepo
	Metrics     repos.PostMetricsRepo
	Revenue     repos.PostRevenueRepo
	Performance repos.PostPerformanceRepo
	Strategy    services.StrategyService
}

type PerformanceRefreshInput struct {
	// Windows defaults to all three supported windows when empty.
	Windows []string `json:"windows"`
}

type PerformanceRefreshOutput struct {
	PostsSeen int `json:"posts_seen"`
	RowsSaved int `json:"rows_saved"`
}

func windowDays(window string) (int, bool) {
	switch window {
	case types.PerformanceWindow7d:
		return 7, true
	case types.PerformanceWindow30d:
		return 30, true
	case types.PerformanceWindow90d:
		return 90, true
	}
	return 0, false
}

// PerformanceRefresh recomputes engagement, SEO, monetization and success
// scores for every published post over each requested window. Posts with no
// telemetry in a window still get a row; zeros are information here.
func PerformanceRefresh(ctx context.Context, deps PerformanceRefreshDeps, in PerformanceRefreshInput) (PerformanceRefreshOutput, error) {
	out := PerformanceRefreshOutput{}
	if deps.DB == nil || deps.Posts == nil || deps.Metrics == nil || deps.Revenue == nil || deps.Performance == nil || deps.Strategy == nil {
		return out, fmt.Errorf("performance_refresh: missing deps")
	}

	windows := in.Windows
	if len(windows) == 0 {
		windows = []string{types.PerformanceWindow7d, types.PerformanceWindow30d, types.PerformanceWindow90d}
	}
	for _, w := range windows {
		if _, ok := windowDays(w); !ok {
			return out, fmt.Errorf("performance_refresh: unknown window %q", w)
		}
	}

	cfg, err := deps.Strategy.Current(ctx)
	if err != nil {
		return out, err
	}
	weights := cfg.Weights.Data()

	dbc := dbctx.Context{Ctx: ctx}
	posts, err := deps.Posts.ListPublished(dbc)
	if err != nil {
		return out, err
	}
	out.PostsSeen = len(posts)

	now := time.Now().UTC()
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, p := range posts {
		p := p
		g.Go(func() error {
			gdbc := dbctx.Context{Ctx: gctx}
			for _, w := range windows {
				days, _ := windowDays(w)
				since := now.AddDate(0, 0, -days)

				metricRows, err := deps.Metrics.ListByPostSince(gdbc, p.ID, since)
				if err != nil {
					return err
				}
				revenueRows, err := deps.Revenue.ListByPostSince(gdbc, p.ID, since)
				if err != nil {
					return err
				}

				m := scoring.AggregateMetrics(metricRows)
				r := scoring.AggregateRevenue(revenueRows)

				engagement := scoring.ScoreEngagement(m)
				seo := scoring.ScoreSEO(m)
				monetization := scoring.ScoreMonetization(r)
				success := scoring.ScoreSuccess(engagement, seo, monetization, weights)
				strength, weakness := scoring.StrengthWeakness(engagement, seo, monetization)

				row := &types.PostPerformance{
					PostID:            p.ID,
					Window:            w,
					EngagementScore:   engagement,
					SEOScore:          seo,
					MonetizationScore: monetization,
					SuccessScore:      success,
					MainStrength:      strength,
					MainWeakness:      weakness,
					CalculatedAt:      now,
				}
				if err := deps.Performance.Upsert(gdbc, row); err != nil {
					return err
				}
				mu.Lock()
				out.RowsSaved++
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	if deps.Log != nil {
		deps.Log.Info("performance refresh finished",
			"posts", out.PostsSeen, "rows", out.RowsSaved, "strategy_version", cfg.Version)
	}
	return out, nil
}
