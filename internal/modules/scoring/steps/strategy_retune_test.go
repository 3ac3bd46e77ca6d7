package steps

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
)

type fakePerformanceRepo struct {
	top    []*types.PostPerformance
	bottom []*types.PostPerformance
}

func (f *fakePerformanceRepo) Upsert(dbc dbctx.Context, row *types.PostPerformance) error {
	return nil
}
func (f *fakePerformanceRepo) GetByPostAndWindow(dbc dbctx.Context, postID uuid.UUID, window string) (*types.PostPerformance, error) {
	return nil, nil
}
func (f *fakePerformanceRepo) TopBySuccess(dbc dbctx.Context, window string, limit int) ([]*types.PostPerformance, error) {
	return f.top, nil
}
func (f *fakePerformanceRepo) BottomBySuccess(dbc dbctx.Context, window string, limit int) ([]*types.PostPerformance, error) {
	return f.bottom, nil
}

type fakeStrategyService struct {
	current   *types.StrategyConfig
	published *types.StrategyConfig
}

func (f *fakeStrategyService) Current(ctx context.Context) (*types.StrategyConfig, error) {
	return f.current, nil
}
func (f *fakeStrategyService) Publish(ctx context.Context, cfg *types.StrategyConfig) (*types.StrategyConfig, error) {
	cfg.Version = f.current.Version + 1
	f.published = cfg
	return cfg, nil
}
func (f *fakeStrategyService) SeedIfEmpty(ctx context.Context, seed *types.StrategyConfig) error {
	return nil
}

func perfRow(e, s, m, success float64, category string, words int) *types.PostPerformance {
	return &types.PostPerformance{
		PostID:            uuid.New(),
		Window:            types.PerformanceWindow30d,
		EngagementScore:   e,
		SEOScore:          s,
		MonetizationScore: m,
		SuccessScore:      success,
		Post:              &types.Post{Category: category, WordCount: words},
	}
}

func baseStrategyConfig() *types.StrategyConfig {
	return &types.StrategyConfig{
		Version: 3,
		Weights: datatypes.NewJSONType(types.SuccessWeights{
			Engagement: 0.4, SEO: 0.3, Monetization: 0.3,
		}),
		TopicWeights: datatypes.NewJSONType(map[string]float64{"retinol": 1.0}),
		ContentRules: datatypes.NewJSONType(types.ContentRules{
			IntroMaxWords: 100, MinWordCount: 1200, RequireSources: true, MaxAffiliateCTA: 3,
		}),
		MaxPostsPerDay:   2,
		RefreshThreshold: 40,
	}
}

func TestStrategyRetune_PublishesNewVersion(t *testing.T) {
	top := []*types.PostPerformance{}
	for i := 0; i < 6; i++ {
		top = append(top, perfRow(80, 60, 40, 70, "retinol", 1500))
	}
	bottom := []*types.PostPerformance{
		perfRow(20, 15, 10, 16, "cleansers", 800),
	}

	svc := &fakeStrategyService{current: baseStrategyConfig()}
	out, err := StrategyRetune(context.Background(), StrategyRetuneDeps{
		DB:          &gorm.DB{},
		Performance: &fakePerformanceRepo{top: top, bottom: bottom},
		Strategy:    svc,
	}, StrategyRetuneInput{})
	if err != nil {
		t.Fatalf("retune: %v", err)
	}

	if !out.Retuned {
		t.Fatalf("expected retune, got %+v", out)
	}
	if out.NewVersion != 4 {
		t.Fatalf("new version = %d, want 4", out.NewVersion)
	}
	if svc.published == nil {
		t.Fatal("nothing published")
	}
	if svc.published.CreatedBy != "tuner" {
		t.Fatalf("created_by = %q", svc.published.CreatedBy)
	}
}

func TestStrategyRetune_ThinCohortIsNoOp(t *testing.T) {
	top := []*types.PostPerformance{
		perfRow(80, 60, 40, 70, "retinol", 1500),
	}

	svc := &fakeStrategyService{current: baseStrategyConfig()}
	out, err := StrategyRetune(context.Background(), StrategyRetuneDeps{
		DB:          &gorm.DB{},
		Performance: &fakePerformanceRepo{top: top},
		Strategy:    svc,
	}, StrategyRetuneInput{})
	if err != nil {
		t.Fatalf("retune: %v", err)
	}

	if out.Retuned || svc.published != nil {
		t.Fatalf("thin cohort should not publish: %+v", out)
	}
	if out.TopCohort != 1 {
		t.Fatalf("top cohort = %d", out.TopCohort)
	}
}
