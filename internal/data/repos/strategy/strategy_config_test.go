package strategy_test

import (
	"testing"

	"gorm.io/datatypes"

	"github.com/yungbote/glowstack-backend/internal/data/repos/strategy"
	"github.com/yungbote/glowstack-backend/internal/data/repos/testutil"
	types "github.com/yungbote/glowstack-backend/internal/domain"
)

func seedConfig(createdBy string) *types.StrategyConfig {
	return &types.StrategyConfig{
		Weights: datatypes.NewJSONType(types.SuccessWeights{
			Engagement: 0.4, SEO: 0.3, Monetization: 0.3,
		}),
		TopicWeights: datatypes.NewJSONType(map[string]float64{"retinol": 1.2}),
		ContentRules: datatypes.NewJSONType(types.ContentRules{
			IntroMaxWords: 100, MinWordCount: 1200, RequireSources: true, MaxAffiliateCTA: 3,
		}),
		AutoPublish:      false,
		MaxPostsPerDay:   2,
		RefreshThreshold: 40,
		CreatedBy:        createdBy,
	}
}

func TestStrategyConfigRepo_VersionsAppend(t *testing.T) {
	gdb := testutil.DB(t)
	dbc := testutil.Tx(t, gdb)
	repo := strategy.NewStrategyConfigRepo(gdb, testutil.Logger(t))

	first := seedConfig("seed")
	if err := repo.Create(dbc, first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	second := seedConfig("tuner")
	if err := repo.Create(dbc, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	if second.Version != first.Version+1 {
		t.Fatalf("versions not sequential: %d then %d", first.Version, second.Version)
	}

	cur, err := repo.Current(dbc)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur.Version != second.Version || cur.CreatedBy != "tuner" {
		t.Fatalf("current = v%d by %q, want v%d by tuner", cur.Version, cur.CreatedBy, second.Version)
	}
}

func TestStrategyConfigRepo_OldVersionsReadable(t *testing.T) {
	gdb := testutil.DB(t)
	dbc := testutil.Tx(t, gdb)
	repo := strategy.NewStrategyConfigRepo(gdb, testutil.Logger(t))

	first := seedConfig("seed")
	if err := repo.Create(dbc, first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := repo.Create(dbc, seedConfig("tuner")); err != nil {
		t.Fatalf("create second: %v", err)
	}

	got, err := repo.GetVersion(dbc, first.Version)
	if err != nil {
		t.Fatalf("get version %d: %v", first.Version, err)
	}
	if got.CreatedBy != "seed" {
		t.Fatalf("old version mutated: created_by = %q", got.CreatedBy)
	}
	if got.Weights.Data().Engagement != 0.4 {
		t.Fatalf("old version weights mutated: %+v", got.Weights.Data())
	}
}
