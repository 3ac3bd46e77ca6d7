package scoring

import (
	"errors"
	"math"
	"testing"

	"gorm.io/datatypes"

	"github.com/yungbote/glowstack-backend/internal/domain/strategy"
	pkgerrors "github.com/yungbote/glowstack-backend/internal/pkg/errors"
)

func baseConfig() *strategy.StrategyConfig {
	return &strategy.StrategyConfig{
		Version: 3,
		Weights: datatypes.NewJSONType(strategy.SuccessWeights{
			Engagement: 0.4, SEO: 0.3, Monetization: 0.3,
		}),
		TopicWeights: datatypes.NewJSONType(map[string]float64{
			"retinol": 1.0,
		}),
		ContentRules: datatypes.NewJSONType(strategy.ContentRules{
			IntroMaxWords: 120,
			MinWordCount:  800,
		}),
		MaxPostsPerDay:   3,
		RefreshThreshold: 40,
	}
}

func performers(n int, e, s, m float64, category string, words int) []Performer {
	out := make([]Performer, n)
	for i := range out {
		out[i] = Performer{
			Engagement: e, SEO: s, Monetization: m,
			Success:  ScoreSuccess(e, s, m, strategy.SuccessWeights{Engagement: 0.4, SEO: 0.3, Monetization: 0.3}),
			Category: category, WordCount: words,
		}
	}
	return out
}

func TestRetuneStrategy_InsufficientCohortDeclines(t *testing.T) {
	cfg := baseConfig()
	_, err := RetuneStrategy(performers(3, 80, 60, 40, "serums", 1500), nil, cfg, DefaultTunerOptions())
	if !errors.Is(err, pkgerrors.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestRetuneStrategy_WeightsAreSubScoreShares(t *testing.T) {
	cfg := baseConfig()
	top := performers(10, 80, 40, 40, "serums", 1500)

	next, err := RetuneStrategy(top, performers(10, 20, 20, 20, "masks", 500), cfg, DefaultTunerOptions())
	if err != nil {
		t.Fatalf("retune: %v", err)
	}

	w := next.Weights.Data()
	if math.Abs(w.Engagement-0.5) > 1e-9 {
		t.Fatalf("engagement weight: want 0.5, got %v", w.Engagement)
	}
	if math.Abs(w.SEO-0.25) > 1e-9 || math.Abs(w.Monetization-0.25) > 1e-9 {
		t.Fatalf("seo/monetization weights: want 0.25/0.25, got %v/%v", w.SEO, w.Monetization)
	}
	if math.Abs(w.Sum()-1.0) > 1e-6 {
		t.Fatalf("weights should sum to 1.0, got %v", w.Sum())
	}
}

func TestRetuneStrategy_WeightFloorHolds(t *testing.T) {
	cfg := baseConfig()
	// Monetization persistently near zero for top performers.
	top := performers(10, 90, 70, 0, "serums", 1200)

	next, err := RetuneStrategy(top, nil, cfg, DefaultTunerOptions())
	if err != nil {
		t.Fatalf("retune: %v", err)
	}
	w := next.Weights.Data()
	if w.Monetization < DefaultTunerOptions().WeightFloor-1e-9 {
		t.Fatalf("monetization weight collapsed below floor: %v", w.Monetization)
	}
	if math.Abs(w.Sum()-1.0) > 1e-3 {
		t.Fatalf("floored weights should renormalize to ~1.0, got %v", w.Sum())
	}
}

func TestRetuneStrategy_CurrentConfigNotMutated(t *testing.T) {
	cfg := baseConfig()
	before := cfg.Weights.Data()
	beforeTopics := cfg.TopicWeights.Data()["retinol"]
	beforeIntro := cfg.ContentRules.Data().IntroMaxWords

	if _, err := RetuneStrategy(performers(10, 80, 10, 10, "serums", 2000), performers(10, 10, 10, 10, "masks", 400), cfg, DefaultTunerOptions()); err != nil {
		t.Fatalf("retune: %v", err)
	}

	if cfg.Weights.Data() != before {
		t.Fatalf("current weights mutated: %+v", cfg.Weights.Data())
	}
	if cfg.TopicWeights.Data()["retinol"] != beforeTopics {
		t.Fatalf("current topic weights mutated")
	}
	if cfg.ContentRules.Data().IntroMaxWords != beforeIntro {
		t.Fatalf("current content rules mutated")
	}
	if cfg.Version != 3 {
		t.Fatalf("current version changed: %d", cfg.Version)
	}
}

func TestRetuneStrategy_TopicWeightNudgedTowardRatioTarget(t *testing.T) {
	cfg := baseConfig()
	top := performers(10, 80, 60, 40, "serums", 1500)
	bottom := performers(10, 20, 20, 20, "masks", 500)

	next, err := RetuneStrategy(top, bottom, cfg, DefaultTunerOptions())
	if err != nil {
		t.Fatalf("retune: %v", err)
	}

	topics := next.TopicWeights.Data()
	// serums dominate the top cohort: its weight should move above neutral.
	if topics["serums"] <= 1.0 {
		t.Fatalf("serums weight should rise above neutral, got %v", topics["serums"])
	}
	// masks dominate the bottom cohort: its weight should fall below neutral.
	if topics["masks"] >= 1.0 {
		t.Fatalf("masks weight should fall below neutral, got %v", topics["masks"])
	}
	// Targets are clamped to [0.5, 2.0]; one nudge can never overshoot them.
	for cat, w := range topics {
		if w < 0.5 || w > 2.0 {
			t.Fatalf("topic weight for %s outside clamp range: %v", cat, w)
		}
	}
	// Unrelated keys carry over untouched.
	if topics["retinol"] != 1.0 {
		t.Fatalf("unrelated topic weight changed: %v", topics["retinol"])
	}
}

func TestRetuneStrategy_IntroMaxWordsFromTopCohort(t *testing.T) {
	cfg := baseConfig()

	next, err := RetuneStrategy(performers(10, 80, 60, 40, "serums", 1500), nil, cfg, DefaultTunerOptions())
	if err != nil {
		t.Fatalf("retune: %v", err)
	}
	if got := next.ContentRules.Data().IntroMaxWords; got != 150 {
		t.Fatalf("intro max words: want 150 (10%% of 1500), got %d", got)
	}

	next, err = RetuneStrategy(performers(10, 80, 60, 40, "serums", 4000), nil, cfg, DefaultTunerOptions())
	if err != nil {
		t.Fatalf("retune: %v", err)
	}
	if got := next.ContentRules.Data().IntroMaxWords; got != 200 {
		t.Fatalf("intro max words should cap at 200, got %d", got)
	}
}

func TestRetuneStrategy_OtherRulesAndGatesCarryOver(t *testing.T) {
	cfg := baseConfig()
	next, err := RetuneStrategy(performers(10, 80, 60, 40, "serums", 1500), nil, cfg, DefaultTunerOptions())
	if err != nil {
		t.Fatalf("retune: %v", err)
	}
	if next.ContentRules.Data().MinWordCount != 800 {
		t.Fatalf("untouched content rule changed")
	}
	if next.MaxPostsPerDay != 3 || next.RefreshThreshold != 40 {
		t.Fatalf("publishing gates changed: %+v", next)
	}
	if next.CreatedBy != "tuner" {
		t.Fatalf("expected created_by=tuner, got %q", next.CreatedBy)
	}
}
