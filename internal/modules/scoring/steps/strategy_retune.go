package steps

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/glowstack-backend/internal/data/repos"
	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/modules/scoring"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	apperr "github.com/yungbote/glowstack-backend/internal/pkg/errors"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
	"github.com/yungbote/glowstack-backend/internal/services"
)

type StrategyRetuneDeps struct {
	DB          *gorm.DB
	Log         *logger.Logger
	Performance repos.PostPerformanceRepo
	Strategy    services.StrategyService
}

type StrategyRetuneInput struct {
	// Window defaults to 30d, the horizon the tuner was calibrated against.
	Window     string `json:"window"`
	CohortSize int    `json:"cohort_size"`

	// WeightFloor and TopicNudge override the tuner defaults when positive.
	WeightFloor float64 `json:"weight_floor"`
	TopicNudge  float64 `json:"topic_nudge"`
}

type StrategyRetuneOutput struct {
	Retuned    bool `json:"retuned"`
	NewVersion int  `json:"new_version,omitempty"`
	TopCohort  int  `json:"top_cohort"`
}

// StrategyRetune derives a new strategy version from the best and worst
// performing posts. Thin signal is a clean no-op, not an error.
func StrategyRetune(ctx context.Context, deps StrategyRetuneDeps, in StrategyRetuneInput) (StrategyRetuneOutput, error) {
	out := StrategyRetuneOutput{}
	if deps.DB == nil || deps.Performance == nil || deps.Strategy == nil {
		return out, fmt.Errorf("strategy_retune: missing deps")
	}

	window := in.Window
	if window == "" {
		window = types.PerformanceWindow30d
	}
	cohort := in.CohortSize
	if cohort <= 0 {
		cohort = 10
	}

	dbc := dbctx.Context{Ctx: ctx}
	topRows, err := deps.Performance.TopBySuccess(dbc, window, cohort)
	if err != nil {
		return out, err
	}
	bottomRows, err := deps.Performance.BottomBySuccess(dbc, window, cohort)
	if err != nil {
		return out, err
	}
	out.TopCohort = len(topRows)

	current, err := deps.Strategy.Current(ctx)
	if err != nil {
		return out, err
	}

	opts := scoring.DefaultTunerOptions()
	if in.WeightFloor > 0 {
		opts.WeightFloor = in.WeightFloor
	}
	if in.TopicNudge > 0 {
		opts.TopicNudge = in.TopicNudge
	}

	next, err := scoring.RetuneStrategy(
		performersFrom(topRows), performersFrom(bottomRows),
		current, opts,
	)
	if errors.Is(err, apperr.ErrInsufficientData) {
		if deps.Log != nil {
			deps.Log.Info("retune skipped, cohort too small", "top_cohort", out.TopCohort)
		}
		return out, nil
	}
	if err != nil {
		return out, err
	}

	published, err := deps.Strategy.Publish(ctx, next)
	if err != nil {
		return out, err
	}
	out.Retuned = true
	out.NewVersion = published.Version
	return out, nil
}

func performersFrom(rows []*types.PostPerformance) []scoring.Performer {
	out := make([]scoring.Performer, 0, len(rows))
	for _, r := range rows {
		p := scoring.Performer{
			Engagement:   r.EngagementScore,
			SEO:          r.SEOScore,
			Monetization: r.MonetizationScore,
			Success:      r.SuccessScore,
		}
		if r.Post != nil {
			p.Category = r.Post.Category
			p.WordCount = r.Post.WordCount
		}
		out = append(out, p)
	}
	return out
}
