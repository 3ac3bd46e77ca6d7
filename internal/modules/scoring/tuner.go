package scoring

import (
	"fmt"
	"math"

	"gorm.io/datatypes"

	"github.com/yungbote/glowstack-backend/internal/domain/strategy"
	pkgerrors "github.com/yungbote/glowstack-backend/internal/pkg/errors"
)

// Performer is one post's performance row joined with the post metadata the
// tuner needs.
type Performer struct {
	Engagement   float64
	SEO          float64
	Monetization float64
	Success      float64

	Category  string
	WordCount int
}

type TunerOptions struct {
	// MinTopCohort is the smallest top cohort the tuner will act on; below it
	// the signal is too thin and no new version is produced.
	MinTopCohort int
	// WeightFloor keeps any success weight from collapsing toward 0 when one
	// sub-score is persistently near zero for top performers.
	WeightFloor float64
	// TopicNudge is how far a topic weight moves toward its target per run.
	TopicNudge float64
}

func DefaultTunerOptions() TunerOptions {
	return TunerOptions{
		MinTopCohort: 5,
		WeightFloor:  0.05,
		TopicNudge:   0.5,
	}
}

// RetuneStrategy re-derives scoring weights from observed outcomes and returns
// a fresh config snapshot to persist as the next version. It never mutates
// current. A cohort below MinTopCohort returns ErrInsufficientData: thin signal
// is reported, not guessed at.
//
// Weight re-derivation is a ratio normalization, not a gradient method: each
// sub-score's share of the top cohort's combined sub-score total becomes its
// weight, floored and renormalized.
func RetuneStrategy(top, bottom []Performer, current *strategy.StrategyConfig, opts TunerOptions) (*strategy.StrategyConfig, error) {
	if current == nil {
		return nil, fmt.Errorf("retune: current config required: %w", pkgerrors.ErrInvalidArgument)
	}
	if opts.MinTopCohort <= 0 {
		opts = DefaultTunerOptions()
	}
	if len(top) < opts.MinTopCohort {
		return nil, fmt.Errorf("retune: top cohort %d below minimum %d: %w",
			len(top), opts.MinTopCohort, pkgerrors.ErrInsufficientData)
	}

	next := &strategy.StrategyConfig{
		Weights:          current.Weights,
		TopicWeights:     current.TopicWeights,
		ContentRules:     current.ContentRules,
		AutoPublish:      current.AutoPublish,
		MaxPostsPerDay:   current.MaxPostsPerDay,
		RefreshThreshold: current.RefreshThreshold,
		CreatedBy:        "tuner",
	}

	var sumE, sumS, sumM, sumWords float64
	for _, p := range top {
		sumE += p.Engagement
		sumS += p.SEO
		sumM += p.Monetization
		sumWords += float64(p.WordCount)
	}
	n := float64(len(top))
	meanE, meanS, meanM := sumE/n, sumS/n, sumM/n

	if total := meanE + meanS + meanM; total > 0 {
		next.Weights = datatypes.NewJSONType(flooredWeights(strategy.SuccessWeights{
			Engagement:   meanE / total,
			SEO:          meanS / total,
			Monetization: meanM / total,
		}, opts.WeightFloor))
	}

	next.TopicWeights = datatypes.NewJSONType(nudgedTopicWeights(current, top, bottom, opts.TopicNudge))

	rules := current.ContentRules.Data()
	rules.IntroMaxWords = int(math.Min(sumWords/n*0.1, 200))
	next.ContentRules = datatypes.NewJSONType(rules)

	return next, nil
}

// flooredWeights pins collapsed weights at the floor and redistributes the
// remaining mass across the others, so the three still sum to 1.0 and no
// weight ends up below the floor.
func flooredWeights(w strategy.SuccessWeights, floor float64) strategy.SuccessWeights {
	raw := []float64{w.Engagement, w.SEO, w.Monetization}
	floored := make([]bool, len(raw))

	sumUnfloored := 0.0
	flooredCount := 0
	for i, v := range raw {
		if v < floor {
			raw[i] = floor
			floored[i] = true
			flooredCount++
			continue
		}
		sumUnfloored += v
	}

	remaining := 1 - floor*float64(flooredCount)
	if sumUnfloored > 0 && remaining > 0 {
		for i := range raw {
			if !floored[i] {
				raw[i] = raw[i] / sumUnfloored * remaining
			}
		}
	}

	return strategy.SuccessWeights{
		Engagement:   round4(raw[0]),
		SEO:          round4(raw[1]),
		Monetization: round4(raw[2]),
	}
}

// nudgedTopicWeights moves each category's preference toward
// clamp(ratio*0.5, 0.5, 2.0) where ratio compares the category's share of the
// top cohort to its share of the bottom cohort, with add-one smoothing so an
// absent category cannot divide by zero.
func nudgedTopicWeights(current *strategy.StrategyConfig, top, bottom []Performer, nudge float64) map[string]float64 {
	topCount := map[string]int{}
	bottomCount := map[string]int{}
	categories := map[string]bool{}
	for _, p := range top {
		if p.Category == "" {
			continue
		}
		topCount[p.Category]++
		categories[p.Category] = true
	}
	for _, p := range bottom {
		if p.Category == "" {
			continue
		}
		bottomCount[p.Category]++
		categories[p.Category] = true
	}

	out := map[string]float64{}
	for k, v := range current.TopicWeights.Data() {
		out[k] = v
	}
	for cat := range categories {
		topShare := float64(topCount[cat]+1) / float64(len(top)+1)
		bottomShare := float64(bottomCount[cat]+1) / float64(len(bottom)+1)
		ratio := topShare / bottomShare

		target := Clamp(ratio*0.5, 0.5, 2.0)
		old, ok := out[cat]
		if !ok {
			old = 1.0
		}
		out[cat] = round4(old + (target-old)*nudge)
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
