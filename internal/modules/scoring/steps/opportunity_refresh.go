package steps

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/glowstack-backend/internal/data/repos"
	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/modules/scoring"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type OpportunityRefreshDeps struct {
	DB            *gorm.DB
	Log           *logger.Logger
	Signals       repos.TopicSignalRepo
	Opportunities repos.TopicOpportunityRepo
}

type OpportunityRefreshInput struct {
	// MaxSignals caps how many staged rows one pass consumes; 0 means all.
	MaxSignals int `json:"max_signals"`
}

type OpportunityRefreshOutput struct {
	Scored  int `json:"scored"`
	Saved   int `json:"saved"`
	Dropped int `json:"dropped"`
}

// OpportunityRefresh drains staged collector signals, keeping the newest
// reading per keyword, and upserts keywords that clear the minimum score.
// Keywords below it are dropped rather than stored as noise. Consumed rows
// are marked processed either way, so a rerun never double-scores.
func OpportunityRefresh(ctx context.Context, deps OpportunityRefreshDeps, in OpportunityRefreshInput) (OpportunityRefreshOutput, error) {
	out := OpportunityRefreshOutput{}
	if deps.DB == nil || deps.Signals == nil || deps.Opportunities == nil {
		return out, fmt.Errorf("opportunity_refresh: missing deps")
	}

	dbc := dbctx.Context{Ctx: ctx}
	staged, err := deps.Signals.ListUnprocessed(dbc, in.MaxSignals)
	if err != nil {
		return out, err
	}
	if len(staged) == 0 {
		return out, nil
	}

	// Rows arrive newest-first, so the first occurrence of a keyword wins and
	// older readings in the same batch are only marked consumed.
	seen := map[string]bool{}
	consumed := make([]uuid.UUID, 0, len(staged))
	for _, sig := range staged {
		consumed = append(consumed, sig.ID)
		if sig.Keyword == "" || seen[sig.Keyword] {
			continue
		}
		seen[sig.Keyword] = true

		res := scoring.ScoreOpportunity(scoring.OpportunitySignals{
			Keyword:               sig.Keyword,
			SearchVolumeIndicator: sig.SearchVolumeIndicator,
			PAAQuestionCount:      sig.PAAQuestionCount,
			TrendGrowth30d:        sig.TrendGrowth30d,
			RedditMentions:        sig.RedditMentions,
			RedditSentiment:       sig.RedditSentiment,
			CompetitorStrength:    sig.CompetitorStrength,
		})
		out.Scored++
		if res.Score < scoring.MinOpportunityScore {
			out.Dropped++
			continue
		}

		row := &types.TopicOpportunity{
			Keyword:               sig.Keyword,
			Score:                 res.Score,
			RedditMentions:        sig.RedditMentions,
			RedditSentiment:       sig.RedditSentiment,
			TrendGrowth30d:        sig.TrendGrowth30d,
			SearchVolumeIndicator: sig.SearchVolumeIndicator,
			PAAQuestionCount:      sig.PAAQuestionCount,
			CompetitorStrength:    sig.CompetitorStrength,
			RecommendedAction:     res.RecommendedAction,
			Status:                types.OpportunityStatusPending,
		}
		if err := deps.Opportunities.Upsert(dbc, row); err != nil {
			return out, err
		}
		out.Saved++
	}

	if err := deps.Signals.MarkProcessed(dbc, consumed); err != nil {
		return out, err
	}

	if deps.Log != nil {
		deps.Log.Info("opportunity refresh finished",
			"signals", len(staged), "scored", out.Scored, "saved", out.Saved, "dropped", out.Dropped)
	}
	return out, nil
}
