package scoring

import (
	"math"

	"github.com/yungbote/glowstack-backend/internal/domain/opportunity"
)

// MinOpportunityScore is the global floor below which an opportunity carries no
// actionable signal; callers drop such keywords instead of persisting them.
const MinOpportunityScore = 40

const (
	actionCreateThreshold = 70
	actionUpdateThreshold = 50
)

// OpportunitySignals are already-fetched raw signals for one keyword. Scraping
// is out of scope; connectors write these records and the scorer only reads.
type OpportunitySignals struct {
	Keyword string

	SearchVolumeIndicator float64
	PAAQuestionCount      int
	TrendGrowth30d        float64 // percent, signed
	RedditMentions        int
	RedditSentiment       float64 // 0-1
	CompetitorStrength    float64 // 0-100
}

type OpportunityResult struct {
	Score int

	SearchIntentScore        float64
	TrendGrowthScore         float64
	RedditBuzzScore          float64
	CompetitionWeaknessScore float64

	RecommendedAction string
}

// ScoreOpportunity ranks how worthwhile a keyword is to cover. A 0% growth
// keyword scores neutral on the trend component; swings beyond ±50 points
// saturate the scale.
func ScoreOpportunity(s OpportunitySignals) OpportunityResult {
	res := OpportunityResult{}

	res.SearchIntentScore = math.Min(100, s.SearchVolumeIndicator*0.7+float64(s.PAAQuestionCount)*5)
	res.TrendGrowthScore = Clamp(50+s.TrendGrowth30d, 0, 100)
	res.RedditBuzzScore = math.Min(100, float64(s.RedditMentions)*2+s.RedditSentiment*20)
	res.CompetitionWeaknessScore = 100 - s.CompetitorStrength

	res.Score = int(math.Round(
		res.SearchIntentScore*0.4 +
			res.TrendGrowthScore*0.3 +
			res.RedditBuzzScore*0.2 +
			res.CompetitionWeaknessScore*0.1,
	))

	switch {
	case res.Score >= actionCreateThreshold:
		res.RecommendedAction = opportunity.ActionCreateNew
	case res.Score >= actionUpdateThreshold:
		res.RecommendedAction = opportunity.ActionUpdateExisting
	default:
		res.RecommendedAction = opportunity.ActionIgnore
	}
	return res
}
