package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/yungbote/glowstack-backend/internal/domain/content"
	"github.com/yungbote/glowstack-backend/internal/domain/strategy"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestScoreEngagement_WorkedExample(t *testing.T) {
	// 100*0.35 + 80*0.35 + 100*0.30 = 93
	got := ScoreEngagement(MetricsAggregate{
		AvgTimeOnPage:  180,
		BounceRate:     0.2,
		ScrollDepthAvg: 1.0,
	})
	if got != 93 {
		t.Fatalf("expected 93, got %v", got)
	}
}

func TestScoreEngagement_Bounded(t *testing.T) {
	got := ScoreEngagement(MetricsAggregate{AvgTimeOnPage: 10000, BounceRate: -1, ScrollDepthAvg: 5})
	if got < 0 || got > 100 {
		t.Fatalf("engagement out of bounds: %v", got)
	}
}

func TestScoreSEO_ZeroWhenAnyRequiredFieldAbsent(t *testing.T) {
	full := MetricsAggregate{
		SearchImpressions: floatPtr(500),
		SearchClicks:      floatPtr(25),
		CTR:               floatPtr(0.05),
		AvgPosition:       floatPtr(3),
	}
	if ScoreSEO(full) == 0 {
		t.Fatalf("fully populated metrics should score above 0")
	}

	for name, mutate := range map[string]func(m MetricsAggregate) MetricsAggregate{
		"impressions": func(m MetricsAggregate) MetricsAggregate { m.SearchImpressions = nil; return m },
		"clicks":      func(m MetricsAggregate) MetricsAggregate { m.SearchClicks = nil; return m },
		"position":    func(m MetricsAggregate) MetricsAggregate { m.AvgPosition = nil; return m },
	} {
		if got := ScoreSEO(mutate(full)); got != 0 {
			t.Fatalf("missing %s: expected 0, got %v", name, got)
		}
	}
}

func TestScoreSEO_PositionLinear(t *testing.T) {
	at := func(pos float64) float64 {
		return ScoreSEO(MetricsAggregate{
			SearchImpressions: floatPtr(0),
			SearchClicks:      floatPtr(0),
			CTR:               floatPtr(0),
			AvgPosition:       floatPtr(pos),
		})
	}
	if at(1) != 25 {
		t.Fatalf("position 1 should contribute its full 0.25 share, got %v", at(1))
	}
	if at(10) != 0 {
		t.Fatalf("position 10 should contribute 0, got %v", at(10))
	}
	if at(15) != 0 {
		t.Fatalf("position past 10 should contribute 0, got %v", at(15))
	}
	if !(at(1) > at(5) && at(5) > at(9)) {
		t.Fatalf("position score should decrease: %v %v %v", at(1), at(5), at(9))
	}
}

func TestScoreMonetization_ZeroTraffic(t *testing.T) {
	if got := ScoreMonetization(RevenueAggregate{}); got != 0 {
		t.Fatalf("no telemetry should score 0, got %v", got)
	}
}

func TestScoreMonetization_AtTargets(t *testing.T) {
	got := ScoreMonetization(RevenueAggregate{
		Days:            7,
		AffiliateClicks: 20,
		Conversions:     1, // 5% of 20
		Revenue:         10,
	})
	if got != 100 {
		t.Fatalf("hitting every target should score 100 (EPC 10/20=0.5), got %v", got)
	}
}

func TestScoreSuccess_LinearInWeights(t *testing.T) {
	single := ScoreSuccess(50, 0, 0, strategy.SuccessWeights{Engagement: 0.2})
	double := ScoreSuccess(50, 0, 0, strategy.SuccessWeights{Engagement: 0.4})
	if double != single*2 {
		t.Fatalf("doubling the weight should double the contribution: %v vs %v", single, double)
	}

	// Clamping bounds the linearity.
	if got := ScoreSuccess(100, 100, 100, strategy.SuccessWeights{Engagement: 2, SEO: 2, Monetization: 2}); got != 100 {
		t.Fatalf("expected clamp at 100, got %v", got)
	}
}

func TestAggregateMetrics_CTRFromSummedCounts(t *testing.T) {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rows := []*content.PostMetrics{
		// Low-impression day with a flattering per-day CTR of 50%.
		{Day: day, SearchImpressions: intPtr(2), SearchClicks: intPtr(1), AvgPosition: floatPtr(4)},
		// High-impression day with CTR of 1%.
		{Day: day.AddDate(0, 0, 1), SearchImpressions: intPtr(1000), SearchClicks: intPtr(10), AvgPosition: floatPtr(4)},
	}

	agg := AggregateMetrics(rows)
	if agg.CTR == nil {
		t.Fatalf("expected CTR to be present")
	}
	want := 11.0 / 1002.0
	if math.Abs(*agg.CTR-want) > 1e-9 {
		t.Fatalf("CTR must come from summed counts: want %v got %v", want, *agg.CTR)
	}
}

func TestAggregateMetrics_NoSearchDataLeavesFieldsNil(t *testing.T) {
	rows := []*content.PostMetrics{
		{AvgTimeOnPage: 120, BounceRate: 0.5, ScrollDepthAvg: 0.6},
		{AvgTimeOnPage: 60, BounceRate: 0.3, ScrollDepthAvg: 0.8},
	}
	agg := AggregateMetrics(rows)
	if agg.SearchImpressions != nil || agg.SearchClicks != nil || agg.AvgPosition != nil || agg.CTR != nil {
		t.Fatalf("search fields should stay nil without search telemetry")
	}
	if agg.AvgTimeOnPage != 90 {
		t.Fatalf("expected mean time 90, got %v", agg.AvgTimeOnPage)
	}
	if got := ScoreSEO(agg); got != 0 {
		t.Fatalf("aggregate without search data must score 0 SEO, got %v", got)
	}
}

func TestAggregateRevenue_PlainMeans(t *testing.T) {
	rows := []*content.PostRevenue{
		{AffiliateClicks: 10, Conversions: 2, Revenue: 4},
		{AffiliateClicks: 30, Conversions: 0, Revenue: 6},
	}
	agg := AggregateRevenue(rows)
	if agg.AffiliateClicks != 20 || agg.Conversions != 1 || agg.Revenue != 5 {
		t.Fatalf("unexpected aggregate: %+v", agg)
	}
}

func TestStrengthWeakness(t *testing.T) {
	s, w := StrengthWeakness(80, 20, 50)
	if s != "engagement" || w != "seo" {
		t.Fatalf("unexpected tags: %s / %s", s, w)
	}
	s, w = StrengthWeakness(10, 10, 10)
	if s != "engagement" || w != "engagement" {
		t.Fatalf("ties should resolve to the first sub-score, got %s / %s", s, w)
	}
}
