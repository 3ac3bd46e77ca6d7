package scoring

import (
	"github.com/yungbote/glowstack-backend/internal/domain/content"
	"github.com/yungbote/glowstack-backend/internal/domain/strategy"
)

// Normalization targets for the performance sub-scores. A post hitting every
// target on every signal scores 100 on that sub-score.
const (
	targetTimeOnPage  = 180.0 // seconds
	targetImpressions = 1000.0
	targetClicks      = 50.0
	targetCTR         = 0.05
	worstPosition     = 10.0

	targetAffiliateClicks = 20.0
	targetConversionRate  = 0.05
	targetRevenue         = 10.0
	targetEPC             = 0.50
)

// MetricsAggregate is a plain arithmetic-mean summary of daily PostMetrics
// rows over a window. CTR is recomputed from summed clicks/impressions rather
// than averaging per-day CTRs, which would bias toward low-impression days.
// Search fields stay nil when no day in the window carried search data.
type MetricsAggregate struct {
	Days int

	AvgTimeOnPage  float64
	BounceRate     float64
	ScrollDepthAvg float64

	SearchImpressions *float64
	SearchClicks      *float64
	CTR               *float64
	AvgPosition       *float64
}

// RevenueAggregate is the per-day mean of daily PostRevenue rows.
type RevenueAggregate struct {
	Days int

	AffiliateClicks float64
	Conversions     float64
	Revenue         float64
}

func AggregateMetrics(rows []*content.PostMetrics) MetricsAggregate {
	agg := MetricsAggregate{}
	if len(rows) == 0 {
		return agg
	}
	agg.Days = len(rows)

	var sumImpr, sumClicks, sumPos float64
	var searchDays int
	for _, r := range rows {
		agg.AvgTimeOnPage += r.AvgTimeOnPage
		agg.BounceRate += r.BounceRate
		agg.ScrollDepthAvg += r.ScrollDepthAvg

		if r.SearchImpressions != nil && r.SearchClicks != nil && r.AvgPosition != nil {
			searchDays++
			sumImpr += float64(*r.SearchImpressions)
			sumClicks += float64(*r.SearchClicks)
			sumPos += *r.AvgPosition
		}
	}
	n := float64(len(rows))
	agg.AvgTimeOnPage /= n
	agg.BounceRate /= n
	agg.ScrollDepthAvg /= n

	if searchDays > 0 {
		sd := float64(searchDays)
		impr := sumImpr / sd
		clicks := sumClicks / sd
		pos := sumPos / sd
		agg.SearchImpressions = &impr
		agg.SearchClicks = &clicks
		agg.AvgPosition = &pos

		ctr := 0.0
		if sumImpr > 0 {
			ctr = sumClicks / sumImpr
		}
		agg.CTR = &ctr
	}
	return agg
}

func AggregateRevenue(rows []*content.PostRevenue) RevenueAggregate {
	agg := RevenueAggregate{}
	if len(rows) == 0 {
		return agg
	}
	agg.Days = len(rows)
	for _, r := range rows {
		agg.AffiliateClicks += float64(r.AffiliateClicks)
		agg.Conversions += float64(r.Conversions)
		agg.Revenue += r.Revenue
	}
	n := float64(len(rows))
	agg.AffiliateClicks /= n
	agg.Conversions /= n
	agg.Revenue /= n
	return agg
}

// ScoreEngagement is the weighted average of time-on-page, inverted bounce
// rate, and scroll depth.
func ScoreEngagement(m MetricsAggregate) float64 {
	timeScore := ratio(m.AvgTimeOnPage, targetTimeOnPage)
	bounceScore := Clamp((1-m.BounceRate)*100, 0, 100)
	scrollScore := Clamp(m.ScrollDepthAvg*100, 0, 100)

	return Round1(Combine(
		Signal{Value: timeScore, Weight: 0.35},
		Signal{Value: bounceScore, Weight: 0.35},
		Signal{Value: scrollScore, Weight: 0.30},
	))
}

// ScoreSEO returns 0 outright when impressions, clicks, or position is absent:
// without search console data there is nothing meaningful to score.
func ScoreSEO(m MetricsAggregate) float64 {
	if m.SearchImpressions == nil || m.SearchClicks == nil || m.AvgPosition == nil {
		return 0
	}

	imprScore := ratio(*m.SearchImpressions, targetImpressions)
	clickScore := ratio(*m.SearchClicks, targetClicks)

	ctr := 0.0
	if m.CTR != nil {
		ctr = *m.CTR
	}
	ctrScore := ratio(ctr, targetCTR)

	// Position score decreases linearly; anything at or past position 10
	// scores 0, position 1 scores 100.
	pos := Clamp(*m.AvgPosition, 1, worstPosition)
	posScore := (worstPosition - pos) / (worstPosition - 1) * 100

	return Round1(Combine(
		Signal{Value: imprScore, Weight: 0.25},
		Signal{Value: clickScore, Weight: 0.25},
		Signal{Value: ctrScore, Weight: 0.25},
		Signal{Value: posScore, Weight: 0.25},
	))
}

func ScoreMonetization(r RevenueAggregate) float64 {
	clickScore := ratio(r.AffiliateClicks, targetAffiliateClicks)

	convRate := 0.0
	if r.AffiliateClicks > 0 {
		convRate = r.Conversions / r.AffiliateClicks
	}
	convScore := ratio(convRate, targetConversionRate)

	revenueScore := ratio(r.Revenue, targetRevenue)

	epc := 0.0
	if r.AffiliateClicks > 0 {
		epc = r.Revenue / r.AffiliateClicks
	}
	epcScore := ratio(epc, targetEPC)

	return Round1(Combine(
		Signal{Value: clickScore, Weight: 0.2},
		Signal{Value: convScore, Weight: 0.3},
		Signal{Value: revenueScore, Weight: 0.3},
		Signal{Value: epcScore, Weight: 0.2},
	))
}

// ScoreSuccess combines the three sub-scores with the current strategy weights.
// Linear in the weights, then clamped.
func ScoreSuccess(engagement, seo, monetization float64, w strategy.SuccessWeights) float64 {
	return Round1(Clamp(
		engagement*w.Engagement+seo*w.SEO+monetization*w.Monetization,
		0, 100,
	))
}

// StrengthWeakness tags the dominant and weakest sub-score for a performance
// row. Ties resolve in the order engagement, seo, monetization.
func StrengthWeakness(engagement, seo, monetization float64) (strength, weakness string) {
	names := []string{"engagement", "seo", "monetization"}
	values := []float64{engagement, seo, monetization}

	best, worst := 0, 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
		if values[i] < values[worst] {
			worst = i
		}
	}
	return names[best], names[worst]
}
