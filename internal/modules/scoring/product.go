package scoring

import (
	"strings"

	"github.com/yungbote/glowstack-backend/internal/domain/catalog"
)

// Product scoring constants. The base score is what an unmatched or empty
// ingredient list degenerates to; every adjustment is bounded so a single
// ingredient can never dominate.
const (
	productBaseScore = 50.0

	maxBeneficialScore = 40.0
	maxHarmfulPenalty  = -40.0
	maxConcentration   = 20.0
	maxEvidence        = 20.0

	fragrancePenaltyPoints = -6.0
	fragranceSensitiveDock = 10.0

	skinCompatStart    = 50.0
	skinCompatBestFor  = 6.0
	skinCompatAvoidFor = 8.0

	maxProsEntries = 5
	maxConsEntries = 5
)

// SkinTypes are the compatibility buckets every product is scored against.
var SkinTypes = []string{"normal", "oily", "dry", "combination", "sensitive"}

type safetyTier int

const (
	tierSafe safetyTier = iota
	tierModerate
	tierRisky
)

// safetyTierFor collapses the 0-5 rating. A rating of 0 means "unrated", which
// is treated as moderate rather than risky.
func safetyTierFor(rating int) safetyTier {
	switch {
	case rating >= 4:
		return tierSafe
	case rating == 3, rating == 0:
		return tierModerate
	default:
		return tierRisky
	}
}

// contributionPoints is the signed point table keyed by (category, tier).
// Fragrance is handled separately: it always penalizes.
var contributionPoints = map[string][3]float64{
	catalog.CategoryActive:       {8, 3, -4},
	catalog.CategoryEmollient:    {4, 2, -3},
	catalog.CategoryPreservative: {1, -1, -5},
	catalog.CategorySurfactant:   {2, -1, -4},
	catalog.CategoryOther:        {2, 1, -3},
}

// ConcentrationWeight approximates an ingredient's proportion in the
// formulation from its label position: earlier entries count for more.
func ConcentrationWeight(index int) float64 {
	switch {
	case index < 5:
		return 1.0
	case index < 10:
		return 0.7
	case index < 20:
		return 0.4
	default:
		return 0.2
	}
}

// EvidenceWeight scales a contribution by how well the ingredient's claims are
// supported.
func EvidenceWeight(level string) float64 {
	switch level {
	case catalog.EvidenceStrong:
		return 1.0
	case catalog.EvidenceModerate:
		return 0.7
	case catalog.EvidenceLimited:
		return 0.4
	default:
		return 0.2
	}
}

type ProductScoreResult struct {
	OverallScore       float64
	BeneficialScore    float64
	HarmfulPenalty     float64
	ConcentrationScore float64
	EvidenceScore      float64

	SkinTypeCompat map[string]float64

	Pros    []string
	Cons    []string
	BestFor []string
	AvoidIf []string

	MatchedIngredients int
	TotalIngredients   int
}

// ScoreProduct turns an ordered ingredient-name list plus resolved facts into a
// ProductScoreResult. Names with no matching fact are skipped silently: they
// neither help nor hurt. An empty or fully-unmatched list is a valid result
// that degenerates to the base score.
func ScoreProduct(ingredientNames []string, facts map[string]*catalog.IngredientFact) ProductScoreResult {
	res := ProductScoreResult{
		SkinTypeCompat:   make(map[string]float64, len(SkinTypes)),
		TotalIngredients: len(ingredientNames),
	}
	for _, t := range SkinTypes {
		res.SkinTypeCompat[t] = skinCompatStart
	}

	var beneficial, harmful, evidenceAccum float64
	var pros, cons []string

	for idx, name := range ingredientNames {
		fact := facts[normalizeIngredientName(name)]
		if fact == nil {
			continue
		}
		res.MatchedIngredients++

		cw := ConcentrationWeight(idx)
		ew := EvidenceWeight(fact.EvidenceLevel)
		evidenceAccum += ew * cw

		var points float64
		if fact.Category == catalog.CategoryFragrance {
			// Fragrance penalizes regardless of its nominal safety rating and
			// additionally docks sensitive-skin compatibility.
			points = fragrancePenaltyPoints
			res.SkinTypeCompat["sensitive"] -= fragranceSensitiveDock * cw
		} else {
			table, ok := contributionPoints[fact.Category]
			if !ok {
				table = contributionPoints[catalog.CategoryOther]
			}
			points = table[safetyTierFor(fact.SafetyRating)]
		}

		contribution := points * cw * ew
		if contribution >= 0 {
			beneficial += contribution
			if len(fact.Benefits) > 0 {
				pros = append(pros, fact.Benefits[0])
			}
		} else {
			harmful += contribution
			if len(fact.Concerns) > 0 {
				cons = append(cons, fact.Concerns[0])
			}
		}

		for _, tag := range fact.BestFor {
			if t, ok := knownSkinType(tag); ok {
				res.SkinTypeCompat[t] += skinCompatBestFor * cw
			}
		}
		for _, tag := range fact.AvoidFor {
			if t, ok := knownSkinType(tag); ok {
				res.SkinTypeCompat[t] -= skinCompatAvoidFor * cw
			}
		}
	}

	for t, v := range res.SkinTypeCompat {
		res.SkinTypeCompat[t] = Round1(Clamp(v, 0, 100))
	}

	res.BeneficialScore = Round1(minFloat(beneficial, maxBeneficialScore))
	res.HarmfulPenalty = Round1(maxFloat(harmful, maxHarmfulPenalty))
	if res.TotalIngredients > 0 {
		res.ConcentrationScore = Round1(float64(res.MatchedIngredients) / float64(res.TotalIngredients) * maxConcentration)
	}
	res.EvidenceScore = Round1(minFloat(evidenceAccum*2, maxEvidence))

	res.OverallScore = Round1(Clamp(
		productBaseScore+res.BeneficialScore+res.HarmfulPenalty+res.ConcentrationScore/2+res.EvidenceScore/2,
		0, 100,
	))

	res.Pros = dedupeCapped(pros, maxProsEntries)
	res.Cons = dedupeCapped(cons, maxConsEntries)
	res.BestFor, res.AvoidIf = compatTags(res.SkinTypeCompat)

	return res
}

// normalizeIngredientName is the canonical key form shared with the resolver.
func normalizeIngredientName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func knownSkinType(tag string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(tag))
	for _, known := range SkinTypes {
		if t == known {
			return known, true
		}
	}
	return "", false
}

func dedupeCapped(in []string, limit int) []string {
	out := make([]string, 0, limit)
	seen := map[string]bool{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		out = append(out, s)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// compatTags derives best-for/avoid-if skin-type lists from the final
// compatibility map.
func compatTags(compat map[string]float64) (bestFor, avoidIf []string) {
	bestFor = []string{}
	avoidIf = []string{}
	for _, t := range SkinTypes {
		switch v := compat[t]; {
		case v >= 65:
			bestFor = append(bestFor, t)
		case v <= 35:
			avoidIf = append(avoidIf, t)
		}
	}
	return bestFor, avoidIf
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
