package scoring

import (
	"fmt"
	"testing"

	"github.com/yungbote/glowstack-backend/internal/domain/catalog"
)

func fact(name, category string, rating int, evidence string) *catalog.IngredientFact {
	return &catalog.IngredientFact{
		Name:          name,
		Category:      category,
		SafetyRating:  rating,
		EvidenceLevel: evidence,
	}
}

func factIndex(facts ...*catalog.IngredientFact) map[string]*catalog.IngredientFact {
	out := map[string]*catalog.IngredientFact{}
	for _, f := range facts {
		out[normalizeIngredientName(f.Name)] = f
	}
	return out
}

func TestScoreProduct_EmptyListDegeneratesToBase(t *testing.T) {
	res := ScoreProduct(nil, map[string]*catalog.IngredientFact{})
	if res.OverallScore != productBaseScore {
		t.Fatalf("expected base score %v, got %v", productBaseScore, res.OverallScore)
	}
	if len(res.Pros) != 0 || len(res.Cons) != 0 {
		t.Fatalf("expected empty pros/cons, got %v / %v", res.Pros, res.Cons)
	}
}

func TestScoreProduct_NoMatchesIsValidBaseResult(t *testing.T) {
	res := ScoreProduct([]string{"mystery extract", "unknowns"}, map[string]*catalog.IngredientFact{})
	if res.OverallScore != productBaseScore {
		t.Fatalf("expected base score for unmatched list, got %v", res.OverallScore)
	}
	if res.MatchedIngredients != 0 || res.TotalIngredients != 2 {
		t.Fatalf("unexpected match counts: %d/%d", res.MatchedIngredients, res.TotalIngredients)
	}
}

func TestScoreProduct_OverallAlwaysBounded(t *testing.T) {
	// Stack the deck in both directions; the overall score must stay in [0,100].
	var goodNames, badNames []string
	good := map[string]*catalog.IngredientFact{}
	bad := map[string]*catalog.IngredientFact{}
	for i := 0; i < 30; i++ {
		gn := fmt.Sprintf("good-%d", i)
		bn := fmt.Sprintf("bad-%d", i)
		goodNames = append(goodNames, gn)
		badNames = append(badNames, bn)
		good[gn] = fact(gn, catalog.CategoryActive, 5, catalog.EvidenceStrong)
		bad[bn] = fact(bn, catalog.CategoryPreservative, 1, catalog.EvidenceStrong)
	}

	for _, tc := range []struct {
		names []string
		facts map[string]*catalog.IngredientFact
	}{
		{goodNames, good},
		{badNames, bad},
	} {
		res := ScoreProduct(tc.names, tc.facts)
		if res.OverallScore < 0 || res.OverallScore > 100 {
			t.Fatalf("overall score out of bounds: %v", res.OverallScore)
		}
		for skinType, v := range res.SkinTypeCompat {
			if v < 0 || v > 100 {
				t.Fatalf("compat for %s out of bounds: %v", skinType, v)
			}
		}
	}
}

func TestConcentrationWeight_MonotoneNonIncreasing(t *testing.T) {
	prev := ConcentrationWeight(0)
	for idx := 1; idx <= 25; idx++ {
		w := ConcentrationWeight(idx)
		if w > prev {
			t.Fatalf("weight increased at index %d: %v > %v", idx, w, prev)
		}
		prev = w
	}
}

func TestScoreProduct_FragranceAlwaysDocksSensitive(t *testing.T) {
	for rating := 0; rating <= 5; rating++ {
		f := fact("parfum", catalog.CategoryFragrance, rating, catalog.EvidenceStrong)
		res := ScoreProduct([]string{"parfum"}, factIndex(f))
		if res.SkinTypeCompat["sensitive"] >= skinCompatStart {
			t.Fatalf("rating %d: sensitive compat not reduced: %v", rating, res.SkinTypeCompat["sensitive"])
		}
		if res.HarmfulPenalty >= 0 {
			t.Fatalf("rating %d: fragrance did not penalize: %v", rating, res.HarmfulPenalty)
		}
	}
}

func TestScoreProduct_SafetyTierCollapse(t *testing.T) {
	if safetyTierFor(5) != tierSafe || safetyTierFor(4) != tierSafe {
		t.Fatalf("ratings 4-5 must be safe")
	}
	if safetyTierFor(3) != tierModerate {
		t.Fatalf("rating 3 must be moderate")
	}
	if safetyTierFor(0) != tierModerate {
		t.Fatalf("rating 0 (unrated) must be treated as moderate")
	}
	if safetyTierFor(1) != tierRisky || safetyTierFor(2) != tierRisky {
		t.Fatalf("ratings 1-2 must be risky")
	}
}

func TestScoreProduct_EvidenceWeightScalesContribution(t *testing.T) {
	strong := fact("niacinamide", catalog.CategoryActive, 5, catalog.EvidenceStrong)
	anecdotal := fact("niacinamide", catalog.CategoryActive, 5, catalog.EvidenceAnecdotal)

	strongRes := ScoreProduct([]string{"niacinamide"}, factIndex(strong))
	anecdotalRes := ScoreProduct([]string{"niacinamide"}, factIndex(anecdotal))

	if strongRes.BeneficialScore <= anecdotalRes.BeneficialScore {
		t.Fatalf("strong evidence should contribute more: %v vs %v",
			strongRes.BeneficialScore, anecdotalRes.BeneficialScore)
	}
}

func TestScoreProduct_ProsConsDedupedAndCapped(t *testing.T) {
	names := make([]string, 0, 8)
	facts := map[string]*catalog.IngredientFact{}
	for i := 0; i < 8; i++ {
		n := fmt.Sprintf("active-%d", i)
		f := fact(n, catalog.CategoryActive, 5, catalog.EvidenceStrong)
		if i < 4 {
			f.Benefits = []string{"hydrates"}
		} else {
			f.Benefits = []string{fmt.Sprintf("benefit-%d", i)}
		}
		names = append(names, n)
		facts[n] = f
	}

	res := ScoreProduct(names, facts)
	if len(res.Pros) > maxProsEntries {
		t.Fatalf("pros exceed cap: %v", res.Pros)
	}
	seen := map[string]int{}
	for _, p := range res.Pros {
		seen[p]++
		if seen[p] > 1 {
			t.Fatalf("duplicate pro entry: %q", p)
		}
	}
}

func TestScoreProduct_BestForAvoidForNudgeCompat(t *testing.T) {
	f := fact("squalane", catalog.CategoryEmollient, 5, catalog.EvidenceModerate)
	f.BestFor = []string{"dry"}
	f.AvoidFor = []string{"oily"}

	res := ScoreProduct([]string{"squalane"}, factIndex(f))
	if res.SkinTypeCompat["dry"] <= skinCompatStart {
		t.Fatalf("dry compat not nudged up: %v", res.SkinTypeCompat["dry"])
	}
	if res.SkinTypeCompat["oily"] >= skinCompatStart {
		t.Fatalf("oily compat not nudged down: %v", res.SkinTypeCompat["oily"])
	}
	if res.SkinTypeCompat["normal"] != skinCompatStart {
		t.Fatalf("untouched skin type moved: %v", res.SkinTypeCompat["normal"])
	}
}

func TestScoreProduct_MatchingIsCaseInsensitive(t *testing.T) {
	f := fact("Hyaluronic Acid", catalog.CategoryActive, 5, catalog.EvidenceStrong)
	res := ScoreProduct([]string{"  HYALURONIC ACID "}, factIndex(f))
	if res.MatchedIngredients != 1 {
		t.Fatalf("expected case-insensitive match, got %d matches", res.MatchedIngredients)
	}
}
