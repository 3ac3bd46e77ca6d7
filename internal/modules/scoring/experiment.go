package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/yungbote/glowstack-backend/internal/domain/experiments"
	pkgerrors "github.com/yungbote/glowstack-backend/internal/pkg/errors"
)

// ExperimentDecision is the outcome of one evaluation pass. Status stays
// "running" both when the impression gate has not been met and when the gate
// passed but the lead is statistically inconclusive; the latter is a valid,
// expected outcome, not an error.
type ExperimentDecision struct {
	Status   string
	WinnerID string
	PValue   *float64
	ZScore   *float64
}

// EvaluateExperiment ranks variants by conversion rate and compares the top
// two with a two-proportion z-test. The experiment concludes only when every
// variant has cleared the impression gate and the two-tailed p-value beats
// 1 - confidenceThreshold.
//
// Concluding is the caller's write; this function is pure and evaluating an
// already-concluded experiment just restates the stored winner.
func EvaluateExperiment(exp *experiments.PostExperiment) (ExperimentDecision, error) {
	if exp == nil || len(exp.Variants) < 2 {
		return ExperimentDecision{}, fmt.Errorf("evaluate experiment: need at least two variants: %w",
			pkgerrors.ErrInvalidArgument)
	}

	if exp.Status == experiments.ExperimentStatusConcluded {
		return ExperimentDecision{Status: experiments.ExperimentStatusConcluded, WinnerID: exp.WinnerID}, nil
	}

	for _, v := range exp.Variants {
		if v.Impressions < exp.MinImpressionsPerVariant {
			return ExperimentDecision{Status: experiments.ExperimentStatusRunning}, nil
		}
	}

	ranked := make([]experiments.Variant, len(exp.Variants))
	copy(ranked, exp.Variants)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ConversionRate() > ranked[j].ConversionRate()
	})

	z := twoProportionZ(ranked[0], ranked[1])
	p := twoTailedP(z)

	decision := ExperimentDecision{
		Status: experiments.ExperimentStatusRunning,
		PValue: &p,
		ZScore: &z,
	}
	if p < 1-exp.ConfidenceThreshold {
		decision.Status = experiments.ExperimentStatusConcluded
		decision.WinnerID = ranked[0].ID
	}
	return decision, nil
}

// twoProportionZ computes |pA-pB| / se with the pooled proportion. Zero sample
// or zero standard error yields z = 0 (no significance).
func twoProportionZ(a, b experiments.Variant) float64 {
	nA := float64(a.Impressions)
	nB := float64(b.Impressions)
	if nA == 0 || nB == 0 {
		return 0
	}

	pooled := (float64(a.Conversions) + float64(b.Conversions)) / (nA + nB)
	se := math.Sqrt(pooled * (1 - pooled) * (1/nA + 1/nB))
	if se == 0 {
		return 0
	}
	return math.Abs(a.ConversionRate()-b.ConversionRate()) / se
}

func twoTailedP(z float64) float64 {
	return 2 * (1 - normalCDF(math.Abs(z)))
}

// normalCDF is the Abramowitz & Stegun 26.2.17 polynomial approximation of the
// standard normal CDF (|error| < 7.5e-8). The fixed coefficients are a
// documented approximation the confidence-threshold semantics were validated
// against; do not swap in an exact erf without re-validating callers.
func normalCDF(z float64) float64 {
	if z < 0 {
		return 1 - normalCDF(-z)
	}
	k := 1 / (1 + 0.2316419*z)
	poly := k * (0.319381530 + k*(-0.356563782+k*(1.781477937+k*(-1.821255978+k*1.330274429))))
	return 1 - math.Exp(-z*z/2)/math.Sqrt(2*math.Pi)*poly
}
