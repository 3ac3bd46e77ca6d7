package steps

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/glowstack-backend/internal/data/repos"
	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/modules/scoring"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type ExperimentResolveDeps struct {
	DB          *gorm.DB
	Log         *logger.Logger
	Experiments repos.PostExperimentRepo
}

type ExperimentResolveInput struct{}

type ExperimentResolveOutput struct {
	Evaluated int `json:"evaluated"`
	Concluded int `json:"concluded"`
	StillOpen int `json:"still_open"`
}

// ExperimentResolve walks every running experiment and concludes the ones
// with a statistically significant winner. Evaluation is pure; the only write
// is the status-guarded conclude.
func ExperimentResolve(ctx context.Context, deps ExperimentResolveDeps, in ExperimentResolveInput) (ExperimentResolveOutput, error) {
	out := ExperimentResolveOutput{}
	if deps.DB == nil || deps.Experiments == nil {
		return out, fmt.Errorf("experiment_resolve: missing deps")
	}

	dbc := dbctx.Context{Ctx: ctx}
	running, err := deps.Experiments.ListRunning(dbc)
	if err != nil {
		return out, err
	}

	for _, exp := range running {
		decision, err := scoring.EvaluateExperiment(exp)
		if err != nil {
			if deps.Log != nil {
				deps.Log.Warn("skipping unevaluable experiment", "experiment_id", exp.ID, "error", err)
			}
			continue
		}
		out.Evaluated++

		if decision.Status != types.ExperimentStatusConcluded {
			out.StillOpen++
			continue
		}
		if err := deps.Experiments.Conclude(dbc, exp.ID, decision.WinnerID); err != nil {
			return out, err
		}
		out.Concluded++
		if deps.Log != nil {
			kvs := []any{"experiment_id", exp.ID, "post_id", exp.PostID, "winner", decision.WinnerID}
			if decision.PValue != nil {
				kvs = append(kvs, "p_value", *decision.PValue)
			}
			deps.Log.Info("experiment concluded", kvs...)
		}
	}

	if deps.Log != nil {
		deps.Log.Info("experiment resolve finished",
			"evaluated", out.Evaluated, "concluded", out.Concluded, "still_open", out.StillOpen)
	}
	return out, nil
}
