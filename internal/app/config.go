package app

import (
	"time"

	"github.com/yungbote/glowstack-backend/internal/platform/envutil"
)

// Config is the process configuration, read once at boot from the
// environment. Database and redis connection settings are read by their own
// packages.
type Config struct {
	Mode string

	// Cron specs for the recurring scoring passes, standard 5-field format.
	ProductRescoreSpec     string
	PerformanceRefreshSpec string
	OpportunityRefreshSpec string
	StrategyRetuneSpec     string
	ExperimentResolveSpec  string

	JobTimeout time.Duration

	// Tuner inputs: which performance window feeds the retune pass, how many
	// posts make up each cohort, and the floor/nudge parameters.
	TunerWindow      string
	TunerCohortSize  int
	TunerWeightFloor float64
	TunerTopicNudge  float64

	// StrategySeedPath points at the YAML installed as version 1 when the
	// strategy table is empty.
	StrategySeedPath string

	// RedisEnabled turns the strategy config cache on; scoring works without
	// it, just slower.
	RedisEnabled bool
}

func Load() Config {
	return Config{
		Mode: envutil.Str("APP_MODE", "dev"),

		ProductRescoreSpec:     envutil.Str("CRON_PRODUCT_RESCORE", "0 3 * * *"),
		PerformanceRefreshSpec: envutil.Str("CRON_PERFORMANCE_REFRESH", "0 * * * *"),
		OpportunityRefreshSpec: envutil.Str("CRON_OPPORTUNITY_REFRESH", "0 4 * * *"),
		StrategyRetuneSpec:     envutil.Str("CRON_STRATEGY_RETUNE", "0 5 * * 1"),
		ExperimentResolveSpec:  envutil.Str("CRON_EXPERIMENT_RESOLVE", "30 * * * *"),

		JobTimeout: time.Duration(envutil.Int("JOB_TIMEOUT_MINUTES", 30)) * time.Minute,

		TunerWindow:      envutil.Str("TUNER_WINDOW", "30d"),
		TunerCohortSize:  envutil.Int("TUNER_COHORT_SIZE", 10),
		TunerWeightFloor: envutil.Float("TUNER_WEIGHT_FLOOR", 0.05),
		TunerTopicNudge:  envutil.Float("TUNER_TOPIC_NUDGE", 0.5),

		StrategySeedPath: envutil.Str("STRATEGY_SEED_PATH", "config/strategy_seed.yaml"),

		RedisEnabled: envutil.Bool("REDIS_ENABLED", false),
	}
}
