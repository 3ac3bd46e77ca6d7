package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yungbote/glowstack-backend/internal/app"
	redisclient "github.com/yungbote/glowstack-backend/internal/clients/redis"
	"github.com/yungbote/glowstack-backend/internal/data/db"
	"github.com/yungbote/glowstack-backend/internal/data/repos"
	"github.com/yungbote/glowstack-backend/internal/jobs"
	"github.com/yungbote/glowstack-backend/internal/modules/scoring/steps"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
	"github.com/yungbote/glowstack-backend/internal/services"
)

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "dev"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := app.Load()

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	gdb := dbService.DB()

	// Redis (optional)
	var cache redisclient.ConfigCache
	if cfg.RedisEnabled {
		cache, err = redisclient.NewConfigCache(log)
		if err != nil {
			log.Warn("Redis init failed, continuing without strategy cache", "error", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	// Repos
	log.Info("Setting up repos...")
	factRepo := repos.NewIngredientFactRepo(gdb, log)
	productRepo := repos.NewProductRepo(gdb, log)
	productScoreRepo := repos.NewProductScoreRepo(gdb, log)
	postRepo := repos.NewPostRepo(gdb, log)
	postMetricsRepo := repos.NewPostMetricsRepo(gdb, log)
	postRevenueRepo := repos.NewPostRevenueRepo(gdb, log)
	postPerformanceRepo := repos.NewPostPerformanceRepo(gdb, log)
	strategyConfigRepo := repos.NewStrategyConfigRepo(gdb, log)
	topicSignalRepo := repos.NewTopicSignalRepo(gdb, log)
	opportunityRepo := repos.NewTopicOpportunityRepo(gdb, log)
	experimentRepo := repos.NewPostExperimentRepo(gdb, log)

	// Services
	log.Info("Setting up services...")
	resolver := services.NewIngredientResolver(gdb, log, factRepo)
	strategyService := services.NewStrategyService(gdb, log, strategyConfigRepo, cache)

	ctx := context.Background()
	seed, err := app.LoadStrategySeed(cfg.StrategySeedPath)
	if err != nil {
		log.Warn("Strategy seed unavailable, skipping first-boot seeding", "error", err)
	} else if err := strategyService.SeedIfEmpty(ctx, seed); err != nil {
		log.Error("Strategy seeding failed", "error", err)
		os.Exit(1)
	}

	// Scheduler
	log.Info("Setting up scheduler...")
	sched := jobs.NewScheduler(log, cfg.JobTimeout)

	if err := sched.Add("product_rescore", cfg.ProductRescoreSpec, func(ctx context.Context) error {
		_, err := steps.ProductRescore(ctx, steps.ProductRescoreDeps{
			DB: gdb, Log: log,
			Products: productRepo,
			Scores:   productScoreRepo,
			Resolver: resolver,
		}, steps.ProductRescoreInput{})
		return err
	}); err != nil {
		log.Error("Scheduling product_rescore failed", "error", err)
		os.Exit(1)
	}

	if err := sched.Add("performance_refresh", cfg.PerformanceRefreshSpec, func(ctx context.Context) error {
		_, err := steps.PerformanceRefresh(ctx, steps.PerformanceRefreshDeps{
			DB: gdb, Log: log,
			Posts:       postRepo,
			Metrics:     postMetricsRepo,
			Revenue:     postRevenueRepo,
			Performance: postPerformanceRepo,
			Strategy:    strategyService,
		}, steps.PerformanceRefreshInput{})
		return err
	}); err != nil {
		log.Error("Scheduling performance_refresh failed", "error", err)
		os.Exit(1)
	}

	if err := sched.Add("opportunity_refresh", cfg.OpportunityRefreshSpec, func(ctx context.Context) error {
		_, err := steps.OpportunityRefresh(ctx, steps.OpportunityRefreshDeps{
			DB: gdb, Log: log,
			Signals:       topicSignalRepo,
			Opportunities: opportunityRepo,
		}, steps.OpportunityRefreshInput{})
		return err
	}); err != nil {
		log.Error("Scheduling opportunity_refresh failed", "error", err)
		os.Exit(1)
	}

	if err := sched.Add("strategy_retune", cfg.StrategyRetuneSpec, func(ctx context.Context) error {
		_, err := steps.StrategyRetune(ctx, steps.StrategyRetuneDeps{
			DB: gdb, Log: log,
			Performance: postPerformanceRepo,
			Strategy:    strategyService,
		}, steps.StrategyRetuneInput{
			Window:      cfg.TunerWindow,
			CohortSize:  cfg.TunerCohortSize,
			WeightFloor: cfg.TunerWeightFloor,
			TopicNudge:  cfg.TunerTopicNudge,
		})
		return err
	}); err != nil {
		log.Error("Scheduling strategy_retune failed", "error", err)
		os.Exit(1)
	}

	if err := sched.Add("experiment_resolve", cfg.ExperimentResolveSpec, func(ctx context.Context) error {
		_, err := steps.ExperimentResolve(ctx, steps.ExperimentResolveDeps{
			DB: gdb, Log: log,
			Experiments: experimentRepo,
		}, steps.ExperimentResolveInput{})
		return err
	}); err != nil {
		log.Error("Scheduling experiment_resolve failed", "error", err)
		os.Exit(1)
	}

	sched.Start()
	log.Info("glowstack scoring worker up", "mode", cfg.Mode)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	<-sched.Stop().Done()
	log.Info("shutdown complete")
}
