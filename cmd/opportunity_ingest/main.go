package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/yungbote/glowstack-backend/internal/data/db"
	"github.com/yungbote/glowstack-backend/internal/data/repos"
	types "github.com/yungbote/glowstack-backend/internal/domain"
	"github.com/yungbote/glowstack-backend/internal/modules/scoring/steps"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type signalRecord struct {
	Keyword               string  `json:"keyword"`
	SearchVolumeIndicator float64 `json:"search_volume_indicator"`
	PAAQuestionCount      int     `json:"paa_question_count"`
	TrendGrowth30d        float64 `json:"trend_growth_30d"`
	RedditMentions        int     `json:"reddit_mentions"`
	RedditSentiment       float64 `json:"reddit_sentiment"`
	CompetitorStrength    float64 `json:"competitor_strength"`
}

// Stages a JSON array of collector signals and optionally runs a scoring pass
// over the staged backlog. Meant to be called by whatever gathers the raw
// signals.
func main() {
	var input string
	var score bool
	flag.StringVar(&input, "input", "", "path to JSON file with collector signals ('-' for stdin)")
	flag.BoolVar(&score, "score", true, "run an opportunity scoring pass after staging")
	flag.Parse()

	if input == "" {
		fmt.Println("usage: opportunity_ingest -input signals.json")
		os.Exit(2)
	}

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var raw []byte
	if input == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(input)
	}
	if err != nil {
		fmt.Printf("read signals: %v\n", err)
		os.Exit(1)
	}

	var records []signalRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		fmt.Printf("parse signals: %v\n", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Println("no signals in input, nothing to do")
		return
	}

	dbService, err := db.New(log)
	if err != nil {
		fmt.Printf("init db: %v\n", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		fmt.Printf("migrate: %v\n", err)
		os.Exit(1)
	}
	gdb := dbService.DB()
	signalRepo := repos.NewTopicSignalRepo(gdb, log)

	now := time.Now().UTC()
	rows := make([]*types.TopicSignal, 0, len(records))
	for _, r := range records {
		if r.Keyword == "" {
			continue
		}
		rows = append(rows, &types.TopicSignal{
			Keyword:               r.Keyword,
			SearchVolumeIndicator: r.SearchVolumeIndicator,
			PAAQuestionCount:      r.PAAQuestionCount,
			TrendGrowth30d:        r.TrendGrowth30d,
			RedditMentions:        r.RedditMentions,
			RedditSentiment:       r.RedditSentiment,
			CompetitorStrength:    r.CompetitorStrength,
			CollectedAt:           now,
		})
	}

	ctx := context.Background()
	if err := signalRepo.Append(dbctx.Context{Ctx: ctx}, rows); err != nil {
		fmt.Printf("stage signals: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("staged=%d\n", len(rows))

	if !score {
		return
	}
	out, err := steps.OpportunityRefresh(ctx, steps.OpportunityRefreshDeps{
		DB:            gdb,
		Log:           log,
		Signals:       signalRepo,
		Opportunities: repos.NewTopicOpportunityRepo(gdb, log),
	}, steps.OpportunityRefreshInput{})
	if err != nil {
		fmt.Printf("opportunity refresh: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("scored=%d saved=%d dropped=%d\n", out.Scored, out.Saved, out.Dropped)
}
